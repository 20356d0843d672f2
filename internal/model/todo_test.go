package model

import (
	"errors"
	"reflect"
	"testing"
)

func TestFilterIsValid(t *testing.T) {
	for _, f := range []Filter{FilterAll, FilterIncomplete, FilterComplete} {
		if !f.IsValid() {
			t.Fatalf("expected %q valid", f)
		}
	}
	if Filter("Pending").IsValid() {
		t.Fatal("expected unknown filter invalid")
	}
}

func TestParseFilter(t *testing.T) {
	cases := []struct {
		raw  string
		want Filter
	}{
		{"all", FilterAll},
		{"All", FilterAll},
		{"incomplete", FilterIncomplete},
		{"active", FilterIncomplete},
		{"complete", FilterComplete},
		{"done", FilterComplete},
	}
	for _, tc := range cases {
		got, err := ParseFilter(tc.raw)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q: expected %q, got %q", tc.raw, tc.want, got)
		}
	}

	if _, err := ParseFilter("bogus"); !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got: %v", err)
	}
}

func TestApplySelectsWithoutReordering(t *testing.T) {
	todos := []Todo{
		{ID: 1, Text: "one", Done: false},
		{ID: 2, Text: "two", Done: true},
		{ID: 3, Text: "three", Done: false},
	}

	complete := Apply(todos, FilterComplete)
	if len(complete) != 1 || complete[0].ID != 2 {
		t.Fatalf("unexpected complete selection: %#v", complete)
	}

	incomplete := Apply(todos, FilterIncomplete)
	if len(incomplete) != 2 || incomplete[0].ID != 1 || incomplete[1].ID != 3 {
		t.Fatalf("unexpected incomplete selection: %#v", incomplete)
	}

	all := Apply(todos, FilterAll)
	if !reflect.DeepEqual(all, todos) {
		t.Fatalf("expected all filter to return the list unchanged, got: %#v", all)
	}
}

func TestAllCompleteVacuouslyTrueOnEmptyList(t *testing.T) {
	if !AllComplete(nil) {
		t.Fatal("expected vacuous true for empty list")
	}
	if AllComplete([]Todo{{ID: 1, Done: true}, {ID: 2, Done: false}}) {
		t.Fatal("expected false with an incomplete entry")
	}
	if !AllComplete([]Todo{{ID: 1, Done: true}, {ID: 2, Done: true}}) {
		t.Fatal("expected true with all entries done")
	}
}

func TestCountIncomplete(t *testing.T) {
	todos := []Todo{
		{ID: 1, Done: false},
		{ID: 2, Done: true},
		{ID: 3, Done: false},
	}
	if got := CountIncomplete(todos); got != 2 {
		t.Fatalf("expected 2 incomplete, got %d", got)
	}
	if got := CountIncomplete(nil); got != 0 {
		t.Fatalf("expected 0 incomplete on empty list, got %d", got)
	}
}

func TestIndexByID(t *testing.T) {
	todos := []Todo{{ID: 10}, {ID: 20}}
	if got := IndexByID(todos, 20); got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
	if got := IndexByID(todos, 99); got != -1 {
		t.Fatalf("expected -1 for absent id, got %d", got)
	}
}

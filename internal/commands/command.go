package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeToggle Type = "toggle"
	TypeRemove Type = "remove"
	TypeFilter Type = "filter"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Text string
}

// ToggleArgs targets a single todo by id, or every todo when All is set.
type ToggleArgs struct {
	ID   int64
	All  bool
	Done bool
}

type RemoveArgs struct {
	ID int64
}

type FilterArgs struct {
	Name string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Toggle *ToggleArgs
	Remove *RemoveArgs
	Filter *FilterArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeToggle:
		return parseToggle(input, args)
	case TypeRemove:
		return parseRemove(input, args)
	case TypeFilter:
		return parseFilter(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires todo text"}
	}
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires todo text"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Text: text}}, nil
}

func parseToggle(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "toggle requires an id or 'all'"}
	}
	done := true
	if len(args) > 1 {
		switch strings.ToLower(args[1]) {
		case "on", "done":
			done = true
		case "off", "undone":
			done = false
		default:
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown toggle state: %s", args[1])}
		}
	}
	if strings.EqualFold(args[0], "all") {
		return Command{Type: TypeToggle, Raw: raw, Toggle: &ToggleArgs{All: true, Done: done}}, nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("toggle target must be an id or 'all', got: %s", args[0])}
	}
	return Command{Type: TypeToggle, Raw: raw, Toggle: &ToggleArgs{ID: id, Done: done}}, nil
}

func parseRemove(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "remove requires an id"}
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("remove target must be an id, got: %s", args[0])}
	}
	return Command{Type: TypeRemove, Raw: raw, Remove: &RemoveArgs{ID: id}}, nil
}

func parseFilter(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires a name"}
	}
	return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Name: strings.ToLower(args[0])}}, nil
}

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bryanjenningz/todotui/internal/ident"
	"github.com/bryanjenningz/todotui/internal/update"
)

func main() {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	store, err := update.OpenStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "todotui failed: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	gen := ident.NewGenerator(cfg.IDBuffer)
	gen.Start()
	defer gen.Stop()

	program := tea.NewProgram(update.NewModelWithRuntime(store, gen, cfg))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "todotui failed: %v\n", err)
		os.Exit(1)
	}
}

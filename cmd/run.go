package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/questline/internal/app"
	"github.com/abhisek/questline/internal/lessongen"
	"github.com/abhisek/questline/internal/llm"
	"github.com/abhisek/questline/internal/service"
	"github.com/abhisek/questline/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// Stderr logging would tear up the alt screen, so the TUI runs quiet.
	log := zap.NewNop()

	var gen lessongen.Generator
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Falling back to built-in lessons.")
		gen = lessongen.NewFallback()
	} else {
		gen = lessongen.New(provider, lessongen.DefaultConfig())
	}

	svc := service.New(st.SessionRepo(), st.EventRepo(), gen, log)
	return app.Run(svc, log)
}

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/questline/internal/httpapi"
	"github.com/abhisek/questline/internal/lessongen"
	"github.com/abhisek/questline/internal/llm"
	"github.com/abhisek/questline/internal/service"
	"github.com/abhisek/questline/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the lesson HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Provider keys may live in a local .env during development.
		_ = godotenv.Load()

		log, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		var gen lessongen.Generator
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			log.Warn("LLM provider not configured, using built-in lessons", zap.Error(err))
			gen = lessongen.NewFallback()
		} else {
			gen = lessongen.New(provider, lessongen.DefaultConfig())
		}

		svc := service.New(st.SessionRepo(), st.EventRepo(), gen, log)
		srv := httpapi.NewServer(svc, log)

		addr, _ := cmd.Flags().GetString("addr")
		log.Info("starting HTTP API", zap.String("addr", addr), zap.String("db", dbPath))
		return srv.Run(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anlek/mathweave/internal/api"
	"github.com/anlek/mathweave/internal/feedback"
	"github.com/anlek/mathweave/internal/llm"
	"github.com/anlek/mathweave/internal/problemgen"
	"github.com/anlek/mathweave/internal/store"
)

// runServer opens the store, builds dependencies, and serves HTTP until
// interrupted.
func runServer(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger, err := newLogger(cmd)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, logger)
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}

	handler := api.NewHandler(
		problemgen.New(provider, st.Sessions(), problemgen.DefaultConfig()),
		feedback.New(provider, st.Sessions(), st.Submissions(), logger, feedback.DefaultConfig()),
		logger,
	)

	addr, _ := cmd.Flags().GetString("addr")
	srv := &http.Server{
		Addr:              addr,
		Handler:           api.NewRouter(handler, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", addr), zap.String("db", dbPath))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	if dev, _ := cmd.Flags().GetBool("dev"); dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

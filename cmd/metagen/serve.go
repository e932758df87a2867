package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	metagengin "github.com/brandforge/metagen/gin"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := metagengin.NewServer(c.Addr, deps.Pipeline, deps.Brands, deps.Logger)

	ctx, stop := signal.NotifyContext(deps.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Open()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Close(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

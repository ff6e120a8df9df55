package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"datalens/ai"
	"datalens/internal/api"
	"datalens/internal/config"
	"datalens/ports"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[Main] No .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Main] Failed to load configuration: %v", err)
	}

	// A typed nil *ai.Assistant must not become a non-nil ports.Assistant.
	var assistant ports.Assistant
	if a := ai.NewAssistant(cfg.AI); a != nil {
		assistant = a
	}
	app := api.NewApp(cfg, assistant)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: app.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("[Main] datalens API listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Printf("[Main] Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("[Main] Server failed: %v", err)
	}
}

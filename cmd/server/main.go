package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xtding233/equus-backend/internal/api"
	"github.com/xtding233/equus-backend/internal/breed"
)

func main() {
	log.SetPrefix("[EQUUS] ")

	cfg, err := api.ParseConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	registry := breed.NewRegistry(cfg.ConfigDir)
	registry.Watch(cfg.WatchInterval)
	defer registry.Close()

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.NewServer(registry).Routes(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("listening on %s (profiles: %s)", cfg.Addr, cfg.ConfigDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

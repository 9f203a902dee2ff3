// Package app wires the bot service together and runs it.
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Niharikab29/Airport-Saathi/internal/ai"
	"github.com/Niharikab29/Airport-Saathi/internal/api"
	"github.com/Niharikab29/Airport-Saathi/internal/bot"
	"github.com/Niharikab29/Airport-Saathi/internal/config"
	"github.com/Niharikab29/Airport-Saathi/internal/store"
	"github.com/Niharikab29/Airport-Saathi/internal/twilio"
)

const logPrefix = "[saathi]"

const shutdownTimeout = 10 * time.Second

func Run() error {
	config.LoadDotEnv(logPrefix)
	cfg := config.Load()

	log.Printf("%s starting Airport Saathi...", logPrefix)
	log.Printf("%s HTTP port: %d", logPrefix, cfg.HTTPPort)

	aiClient := ai.NewClient(cfg)
	mediaClient := twilio.NewMediaClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken)
	sessions := store.NewStore()
	resolver := bot.NewResolver(sessions, aiClient, aiClient, mediaClient)

	h := api.NewHandler(resolver)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	h.RegisterRoutes(e)

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	log.Printf("%s Airport Saathi running on port %d", logPrefix, cfg.HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	log.Printf("%s shutting down...", logPrefix)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	log.Printf("%s stopped", logPrefix)
	return nil
}

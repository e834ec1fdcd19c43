package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"scheduling-assistant/config"
	_ "scheduling-assistant/docs" // Swagger docs
	"scheduling-assistant/internal/httpserver"
	"scheduling-assistant/internal/session"
	"scheduling-assistant/pkg/gcalendar"
	"scheduling-assistant/pkg/gemini"
	"scheduling-assistant/pkg/googleauth"
	"scheduling-assistant/pkg/log"
)

// @title       Scheduling Assistant API
// @description Browser-based personal scheduling assistant: Google sign-in, Gemini appointment extraction, Google Calendar scheduling.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Scheduling Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Clients
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	geminiClient.SetModel(cfg.Gemini.Model)

	calendarClient := gcalendar.NewClient()
	identityClient := googleauth.NewClient()

	// 4. Sessions
	sessions := session.NewManager(cfg.Session.MaxEntries, cfg.Session.TTL)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		Sessions:    sessions,
		Gemini:      geminiClient,
		Calendar:    calendarClient,
		Identity:    identityClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

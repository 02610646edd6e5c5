package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nl-dates/config"
	_ "nl-dates/docs" // Swagger docs
	"nl-dates/internal/dates"
	"nl-dates/internal/dates/adapter"
	"nl-dates/internal/dates/usecase"
	"nl-dates/internal/httpserver"
	"nl-dates/pkg/datemath"
	"nl-dates/pkg/log"
)

// @title       nl-dates API
// @description Natural-language date resolution backed by a language model.
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

	logger.Info(ctx, "Starting nl-dates API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "LLM provider: %s", cfg.LLM.Provider)

	// 3. Calendar
	calendar, err := datemath.NewCalendar(cfg.Dates.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to local time: %v", cfg.Dates.Timezone, err)
		calendar, _ = datemath.NewCalendar("")
	}

	// 4. Default client, built lazily from cfg.LLM
	defaults := dates.NewDefaultClient(func(ctx context.Context) (dates.Client, error) {
		a, err := adapter.NewFromConfig(ctx, logger, cfg.LLM)
		if err != nil {
			return nil, err
		}
		return a, nil
	})
	if _, err := defaults.Get(ctx); err != nil {
		logger.Warnf(ctx, "Language model client not available yet, date requests will fail with 503: %v", err)
	}

	// 5. Dates UseCase
	datesUC := usecase.New(logger, defaults, calendar)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		DatesUseCase: datesUC,
		Calendar:     calendar,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

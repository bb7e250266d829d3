// Command stylesync-server runs the StyleSync API server.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/stylesync-app/stylesync/internal/classify"
	"github.com/stylesync-app/stylesync/internal/stylist"
	"github.com/stylesync-app/stylesync/internal/weather"
	"github.com/stylesync-app/stylesync/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is for local dev, deployments set env vars directly.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	classifyCfg, err := classify.LoadConfig()
	if err != nil {
		if errors.Is(err, classify.ErrMissingAPIKey) {
			return fmt.Errorf("please set the GEMINI_API_KEY environment variable")
		}
		return fmt.Errorf("loading gemini config: %w", err)
	}

	stylistCfg, err := stylist.LoadConfig()
	if err != nil {
		if errors.Is(err, stylist.ErrMissingAPIKey) {
			return fmt.Errorf("please set the GROQ_API_KEY environment variable")
		}
		return fmt.Errorf("loading groq config: %w", err)
	}

	addr := web.DefaultAddr
	if port := os.Getenv("PORT"); port != "" {
		addr = "0.0.0.0:" + port
	}

	server := web.NewServer(web.ServerConfig{
		Addr:       addr,
		Classifier: classify.New(classifyCfg),
		Stylist:    stylist.NewClient(stylistCfg),
		Weather:    weather.NewClient(),
		Logger:     logger,
	})

	return server.Run()
}

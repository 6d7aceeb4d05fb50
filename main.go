package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"sevdesk-export/cmd"
	"sevdesk-export/internal/config"
	"sevdesk-export/internal/logger"
)

func main() {
	// A missing .env is fine, everything can come from the environment or flags.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		log.Printf("Warning: invalid logging configuration: %v", err)
		if err := logger.Setup(logger.DefaultConfig()); err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
	}

	log := logger.WithComponent("main")
	log.Debug().Msg("Starting sevdesk-export")

	cmd.Execute(cfg)

	os.Exit(0)
}

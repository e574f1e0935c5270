package main

import (
	"log/slog"
	"os"

	"github.com/nfrund/risq/internal/config"
	"github.com/nfrund/risq/internal/logging"
	"github.com/nfrund/risq/internal/server"
)

func main() {
	cfg := config.New()
	logging.New()

	s, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to initialise server", "error", err)
		os.Exit(1)
	}

	if err := s.Start(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"flag"
	"log/slog"

	"github.com/MLR-5819/FSND-Fyyur/internal/logger"
	"github.com/MLR-5819/FSND-Fyyur/internal/validation"
)

func main() {
	var baseURL string
	var writes bool
	flag.StringVar(&baseURL, "url", "http://localhost:5000", "Base URL of the running server")
	flag.BoolVar(&writes, "writes", false, "Also create and delete a throwaway venue")
	flag.Parse()

	logger.Init("info", "text")
	slog.Info("Starting smoke check", "url", baseURL)

	validator := validation.NewSiteValidator(baseURL)
	if err := validator.ValidatePages(); err != nil {
		logger.Fatal("Smoke check failed", "error", err)
	}
	if writes {
		if err := validator.ValidateVenueLifecycle(); err != nil {
			logger.Fatal("Smoke check failed", "error", err)
		}
	}

	slog.Info("Smoke check passed")
}

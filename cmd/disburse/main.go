package main

import (
	"fmt"
	"os"

	"github.com/obolus/obolus-backend/internal/config"
	"github.com/obolus/obolus-backend/internal/domain"
	"github.com/obolus/obolus-backend/internal/policy"
	"github.com/obolus/obolus-backend/internal/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	loader := policy.NewLoader(cfg.PolicyDir)
	validator := policy.NewValidator()
	transferService := service.NewTransferService(cfg.DeveloperName, cfg.DeveloperWebsite, os.Stdout)
	processorService := service.NewProcessorService(loader, validator, transferService)

	// Fixed example disbursement
	sources := domain.RevenueSources{
		"worker_fees":          mustDecimal("1200.50"),
		"tool_fees":            mustDecimal("850.00"),
		"platform_commissions": mustDecimal("2300.75"),
		"subscription_revenue": mustDecimal("990.00"),
		"marketplace_margin":   mustDecimal("458.25"),
	}

	result := processorService.ProcessPayment(sources)
	fmt.Println(result.Message)
	if !result.Success {
		os.Exit(1)
	}
}

// mustDecimal parses a literal amount; inputs here are fixed
func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

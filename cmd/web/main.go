package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/grc-tools/posture-atlas/pkg/handlers/grc"
	"github.com/grc-tools/posture-atlas/pkg/server"
	"github.com/grc-tools/posture-atlas/pkg/services/assessments"
	"github.com/grc-tools/posture-atlas/pkg/services/config"
	"github.com/grc-tools/posture-atlas/pkg/services/findings"
	"github.com/grc-tools/posture-atlas/pkg/services/initiatives"
	"github.com/grc-tools/posture-atlas/pkg/services/objectives"
	"github.com/grc-tools/posture-atlas/pkg/services/registry"
	"github.com/grc-tools/posture-atlas/pkg/services/reporting"
	"github.com/grc-tools/posture-atlas/pkg/services/risks"
	"github.com/grc-tools/posture-atlas/pkg/store"
	"github.com/grc-tools/posture-atlas/pkg/store/memory"
	"github.com/grc-tools/posture-atlas/pkg/store/postgres"
)

var cfgPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "web",
		Short: "Start the Posture Atlas API server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "posture-atlas.yaml",
		"Path to the service configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.DatabaseURL = url
	}

	clientRegistry, err := registry.NewRegistry(cfg.ClientsPath)
	if err != nil {
		return fmt.Errorf("failed to load client registry: %w", err)
	}

	memStore := memory.NewStore()
	var riskStore store.RiskStore = memStore
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		riskStore, err = postgres.NewRiskStore(db)
		if err != nil {
			return fmt.Errorf("failed to create risk store: %w", err)
		}
		logger.Info().Msg("risk collection backed by postgres")
	}

	findingAgg := findings.NewAggregator(memStore, riskStore)
	riskSvc := risks.NewService(riskStore)
	assessmentSvc := assessments.NewService(memStore)
	reporter := reporting.NewReporter(findingAgg, riskSvc, assessmentSvc)

	stats := reporting.NewLiveStats(findingAgg, riskSvc)
	if cfg.Mock {
		stats = reporting.NewCannedStats()
		clients, _ := clientRegistry.GetClients(cmd.Context())
		for _, client := range clients {
			if err := memory.SeedSampleData(memStore, client.ID); err != nil {
				return fmt.Errorf("failed to seed sample data: %w", err)
			}
		}
		logger.Info().Msg("mock mode: statistics endpoints serve canned sample data")
	}

	clients, err := clientRegistry.GetClients(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read client profiles: %w", err)
	}
	logger.Info().Msgf("Client registry loaded from `%s`:", cfg.ClientsPath)
	for _, client := range clients {
		logger.Info().Msgf("ID: `%d`, Name: `%s`, Framework: `%s`", client.ID, client.Name, client.Framework)
	}

	api := server.NewWebAPI(server.Config{
		Addr:            cfg.Addr,
		ShutdownTimeout: 10 * time.Second,
		Logger:          logger,
		Dependencies: grc.Dependencies{
			Reporter:    reporter,
			Findings:    findingAgg,
			Risks:       riskSvc,
			Stats:       stats,
			Objectives:  objectives.NewService(memStore, riskStore),
			Initiatives: initiatives.NewService(memStore),
			Registry:    clientRegistry,
			RiskStore:   riskStore,
			Assessments: memStore,
		},
	})

	return api.Start()
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/grc-tools/posture-atlas/pkg/export"
	"github.com/grc-tools/posture-atlas/pkg/services/assessments"
	"github.com/grc-tools/posture-atlas/pkg/services/config"
	"github.com/grc-tools/posture-atlas/pkg/services/findings"
	"github.com/grc-tools/posture-atlas/pkg/services/reporting"
	"github.com/grc-tools/posture-atlas/pkg/services/risks"
	"github.com/grc-tools/posture-atlas/pkg/store/memory"
)

type reportCmd struct {
	clientID  int
	framework string
	cfgPath   string
	archive   bool
}

func main() {
	rc := &reportCmd{}

	rootCmd := &cobra.Command{
		Use:   "posture",
		Short: "Render posture reports for a client",
	}
	rootCmd.PersistentFlags().IntVar(&rc.clientID, "client", 0, "Client id to report on")
	rootCmd.PersistentFlags().StringVarP(&rc.cfgPath, "config", "c", "posture-atlas.yaml",
		"Path to the service configuration file")
	rootCmd.PersistentFlags().BoolVar(&rc.archive, "archive", false,
		"Upload a JSON snapshot of the report to the configured archive bucket")
	_ = rootCmd.MarkPersistentFlagRequired("client")

	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Render the executive dashboard",
		RunE:  rc.runDashboard,
	}

	complianceCmd := &cobra.Command{
		Use:   "compliance",
		Short: "Render the compliance report",
		RunE:  rc.runCompliance,
	}
	complianceCmd.Flags().StringVar(&rc.framework, "framework", "", "Compliance framework label")

	rootCmd.AddCommand(dashboardCmd, complianceCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func (rc *reportCmd) setup(ctx context.Context) (reporting.Reporter, *config.Config, error) {
	cfg, err := config.LoadConfig(rc.cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	memStore := memory.NewStore()
	if err := memory.SeedSampleData(memStore, rc.clientID); err != nil {
		return nil, nil, fmt.Errorf("failed to seed sample data: %w", err)
	}

	findingAgg := findings.NewAggregator(memStore, memStore)
	reporter := reporting.NewReporter(findingAgg,
		risks.NewService(memStore), assessments.NewService(memStore))
	return reporter, cfg, nil
}

func (rc *reportCmd) runDashboard(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(loggerContext(cmd.Context()), 30*time.Second)
	defer cancel()

	reporter, cfg, err := rc.setup(ctx)
	if err != nil {
		return err
	}
	dashboard, err := reporter.GetExecutiveDashboard(ctx, rc.clientID)
	if err != nil {
		return fmt.Errorf("failed to build dashboard: %w", err)
	}
	if rc.archive {
		if err := rc.archiveSnapshot(ctx, cfg, "dashboard", dashboard); err != nil {
			return err
		}
	}
	return export.NewReporter(os.Stdout).HandleDashboard(dashboard)
}

func (rc *reportCmd) runCompliance(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(loggerContext(cmd.Context()), 30*time.Second)
	defer cancel()

	reporter, cfg, err := rc.setup(ctx)
	if err != nil {
		return err
	}
	report, err := reporter.GetComplianceReport(ctx, rc.clientID, rc.framework)
	if err != nil {
		return fmt.Errorf("failed to build compliance report: %w", err)
	}
	if rc.archive {
		if err := rc.archiveSnapshot(ctx, cfg, "compliance", report); err != nil {
			return err
		}
	}
	return export.NewReporter(os.Stdout).HandleCompliance(report)
}

func (rc *reportCmd) archiveSnapshot(ctx context.Context, cfg *config.Config, kind string, payload any) error {
	if cfg.Archive.Endpoint == "" {
		return fmt.Errorf("archive requested but no archive endpoint configured")
	}
	archive, err := export.NewArchive(cfg.Archive.Endpoint, cfg.Archive.AccessKey,
		cfg.Archive.SecretKey, cfg.Archive.Bucket, cfg.Archive.UseSSL)
	if err != nil {
		return err
	}
	return archive.Store(ctx, rc.clientID, kind, payload)
}

func loggerContext(ctx context.Context) context.Context {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}

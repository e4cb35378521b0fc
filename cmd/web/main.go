package main

import (
	"context"
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/chapman178/om-Aviary/pkg/server"
	"github.com/chapman178/om-Aviary/pkg/services/config"
	"github.com/chapman178/om-Aviary/pkg/services/problem"
	"github.com/chapman178/om-Aviary/pkg/services/report"
	"github.com/chapman178/om-Aviary/pkg/store/duckdb"
	"github.com/chapman178/om-Aviary/pkg/store/duckdb/record"
	"github.com/chapman178/om-Aviary/pkg/subsystems/aerodynamics"
	"github.com/chapman178/om-Aviary/pkg/subsystems/propulsion"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Serve generated trajectory reports over HTTP",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to a YAML settings file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	settings := config.DefaultSettings()
	if cfgPath != "" {
		loaded, err := config.LoadSettings(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		settings = *loaded
	}
	if settings.CasePath == "" {
		return fmt.Errorf("no case database configured; set case_path in the settings file")
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: settings.CasePath})
	if err != nil {
		return fmt.Errorf("failed to open case database: %w", err)
	}
	defer db.Close()

	store, err := record.NewStore(db, settings.CaseName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(settings.ReportsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create reports folder: %w", err)
	}

	prob, err := problem.NewCaseProblem(ctx, store, problem.CaseOptions{
		ReportsDir: settings.ReportsDir,
		Trajectory: settings.Trajectory,
		Subsystems: []problem.Subsystem{
			propulsion.Reporter{},
			aerodynamics.Reporter{},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to load solved case: %w", err)
	}

	registry := report.NewRegistry()
	if err := report.RegisterDefaults(registry, report.MissionSettings{Trajectory: settings.Trajectory}); err != nil {
		return err
	}

	logger.Info().Str("case", settings.CasePath).Strs("phases", prob.Phases()).Msg("solved case loaded")

	addr := settings.ServerAddr
	if host, port := os.Getenv("SERVER_HOST"), os.Getenv("SERVER_PORT"); host != "" && port != "" {
		addr = net.JoinHostPort(host, port)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: addr,
		Dependencies: server.Dependencies{
			ReportsDir: settings.ReportsDir,
			Generate: func(genCtx context.Context) error {
				return registry.RunAll(genCtx, prob)
			},
		},
	})

	return api.Start()
}

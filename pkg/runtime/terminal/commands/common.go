package commands

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/chapman178/om-Aviary/pkg/services/config"
	"github.com/chapman178/om-Aviary/pkg/services/problem"
	"github.com/chapman178/om-Aviary/pkg/store/duckdb"
	"github.com/chapman178/om-Aviary/pkg/store/duckdb/record"
	"github.com/chapman178/om-Aviary/pkg/subsystems/aerodynamics"
	"github.com/chapman178/om-Aviary/pkg/subsystems/propulsion"
)

// caseFlags are the flags shared by commands that open a solved case.
type caseFlags struct {
	configPath   string
	profilesPath string
	profile      string
	casePath     string
	caseName     string
	reportsDir   string
	trajectory   string
}

// resolve merges config file, profile and explicit flags into one settings
// value. Explicit flags win over the profile, the profile over the config
// file, the config file over defaults.
func (cf *caseFlags) resolve(ctx context.Context) (config.Settings, error) {
	settings := config.DefaultSettings()

	if cf.configPath != "" {
		loaded, err := config.LoadSettings(cf.configPath)
		if err != nil {
			return config.Settings{}, err
		}
		settings = *loaded
	}

	if cf.profile != "" {
		registry, err := config.NewRegistry(cf.profilesPath)
		if err != nil {
			return config.Settings{}, fmt.Errorf("load profiles: %w", err)
		}
		p, err := registry.GetProfile(ctx, cf.profile)
		if err != nil {
			return config.Settings{}, err
		}
		settings.CasePath = p.CasePath
		settings.CaseName = p.CaseName
		settings.ReportsDir = p.ReportsDir
	}

	if cf.casePath != "" {
		settings.CasePath = cf.casePath
	}
	if cf.caseName != "" {
		settings.CaseName = cf.caseName
	}
	if cf.reportsDir != "" {
		settings.ReportsDir = cf.reportsDir
	}
	if cf.trajectory != "" {
		settings.Trajectory = cf.trajectory
	}

	if settings.CasePath == "" {
		return config.Settings{}, fmt.Errorf("no case database given; use --case, --profile or a config file")
	}
	return settings, nil
}

// openProblem opens the case database and builds the problem facade with the
// built-in subsystem reporters wired in.
func openProblem(ctx context.Context, settings config.Settings) (problem.Problem, *sql.DB, error) {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: settings.CasePath})
	if err != nil {
		return nil, nil, fmt.Errorf("open case database: %w", err)
	}

	store, err := record.NewStore(db, settings.CaseName)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	if err := os.MkdirAll(settings.ReportsDir, 0o755); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("create reports folder: %w", err)
	}

	p, err := problem.NewCaseProblem(ctx, store, problem.CaseOptions{
		ReportsDir: settings.ReportsDir,
		Trajectory: settings.Trajectory,
		Subsystems: []problem.Subsystem{
			propulsion.Reporter{},
			aerodynamics.Reporter{},
		},
	})
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return p, db, nil
}

func defaultProfilesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".aviarycfg"
	}
	return home + "/.aviarycfg"
}

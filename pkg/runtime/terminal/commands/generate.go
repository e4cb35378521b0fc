package commands

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/chapman178/om-Aviary/pkg/services/report"
)

type GenerateCmd struct {
	caseFlags
	registry report.Registry
	output   io.Writer
}

// NewGenerateCmd runs every registered report generator against a solved
// case and writes the report files under the reports folder.
func NewGenerateCmd(registry report.Registry, output io.Writer) *cobra.Command {
	gc := &GenerateCmd{registry: registry, output: output}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate all registered reports for a solved case",
		RunE:  gc.run,
	}

	cmd.Flags().StringVar(&gc.configPath, "config", "", "Path to a YAML settings file")
	cmd.Flags().StringVar(&gc.profilesPath, "profiles", defaultProfilesPath(), "Path to the profiles file")
	cmd.Flags().StringVar(&gc.profile, "profile", "", "Named profile to report on")
	cmd.Flags().StringVar(&gc.casePath, "case", "", "Path to the solved case database")
	cmd.Flags().StringVar(&gc.caseName, "case-name", "", "Case name inside the database")
	cmd.Flags().StringVar(&gc.reportsDir, "output", "", "Reports output folder")
	cmd.Flags().StringVar(&gc.trajectory, "trajectory", "", "Trajectory name (default \"traj\")")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(gc.output).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	settings, err := gc.resolve(ctx)
	if err != nil {
		return err
	}

	p, db, err := openProblem(ctx, settings)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := gc.registry.RunAll(ctx, p); err != nil {
		return err
	}

	fmt.Fprintf(gc.output, "reports written to %s\n", settings.ReportsDir)
	return nil
}

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type PhasesCmd struct {
	caseFlags
	output io.Writer
}

// NewPhasesCmd lists the ordered phase sequence of a solved case.
func NewPhasesCmd(output io.Writer) *cobra.Command {
	pc := &PhasesCmd{output: output}
	cmd := &cobra.Command{
		Use:   "phases",
		Short: "List the phases of a solved case",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.configPath, "config", "", "Path to a YAML settings file")
	cmd.Flags().StringVar(&pc.profilesPath, "profiles", defaultProfilesPath(), "Path to the profiles file")
	cmd.Flags().StringVar(&pc.profile, "profile", "", "Named profile to inspect")
	cmd.Flags().StringVar(&pc.casePath, "case", "", "Path to the solved case database")
	cmd.Flags().StringVar(&pc.caseName, "case-name", "", "Case name inside the database")

	return cmd
}

func (pc *PhasesCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	settings, err := pc.resolve(ctx)
	if err != nil {
		return err
	}

	p, db, err := openProblem(ctx, settings)
	if err != nil {
		return err
	}
	defer db.Close()

	for i, phase := range p.Phases() {
		fmt.Fprintf(pc.output, "%d. %s\n", i+1, phase)
	}
	return nil
}

package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/chapman178/om-Aviary/pkg/services/problem"
)

const subsystemsFolder = "subsystems"

// SubsystemReports creates the shared subsystems folder under the reports
// root and fans out to every registered subsystem reporter in order. Folder
// creation failure is fatal; a failing subsystem aborts the fan-out and
// propagates.
func SubsystemReports(ctx context.Context, p problem.Problem) error {
	logger := zerolog.Ctx(ctx)

	dir := filepath.Join(p.ReportsDir(), subsystemsFolder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create subsystem reports folder: %w", err)
	}

	for _, sub := range p.Subsystems() {
		if err := sub.Report(ctx, p, dir); err != nil {
			return fmt.Errorf("subsystem %q report: %w", sub.Name(), err)
		}
		logger.Debug().Str("subsystem", sub.Name()).Msg("subsystem report written")
	}
	return nil
}

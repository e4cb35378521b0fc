package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chapman178/om-Aviary/pkg/services/report"
)

// NewListCmd lists the registered report generators.
func NewListCmd(registry report.Registry, output io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered report generators",
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, entry := range registry.List() {
				fmt.Fprintf(output, "%s\t%s\n", entry.Name, entry.Desc)
			}
			return nil
		},
	}
}

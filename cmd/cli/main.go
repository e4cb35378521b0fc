package main

import (
	"fmt"
	"os"

	"github.com/chapman178/om-Aviary/pkg/runtime/terminal"
	"github.com/chapman178/om-Aviary/pkg/services/report"
)

func main() {
	registry := report.NewRegistry()
	if err := report.RegisterDefaults(registry, report.MissionSettings{}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Registry: registry,
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// dcsim evaluates hybrid solar + storage + generator systems serving a
// fixed datacenter load, either one configuration at a time or as a full
// ensemble sweep with Pareto selection.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/heliostack/dcsim/internal/logging"
)

var verbosity int

func main() {
	root := &cobra.Command{
		Use:           "dcsim",
		Short:         "Off-grid datacenter power system simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0,
		"log verbosity (0=info, 1=debug, 2=trace)")

	// Accept snake_case flag spellings matching the config file keys.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(newEnsembleCommand())
	root.AddCommand(newCaseCommand())
	root.AddCommand(newConfigCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger() logr.Logger {
	return logging.NewLogger(verbosity)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/heliostack/dcsim/internal/config"
)

func newConfigCommand() *cobra.Command {
	var (
		sweepPath string
		costPath  string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective sweep and cost configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			sweep, err := config.LoadSweep(sweepPath)
			if err != nil {
				return err
			}
			cost, err := config.LoadCost(costPath)
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(map[string]any{
				"sweep": sweep,
				"cost":  cost,
			})
			if err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}
			fmt.Print(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&sweepPath, "sweep", "sweep.yaml", "path to the sweep configuration")
	cmd.Flags().StringVar(&costPath, "cost", "", "path to cost assumptions (defaults built in)")

	return cmd
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/heliostack/dcsim/internal/config"
	"github.com/heliostack/dcsim/internal/ensemble"
	"github.com/heliostack/dcsim/internal/render"
)

func newEnsembleCommand() *cobra.Command {
	var (
		sweepPath   string
		costPath    string
		concurrency int
		rowLimit    int
		outDir      string
	)

	cmd := &cobra.Command{
		Use:   "ensemble",
		Short: "Run a configuration sweep and report the cost/renewable frontier",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

			sweep, err := config.LoadSweep(sweepPath)
			if err != nil {
				return err
			}
			cost, err := config.LoadCost(costPath)
			if err != nil {
				return err
			}

			report, runErr := ensemble.Run(cmd.Context(), sweep, *cost, ensemble.Options{
				MaxConcurrency: concurrency,
				RowLimit:       rowLimit,
				Logger:         log,
			})
			if runErr != nil && !errors.Is(runErr, ensemble.ErrNoFeasibleCase) {
				return runErr
			}

			stamp := report.GeneratedAt.Format("20060102_150405")
			if err := writeCSV(filepath.Join(outDir, "ensemble_results_raw_"+stamp+".csv"), render.RawTable(report)); err != nil {
				return err
			}
			if err := writeCSV(filepath.Join(outDir, "ensemble_results_pareto_"+stamp+".csv"), render.ParetoTable(report)); err != nil {
				return err
			}

			if report.Best != nil {
				fmt.Printf("Best case: %s\n", report.Best.SystemSpec)
				fmt.Printf("LCOE: $%.2f/MWh\n", report.Best.LevelizedCost)
				fmt.Printf("Renewable fraction: %.1f%%\n", report.Best.RenewableFraction*100)
			}
			return runErr
		},
	}

	cmd.Flags().StringVar(&sweepPath, "sweep", "sweep.yaml", "path to the sweep configuration")
	cmd.Flags().StringVar(&costPath, "cost", "", "path to cost assumptions (defaults built in)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 10, "maximum concurrent case evaluations")
	cmd.Flags().IntVar(&rowLimit, "row-limit", 0, "cap raw CSV rows (0 = unlimited)")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory for result CSVs")

	return cmd
}

func writeCSV(path string, table [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := render.WriteCSV(f, table); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heliostack/dcsim/internal/config"
	"github.com/heliostack/dcsim/internal/ensemble"
	"github.com/heliostack/dcsim/internal/solar"
)

func newCaseCommand() *cobra.Command {
	var (
		costPath      string
		latitude      float64
		longitude     float64
		solarMW       int
		storageMW     int
		generatorMW   int
		generatorType string
		loadMW        float64
	)

	cmd := &cobra.Command{
		Use:   "case",
		Short: "Evaluate a single system configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

			cost, err := config.LoadCost(costPath)
			if err != nil {
				return err
			}

			cache, err := solar.NewProfileCache(solar.NewClearSkyProvider(), solar.DefaultCacheCapacity)
			if err != nil {
				return err
			}
			evaluator, err := ensemble.NewSimEvaluator(cache, *cost, log)
			if err != nil {
				return err
			}

			result := evaluator.Evaluate(cmd.Context(), ensemble.Case{
				SolarCapacityMW:     solarMW,
				StoragePowerMW:      storageMW,
				GeneratorCapacityMW: generatorMW,
				GeneratorType:       generatorType,
				DatacenterLoadMW:    loadMW,
				Latitude:            latitude,
				Longitude:           longitude,
			})
			if !result.Succeeded() {
				return fmt.Errorf("case %s: %s", result.Status, result.Message)
			}

			fmt.Printf("Results for %s at (%.4f, %.4f)\n", result.SystemSpec, latitude, longitude)
			fmt.Printf("LCOE: $%.2f/MWh\n", result.LevelizedCost)
			fmt.Printf("Renewable fraction: %.1f%%\n", result.RenewableFraction*100)
			return nil
		},
	}

	cmd.Flags().StringVar(&costPath, "cost", "", "path to cost assumptions (defaults built in)")
	cmd.Flags().Float64Var(&latitude, "lat", 31.2275, "site latitude")
	cmd.Flags().Float64Var(&longitude, "lon", -102.7403, "site longitude")
	cmd.Flags().IntVar(&solarMW, "solar", 0, "solar PV capacity in MW-DC")
	cmd.Flags().IntVar(&storageMW, "storage", 0, "battery power capacity in MW")
	cmd.Flags().IntVar(&generatorMW, "generator", 0, "generator capacity in MW")
	cmd.Flags().StringVar(&generatorType, "generator-type", config.GasEngine, "generator type")
	cmd.Flags().Float64Var(&loadMW, "load", 100, "datacenter load in MW")

	return cmd
}

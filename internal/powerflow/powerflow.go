// Package powerflow simulates hybrid solar + storage + generator systems
// serving a fixed datacenter load.
//
// The simulation walks every hour of a typical year, once per operating
// year of the system lifetime, dispatching in merit order: solar to load,
// excess solar to battery (power- and energy-limited), battery then
// generator against deficits, anything left unmet. Solar and battery
// capacities degrade year over year.
package powerflow

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/heliostack/dcsim/internal/solar"
)

// System constants.
const (
	LifetimeYears              = 20
	BatteryRoundTripEfficiency = 0.92
	BatteryDurationHours       = 4
	BatteryDegradationPerYear  = 0.35 / 20
	SolarDegradationPerYear    = 0.005
	DCACRatio                  = 1.2
)

// Input describes one system configuration to simulate.
type Input struct {
	SolarCapacityMW     float64
	StoragePowerMW      float64
	GeneratorCapacityMW float64
	LoadMW              float64
	// HeatRateBTUPerKWh converts generator output to fuel input.
	HeatRateBTUPerKWh float64
}

// AnnualRecord summarizes one operating year. Energy totals are rounded to
// whole MWh.
type AnnualRecord struct {
	Year                 int
	SolarRawMWh          float64
	SolarCurtailedMWh    float64
	SolarNetMWh          float64
	BatteryChargedMWh    float64
	BatteryDischargedMWh float64
	GeneratorMWh         float64
	FuelMMBtu            float64
	LoadServedMWh        float64
}

// Simulate runs the lifetime simulation against the given resource profile
// and returns one record per operating year.
func Simulate(profile *solar.ResourceProfile, in Input) ([]AnnualRecord, error) {
	if profile == nil || len(profile.Hourly) == 0 {
		return nil, fmt.Errorf("resource profile is empty")
	}
	if len(profile.Hourly) != solar.HoursPerYear {
		return nil, fmt.Errorf("resource profile has %d hours, want %d", len(profile.Hourly), solar.HoursPerYear)
	}

	batteryCapacityMWh := in.StoragePowerMW * BatteryDurationHours
	records := make([]AnnualRecord, 0, LifetimeYears)

	for year := 1; year <= LifetimeYears; year++ {
		solarScale := in.SolarCapacityMW / DCACRatio * (1 - SolarDegradationPerYear*float64(year-1))
		degradedCapacityMWh := batteryCapacityMWh * (1 - BatteryDegradationPerYear*float64(year-1))

		records = append(records, simulateYear(
			profile.Hourly, in, year, solarScale, degradedCapacityMWh,
		))
	}
	return records, nil
}

// simulateYear dispatches one full year hour by hour. The battery starts
// the year full.
func simulateYear(hourly []float64, in Input, year int, solarScale, capacityMWh float64) AnnualRecord {
	sqrtRTE := math.Sqrt(BatteryRoundTripEfficiency)

	n := len(hourly)
	scaled := make([]float64, n)
	charged := make([]float64, n)
	discharged := make([]float64, n)
	curtailed := make([]float64, n)
	generator := make([]float64, n)
	unmet := make([]float64, n)

	state := math.Min(in.StoragePowerMW*BatteryDurationHours, capacityMWh)
	for t := 0; t < n; t++ {
		scaled[t] = hourly[t] * solarScale
		balance := scaled[t] - in.LoadMW

		if balance > 0 {
			available := math.Max(capacityMWh-state, 0)
			stored := math.Min(math.Min(balance, in.StoragePowerMW), available)
			charged[t] = stored
			curtailed[t] = balance - stored
			state += stored * sqrtRTE
		} else {
			deficit := -balance
			maxDischarge := math.Min(in.StoragePowerMW, math.Min(deficit/sqrtRTE, state))
			discharged[t] = maxDischarge * sqrtRTE
			remaining := deficit - discharged[t]
			generator[t] = math.Min(remaining, in.GeneratorCapacityMW)
			unmet[t] = remaining - generator[t]
			state -= maxDischarge
		}
	}

	rawMWh := floats.Sum(scaled)
	curtailedMWh := floats.Sum(curtailed)
	generatorMWh := floats.Sum(generator)

	return AnnualRecord{
		Year:                 year,
		SolarRawMWh:          math.Round(rawMWh),
		SolarCurtailedMWh:    math.Round(curtailedMWh),
		SolarNetMWh:          math.Round(rawMWh - curtailedMWh),
		BatteryChargedMWh:    math.Round(floats.Sum(charged)),
		BatteryDischargedMWh: math.Round(floats.Sum(discharged)),
		GeneratorMWh:         math.Round(generatorMWh),
		FuelMMBtu:            math.Round(generatorMWh * in.HeatRateBTUPerKWh / 1000),
		LoadServedMWh:        math.Round(in.LoadMW*float64(n) - floats.Sum(unmet)),
	}
}

package powerflow

import "fmt"

// EnergyMix summarizes where delivered energy came from over the lifetime.
type EnergyMix struct {
	SolarNetTWh        float64
	SolarToLoadTWh     float64
	BESSToLoadTWh      float64
	GeneratorTWh       float64
	TotalGenerationTWh float64
	TotalLoadTWh       float64
	// RenewableFraction is the share of served load not supplied by the
	// generator, in [0, 1].
	RenewableFraction float64
}

// Mix computes the lifetime energy mix from annual records.
func Mix(records []AnnualRecord) (EnergyMix, error) {
	var solarNet, bessCharged, bessDischarged, generator, loadServed float64
	for _, r := range records {
		solarNet += r.SolarNetMWh
		bessCharged += r.BatteryChargedMWh
		bessDischarged += r.BatteryDischargedMWh
		generator += r.GeneratorMWh
		loadServed += r.LoadServedMWh
	}
	if loadServed <= 0 {
		return EnergyMix{}, fmt.Errorf("energy mix undefined: zero load served over lifetime")
	}

	const mwhPerTWh = 1_000_000
	mix := EnergyMix{
		SolarNetTWh:       solarNet / mwhPerTWh,
		SolarToLoadTWh:    (solarNet - bessCharged) / mwhPerTWh,
		BESSToLoadTWh:     bessDischarged / mwhPerTWh,
		GeneratorTWh:      generator / mwhPerTWh,
		TotalLoadTWh:      loadServed / mwhPerTWh,
		RenewableFraction: 1 - generator/loadServed,
	}
	mix.TotalGenerationTWh = mix.SolarNetTWh + mix.BESSToLoadTWh + mix.GeneratorTWh
	return mix, nil
}

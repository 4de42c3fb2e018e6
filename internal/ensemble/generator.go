package ensemble

import (
	"github.com/heliostack/dcsim/internal/config"
)

// GenerateCases expands the sweep into the full Cartesian product of
// candidate configurations: solar is the outer loop, storage the middle,
// generator the inner. The order is deterministic and defines the
// tie-break order for best-case selection.
//
// Validation failures abort before any case exists; a nil error guarantees
// len(cases) == cfg.CaseCount() > 0.
func GenerateCases(cfg *config.SweepConfig) ([]Case, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	solarVals := cfg.Solar.Values()
	storageVals := cfg.Storage.Values()
	generatorVals := cfg.Generator.Values()

	cases := make([]Case, 0, len(solarVals)*len(storageVals)*len(generatorVals))
	for _, solarMW := range solarVals {
		for _, storageMW := range storageVals {
			for _, generatorMW := range generatorVals {
				cases = append(cases, Case{
					SolarCapacityMW:     solarMW,
					StoragePowerMW:      storageMW,
					GeneratorCapacityMW: generatorMW,
					GeneratorType:       cfg.GeneratorType,
					DatacenterLoadMW:    cfg.DatacenterLoadMW,
					Latitude:            cfg.Latitude,
					Longitude:           cfg.Longitude,
				})
			}
		}
	}
	return cases, nil
}

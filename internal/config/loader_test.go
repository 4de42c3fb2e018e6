package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSweep(t *testing.T) {
	path := writeFile(t, "sweep.yaml", `
latitude: 31.2275
longitude: -102.7403
datacenter_load_mw: 100
generator_type: Gas Engine
solar: {start: 0, stop: 1500, step: 50}
storage: {start: 0, stop: 1500, step: 50}
generator: {start: 0, stop: 125, step: 25}
`)

	cfg, err := LoadSweep(path)
	require.NoError(t, err)
	assert.InDelta(t, 31.2275, cfg.Latitude, 1e-9)
	assert.Equal(t, GasEngine, cfg.GeneratorType)
	assert.Equal(t, Range{Start: 0, Stop: 1500, Step: 50}, cfg.Solar)
	assert.Equal(t, 30*30*5, cfg.CaseCount())
}

func TestLoadSweepDefaults(t *testing.T) {
	// generator_type and load fall back to defaults when omitted.
	path := writeFile(t, "sweep.yaml", `
latitude: 31.9
longitude: -106.2
solar: {start: 0, stop: 100, step: 50}
storage: {start: 0, stop: 100, step: 50}
generator: {start: 0, stop: 25, step: 25}
`)

	cfg, err := LoadSweep(path)
	require.NoError(t, err)
	assert.Equal(t, GasEngine, cfg.GeneratorType)
	assert.Equal(t, 100.0, cfg.DatacenterLoadMW)
}

func TestLoadSweepRejectsInvalid(t *testing.T) {
	path := writeFile(t, "sweep.yaml", `
latitude: 31.9
longitude: -106.2
solar: {start: 0, stop: 100, step: 0}
storage: {start: 0, stop: 100, step: 50}
generator: {start: 0, stop: 25, step: 25}
`)

	_, err := LoadSweep(path)
	require.Error(t, err)
	var verr *InputValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestLoadSweepMissingFile(t *testing.T) {
	_, err := LoadSweep(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadCostDefaults(t *testing.T) {
	cfg, err := LoadCost("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCostConfig(), *cfg)
}

func TestLoadCostOverlay(t *testing.T) {
	path := writeFile(t, "cost.yaml", `
fuel_price_per_mmbtu: 7.25
leverage_pct: 60
`)

	cfg, err := LoadCost(path)
	require.NoError(t, err)
	assert.InDelta(t, 7.25, cfg.FuelPricePerMMBtu, 1e-9)
	assert.InDelta(t, 60, cfg.LeveragePct, 1e-9)

	// Everything not overridden keeps its default.
	defaults := DefaultCostConfig()
	assert.Equal(t, defaults.DebtTermYears, cfg.DebtTermYears)
	assert.Equal(t, defaults.DepreciationSchedule, cfg.DepreciationSchedule)
	assert.InDelta(t, defaults.SolarCapexPerW, cfg.SolarCapexPerW, 1e-9)
}

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresetDefaults(t *testing.T) {
	// hightransport is the benchmark forcing combination
	ip := Defaults(P_HighTransport)
	assert.Equal(t, 4.0, ip.TidalRange)
	assert.Equal(t, 8.0, ip.TidalPeriod)
	assert.Equal(t, 0.08, ip.BeachSlope)
	assert.Equal(t, 0.2, ip.GrainSize)
	assert.Equal(t, 2.5, ip.WaveHeight)
	assert.Equal(t, 6.0, ip.WavePeriod)
	assert.Equal(t, 2.0, ip.SimulationSpeed)
	assert.Equal(t, 1.5, ip.SedimentSupply)
}

func TestNewPresetType(t *testing.T) {
	for i, name := range preset_names {
		assert.Equal(t, PresetType(i), NewPresetType(name))
	}
	assert.Equal(t, P_Calm, NewPresetType("nosuchpreset"))
}

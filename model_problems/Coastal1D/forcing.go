package Coastal1D

import "math"

// ForcingParams take effect on the very next Step call. Shape changes
// (beach slope, sediment supply) act only through Reinitialize, so no
// change-detection logic is needed anywhere.
type ForcingParams struct {
	TidalRange      float64 // m
	TidalPeriod     float64 // hours
	GrainSize       float64 // mm
	WaveHeight      float64 // m
	WavePeriod      float64 // s
	SimulationSpeed float64 // multiplier on simulated time per step
}

// TidalLevel is the instantaneous tide elevation at time t (seconds).
func TidalLevel(t float64, fp ForcingParams) float64 {
	return 0.5 * fp.TidalRange * math.Sin(2*math.Pi*t/(fp.TidalPeriod*3600))
}

// WaveLevel is the wave-induced surface elevation at (t, x): a traveling
// wave with a spatial phase lag of x/100 radians.
func WaveLevel(t, x float64, fp ForcingParams) float64 {
	return fp.WaveHeight * math.Sin(2*math.Pi*t/fp.WavePeriod-x/100)
}

// WaveForce is the momentum-equation forcing term, the time-derivative-scaled
// companion of WaveLevel.
func WaveForce(t, x float64, fp ForcingParams) float64 {
	return 0.2 * fp.WaveHeight * math.Cos(2*math.Pi*t/fp.WavePeriod-x/100)
}

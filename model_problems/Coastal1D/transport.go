package Coastal1D

import (
	"math"

	"github.com/notargets/coastmorph/grid1d"
)

const (
	waterDensity    = 1000. // kg/m^3
	sedimentDensity = 2650. // kg/m^3
	shieldsCoeff    = 0.03  // relaxed critical-shear threshold

	transportScale     = 5.0  // amplification for visible transport
	maxTransport       = 0.02 // |qs| cap, m^2/s
	maxExcessShear     = 8.0  // cap on (tau* - 1) inside the rate law
	critReg            = 1e-4 // regularizes tau* near vanishing tau_crit
	availabilityScale  = 0.02 // thickness giving full availability, m
	minTransportDepth  = 0.01
	minMobileThickness = 0.001
)

// transportRate is an amplified Meyer-Peter-Muller-style bedload formula.
// The x5 scale and relaxed Shields threshold are tuned for visible transport
// at interactive parameter ranges, not physical accuracy; changing them
// changes every scenario outcome. d50 is in meters.
func transportRate(u, h, thickness, d50 float64) float64 {
	tau := waterDensity * Gravity * h * math.Abs(u) * u / (h + depthReg)
	tauCrit := shieldsCoeff * (sedimentDensity - waterDensity) * Gravity * d50
	if math.Abs(tau) <= tauCrit || h <= minTransportDepth || thickness <= minMobileThickness {
		return 0
	}
	// Transport throttles linearly to zero as the mobile layer thins below
	// availabilityScale, modeling bedrock exposure.
	avail := math.Min(1, thickness/availabilityScale)
	excess := math.Min(math.Abs(tau)/(tauCrit+critReg)-1, maxExcessShear)
	if excess <= 0 {
		return 0
	}
	qs := transportScale * math.Sqrt(Gravity*d50) * d50 * math.Pow(excess, 1.5)
	qs *= math.Copysign(avail, u)
	return clamp(qs, -maxTransport, maxTransport)
}

// updateTransport fills qs for every cell. All rates must be in place before
// the morphodynamic update reads neighbor values.
func updateTransport(next *grid1d.Grid, fp ForcingParams) {
	d50 := fp.GrainSize / 1000. // mm to m
	for i := range next.Points {
		p := &next.Points[i]
		p.Qs = transportRate(p.U, p.H, p.SedimentThickness, d50)
	}
}

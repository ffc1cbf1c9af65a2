package Coastal1D

import (
	"math"

	"github.com/notargets/coastmorph/grid1d"
)

const (
	DT      = 0.1  // fixed physics step, seconds
	Gravity = 9.81 // m/s^2

	dryDepth      = 0.05 // below this the cell holds no momentum
	frictionCoeff = 0.02
	depthReg      = 0.01 // regularizes divisions by depth
	maxVelocity   = 2.0
)

// updateDepths sets h = max(0, totalWaterLevel - zb) for every cell. The
// depth field must be complete before any velocity update runs, since the
// momentum balance reads neighboring depths.
func updateDepths(next *grid1d.Grid, t float64, fp ForcingParams) {
	tide := TidalLevel(t, fp)
	for i := range next.Points {
		p := &next.Points[i]
		p.H = math.Max(0, tide+WaveLevel(t, p.X, fp)-p.Zb)
	}
}

// updateVelocities advances the simplified momentum balance on interior
// cells: pressure gradient from the centered depth difference, quadratic bed
// friction, and the wave forcing term, explicit forward Euler at DT. Dry
// cells (h <= dryDepth) carry no momentum. Velocities are hard-clamped,
// which is what keeps the explicit scheme stable at steep depth gradients.
func updateVelocities(cur, next *grid1d.Grid, t float64, fp ForcingParams) {
	n := next.Size()
	next.Points[0].U = 0
	next.Points[n-1].U = 0
	for i := 1; i < n-1; i++ {
		p := &next.Points[i]
		if p.H <= dryDepth {
			p.U = 0
			continue
		}
		dhdx := (next.Points[i+1].H - next.Points[i-1].H) / (2 * next.Dx)
		u := cur.Points[i].U
		friction := frictionCoeff * u * math.Abs(u) / (p.H + depthReg)
		u -= DT * (Gravity*dhdx + friction - WaveForce(t, p.X, fp))
		p.U = clamp(u, -maxVelocity, maxVelocity)
	}
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

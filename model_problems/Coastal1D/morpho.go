package Coastal1D

import (
	"math"

	"github.com/notargets/coastmorph/grid1d"
)

const (
	porosity     = 0.2
	morphoScale  = 10.0 // makes per-step bed change perceptible at interactive time scales
	maxBedChange = 0.1  // m per step
)

// updateBed applies the Exner bed-evolution update on the interior band
// (a two-cell buffer from each boundary): the bed rises or falls against the
// spatial gradient of the transport rate, scaled by porosity. No spatial
// smoothing is applied, favoring visible local change over smooth profiles.
// Edge cells then mirror their interior neighbor, which prevents runaway
// erosion or accretion at the open boundaries.
func updateBed(next *grid1d.Grid, fp ForcingParams) {
	n := next.Size()
	for i := 2; i <= n-3; i++ {
		p := &next.Points[i]
		dqsdx := (next.Points[i+1].Qs - next.Points[i-1].Qs) / (2 * next.Dx)
		dzbdt := -dqsdx / (1 - porosity)
		bedChange := clamp(dzbdt*DT*fp.SimulationSpeed*morphoScale, -maxBedChange, maxBedChange)
		old := p.SedimentThickness
		p.SedimentThickness = math.Max(0, old+bedChange)
		p.CumulativeChange += p.SedimentThickness - old
		p.Zb = p.BedrockLevel + p.SedimentThickness
		if cap := grid1d.SedimentCap(p.X); p.SedimentThickness > cap {
			p.SedimentThickness = cap
			p.Zb = p.BedrockLevel + cap
		}
	}
	next.MirrorBoundaries()
}

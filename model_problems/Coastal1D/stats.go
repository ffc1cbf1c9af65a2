package Coastal1D

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/coastmorph/grid1d"
)

// TransportActivityThreshold is the |qs| above which a cell counts as
// actively transporting, for statistics and display purposes.
const TransportActivityThreshold = 1e-5

// Stats is the reduction of a grid snapshot consumed by the statistics
// panel.
type Stats struct {
	TotalErosion    float64 // sum of |cumulativeChange| over eroding cells, m
	TotalDeposition float64 // sum of cumulativeChange over accreting cells, m
	MaxAbsChange    float64 // largest |cumulativeChange| on the grid, m
	ActiveTransport int     // cells with |qs| above the activity threshold
}

// Reduce computes summary statistics from a snapshot. The grid is read only.
func Reduce(g *grid1d.Grid) (st Stats) {
	absChange := make([]float64, g.Size())
	for i := range g.Points {
		p := &g.Points[i]
		absChange[i] = math.Abs(p.CumulativeChange)
		switch {
		case p.CumulativeChange < 0:
			st.TotalErosion += absChange[i]
		case p.CumulativeChange > 0:
			st.TotalDeposition += absChange[i]
		}
		if math.Abs(p.Qs) > TransportActivityThreshold {
			st.ActiveTransport++
		}
	}
	st.MaxAbsChange = floats.Max(absChange)
	return
}

// NoTransport reports whether the snapshot shows no transport activity
// anywhere. This is an observation, not an error.
func (st Stats) NoTransport() bool {
	return st.ActiveTransport == 0
}

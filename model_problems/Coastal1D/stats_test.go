package Coastal1D

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/coastmorph/grid1d"
)

func TestReduce(t *testing.T) {
	g := &grid1d.Grid{
		Dx: 5,
		Points: []grid1d.GridPoint{
			{CumulativeChange: -0.5, Qs: 0.001},
			{CumulativeChange: 0.3, Qs: -0.002},
			{CumulativeChange: 0, Qs: 0},
			{CumulativeChange: -0.1, Qs: 1.e-6},
		},
	}
	st := Reduce(g)
	assert.InDelta(t, 0.6, st.TotalErosion, 1.e-12)
	assert.InDelta(t, 0.3, st.TotalDeposition, 1.e-12)
	assert.InDelta(t, 0.5, st.MaxAbsChange, 1.e-12)
	// 1e-6 sits below the activity threshold
	assert.Equal(t, 2, st.ActiveTransport)
	assert.False(t, st.NoTransport())
}

func TestReduceQuietGrid(t *testing.T) {
	g := grid1d.NewGrid(grid1d.ShapeParams{BeachSlope: 0.05, SedimentSupply: 1.0})
	st := Reduce(g)
	assert.Zero(t, st.TotalErosion)
	assert.Zero(t, st.TotalDeposition)
	assert.Zero(t, st.MaxAbsChange)
	assert.True(t, st.NoTransport())
}

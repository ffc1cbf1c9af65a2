package grid1d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGrid(t *testing.T) {
	sp := ShapeParams{BeachSlope: 0.05, SedimentSupply: 1.0}
	g := NewGrid(sp)
	assert.Equal(t, DefaultGridSize, g.Size())
	assert.Equal(t, DefaultDomainLength/DefaultGridSize, g.Dx)
	for i, p := range g.Points {
		assert.Equal(t, float64(i)*g.Dx, p.X)
		assert.Equal(t, p.BedrockLevel+p.SedimentThickness, p.Zb)
		assert.Equal(t, p.SedimentThickness, p.InitialSedimentThickness)
		assert.Zero(t, p.CumulativeChange)
		assert.Zero(t, p.H)
		assert.Zero(t, p.U)
		assert.Zero(t, p.Qs)
		// Bedrock never dips below datum, so an unforced run stays dry
		assert.GreaterOrEqual(t, p.BedrockLevel, 0.)
		assert.LessOrEqual(t, p.SedimentThickness, SedimentCap(p.X))
	}
	// Ghost cells duplicate their interior neighbor
	assert.Equal(t, g.Points[1].BedrockLevel, g.Points[0].BedrockLevel)
	assert.Equal(t, g.Points[1].SedimentThickness, g.Points[0].SedimentThickness)
	last := g.Size() - 1
	assert.Equal(t, g.Points[last-1].BedrockLevel, g.Points[last].BedrockLevel)
	assert.Equal(t, g.Points[last-1].SedimentThickness, g.Points[last].SedimentThickness)
	// The beach face rises at BeachSlope, the upper beach at half of it
	faceCell := int(UpperBeachStart/g.Dx) - 2 // strictly inside the beach face zone
	upperCell := g.Size() - 3                 // strictly inside the upper beach zone
	faceRise := (g.Points[faceCell].BedrockLevel - g.Points[faceCell-1].BedrockLevel) / g.Dx
	upperRise := (g.Points[upperCell].BedrockLevel - g.Points[upperCell-1].BedrockLevel) / g.Dx
	assert.InDelta(t, sp.BeachSlope, faceRise, 1.e-12)
	assert.InDelta(t, 0.5*sp.BeachSlope, upperRise, 1.e-12)
}

func TestNewGridDeterministic(t *testing.T) {
	sp := ShapeParams{BeachSlope: 0.08, SedimentSupply: 1.5}
	assert.Equal(t, NewGrid(sp), NewGrid(sp))
}

func TestSedimentSupplyScaling(t *testing.T) {
	g1 := NewGrid(ShapeParams{BeachSlope: 0.05, SedimentSupply: 1.0})
	g2 := NewGrid(ShapeParams{BeachSlope: 0.05, SedimentSupply: 2.0})
	for i := range g1.Points {
		cap := SedimentCap(g1.Points[i].X)
		want := 2 * g1.Points[i].SedimentThickness
		if want > cap {
			want = cap
		}
		assert.InDelta(t, want, g2.Points[i].SedimentThickness, 1.e-12)
	}
}

func TestSedimentCap(t *testing.T) {
	assert.Equal(t, OffshoreSedimentCap, SedimentCap(0))
	assert.Equal(t, OffshoreSedimentCap, SedimentCap(BeachFaceStart-1))
	assert.Equal(t, BeachSedimentCap, SedimentCap(BeachFaceStart))
	assert.Equal(t, BeachSedimentCap, SedimentCap(900))
}

func TestCopyIsDeep(t *testing.T) {
	g := NewGrid(ShapeParams{BeachSlope: 0.05, SedimentSupply: 1.0})
	gc := g.Copy()
	assert.Equal(t, g, gc)
	gc.Points[10].SedimentThickness += 1
	assert.NotEqual(t, g.Points[10].SedimentThickness, gc.Points[10].SedimentThickness)
}

func TestMirrorBoundaries(t *testing.T) {
	g := NewGrid(ShapeParams{BeachSlope: 0.05, SedimentSupply: 1.0})
	g.Points[1].SedimentThickness = 2.5
	g.Points[1].Zb = g.Points[1].BedrockLevel + 2.5
	g.Points[0].U = 1.0
	g.MirrorBoundaries()
	assert.Equal(t, g.Points[1].SedimentThickness, g.Points[0].SedimentThickness)
	assert.Equal(t, g.Points[1].Zb, g.Points[0].Zb)
	assert.Zero(t, g.Points[0].U)
	last := g.Size() - 1
	assert.Equal(t, g.Points[last-1].SedimentThickness, g.Points[last].SedimentThickness)
	assert.Equal(t, g.Points[last-1].Zb, g.Points[last].Zb)
	assert.Zero(t, g.Points[last].U)
}

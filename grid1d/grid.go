package grid1d

import "math"

const (
	DefaultGridSize     = 200
	DefaultDomainLength = 1000. // meters

	// Sediment thickness caps by region
	OffshoreSedimentCap = 8.0
	BeachSedimentCap    = 12.0

	// Zone edges of the piecewise initial profile
	BeachFaceStart  = 300. // offshore / beach face transition
	UpperBeachStart = 600. // beach face / upper beach transition
)

// GridPoint carries the per-cell state of the profile. X, BedrockLevel and
// InitialSedimentThickness are fixed at grid creation; the stepping loop
// mutates the rest.
type GridPoint struct {
	X                        float64 // position along the domain, m
	H                        float64 // water depth, m, >= 0
	U                        float64 // horizontal velocity, m/s, |U| <= 2
	Zb                       float64 // bed elevation = BedrockLevel + SedimentThickness
	Qs                       float64 // bedload transport rate, m^2/s, signed
	SedimentThickness        float64 // mobile layer thickness, m, >= 0, region-capped
	BedrockLevel             float64 // immobile substrate elevation, m
	InitialSedimentThickness float64 // snapshot at creation, for display/comparison
	CumulativeChange         float64 // net erosion (-) / deposition (+) since creation, m
}

// ShapeParams determine the grid geometry and initial sediment budget. They
// only act at (re)initialization; forcing-side parameters never reshape the
// grid.
type ShapeParams struct {
	BeachSlope     float64 // beach face slope, dimensionless
	SedimentSupply float64 // initial sediment thickness multiplier
	GridSize       int     // number of cells, 0 selects DefaultGridSize
	DomainLength   float64 // meters, 0 selects DefaultDomainLength
}

// Grid is an ordered sequence of cells over a fixed domain. Cell count and
// width are fixed for the grid's lifetime.
type Grid struct {
	Points []GridPoint
	Dx     float64
}

// NewGrid builds the initial profile from shape parameters. The bed is a
// three-zone piecewise function of x: a gentle offshore shelf below
// BeachFaceStart, the beach face rising at BeachSlope, and the upper beach
// at half that slope. Bedrock is nonnegative everywhere so an unforced run
// stays dry. Boundary cells duplicate their interior neighbor so that the
// reflective boundary copy keeps Zb == BedrockLevel + SedimentThickness
// exact at the edges.
func NewGrid(sp ShapeParams) (g *Grid) {
	n := sp.GridSize
	if n == 0 {
		n = DefaultGridSize
	}
	length := sp.DomainLength
	if length == 0 {
		length = DefaultDomainLength
	}
	dx := length / float64(n)
	g = &Grid{
		Points: make([]GridPoint, n),
		Dx:     dx,
	}
	faceRise := sp.BeachSlope * (UpperBeachStart - BeachFaceStart)
	for i := range g.Points {
		p := &g.Points[i]
		p.X = float64(i) * dx
		switch {
		case p.X < BeachFaceStart:
			p.BedrockLevel = 0.001 * p.X
			p.SedimentThickness = 0.5 * sp.SedimentSupply
		case p.X < UpperBeachStart:
			p.BedrockLevel = 0.3 + sp.BeachSlope*(p.X-BeachFaceStart)
			p.SedimentThickness = 1.0 * sp.SedimentSupply
		default:
			p.BedrockLevel = 0.3 + faceRise + 0.5*sp.BeachSlope*(p.X-UpperBeachStart)
			p.SedimentThickness = 0.5 * sp.SedimentSupply
		}
		if cap := SedimentCap(p.X); p.SedimentThickness > cap {
			p.SedimentThickness = cap
		}
	}
	// Ghost-cell convention: edges mirror their interior neighbor exactly,
	// bedrock included, so the per-step boundary copy preserves Zb
	// consistency.
	g.Points[0].BedrockLevel = g.Points[1].BedrockLevel
	g.Points[0].SedimentThickness = g.Points[1].SedimentThickness
	g.Points[n-1].BedrockLevel = g.Points[n-2].BedrockLevel
	g.Points[n-1].SedimentThickness = g.Points[n-2].SedimentThickness
	for i := range g.Points {
		p := &g.Points[i]
		p.Zb = p.BedrockLevel + p.SedimentThickness
		p.InitialSedimentThickness = p.SedimentThickness
	}
	return
}

// SedimentCap returns the mobile-layer thickness cap for a position:
// 8 m offshore of the beach face, 12 m on the beach.
func SedimentCap(x float64) float64 {
	if x < BeachFaceStart {
		return OffshoreSedimentCap
	}
	return BeachSedimentCap
}

// Size returns the cell count.
func (g *Grid) Size() int {
	return len(g.Points)
}

// Copy returns a deep copy, safe to hand to concurrent readers.
func (g *Grid) Copy() (gc *Grid) {
	gc = &Grid{
		Points: make([]GridPoint, len(g.Points)),
		Dx:     g.Dx,
	}
	copy(gc.Points, g.Points)
	return
}

// MirrorBoundaries applies the reflective boundary: edge cells copy
// SedimentThickness and Zb from their nearest interior neighbor and carry no
// momentum. Called after every morphodynamic update to prevent runaway edge
// erosion or accretion.
func (g *Grid) MirrorBoundaries() {
	n := len(g.Points)
	g.Points[0].SedimentThickness = g.Points[1].SedimentThickness
	g.Points[0].Zb = g.Points[1].Zb
	g.Points[0].U = 0
	g.Points[n-1].SedimentThickness = g.Points[n-2].SedimentThickness
	g.Points[n-1].Zb = g.Points[n-2].Zb
	g.Points[n-1].U = 0
}

// MinThickness returns the smallest mobile-layer thickness on the grid.
func (g *Grid) MinThickness() (min float64) {
	min = math.Inf(1)
	for i := range g.Points {
		if t := g.Points[i].SedimentThickness; t < min {
			min = t
		}
	}
	return
}

package Coastal1D

import (
	"fmt"

	"github.com/notargets/coastmorph/grid1d"
)

// RunState is the driver's play/pause state. The external scheduler only
// decides when to call Step; it never mutates simulation state directly.
type RunState uint8

const (
	Running RunState = iota
	Paused
)

// Simulation owns the current grid snapshot, the simulation clock and the
// run state, nothing else. Step is a pure transition over (grid, time),
// suitable for deterministic replay.
type Simulation struct {
	Shape   grid1d.ShapeParams
	Forcing ForcingParams

	grid  *grid1d.Grid
	time  float64
	state RunState
}

func NewSimulation(sp grid1d.ShapeParams, fp ForcingParams) (c *Simulation) {
	c = &Simulation{
		Shape:   sp,
		Forcing: fp,
		grid:    grid1d.NewGrid(sp),
		state:   Running,
	}
	return
}

// Step advances shallow-water hydrodynamics, bedload transport and bed
// evolution by one fixed DT step against an immutable copy of the current
// grid, then swaps in the result. The pass order is load-bearing: the depth
// field must be complete before velocities read neighbor depths, and all
// transport rates must be in place before the Exner update reads neighbor
// rates. A paused simulation leaves grid and time untouched.
func (c *Simulation) Step() {
	if c.state == Paused {
		return
	}
	c.grid, c.time = Step(c.grid, c.time, c.Forcing)
}

// Step is the transition function underlying Simulation.Step: it consumes
// one grid and produces the next, double-buffered so no pass can observe a
// partially updated neighbor. The input grid is not modified.
func Step(cur *grid1d.Grid, t float64, fp ForcingParams) (*grid1d.Grid, float64) {
	next := cur.Copy()
	updateDepths(next, t, fp)
	updateVelocities(cur, next, t, fp)
	updateTransport(next, fp)
	updateBed(next, fp)
	return next, t + DT*fp.SimulationSpeed
}

// StepN takes n physics steps. An external fixed-rate scheduler uses this to
// decouple physics fidelity from its presentation rate by taking several
// 0.1 s steps per presented frame.
func (c *Simulation) StepN(n int) {
	for i := 0; i < n; i++ {
		c.Step()
	}
}

// Pause freezes the simulation; Step becomes a no-op until Resume.
func (c *Simulation) Pause() { c.state = Paused }

// Resume re-enables stepping.
func (c *Simulation) Resume() { c.state = Running }

func (c *Simulation) State() RunState { return c.state }

// Snapshot returns a deep copy of the current grid and the simulation time.
// Concurrent readers only ever see fully-produced states.
func (c *Simulation) Snapshot() (*grid1d.Grid, float64) {
	return c.grid.Copy(), c.time
}

func (c *Simulation) Time() float64 { return c.time }

// Reset rebuilds the grid from the current shape parameters and rewinds the
// clock to zero.
func (c *Simulation) Reset() {
	c.grid = grid1d.NewGrid(c.Shape)
	c.time = 0
}

// Reinitialize is Reset with new shape parameters; it is the only path by
// which beach slope or sediment supply take effect.
func (c *Simulation) Reinitialize(sp grid1d.ShapeParams) {
	c.Shape = sp
	c.Reset()
}

func (c *Simulation) String() string {
	return fmt.Sprintf("Coastal1D: %d cells, dx = %.2fm, t = %8.2fs",
		c.grid.Size(), c.grid.Dx, c.time)
}

// Package worm implements the gravity worm simulation.
// The player holds the action key to climb and releases it to fall, steering a
// worm through a scrolling cave whose walls drift up and down together, and
// picks up prizes for bonus points. The simulation advances in fixed ticks and
// knows nothing about terminals: it is driven by elapsed time and press/release
// events and read through Snapshot.
package worm

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexchandel/gravity-worm/internal/config"
	"github.com/alexchandel/gravity-worm/internal/core"
)

// Status is the phase of a run.
type Status int

const (
	StatusBefore Status = iota // Waiting for the first tap, physics frozen
	StatusDuring               // Active play
	StatusDead                 // Worm hit the cave, waiting for a restart tap
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusBefore:
		return "Before"
	case StatusDuring:
		return "During"
	case StatusDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Direction is a vertical heading. Rows grow toward the bottom of the screen.
type Direction int

const (
	DirUp Direction = iota
	DirDown
)

// Unit returns the signed row step for the direction.
func (d Direction) Unit() int {
	if d == DirUp {
		return -1
	}
	return 1
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == DirUp {
		return DirDown
	}
	return DirUp
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	if d == DirUp {
		return "Up"
	}
	return "Down"
}

// Segment is one column of the worm trail.
type Segment struct {
	Height float64    // Row in blocks, fractional
	Color  core.Color // Trail colour derived from the velocity when the segment was laid
}

// Game holds the complete simulation state.
type Game struct {
	cfg        config.WormConfig
	rng        Rand
	palette    Palette
	climb      colorful.Color
	fall       colorful.Color
	onGameOver func(score int)

	blockWidth int
	columns    int
	rows       int

	caveTop    Ring[int]
	caveBottom Ring[int]
	caveDir    Direction

	worm    Ring[Segment]
	wormDir Direction
	wormVel int

	prizes    *PrizeField
	score     int
	collected int    // Prizes picked up this run
	ticks     uint64 // Ticks since the run started
	dt        float64
	status    Status
}

// New creates a game from a validated configuration and a randomness source.
func New(cfg config.WormConfig, rng Rand) *Game {
	g := &Game{
		cfg:     cfg,
		rng:     rng,
		palette: NewPalette(cfg.Colors),
		climb:   hexColor(cfg.Colors.WormClimb),
		fall:    hexColor(cfg.Colors.WormFall),
	}
	g.Reset()
	return g
}

// SetGameOverHandler registers fn to be called with the final score when the
// worm dies.
func (g *Game) SetGameOverHandler(fn func(score int)) {
	g.onGameOver = fn
}

// Reset reinitializes every field for a fresh run with the configured dimensions.
// The randomness source and game-over handler are kept.
func (g *Game) Reset() {
	b := g.cfg.Board
	g.blockWidth = b.BlockWidth()
	g.columns = b.Width / g.blockWidth
	g.rows = b.Height / g.blockWidth

	g.caveTop = NewRing(g.columns, g.rows/8)
	g.caveBottom = NewRing(g.columns, g.rows*7/8)
	g.caveDir = DirUp

	g.wormDir = DirDown
	g.wormVel = g.cfg.Physics.InitialVelocity
	g.worm = NewRing(g.columns/2, Segment{
		Height: float64(g.rows) / 2,
		Color:  g.wormColor(g.wormVel),
	})

	g.prizes = NewPrizeField(g.rng, g.columns, g.cfg.Prizes)
	g.score = 0
	g.collected = 0
	g.ticks = 0
	g.dt = 0
	g.status = StatusBefore
}

// Advance accumulates elapsed seconds and runs at most one tick once more than
// a tick's worth has built up. Leftover time is discarded. No-op unless playing.
func (g *Game) Advance(dt float64) {
	if g.status != StatusDuring {
		return
	}

	g.dt += dt
	if g.dt > g.cfg.Physics.TickSeconds {
		g.dt = 0
		g.Step()
	}
}

// Step runs exactly one tick, ignoring the time accumulator. No-op unless playing.
func (g *Game) Step() {
	if g.status != StatusDuring {
		return
	}
	g.tick()
}

// tick performs one fixed update.
func (g *Game) tick() {
	g.ticks++

	// Bounce the cave off the screen edges. Turning downward pulls the bottom
	// wall in by one for this tick only, unless the gap is already at its minimum.
	// The minimum is only reached after roughly 90 bounce cycles on the default board.
	thunk := 0
	if g.isWallCollided() {
		if g.caveDir == DirUp && g.caveBottom.Last()-g.caveTop.Last()-1 >= g.cfg.Physics.MinGap {
			thunk = -1
		}
		g.caveDir = g.caveDir.Flip()
	}

	maxVel := g.cfg.Physics.MaxVelocity
	g.wormVel = core.Clamp(g.wormVel+g.wormDir.Unit(), -maxVel, maxVel)

	top := g.caveTop.Last() + g.caveDir.Unit()
	bottom := g.caveBottom.Last() + g.caveDir.Unit() + thunk
	g.caveTop.Push(top)
	g.caveBottom.Push(bottom)

	g.prizes.Spawn(top, bottom)
	g.prizes.Scroll()

	// Prizes are checked against the head before the worm moves this tick.
	n := g.prizes.Collect(g.worm.Len(), g.worm.Last().Height)
	g.collected += n
	g.score += n * g.cfg.Prizes.Bonus

	g.worm.Push(Segment{
		Height: g.worm.Last().Height + float64(g.wormVel)/float64(g.cfg.Physics.VelocityScale),
		Color:  g.wormColor(g.wormVel),
	})

	if g.isWormCollided() {
		g.status = StatusDead
		if g.onGameOver != nil {
			g.onGameOver(g.score)
		}
		return
	}
	g.score++
}

// isWallCollided reports whether the newest cave column touches a screen edge.
func (g *Game) isWallCollided() bool {
	return g.caveTop.Last() <= 0 || g.caveBottom.Last() >= g.rows-1
}

// isWormCollided checks the worm head against the walls at its own column.
// The top wall gets one row of margin, the bottom wall none.
func (g *Game) isWormCollided() bool {
	col := g.worm.Len() - 1
	height := g.worm.Last().Height
	top := float64(g.caveTop.At(col)) + 1
	bottom := float64(g.caveBottom.At(col))
	return height < top || height > bottom
}

// wormColor blends from the climb colour at full upward speed to the fall
// colour at full downward speed.
func (g *Game) wormColor(vel int) core.Color {
	maxVel := float64(g.cfg.Physics.MaxVelocity)
	t := core.ClampF((float64(vel)+maxVel)/(2*maxVel), 0, 1)
	return core.Color(g.climb.BlendRgb(g.fall, t).Clamped().Hex())
}

// Press handles the action key going down: climb while playing.
func (g *Game) Press(a core.Action) {
	if a != core.ActionThrust {
		return
	}
	if g.status == StatusDuring {
		g.wormDir = DirUp
	}
}

// Release handles the action key coming up: start, fall, or restart.
func (g *Game) Release(a core.Action) {
	if a != core.ActionThrust {
		return
	}
	switch g.status {
	case StatusBefore:
		g.status = StatusDuring
	case StatusDuring:
		g.wormDir = DirDown
	case StatusDead:
		g.Reset()
	}
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Status returns the current phase of the run.
func (g *Game) Status() Status {
	return g.status
}

// Palette returns the colours the game was configured with.
func (g *Game) Palette() Palette {
	return g.palette
}

// Render draws the current state into dst.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.Snapshot(), g.palette)
}

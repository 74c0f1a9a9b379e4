package worm

// Snapshot is a read-only copy of the game state for rendering, telemetry and
// autopilot decisions. It shares no memory with the Game.
type Snapshot struct {
	Tick          uint64
	Width         int // Viewport width in pixels
	Height        int // Viewport height in pixels
	BlockWidth    int
	Columns       int
	Rows          int
	VelocityScale int

	CaveTop    []int // Oldest (leftmost) to newest (rightmost)
	CaveBottom []int
	CaveDir    Direction

	Worm     []Segment // Oldest to newest; the last segment is the head
	WormDir  Direction
	Velocity int

	Prizes    []Prize
	Score     int
	Collected int
	Status    Status
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	prizes := make([]Prize, len(g.prizes.Prizes()))
	copy(prizes, g.prizes.Prizes())

	return Snapshot{
		Tick:          g.ticks,
		Width:         g.cfg.Board.Width,
		Height:        g.cfg.Board.Height,
		BlockWidth:    g.blockWidth,
		Columns:       g.columns,
		Rows:          g.rows,
		VelocityScale: g.cfg.Physics.VelocityScale,
		CaveTop:       g.caveTop.Values(),
		CaveBottom:    g.caveBottom.Values(),
		CaveDir:       g.caveDir,
		Worm:          g.worm.Values(),
		WormDir:       g.wormDir,
		Velocity:      g.wormVel,
		Prizes:        prizes,
		Score:         g.score,
		Collected:     g.collected,
		Status:        g.status,
	}
}

// Head returns the worm's current height, or zero for an empty trail.
func (s Snapshot) Head() float64 {
	if len(s.Worm) == 0 {
		return 0
	}
	return s.Worm[len(s.Worm)-1].Height
}

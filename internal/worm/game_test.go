package worm

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/alexchandel/gravity-worm/internal/config"
	"github.com/alexchandel/gravity-worm/internal/core"
)

// scriptedRand returns the scripted values in order (reduced modulo n), then zeros.
type scriptedRand struct {
	values []int
	i      int
}

func (r *scriptedRand) Intn(n int) int {
	if r.i >= len(r.values) {
		return 0
	}
	v := r.values[r.i]
	r.i++
	return v % n
}

// rawRand returns the scripted values unchecked, including out-of-range ones.
type rawRand struct {
	values []int
	i      int
}

func (r *rawRand) Intn(int) int {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

// newQuietGame returns a default game whose prize roll never succeeds.
func newQuietGame() *Game {
	return New(config.DefaultWormConfig(), &scriptedRand{})
}

func TestNewGameDimensions(t *testing.T) {
	g := newQuietGame()
	snap := g.Snapshot()

	if snap.BlockWidth != 4 {
		t.Errorf("BlockWidth = %d, expected 4", snap.BlockWidth)
	}
	if snap.Columns != 128 || snap.Rows != 128 {
		t.Errorf("Grid = %dx%d, expected 128x128", snap.Columns, snap.Rows)
	}
	if len(snap.Worm) != 64 {
		t.Errorf("Worm length = %d, expected 64", len(snap.Worm))
	}
	if snap.Head() != 64 {
		t.Errorf("Initial head = %f, expected 64", snap.Head())
	}
	if len(snap.CaveTop) != 128 || len(snap.CaveBottom) != 128 {
		t.Fatalf("Cave lengths = %d/%d, expected 128", len(snap.CaveTop), len(snap.CaveBottom))
	}
	for i := range snap.CaveTop {
		if snap.CaveTop[i] != 16 {
			t.Fatalf("CaveTop[%d] = %d, expected 16", i, snap.CaveTop[i])
		}
		if snap.CaveBottom[i] != 112 {
			t.Fatalf("CaveBottom[%d] = %d, expected 112", i, snap.CaveBottom[i])
		}
	}
	if snap.Status != StatusBefore {
		t.Errorf("Status = %v, expected Before", snap.Status)
	}
	if snap.Velocity != -16 || snap.WormDir != DirDown || snap.CaveDir != DirUp {
		t.Errorf("Initial motion = vel %d worm %v cave %v", snap.Velocity, snap.WormDir, snap.CaveDir)
	}
}

func TestAdvanceBeforeStartIsNoop(t *testing.T) {
	g := newQuietGame()
	before := *g

	for _, dt := range []float64{0, 0.01, 0.0625, 0.5, 100} {
		g.Advance(dt)
	}

	if !reflect.DeepEqual(before, *g) {
		t.Error("Advance while Before should not change any state")
	}
}

func TestAdvanceAccumulator(t *testing.T) {
	g := newQuietGame()
	g.Release(core.ActionThrust)

	g.Advance(0.03)
	g.Advance(0.03)
	if g.ticks != 0 {
		t.Fatalf("0.06s should not trigger a tick, ticks = %d", g.ticks)
	}

	g.Advance(0.03)
	if g.ticks != 1 {
		t.Fatalf("0.09s should trigger one tick, ticks = %d", g.ticks)
	}
	if g.dt != 0 {
		t.Errorf("Accumulator should reset after a tick, got %f", g.dt)
	}

	// A large delta still runs only one tick
	g.Advance(10)
	if g.ticks != 2 {
		t.Errorf("Advance(10) should run exactly one tick, ticks = %d", g.ticks)
	}

	// Exactly one threshold is not enough
	g.Advance(0.0625)
	if g.ticks != 2 {
		t.Errorf("Advance(threshold) should not tick, ticks = %d", g.ticks)
	}
}

func TestFallingWormDiesOnBottomWall(t *testing.T) {
	g := newQuietGame()

	var reported []int
	g.SetGameOverHandler(func(score int) {
		reported = append(reported, score)
	})

	g.Release(core.ActionThrust)
	if g.Status() != StatusDuring {
		t.Fatalf("Release while Before should start the game, status = %v", g.Status())
	}

	g.Release(core.ActionThrust)
	if g.wormDir != DirDown {
		t.Fatalf("Release while During should set direction Down, got %v", g.wormDir)
	}

	lastHeight := g.Snapshot().Head()
	ticks := 0
	for g.Status() == StatusDuring && ticks < 1000 {
		g.Advance(0.1)
		ticks++
	}

	if g.Status() != StatusDead {
		t.Fatalf("Worm should die within 1000 ticks, status = %v", g.Status())
	}
	if ticks != 56 {
		t.Errorf("Worm died after %d ticks, expected 56", ticks)
	}
	if g.Score() != 55 {
		t.Errorf("Score = %d, expected 55 (no increment on the fatal tick)", g.Score())
	}
	if len(reported) != 1 || reported[0] != 55 {
		t.Errorf("Game over handler got %v, expected [55]", reported)
	}

	snap := g.Snapshot()
	if snap.Head() <= float64(snap.CaveBottom[63]) {
		t.Errorf("Head %f should be past bottom wall %d", snap.Head(), snap.CaveBottom[63])
	}
	if snap.Head() <= lastHeight {
		t.Errorf("Falling worm should end lower than it started (%f -> %f)", lastHeight, snap.Head())
	}

	// Dead freezes everything. Handlers are funcs, which DeepEqual never
	// considers equal unless nil.
	g.SetGameOverHandler(nil)
	frozen := *g
	frozenSnap := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.Advance(1)
		g.Press(core.ActionThrust)
	}
	if !reflect.DeepEqual(frozen, *g) {
		t.Error("State should be frozen while Dead")
	}
	if !reflect.DeepEqual(frozenSnap, g.Snapshot()) {
		t.Error("Snapshot should not change while Dead")
	}
	if g.Score() != 55 || g.dt != 0 || g.wormDir != DirDown {
		t.Errorf("Dead game changed: score %d dt %f dir %v", g.Score(), g.dt, g.wormDir)
	}
}

func TestTopCollisionHasMargin(t *testing.T) {
	tests := []struct {
		name   string
		height float64
		dead   bool
	}{
		{"inside gap", 50, false},
		{"on top wall row plus one", 17, false},
		{"just under margin", 16.875, true},
		{"on bottom wall row", 112, false},
		{"just past bottom", 112.125, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newQuietGame()
			g.worm.Push(Segment{Height: tc.height})
			if got := g.isWormCollided(); got != tc.dead {
				t.Errorf("isWormCollided() at %f = %v, expected %v", tc.height, got, tc.dead)
			}
		})
	}
}

func TestVelocityStaysClamped(t *testing.T) {
	g := newQuietGame()
	g.status = StatusDuring

	for i := 0; i < 200; i++ {
		if i%50 == 0 {
			g.wormDir = g.wormDir.Flip()
		}
		g.tick()
		if g.wormVel < -16 || g.wormVel > 16 {
			t.Fatalf("Velocity %d out of range after %d ticks", g.wormVel, i+1)
		}
	}

	g.wormDir = DirUp
	for i := 0; i < 40; i++ {
		g.tick()
	}
	if g.wormVel != -16 {
		t.Errorf("Climbing should saturate at -16, got %d", g.wormVel)
	}
}

func TestCaveInvariantsOverLongRun(t *testing.T) {
	g := New(config.DefaultWormConfig(), rand.New(rand.NewSource(7)))
	g.status = StatusDuring

	for i := 0; i < 20000; i++ {
		g.tick()

		if g.caveTop.Len() != 128 || g.caveBottom.Len() != 128 {
			t.Fatalf("Cave length changed at tick %d", i+1)
		}
		if g.worm.Len() != 64 {
			t.Fatalf("Worm length changed at tick %d", i+1)
		}
		for c := 0; c < g.caveTop.Len(); c++ {
			if g.caveTop.At(c) >= g.caveBottom.At(c) {
				t.Fatalf("Gap closed at column %d after %d ticks: top %d bottom %d",
					c, i+1, g.caveTop.At(c), g.caveBottom.At(c))
			}
		}
	}
}

func TestWallBounceThunk(t *testing.T) {
	t.Run("up to down pulls bottom in", func(t *testing.T) {
		g := newQuietGame()
		g.caveTop.Push(0)
		g.tick()

		if g.caveDir != DirDown {
			t.Fatalf("Cave should turn Down, got %v", g.caveDir)
		}
		if g.caveTop.Last() != 1 {
			t.Errorf("New top = %d, expected 1", g.caveTop.Last())
		}
		if g.caveBottom.Last() != 112 {
			t.Errorf("New bottom = %d, expected 112 (moved down then pulled in)", g.caveBottom.Last())
		}

		// Next tick has no correction
		g.tick()
		if g.caveBottom.Last() != 113 {
			t.Errorf("Bottom after bounce tick = %d, expected 113", g.caveBottom.Last())
		}
	})

	t.Run("down to up has no thunk", func(t *testing.T) {
		g := newQuietGame()
		g.caveDir = DirDown
		g.caveBottom.Push(127)
		top := g.caveTop.Last()
		g.tick()

		if g.caveDir != DirUp {
			t.Fatalf("Cave should turn Up, got %v", g.caveDir)
		}
		if g.caveTop.Last() != top-1 || g.caveBottom.Last() != 126 {
			t.Errorf("After bounce top/bottom = %d/%d, expected %d/126",
				g.caveTop.Last(), g.caveBottom.Last(), top-1)
		}
	})

	t.Run("minimum gap suppresses thunk", func(t *testing.T) {
		g := newQuietGame()
		g.caveTop.Push(0)
		g.caveBottom.Push(2)
		g.tick()

		if g.caveTop.Last() != 1 || g.caveBottom.Last() != 3 {
			t.Errorf("After bounce top/bottom = %d/%d, expected 1/3",
				g.caveTop.Last(), g.caveBottom.Last())
		}
	})
}

func TestPrizeScrollsOffAfter129Ticks(t *testing.T) {
	// Spawn on the first roll at the first row inside the gap, never again.
	g := New(config.DefaultWormConfig(), &scriptedRand{values: []int{9, 0}})
	g.status = StatusDuring

	g.tick()
	prizes := g.Snapshot().Prizes
	if len(prizes) != 1 {
		t.Fatalf("Expected one prize after first tick, got %d", len(prizes))
	}
	if prizes[0].Col != 127 {
		t.Errorf("Prize column after spawn tick = %d, expected 127", prizes[0].Col)
	}
	if prizes[0].Row != 16 {
		t.Errorf("Prize row = %d, expected 16 (one inside top wall 15)", prizes[0].Row)
	}

	for tick := 2; tick <= 128; tick++ {
		g.tick()
		prizes = g.Snapshot().Prizes
		if len(prizes) != 1 {
			t.Fatalf("Prize culled early at tick %d", tick)
		}
		if prizes[0].Col != 128-tick {
			t.Fatalf("Prize column at tick %d = %d, expected %d", tick, prizes[0].Col, 128-tick)
		}
	}

	g.tick()
	if n := len(g.Snapshot().Prizes); n != 0 {
		t.Errorf("Prize should be culled after 129 ticks, still have %d", n)
	}
}

func TestPrizeCollectionAddsBonus(t *testing.T) {
	g := newQuietGame()
	g.Release(core.ActionThrust)
	g.prizes.prizes = append(g.prizes.prizes, Prize{Col: 65, Row: 65})

	g.Step()

	if g.collected != 1 {
		t.Fatalf("Prize should be collected, collected = %d", g.collected)
	}
	if g.Score() != 11 {
		t.Errorf("Score = %d, expected 10 bonus + 1 survival", g.Score())
	}
	if len(g.prizes.Prizes()) != 0 {
		t.Errorf("Collected prize should be removed")
	}
}

func TestSpawnOutsideGapPanics(t *testing.T) {
	g := New(config.DefaultWormConfig(), &rawRand{values: []int{9, 1000}})
	g.status = StatusDuring

	defer func() {
		if recover() == nil {
			t.Error("Spawning a prize outside the gap should panic")
		}
	}()
	g.tick()
}

func TestInputHandling(t *testing.T) {
	tests := []struct {
		name       string
		status     Status
		press      bool
		action     core.Action
		wantStatus Status
		wantDir    Direction
	}{
		{"press before", StatusBefore, true, core.ActionThrust, StatusBefore, DirDown},
		{"press during", StatusDuring, true, core.ActionThrust, StatusDuring, DirUp},
		{"press dead", StatusDead, true, core.ActionThrust, StatusDead, DirDown},
		{"release before", StatusBefore, false, core.ActionThrust, StatusDuring, DirDown},
		{"release during", StatusDuring, false, core.ActionThrust, StatusDuring, DirDown},
		{"release dead", StatusDead, false, core.ActionThrust, StatusBefore, DirDown},
		{"other press", StatusDuring, true, core.ActionQuit, StatusDuring, DirDown},
		{"other release", StatusBefore, false, core.ActionNone, StatusBefore, DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newQuietGame()
			g.status = tc.status
			if tc.press {
				g.Press(tc.action)
			} else {
				g.Release(tc.action)
			}
			if g.Status() != tc.wantStatus {
				t.Errorf("Status = %v, expected %v", g.Status(), tc.wantStatus)
			}
			if g.wormDir != tc.wantDir {
				t.Errorf("Worm direction = %v, expected %v", g.wormDir, tc.wantDir)
			}
		})
	}
}

func TestRestartMatchesFreshGame(t *testing.T) {
	cfg := config.DefaultWormConfig()
	rng := rand.New(rand.NewSource(99))
	g := New(cfg, rng)

	g.Release(core.ActionThrust)
	for i := 0; i < 30; i++ {
		if i%7 == 0 {
			g.Press(core.ActionThrust)
		} else {
			g.Release(core.ActionThrust)
		}
		g.Advance(0.1)
	}
	g.status = StatusDead

	g.Release(core.ActionThrust)

	fresh := New(cfg, rng)
	if !reflect.DeepEqual(*g, *fresh) {
		t.Error("Restart should produce the same state as a freshly constructed game")
	}
	if !reflect.DeepEqual(g.Snapshot(), fresh.Snapshot()) {
		t.Error("Restart snapshot differs from a fresh game")
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	g := New(config.DefaultWormConfig(), rand.New(rand.NewSource(3)))
	g.Release(core.ActionThrust)

	last := g.Score()
	for i := 0; i < 2000 && g.Status() == StatusDuring; i++ {
		if Autopilot(g.Snapshot()) {
			g.Press(core.ActionThrust)
		} else {
			g.Release(core.ActionThrust)
		}
		g.Step()
		if g.Score() < last {
			t.Fatalf("Score decreased from %d to %d at tick %d", last, g.Score(), i+1)
		}
		last = g.Score()
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New(config.DefaultWormConfig(), rand.New(rand.NewSource(12345)))
		g.Release(core.ActionThrust)
		for i := 0; i < 400 && g.Status() == StatusDuring; i++ {
			if Autopilot(g.Snapshot()) {
				g.Press(core.ActionThrust)
			} else {
				g.Release(core.ActionThrust)
			}
			g.Advance(0.07)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Same seed and inputs should give identical snapshots: tick %d/%d score %d/%d",
			a.Tick, b.Tick, a.Score, b.Score)
	}
}

func TestWormColorBlend(t *testing.T) {
	cfg := config.DefaultWormConfig()
	cfg.Colors.WormClimb = "#0000ff"
	cfg.Colors.WormFall = "#ff0000"
	g := New(cfg, &scriptedRand{})

	tests := []struct {
		vel      int
		expected core.Color
	}{
		{-16, "#0000ff"},
		{16, "#ff0000"},
		{-40, "#0000ff"}, // clamped
		{0, "#800080"},
	}

	for _, tc := range tests {
		if got := g.wormColor(tc.vel); got != tc.expected {
			t.Errorf("wormColor(%d) = %s, expected %s", tc.vel, got, tc.expected)
		}
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	g := newQuietGame()
	snap := g.Snapshot()
	snap.CaveTop[0] = -5
	snap.Worm[0].Height = -5

	again := g.Snapshot()
	if again.CaveTop[0] != 16 || again.Worm[0].Height != 64 {
		t.Error("Mutating a snapshot should not affect the game")
	}
}

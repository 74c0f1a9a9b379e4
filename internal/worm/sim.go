package worm

import "github.com/alexchandel/gravity-worm/internal/core"

// SimResult summarizes a headless run.
type SimResult struct {
	Ticks     uint64
	Score     int
	Collected int
	Died      bool
}

// RunAutopilot starts g and plays it with Autopilot for at most maxTicks ticks,
// one tick per step regardless of wall-clock time.
func RunAutopilot(g *Game, maxTicks int) SimResult {
	if g.Status() == StatusDead {
		g.Release(core.ActionThrust)
	}
	if g.Status() == StatusBefore {
		g.Release(core.ActionThrust)
	}

	for i := 0; i < maxTicks && g.Status() == StatusDuring; i++ {
		if Autopilot(g.Snapshot()) {
			g.Press(core.ActionThrust)
		} else {
			g.Release(core.ActionThrust)
		}
		g.Step()
	}

	return SimResult{
		Ticks:     g.ticks,
		Score:     g.score,
		Collected: g.collected,
		Died:      g.status == StatusDead,
	}
}

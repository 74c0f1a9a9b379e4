package worm

// autopilotLookahead is how many ticks of current velocity the autopilot
// projects the head forward before comparing it with the gap centre.
const autopilotLookahead = 4

// Autopilot decides whether the action key should be held, steering the head
// toward the middle of the gap at its own column. It reads only the snapshot.
func Autopilot(snap Snapshot) bool {
	col := len(snap.Worm) - 1
	if col < 0 || col >= len(snap.CaveTop) || col >= len(snap.CaveBottom) || snap.VelocityScale <= 0 {
		return false
	}

	// Aim slightly below the true centre: the top wall carries an extra row of margin.
	target := float64(snap.CaveTop[col]+1+snap.CaveBottom[col]) / 2
	projected := snap.Head() + autopilotLookahead*float64(snap.Velocity)/float64(snap.VelocityScale)
	return projected > target
}

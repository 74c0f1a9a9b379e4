package tui

import "time"

// FPSCounter counts frames drawn in the trailing second.
type FPSCounter struct {
	frames []time.Time
}

// Frame records a frame at now and returns the current rate.
func (f *FPSCounter) Frame(now time.Time) int {
	f.frames = append(f.frames, now)

	cutoff := now.Add(-time.Second)
	i := 0
	for i < len(f.frames) && !f.frames[i].After(cutoff) {
		i++
	}
	f.frames = f.frames[i:]

	return len(f.frames)
}

// FPS returns the number of frames in the last recorded second.
func (f *FPSCounter) FPS() int {
	return len(f.frames)
}

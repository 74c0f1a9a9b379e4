package tui

import "time"

// HoldTracker turns a stream of key presses into press and release edges.
// Terminals only report presses; a held key shows up as auto-repeat, so the key
// is considered released once no press has arrived for the timeout.
type HoldTracker struct {
	timeout  time.Duration
	held     bool
	lastSeen time.Time
}

// NewHoldTracker creates a tracker that releases after timeout without a repeat.
func NewHoldTracker(timeout time.Duration) *HoldTracker {
	return &HoldTracker{timeout: timeout}
}

// Press records a key event at now.
// Returns true if it starts a new hold rather than repeating the current one.
func (h *HoldTracker) Press(now time.Time) bool {
	h.lastSeen = now
	if h.held {
		return false
	}
	h.held = true
	return true
}

// Expired reports whether the hold ran out by now, ending it if so.
func (h *HoldTracker) Expired(now time.Time) bool {
	if !h.held || now.Sub(h.lastSeen) < h.timeout {
		return false
	}
	h.held = false
	return true
}

// Held reports whether the key is currently considered down.
func (h *HoldTracker) Held() bool {
	return h.held
}

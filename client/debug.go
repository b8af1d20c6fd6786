package client

// DebugState holds global debug flags that persist across game resets
type DebugState struct {
	ShowHitboxes bool // Hit radii, orbit targets and facing lines
	ShowStats    bool // Entity counts and frame timing
}

// Global debug state instance (persists across game resets)
var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}

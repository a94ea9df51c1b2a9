package game

// DebugState is toggled with F1 and survives going back to the menu.
type DebugState struct {
	// ShowStats draws TPS, frame, match clock, slow motion, bullet and
	// shake counters in the top left corner.
	ShowStats bool
}

var debugState DebugState

// GetDebugState returns the shared overlay flags.
func GetDebugState() *DebugState {
	return &debugState
}

package ui

// animationTickMsg drives one animation frame. Ticks whose id no longer
// matches the running animation are dropped.
type animationTickMsg struct {
	id int
}

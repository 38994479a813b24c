// Package viz is the interactive transition viewer, a Bubble Tea program
// that acts as the external driver of an animation session: one tea.Tick
// per frame, one Advance per tick.
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Restart the transition from frame 0
//	C     - Cancel the session (last frame stays on screen)
//	T     - Toggle dark mode on the rendered scene
//	?     - Show help overlay
//	Q     - Quit
package viz

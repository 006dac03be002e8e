// internal/component/movement.go
package component

// Position is a continuous (pixel) location on the board.
type Position struct {
	X, Y float64
}

// Velocity is movement speed in cells per second; the movement system
// multiplies by the cell size.
type Velocity struct {
	Speed float64
}

// PathFollow tracks progress along the session path. The node list itself
// is owned by the session, entities only carry their index into it.
type PathFollow struct {
	CurrentIndex int
}

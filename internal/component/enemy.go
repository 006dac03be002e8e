// internal/component/enemy.go
package component

// Health is current and maximum hit points.
type Health struct {
	Value int
	Max   int
}

// Enemy marks an entity as a wave attacker.
type Enemy struct {
	DefID      string
	Radius     float64
	ReachedEnd bool
}

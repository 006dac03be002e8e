// internal/component/tower.go
package component

import (
	"go-card-defense/internal/types"
	"go-card-defense/pkg/grid"
)

// Tower anchors a stationary entity to its board cell.
type Tower struct {
	DefID string
	Cell  grid.Point
}

// Combat is the attacking side of a tower. TargetID is a weak handle:
// the combat system drops it as soon as the enemy behind it is gone.
// AttackSpeed 0 marks a variant that never fires (walls).
type Combat struct {
	Range           float64
	Damage          int
	AttackSpeed     float64
	ProjectileSpeed float64
	ProjectileSize  float64
	FireCooldown    float64
	TargetID        types.EntityID
}

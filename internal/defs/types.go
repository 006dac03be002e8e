// internal/defs/types.go
package defs

// PlacementRule names the cell types a card may be played on.
type PlacementRule string

const (
	PlaceOnEmpty PlacementRule = "EMPTY"
	PlaceOnPath  PlacementRule = "PATH"
)

// TowerDefinition is the capability table entry for one tower variant.
// AttackSpeed is shots per second; 0 means the variant never attacks
// (walls). Blocking variants make their cell impassable.
type TowerDefinition struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Range           float64 `json:"range"`
	Damage          int     `json:"damage"`
	AttackSpeed     float64 `json:"attack_speed"`
	ProjectileSpeed float64 `json:"projectile_speed"`
	ProjectileSize  float64 `json:"projectile_size"`
	Blocking        bool    `json:"blocking"`
}

// EnemyDefinition describes one enemy variant before wave scaling.
// Speed is in cells per second.
type EnemyDefinition struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Health int     `json:"health"`
	Speed  float64 `json:"speed"`
	Radius float64 `json:"radius"`
}

// CardDefinition binds a playable card to the tower it builds and the
// cell types it may target. RewardWeight drives the post-wave reward roll.
type CardDefinition struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Cost         int             `json:"cost"`
	TowerID      string          `json:"tower_id"`
	PlaceOn      []PlacementRule `json:"place_on"`
	RewardWeight int             `json:"reward_weight"`
}

// CanPlaceOn reports whether the card may be played on a cell of the
// given marked type name.
func (c CardDefinition) CanPlaceOn(rule PlacementRule) bool {
	for _, r := range c.PlaceOn {
		if r == rule {
			return true
		}
	}
	return false
}

// internal/defs/library.go
package defs

// Built-in definitions so the simulation runs without asset files. The
// JSON loaders replace these wholesale when definition files are present.

const (
	TowerArcher = "TOWER_ARCHER"
	TowerWall   = "TOWER_WALL"

	EnemyBasic = "ENEMY_BASIC"

	CardArcher = "CARD_ARCHER"
	CardWall   = "CARD_WALL"
)

// StartingDeck is the deck composition a fresh session begins with.
var StartingDeck = []string{
	CardArcher, CardArcher, CardArcher, CardArcher,
	CardWall, CardWall, CardWall, CardWall,
	CardWall, CardWall, CardWall, CardWall,
}

func init() {
	UseDefaults()
}

// UseDefaults resets all three libraries to the compiled-in definitions.
func UseDefaults() {
	TowerLibrary = map[string]TowerDefinition{
		TowerArcher: {
			ID:              TowerArcher,
			Name:            "Archer Tower",
			Range:           200,
			Damage:          20,
			AttackSpeed:     1.0,
			ProjectileSpeed: 420,
			ProjectileSize:  5,
			Blocking:        false,
		},
		TowerWall: {
			ID:          TowerWall,
			Name:        "Wall",
			AttackSpeed: 0,
			Blocking:    true,
		},
	}

	EnemyLibrary = map[string]EnemyDefinition{
		EnemyBasic: {
			ID:     EnemyBasic,
			Name:   "Raider",
			Health: 25,
			Speed:  1.2,
			Radius: 10,
		},
	}

	CardLibrary = map[string]CardDefinition{
		CardArcher: {
			ID:           CardArcher,
			Name:         "Archer Tower",
			Cost:         50,
			TowerID:      TowerArcher,
			PlaceOn:      []PlacementRule{PlaceOnEmpty},
			RewardWeight: 2,
		},
		CardWall: {
			ID:           CardWall,
			Name:         "Wall",
			Cost:         10,
			TowerID:      TowerWall,
			PlaceOn:      []PlacementRule{PlaceOnEmpty, PlaceOnPath},
			RewardWeight: 3,
		},
	}
}

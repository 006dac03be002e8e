// internal/event/types.go
package event

const (
	TowerPlaced       EventType = "TowerPlaced"
	PlacementRejected EventType = "PlacementRejected"
	WaveStarted       EventType = "WaveStarted"
	WaveEnded         EventType = "WaveEnded"
	EnemySpawned      EventType = "EnemySpawned"
	EnemyKilled       EventType = "EnemyKilled"
	EnemyLeaked       EventType = "EnemyLeaked"
	PathRecomputed    EventType = "PathRecomputed"
	PathBlocked       EventType = "PathBlocked"
	RewardChosen      EventType = "RewardChosen"
	GameOver          EventType = "GameOver"
)

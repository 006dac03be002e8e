// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 960

	// Board geometry. Cells are square, CellSize pixels wide, indexed
	// 1-based from the top-left corner of the board.
	CellSize   = 64.0
	GridWidth  = 18
	GridHeight = 12

	PlayerHealth      = 20
	StartingResources = 100
	DamagePerLeak     = 1
	ResourcePerKill   = 5

	HandSize      = 5
	RewardChoices = 3
	MaxDeltaTime  = 0.06

	ProjectilePoolSize = 200

	WaveBaseEnemies   = 5
	EnemiesPerWave    = 2
	SpawnInterval     = 0.8
	EnemyHealthGrowth = 5
	// Waves past this number also scale enemy speed.
	SpeedGrowthWave    = 3
	SpeedGrowthPerWave = 0.1

	EnemyRadius = 10.0
	// Reaching a path node within this many pixels counts as arrival.
	ArrivalTolerance = 2.0
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	EmptyCellColor  = color.RGBA{40, 44, 58, 255}
	PathCellColor   = color.RGBA{70, 100, 120, 220}
	TowerCellColor  = color.RGBA{150, 70, 70, 220}
	WallCellColor   = color.RGBA{128, 128, 128, 255}
	EntryColor      = color.RGBA{0, 255, 0, 255}
	ExitColor       = color.RGBA{255, 0, 0, 255}
	GridLineColor   = color.RGBA{30, 32, 42, 255}
	EnemyColor      = color.RGBA{220, 60, 60, 255}
	ProjectileColor = color.RGBA{255, 215, 0, 255}
	RangeColor      = color.RGBA{240, 240, 240, 40}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	HealthBackColor = color.RGBA{60, 20, 20, 255}
	HealthFillColor = color.RGBA{50, 205, 50, 255}
)

// internal/system/wave.go
package system

import (
	"go-card-defense/internal/component"
	"go-card-defense/internal/config"
	"go-card-defense/internal/defs"
	"go-card-defense/internal/entity"
	"go-card-defense/internal/event"
	"go-card-defense/pkg/grid"
)

// WaveSystem spawns enemies at the path entry on a fixed cadence and
// reports when the wave is cleared.
type WaveSystem struct {
	ecs        *entity.ECS
	board      *grid.Grid
	dispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, board *grid.Grid, dispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{ecs: ecs, board: board, dispatcher: dispatcher}
}

// StartWave builds the spawn session for the given wave number. Quota
// and enemy stats scale with the number.
func (s *WaveSystem) StartWave(number int, spawnInterval float64) *component.WaveSession {
	return &component.WaveSession{
		Number:        number,
		TotalEnemies:  config.WaveBaseEnemies + config.EnemiesPerWave*number,
		SpawnInterval: spawnInterval,
		EnemyID:       defs.EnemyBasic,
	}
}

// Update accumulates the spawn timer and spawns one enemy per elapsed
// interval while the quota lasts. Completion is checked by the session
// after all sub-updates ran.
func (s *WaveSystem) Update(deltaTime float64, wave *component.WaveSession) {
	if wave == nil || wave.Spawned >= wave.TotalEnemies {
		return
	}
	wave.SpawnTimer += deltaTime
	if wave.SpawnTimer >= wave.SpawnInterval {
		s.spawnEnemy(wave)
		wave.SpawnTimer = 0
		wave.Spawned++
	}
}

// Cleared reports whether the full quota spawned and none survive.
func (s *WaveSystem) Cleared(wave *component.WaveSession) bool {
	return wave != nil && wave.Spawned >= wave.TotalEnemies && len(s.ecs.Enemies) == 0
}

func (s *WaveSystem) spawnEnemy(wave *component.WaveSession) {
	def, ok := defs.EnemyLibrary[wave.EnemyID]
	if !ok {
		return
	}

	health := def.Health + config.EnemyHealthGrowth*(wave.Number-1)
	speed := def.Speed
	if wave.Number > config.SpeedGrowthWave {
		speed *= 1.0 + config.SpeedGrowthPerWave*float64(wave.Number-config.SpeedGrowthWave)
	}

	id := s.ecs.NewEntity()
	x, y := grid.CellToPixel(s.board.Start.X, s.board.Start.Y, config.CellSize)
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: speed}
	s.ecs.PathFollows[id] = &component.PathFollow{CurrentIndex: 0}
	s.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	s.ecs.Enemies[id] = &component.Enemy{DefID: wave.EnemyID, Radius: def.Radius}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.EnemyColor,
		Radius: float32(def.Radius),
	}
	s.dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
}

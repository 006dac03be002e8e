// internal/entity/ecs.go
package entity

import (
	"go-card-defense/internal/component"
	"go-card-defense/internal/types"
)

// ECS is the component store. Component maps double as weak-reference
// tables: holding an EntityID is safe because a lookup after removal
// simply misses.
type ECS struct {
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	PathFollows map[types.EntityID]*component.PathFollow
	Healths     map[types.EntityID]*component.Health
	Enemies     map[types.EntityID]*component.Enemy
	Towers      map[types.EntityID]*component.Tower
	Combats     map[types.EntityID]*component.Combat
	Renderables map[types.EntityID]*component.Renderable
	Wave        *component.WaveSession
	GameState   *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		PathFollows: make(map[types.EntityID]*component.PathFollow),
		Healths:     make(map[types.EntityID]*component.Health),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Towers:      make(map[types.EntityID]*component.Tower),
		Combats:     make(map[types.EntityID]*component.Combat),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Wave:        nil,
		GameState:   &component.GameState{Phase: component.PreWave},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEnemy drops every component of an enemy entity.
func (ecs *ECS) RemoveEnemy(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.PathFollows, id)
	delete(ecs.Healths, id)
	delete(ecs.Enemies, id)
	delete(ecs.Renderables, id)
}

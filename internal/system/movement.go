// internal/system/movement.go
package system

import (
	"math"

	"go-card-defense/internal/component"
	"go-card-defense/internal/config"
	"go-card-defense/internal/entity"
	"go-card-defense/internal/event"
	"go-card-defense/internal/types"
	"go-card-defense/pkg/grid"
)

// PathProvider is what the movement system needs from the session.
// An interface keeps the system free of a dependency on the app package.
type PathProvider interface {
	PathNodes() []grid.Point
}

// MovementSystem walks enemies along the session path node by node.
type MovementSystem struct {
	ecs        *entity.ECS
	path       PathProvider
	dispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, path PathProvider, dispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, path: path, dispatcher: dispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	nodes := s.path.PathNodes()
	for id, follow := range s.ecs.PathFollows {
		enemy, ok := s.ecs.Enemies[id]
		if !ok || enemy.ReachedEnd {
			continue
		}
		// No route: idle in place until one appears.
		if len(nodes) == 0 {
			continue
		}
		if follow.CurrentIndex >= len(nodes) {
			s.reachEnd(id, enemy)
			continue
		}

		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		if pos == nil || vel == nil {
			continue
		}

		target := nodes[follow.CurrentIndex]
		tx, ty := grid.CellToPixel(target.X, target.Y, config.CellSize)
		dx := tx - pos.X
		dy := ty - pos.Y
		dist := math.Sqrt(dx*dx + dy*dy)

		moveDistance := vel.Speed * config.CellSize * deltaTime

		// Arrival within a tolerance, never exact equality: floating
		// point overshoot would otherwise oscillate around the node.
		if dist <= moveDistance+config.ArrivalTolerance {
			pos.X = tx
			pos.Y = ty
			follow.CurrentIndex++
			if follow.CurrentIndex >= len(nodes) {
				s.reachEnd(id, enemy)
			}
		} else {
			pos.X += (dx / dist) * moveDistance
			pos.Y += (dy / dist) * moveDistance
		}
	}
}

// reachEnd flags the enemy exactly once and reports the leak; the session
// listener removes the entity and charges the player.
func (s *MovementSystem) reachEnd(id types.EntityID, enemy *component.Enemy) {
	if enemy.ReachedEnd {
		return
	}
	enemy.ReachedEnd = true
	s.dispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: id})
}

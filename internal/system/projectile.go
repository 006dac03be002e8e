// internal/system/projectile.go
package system

import (
	"math"

	"go-card-defense/internal/entity"
	"go-card-defense/internal/event"
	"go-card-defense/internal/types"
)

// Projectile is a pooled homing shot. It lives in exactly one of the
// pool's active or free lists; TargetID is cleared on deactivation so a
// recycled instance can never read a stale handle.
type Projectile struct {
	X, Y     float64
	TargetID types.EntityID
	Damage   int
	Speed    float64
	Size     float64
	Active   bool
}

// ProjectilePool recycles projectiles to avoid per-frame allocation
// churn. Allocation is lazy up to a fixed capacity; once allocated, an
// instance shuttles between the active and free lists forever.
type ProjectilePool struct {
	capacity  int
	allocated int
	active    []*Projectile
	free      []*Projectile
}

func NewProjectilePool(capacity int) *ProjectilePool {
	return &ProjectilePool{
		capacity: capacity,
		active:   make([]*Projectile, 0, capacity),
		free:     make([]*Projectile, 0, capacity),
	}
}

// Acquire hands out a projectile aimed at target, recycling a free
// instance when one exists. Returns nil when the pool is exhausted; the
// attack simply fizzles and the caller carries on.
func (p *ProjectilePool) Acquire(x, y float64, target types.EntityID, damage int, speed, size float64) *Projectile {
	var proj *Projectile
	switch {
	case len(p.free) > 0:
		proj = p.free[len(p.free)-1]
		p.free = p.free[:len(p.free)-1]
	case p.allocated < p.capacity:
		proj = &Projectile{}
		p.allocated++
	default:
		return nil
	}
	proj.X = x
	proj.Y = y
	proj.TargetID = target
	proj.Damage = damage
	proj.Speed = speed
	proj.Size = size
	proj.Active = true
	p.active = append(p.active, proj)
	return proj
}

// deactivate moves active[i] to the free list.
func (p *ProjectilePool) deactivate(i int) {
	proj := p.active[i]
	proj.Active = false
	proj.TargetID = 0
	p.active[i] = p.active[len(p.active)-1]
	p.active = p.active[:len(p.active)-1]
	p.free = append(p.free, proj)
}

// DeactivateAll recycles every in-flight projectile. Used when the
// combat phase ends with shots still in the air.
func (p *ProjectilePool) DeactivateAll() {
	for len(p.active) > 0 {
		p.deactivate(len(p.active) - 1)
	}
}

// ActiveCount returns the number of in-flight projectiles.
func (p *ProjectilePool) ActiveCount() int { return len(p.active) }

// FreeCount returns the number of recycled instances waiting for reuse.
func (p *ProjectilePool) FreeCount() int { return len(p.free) }

// Allocated returns how many instances were ever created (≤ capacity).
func (p *ProjectilePool) Allocated() int { return p.allocated }

// Active exposes the in-flight list for the presentation layer. Read
// only; the slice is reordered on deactivation.
func (p *ProjectilePool) Active() []*Projectile { return p.active }

// ProjectileSystem advances in-flight projectiles and resolves hits.
type ProjectileSystem struct {
	ecs        *entity.ECS
	pool       *ProjectilePool
	dispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, pool *ProjectilePool, dispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, pool: pool, dispatcher: dispatcher}
}

// Update homes every active projectile toward its target's current
// position. A projectile whose target died or leaked deactivates without
// dealing damage.
func (s *ProjectileSystem) Update(deltaTime float64) {
	// Index loop: deactivate swap-removes, so the current slot is
	// re-examined after a removal.
	for i := 0; i < len(s.pool.active); {
		proj := s.pool.active[i]

		targetPos, posExists := s.ecs.Positions[proj.TargetID]
		enemy, enemyExists := s.ecs.Enemies[proj.TargetID]
		if !posExists || !enemyExists || enemy.ReachedEnd {
			s.pool.deactivate(i)
			continue
		}

		dx := targetPos.X - proj.X
		dy := targetPos.Y - proj.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		moved := proj.Speed * deltaTime
		hitRadius := proj.Size + enemy.Radius

		if dist <= moved+hitRadius {
			s.hitTarget(proj)
			s.pool.deactivate(i)
			continue
		}

		proj.X += (dx / dist) * moved
		proj.Y += (dy / dist) * moved
		i++
	}
}

func (s *ProjectileSystem) hitTarget(proj *Projectile) {
	health, ok := s.ecs.Healths[proj.TargetID]
	if !ok {
		return
	}
	health.Value -= proj.Damage
	if health.Value <= 0 {
		id := proj.TargetID
		s.ecs.RemoveEnemy(id)
		s.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: id})
	}
}

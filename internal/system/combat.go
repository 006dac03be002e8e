// internal/system/combat.go
package system

import (
	"math"

	"go-card-defense/internal/component"
	"go-card-defense/internal/entity"
	"go-card-defense/internal/types"
)

// CombatSystem drives tower targeting and firing.
type CombatSystem struct {
	ecs  *entity.ECS
	pool *ProjectilePool
}

func NewCombatSystem(ecs *entity.ECS, pool *ProjectilePool) *CombatSystem {
	return &CombatSystem{ecs: ecs, pool: pool}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for id, combat := range s.ecs.Combats {
		// Walls carry a Combat component with AttackSpeed 0 and must
		// never fire, cooldown math aside.
		if combat.AttackSpeed <= 0 {
			continue
		}

		if combat.FireCooldown > 0 {
			combat.FireCooldown -= deltaTime
		}

		towerPos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}

		if !s.targetValid(combat.TargetID) {
			combat.TargetID = s.findNearestEnemyInRange(towerPos.X, towerPos.Y, combat.Range)
		}
		if combat.TargetID == 0 {
			continue
		}

		if combat.FireCooldown <= 0 {
			s.attack(id, combat)
			combat.FireCooldown = 1.0 / combat.AttackSpeed
		}
	}
}

// targetValid reports whether the weak target handle still points at a
// live, still-marching enemy.
func (s *CombatSystem) targetValid(id types.EntityID) bool {
	if id == 0 {
		return false
	}
	enemy, ok := s.ecs.Enemies[id]
	if !ok || enemy.ReachedEnd {
		return false
	}
	health, ok := s.ecs.Healths[id]
	return ok && health.Value > 0
}

// findNearestEnemyInRange scans all live enemies for the closest one
// within rangeRadius (Euclidean). Ties go to whichever came up first in
// map iteration; exact ties are rare enough not to matter.
func (s *CombatSystem) findNearestEnemyInRange(x, y, rangeRadius float64) types.EntityID {
	var nearest types.EntityID
	minDistance := math.MaxFloat64
	for id, enemy := range s.ecs.Enemies {
		if enemy.ReachedEnd {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		dx := pos.X - x
		dy := pos.Y - y
		distance := math.Sqrt(dx*dx + dy*dy)
		if distance <= rangeRadius && distance < minDistance {
			minDistance = distance
			nearest = id
		}
	}
	return nearest
}

// attack requests a pooled projectile at the tower's target. A nil
// return means the pool is exhausted; the shot silently fizzles.
func (s *CombatSystem) attack(towerID types.EntityID, combat *component.Combat) {
	pos := s.ecs.Positions[towerID]
	s.pool.Acquire(pos.X, pos.Y, combat.TargetID, combat.Damage, combat.ProjectileSpeed, combat.ProjectileSize)
}

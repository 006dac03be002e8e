// internal/system/combat_test.go
package system

import (
	"testing"

	"go-card-defense/internal/component"
	"go-card-defense/internal/entity"
	"go-card-defense/internal/event"
	"go-card-defense/internal/types"
)

func newArcherAt(ecs *entity.ECS, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Towers[id] = &component.Tower{DefID: "TOWER_ARCHER"}
	ecs.Combats[id] = &component.Combat{
		Range:           200,
		Damage:          20,
		AttackSpeed:     1.0,
		ProjectileSpeed: 420,
		ProjectileSize:  5,
	}
	return id
}

func TestWallNeverAttacks(t *testing.T) {
	ecs := entity.NewECS()
	pool := NewProjectilePool(8)
	sys := NewCombatSystem(ecs, pool)

	wall := ecs.NewEntity()
	ecs.Positions[wall] = &component.Position{X: 0, Y: 0}
	ecs.Towers[wall] = &component.Tower{DefID: "TOWER_WALL"}
	ecs.Combats[wall] = &component.Combat{AttackSpeed: 0}

	newEnemyAt(ecs, 10, 0, 100, 10)
	for i := 0; i < 100; i++ {
		sys.Update(0.1)
	}
	if pool.ActiveCount() != 0 || pool.Allocated() != 0 {
		t.Fatalf("a wall fired %d projectiles", pool.Allocated())
	}
}

func TestTowerTargetsNearestInRange(t *testing.T) {
	ecs := entity.NewECS()
	pool := NewProjectilePool(8)
	sys := NewCombatSystem(ecs, pool)

	tower := newArcherAt(ecs, 0, 0)
	newEnemyAt(ecs, 500, 0, 100, 10) // out of range
	near := newEnemyAt(ecs, 80, 0, 100, 10)
	newEnemyAt(ecs, 150, 0, 100, 10)

	sys.Update(0.01)
	if got := ecs.Combats[tower].TargetID; got != near {
		t.Fatalf("expected nearest in-range enemy %d, got %d", near, got)
	}
	if pool.ActiveCount() != 1 {
		t.Fatalf("tower off cooldown should have fired once")
	}
}

func TestTowerHoldsFireWithoutTarget(t *testing.T) {
	ecs := entity.NewECS()
	pool := NewProjectilePool(8)
	sys := NewCombatSystem(ecs, pool)

	newArcherAt(ecs, 0, 0)
	newEnemyAt(ecs, 1000, 0, 100, 10) // never in range
	for i := 0; i < 50; i++ {
		sys.Update(0.1)
	}
	if pool.Allocated() != 0 {
		t.Fatalf("tower fired %d shots with nothing in range", pool.Allocated())
	}
}

func TestTowerRespectsFireCooldown(t *testing.T) {
	ecs := entity.NewECS()
	pool := NewProjectilePool(200)
	sys := NewCombatSystem(ecs, pool)

	newArcherAt(ecs, 0, 0)
	newEnemyAt(ecs, 100, 0, 100000, 10)

	// 2.25 simulated seconds at 1 shot/s: the first shot is immediate,
	// then one per elapsed second.
	for i := 0; i < 45; i++ {
		sys.Update(0.05)
	}
	if pool.Allocated() != 3 {
		t.Fatalf("expected 3 shots over 2.25s at 1/s, got %d", pool.Allocated())
	}
}

func TestTowerRetargetsWhenTargetDies(t *testing.T) {
	ecs := entity.NewECS()
	pool := NewProjectilePool(8)
	sys := NewCombatSystem(ecs, pool)

	tower := newArcherAt(ecs, 0, 0)
	first := newEnemyAt(ecs, 50, 0, 100, 10)
	second := newEnemyAt(ecs, 90, 0, 100, 10)

	sys.Update(0.01)
	if ecs.Combats[tower].TargetID != first {
		t.Fatalf("expected initial target %d", first)
	}
	ecs.RemoveEnemy(first)
	sys.Update(0.01)
	if got := ecs.Combats[tower].TargetID; got != second {
		t.Fatalf("expected retarget to %d, got %d", second, got)
	}
}

// A 25-health enemy against a 20-damage archer: the first impact leaves
// 5 health, the second kills. Systems run in the session's tick order.
func TestTowerKillsWithSecondShot(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	pool := NewProjectilePool(200)
	combat := NewCombatSystem(ecs, pool)
	projectiles := NewProjectileSystem(ecs, pool, dispatcher)

	newArcherAt(ecs, 0, 0)
	enemy := newEnemyAt(ecs, 130, 0, 25, 10) // one cell inside range

	sawFirstHit := false
	for i := 0; i < 300; i++ {
		combat.Update(0.01)
		projectiles.Update(0.01)
		if h, ok := ecs.Healths[enemy]; ok && h.Value == 5 {
			sawFirstHit = true
		}
		if _, alive := ecs.Enemies[enemy]; !alive {
			break
		}
	}

	// 25 -> 5 -> dead is exactly two 20-damage impacts: the first shot
	// must not kill, the second must.
	if !sawFirstHit {
		t.Fatalf("first projectile should leave the enemy at 5 health, not kill it")
	}
	if _, alive := ecs.Enemies[enemy]; alive {
		t.Fatalf("second projectile should have killed the enemy")
	}
	if pool.ActiveCount() != 0 {
		t.Fatalf("no projectile should stay in flight after the kill")
	}
}

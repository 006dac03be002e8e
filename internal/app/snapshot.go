// internal/app/snapshot.go
package app

import (
	"image/color"

	"go-card-defense/internal/component"
	"go-card-defense/internal/types"
	"go-card-defense/pkg/grid"
)

// Read-only views of the session for the presentation layer. The UI
// consumes these and reports back intents (PlaceCard, StartWave,
// SelectReward); it never mutates the session directly.

// EnemyView is one live enemy as the renderer sees it.
type EnemyView struct {
	ID             types.EntityID
	X, Y           float64
	HealthFraction float64
	Radius         float32
	Color          color.RGBA
}

// TowerView is one placed tower or wall.
type TowerView struct {
	ID       types.EntityID
	Cell     grid.Point
	X, Y     float64
	Range    float64
	TargetID types.EntityID
	Color    color.RGBA
	Radius   float32
}

// ProjectileView is one in-flight projectile.
type ProjectileView struct {
	X, Y, Size float64
}

// Phase returns the current phase of the build/combat cycle.
func (g *Game) Phase() component.Phase {
	return g.ECS.GameState.Phase
}

// PlayerState returns a copy of the player's resource pool.
func (g *Game) PlayerState() component.Player {
	return *g.Player
}

// WaveInProgress returns the spawn counters of the running wave, or ok
// false outside the Wave phase.
func (g *Game) WaveInProgress() (component.WaveSession, bool) {
	if g.ECS.Wave == nil {
		return component.WaveSession{}, false
	}
	return *g.ECS.Wave, true
}

// EnemyViews snapshots every live enemy.
func (g *Game) EnemyViews() []EnemyView {
	views := make([]EnemyView, 0, len(g.ECS.Enemies))
	for id, enemy := range g.ECS.Enemies {
		pos, ok := g.ECS.Positions[id]
		if !ok {
			continue
		}
		view := EnemyView{ID: id, X: pos.X, Y: pos.Y, Radius: float32(enemy.Radius)}
		if health, ok := g.ECS.Healths[id]; ok && health.Max > 0 {
			view.HealthFraction = float64(health.Value) / float64(health.Max)
		}
		if r, ok := g.ECS.Renderables[id]; ok {
			view.Color = r.Color
			view.Radius = r.Radius
		}
		views = append(views, view)
	}
	return views
}

// TowerViews snapshots every placed tower and wall.
func (g *Game) TowerViews() []TowerView {
	views := make([]TowerView, 0, len(g.ECS.Towers))
	for id, tower := range g.ECS.Towers {
		pos, ok := g.ECS.Positions[id]
		if !ok {
			continue
		}
		view := TowerView{ID: id, Cell: tower.Cell, X: pos.X, Y: pos.Y}
		if combat, ok := g.ECS.Combats[id]; ok {
			view.Range = combat.Range
			view.TargetID = combat.TargetID
		}
		if r, ok := g.ECS.Renderables[id]; ok {
			view.Color = r.Color
			view.Radius = r.Radius
		}
		views = append(views, view)
	}
	return views
}

// ProjectileViews snapshots every in-flight projectile.
func (g *Game) ProjectileViews() []ProjectileView {
	active := g.Pool.Active()
	views := make([]ProjectileView, 0, len(active))
	for _, proj := range active {
		views = append(views, ProjectileView{X: proj.X, Y: proj.Y, Size: proj.Size})
	}
	return views
}

// HandCards returns a copy of the current hand, in order.
func (g *Game) HandCards() []string {
	return append([]string(nil), g.hand...)
}

// RewardOptions returns the PostWave choices; empty in other phases.
func (g *Game) RewardOptions() []string {
	return append([]string(nil), g.rewards...)
}

// CardCounts reports deck, discard, hand and in-play sizes.
func (g *Game) CardCounts() (draw, discard, hand, inPlay int) {
	return g.Deck.DrawCount(), g.Deck.DiscardCount(), len(g.hand), len(g.played)
}

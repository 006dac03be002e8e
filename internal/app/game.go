// internal/app/game.go
package app

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"go-card-defense/internal/component"
	"go-card-defense/internal/config"
	"go-card-defense/internal/defs"
	"go-card-defense/internal/entity"
	"go-card-defense/internal/event"
	"go-card-defense/internal/system"
	"go-card-defense/internal/types"
	"go-card-defense/internal/utils"
	"go-card-defense/pkg/grid"
)

// Game is one simulation session: it owns the board, the session path,
// the player resource pool and the deck, and orchestrates the per-tick
// system order. Single-threaded by design; every tick completes before
// the next begins.
type Game struct {
	Grid   *grid.Grid
	ECS    *entity.ECS
	Player *component.Player

	WaveSystem       *system.WaveSystem
	CombatSystem     *system.CombatSystem
	MovementSystem   *system.MovementSystem
	ProjectileSystem *system.ProjectileSystem
	Pool             *system.ProjectilePool
	EventDispatcher  *event.Dispatcher

	Deck *Deck
	hand []string
	// Cards that became towers/walls. Kept for conservation accounting.
	played  []string
	rewards []string

	path     []grid.Point
	settings config.Settings
	rng      *utils.PRNGService
	log      *zap.Logger
}

// PlacementRejection is the payload of a PlacementRejected event.
type PlacementRejection struct {
	CardIndex int
	X, Y      int
	Reason    string
}

// NewGame wires a fresh session. A nil logger is replaced by a no-op
// logger, which tests rely on.
func NewGame(settings config.Settings, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}

	start := grid.Point{X: 1, Y: (settings.GridHeight + 1) / 2}
	end := grid.Point{X: settings.GridWidth, Y: (settings.GridHeight + 1) / 2}
	board := grid.NewGrid(settings.GridWidth, settings.GridHeight, start, end)

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	pool := system.NewProjectilePool(config.ProjectilePoolSize)
	rng := utils.NewPRNGService(settings.Seed)

	g := &Game{
		Grid: board,
		ECS:  ecs,
		Player: &component.Player{
			Resources: settings.StartingResources,
			Health:    settings.PlayerHealth,
		},
		Pool:            pool,
		EventDispatcher: dispatcher,
		settings:        settings,
		rng:             rng,
		log:             logger,
	}
	g.WaveSystem = system.NewWaveSystem(ecs, board, dispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs, pool)
	g.MovementSystem = system.NewMovementSystem(ecs, g, dispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, pool, dispatcher)

	g.Deck = NewDeck(defs.StartingDeck, rng)
	g.drawHand()

	dispatcher.Subscribe(event.EnemyLeaked, g)
	dispatcher.Subscribe(event.EnemyKilled, g)
	newLogListener(logger, dispatcher)

	g.recomputePath()
	return g
}

// Update advances one tick. Only the Wave phase runs the battle systems;
// the order is fixed: spawn, towers, enemies, projectiles, completion.
func (g *Game) Update(deltaTime float64) {
	if g.ECS.GameState.Phase != component.Wave {
		return
	}
	g.WaveSystem.Update(deltaTime, g.ECS.Wave)
	g.CombatSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.checkWaveCompletion()
}

// PathNodes returns the current route; empty when no route exists.
func (g *Game) PathNodes() []grid.Point {
	return g.path
}

// PlaceCard plays hand card cardIndex onto cell (x,y). Any failure is
// reported as false with the session untouched.
func (g *Game) PlaceCard(cardIndex, x, y int) bool {
	if g.ECS.GameState.Phase != component.PreWave {
		return g.rejectPlacement(cardIndex, x, y, "construction only allowed before the wave")
	}
	if cardIndex < 0 || cardIndex >= len(g.hand) {
		return g.rejectPlacement(cardIndex, x, y, "hand index out of range")
	}
	cardDef, ok := defs.CardLibrary[g.hand[cardIndex]]
	if !ok {
		return g.rejectPlacement(cardIndex, x, y, "unknown card")
	}
	towerDef, ok := defs.TowerLibrary[cardDef.TowerID]
	if !ok {
		return g.rejectPlacement(cardIndex, x, y, "unknown tower")
	}
	if g.Player.Resources < cardDef.Cost {
		return g.rejectPlacement(cardIndex, x, y, "not enough resources")
	}
	cell, ok := g.Grid.Get(x, y)
	if !ok || !g.Grid.Available(x, y) {
		return g.rejectPlacement(cardIndex, x, y, "cell unavailable")
	}
	target := grid.Point{X: x, Y: y}
	if target == g.Grid.Start || target == g.Grid.End {
		return g.rejectPlacement(cardIndex, x, y, "entry and exit stay open")
	}
	var rule defs.PlacementRule
	switch cell.Type {
	case grid.CellEmpty:
		rule = defs.PlaceOnEmpty
	case grid.CellPath:
		rule = defs.PlaceOnPath
	}
	if !cardDef.CanPlaceOn(rule) {
		return g.rejectPlacement(cardIndex, x, y, "card cannot be played on this cell type")
	}

	g.Player.Resources -= cardDef.Cost
	id := g.spawnTower(towerDef, target)
	cell.Occupant = id
	if towerDef.Blocking {
		cell.Blocked = true
		// A wall dropped on the active path keeps the path marking;
		// Blocked alone makes it impassable and exempt from re-marking.
		if cell.Type == grid.CellEmpty {
			cell.Type = grid.CellWall
		}
	} else {
		cell.Type = grid.CellTower
	}

	card := g.hand[cardIndex]
	g.hand = append(g.hand[:cardIndex], g.hand[cardIndex+1:]...)
	g.played = append(g.played, card)

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	// Walkability changed: the route must be fresh before the next
	// tick's movement reads it.
	g.recomputePath()
	return true
}

func (g *Game) rejectPlacement(cardIndex, x, y int, reason string) bool {
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.PlacementRejected,
		Data: PlacementRejection{CardIndex: cardIndex, X: x, Y: y, Reason: reason},
	})
	return false
}

func (g *Game) spawnTower(def defs.TowerDefinition, cell grid.Point) types.EntityID {
	id := g.ECS.NewEntity()
	px, py := grid.CellToPixel(cell.X, cell.Y, config.CellSize)
	g.ECS.Positions[id] = &component.Position{X: px, Y: py}
	g.ECS.Towers[id] = &component.Tower{DefID: def.ID, Cell: cell}
	g.ECS.Combats[id] = &component.Combat{
		Range:           def.Range,
		Damage:          def.Damage,
		AttackSpeed:     def.AttackSpeed,
		ProjectileSpeed: def.ProjectileSpeed,
		ProjectileSize:  def.ProjectileSize,
	}
	color := config.TowerCellColor
	if def.Blocking {
		color = config.WallCellColor
	}
	g.ECS.Renderables[id] = &component.Renderable{Color: color, Radius: float32(config.CellSize * 0.35)}
	return id
}

// SetCellEmpty clears a cell and whatever occupies it. Debug action; no
// refund, no phase gate.
func (g *Game) SetCellEmpty(x, y int) {
	cell, ok := g.Grid.Get(x, y)
	if !ok {
		return
	}
	if cell.Occupant != 0 {
		id := cell.Occupant
		delete(g.ECS.Positions, id)
		delete(g.ECS.Towers, id)
		delete(g.ECS.Combats, id)
		delete(g.ECS.Renderables, id)
	}
	cell.Occupant = 0
	cell.Blocked = false
	cell.Type = grid.CellEmpty
	g.recomputePath()
}

// StartWave moves PreWave into Wave. Refused while no route exists: the
// spawner would only pile enemies onto a dead entry.
func (g *Game) StartWave() bool {
	if g.ECS.GameState.Phase != component.PreWave {
		return false
	}
	if len(g.path) == 0 {
		return false
	}
	g.Player.WaveNumber++
	g.ECS.Wave = g.WaveSystem.StartWave(g.Player.WaveNumber, g.settings.SpawnInterval)
	g.ECS.GameState.Phase = component.Wave
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: g.Player.WaveNumber})
	return true
}

// SelectReward consumes the PostWave reward pick: the chosen card joins
// the deck at a random position, the leftover hand is discarded and a
// fresh one drawn.
func (g *Game) SelectReward(index int) bool {
	if g.ECS.GameState.Phase != component.PostWave {
		return false
	}
	if index < 0 || index >= len(g.rewards) {
		return false
	}
	card := g.rewards[index]
	g.Deck.InsertRandom(card)
	g.rewards = nil
	g.discardHand()
	g.drawHand()
	g.ECS.GameState.Phase = component.PreWave
	g.EventDispatcher.Dispatch(event.Event{Type: event.RewardChosen, Data: card})
	return true
}

func (g *Game) checkWaveCompletion() {
	if g.ECS.GameState.Phase != component.Wave {
		return
	}
	if !g.WaveSystem.Cleared(g.ECS.Wave) {
		return
	}
	finished := g.ECS.Wave.Number
	g.ECS.Wave = nil
	g.Pool.DeactivateAll()
	g.rewards = g.rollRewards(finished)
	g.ECS.GameState.Phase = component.PostWave
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: finished})
}

// rollRewards draws the post-wave choices. Attack cards gain weight as
// waves grow, so early rewards lean toward walls and later ones toward
// towers.
func (g *Game) rollRewards(waveNumber int) []string {
	ids := make([]string, 0, len(defs.CardLibrary))
	for id := range defs.CardLibrary {
		ids = append(ids, id)
	}
	// Map iteration order is random; sort for a reproducible roll under
	// a fixed seed.
	sort.Strings(ids)
	weights := make([]int, len(ids))
	for i, id := range ids {
		def := defs.CardLibrary[id]
		weights[i] = def.RewardWeight
		if tower, ok := defs.TowerLibrary[def.TowerID]; ok && !tower.Blocking {
			weights[i] += waveNumber / 2
		}
	}
	choices := make([]string, 0, config.RewardChoices)
	for len(choices) < config.RewardChoices {
		choices = append(choices, g.rng.ChooseWeighted(ids, weights))
	}
	return choices
}

// recomputePath reruns A* and rewrites the grid's path markings. On
// failure the placement stands, the route goes empty and enemies idle;
// the session only reports PathBlocked.
func (g *Game) recomputePath() bool {
	nodes := grid.AStar(g.Grid)
	if nodes == nil {
		g.path = nil
		g.EventDispatcher.Dispatch(event.Event{Type: event.PathBlocked})
		return false
	}
	g.path = nodes
	g.Grid.ApplyPath(nodes)
	g.retargetFollowers()
	g.EventDispatcher.Dispatch(event.Event{Type: event.PathRecomputed, Data: len(nodes)})
	return true
}

// retargetFollowers points every marching enemy at the node of the new
// route nearest its position. Node indices from the old route are
// meaningless on the new one; left alone, an index past the new end
// would leak the enemy from mid-board.
func (g *Game) retargetFollowers() {
	for id, follow := range g.ECS.PathFollows {
		enemy, ok := g.ECS.Enemies[id]
		if !ok || enemy.ReachedEnd {
			continue
		}
		pos, ok := g.ECS.Positions[id]
		if !ok {
			continue
		}
		nearest := 0
		minDist := math.MaxFloat64
		for i, p := range g.path {
			px, py := grid.CellToPixel(p.X, p.Y, config.CellSize)
			dx := px - pos.X
			dy := py - pos.Y
			if d := dx*dx + dy*dy; d < minDist {
				minDist = d
				nearest = i
			}
		}
		follow.CurrentIndex = nearest
	}
}

func (g *Game) drawHand() {
	for len(g.hand) < g.settings.HandSize {
		card, ok := g.Deck.Draw()
		if !ok {
			break
		}
		g.hand = append(g.hand, card)
	}
}

func (g *Game) discardHand() {
	for _, card := range g.hand {
		g.Deck.Discard(card)
	}
	g.hand = g.hand[:0]
}

// OnEvent is the session's own reaction to battle events: leaks charge
// the player, kills pay out, and an empty health pool ends the game.
func (g *Game) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyLeaked:
		id, ok := e.Data.(types.EntityID)
		if !ok {
			return
		}
		g.ECS.RemoveEnemy(id)
		g.Player.Health -= config.DamagePerLeak
		if g.Player.Health <= 0 && g.ECS.GameState.Phase == component.Wave {
			g.ECS.GameState.Phase = component.Defeat
			g.ECS.Wave = nil
			g.Pool.DeactivateAll()
			for enemyID := range g.ECS.Enemies {
				g.ECS.RemoveEnemy(enemyID)
			}
			g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: g.Player.WaveNumber})
		}
	case event.EnemyKilled:
		g.Player.Resources += config.ResourcePerKill
	}
}

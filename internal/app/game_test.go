// internal/app/game_test.go
package app

import (
	"testing"

	"go-card-defense/internal/component"
	"go-card-defense/internal/config"
	"go-card-defense/internal/defs"
	"go-card-defense/internal/event"
	"go-card-defense/pkg/grid"
)

func testSettings(w, h int) config.Settings {
	s := config.DefaultSettings()
	s.GridWidth = w
	s.GridHeight = h
	s.StartingResources = 1000
	s.SpawnInterval = 0.2
	s.Seed = 1
	return s
}

// newTestGame builds a session with a known deck composition.
func newTestGame(t *testing.T, deck []string, settings config.Settings) *Game {
	t.Helper()
	defs.UseDefaults()
	oldDeck := defs.StartingDeck
	defs.StartingDeck = deck
	t.Cleanup(func() {
		defs.StartingDeck = oldDeck
		defs.UseDefaults()
	})
	return NewGame(settings, nil)
}

func allWalls() []string {
	deck := make([]string, 12)
	for i := range deck {
		deck[i] = defs.CardWall
	}
	return deck
}

func totalCards(g *Game) int {
	draw, discard, hand, inPlay := g.CardCounts()
	return draw + discard + hand + inPlay
}

type eventCounter struct {
	count int
}

func (c *eventCounter) OnEvent(event.Event) { c.count++ }

func runWave(t *testing.T, g *Game) {
	t.Helper()
	if !g.StartWave() {
		t.Fatalf("StartWave failed")
	}
	for i := 0; i < 20000 && g.Phase() == component.Wave; i++ {
		g.Update(0.01)
		if g.Pool.ActiveCount()+g.Pool.FreeCount() != g.Pool.Allocated() {
			t.Fatalf("pool invariant broken mid-wave")
		}
	}
	if g.Phase() == component.Wave {
		t.Fatalf("wave never finished")
	}
}

func TestInitialPathSpansTheLane(t *testing.T) {
	g := newTestGame(t, allWalls(), testSettings(10, 1))
	nodes := g.PathNodes()
	if len(nodes) != 10 {
		t.Fatalf("10x1 lane should give a 10-node path, got %d", len(nodes))
	}
	if nodes[0] != (grid.Point{X: 1, Y: 1}) || nodes[9] != (grid.Point{X: 10, Y: 1}) {
		t.Fatalf("path should run (1,1)..(10,1), got %v..%v", nodes[0], nodes[9])
	}
	for _, p := range nodes[1:9] {
		cell, _ := g.Grid.Get(p.X, p.Y)
		if cell.Type != grid.CellPath {
			t.Fatalf("route cell %v not marked path", p)
		}
	}
}

func TestPlaceCardRejectionsLeaveStateUnchanged(t *testing.T) {
	settings := testSettings(10, 3)
	g := newTestGame(t, allWalls(), settings)
	resources := g.PlayerState().Resources
	total := totalCards(g)

	cases := []struct {
		name    string
		attempt func() bool
	}{
		{"hand index out of range", func() bool { return g.PlaceCard(99, 3, 1) }},
		{"negative hand index", func() bool { return g.PlaceCard(-1, 3, 1) }},
		{"out of bounds cell", func() bool { return g.PlaceCard(0, 0, 0) }},
		{"entry cell", func() bool { return g.PlaceCard(0, 1, 2) }},
		{"exit cell", func() bool { return g.PlaceCard(0, 10, 2) }},
	}
	for _, tc := range cases {
		if tc.attempt() {
			t.Fatalf("%s: placement should fail", tc.name)
		}
		if g.PlayerState().Resources != resources {
			t.Fatalf("%s: resources changed on failed placement", tc.name)
		}
		if totalCards(g) != total {
			t.Fatalf("%s: card count changed on failed placement", tc.name)
		}
	}
}

func TestPlaceCardRequiresResources(t *testing.T) {
	settings := testSettings(10, 3)
	settings.StartingResources = 5 // below the wall cost
	g := newTestGame(t, allWalls(), settings)
	if g.PlaceCard(0, 3, 1) {
		t.Fatalf("placement should fail without resources")
	}
}

func TestArcherCardRefusesPathCell(t *testing.T) {
	deck := make([]string, 12)
	for i := range deck {
		deck[i] = defs.CardArcher
	}
	g := newTestGame(t, deck, testSettings(10, 1))
	// Every interior cell of a 10x1 lane carries the path marking.
	if g.PlaceCard(0, 5, 1) {
		t.Fatalf("archer card must not be playable on a path cell")
	}
	cell, _ := g.Grid.Get(5, 1)
	if cell.Type != grid.CellPath || cell.Occupant != 0 {
		t.Fatalf("rejected placement mutated the cell")
	}
}

func TestWallOnPathReroutes(t *testing.T) {
	g := newTestGame(t, allWalls(), testSettings(10, 3))
	if !g.PlaceCard(0, 5, 2) {
		t.Fatalf("wall placement on the path should succeed")
	}
	nodes := g.PathNodes()
	if len(nodes) != 12 {
		t.Fatalf("detour around one wall should be 12 nodes, got %d", len(nodes))
	}
	for _, p := range nodes {
		if p == (grid.Point{X: 5, Y: 2}) {
			t.Fatalf("recomputed path still crosses the wall")
		}
	}
	cell, _ := g.Grid.Get(5, 2)
	if !cell.Blocked || cell.Type != grid.CellPath {
		t.Fatalf("wall on a path cell should stay path-typed but blocked, got %+v", cell)
	}
}

func TestWallBlockingLaneIsPermissive(t *testing.T) {
	g := newTestGame(t, allWalls(), testSettings(10, 1))
	blocked := &eventCounter{}
	g.EventDispatcher.Subscribe(event.PathBlocked, blocked)

	// No alternative row: the placement stands but the route is gone.
	if !g.PlaceCard(0, 5, 1) {
		t.Fatalf("the source behavior keeps the placement even when it severs the route")
	}
	if len(g.PathNodes()) != 0 {
		t.Fatalf("severed route should leave an empty path")
	}
	if blocked.count != 1 {
		t.Fatalf("expected one PathBlocked event, got %d", blocked.count)
	}
	if g.StartWave() {
		t.Fatalf("waves must not start while no route exists")
	}

	// Debug removal restores the lane.
	g.SetCellEmpty(5, 1)
	if len(g.PathNodes()) != 10 {
		t.Fatalf("clearing the wall should restore the 10-node path, got %d", len(g.PathNodes()))
	}
}

func TestWaveLifecycle(t *testing.T) {
	g := newTestGame(t, allWalls(), testSettings(10, 1))
	spawned := &eventCounter{}
	ended := &eventCounter{}
	g.EventDispatcher.Subscribe(event.EnemySpawned, spawned)
	g.EventDispatcher.Subscribe(event.WaveEnded, ended)

	healthBefore := g.PlayerState().Health
	runWave(t, g)

	// Wave 1 quota: 5 + 2*1.
	if spawned.count != 7 {
		t.Fatalf("wave 1 should spawn 7 enemies, got %d", spawned.count)
	}
	if ended.count != 1 {
		t.Fatalf("WaveEnded must fire exactly once, got %d", ended.count)
	}
	if g.Phase() != component.PostWave {
		t.Fatalf("expected PostWave, got %v", g.Phase())
	}
	// No towers: every enemy leaks and each costs exactly one health.
	if got := healthBefore - g.PlayerState().Health; got != 7 {
		t.Fatalf("7 leaks should cost 7 health, cost %d", got)
	}
	if len(g.RewardOptions()) != config.RewardChoices {
		t.Fatalf("expected %d reward options, got %d", config.RewardChoices, len(g.RewardOptions()))
	}
	if g.PlayerState().WaveNumber != 1 {
		t.Fatalf("wave counter should be 1, got %d", g.PlayerState().WaveNumber)
	}
}

func TestSelectRewardAddsOneCardAndRedraws(t *testing.T) {
	g := newTestGame(t, allWalls(), testSettings(10, 1))
	runWave(t, g)

	total := totalCards(g)
	if g.SelectReward(99) {
		t.Fatalf("out-of-range reward index should fail")
	}
	if !g.SelectReward(0) {
		t.Fatalf("reward selection failed")
	}
	if g.Phase() != component.PreWave {
		t.Fatalf("reward selection should return to PreWave, got %v", g.Phase())
	}
	if totalCards(g) != total+1 {
		t.Fatalf("reward should add exactly one card: %d -> %d", total, totalCards(g))
	}
	_, _, hand, _ := g.CardCounts()
	if hand != len(g.HandCards()) || hand == 0 {
		t.Fatalf("fresh hand expected after reward, got %d", hand)
	}
	if g.SelectReward(0) {
		t.Fatalf("reward selection outside PostWave should fail")
	}
}

func TestConstructionForbiddenDuringWave(t *testing.T) {
	g := newTestGame(t, allWalls(), testSettings(10, 3))
	if !g.StartWave() {
		t.Fatalf("StartWave failed")
	}
	if g.StartWave() {
		t.Fatalf("StartWave must only fire from PreWave")
	}
	if g.PlaceCard(0, 3, 1) {
		t.Fatalf("construction must be refused during the wave")
	}
}

func TestDefeatEndsTheSession(t *testing.T) {
	settings := testSettings(10, 1)
	settings.PlayerHealth = 3
	g := newTestGame(t, allWalls(), settings)
	over := &eventCounter{}
	g.EventDispatcher.Subscribe(event.GameOver, over)

	runWave(t, g)

	if g.Phase() != component.Defeat {
		t.Fatalf("3 health against 7 leaks should end in Defeat, got %v", g.Phase())
	}
	if over.count != 1 {
		t.Fatalf("GameOver must fire exactly once, got %d", over.count)
	}
	if g.PlayerState().Health > 0 {
		t.Fatalf("defeated player should be at zero health")
	}
	if len(g.EnemyViews()) != 0 {
		t.Fatalf("defeat should clear the board")
	}
	if g.StartWave() {
		t.Fatalf("no waves after defeat")
	}
}

func TestDeckConservationAcrossPlacement(t *testing.T) {
	g := newTestGame(t, allWalls(), testSettings(10, 3))
	total := totalCards(g)
	if !g.PlaceCard(0, 4, 1) {
		t.Fatalf("placement failed")
	}
	if totalCards(g) != total {
		t.Fatalf("playing a card must conserve the total: %d -> %d", total, totalCards(g))
	}
	_, _, _, inPlay := g.CardCounts()
	if inPlay != 1 {
		t.Fatalf("played card should be accounted in-play, got %d", inPlay)
	}
}

func TestTowerDefendsTheLane(t *testing.T) {
	deck := []string{
		defs.CardArcher, defs.CardArcher, defs.CardArcher, defs.CardArcher,
		defs.CardArcher, defs.CardArcher, defs.CardArcher, defs.CardArcher,
		defs.CardArcher, defs.CardArcher, defs.CardArcher, defs.CardArcher,
	}
	g := newTestGame(t, deck, testSettings(10, 3))
	kills := &eventCounter{}
	g.EventDispatcher.Subscribe(event.EnemyKilled, kills)

	// A picket line of archers along the lane.
	for _, x := range []int{3, 5, 7} {
		if !g.PlaceCard(0, x, 1) {
			t.Fatalf("archer placement at (%d,1) failed", x)
		}
	}
	resources := g.PlayerState().Resources
	healthBefore := g.PlayerState().Health
	runWave(t, g)

	if kills.count == 0 {
		t.Fatalf("archers should score kills")
	}
	if got := g.PlayerState().Resources; got != resources+kills.count*config.ResourcePerKill {
		t.Fatalf("each kill pays %d: expected %d, got %d",
			config.ResourcePerKill, resources+kills.count*config.ResourcePerKill, got)
	}
	leaks := healthBefore - g.PlayerState().Health
	if kills.count+leaks != 7 {
		t.Fatalf("kills (%d) + leaks (%d) must account for all 7 enemies", kills.count, leaks)
	}
}

func TestMidWaveRerouteKeepsEnemiesMarching(t *testing.T) {
	g := newTestGame(t, allWalls(), testSettings(10, 3))
	if !g.PlaceCard(0, 5, 2) {
		t.Fatalf("wall placement on the path should succeed")
	}
	if len(g.PathNodes()) != 12 {
		t.Fatalf("expected the 12-node detour, got %d", len(g.PathNodes()))
	}
	leaks := &eventCounter{}
	g.EventDispatcher.Subscribe(event.EnemyLeaked, leaks)
	if !g.StartWave() {
		t.Fatalf("StartWave failed")
	}

	maxIndex := func() int {
		m := -1
		for _, follow := range g.ECS.PathFollows {
			if follow.CurrentIndex > m {
				m = follow.CurrentIndex
			}
		}
		return m
	}
	// March the lead enemy deep into the detour, past the length of the
	// straight lane it is about to be rerouted onto.
	for i := 0; i < 20000 && maxIndex() < 10; i++ {
		g.Update(0.01)
	}
	if maxIndex() < 10 {
		t.Fatalf("lead enemy never advanced far enough, index %d", maxIndex())
	}
	if leaks.count != 0 {
		t.Fatalf("no enemy should have leaked yet, got %d", leaks.count)
	}

	// Removing the wall mid-wave shortens the route to 10 nodes.
	g.SetCellEmpty(5, 2)
	if len(g.PathNodes()) != 10 {
		t.Fatalf("clearing the wall should restore the 10-node lane, got %d", len(g.PathNodes()))
	}
	for id, follow := range g.ECS.PathFollows {
		if follow.CurrentIndex >= len(g.PathNodes()) {
			t.Fatalf("enemy %d kept a stale node index %d past the new route", id, follow.CurrentIndex)
		}
	}
	g.Update(0.001)
	if leaks.count != 0 {
		t.Fatalf("reroute must not leak enemies from mid-board, got %d", leaks.count)
	}
}

// cmd/game/main.go
package main

import (
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"go-card-defense/internal/app"
	"go-card-defense/internal/component"
	"go-card-defense/internal/config"
	"go-card-defense/internal/defs"
	"go-card-defense/pkg/grid"
	"go-card-defense/pkg/render"
)

// AppGame is the ebiten shell around the simulation core. It only reads
// the session's views and feeds intents back; all rules live in the core.
type AppGame struct {
	game           *app.Game
	renderer       *render.BoardRenderer
	lastUpdateTime time.Time
	selectedCard   int
	speed          float64
	paused         bool
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	a.handleInput()
	if !a.paused {
		a.game.Update(deltaTime * a.speed)
	}
	return nil
}

func (a *AppGame) handleInput() {
	// Number keys pick a reward in PostWave and a hand card otherwise.
	for i, key := range []ebiten.Key{
		ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
		ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
	} {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if a.game.Phase() == component.PostWave {
			a.game.SelectReward(i)
		} else if i < len(a.game.HandCards()) {
			a.selectedCard = i
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.game.StartWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.paused = !a.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		if a.speed == 1.0 {
			a.speed = 2.0
		} else {
			a.speed = 1.0
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		cx, cy := grid.PixelToCell(float64(mx), float64(my), config.CellSize)
		if a.game.Grid.InBounds(cx, cy) && a.selectedCard >= 0 {
			if a.game.PlaceCard(a.selectedCard, cx, cy) {
				if a.selectedCard >= len(a.game.HandCards()) {
					a.selectedCard = len(a.game.HandCards()) - 1
				}
			}
		}
	}
	// Right click clears a cell. Debug helper, mirrored by SetCellEmpty.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		mx, my := ebiten.CursorPosition()
		cx, cy := grid.PixelToCell(float64(mx), float64(my), config.CellSize)
		if a.game.Grid.InBounds(cx, cy) {
			a.game.SetCellEmpty(cx, cy)
		}
	}
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.game, a.selectedCard)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	settings, err := config.LoadSettings("game.yaml")
	if err != nil {
		logger.Warn("settings file ignored", zap.Error(err))
	}

	// Definition files override the compiled-in defaults when present.
	if _, err := os.Stat("assets/data"); err == nil {
		if err := defs.LoadAll("assets/data"); err != nil {
			logger.Fatal("failed to load definitions", zap.Error(err))
		}
	}

	shell := &AppGame{
		game:           app.NewGame(settings, logger),
		renderer:       render.NewBoardRenderer(),
		lastUpdateTime: time.Now(),
		selectedCard:   0,
		speed:          1.0,
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Card Defense")
	if err := ebiten.RunGame(shell); err != nil {
		log.Fatal(err)
	}
}

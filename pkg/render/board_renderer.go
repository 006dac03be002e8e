// pkg/render/board_renderer.go
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-card-defense/internal/app"
	"go-card-defense/internal/component"
	"go-card-defense/internal/config"
	"go-card-defense/internal/defs"
	"go-card-defense/pkg/grid"
)

// BoardRenderer draws one session from its read-only views. It holds no
// game state of its own beyond the font face.
type BoardRenderer struct {
	face font.Face
}

func NewBoardRenderer() *BoardRenderer {
	return &BoardRenderer{face: basicfont.Face7x13}
}

// Draw renders the board, entities and HUD. selectedCard highlights the
// hand slot the next click will play; -1 for none.
func (r *BoardRenderer) Draw(screen *ebiten.Image, game *app.Game, selectedCard int) {
	screen.Fill(config.BackgroundColor)
	r.drawCells(screen, game)
	r.drawTowers(screen, game)
	r.drawEnemies(screen, game)
	r.drawProjectiles(screen, game)
	r.drawHUD(screen, game, selectedCard)
}

func (r *BoardRenderer) drawCells(screen *ebiten.Image, game *app.Game) {
	size := float32(config.CellSize)
	for y := 1; y <= game.Grid.Height; y++ {
		for x := 1; x <= game.Grid.Width; x++ {
			cell, _ := game.Grid.Get(x, y)
			var fill color.RGBA
			switch cell.Type {
			case grid.CellPath:
				fill = config.PathCellColor
			case grid.CellTower:
				fill = config.TowerCellColor
			case grid.CellWall:
				fill = config.WallCellColor
			default:
				fill = config.EmptyCellColor
			}
			if cell.Blocked && cell.Type == grid.CellPath {
				fill = config.WallCellColor
			}
			p := grid.Point{X: x, Y: y}
			if p == game.Grid.Start {
				fill = config.EntryColor
			} else if p == game.Grid.End {
				fill = config.ExitColor
			}
			px := float32(x-1) * size
			py := float32(y-1) * size
			vector.DrawFilledRect(screen, px, py, size, size, fill, false)
			vector.StrokeRect(screen, px, py, size, size, 1, config.GridLineColor, false)
		}
	}
}

func (r *BoardRenderer) drawTowers(screen *ebiten.Image, game *app.Game) {
	for _, tower := range game.TowerViews() {
		if tower.Range > 0 {
			vector.DrawFilledCircle(screen, float32(tower.X), float32(tower.Y), float32(tower.Range), config.RangeColor, false)
		}
		vector.DrawFilledCircle(screen, float32(tower.X), float32(tower.Y), tower.Radius, tower.Color, false)
	}
}

func (r *BoardRenderer) drawEnemies(screen *ebiten.Image, game *app.Game) {
	for _, enemy := range game.EnemyViews() {
		vector.DrawFilledCircle(screen, float32(enemy.X), float32(enemy.Y), enemy.Radius, enemy.Color, false)

		// Health bar above the body.
		barW := enemy.Radius * 2
		barX := float32(enemy.X) - enemy.Radius
		barY := float32(enemy.Y) - enemy.Radius - 6
		vector.DrawFilledRect(screen, barX, barY, barW, 3, config.HealthBackColor, false)
		vector.DrawFilledRect(screen, barX, barY, barW*float32(enemy.HealthFraction), 3, config.HealthFillColor, false)
	}
}

func (r *BoardRenderer) drawProjectiles(screen *ebiten.Image, game *app.Game) {
	for _, proj := range game.ProjectileViews() {
		vector.DrawFilledCircle(screen, float32(proj.X), float32(proj.Y), float32(proj.Size), config.ProjectileColor, false)
	}
}

func (r *BoardRenderer) drawHUD(screen *ebiten.Image, game *app.Game, selectedCard int) {
	player := game.PlayerState()
	baseY := game.Grid.Height*int(config.CellSize) + 24

	status := fmt.Sprintf("%s  wave %d  hp %d  gold %d",
		game.Phase(), player.WaveNumber, player.Health, player.Resources)
	if wave, ok := game.WaveInProgress(); ok {
		status += fmt.Sprintf("  spawned %d/%d", wave.Spawned, wave.TotalEnemies)
	}
	text.Draw(screen, status, r.face, 16, baseY, config.TextLightColor)

	draw, discard, _, _ := game.CardCounts()
	line := fmt.Sprintf("deck %d  discard %d   hand:", draw, discard)
	for i, id := range game.HandCards() {
		name := id
		cost := 0
		if def, ok := defs.CardLibrary[id]; ok {
			name = def.Name
			cost = def.Cost
		}
		marker := " "
		if i == selectedCard {
			marker = ">"
		}
		line += fmt.Sprintf("  %s[%d] %s (%d)", marker, i+1, name, cost)
	}
	text.Draw(screen, line, r.face, 16, baseY+20, config.TextLightColor)

	switch game.Phase() {
	case component.PostWave:
		rewards := "choose a reward:"
		for i, id := range game.RewardOptions() {
			name := id
			if def, ok := defs.CardLibrary[id]; ok {
				name = def.Name
			}
			rewards += fmt.Sprintf("  [%d] %s", i+1, name)
		}
		text.Draw(screen, rewards, r.face, 16, baseY+40, config.TextLightColor)
	case component.PreWave:
		text.Draw(screen, "1-9 pick card, click to build, space starts the wave", r.face, 16, baseY+40, config.TextLightColor)
	case component.Defeat:
		text.Draw(screen, "defeated", r.face, 16, baseY+40, config.TextLightColor)
	}
}

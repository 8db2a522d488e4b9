package ui

import (
	"fmt"
	"log"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/backrooms/internal/entity"
	"github.com/samdwyer/backrooms/internal/gamedata"
	"github.com/samdwyer/backrooms/internal/world"
)

// The view is 256×224 pixels, 16×14 tiles. Each tile takes two terminal
// columns so cells come out roughly square.
const (
	ViewCols  = 16
	ViewRows  = 14
	cellWidth = 2
)

// wallRunes maps a wall neighbour mask to a box-drawing rune.
var wallRunes = [16]rune{
	'■', '─', '│', '┘', '─', '─', '└', '┴',
	'│', '┐', '│', '┤', '┌', '┬', '├', '┼',
}

// fallbackStyles are used when the embedded palette cannot be loaded.
var fallbackStyles = gamedata.Styles{
	Wall:   tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorOlive),
	Floor:  tcell.StyleDefault.Foreground(tcell.ColorOlive).Background(tcell.ColorBlack),
	Player: tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	Enemy:  tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	HUD:    tcell.StyleDefault.Foreground(tcell.ColorWhite),
}

// TileRunes returns the two terminal runes a resolved code is drawn with.
func TileRunes(t world.TileCode) (rune, rune) {
	if mask, ok := t.WallMask(); ok {
		right := ' '
		if mask&world.MaskRight != 0 {
			right = '─'
		}
		return wallRunes[mask], right
	}
	if t == world.TileVoid {
		return ' ', ' '
	}
	return '·', ' '
}

// shadeStyle picks a cell's colours from its cosmetic-layer code.
func (r *Renderer) shadeStyle(shade world.TileCode) tcell.Style {
	switch {
	case shade.IsCosmeticWall():
		return r.styles.Wall
	case shade == world.CosmeticFloor:
		return r.styles.Floor
	default:
		return tcell.StyleDefault
	}
}

// Frame is everything drawn in one frame.
type Frame struct {
	Tiles   [][]world.TileCode // Viewport, ViewRows×ViewCols
	Shade   [][]world.TileCode // Cosmetic layer over the same window
	Camera  world.Vec2
	Player  *entity.Player
	Enemies []*entity.Enemy
	Status  string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	styles gamedata.Styles
}

// NewRenderer creates a new renderer for the given screen, styled by the
// embedded palette.
func NewRenderer(screen *Screen) *Renderer {
	styles, err := loadStyles()
	if err != nil {
		log.Printf("Warning: %v; using fallback colours", err)
		styles = fallbackStyles
	}
	return &Renderer{screen: screen, styles: styles}
}

func loadStyles() (gamedata.Styles, error) {
	p, err := gamedata.LoadPalette()
	if err != nil {
		return gamedata.Styles{}, err
	}
	return p.Styles()
}

// Render draws the viewport, the entities in the resident chunk and a
// status line below the view.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	for y, row := range f.Tiles {
		for x, t := range row {
			left, right := TileRunes(t)
			style := r.shadeStyle(shadeAt(f.Shade, x, y, t))
			r.screen.SetContent(x*cellWidth, y, left, style)
			r.screen.SetContent(x*cellWidth+1, y, right, style)
		}
	}

	for _, e := range f.Enemies {
		if e.Active(f.Player.Chunk) {
			r.drawEntity(f.Camera, e.Pos, 'Ж', r.styles.Enemy)
		}
	}
	r.drawEntity(f.Camera, f.Player.Pos, '@', r.styles.Player)

	hud := fmt.Sprintf("HP %2d  STAMINA %3.0f  CHUNK %s", f.Player.Health, f.Player.Stamina, f.Player.Chunk)
	r.screen.DrawText(0, ViewRows, hud, r.styles.HUD)
	if f.Status != "" {
		r.screen.DrawText(0, ViewRows+1, f.Status, r.styles.HUD.Bold(true))
	}

	r.screen.Show()
}

// shadeAt returns the cosmetic code for view cell x, y, deriving it from the
// resolved code when the frame carries no shade window.
func shadeAt(shade [][]world.TileCode, x, y int, t world.TileCode) world.TileCode {
	if y < len(shade) && x < len(shade[y]) {
		return shade[y][x]
	}
	if t == world.TileVoid {
		return world.TileVoid
	}
	return t.Cosmetic()
}

func (r *Renderer) drawEntity(camera, pos world.Vec2, ch rune, style tcell.Style) {
	col, row, ok := ScreenCell(camera, pos)
	if !ok {
		return
	}
	r.screen.SetContent(col*cellWidth, row, ch, style)
}

// ScreenCell returns the view cell containing chunk-local pos for a camera
// at the given pixel offset. ok is false outside the view.
func ScreenCell(camera, pos world.Vec2) (col, row int, ok bool) {
	col = tileIndex(pos.X) - tileIndex(camera.X)
	row = tileIndex(pos.Y) - tileIndex(camera.Y)
	ok = col >= 0 && col < ViewCols && row >= 0 && row < ViewRows
	return col, row, ok
}

func tileIndex(px float64) int {
	return int(math.Floor(px / world.TileSize))
}

// RenderMessage displays a message on row y and flushes it immediately.
func (r *Renderer) RenderMessage(msg string, y int) {
	_, height := r.screen.Size()
	if y >= height {
		y = height - 1
	}
	r.screen.DrawText(0, y, msg, r.styles.HUD)
	r.screen.Show()
}

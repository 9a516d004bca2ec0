package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/flapecs/ecs"
	"github.com/plus3/flapecs/game"
)

// Glyphs are the runes used to draw entities in a terminal.
type Glyphs struct {
	Avatar   rune
	Obstacle rune
}

var DefaultGlyphs = Glyphs{Avatar: '@', Obstacle: '#'}

// Terminal draws a scaled view of the world onto a tcell screen. The top
// row is reserved for the status line.
type Terminal struct {
	Screen  tcell.Screen
	Palette Palette
	Glyphs  Glyphs
	// Banner, when set, is printed in the middle of the field.
	Banner string
}

// NewTerminal creates a terminal sink using the default palette and glyphs.
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{
		Screen:  screen,
		Palette: DefaultPalette,
		Glyphs:  DefaultGlyphs,
	}
}

func (t *Terminal) Render(entities ecs.Entities, score int) {
	cols, rows := t.Screen.Size()
	background := tcell.StyleDefault.Background(tcell.FromImageColor(t.Palette.Background))
	t.Screen.Fill(' ', background)
	if cols <= 0 || rows <= 1 {
		t.Screen.Show()
		return
	}

	fieldRows := rows - 1

	obstacleStyle := background.Foreground(tcell.FromImageColor(t.Palette.Obstacle))
	avatarStyle := background.Foreground(tcell.FromImageColor(t.Palette.Avatar)).Bold(true)

	for e := range entities.Query(ecs.KindObstacle | ecs.KindPosition) {
		w, h := obstacleSize(e)
		c0, c1 := cellSpan(e.Position.X, float64(w), game.ScreenWidth, cols)
		r0, r1 := cellSpan(e.Position.Y, float64(h), game.ScreenHeight, fieldRows)
		for row := r0; row < r1; row++ {
			for col := c0; col < c1; col++ {
				t.Screen.SetContent(col, row+1, t.Glyphs.Obstacle, nil, obstacleStyle)
			}
		}
	}

	if avatar, ok := entities.Find(ecs.KindAvatar | ecs.KindPosition); ok {
		col := cellOf(avatar.Position.X, game.ScreenWidth, cols)
		row := cellOf(avatar.Position.Y, game.ScreenHeight, fieldRows)
		if col >= 0 && col < cols && row >= 0 && row < fieldRows {
			t.Screen.SetContent(col, row+1, t.Glyphs.Avatar, nil, avatarStyle)
		}
	}

	status := tcell.StyleDefault.
		Background(tcell.FromImageColor(t.Palette.Text)).
		Foreground(tcell.FromImageColor(t.Palette.Background))
	for col := range cols {
		t.Screen.SetContent(col, 0, ' ', nil, status)
	}
	drawText(t.Screen, 1, 0, status, fmt.Sprintf("Score: %d", score))

	if t.Banner != "" {
		banner := tcell.StyleDefault.
			Background(tcell.FromImageColor(t.Palette.Banner)).
			Foreground(tcell.ColorWhite).
			Bold(true)
		drawText(t.Screen, max(0, (cols-len(t.Banner))/2), rows/2, banner, t.Banner)
	}

	t.Screen.Show()
}

// cellOf maps a world coordinate on an axis of the given size to a cell
// index on an axis of cells cells.
func cellOf(v, size float64, cells int) int {
	return int(math.Floor(v * float64(cells) / size))
}

// cellSpan converts a world interval to a half-open cell range clipped to
// [0, cells).
func cellSpan(start, length, size float64, cells int) (int, int) {
	lo := cellOf(start, size, cells)
	hi := int(math.Ceil((start + length) * float64(cells) / size))
	return max(lo, 0), min(hi, cells)
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

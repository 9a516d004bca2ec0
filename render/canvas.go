package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/flapecs/ecs"
	"github.com/plus3/flapecs/game"
)

// Canvas draws onto an ebiten image in world coordinates. Screen must be
// set before each Render, typically from ebiten.Game.Draw.
type Canvas struct {
	Screen  *ebiten.Image
	Palette Palette
	// Banner, when set, is printed in the middle of the screen.
	Banner string
}

// NewCanvas creates a canvas using the default palette.
func NewCanvas() *Canvas {
	return &Canvas{Palette: DefaultPalette}
}

func (c *Canvas) Render(entities ecs.Entities, score int) {
	if c.Screen == nil {
		return
	}
	c.Screen.Fill(c.Palette.Background)

	for e := range entities.Query(ecs.KindPosition) {
		switch {
		case e.Avatar != nil:
			vector.DrawFilledCircle(c.Screen, float32(e.Position.X), float32(e.Position.Y), avatarRadius(e), c.Palette.Avatar, true)
		case e.Obstacle != nil:
			w, h := obstacleSize(e)
			vector.DrawFilledRect(c.Screen, float32(e.Position.X), float32(e.Position.Y), w, h, c.Palette.Obstacle, false)
		}
	}

	vector.DrawFilledRect(c.Screen, 4, 4, 96, 20, c.Palette.Background, false)
	ebitenutil.DebugPrintAt(c.Screen, fmt.Sprintf("Score: %d", score), 10, 8)

	if c.Banner != "" {
		x := game.ScreenWidth/2 - len(c.Banner)*3
		vector.DrawFilledRect(c.Screen, float32(x-8), game.ScreenHeight/2-8, float32(len(c.Banner)*6+16), 32, c.Palette.Banner, false)
		ebitenutil.DebugPrintAt(c.Screen, c.Banner, x, game.ScreenHeight/2)
	}
}

func avatarRadius(e ecs.Entity) float32 {
	if e.Collider == nil {
		return game.AvatarDiameter / 2
	}
	return float32(e.Collider.Width / 2)
}

func obstacleSize(e ecs.Entity) (float32, float32) {
	if e.Collider == nil {
		return game.ObstacleWidth, game.ObstacleHeight
	}
	return float32(e.Collider.Width), float32(e.Collider.Height)
}

// Package render draws game state. Canvas targets an ebiten image, Terminal
// a tcell screen; both satisfy game.Sink.
package render

import (
	"image/color"

	"golang.org/x/image/colornames"
)

type Palette struct {
	Background color.RGBA
	Avatar     color.RGBA
	Obstacle   color.RGBA
	Text       color.RGBA
	Banner     color.RGBA
}

var DefaultPalette = Palette{
	Background: colornames.Lightskyblue,
	Avatar:     colornames.Yellow,
	Obstacle:   colornames.Green,
	Text:       colornames.Black,
	Banner:     colornames.Crimson,
}

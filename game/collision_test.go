package game_test

import (
	"testing"

	"github.com/plus3/flapecs/ecs"
	"github.com/plus3/flapecs/game"
	"github.com/stretchr/testify/assert"
)

func avatarAt(x, y float64) ecs.Entity {
	return game.NewAvatar(1).WithPosition(ecs.Position{X: x, Y: y})
}

func rect(id ecs.EntityId, x, y, w, h float64) ecs.Entity {
	return ecs.Entity{
		Id:       id,
		Position: &ecs.Position{X: x, Y: y},
		Collider: &ecs.Collider{Width: w, Height: h},
		Obstacle: &ecs.Obstacle{},
	}
}

func TestDetectCollision(t *testing.T) {
	tests := []struct {
		name     string
		entities ecs.Entities
		want     bool
	}{
		{"start position with no obstacles", ecs.Entities{game.NewAvatar(1)}, false},
		{"no avatar", ecs.Entities{rect(2, 0, 0, 800, 600)}, false},
		{"empty", nil, false},
		{"above the top edge", ecs.Entities{avatarAt(100, 5)}, true},
		{"touching the top edge", ecs.Entities{avatarAt(100, 10)}, false},
		{"below the bottom edge", ecs.Entities{avatarAt(100, 595)}, true},
		{"touching the bottom edge", ecs.Entities{avatarAt(100, 590)}, false},
		{"tangent to a left edge", ecs.Entities{avatarAt(100, 300), rect(2, 110, 250, 50, 100)}, true},
		{"just clear of a left edge", ecs.Entities{avatarAt(100, 300), rect(2, 110.5, 250, 50, 100)}, false},
		{"tangent to a bottom edge", ecs.Entities{avatarAt(130, 310), rect(2, 110, -100, 50, 400)}, true},
		{"just clear of a bottom edge", ecs.Entities{avatarAt(130, 310.5), rect(2, 110, -100, 50, 400)}, false},
		{"centre inside the rectangle", ecs.Entities{avatarAt(130, 300), rect(2, 110, 250, 50, 100)}, true},
		{"near a corner but outside", ecs.Entities{avatarAt(102, 242), rect(2, 110, 250, 50, 100)}, false},
		{"overlapping a corner", ecs.Entities{avatarAt(104, 244), rect(2, 110, 250, 50, 100)}, true},
		{"second obstacle hits", ecs.Entities{
			avatarAt(100, 300),
			rect(2, 600, 0, 50, 100),
			rect(3, 95, 305, 50, 100),
		}, true},
		{"obstacle without collider is ignored", ecs.Entities{
			avatarAt(100, 300),
			{Id: 2, Position: &ecs.Position{X: 100, Y: 300}, Obstacle: &ecs.Obstacle{}},
		}, false},
		{"obstacle without position is ignored", ecs.Entities{
			avatarAt(100, 300),
			{Id: 2, Collider: &ecs.Collider{Width: 50, Height: 400}, Obstacle: &ecs.Obstacle{}},
		}, false},
		{"avatar without collider", ecs.Entities{
			{Id: 1, Position: &ecs.Position{X: 100, Y: -50}, Avatar: &ecs.Avatar{}},
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, game.DetectCollision(tt.entities))
		})
	}
}

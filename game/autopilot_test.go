package game_test

import (
	"testing"

	"github.com/plus3/flapecs/ecs"
	"github.com/plus3/flapecs/game"
	"github.com/stretchr/testify/assert"
)

func TestAutopilot(t *testing.T) {
	pilot := game.Autopilot{Bias: 20}

	t.Run("aims at the screen middle without obstacles", func(t *testing.T) {
		assert.Equal(t, 320.0, pilot.Target(ecs.Entities{game.NewAvatar(1)}))
	})

	t.Run("aims at the nearest gap ahead", func(t *testing.T) {
		entities := ecs.Entities{
			game.NewAvatar(1),
			game.NewObstacle(2, ecs.SegmentTop, 20, -300),
			game.NewObstacle(3, ecs.SegmentBottom, 20, 250),
			game.NewObstacle(4, ecs.SegmentTop, 600, -100),
			game.NewObstacle(5, ecs.SegmentBottom, 600, 450),
			game.NewObstacle(6, ecs.SegmentTop, 300, -250),
			game.NewObstacle(7, ecs.SegmentBottom, 300, 300),
		}

		// pair 2/3 ends at x=70, behind the avatar's left edge at 90
		assert.Equal(t, 150.0+75+20, pilot.Target(entities))
	})

	t.Run("flaps only when low and falling", func(t *testing.T) {
		low := game.NewAvatar(1).
			WithPosition(ecs.Position{X: 100, Y: 400}).
			WithVelocity(ecs.Velocity{DY: 0.5})
		assert.True(t, pilot.ShouldFlap(ecs.Entities{low}))

		rising := low.WithVelocity(ecs.Velocity{DY: -2})
		assert.False(t, pilot.ShouldFlap(ecs.Entities{rising}))

		high := low.WithPosition(ecs.Position{X: 100, Y: 200})
		assert.False(t, pilot.ShouldFlap(ecs.Entities{high}))

		assert.False(t, pilot.ShouldFlap(nil))
	})
}

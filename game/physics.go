package game

import "github.com/plus3/flapecs/ecs"

// ApplyGravity adds each entity's gravity to its vertical velocity.
func ApplyGravity(entities ecs.Entities) ecs.Entities {
	return entities.Map(func(e ecs.Entity) ecs.Entity {
		if !e.Has(ecs.KindGravity | ecs.KindVelocity) {
			return e
		}
		return e.WithVelocity(ecs.Velocity{
			DX: e.Velocity.DX,
			DY: e.Velocity.DY + e.Gravity.Value,
		})
	})
}

// IntegratePosition moves every entity by its velocity.
func IntegratePosition(entities ecs.Entities) ecs.Entities {
	return entities.Map(func(e ecs.Entity) ecs.Entity {
		if !e.Has(ecs.KindPosition | ecs.KindVelocity) {
			return e
		}
		return e.WithPosition(ecs.Position{
			X: e.Position.X + e.Velocity.DX,
			Y: e.Position.Y + e.Velocity.DY,
		})
	})
}

// ScrollObstacles moves obstacles left by ScrollSpeed.
func ScrollObstacles(entities ecs.Entities) ecs.Entities {
	return entities.Map(func(e ecs.Entity) ecs.Entity {
		if !e.Has(ecs.KindObstacle | ecs.KindPosition) {
			return e
		}
		return e.WithPosition(ecs.Position{
			X: e.Position.X - ScrollSpeed,
			Y: e.Position.Y,
		})
	})
}

// DespawnObstacles drops obstacles whose right edge is left of the screen.
// An obstacle without a position is kept.
func DespawnObstacles(entities ecs.Entities) ecs.Entities {
	return entities.Filter(func(e ecs.Entity) bool {
		if !e.Has(ecs.KindObstacle | ecs.KindPosition) {
			return true
		}
		return e.Position.X+obstacleWidth(e) >= 0
	})
}

func obstacleWidth(e ecs.Entity) float64 {
	if e.Collider != nil {
		return e.Collider.Width
	}
	return ObstacleWidth
}

// ApplyFlap sets the avatar's vertical velocity to FlapImpulse.
func ApplyFlap(entities ecs.Entities) ecs.Entities {
	return entities.Map(func(e ecs.Entity) ecs.Entity {
		if !e.Has(ecs.KindAvatar | ecs.KindVelocity) {
			return e
		}
		return e.WithVelocity(ecs.Velocity{
			DX: e.Velocity.DX,
			DY: FlapImpulse,
		})
	})
}

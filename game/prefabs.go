package game

import "github.com/plus3/flapecs/ecs"

// NewAvatar builds the avatar at its starting position, at rest.
func NewAvatar(id ecs.EntityId) ecs.Entity {
	return ecs.Entity{
		Id:       id,
		Position: &ecs.Position{X: AvatarStartX, Y: AvatarStartY},
		Velocity: &ecs.Velocity{},
		Gravity:  &ecs.Gravity{Value: AvatarGravity},
		Collider: &ecs.Collider{Width: AvatarDiameter, Height: AvatarDiameter},
		Avatar:   &ecs.Avatar{},
	}
}

// NewObstacle builds one obstacle segment with its top-left corner at (x, y).
func NewObstacle(id ecs.EntityId, segment ecs.Segment, x, y float64) ecs.Entity {
	return ecs.Entity{
		Id:       id,
		Position: &ecs.Position{X: x, Y: y},
		Collider: &ecs.Collider{Width: ObstacleWidth, Height: ObstacleHeight},
		Obstacle: &ecs.Obstacle{Segment: segment},
	}
}

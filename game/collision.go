package game

import "github.com/plus3/flapecs/ecs"

// DetectCollision reports whether the avatar has left the screen vertically
// or touches any obstacle. Without an avatar there is no collision.
func DetectCollision(entities ecs.Entities) bool {
	avatar, ok := entities.Find(ecs.KindAvatar | ecs.KindPosition | ecs.KindCollider)
	if !ok {
		return false
	}

	cx, cy := avatar.Position.X, avatar.Position.Y
	radius := avatar.Collider.Width / 2

	if cy-radius < 0 || cy+radius > ScreenHeight {
		return true
	}

	for obstacle := range entities.Query(ecs.KindObstacle | ecs.KindPosition | ecs.KindCollider) {
		if circleIntersectsRect(cx, cy, radius, *obstacle.Position, *obstacle.Collider) {
			return true
		}
	}
	return false
}

// circleIntersectsRect tests the distance from the circle centre to the
// closest point of the rectangle. Touching counts as intersecting.
func circleIntersectsRect(cx, cy, radius float64, pos ecs.Position, size ecs.Collider) bool {
	closestX := clamp(cx, pos.X, pos.X+size.Width)
	closestY := clamp(cy, pos.Y, pos.Y+size.Height)

	dx := cx - closestX
	dy := cy - closestY
	return dx*dx+dy*dy <= radius*radius
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

package game

import "github.com/plus3/flapecs/ecs"

// UpdateScore marks top obstacles the avatar has fully passed and returns
// the updated collection with the number of points earned. A segment is
// scored at most once.
func UpdateScore(entities ecs.Entities) (ecs.Entities, int) {
	avatar, ok := entities.Find(ecs.KindAvatar | ecs.KindPosition)
	if !ok {
		return entities, 0
	}

	points := 0
	next := entities.Map(func(e ecs.Entity) ecs.Entity {
		if !e.Has(ecs.KindObstacle|ecs.KindPosition) || e.Obstacle.Passed || e.Obstacle.Segment != ecs.SegmentTop {
			return e
		}
		if avatar.Position.X <= e.Position.X+obstacleWidth(e) {
			return e
		}
		points++
		return e.WithObstacle(ecs.Obstacle{Segment: e.Obstacle.Segment, Passed: true})
	})
	return next, points
}

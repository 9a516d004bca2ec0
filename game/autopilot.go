package game

import "github.com/plus3/flapecs/ecs"

// Autopilot flaps the avatar toward the middle of the next gap. It is used
// by the headless runner and the terminal demo mode.
type Autopilot struct {
	// Bias shifts the aim point down from the gap centre. The avatar
	// overshoots upward after a flap, so a small positive bias keeps it clear
	// of the top segment.
	Bias float64
}

// DefaultAutopilot aims 20 units below the gap centre.
var DefaultAutopilot = Autopilot{Bias: 20}

// Target returns the height the autopilot is steering toward. With no
// obstacle ahead it aims at the middle of the screen.
func (a Autopilot) Target(entities ecs.Entities) float64 {
	avatar, ok := entities.Find(ecs.KindAvatar | ecs.KindPosition)
	if !ok {
		return ScreenHeight / 2
	}

	radius := 0.0
	if avatar.Collider != nil {
		radius = avatar.Collider.Width / 2
	}

	var nearest *ecs.Entity
	for obstacle := range entities.Query(ecs.KindObstacle | ecs.KindPosition) {
		if obstacle.Obstacle.Segment != ecs.SegmentTop {
			continue
		}
		if obstacle.Position.X+obstacleWidth(obstacle) < avatar.Position.X-radius {
			continue
		}
		if nearest == nil || obstacle.Position.X < nearest.Position.X {
			nearest = &obstacle
		}
	}
	if nearest == nil {
		return ScreenHeight/2 + a.Bias
	}

	gapTop := nearest.Position.Y + ObstacleHeight
	if nearest.Collider != nil {
		gapTop = nearest.Position.Y + nearest.Collider.Height
	}
	return gapTop + GapSize/2 + a.Bias
}

// ShouldFlap reports whether the avatar is below its target and no longer
// rising.
func (a Autopilot) ShouldFlap(entities ecs.Entities) bool {
	avatar, ok := entities.Find(ecs.KindAvatar | ecs.KindPosition | ecs.KindVelocity)
	if !ok {
		return false
	}
	return avatar.Position.Y > a.Target(entities) && avatar.Velocity.DY >= 0
}

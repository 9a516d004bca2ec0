package game

import "github.com/plus3/flapecs/ecs"

type GravitySystem struct{}

func (GravitySystem) Execute(frame *ecs.UpdateFrame) {
	frame.Entities = ApplyGravity(frame.Entities)
}

type MovementSystem struct{}

func (MovementSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Entities = IntegratePosition(frame.Entities)
}

type ScrollSystem struct{}

func (ScrollSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Entities = ScrollObstacles(frame.Entities)
}

type DespawnSystem struct{}

func (DespawnSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Entities = DespawnObstacles(frame.Entities)
}

type ScoreSystem struct{}

func (ScoreSystem) Execute(frame *ecs.UpdateFrame) {
	entities, points := UpdateScore(frame.Entities)
	frame.Entities = entities
	frame.Score += points
}

// SpawnSystem must run after scoring so that pairs spawned this frame are
// not considered until the next one.
type SpawnSystem struct {
	Spawner *Spawner
}

func (s *SpawnSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Entities = s.Spawner.SpawnObstacles(frame.Entities, frame.Count, frame.Ids)
}

// NewScheduler registers the frame systems in their required order.
func NewScheduler(spawner *Spawner) *ecs.Scheduler {
	return ecs.NewScheduler(
		GravitySystem{},
		MovementSystem{},
		ScrollSystem{},
		DespawnSystem{},
		ScoreSystem{},
		&SpawnSystem{Spawner: spawner},
	)
}

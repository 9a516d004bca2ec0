package ecs_test

import (
	"fmt"

	"github.com/plus3/flapecs/ecs"
)

type FallSystem struct {
	Pull float64
}

func (s FallSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Entities = frame.Entities.Map(func(e ecs.Entity) ecs.Entity {
		if !e.Has(ecs.KindVelocity) {
			return e
		}
		return e.WithVelocity(ecs.Velocity{DX: e.Velocity.DX, DY: e.Velocity.DY + s.Pull})
	})
}

type MoveSystem struct{}

func (MoveSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Entities = frame.Entities.Map(func(e ecs.Entity) ecs.Entity {
		if !e.Has(ecs.KindPosition | ecs.KindVelocity) {
			return e
		}
		return e.WithPosition(ecs.Position{X: e.Position.X + e.Velocity.DX, Y: e.Position.Y + e.Velocity.DY})
	})
}

// ExampleScheduler demonstrates a frame pipeline. Systems run in
// registration order, each replacing frame.Entities with a new collection,
// so the collection passed in is left untouched.
func ExampleScheduler() {
	var ids ecs.IdAllocator
	start := ecs.Entities{
		{Id: ids.Next(), Position: &ecs.Position{X: 0, Y: 0}, Velocity: &ecs.Velocity{DX: 1}},
		{Id: ids.Next(), Position: &ecs.Position{X: 50, Y: 50}},
	}

	scheduler := ecs.NewScheduler(FallSystem{Pull: 0.5}, MoveSystem{})

	frame := ecs.NewUpdateFrame(1, start, 0, &ids)
	for frame.Count <= 3 {
		scheduler.Once(frame)
		frame.Count++
	}

	for _, e := range frame.Entities {
		fmt.Printf("entity %d at (%.1f, %.1f)\n", e.Id, e.Position.X, e.Position.Y)
	}
	fmt.Printf("start still at (%.1f, %.1f)\n", start[0].Position.X, start[0].Position.Y)

	// Output:
	// entity 1 at (3.0, 3.0)
	// entity 2 at (50.0, 50.0)
	// start still at (0.0, 0.0)
}

// ExampleEntities_Query demonstrates iterating over the entities that carry
// a set of components.
func ExampleEntities_Query() {
	entities := ecs.Entities{
		{Id: 1, Position: &ecs.Position{X: 100, Y: 250}, Avatar: &ecs.Avatar{}},
		{Id: 2, Position: &ecs.Position{X: 800, Y: -200}, Obstacle: &ecs.Obstacle{Segment: ecs.SegmentTop}},
		{Id: 3, Position: &ecs.Position{X: 800, Y: 350}, Obstacle: &ecs.Obstacle{Segment: ecs.SegmentBottom}},
	}

	for e := range entities.Query(ecs.KindObstacle | ecs.KindPosition) {
		fmt.Printf("%d: %s segment at x=%.0f\n", e.Id, e.Obstacle.Segment, e.Position.X)
	}

	// Output:
	// 2: top segment at x=800
	// 3: bottom segment at x=800
}

package ecs_test

import "github.com/plus3/flapecs/ecs"

// Common test systems

type driftSystem struct{}

func (driftSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Entities = frame.Entities.Map(func(e ecs.Entity) ecs.Entity {
		if !e.Has(ecs.KindPosition | ecs.KindVelocity) {
			return e
		}
		return e.WithPosition(ecs.Position{
			X: e.Position.X + e.Velocity.DX,
			Y: e.Position.Y + e.Velocity.DY,
		})
	})
}

type countingSystem struct {
	executions int
	seen       []uint64
}

func (s *countingSystem) Execute(frame *ecs.UpdateFrame) {
	s.executions++
	s.seen = append(s.seen, frame.Count)
	frame.Score++
}

type spawnOnceSystem struct{}

func (spawnOnceSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Entities = frame.Entities.Append(ecs.Entity{
		Id:       frame.Ids.Next(),
		Position: &ecs.Position{},
	})
}

type orderSystem struct {
	name string
	log  *[]string
}

func (s orderSystem) Execute(frame *ecs.UpdateFrame) {
	*s.log = append(*s.log, s.name)
}

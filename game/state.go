package game

import "github.com/plus3/flapecs/ecs"

// State is everything a session carries from one tick to the next.
type State struct {
	Entities ecs.Entities
	Frame    uint64
	Score    int
	Ids      ecs.IdAllocator
}

// NewState returns the start of a session: a single avatar, frame 0, no
// score.
func NewState() State {
	var s State
	s.Entities = ecs.Entities{NewAvatar(s.Ids.Next())}
	return s
}

// Avatar returns the session's avatar.
func (s State) Avatar() (ecs.Entity, bool) {
	return s.Entities.Find(ecs.KindAvatar)
}

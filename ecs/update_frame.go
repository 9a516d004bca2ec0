package ecs

// UpdateFrame is the value threaded through the systems of a single tick.
type UpdateFrame struct {
	// Count is the frame number being simulated, starting at 1.
	Count    uint64
	Entities Entities
	Score    int
	Ids      *IdAllocator
}

// NewUpdateFrame creates a frame for the given tick. A nil ids allocator is
// replaced by a fresh one.
func NewUpdateFrame(count uint64, entities Entities, score int, ids *IdAllocator) *UpdateFrame {
	if ids == nil {
		ids = &IdAllocator{}
	}
	return &UpdateFrame{
		Count:    count,
		Entities: entities,
		Score:    score,
		Ids:      ids,
	}
}

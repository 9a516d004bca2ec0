package ecs

// System represents one stage of the frame pipeline. Implementations read
// frame.Entities and replace it with a new collection; they must not modify
// the entities they were given.
type System interface {
	Execute(frame *UpdateFrame)
}

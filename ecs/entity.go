package ecs

import (
	"math/bits"
	"strings"
)

// EntityId identifies an entity within a collection. Zero is never issued.
type EntityId uint64

// IdAllocator hands out monotonically increasing entity ids. The zero value
// is ready to use and starts at 1. It is a plain value so that a copy of a
// session state carries its own allocator.
type IdAllocator struct {
	last EntityId
}

// Next returns a fresh id.
func (a *IdAllocator) Next() EntityId {
	a.last++
	return a.last
}

// Last returns the most recently issued id, or 0 if none was issued.
func (a IdAllocator) Last() EntityId {
	return a.last
}

// Kind is a bit set of component kinds.
type Kind uint8

const (
	KindPosition Kind = 1 << iota
	KindVelocity
	KindGravity
	KindCollider
	KindAvatar
	KindObstacle
)

var kindNames = []struct {
	kind Kind
	name string
}{
	{KindPosition, "Position"},
	{KindVelocity, "Velocity"},
	{KindGravity, "Gravity"},
	{KindCollider, "Collider"},
	{KindAvatar, "Avatar"},
	{KindObstacle, "Obstacle"},
}

// Names returns the component names in the set, in declaration order.
func (k Kind) Names() []string {
	names := make([]string, 0, len(kindNames))
	for _, kn := range kindNames {
		if k&kn.kind != 0 {
			names = append(names, kn.name)
		}
	}
	return names
}

// AllKinds lists every component kind in declaration order.
func AllKinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i, kn := range kindNames {
		kinds[i] = kn.kind
	}
	return kinds
}

// Len returns the number of component kinds in the set.
func (k Kind) Len() int {
	return bits.OnesCount8(uint8(k))
}

func (k Kind) String() string {
	if k == 0 {
		return "none"
	}
	return strings.Join(k.Names(), "|")
}

// Entity is an identified bundle of optional components. A nil field means
// the component is absent.
//
// Entities are snapshots: systems copy the struct and point the copy at new
// component values instead of writing through the existing pointers, so a
// component value is never modified once it is attached.
type Entity struct {
	Id       EntityId
	Position *Position
	Velocity *Velocity
	Gravity  *Gravity
	Collider *Collider
	Avatar   *Avatar
	Obstacle *Obstacle
}

// Kinds returns the set of components attached to the entity.
func (e Entity) Kinds() Kind {
	var k Kind
	if e.Position != nil {
		k |= KindPosition
	}
	if e.Velocity != nil {
		k |= KindVelocity
	}
	if e.Gravity != nil {
		k |= KindGravity
	}
	if e.Collider != nil {
		k |= KindCollider
	}
	if e.Avatar != nil {
		k |= KindAvatar
	}
	if e.Obstacle != nil {
		k |= KindObstacle
	}
	return k
}

// Has reports whether the entity carries every component in kinds.
func (e Entity) Has(kinds Kind) bool {
	return e.Kinds()&kinds == kinds
}

// WithPosition returns a copy of e with the given position attached.
func (e Entity) WithPosition(p Position) Entity {
	e.Position = &p
	return e
}

// WithVelocity returns a copy of e with the given velocity attached.
func (e Entity) WithVelocity(v Velocity) Entity {
	e.Velocity = &v
	return e
}

// WithObstacle returns a copy of e with the given obstacle marker attached.
func (e Entity) WithObstacle(o Obstacle) Entity {
	e.Obstacle = &o
	return e
}

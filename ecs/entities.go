package ecs

import (
	"errors"
	"fmt"
	"iter"

	"github.com/kamstrup/intmap"
)

// ErrDuplicateId is returned by Validate when two entities share an id.
var ErrDuplicateId = errors.New("ecs: duplicate entity id")

// Entities is an ordered collection of entity snapshots. Insertion order is
// iteration order. Operations never modify the receiver; those that change
// the collection return a new one.
type Entities []Entity

// Map returns a new collection holding fn applied to every entity.
func (es Entities) Map(fn func(Entity) Entity) Entities {
	out := make(Entities, len(es))
	for i, e := range es {
		out[i] = fn(e)
	}
	return out
}

// Filter returns a new collection with the entities for which keep is true.
func (es Entities) Filter(keep func(Entity) bool) Entities {
	out := make(Entities, 0, len(es))
	for _, e := range es {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Append returns a new collection with more appended. The receiver's backing
// array is never shared with the result.
func (es Entities) Append(more ...Entity) Entities {
	out := make(Entities, 0, len(es)+len(more))
	out = append(out, es...)
	return append(out, more...)
}

// Find returns the first entity carrying all of kinds.
func (es Entities) Find(kinds Kind) (Entity, bool) {
	for _, e := range es {
		if e.Has(kinds) {
			return e, true
		}
	}
	return Entity{}, false
}

// Query returns an iterator over the entities carrying all of kinds.
func (es Entities) Query(kinds Kind) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, e := range es {
			if !e.Has(kinds) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Count returns the number of entities carrying all of kinds.
func (es Entities) Count(kinds Kind) int {
	n := 0
	for range es.Query(kinds) {
		n++
	}
	return n
}

// Index maps every entity id to its position in the collection. When ids
// repeat the first position wins.
func (es Entities) Index() *intmap.Map[EntityId, int] {
	index := intmap.New[EntityId, int](len(es))
	for i, e := range es {
		if _, ok := index.Get(e.Id); !ok {
			index.Put(e.Id, i)
		}
	}
	return index
}

// Lookup returns the entity with the given id.
func (es Entities) Lookup(id EntityId) (Entity, bool) {
	for _, e := range es {
		if e.Id == id {
			return e, true
		}
	}
	return Entity{}, false
}

// Validate checks that entity ids are non-zero and unique.
func (es Entities) Validate() error {
	seen := intmap.New[EntityId, int](len(es))
	for i, e := range es {
		if e.Id == 0 {
			return fmt.Errorf("ecs: entity at %d has no id", i)
		}
		if first, ok := seen.Get(e.Id); ok {
			return fmt.Errorf("%w %d at %d and %d", ErrDuplicateId, e.Id, first, i)
		}
		seen.Put(e.Id, i)
	}
	return nil
}

package game

import (
	"math/rand/v2"

	"github.com/plus3/flapecs/ecs"
)

// Spawner appends obstacle pairs at a fixed frame interval. The gap
// position is drawn from rng, so a seeded generator gives a reproducible
// course.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing gap offsets from rng.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// NewSeededSpawner creates a spawner with a PCG generator seeded by seed.
func NewSeededSpawner(seed uint64) *Spawner {
	return NewSpawner(rand.New(rand.NewPCG(seed, seed)))
}

// GapOffset returns the y coordinate of the top of the next gap, in
// [GapMinOffset, GapMinOffset+ObstacleHeight-GapSize).
func (s *Spawner) GapOffset() float64 {
	return s.rng.Float64()*(ObstacleHeight-GapSize) + GapMinOffset
}

// SpawnObstacles appends a top and bottom obstacle at the right edge of the
// screen when frame is a positive multiple of SpawnInterval. On any other
// frame the input collection is returned as is.
func (s *Spawner) SpawnObstacles(entities ecs.Entities, frame uint64, ids *ecs.IdAllocator) ecs.Entities {
	if frame == 0 || frame%SpawnInterval != 0 {
		return entities
	}

	offset := s.GapOffset()
	top := NewObstacle(ids.Next(), ecs.SegmentTop, ScreenWidth, offset-ObstacleHeight)
	bottom := NewObstacle(ids.Next(), ecs.SegmentBottom, ScreenWidth, offset+GapSize)
	return entities.Append(top, bottom)
}

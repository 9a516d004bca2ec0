package ecs_test

import (
	"testing"

	"github.com/plus3/flapecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntities() ecs.Entities {
	return ecs.Entities{
		{Id: 1, Position: &ecs.Position{X: 100, Y: 250}, Velocity: &ecs.Velocity{}, Avatar: &ecs.Avatar{}},
		{Id: 2, Position: &ecs.Position{X: 800, Y: -200}, Obstacle: &ecs.Obstacle{Segment: ecs.SegmentTop}},
		{Id: 3, Position: &ecs.Position{X: 800, Y: 350}, Obstacle: &ecs.Obstacle{Segment: ecs.SegmentBottom}},
		{Id: 4},
	}
}

func TestEntitiesMap(t *testing.T) {
	in := sampleEntities()

	out := in.Map(func(e ecs.Entity) ecs.Entity {
		if e.Position == nil {
			return e
		}
		return e.WithPosition(ecs.Position{X: e.Position.X - 1, Y: e.Position.Y})
	})

	require.Len(t, out, len(in))
	assert.Equal(t, 99.0, out[0].Position.X)
	assert.Equal(t, 100.0, in[0].Position.X)
	assert.False(t, &in[0] == &out[0], "map returns a new backing array")
}

func TestEntitiesFilter(t *testing.T) {
	in := sampleEntities()

	out := in.Filter(func(e ecs.Entity) bool { return e.Obstacle == nil })

	require.Len(t, out, 2)
	assert.Equal(t, ecs.EntityId(1), out[0].Id)
	assert.Equal(t, ecs.EntityId(4), out[1].Id)
	assert.Len(t, in, 4)
}

func TestEntitiesAppend(t *testing.T) {
	in := make(ecs.Entities, 1, 8)
	in[0] = ecs.Entity{Id: 1}

	a := in.Append(ecs.Entity{Id: 2})
	b := in.Append(ecs.Entity{Id: 3})

	assert.Equal(t, ecs.EntityId(2), a[1].Id, "appends must not share spare capacity")
	assert.Equal(t, ecs.EntityId(3), b[1].Id)
	assert.Len(t, in, 1)
}

func TestEntitiesQuery(t *testing.T) {
	entities := sampleEntities()

	var ids []ecs.EntityId
	for e := range entities.Query(ecs.KindObstacle | ecs.KindPosition) {
		ids = append(ids, e.Id)
	}
	assert.Equal(t, []ecs.EntityId{2, 3}, ids)

	for range entities.Query(ecs.KindPosition) {
		break
	}

	assert.Equal(t, 3, entities.Count(ecs.KindPosition))
	assert.Equal(t, 1, entities.Count(ecs.KindAvatar))
	assert.Equal(t, 0, entities.Count(ecs.KindGravity))
	assert.Equal(t, 4, entities.Count(0))
}

func TestEntitiesFind(t *testing.T) {
	entities := sampleEntities()

	avatar, ok := entities.Find(ecs.KindAvatar)
	require.True(t, ok)
	assert.Equal(t, ecs.EntityId(1), avatar.Id)

	_, ok = entities.Find(ecs.KindGravity)
	assert.False(t, ok)

	_, ok = ecs.Entities(nil).Find(ecs.KindAvatar)
	assert.False(t, ok)
}

func TestEntitiesLookup(t *testing.T) {
	entities := sampleEntities()

	e, ok := entities.Lookup(3)
	require.True(t, ok)
	assert.Equal(t, ecs.SegmentBottom, e.Obstacle.Segment)

	_, ok = entities.Lookup(99)
	assert.False(t, ok)
}

func TestEntitiesIndex(t *testing.T) {
	entities := sampleEntities().Append(ecs.Entity{Id: 2})

	index := entities.Index()

	assert.Equal(t, 4, index.Len())
	pos, ok := index.Get(3)
	require.True(t, ok)
	assert.Equal(t, 2, pos)

	pos, ok = index.Get(2)
	require.True(t, ok)
	assert.Equal(t, 1, pos, "first occurrence wins")

	_, ok = index.Get(42)
	assert.False(t, ok)
}

func TestEntitiesValidate(t *testing.T) {
	t.Run("unique ids", func(t *testing.T) {
		assert.NoError(t, sampleEntities().Validate())
		assert.NoError(t, ecs.Entities(nil).Validate())
	})

	t.Run("duplicate ids", func(t *testing.T) {
		err := sampleEntities().Append(ecs.Entity{Id: 3}).Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ecs.ErrDuplicateId)
		assert.Contains(t, err.Error(), "3 at 2 and 4")
	})

	t.Run("missing id", func(t *testing.T) {
		err := ecs.Entities{{Id: 1}, {}}.Validate()
		require.Error(t, err)
		assert.NotErrorIs(t, err, ecs.ErrDuplicateId)
	})
}

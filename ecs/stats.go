package ecs

import "sort"

// Stats summarises an entity collection.
type Stats struct {
	TotalEntityCount   int
	ArchetypeCount     int
	ArchetypeBreakdown []ArchetypeStats
}

// ArchetypeStats counts the entities sharing one exact component set.
type ArchetypeStats struct {
	Kinds       Kind
	EntityCount int
}

// CollectStats groups entities by their component set.
func CollectStats(entities Entities) Stats {
	counts := make(map[Kind]int)
	for _, e := range entities {
		counts[e.Kinds()]++
	}

	stats := Stats{
		TotalEntityCount:   len(entities),
		ArchetypeCount:     len(counts),
		ArchetypeBreakdown: make([]ArchetypeStats, 0, len(counts)),
	}
	for kinds, n := range counts {
		stats.ArchetypeBreakdown = append(stats.ArchetypeBreakdown, ArchetypeStats{
			Kinds:       kinds,
			EntityCount: n,
		})
	}
	sort.Slice(stats.ArchetypeBreakdown, func(i, j int) bool {
		return stats.ArchetypeBreakdown[i].Kinds < stats.ArchetypeBreakdown[j].Kinds
	})
	return stats
}

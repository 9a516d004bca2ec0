package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateWithoutFlapping(t *testing.T) {
	report := simulate(options{Frames: 200, Seed: 1, Check: true})

	assert.Equal(t, int64(200), report.TotalTicks)
	assert.Len(t, report.TickTime.Samples, 200)
	assert.Empty(t, report.Violations)

	// A free fall hits the floor on frame 74, so two sessions end in 200 ticks.
	assert.Equal(t, 3, report.Sessions)
	assert.Equal(t, []int{0, 0}, report.FinalScores)
	assert.Equal(t, uint64(74), report.LongestSession)
	assert.Zero(t, report.BestScore)
	assert.Equal(t, 1, report.MaxEntities)
	assert.Zero(t, report.AvgScore())

	require.Len(t, report.Systems, 6)
	for _, system := range report.Systems {
		assert.Equal(t, int64(200+2), system.ExecutionCount, system.Name)
	}
}

func TestSimulateWithAutopilot(t *testing.T) {
	report := simulate(options{Frames: 3000, Seed: 7, Autopilot: true, Check: true})

	assert.Equal(t, int64(3000), report.TotalTicks)
	assert.Empty(t, report.Violations)
	assert.GreaterOrEqual(t, report.MaxEntities, 3)
	assert.GreaterOrEqual(t, report.Kinds.TotalEntityCount, 1)
	assert.GreaterOrEqual(t, report.Sessions, 1)
}

func TestSimulateRealTime(t *testing.T) {
	report := simulate(options{
		Duration:  50 * time.Millisecond,
		Interval:  time.Millisecond,
		Seed:      1,
		Autopilot: true,
		Check:     true,
	})

	assert.Positive(t, report.TotalTicks)
	assert.Empty(t, report.TickTime.Samples)
	assert.Empty(t, report.Violations)
}

func TestObserverChecksInvariants(t *testing.T) {
	obs := &observer{check: true}

	obs.Render(nil, 0)
	require.Len(t, obs.violations, 1)
	assert.Contains(t, obs.violations[0], "0 avatars")

	for range maxViolations * 2 {
		obs.Render(nil, -1)
	}
	assert.Len(t, obs.violations, maxViolations)
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3, 1, 2}}
	s.Finalize()

	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(3), s.Max)
	assert.Equal(t, time.Duration(2), s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	report := simulate(options{Frames: 200, Seed: 1, Check: true})

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Flapecs Simulation Report")
	assert.Contains(t, out, "**Mode:** 200 ticks, unpaced")
	assert.Contains(t, out, "**Sessions:** 3 (2 ended)")
	assert.Contains(t, out, "| GravitySystem | 202 |")
	assert.Contains(t, out, "| Position|Velocity|Gravity|Collider|Avatar | 1 |")
	assert.NotContains(t, out, "Invariant Violations")
}

package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/flapecs/ecs"
)

type Report struct {
	Options options

	// Results
	TotalTicks     int64
	TotalTime      time.Duration
	TickTime       Stats
	Sessions       int
	FinalScores    []int
	BestScore      int
	CurrentScore   int
	LongestSession uint64
	MaxEntities    int
	Violations     []string
	Systems        []ecs.SystemStats
	Kinds          ecs.Stats
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// AvgScore is the mean final score of the sessions that ended.
func (r *Report) AvgScore() float64 {
	if len(r.FinalScores) == 0 {
		return 0
	}
	total := 0
	for _, score := range r.FinalScores {
		total += score
	}
	return float64(total) / float64(len(r.FinalScores))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Flapecs Simulation Report

## Configuration
- **Seed:** {{.Options.Seed}}
{{- if .Options.Duration}}
- **Mode:** real time for {{.Options.Duration}} at {{.Options.Interval}} per tick
{{- else}}
- **Mode:** {{.Options.Frames}} ticks, unpaced
{{- end}}
- **Autopilot:** {{.Options.Autopilot}}
- **Invariant Checks:** {{.Options.Check}}

## Gameplay
- **Sessions:** {{.Sessions}} ({{len .FinalScores}} ended)
- **Best Score:** {{.BestScore}}
- **Average Final Score:** {{printf "%.2f" .AvgScore}}
- **Current Score:** {{.CurrentScore}}
- **Longest Session:** {{.LongestSession}} frames
- **Peak Entities:** {{.MaxEntities}}

## Performance Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Time:** {{.TotalTime}}
{{- if .TickTime.Samples}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}
{{- end}}

| System | Runs | Avg | Min | Max |
|---|---|---|---|---|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Final Entities
| Components | Count |
|---|---|
{{- range .Kinds.ArchetypeBreakdown}}
| {{.Kinds}} | {{.EntityCount}} |
{{- end}}

## Memory Usage (MiB)
- Heap Alloc:  {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end)
- Total Alloc: {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc | mb}}
- Num GC:      {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .Violations}}
## Invariant Violations
{{- range .Violations}}
- {{.}}
{{- end}}
{{end}}`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}

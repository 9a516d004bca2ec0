package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/plus3/flapecs/config"
	"github.com/plus3/flapecs/ecs"
	"github.com/plus3/flapecs/game"
)

// maxViolations caps how many invariant failures are kept for the report.
const maxViolations = 20

type options struct {
	Frames    int
	Duration  time.Duration
	Interval  time.Duration
	Seed      uint64
	Autopilot bool
	Check     bool
}

// observer is the sink of a headless run. It checks invariants, tracks
// entity counts and, when an autopilot is set, decides the next flap.
type observer struct {
	game      *game.Game
	autopilot *game.Autopilot
	check     bool

	ticks       int64
	maxEntities int
	violations  []string
}

func (o *observer) Render(entities ecs.Entities, score int) {
	o.ticks++
	o.maxEntities = max(o.maxEntities, len(entities))

	if o.check {
		if err := entities.Validate(); err != nil {
			o.violate("tick %d: %v", o.ticks, err)
		}
		if n := entities.Count(ecs.KindAvatar); n != 1 {
			o.violate("tick %d: %d avatars", o.ticks, n)
		}
		if score < 0 {
			o.violate("tick %d: negative score %d", o.ticks, score)
		}
	}

	if o.autopilot != nil && o.autopilot.ShouldFlap(entities) {
		o.game.Flap()
	}
}

func (o *observer) violate(format string, args ...any) {
	if len(o.violations) < maxViolations {
		o.violations = append(o.violations, fmt.Sprintf(format, args...))
	}
}

// simulate plays a game headlessly. With a duration it paces ticks with
// Game.Run, otherwise it ticks opts.Frames times as fast as possible.
func simulate(opts options) *Report {
	g := game.New(game.NewSeededSpawner(opts.Seed))
	obs := &observer{game: g, check: opts.Check}
	if opts.Autopilot {
		pilot := game.DefaultAutopilot
		obs.autopilot = &pilot
	}

	report := &Report{
		Options: opts,
		TickTime: Stats{
			Samples: make([]time.Duration, 0, opts.Frames),
		},
	}
	onGameOver := func(outcome game.Outcome) {
		report.FinalScores = append(report.FinalScores, outcome.FinalScore)
		report.LongestSession = max(report.LongestSession, outcome.FinalFrame)
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

	if opts.Duration > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), opts.Duration)
		defer cancel()
		g.Run(ctx, opts.Interval, obs, onGameOver)
	} else {
		for range opts.Frames {
			tickStart := time.Now()
			outcome := g.Tick()
			report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))

			if outcome.Collided {
				onGameOver(outcome)
			}
			state := g.State()
			obs.Render(state.Entities, state.Score)
		}
	}

	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)

	state := g.State()
	report.TotalTicks = obs.ticks
	report.Sessions = g.Sessions()
	report.BestScore = max(g.BestScore(), state.Score)
	report.CurrentScore = state.Score
	report.MaxEntities = obs.maxEntities
	report.Violations = obs.violations
	report.Systems = g.Stats().Systems
	report.Kinds = ecs.CollectStats(state.Entities)
	report.TickTime.Finalize()
	return report
}

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "flapecs.yaml", "Path to the YAML settings file.")
	frames := flag.Int("frames", 10000, "Number of ticks to simulate as fast as possible.")
	duration := flag.Duration("duration", 0, "Run in real time for this long instead of a fixed number of frames.")
	seed := flag.Uint64("seed", 0, "Obstacle RNG seed. 0 uses the config, then the clock.")
	autopilot := flag.Bool("autopilot", true, "Steer the avatar toward each gap.")
	check := flag.Bool("check", true, "Validate entity invariants after every tick.")
	profileMode := flag.String("profile", "", "Write a cpu or mem profile to the working directory.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Printf("Unknown profile mode %q (want cpu or mem)", *profileMode)
		return 2
	}

	opts := options{
		Frames:    *frames,
		Duration:  *duration,
		Interval:  cfg.TickInterval(),
		Seed:      cfg.SeedOrNow(),
		Autopilot: *autopilot,
		Check:     *check,
	}

	log.Printf("Simulating with seed %d...", opts.Seed)
	report := simulate(opts)
	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Printf("Failed to generate report: %v", err)
		return 1
	}
	fmt.Println("--- End of Report ---")

	if len(report.Violations) > 0 {
		log.Printf("%d invariant violations", len(report.Violations))
		return 1
	}
	return 0
}

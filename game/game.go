package game

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/flapecs/ecs"
)

// Sink receives the state of every rendered tick.
type Sink interface {
	Render(entities ecs.Entities, score int)
}

// Outcome describes what happened during a tick.
type Outcome struct {
	// Collided is set when the avatar hit something and the session was reset.
	Collided   bool
	SessionId  uuid.UUID
	FinalScore int
	FinalFrame uint64
}

// Game owns the running session and the systems that advance it.
type Game struct {
	scheduler *ecs.Scheduler
	input     Input

	state     State
	sessionId uuid.UUID
	sessions  int
	bestScore int
}

// New creates a game whose obstacles come from spawner.
func New(spawner *Spawner) *Game {
	return &Game{
		scheduler: NewScheduler(spawner),
		state:     NewState(),
		sessionId: uuid.New(),
		sessions:  1,
	}
}

// Step advances state by one frame. When the avatar collides the returned
// state is a fresh session and the outcome carries the final score of the
// one that ended. state itself is not modified.
func (g *Game) Step(state State, flap bool) (State, Outcome) {
	ids := state.Ids
	frame := ecs.NewUpdateFrame(state.Frame+1, state.Entities, state.Score, &ids)
	if flap {
		frame.Entities = ApplyFlap(frame.Entities)
	}

	g.scheduler.Once(frame)

	next := State{
		Entities: frame.Entities,
		Frame:    frame.Count,
		Score:    frame.Score,
		Ids:      ids,
	}
	if DetectCollision(next.Entities) {
		return NewState(), Outcome{
			Collided:   true,
			FinalScore: next.Score,
			FinalFrame: next.Frame,
		}
	}
	return next, Outcome{}
}

// Tick consumes any buffered flap and advances the current session. After a
// collision the fresh session is stepped immediately so no frame is lost.
func (g *Game) Tick() Outcome {
	next, outcome := g.Step(g.state, g.input.Consume())
	if outcome.Collided {
		outcome.SessionId = g.sessionId
		g.bestScore = max(g.bestScore, outcome.FinalScore)
		g.sessionId = uuid.New()
		g.sessions++

		next, _ = g.Step(next, false)
	}
	g.state = next
	return outcome
}

// Flap queues a flap for the next tick. Safe for concurrent use.
func (g *Game) Flap() {
	g.input.Flap()
}

// FlapPending reports whether a flap is waiting for the next tick.
func (g *Game) FlapPending() bool {
	return g.input.Pending()
}

// Reset abandons the current session without recording its score.
func (g *Game) Reset() {
	g.state = NewState()
	g.input.Consume()
	g.sessionId = uuid.New()
	g.sessions++
}

// State returns the current session state.
func (g *Game) State() State {
	return g.state
}

// SessionId identifies the current session.
func (g *Game) SessionId() uuid.UUID {
	return g.sessionId
}

// Sessions returns how many sessions have been started, including the
// current one.
func (g *Game) Sessions() int {
	return g.sessions
}

// BestScore returns the highest final score of the sessions that ended.
func (g *Game) BestScore() int {
	return g.bestScore
}

// Stats returns per-system timings.
func (g *Game) Stats() *ecs.SchedulerStats {
	return g.scheduler.GetStats()
}

// Run ticks the game every interval and renders each tick to sink until
// ctx is cancelled. onGameOver, if set, is called after every collision.
func (g *Game) Run(ctx context.Context, interval time.Duration, sink Sink, onGameOver func(Outcome)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			outcome := g.Tick()
			if outcome.Collided && onGameOver != nil {
				onGameOver(outcome)
			}
			sink.Render(g.state.Entities, g.state.Score)
		}
	}
}

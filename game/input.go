package game

import "sync/atomic"

// Input buffers flap requests between ticks. Any number of flaps arriving
// before the next tick collapse into one. It is safe to call Flap from
// another goroutine while a tick is running.
type Input struct {
	pending atomic.Bool
}

// Flap queues a flap for the next tick.
func (in *Input) Flap() {
	in.pending.Store(true)
}

// Pending reports whether a flap is waiting.
func (in *Input) Pending() bool {
	return in.pending.Load()
}

// Consume returns whether a flap was queued and clears it.
func (in *Input) Consume() bool {
	return in.pending.Swap(false)
}

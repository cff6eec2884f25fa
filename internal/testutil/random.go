package testutil

import "testing"

// ScriptedRandom returns queued draws in order and fails the test when a
// queue runs dry.
type ScriptedRandom struct {
	tb     testing.TB
	floats []float64
	ints   []int
}

// NewScriptedRandom queues Float64 draws.
func NewScriptedRandom(tb testing.TB, floats ...float64) *ScriptedRandom {
	return &ScriptedRandom{tb: tb, floats: floats}
}

// WithInts queues IntN draws. Each value is reduced modulo n when drawn.
func (r *ScriptedRandom) WithInts(ints ...int) *ScriptedRandom {
	r.ints = append(r.ints, ints...)
	return r
}

// Float64 pops the next queued float.
func (r *ScriptedRandom) Float64() float64 {
	r.tb.Helper()
	if len(r.floats) == 0 {
		r.tb.Fatalf("ScriptedRandom: no Float64 draws left")
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// IntN pops the next queued int.
func (r *ScriptedRandom) IntN(n int) int {
	r.tb.Helper()
	if len(r.ints) == 0 {
		r.tb.Fatalf("ScriptedRandom: no IntN draws left")
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

// Remaining returns how many Float64 draws were not consumed.
func (r *ScriptedRandom) Remaining() int {
	return len(r.floats)
}

// FixedRandom always returns the same draws.
type FixedRandom struct {
	F float64
	I int
}

func (r FixedRandom) Float64() float64 { return r.F }
func (r FixedRandom) IntN(n int) int   { return r.I % n }

package core

import "math/rand"

// RNG is the only source of randomness the simulation reads from.
// Substituting it makes runs reproducible.
type RNG interface {
	Float64() float64
}

// NewRNG returns a seeded math/rand source.
func NewRNG(seed int64) RNG {
	return rand.New(rand.NewSource(seed))
}

// SeqRNG replays a fixed sequence of draws, wrapping around when exhausted.
type SeqRNG struct {
	Values []float64
	pos    int
}

func (r *SeqRNG) Float64() float64 {
	if len(r.Values) == 0 {
		return 0
	}
	v := r.Values[r.pos%len(r.Values)]
	r.pos++
	return v
}

// Draws returns how many values have been consumed.
func (r *SeqRNG) Draws() int {
	return r.pos
}

// Package order provides word ordering strategies for a practice pass.
package order

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Mode names accepted by Parse.
const (
	ModeShuffle  = "shuffle"
	ModeSlice    = "slice"
	ModeIdentity = "identity"
)

// ErrUnknownMode is returned by Parse for an unsupported mode name.
var ErrUnknownMode = errors.New("unknown order mode")

// Orderer produces the order in which a pass presents its words.
// Implementations return a new slice and leave the input untouched.
type Orderer interface {
	Order(words []string) []string
}

// Shuffle produces a full random permutation.
type Shuffle struct {
	rnd *rand.Rand
}

// NewShuffle returns a Shuffle seeded with seed, or with the current time when seed is 0.
func NewShuffle(seed int64) *Shuffle {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Shuffle{rnd: rand.New(rand.NewSource(seed))}
}

// Order implements Orderer.
func (s *Shuffle) Order(words []string) []string {
	out := clone(words)
	s.rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Slice keeps the first Size words in their original order.
type Slice struct {
	Size int
}

// Order implements Orderer.
func (s Slice) Order(words []string) []string {
	if s.Size <= 0 || s.Size >= len(words) {
		return clone(words)
	}
	return clone(words[:s.Size])
}

// Identity keeps the original order.
type Identity struct{}

// Order implements Orderer.
func (Identity) Order(words []string) []string {
	return clone(words)
}

// Parse maps a mode name to an Orderer.
func Parse(mode string, size int, seed int64) (Orderer, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeShuffle:
		return NewShuffle(seed), nil
	case ModeSlice:
		if size < 0 {
			return nil, fmt.Errorf("slice size must be >= 0, got %d", size)
		}
		return Slice{Size: size}, nil
	case ModeIdentity:
		return Identity{}, nil
	default:
		return nil, fmt.Errorf("%w %q (want %s, %s or %s)", ErrUnknownMode, mode, ModeShuffle, ModeSlice, ModeIdentity)
	}
}

func clone(words []string) []string {
	out := make([]string, len(words))
	copy(out, words)
	return out
}

// Package generator selects and orders typing content.
package generator

import (
	"math/rand"
	"time"
)

// Generator wraps a random source so selection order can be reproduced.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Pick returns one entry chosen uniformly at random. items must not be empty.
func (g *Generator) Pick(items []string) string {
	return items[g.rnd.Intn(len(items))]
}

// Shuffle returns a random permutation of items. The input is not modified.
func (g *Generator) Shuffle(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	g.rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

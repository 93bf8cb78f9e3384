package skyline

import (
	"math/rand"
	"time"
)

// Generator is an endless skyline: it stitches the columns of
// consecutive random buildings into one continuous stream & suppresses
// height transitions that would read as a single-column spike.
//
// The stream is pull-based & single threaded; no work happens until
// Next is called and abandoning the generator needs no cleanup.
type Generator struct {
	cfg       *GeneratorConfig
	rng       *rand.Rand
	buildings *buildingGenerator

	// columns of the building currently being consumed
	queue []Column

	filter *smoother

	// Seed actually used, for reproducing a skyline
	Seed int64
}

// New creates a Generator from the given config.
// All configuration problems surface here; a Generator that exists
// never fails.
func New(cfg *GeneratorConfig) (*Generator, error) {
	err := cfg.validate()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := &Generator{
		cfg:       cfg,
		rng:       rng,
		buildings: newBuildingGenerator(rng, cfg),
		Seed:      seed,
	}
	g.filter = newSmoother(g.pull)

	return g, nil
}

// Next returns the next column of the skyline.
// A column is emitted only if it's at least as tall as both of its raw
// neighbours; dips are consumed from the underlying buildings but
// never surface, so some building columns are silently elided.
func (g *Generator) Next() Column {
	return g.filter.Next()
}

// pull returns the next raw building column, crossing into a fresh
// building whenever the current one is spent.
func (g *Generator) pull() Column {
	for len(g.queue) == 0 {
		g.queue = g.buildings.Next().Columns()
	}
	c := g.queue[0]
	g.queue = g.queue[1:]
	return c
}

// smoother slides a 3 column window over a raw column source & emits
// only columns at least as tall as both neighbours, eliminating single
// column dips. The window is seeded with one empty column standing for
// "before the first building", so the very first column faces a
// virtual predecessor of height 0.
type smoother struct {
	src func() Column

	prev Column
	cur  Column
	next Column
}

// newSmoother preps the window with the virtual predecessor & the
// first two raw columns.
func newSmoother(src func() Column) *smoother {
	s := &smoother{src: src}
	s.prev = Column{}
	s.cur = src()
	s.next = src()
	return s
}

// Next returns the next surviving column.
func (s *smoother) Next() Column {
	for {
		emit := len(s.cur) >= len(s.prev) && len(s.cur) >= len(s.next)
		out := s.cur

		// the window always slides, dropped columns still count as
		// neighbours for the decisions either side of them
		s.prev, s.cur, s.next = s.cur, s.next, s.src()

		if emit {
			return out
		}
	}
}

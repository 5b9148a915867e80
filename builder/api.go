// SPDX-License-Identifier: MIT
// Package: redsocial/builder
//
// api.go: BuildGraph orchestrator and the shared edge helpers.
//
// Determinism: same options, seed and constructor order ⇒ identical graphs.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/redsocial/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first and return sentinel
// errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves bopts and applies every
// constructor in order. The first constructor error is returned wrapped.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "BuildGraph: nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, errors.Wrap(err, "BuildGraph")
		}
	}

	return g, nil
}

// vertex returns the i-th vertex under cfg's ID and label schemes.
func (c builderConfig) vertex(i int) core.Vertex {
	return core.Vertex{ID: c.firstID + int64(i), Label: c.labelFn(i)}
}

// addVertices registers vertices 0..n-1 in index order.
func (c builderConfig) addVertices(g *core.Graph, n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(c.vertex(i))
	}
}

// connect adds i→j, plus j→i with the same weight when symmetric.
func (c builderConfig) connect(g *core.Graph, i, j int) {
	w := c.weightFn(c.rng)
	g.AddEdge(c.vertex(i), c.vertex(j), w)
	if c.symmetric {
		g.AddEdge(c.vertex(j), c.vertex(i), w)
	}
}

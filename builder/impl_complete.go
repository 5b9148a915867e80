// SPDX-License-Identifier: MIT
// Package: redsocial/builder
//
// impl_complete.go: Complete(n): every ordered pair i≠j, or every unordered
// pair in both directions when symmetric.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/redsocial/core"
)

const (
	methodComplete      = "Complete"
	minCompleteVertices = 1
)

// Complete returns a Constructor for K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteVertices {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodComplete, n, minCompleteVertices)
		}
		cfg.addVertices(g, n)
		eachPair(n, cfg.symmetric, func(i, j int) { cfg.connect(g, i, j) })

		return nil
	}
}

// eachPair visits i<j pairs when symmetric, otherwise every ordered pair i≠j.
// Order: i asc, then j asc.
func eachPair(n int, symmetric bool, fn func(i, j int)) {
	for i := 0; i < n; i++ {
		start := 0
		if symmetric {
			start = i + 1
		}
		for j := start; j < n; j++ {
			if i != j {
				fn(i, j)
			}
		}
	}
}

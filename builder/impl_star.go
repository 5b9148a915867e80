// SPDX-License-Identifier: MIT
// Package: redsocial/builder
//
// impl_star.go: Star(n): hub 0 → each leaf 1..n-1.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/redsocial/core"
)

const (
	methodStar      = "Star"
	minStarVertices = 2
)

// Star returns a Constructor for one hub connected to n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarVertices {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodStar, n, minStarVertices)
		}
		cfg.addVertices(g, n)
		for i := 1; i < n; i++ {
			cfg.connect(g, 0, i)
		}

		return nil
	}
}

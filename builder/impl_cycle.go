// SPDX-License-Identifier: MIT
// Package: redsocial/builder
//
// impl_cycle.go: Cycle(n): 0→1→…→n-1→0.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/redsocial/core"
)

const (
	methodCycle      = "Cycle"
	minCycleVertices = 3
)

// Cycle returns a Constructor for a ring of n vertices.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleVertices {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodCycle, n, minCycleVertices)
		}
		cfg.addVertices(g, n)
		for i := 0; i < n; i++ {
			cfg.connect(g, i, (i+1)%n)
		}

		return nil
	}
}

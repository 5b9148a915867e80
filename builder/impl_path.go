// SPDX-License-Identifier: MIT
// Package: redsocial/builder
//
// impl_path.go: Path(n): 0→1→…→n-1.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/redsocial/core"
)

const (
	methodPath      = "Path"
	minPathVertices = 2
)

// Path returns a Constructor for a simple chain of n vertices.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathVertices {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodPath, n, minPathVertices)
		}
		cfg.addVertices(g, n)
		for i := 0; i+1 < n; i++ {
			cfg.connect(g, i, i+1)
		}

		return nil
	}
}

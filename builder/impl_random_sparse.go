// SPDX-License-Identifier: MIT
// Package: redsocial/builder
//
// impl_random_sparse.go: RandomSparse(n, p): Erdős–Rényi-like sampler.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Pairs are tried in eachPair order; one Bernoulli draw per pair,
//     then one weight draw per kept pair.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/redsocial/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that keeps each candidate pair
// independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodRandomSparse, n, minRandomSparseVertices)
		}
		if p < 0 || p > 1 {
			return errors.Wrapf(ErrInvalidProbability, "%s: p=%.6f not in [0,1]", methodRandomSparse, p)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return errors.Wrapf(ErrNeedRandSource, "%s", methodRandomSparse)
		}

		cfg.addVertices(g, n)
		eachPair(n, cfg.symmetric, func(i, j int) {
			switch {
			case p == 0:
				return
			case p == 1:
			case cfg.rng.Float64() >= p:
				return
			}
			cfg.connect(g, i, j)
		})

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: redsocial/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • firstID   = 0            (vertex i gets ID firstID+i)
//   • labelFn   = "u<i>"
//   • rng       = nil          (pure unless seeded)
//   • weightFn  = constant 1
//   • symmetric = false        (one directed edge per sampled pair)

package builder

import (
	"math/rand"
	"strconv"
)

const defaultConstWeight = int64(1)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	firstID   int64
	labelFn   func(int) string
	rng       *rand.Rand
	weightFn  WeightFn
	symmetric bool
}

func defaultLabel(i int) string { return "u" + strconv.Itoa(i) }

// newBuilderConfig applies options in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		labelFn:  defaultLabel,
		weightFn: ConstantWeightFn(defaultConstWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

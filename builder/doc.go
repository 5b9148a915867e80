// SPDX-License-Identifier: MIT

// Package builder produces deterministic social-graph fixtures for tests,
// benchmarks and the generate command.
//
// One orchestrator, BuildGraph(bopts, cons...), creates the graph, resolves
// options and runs constructors in order:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithSymmetric()},
//	    builder.RandomSparse(50, 0.1),
//	)
//
// Constructors: Path, Cycle, Complete, Star, RandomSparse.
//
// Options: WithFirstID, WithLabelScheme, WithSeed, WithRand, WithWeightFn,
// WithSymmetric. Option constructors panic on nil arguments; constructors
// return ErrTooFewVertices, ErrInvalidProbability or ErrNeedRandSource.
package builder

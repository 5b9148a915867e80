// Package filter compiles CEL predicates over publications, e.g.
//
//	comments >= 3 && size <= 40
//	benefit > 2 * size
//
// Available variables (all int): id, likes, comments, size, benefit.
package filter

import (
	"github.com/cockroachdb/errors"
	"github.com/google/cel-go/cel"

	"github.com/katalvlaran/redsocial/dataset"
)

var (
	// ErrCompile wraps CEL parse and type-check failures.
	ErrCompile = errors.New("filter: compile")

	// ErrNotBoolean is returned when an expression does not yield a bool.
	ErrNotBoolean = errors.New("filter: expression must evaluate to bool")
)

// Filter is a compiled publication predicate. The zero value and a Filter
// compiled from an empty expression match everything.
type Filter struct {
	expr string
	prg  cel.Program
}

func newEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("id", cel.IntType),
		cel.Variable("likes", cel.IntType),
		cel.Variable("comments", cel.IntType),
		cel.Variable("size", cel.IntType),
		cel.Variable("benefit", cel.IntType),
	)
}

// Compile parses and type-checks expr.
func Compile(expr string) (*Filter, error) {
	if expr == "" {
		return &Filter{}, nil
	}
	env, err := newEnv()
	if err != nil {
		return nil, errors.Wrap(err, "filter: env")
	}
	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, errors.Mark(errors.Wrapf(iss.Err(), "filter: %q", expr), ErrCompile)
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, errors.Wrapf(ErrNotBoolean, "%q has type %s", expr, ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "filter: %q", expr), ErrCompile)
	}

	return &Filter{expr: expr, prg: prg}, nil
}

// String returns the source expression.
func (f *Filter) String() string { return f.expr }

// Match evaluates the predicate for p.
func (f *Filter) Match(p dataset.Publication) (bool, error) {
	if f == nil || f.prg == nil {
		return true, nil
	}
	out, _, err := f.prg.Eval(map[string]any{
		"id":       p.ID,
		"likes":    p.Likes,
		"comments": p.Comments,
		"size":     int64(p.Size),
		"benefit":  p.Benefit(),
	})
	if err != nil {
		return false, errors.Wrapf(err, "filter: eval %q on publication %d", f.expr, p.ID)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, errors.Wrapf(ErrNotBoolean, "%q", f.expr)
	}

	return b, nil
}

// Apply keeps the publications that match, preserving order.
func (f *Filter) Apply(pubs []dataset.Publication) ([]dataset.Publication, error) {
	out := make([]dataset.Publication, 0, len(pubs))
	for _, p := range pubs {
		ok, err := f.Match(p)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, p)
		}
	}

	return out, nil
}

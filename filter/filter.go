// Package filter compiles property filter expressions.
//
// An expression is evaluated for every property the builder discovers and
// must yield a boolean. The environment is Env, e.g.
//
//	Exported && Level == 0
//	not (Name startsWith "X") || Kind == "func"
package filter

import (
	"fmt"
	"reflect"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/yamprint/debug"
	"github.com/signadot/yamprint/gomap"
)

// Env is the evaluation environment of a filter expression.
type Env struct {
	Name     string `expr:"Name"`
	Owner    string `expr:"Owner"`
	Level    int    `expr:"Level"`
	Depth    int    `expr:"Depth"`
	Type     string `expr:"Type"`
	Kind     string `expr:"Kind"`
	Exported bool   `expr:"Exported"`
	Accessor bool   `expr:"Accessor"`
}

func envOf(p gomap.PropertyInfo) Env {
	env := Env{
		Name:     p.Name,
		Level:    p.Level,
		Depth:    p.Depth,
		Exported: p.Exported,
		Accessor: p.Accessor,
	}
	if p.Owner != nil {
		env.Owner = p.Owner.String()
	}
	if p.Type != nil {
		env.Type = p.Type.String()
		env.Kind = p.Type.Kind().String()
	}
	return env
}

// Compile returns a filter admitting the properties for which src is true.
// A property whose evaluation fails is excluded.
func Compile(src string) (gomap.PropertyFilter, error) {
	program, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", src, err)
	}
	return func(p gomap.PropertyInfo) bool {
		res, err := vm.Run(program, envOf(p))
		if err != nil {
			debug.Logger().Debug("filter failed", "filter", src, "property", p.Name, "err", err)
			return false
		}
		ok, _ := res.(bool)
		return ok
	}, nil
}

// And admits a property when every filter does. Nil filters are skipped.
func And(fs ...gomap.PropertyFilter) gomap.PropertyFilter {
	return func(p gomap.PropertyInfo) bool {
		for _, f := range fs {
			if f != nil && !f(p) {
				return false
			}
		}
		return true
	}
}

// Kinds is a convenience filter admitting properties whose static kind is
// one of kinds.
func Kinds(kinds ...reflect.Kind) gomap.PropertyFilter {
	return func(p gomap.PropertyInfo) bool {
		if p.Type == nil {
			return false
		}
		for _, k := range kinds {
			if p.Type.Kind() == k {
				return true
			}
		}
		return false
	}
}

// Package filter implements the partial-application protocol template
// filters are built on, plus a small library of ready-made filters.
//
// A filter is a unary transform from value to value. Multi-argument call
// syntax is realized purely through currying: applying one argument yields a
// new immutable filter closing over the longer argument list, and the final
// argument goes through Transform. Because every intermediate filter is a
// fresh value, filters are safe to reuse across concurrent renders.
package filter

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-stache/pkg/value"
)

// Func adapts a plain unary transform into a value.Filter. It expects its
// single argument through Transform and refuses curried application.
type Func func(v value.Value) (value.Value, error)

// FilterByApplyingArgument reports that no further arguments are expected.
func (f Func) FilterByApplyingArgument(value.Value) (value.Filter, bool) {
	return nil, false
}

// Transform applies the transform.
func (f Func) Transform(v value.Value) (value.Value, error) {
	return f(v)
}

type variadic struct {
	fn   func(args []value.Value) (value.Value, error)
	args []value.Value
}

// NewVariadic returns a filter that accumulates arguments through currying
// and hands the full ordered argument list to fn once the final argument
// arrives via Transform.
func NewVariadic(fn func(args []value.Value) (value.Value, error)) value.Filter {
	return variadic{fn: fn}
}

func (f variadic) FilterByApplyingArgument(arg value.Value) (value.Filter, bool) {
	return variadic{fn: f.fn, args: appendArg(f.args, arg)}, true
}

func (f variadic) Transform(v value.Value) (value.Value, error) {
	return f.fn(appendArg(f.args, v))
}

func appendArg(args []value.Value, arg value.Value) []value.Value {
	out := make([]value.Value, len(args), len(args)+1)
	copy(out, args)
	return append(out, arg)
}

// Apply evaluates a filter call carrying one or more arguments: every
// argument but the last is applied through FilterByApplyingArgument, the
// last goes through Transform. A filter that refuses an intermediate
// argument fails the whole call.
func Apply(f value.Filter, args ...value.Value) (value.Value, error) {
	if f == nil {
		return value.Empty(), errors.New("filter: filter is required")
	}
	if len(args) == 0 {
		return value.Empty(), errors.New("filter: at least one argument is required")
	}
	for i, arg := range args[:len(args)-1] {
		next, ok := f.FilterByApplyingArgument(arg)
		if !ok {
			return value.Empty(), fmt.Errorf("filter: argument %d exceeds the filter's arity", i+1)
		}
		f = next
	}
	return f.Transform(args[len(args)-1])
}

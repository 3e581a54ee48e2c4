// Package scope provides the immutable context stack the rendering engine
// resolves identifiers against. Each frame holds either a data scope or a
// tag observer; pushing returns a new stack and never mutates the old one,
// so stacks can be shared freely across concurrent renders.
package scope

import (
	"github.com/goliatone/go-stache/pkg/value"
)

// Stack is a linked stack of scopes and observers. The nil *Stack is a valid
// empty stack. Stack implements value.Context.
type Stack struct {
	parent   *Stack
	value    value.Value
	hasValue bool
	observer value.TagObserver
}

// New returns a stack with v as its only data scope.
func New(v value.Value) *Stack {
	return &Stack{value: v, hasValue: true}
}

// WithValue returns a stack extended by one data scope.
func (s *Stack) WithValue(v value.Value) value.Context {
	return &Stack{parent: s, value: v, hasValue: true}
}

// WithObserver returns a stack extended by one tag observer. Observer frames
// take no part in key resolution.
func (s *Stack) WithObserver(o value.TagObserver) value.Context {
	return &Stack{parent: s, observer: o}
}

// Resolve walks the stack innermost-out and returns the first non-empty
// result of extracting key from a data scope. Resolution never fails; an
// exhausted stack yields Empty.
func (s *Stack) Resolve(key string) value.Value {
	for cur := s; cur != nil; cur = cur.parent {
		if !cur.hasValue {
			continue
		}
		if v := cur.value.Key(key); v.Kind() != value.KindEmpty {
			return v
		}
	}
	return value.Empty()
}

// TopValue returns the innermost data scope, the subject of the implicit
// iterator.
func (s *Stack) TopValue() value.Value {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.hasValue {
			return cur.value
		}
	}
	return value.Empty()
}

// WillRender runs v through every observer on the stack, innermost first,
// each observer seeing the previous one's substitution.
func (s *Stack) WillRender(tag value.Tag, v value.Value) value.Value {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.observer != nil {
			v = cur.observer.WillRenderValue(tag, v)
		}
	}
	return v
}

// DidRender notifies every observer of the produced rendering (nil on
// failure), outermost first — the reverse of the WillRender order.
func (s *Stack) DidRender(tag value.Tag, v value.Value, rendering *value.Rendering, err error) {
	var observers []value.TagObserver
	for cur := s; cur != nil; cur = cur.parent {
		if cur.observer != nil {
			observers = append(observers, cur.observer)
		}
	}
	for i := len(observers) - 1; i >= 0; i-- {
		observers[i].DidRenderValue(tag, v, rendering, err)
	}
}

package value

import (
	"github.com/goliatone/go-stache/internal/hostval"
)

// Kind identifies the variant a Value holds. The union is closed: every
// renderable datum is exactly one of these.
type Kind int

const (
	// KindEmpty represents absence: a missed lookup or a host nil.
	KindEmpty Kind = iota
	// KindScalar holds a single host-level datum convertible to a string.
	KindScalar
	// KindMapping holds a string-keyed map of values.
	KindMapping
	// KindSequence holds an ordered list of values.
	KindSequence
	// KindSet holds distinct opaque elements, boxed lazily on iteration.
	KindSet
	// KindCluster wraps a host object with declared rendering capabilities.
	KindCluster
)

// String returns the lower-case variant name.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindSet:
		return "set"
	case KindCluster:
		return "cluster"
	default:
		return "unknown"
	}
}

// Value is the closed tagged union every template datum flows through.
// The zero Value is Empty. Values never mutate after construction.
type Value struct {
	kind       Kind
	scalar     any
	scalarKind hostval.ScalarKind
	mapping    map[string]Value
	sequence   []Value
	set        []any
	cluster    *Cluster
}

// Kind reports the variant this value holds.
func (v Value) Kind() Kind { return v.kind }

// Empty returns the value representing absence.
func Empty() Value { return Value{} }

// BoxBool boxes a native boolean. The boolean kind is preserved; it never
// collapses into 0/1 integer semantics.
func BoxBool(b bool) Value {
	return Value{kind: KindScalar, scalar: b, scalarKind: hostval.KindBool}
}

// BoxInt boxes a native integer.
func BoxInt(i int64) Value {
	return Value{kind: KindScalar, scalar: i, scalarKind: hostval.KindInt}
}

// BoxFloat boxes a native floating-point number.
func BoxFloat(f float64) Value {
	return Value{kind: KindScalar, scalar: f, scalarKind: hostval.KindFloat}
}

// BoxString boxes a raw string.
func BoxString(s string) Value {
	return Value{kind: KindScalar, scalar: s, scalarKind: hostval.KindString}
}

// BoxMap boxes a string-keyed map. Entries are copied so later mutation of
// the argument cannot reach the value.
func BoxMap(m map[string]Value) Value {
	mapping := make(map[string]Value, len(m))
	for k, mv := range m {
		mapping[k] = mv
	}
	return Value{kind: KindMapping, mapping: mapping}
}

// BoxSlice boxes an ordered collection, preserving order.
func BoxSlice(elems []Value) Value {
	sequence := make([]Value, len(elems))
	copy(sequence, elems)
	return Value{kind: KindSequence, sequence: sequence}
}

// BoxSet boxes an unordered collection of distinct opaque elements.
// Duplicates (by host equality) are dropped eagerly; elements stay unboxed
// until iteration needs them.
func BoxSet(elems ...any) Value {
	return Value{kind: KindSet, set: hostval.Dedupe(elems)}
}

// BoxObject probes obj for the five rendering capabilities and wraps it in a
// Cluster. Objects implementing none of them still box successfully; they
// simply carry no capability beyond default truthiness.
func BoxObject(obj any) Value {
	return Value{kind: KindCluster, cluster: NewCluster(obj)}
}

// Box canonicalizes arbitrary host data into a Value:
//
//   - nil boxes to Empty
//   - booleans, integers of any width, floats, and strings box to scalars,
//     classified by their native Go type
//   - map[string]Value and map[string]any box to mappings
//   - []Value and []any box to sequences, preserving order
//   - objects with at least one rendering capability box to clusters
//   - everything else boxes to an opaque scalar
//
// Values pass through unchanged.
func Box(data any) Value {
	switch d := data.(type) {
	case nil:
		return Empty()
	case Value:
		return d
	case map[string]Value:
		return BoxMap(d)
	case map[string]any:
		mapping := make(map[string]Value, len(d))
		for k, mv := range d {
			mapping[k] = Box(mv)
		}
		return Value{kind: KindMapping, mapping: mapping}
	case []Value:
		return BoxSlice(d)
	case []any:
		sequence := make([]Value, 0, len(d))
		for _, el := range d {
			sequence = append(sequence, Box(el))
		}
		return Value{kind: KindSequence, sequence: sequence}
	}

	if hasCapability(data) {
		return BoxObject(data)
	}

	scalar, kind := hostval.NormalizeScalar(data)
	return Value{kind: KindScalar, scalar: scalar, scalarKind: kind}
}

// IsTruthy reports whether this value selects a regular section over an
// inverted one. Empty values and empty collections are falsy; everything
// else is truthy. Clusters answer with their declared truthiness; no
// capability is invoked.
func (v Value) IsTruthy() bool {
	switch v.kind {
	case KindEmpty:
		return false
	case KindMapping:
		return true
	case KindSequence:
		return len(v.sequence) > 0
	case KindSet:
		return len(v.set) > 0
	case KindCluster:
		return v.cluster.truthy
	default:
		return true
	}
}

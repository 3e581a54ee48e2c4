// Package hostval bridges host-native Go data into the canonical shapes the
// value package works with: scalar kind classification, unordered-collection
// deduplication, and reflective key lookup on opaque host objects. Each
// supported host kind is enumerated explicitly so the value package never has
// to inspect runtime type tags itself.
package hostval

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// ScalarKind classifies a host-native scalar by its underlying Go type, not
// by its value. A bool never collapses into integer semantics.
type ScalarKind int

const (
	// KindOpaque marks host objects with no scalar interpretation.
	KindOpaque ScalarKind = iota
	// KindBool marks native booleans.
	KindBool
	// KindInt marks all native signed and unsigned integer widths.
	KindInt
	// KindFloat marks native float32/float64.
	KindFloat
	// KindString marks native strings.
	KindString
)

// NormalizeScalar widens a host-native scalar into its canonical storage form
// (int64, float64, bool, string) and reports its kind. Anything outside the
// enumerated scalar types is returned unchanged as KindOpaque.
func NormalizeScalar(v any) (any, ScalarKind) {
	switch s := v.(type) {
	case bool:
		return s, KindBool
	case int:
		return int64(s), KindInt
	case int8:
		return int64(s), KindInt
	case int16:
		return int64(s), KindInt
	case int32:
		return int64(s), KindInt
	case int64:
		return s, KindInt
	case uint:
		return int64(s), KindInt
	case uint8:
		return int64(s), KindInt
	case uint16:
		return int64(s), KindInt
	case uint32:
		return int64(s), KindInt
	case uint64:
		return int64(s), KindInt
	case float32:
		return float64(s), KindFloat
	case float64:
		return s, KindFloat
	case string:
		return s, KindString
	default:
		return v, KindOpaque
	}
}

// Dedupe removes duplicate elements while preserving first-seen order.
// Comparable elements are deduplicated through a map; non-comparable ones
// fall back to a DeepEqual scan so slices and maps can still participate.
func Dedupe(elems []any) []any {
	out := make([]any, 0, len(elems))
	seen := make(map[any]struct{}, len(elems))

	for _, elem := range elems {
		if isComparable(elem) {
			if _, dup := seen[elem]; dup {
				continue
			}
			seen[elem] = struct{}{}
			out = append(out, elem)
			continue
		}
		dup := false
		for _, kept := range out {
			if reflect.DeepEqual(kept, elem) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, elem)
		}
	}
	return out
}

func isComparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}

// Lookup resolves key against an opaque host object. String-keyed maps are
// indexed directly; structs (and pointers to structs) are decoded into a
// string map first, honouring `mapstructure` field tags. A miss, a nil host,
// or an unsupported host shape reports ok=false.
func Lookup(host any, key string) (any, bool) {
	if host == nil {
		return nil, false
	}

	if m, ok := host.(map[string]any); ok {
		v, found := m[key]
		return v, found
	}

	rv := reflect.ValueOf(host)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Struct:
		fields := make(map[string]any)
		if err := mapstructure.Decode(rv.Interface(), &fields); err != nil {
			return nil, false
		}
		v, found := fields[key]
		return v, found
	default:
		return nil, false
	}
}

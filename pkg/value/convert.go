package value

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-stache/internal/hostval"
)

// Conversions never fail. A kind mismatch reports ok=false (or an empty
// string for String) so callers choose their own fallback behaviour.

// AsInt converts an integer-kind scalar, or floors a floating-point scalar.
// Every other variant, including booleans, reports ok=false.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindScalar {
		return 0, false
	}
	switch v.scalarKind {
	case hostval.KindInt:
		return v.scalar.(int64), true
	case hostval.KindFloat:
		return int64(math.Floor(v.scalar.(float64))), true
	default:
		return 0, false
	}
}

// AsFloat converts either numeric scalar kind.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindScalar {
		return 0, false
	}
	switch v.scalarKind {
	case hostval.KindInt:
		return float64(v.scalar.(int64)), true
	case hostval.KindFloat:
		return v.scalar.(float64), true
	default:
		return 0, false
	}
}

// Scalar exposes the boxed host datum of a scalar value.
func (v Value) Scalar() (any, bool) {
	if v.kind != KindScalar {
		return nil, false
	}
	return v.scalar, true
}

// ClusterValue exposes the capability cluster of a cluster value.
func (v Value) ClusterValue() (*Cluster, bool) {
	if v.kind != KindCluster {
		return nil, false
	}
	return v.cluster, true
}

// AsMap returns a copy of a mapping's entries.
func (v Value) AsMap() (map[string]Value, bool) {
	if v.kind != KindMapping {
		return nil, false
	}
	out := make(map[string]Value, len(v.mapping))
	for k, mv := range v.mapping {
		out[k] = mv
	}
	return out, true
}

// AsSlice returns a copy of a sequence's elements.
func (v Value) AsSlice() ([]Value, bool) {
	if v.kind != KindSequence {
		return nil, false
	}
	out := make([]Value, len(v.sequence))
	copy(out, v.sequence)
	return out, true
}

// String produces a display form for every variant. Empty values display as
// the empty string; mappings and sequences display a structural debug form.
func (v Value) String() string {
	switch v.kind {
	case KindEmpty:
		return ""
	case KindScalar:
		return scalarString(v.scalar, v.scalarKind)
	case KindMapping:
		keys := make([]string, 0, len(v.mapping))
		for k := range v.mapping {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var sb strings.Builder
		sb.WriteString("map[")
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(k)
			sb.WriteByte(':')
			sb.WriteString(v.mapping[k].String())
		}
		sb.WriteByte(']')
		return sb.String()
	case KindSequence:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, el := range v.sequence {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(el.String())
		}
		sb.WriteByte(']')
		return sb.String()
	case KindSet:
		var sb strings.Builder
		sb.WriteString("set[")
		for i, el := range v.set {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(Box(el).String())
		}
		sb.WriteByte(']')
		return sb.String()
	case KindCluster:
		return fmt.Sprintf("%v", v.cluster.host)
	default:
		return ""
	}
}

func scalarString(s any, kind hostval.ScalarKind) string {
	switch kind {
	case hostval.KindBool:
		return strconv.FormatBool(s.(bool))
	case hostval.KindInt:
		return strconv.FormatInt(s.(int64), 10)
	case hostval.KindFloat:
		return strconv.FormatFloat(s.(float64), 'g', -1, 64)
	case hostval.KindString:
		return s.(string)
	default:
		return fmt.Sprintf("%v", s)
	}
}

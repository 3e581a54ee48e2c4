package value

import "github.com/goliatone/go-stache/internal/hostval"

// Pseudo-keys exposed by the collection variants. Mappings deliberately have
// none: a mapping's own entries always win, so user data can never be
// shadowed by a built-in.
const (
	keyCount       = "count"
	keyFirstObject = "firstObject"
	keyLastObject  = "lastObject"
	keyAnyObject   = "anyObject"
)

// Key resolves a single identifier against this value, the entry point the
// scope-resolution layer calls for each level of the context stack. The
// policy is variant-dependent and a miss is always Empty, never an error:
//
//   - Empty resolves nothing.
//   - Scalars delegate to reflective host lookup (struct fields and
//     string-keyed maps); a miss stays a miss with no further fallback.
//   - Mappings resolve their own entries only.
//   - Sequences expose count, firstObject and lastObject.
//   - Sets expose count and anyObject.
//   - Clusters delegate to their key-lookup capability when present.
func (v Value) Key(key string) Value {
	switch v.kind {
	case KindScalar:
		if raw, ok := hostval.Lookup(v.scalar, key); ok {
			return Box(raw)
		}
		return Empty()
	case KindMapping:
		if entry, ok := v.mapping[key]; ok {
			return entry
		}
		return Empty()
	case KindSequence:
		switch key {
		case keyCount:
			return BoxInt(int64(len(v.sequence)))
		case keyFirstObject:
			if len(v.sequence) == 0 {
				return Empty()
			}
			return v.sequence[0]
		case keyLastObject:
			if len(v.sequence) == 0 {
				return Empty()
			}
			return v.sequence[len(v.sequence)-1]
		}
		return Empty()
	case KindSet:
		switch key {
		case keyCount:
			return BoxInt(int64(len(v.set)))
		case keyAnyObject:
			if len(v.set) == 0 {
				return Empty()
			}
			return Box(v.set[0])
		}
		return Empty()
	case KindCluster:
		if v.cluster.keyLookup != nil {
			return v.cluster.keyLookup.MustacheKey(key)
		}
		return Empty()
	default:
		return Empty()
	}
}

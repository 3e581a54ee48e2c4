// Package stache is the value representation and rendering dispatch core of
// the go-stache template engine family. It defines the closed tagged union
// every template datum flows through, the capability-composition model that
// lets host objects opt into rendering behaviours, the filter
// partial-application protocol, and the content-type-aware rendering
// dispatcher. Template parsing, template repositories, and the default HTML
// escaping pipeline live in the engine modules built on top of this one.
//
// # Values
//
// Box canonicalizes host data into an immutable Value:
//
//	v := stache.Box(map[string]any{
//	    "title": "Hello",
//	    "tags":  []any{"a", "b"},
//	})
//	v.Key("tags").Key("count") // Scalar(2)
//
// # Capabilities
//
// A host object may implement any subset of five orthogonal interfaces —
// BoolValuer, KeyLookuper, Filter, Renderable, TagObserver — and boxing
// probes for each one independently:
//
//	v := stache.BoxObject(escape.JavaScript{})
//
// # Rendering
//
// The engine hands every value the current tag through RenderingInfo and
// receives text paired with a content type, or an error. Rendering a
// heterogeneous collection whose elements disagree on content type fails
// with ErrContentTypeMismatch; output is never partial.
//
// # Thread Safety
//
// Values, clusters, filters, and scope stacks are immutable after
// construction and safe to share across concurrent renders, provided the
// host objects they wrap tolerate concurrent reads.
package stache

// Package value implements the polymorphic value model at the centre of the
// go-stache rendering pipeline: a closed tagged union covering absence,
// scalars, mappings, sequences, unordered collections, and capability
// clusters, plus the render-time dispatch that turns any of them into text.
//
// Values are immutable once constructed. Every transformation returns a new
// Value, which makes values safe to share across concurrent renders as long
// as the host objects they wrap tolerate concurrent reads.
//
// # Boxing
//
// Box canonicalizes arbitrary host data:
//
//	v := value.Box(map[string]any{
//	    "name":  "World",
//	    "count": 3,
//	})
//
// Host objects that implement one or more of the rendering capabilities
// (BoolValuer, KeyLookuper, Filter, Renderable, TagObserver) are wrapped in
// a Cluster so the engine can discover those capabilities at render time.
//
// # Rendering
//
// The template engine hands each value the current tag and context through
// RenderingInfo; Render answers with a Rendering (text plus content type) or
// an error. Mixing content types inside one collection is a fatal rendering
// error, never a silent coercion.
package value

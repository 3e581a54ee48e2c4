package value

// The five rendering capabilities are independent, orthogonal interfaces.
// A host object may implement any subset; NewCluster probes for each one
// separately so no combinatorial constructor surface is needed. Providing
// one capability never stands in for another: key lookup is only consulted
// on key extraction, Renderable only on rendering, and so on.

// BoolValuer overrides the default truthiness of a boxed object. Objects
// without it are truthy whenever present.
type BoolValuer interface {
	MustacheBool() bool
}

// KeyLookuper resolves a string key against the host object. Misses must be
// answered with Empty, never an error.
type KeyLookuper interface {
	MustacheKey(key string) Value
}

// Filter is a unary value transform. Multi-argument filter syntax is
// realized purely through currying: FilterByApplyingArgument either returns
// a new filter closing over one more argument (ok=true), or reports ok=false
// to signal that Transform consumes the next value directly.
type Filter interface {
	FilterByApplyingArgument(arg Value) (Filter, bool)
	Transform(v Value) (Value, error)
}

// Renderable lets a host object own the rendering decision entirely. It
// receives the same tag and context information the dispatcher has and
// answers with the same rendering-or-error contract.
type Renderable interface {
	MustacheRender(info RenderingInfo) (Rendering, error)
}

// TagObserver observes a value immediately before it renders and the
// produced rendering (or failure) immediately after. WillRenderValue may
// substitute a different value; DidRenderValue receives a nil rendering when
// the render failed.
type TagObserver interface {
	WillRenderValue(tag Tag, v Value) Value
	DidRenderValue(tag Tag, v Value, rendering *Rendering, err error)
}

// RenderFunc adapts a function into a Renderable, typically to wrap a value
// in a one-shot rendering closure.
type RenderFunc func(info RenderingInfo) (Rendering, error)

// MustacheRender invokes the function.
func (f RenderFunc) MustacheRender(info RenderingInfo) (Rendering, error) {
	return f(info)
}

// Cluster records which of the five capabilities a host object declared at
// wrap time. Absent capabilities are nil. Clusters never mutate after
// construction.
type Cluster struct {
	host       any
	truthy     bool
	keyLookup  KeyLookuper
	filter     Filter
	renderable Renderable
	observer   TagObserver
}

// NewCluster probes obj for each capability independently and assembles the
// resulting record. Truthiness defaults to true for any present object.
func NewCluster(obj any) *Cluster {
	c := &Cluster{host: obj, truthy: true}
	if b, ok := obj.(BoolValuer); ok {
		c.truthy = b.MustacheBool()
	}
	if k, ok := obj.(KeyLookuper); ok {
		c.keyLookup = k
	}
	if f, ok := obj.(Filter); ok {
		c.filter = f
	}
	if r, ok := obj.(Renderable); ok {
		c.renderable = r
	}
	if o, ok := obj.(TagObserver); ok {
		c.observer = o
	}
	return c
}

// Host returns the wrapped host object.
func (c *Cluster) Host() any { return c.host }

// Truthy reports the cluster's declared truthiness.
func (c *Cluster) Truthy() bool { return c.truthy }

// KeyLookup returns the key-lookup capability, or nil.
func (c *Cluster) KeyLookup() KeyLookuper { return c.keyLookup }

// Filter returns the filter capability, or nil.
func (c *Cluster) Filter() Filter { return c.filter }

// Renderable returns the rendering capability, or nil.
func (c *Cluster) Renderable() Renderable { return c.renderable }

// TagObserver returns the tag-observer capability, or nil.
func (c *Cluster) TagObserver() TagObserver { return c.observer }

func hasCapability(obj any) bool {
	switch obj.(type) {
	case BoolValuer, KeyLookuper, Filter, Renderable, TagObserver:
		return true
	default:
		return false
	}
}

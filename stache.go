package stache

import (
	"github.com/goliatone/go-stache/pkg/scope"
	"github.com/goliatone/go-stache/pkg/value"
)

// Commonly used types re-exported from the value package so most callers
// only import the module root.

// Value is the closed tagged union every template datum flows through.
type Value = value.Value

// Kind identifies the variant a Value holds.
type Kind = value.Kind

// Cluster records the rendering capabilities a host object declared.
type Cluster = value.Cluster

// Rendering pairs rendered text with its content type.
type Rendering = value.Rendering

// ContentType classifies rendered text as plain text or safe markup.
type ContentType = value.ContentType

// Tag is the template directive currently being rendered.
type Tag = value.Tag

// TagKind distinguishes variable tags from section tags.
type TagKind = value.TagKind

// RenderingInfo carries the tag and context a value renders under.
type RenderingInfo = value.RenderingInfo

// Context is the engine's scope stack as seen from the dispatcher.
type Context = value.Context

// BoolValuer, KeyLookuper, Filter, Renderable and TagObserver are the five
// capabilities a boxed object may declare.
type (
	BoolValuer  = value.BoolValuer
	KeyLookuper = value.KeyLookuper
	Filter      = value.Filter
	Renderable  = value.Renderable
	TagObserver = value.TagObserver
)

// RenderFunc adapts a function into a Renderable.
type RenderFunc = value.RenderFunc

// Variant and tag constants.
const (
	KindEmpty    = value.KindEmpty
	KindScalar   = value.KindScalar
	KindMapping  = value.KindMapping
	KindSequence = value.KindSequence
	KindSet      = value.KindSet
	KindCluster  = value.KindCluster

	ContentTypePlainText = value.ContentTypePlainText
	ContentTypeMarkup    = value.ContentTypeMarkup

	TagVariable = value.TagVariable
	TagSection  = value.TagSection
)

// Boxing constructors.
var (
	Box         = value.Box
	Empty       = value.Empty
	BoxBool     = value.BoxBool
	BoxInt      = value.BoxInt
	BoxFloat    = value.BoxFloat
	BoxString   = value.BoxString
	BoxMap      = value.BoxMap
	BoxSlice    = value.BoxSlice
	BoxSet      = value.BoxSet
	BoxObject   = value.BoxObject
	BoxYAMLNode = value.BoxYAMLNode

	// NewCluster probes an object for each capability independently.
	NewCluster = value.NewCluster
)

// ErrContentTypeMismatch reports mixed content types inside one collection
// rendering.
var ErrContentTypeMismatch = value.ErrContentTypeMismatch

// NewScope returns a context stack with v as its root scope, the structure
// section bodies re-render against.
func NewScope(v Value) *scope.Stack {
	return scope.New(v)
}

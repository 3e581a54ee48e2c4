package value

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-stache/pkg/logging"
)

// ContentType classifies rendered text for the escaping pipeline: Markup is
// assumed pre-escaped and must never be escaped again, PlainText is escaped
// by the surrounding default pipeline.
type ContentType int

const (
	// ContentTypePlainText marks text that still needs escaping downstream.
	ContentTypePlainText ContentType = iota
	// ContentTypeMarkup marks text that is already safe markup.
	ContentTypeMarkup
)

// String returns the content type name.
func (ct ContentType) String() string {
	if ct == ContentTypeMarkup {
		return "markup"
	}
	return "text"
}

// Rendering pairs produced text with its content type.
type Rendering struct {
	Text        string
	ContentType ContentType
}

// TagKind distinguishes variable tags ({{x}}) from section tags
// ({{#x}}...{{/x}}).
type TagKind int

const (
	// TagVariable is a substitution tag.
	TagVariable TagKind = iota
	// TagSection is a block tag with a body.
	TagSection
)

// String returns the tag kind name.
func (k TagKind) String() string {
	if k == TagSection {
		return "section"
	}
	return "variable"
}

// Tag is the parsed template directive currently being rendered, supplied by
// the engine. RenderContent re-renders the tag's body against the given
// context; variable tags have no body and are never asked for content by the
// dispatcher.
type Tag interface {
	Kind() TagKind
	Description() string
	RenderContent(ctx Context) (Rendering, error)
}

// Context is the engine's scope stack as seen from the dispatcher: an
// immutable stack that can grow by one data scope or one tag observer.
type Context interface {
	WithValue(v Value) Context
	WithObserver(o TagObserver) Context
}

// RenderingInfo carries everything a value needs to render itself: the
// current tag, the context its body renders against, and whether the value
// is itself already being rendered as one enumerated collection item.
type RenderingInfo struct {
	Tag             Tag
	Context         Context
	EnumerationItem bool
}

// ErrContentTypeMismatch reports that the elements of one collection
// rendered with different content types. Mixed collections fail as a whole;
// no partial output is ever returned.
var ErrContentTypeMismatch = errors.New("value: mixed content types in collection rendering")

// Render produces text for this value under the given tag, or fails.
// Dispatch is by variant:
//
//   - Empty renders nothing for a variable tag; for a section tag the body
//     renders against the unmodified enclosing context (absence pushes no
//     scope, which is what lets inverted sections render).
//   - Scalars and mappings render their display form for a variable tag and
//     push themselves as the innermost scope for a section tag.
//   - Sequences and sets iterate their elements, rendering each as an
//     enumeration item and concatenating — but only while every element
//     agrees on one content type. Empty collections behave like Empty. A
//     collection that is itself an enumeration item pushes itself once
//     instead of iterating again.
//   - Clusters delegate entirely to their Renderable capability when one is
//     present; otherwise they behave like a scalar scope.
//
// Delegated failures propagate verbatim.
func (v Value) Render(info RenderingInfo) (Rendering, error) {
	log := logging.GetLogger("value.render")
	log.Trace().
		Stringer("variant", v.kind).
		Stringer("tag", info.Tag.Kind()).
		Bool("enumerationItem", info.EnumerationItem).
		Msg("dispatch")

	switch v.kind {
	case KindEmpty:
		if info.Tag.Kind() == TagVariable {
			return Rendering{}, nil
		}
		return info.Tag.RenderContent(info.Context)
	case KindScalar, KindMapping:
		if info.Tag.Kind() == TagVariable {
			return Rendering{Text: v.String()}, nil
		}
		return info.Tag.RenderContent(info.Context.WithValue(v))
	case KindSequence:
		return v.renderCollection(info, v.sequence)
	case KindSet:
		elems := make([]Value, 0, len(v.set))
		for _, el := range v.set {
			elems = append(elems, Box(el))
		}
		return v.renderCollection(info, elems)
	case KindCluster:
		if v.cluster.renderable != nil {
			return v.cluster.renderable.MustacheRender(info)
		}
		if info.Tag.Kind() == TagVariable {
			return Rendering{Text: v.String()}, nil
		}
		return info.Tag.RenderContent(info.Context.WithValue(v))
	default:
		return Rendering{}, fmt.Errorf("value: cannot render variant %s", v.kind)
	}
}

func (v Value) renderCollection(info RenderingInfo, elems []Value) (Rendering, error) {
	if info.EnumerationItem {
		// Re-entrant call: this collection is already one enumerated item,
		// so it becomes the scope instead of iterating again.
		return info.Tag.RenderContent(info.Context.WithValue(v))
	}

	if len(elems) == 0 {
		if info.Tag.Kind() == TagVariable {
			return Rendering{}, nil
		}
		return info.Tag.RenderContent(info.Context)
	}

	var sb strings.Builder
	var contentType ContentType
	for i, el := range elems {
		r, err := el.Render(RenderingInfo{
			Tag:             info.Tag,
			Context:         info.Context,
			EnumerationItem: true,
		})
		if err != nil {
			return Rendering{}, err
		}
		if i == 0 {
			contentType = r.ContentType
		} else if r.ContentType != contentType {
			return Rendering{}, fmt.Errorf("value: element %d of %s rendered %s, expected %s: %w",
				i, info.Tag.Description(), r.ContentType, contentType, ErrContentTypeMismatch)
		}
		sb.WriteString(r.Text)
	}
	return Rendering{Text: sb.String(), ContentType: contentType}, nil
}

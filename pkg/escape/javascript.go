// Package escape provides escaping helpers built as capability consumers of
// the value package: a JavaScript string escaper composing three rendering
// capabilities on one object, and a bluemonday-backed HTML sanitizing
// filter.
package escape

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-stache/pkg/value"
)

// JavaScript escapes text for embedding inside JavaScript string literals.
// One object plays three roles:
//
//   - As a Renderable, a variable tag renders its own display form, and a
//     section tag re-renders its body with the escaper pushed as a tag
//     observer — not as a data scope — so every variable rendered inside
//     the section comes out escaped.
//   - As a Filter, it escapes the display string of its argument.
//   - As a TagObserver, it wraps values about to render under a variable
//     tag in a one-shot renderable that escapes the inner rendering's text
//     while preserving its content type. Section tags pass through
//     untouched; only leaf variables are escaped.
type JavaScript struct{}

// String identifies the escaper in variable-tag renderings.
func (JavaScript) String() string { return "escape.JavaScript" }

// MustacheRender implements value.Renderable.
func (e JavaScript) MustacheRender(info value.RenderingInfo) (value.Rendering, error) {
	if info.Tag.Kind() == value.TagVariable {
		return value.Rendering{Text: e.String()}, nil
	}
	return info.Tag.RenderContent(info.Context.WithObserver(e))
}

// FilterByApplyingArgument implements value.Filter; the escaper is unary.
func (JavaScript) FilterByApplyingArgument(value.Value) (value.Filter, bool) {
	return nil, false
}

// Transform implements value.Filter by escaping the argument's display
// string.
func (JavaScript) Transform(v value.Value) (value.Value, error) {
	return value.BoxString(Escape(v.String())), nil
}

// WillRenderValue implements value.TagObserver.
func (e JavaScript) WillRenderValue(tag value.Tag, v value.Value) value.Value {
	if tag.Kind() != value.TagVariable {
		return v
	}
	return value.BoxObject(value.RenderFunc(func(info value.RenderingInfo) (value.Rendering, error) {
		r, err := v.Render(info)
		if err != nil {
			return value.Rendering{}, err
		}
		r.Text = Escape(r.Text)
		return r, nil
	}))
}

// DidRenderValue implements value.TagObserver; the escaper does not observe
// results.
func (JavaScript) DidRenderValue(value.Tag, value.Value, *value.Rendering, error) {}

// Escape maps every character unsafe inside a JavaScript string literal to
// its \uXXXX form: the C0 controls, backslash, single and double quotes,
// angle brackets, ampersand, equals, hyphen, semicolon, and the line and
// paragraph separators. All other characters pass through unchanged.
func Escape(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if needsEscape(r) {
			fmt.Fprintf(&sb, `\u%04X`, r)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func needsEscape(r rune) bool {
	if r <= 0x1F {
		return true
	}
	switch r {
	case '\\', '\'', '"', '<', '>', '&', '=', '-', ';', '\u2028', '\u2029':
		return true
	}
	return false
}

// Package testsupport provides the fake engine collaborators package tests
// render against: tags with canned bodies and the per-tag render protocol
// the engine runs for every tag it encounters.
package testsupport

import (
	"fmt"

	"github.com/goliatone/go-stache/pkg/scope"
	"github.com/goliatone/go-stache/pkg/value"
)

// Tag is a scriptable value.Tag. Content runs when the dispatcher asks the
// tag to render its body; variable tags are never asked.
type Tag struct {
	TagKind value.TagKind
	Desc    string
	Content func(ctx value.Context) (value.Rendering, error)
}

// Kind implements value.Tag.
func (t *Tag) Kind() value.TagKind { return t.TagKind }

// Description implements value.Tag.
func (t *Tag) Description() string {
	if t.Desc == "" {
		return "fake tag"
	}
	return t.Desc
}

// RenderContent implements value.Tag.
func (t *Tag) RenderContent(ctx value.Context) (value.Rendering, error) {
	if t.Content == nil {
		return value.Rendering{}, nil
	}
	return t.Content(ctx)
}

// VariableTag returns a bodyless {{value}} tag.
func VariableTag() *Tag {
	return &Tag{TagKind: value.TagVariable, Desc: "{{value}}"}
}

// SectionTag returns a section tag whose body renders through content.
func SectionTag(content func(ctx value.Context) (value.Rendering, error)) *Tag {
	return &Tag{TagKind: value.TagSection, Desc: "{{#section}}", Content: content}
}

// TextSection returns a section tag whose body always renders text as plain
// text, regardless of scope.
func TextSection(text string) *Tag {
	return SectionTag(func(value.Context) (value.Rendering, error) {
		return value.Rendering{Text: text}, nil
	})
}

// RenderValue runs the engine's per-tag protocol for v under tag: observer
// notification before, dispatch, observer notification after.
func RenderValue(stack *scope.Stack, tag value.Tag, v value.Value) (value.Rendering, error) {
	v = stack.WillRender(tag, v)
	r, err := v.Render(value.RenderingInfo{Tag: tag, Context: stack})
	if err != nil {
		stack.DidRender(tag, v, nil, err)
		return value.Rendering{}, err
	}
	stack.DidRender(tag, v, &r, nil)
	return r, nil
}

// RenderVariable resolves key against stack and renders it as a {{key}} tag
// through the full per-tag protocol.
func RenderVariable(stack *scope.Stack, key string) (value.Rendering, error) {
	return RenderValue(stack, VariableTag(), stack.Resolve(key))
}

// RenderVariableIn is RenderVariable for body callbacks, which receive the
// stack through the value.Context interface.
func RenderVariableIn(ctx value.Context, key string) (value.Rendering, error) {
	stack, ok := ctx.(*scope.Stack)
	if !ok {
		return value.Rendering{}, fmt.Errorf("testsupport: context is %T, want *scope.Stack", ctx)
	}
	return RenderVariable(stack, key)
}

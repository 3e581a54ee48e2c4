package stache_test

import (
	"testing"

	stache "github.com/goliatone/go-stache"
	"github.com/goliatone/go-stache/pkg/testsupport"
)

func TestFacade_BoxResolveRender(t *testing.T) {
	data := stache.Box(map[string]any{
		"title": "Hello",
		"tags":  []any{"a", "b"},
	})

	stack := stache.NewScope(data)

	r, err := testsupport.RenderVariable(stack, "title")
	if err != nil {
		t.Fatalf("RenderVariable() error = %v", err)
	}
	if r.Text != "Hello" || r.ContentType != stache.ContentTypePlainText {
		t.Fatalf("rendering = %+v, want %q as plain text", r, "Hello")
	}

	count, ok := stack.Resolve("tags").Key("count").AsInt()
	if !ok || count != 2 {
		t.Fatalf("tags.count = %d (ok=%t), want 2", count, ok)
	}
}

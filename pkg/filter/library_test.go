package filter_test

import (
	"testing"

	"github.com/goliatone/go-stache/pkg/filter"
	"github.com/goliatone/go-stache/pkg/value"
)

func transform(t *testing.T, f value.Filter, v value.Value) value.Value {
	t.Helper()

	out, err := f.Transform(v)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	return out
}

func TestCaseFilters(t *testing.T) {
	tests := []struct {
		name string
		f    value.Filter
		in   string
		want string
	}{
		{name: "uppercase", f: filter.Uppercase, in: "héllo world", want: "HÉLLO WORLD"},
		{name: "lowercase", f: filter.Lowercase, in: "HELLO", want: "hello"},
		{name: "capitalized words", f: filter.Capitalized, in: "hello wOrld", want: "Hello World"},
		{name: "capitalized empty", f: filter.Capitalized, in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := transform(t, tt.f, value.BoxString(tt.in))
			if got.String() != tt.want {
				t.Fatalf("result = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestIsEmptyAndIsBlank(t *testing.T) {
	tests := []struct {
		name      string
		v         value.Value
		wantEmpty string
		wantBlank string
	}{
		{name: "empty value", v: value.Empty(), wantEmpty: "true", wantBlank: "true"},
		{name: "whitespace string", v: value.BoxString(" \t"), wantEmpty: "false", wantBlank: "true"},
		{name: "word", v: value.BoxString("word"), wantEmpty: "false", wantBlank: "false"},
		{name: "zero", v: value.BoxInt(0), wantEmpty: "false", wantBlank: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transform(t, filter.IsEmpty, tt.v).String(); got != tt.wantEmpty {
				t.Fatalf("IsEmpty = %s, want %s", got, tt.wantEmpty)
			}
			if got := transform(t, filter.IsBlank, tt.v).String(); got != tt.wantBlank {
				t.Fatalf("IsBlank = %s, want %s", got, tt.wantBlank)
			}
		})
	}
}

func TestCount(t *testing.T) {
	seq := value.Box([]any{1, 2, 3})
	if got := transform(t, filter.Count, seq).String(); got != "3" {
		t.Fatalf("sequence count = %s, want 3", got)
	}

	set := value.BoxSet("a", "b", "a")
	if got := transform(t, filter.Count, set).String(); got != "2" {
		t.Fatalf("set count = %s, want 2", got)
	}

	mapping := value.Box(map[string]any{"a": 1})
	if got := transform(t, filter.Count, mapping).String(); got != "1" {
		t.Fatalf("mapping count = %s, want 1", got)
	}

	if got := transform(t, filter.Count, value.BoxString("abc")); got.Kind() != value.KindEmpty {
		t.Fatalf("scalar count = %s, want empty", got.Kind())
	}
}

package value_test

import (
	"testing"

	"github.com/goliatone/go-stache/pkg/value"
)

func TestAsInt(t *testing.T) {
	tests := []struct {
		name   string
		v      value.Value
		want   int64
		wantOK bool
	}{
		{name: "integer scalar", v: value.BoxInt(3), want: 3, wantOK: true},
		{name: "floating scalar floors", v: value.BoxFloat(3.7), want: 3, wantOK: true},
		{name: "negative float floors down", v: value.BoxFloat(-1.2), want: -2, wantOK: true},
		{name: "empty", v: value.Empty(), wantOK: false},
		{name: "boolean stays boolean", v: value.BoxBool(true), wantOK: false},
		{name: "string", v: value.BoxString("3"), wantOK: false},
		{name: "sequence", v: value.BoxSlice(nil), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.v.AsInt()
			if ok != tt.wantOK {
				t.Fatalf("AsInt() ok = %t, want %t", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Fatalf("AsInt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAsFloat(t *testing.T) {
	tests := []struct {
		name   string
		v      value.Value
		want   float64
		wantOK bool
	}{
		{name: "integer scalar widens", v: value.BoxInt(3), want: 3.0, wantOK: true},
		{name: "floating scalar", v: value.BoxFloat(3.7), want: 3.7, wantOK: true},
		{name: "empty", v: value.Empty(), wantOK: false},
		{name: "boolean", v: value.BoxBool(false), wantOK: false},
		{name: "string", v: value.BoxString("1.5"), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.v.AsFloat()
			if ok != tt.wantOK {
				t.Fatalf("AsFloat() ok = %t, want %t", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Fatalf("AsFloat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestString_EveryVariantDisplays(t *testing.T) {
	tests := []struct {
		name string
		v    value.Value
		want string
	}{
		{name: "empty", v: value.Empty(), want: ""},
		{name: "string", v: value.BoxString("hi"), want: "hi"},
		{name: "int", v: value.BoxInt(-4), want: "-4"},
		{name: "float", v: value.BoxFloat(3.5), want: "3.5"},
		{name: "bool", v: value.BoxBool(true), want: "true"},
		{
			name: "mapping structural form sorts keys",
			v: value.BoxMap(map[string]value.Value{
				"b": value.BoxInt(2),
				"a": value.BoxInt(1),
			}),
			want: "map[a:1 b:2]",
		},
		{
			name: "sequence structural form keeps order",
			v: value.BoxSlice([]value.Value{
				value.BoxString("x"),
				value.BoxInt(1),
			}),
			want: "[x 1]",
		},
		{name: "set structural form", v: value.BoxSet("a", "b"), want: "set[a b]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScalar_ExposesHostDatum(t *testing.T) {
	type host struct{ Name string }
	h := host{Name: "x"}

	raw, ok := value.Box(h).Scalar()
	if !ok {
		t.Fatal("Scalar() reported no value for an opaque host object")
	}
	if raw != h {
		t.Fatalf("Scalar() = %v, want %v", raw, h)
	}

	if _, ok := value.Empty().Scalar(); ok {
		t.Fatal("Scalar() reported a value for Empty")
	}
}

func TestClusterValue(t *testing.T) {
	v := value.BoxObject(truthyObject{truthy: true})
	c, ok := v.ClusterValue()
	if !ok {
		t.Fatal("ClusterValue() reported no cluster")
	}
	if !c.Truthy() {
		t.Fatal("cluster truthiness lost in boxing")
	}

	if _, ok := value.BoxInt(1).ClusterValue(); ok {
		t.Fatal("ClusterValue() reported a cluster for a scalar")
	}
}

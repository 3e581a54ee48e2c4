package filter_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/goliatone/go-stache/pkg/filter"
	"github.com/goliatone/go-stache/pkg/value"
)

// joined concatenates the display form of every argument with a separator,
// a convenient probe for argument order and count.
func joined() value.Filter {
	return filter.NewVariadic(func(args []value.Value) (value.Value, error) {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, arg.String())
		}
		return value.BoxString(strings.Join(parts, "+")), nil
	})
}

func TestVariadic_CurryingMatchesDirectApplication(t *testing.T) {
	a := value.BoxString("a")
	b := value.BoxString("b")
	c := value.BoxString("c")

	// Three sequential single-argument applications.
	f := joined()
	f1, ok := f.FilterByApplyingArgument(a)
	if !ok {
		t.Fatal("first application refused")
	}
	f2, ok := f1.FilterByApplyingArgument(b)
	if !ok {
		t.Fatal("second application refused")
	}
	curried, err := f2.Transform(c)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	// One direct three-argument invocation.
	direct, err := filter.Apply(joined(), a, b, c)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if curried.String() != direct.String() {
		t.Fatalf("curried = %q, direct = %q; want equal", curried.String(), direct.String())
	}
	if curried.String() != "a+b+c" {
		t.Fatalf("result = %q, want %q", curried.String(), "a+b+c")
	}
}

func TestVariadic_IntermediateFiltersAreReusable(t *testing.T) {
	base, ok := joined().FilterByApplyingArgument(value.BoxString("base"))
	if !ok {
		t.Fatal("application refused")
	}

	// The same partially-applied filter serves two divergent calls; the
	// first must not leak its argument into the second.
	first, err := base.Transform(value.BoxString("one"))
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	second, err := base.Transform(value.BoxString("two"))
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	if first.String() != "base+one" {
		t.Fatalf("first = %q, want %q", first.String(), "base+one")
	}
	if second.String() != "base+two" {
		t.Fatalf("second = %q, want %q", second.String(), "base+two")
	}
}

func TestFunc_RefusesExtraArguments(t *testing.T) {
	upper := filter.Func(func(v value.Value) (value.Value, error) {
		return value.BoxString(strings.ToUpper(v.String())), nil
	})

	if _, ok := upper.FilterByApplyingArgument(value.BoxString("x")); ok {
		t.Fatal("unary filter accepted a curried argument")
	}

	_, err := filter.Apply(upper, value.BoxString("a"), value.BoxString("b"))
	if err == nil {
		t.Fatal("Apply() with two arguments on a unary filter succeeded")
	}
}

func TestApply_SingleArgumentTransforms(t *testing.T) {
	got, err := filter.Apply(filter.Uppercase, value.BoxString("hi"))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got.String() != "HI" {
		t.Fatalf("result = %q, want %q", got.String(), "HI")
	}
}

func TestApply_RequiresFilterAndArguments(t *testing.T) {
	if _, err := filter.Apply(nil, value.BoxString("x")); err == nil {
		t.Fatal("Apply(nil) succeeded")
	}
	if _, err := filter.Apply(filter.Uppercase); err == nil {
		t.Fatal("Apply() with no arguments succeeded")
	}
}

func TestVariadic_PropagatesComputationFailure(t *testing.T) {
	boom := fmt.Errorf("computation failed")
	failing := filter.NewVariadic(func([]value.Value) (value.Value, error) {
		return value.Empty(), boom
	})

	_, err := filter.Apply(failing, value.BoxString("a"), value.BoxString("b"))
	if err == nil || err.Error() != boom.Error() {
		t.Fatalf("Apply() error = %v, want %v", err, boom)
	}
}

package value

import (
	"testing"

	"osyris/bstring"
)

func TestTruthiness(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"none is false", Nil(), false},
		{"bool false is false", Bool(false), false},
		{"bool true is true", Bool(true), true},
		{"zero number is true", Number(0), true},
		{"empty string is true", NewString(bstring.FromString("")), true},
		{"list is true", NewList(nil), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truthy(tt.v); got != tt.want {
				t.Errorf("Truthy(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestEqualStructural(t *testing.T) {
	a := NewList([]Value{Number(1), Number(2)})
	b := NewList([]Value{Number(1), Number(2)})
	if !Equal(a, b) {
		t.Errorf("expected structurally-equal lists to be Equal")
	}

	c := NewList([]Value{Number(1), Number(3)})
	if Equal(a, c) {
		t.Errorf("expected differing lists to not be Equal")
	}

	if !Equal(Nil(), Nil()) {
		t.Errorf("None must equal None")
	}
	if !Equal(NewString(bstring.FromString("x")), NewString(bstring.FromString("x"))) {
		t.Errorf("equal-content strings must be Equal")
	}
}

func TestEqualIdentityForCallables(t *testing.T) {
	f1 := NewFunc("f", func(args []Value, s *Scope) (Value, *StackTrace) { return Nil(), nil })
	f2 := NewFunc("f", func(args []Value, s *Scope) (Value, *StackTrace) { return Nil(), nil })
	if Equal(f1, f1) == false {
		t.Errorf("a Func must equal itself")
	}
	if Equal(f1, f2) {
		t.Errorf("distinct Func instances must not be Equal even with the same name")
	}
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want float64
	}{
		{"number passthrough", Number(3.5), 3.5},
		{"true is one", Bool(true), 1},
		{"false is zero", Bool(false), 0},
		{"numeric string parses", NewString(bstring.FromString("42")), 42},
		{"garbage string is zero", NewString(bstring.FromString("nope")), 0},
		{"none is zero", Nil(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToNumber(tt.v); got != tt.want {
				t.Errorf("ToNumber() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCopyOnShareMutatesOnlyWhenRefCountOne(t *testing.T) {
	l := NewList([]Value{Number(1), Number(2), Number(3)})

	scope := NewScope()
	scope.Insert("l", l)
	if RefCount(l) != 1 {
		t.Fatalf("RefCount after one Insert = %d, want 1", RefCount(l))
	}

	// Unique holder: mutate in place, same handle.
	m := MutableList(l)
	if m != l {
		t.Errorf("expected MutableList to return the same handle when uniquely held")
	}

	scope.Insert("alias", l)
	if RefCount(l) != 2 {
		t.Fatalf("RefCount after aliasing = %d, want 2", RefCount(l))
	}

	clone := MutableList(l)
	if clone == l {
		t.Errorf("expected MutableList to clone when refcount > 1")
	}
	clone.Items = append(clone.Items, Number(4))
	if len(l.Items) != 3 {
		t.Errorf("original list mutated via a clone; len = %d, want 3", len(l.Items))
	}
}

func TestScopeReplaceWalksAncestors(t *testing.T) {
	root := NewScope()
	root.Insert("x", Number(1))
	child := NewChildScope(root)

	if err := child.Replace("x", Number(2)); err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	got, ok := root.LookupShallow("x")
	if !ok || got.(Number) != 2 {
		t.Errorf("Replace did not update the owning ancestor frame: got %v", got)
	}

	if err := child.Replace("undefined", Number(1)); err == nil {
		t.Errorf("expected Replace of an unbound name to fail")
	}
}

func TestScopeInsertAlwaysTargetsCurrentFrame(t *testing.T) {
	root := NewScope()
	root.Insert("x", Number(1))
	child := NewChildScope(root)
	child.Insert("x", Number(2))

	if v, ok := child.LookupShallow("x"); !ok || v.(Number) != 2 {
		t.Errorf("child frame should own its own x binding")
	}
	if v, ok := root.LookupShallow("x"); !ok || v.(Number) != 1 {
		t.Errorf("Insert on child must not affect the parent frame")
	}
}

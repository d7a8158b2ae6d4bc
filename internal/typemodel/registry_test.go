package typemodel

import (
	"sort"
	"strings"
	"testing"
)

func TestResolveRegistersPlaceholder(t *testing.T) {
	reg := NewRegistry()

	ref := reg.Resolve("User", nil, nil)
	if ref.Kind != KindRef || ref.RefName != "User" {
		t.Fatalf("unexpected ref: %+v", ref)
	}
	if !reg.Has("User") {
		t.Fatal("expected User to be registered by Resolve")
	}
	if got := reg.Get("User"); got.Kind != "" {
		t.Fatalf("expected unfilled placeholder, got kind %q", got.Kind)
	}
}

func TestResolveIdempotent(t *testing.T) {
	reg := NewRegistry()

	first := reg.Resolve("User", nil, nil)
	second := reg.Resolve("User", nil, nil)
	if first.RefName != second.RefName {
		t.Fatalf("refs disagree: %q vs %q", first.RefName, second.RefName)
	}
	if reg.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", reg.Len())
	}
}

func TestFillKeepsEntryPointerStable(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterPlaceholder("Tree")

	// Simulates a ref handed out while the body was still being built.
	held := reg.Get("Tree")

	reg.Fill("Tree", &TypeModel{
		Kind: KindInterface,
		Name: "Tree",
		Props: []Prop{
			{Name: "children", Type: TypeModel{Kind: KindRef, RefName: "Tree"}},
		},
	})

	if held.Kind != KindInterface {
		t.Fatalf("held pointer did not observe the fill, kind = %q", held.Kind)
	}
	if len(held.Props) != 1 || held.Props[0].Name != "children" {
		t.Fatalf("held pointer has wrong body: %+v", held)
	}
}

func TestFillWithoutPlaceholder(t *testing.T) {
	reg := NewRegistry()
	reg.Fill("Status", &TypeModel{Kind: KindAlias, Name: "Status", Type: &TypeModel{Kind: KindString}})

	if !reg.Has("Status") {
		t.Fatal("expected Status to exist after Fill")
	}
	if got := reg.Get("Status"); got.Kind != KindAlias {
		t.Fatalf("unexpected kind %q", got.Kind)
	}
}

func TestRegisterPlaceholderDoesNotOverwrite(t *testing.T) {
	reg := NewRegistry()
	reg.Fill("Id", &TypeModel{Kind: KindAlias, Name: "Id", Type: &TypeModel{Kind: KindNumber}})
	reg.RegisterPlaceholder("Id")

	if got := reg.Get("Id"); got.Kind != KindAlias {
		t.Fatalf("placeholder overwrote a filled entry, kind = %q", got.Kind)
	}
}

func TestNamesSorted(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		reg.RegisterPlaceholder(name)
	}

	names := reg.Names()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	if len(names) != 3 {
		t.Fatalf("expected 3 names, got %v", names)
	}
}

func TestVerifyCleanGraph(t *testing.T) {
	reg := NewRegistry()
	reg.Fill("User", &TypeModel{
		Kind: KindInterface,
		Name: "User",
		Props: []Prop{
			{Name: "id", Type: TypeModel{Kind: KindNumber}},
			{Name: "friends", Type: TypeModel{Kind: KindRef, RefName: "User"}},
		},
	})

	if err := reg.Verify(); err != nil {
		t.Fatalf("unexpected verification error: %v", err)
	}
}

func TestVerifyUnfilledPlaceholder(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterPlaceholder("Ghost")

	err := reg.Verify()
	if err == nil {
		t.Fatal("expected error for unfilled placeholder")
	}
	if !strings.Contains(err.Error(), "Ghost") {
		t.Fatalf("error does not name the placeholder: %v", err)
	}
}

func TestVerifyDanglingRef(t *testing.T) {
	reg := NewRegistry()
	// A ref constructed by hand, bypassing Resolve, points nowhere.
	reg.Fill("Order", &TypeModel{
		Kind: KindInterface,
		Name: "Order",
		Props: []Prop{
			{Name: "customer", Type: TypeModel{Kind: KindRef, RefName: "Customer"}},
		},
	})

	err := reg.Verify()
	if err == nil {
		t.Fatal("expected error for dangling ref")
	}
	if !strings.Contains(err.Error(), "Customer") {
		t.Fatalf("error does not name the dangling ref: %v", err)
	}
}

func TestVerifyTypeParameterRefsAreBound(t *testing.T) {
	reg := NewRegistry()
	// interface Box<T> { value: T } — T is lexically bound, not a registry name.
	reg.Fill("Box", &TypeModel{
		Kind: KindInterface,
		Name: "Box",
		TypeParameters: []TypeParameter{
			{Name: TypeModel{Kind: KindRef, RefName: "T"}},
		},
		Props: []Prop{
			{Name: "value", Type: TypeModel{Kind: KindRef, RefName: "T"}},
		},
	})

	if err := reg.Verify(); err != nil {
		t.Fatalf("type parameter flagged as dangling: %v", err)
	}
}

func TestVerifyMappedVariableIsBound(t *testing.T) {
	reg := NewRegistry()
	reg.Fill("Keys", &TypeModel{
		Kind: KindAlias,
		Name: "Keys",
		Type: &TypeModel{Kind: KindUnion, Types: []TypeModel{
			{Kind: KindLiteral, Value: "a"},
			{Kind: KindLiteral, Value: "b"},
		}},
	})
	// { [K in Keys]?: K }
	reg.Fill("Partialish", &TypeModel{
		Kind: KindInterface,
		Name: "Partialish",
		Mapped: &Mapped{
			TypeParameter: "K",
			Constraint:    &TypeModel{Kind: KindRef, RefName: "Keys"},
			Optional:      true,
			Type:          &TypeModel{Kind: KindRef, RefName: "K"},
		},
	})

	if err := reg.Verify(); err != nil {
		t.Fatalf("mapped variable flagged as dangling: %v", err)
	}
}

func TestVerifyInferNameIsBound(t *testing.T) {
	reg := NewRegistry()
	// type Elem<A> = A extends (infer E)[] ? E : never
	reg.Fill("Elem", &TypeModel{
		Kind: KindAlias,
		Name: "Elem",
		TypeParameters: []TypeParameter{
			{Name: TypeModel{Kind: KindRef, RefName: "A"}},
		},
		Type: &TypeModel{
			Kind:      KindConditional,
			CheckType: &TypeModel{Kind: KindRef, RefName: "A"},
			ExtendsType: &TypeModel{Kind: KindRef, RefName: "Array", TypeArguments: []TypeModel{
				{Kind: KindInfer, Name: "E"},
			}},
			TrueType:  &TypeModel{Kind: KindRef, RefName: "E"},
			FalseType: &TypeModel{Kind: KindNever},
		},
	})
	reg.Fill("Array", &TypeModel{Kind: KindInterface, Name: "Array"})

	if err := reg.Verify(); err != nil {
		t.Fatalf("infer variable flagged as dangling: %v", err)
	}
}

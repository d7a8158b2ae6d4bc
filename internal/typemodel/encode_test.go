package typemodel

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func graphFixture() *Registry {
	reg := NewRegistry()
	reg.Fill("Status", &TypeModel{
		Kind: KindAlias,
		Name: "Status",
		Type: &TypeModel{Kind: KindUnion, Types: []TypeModel{
			{Kind: KindLiteral, Value: "active"},
			{Kind: KindLiteral, Value: "archived"},
		}},
	})
	reg.Fill("User", &TypeModel{
		Kind: KindInterface,
		Name: "User",
		Props: []Prop{
			{Name: "id", ID: 1, Type: TypeModel{Kind: KindNumber}},
			{Name: "status", ID: 2, Type: TypeModel{Kind: KindRef, RefName: "Status"}},
		},
	})
	return reg
}

func TestEncodeShape(t *testing.T) {
	var buf bytes.Buffer
	if err := graphFixture().Encode(&buf, false); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	var doc struct {
		Types map[string]json.RawMessage `json:"types"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(doc.Types) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(doc.Types))
	}
	if _, ok := doc.Types["User"]; !ok {
		t.Fatal("missing User entry")
	}
	if _, ok := doc.Types["Status"]; !ok {
		t.Fatal("missing Status entry")
	}
}

func TestEncodeDeterministic(t *testing.T) {
	var first, second bytes.Buffer
	if err := graphFixture().Encode(&first, false); err != nil {
		t.Fatal(err)
	}
	if err := graphFixture().Encode(&second, false); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatalf("output not deterministic:\n%s\nvs\n%s", first.String(), second.String())
	}

	// Entries are written in sorted name order.
	out := first.String()
	if strings.Index(out, `"Status"`) > strings.Index(out, `"User"`) {
		t.Fatalf("entries not in sorted order:\n%s", out)
	}
}

func TestEncodeOmitsZeroFields(t *testing.T) {
	reg := NewRegistry()
	reg.Fill("Id", &TypeModel{Kind: KindAlias, Name: "Id", Type: &TypeModel{Kind: KindNumber}})

	var buf bytes.Buffer
	if err := reg.Encode(&buf, false); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, field := range []string{`"props"`, `"members"`, `"typeParameters"`, `"optional"`, `"doc"`} {
		if strings.Contains(out, field) {
			t.Fatalf("zero-valued field %s leaked into output:\n%s", field, out)
		}
	}
}

func TestEncodeExternalNeverSerialized(t *testing.T) {
	reg := NewRegistry()
	reg.Fill("Base", &TypeModel{Kind: KindInterface, Name: "Base"})
	ref := reg.Resolve("Base", nil, struct{ live string }{"checker-type"})
	reg.Fill("Derived", &TypeModel{
		Kind:    KindInterface,
		Name:    "Derived",
		Extends: []TypeModel{ref},
	})

	var buf bytes.Buffer
	if err := reg.Encode(&buf, false); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if strings.Contains(out, "checker-type") || strings.Contains(strings.ToLower(out), "external") {
		t.Fatalf("External handle leaked into output:\n%s", out)
	}
}

func TestEncodePretty(t *testing.T) {
	var buf bytes.Buffer
	if err := graphFixture().Encode(&buf, true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Fatalf("expected indented output:\n%s", buf.String())
	}
}

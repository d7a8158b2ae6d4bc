package typemodel

import (
	"fmt"
	"sort"
	"strings"
)

// Registry maps canonical names to type-model nodes. A name is present from
// the moment any reference to it is first requested, even before its body is
// computed — the placeholder is what terminates recursive and mutually
// referential types. One Registry is scoped to one extraction run; it is not
// safe for concurrent mutation.
type Registry struct {
	entries map[string]*TypeModel
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*TypeModel)}
}

// placeholder is the body of a name that has been registered but not yet
// filled. Kind is left empty so a placeholder is distinguishable from any
// real node.
func placeholder() *TypeModel { return &TypeModel{} }

// Has reports whether name is present, as a placeholder or filled.
func (r *Registry) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// RegisterPlaceholder inserts an empty placeholder for name if absent.
// Idempotent: an existing entry (placeholder or filled) is left alone.
func (r *Registry) RegisterPlaceholder(name string) {
	if _, ok := r.entries[name]; !ok {
		r.entries[name] = placeholder()
	}
}

// Fill overwrites the entry for name with the fully built node. The entry
// pointer is kept stable so refs handed out while the placeholder was live
// observe the filled body.
func (r *Registry) Fill(name string, node *TypeModel) {
	entry, ok := r.entries[name]
	if !ok {
		entry = placeholder()
		r.entries[name] = entry
	}
	*entry = *node
}

// Resolve returns a ref node pointing at name, placeholder-registering the
// name if it was never seen. external optionally carries the live checker
// type the ref stands for (used transiently for inherited-member lookups).
func (r *Registry) Resolve(name string, typeArguments []TypeModel, external any) TypeModel {
	r.RegisterPlaceholder(name)
	return TypeModel{
		Kind:          KindRef,
		RefName:       name,
		TypeArguments: typeArguments,
		External:      external,
	}
}

// Get returns the node registered under name, or nil. A still-unfilled
// placeholder is returned as a node with empty Kind.
func (r *Registry) Get(name string) *TypeModel {
	return r.entries[name]
}

// Len returns the number of registered names.
func (r *Registry) Len() int { return len(r.entries) }

// Names returns all registered names sorted, for deterministic output.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Verify checks the completed graph: every name must be filled and every
// ref reachable from a registered node must resolve to an entry. Dangling
// refs and leftover placeholders are defects in the extraction run.
func (r *Registry) Verify() error {
	var problems []string

	for _, name := range r.Names() {
		if r.entries[name].Kind == "" {
			problems = append(problems, fmt.Sprintf("entry %q was registered but never filled", name))
		}
	}

	seen := make(map[string]bool)
	for _, name := range r.Names() {
		entry := r.entries[name]
		// Type parameters (and mapped/infer variables) are lexically bound
		// inside their declaring entry; refs to them do not point into the
		// registry.
		bound := make(map[string]bool)
		r.walkRefs(entry, func(string) {}, bound)
		r.walkRefs(entry, func(refName string) {
			if !r.Has(refName) && !bound[refName] && !seen[refName] {
				seen[refName] = true
				problems = append(problems, fmt.Sprintf("dangling ref %q", refName))
			}
		}, bound)
	}

	if len(problems) > 0 {
		return fmt.Errorf("type graph verification failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

// walkRefs visits every ref name reachable from node without following the
// refs themselves (registry entries are visited once by the caller). Names
// introduced by type parameters, mapped types and infer nodes are recorded
// in bound.
func (r *Registry) walkRefs(node *TypeModel, visit func(refName string), bound map[string]bool) {
	if node == nil {
		return
	}
	if node.Kind == KindRef {
		visit(node.RefName)
	}
	if node.Kind == KindInfer && node.Name != "" {
		bound[node.Name] = true
	}
	for i := range node.Types {
		r.walkRefs(&node.Types[i], visit, bound)
	}
	for i := range node.TypeArguments {
		r.walkRefs(&node.TypeArguments[i], visit, bound)
	}
	for i := range node.Extends {
		r.walkRefs(&node.Extends[i], visit, bound)
	}
	for i := range node.Implements {
		r.walkRefs(&node.Implements[i], visit, bound)
	}
	for i := range node.Props {
		r.walkRefs(&node.Props[i].Type, visit, bound)
	}
	for i := range node.Statics {
		r.walkRefs(&node.Statics[i].Type, visit, bound)
	}
	for i := range node.Indexes {
		r.walkRefs(&node.Indexes[i].Type, visit, bound)
	}
	for i := range node.Calls {
		r.walkSignatureRefs(&node.Calls[i], visit, bound)
	}
	for i := range node.Ctors {
		r.walkSignatureRefs(&node.Ctors[i], visit, bound)
	}
	for i := range node.TypeParameters {
		r.walkTypeParameterRefs(&node.TypeParameters[i], visit, bound)
	}
	if node.Signature != nil {
		r.walkSignatureRefs(node.Signature, visit, bound)
	}
	if node.Mapped != nil {
		bound[node.Mapped.TypeParameter] = true
		r.walkRefs(node.Mapped.Constraint, visit, bound)
		r.walkRefs(node.Mapped.Type, visit, bound)
	}
	r.walkRefs(node.Object, visit, bound)
	r.walkRefs(node.Index, visit, bound)
	r.walkRefs(node.Type, visit, bound)
	r.walkRefs(node.CheckType, visit, bound)
	r.walkRefs(node.ExtendsType, visit, bound)
	r.walkRefs(node.TrueType, visit, bound)
	r.walkRefs(node.FalseType, visit, bound)
}

func (r *Registry) walkSignatureRefs(sig *Signature, visit func(refName string), bound map[string]bool) {
	for i := range sig.TypeParameters {
		r.walkTypeParameterRefs(&sig.TypeParameters[i], visit, bound)
	}
	for i := range sig.Parameters {
		r.walkRefs(&sig.Parameters[i].Type, visit, bound)
	}
	r.walkRefs(sig.ReturnType, visit, bound)
}

func (r *Registry) walkTypeParameterRefs(tp *TypeParameter, visit func(refName string), bound map[string]bool) {
	// The name is a self-referential ref by construction; it binds the
	// parameter name rather than pointing into the registry.
	if tp.Name.RefName != "" {
		bound[tp.Name.RefName] = true
	}
	r.walkRefs(tp.Constraint, visit, bound)
	r.walkRefs(tp.Default, visit, bound)
}

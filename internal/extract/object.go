package extract

import (
	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"

	"github.com/tsgraph/tsgraph/internal/modules"
	"github.com/tsgraph/tsgraph/internal/typemodel"
)

// buildNamed builds the registry body for a named type symbol. Bundled-lib
// types stay opaque: their structure is well known to every consumer and
// walking them would pull half the standard library into the graph.
func (e *Extractor) buildNamed(sym *ast.Symbol, name string) *typemodel.TypeModel {
	if origin, _ := e.originOf(sym); origin == modules.OriginDefaultLib {
		return &typemodel.TypeModel{Kind: typemodel.KindInterface, Name: name}
	}
	if decl := declarationOf(sym); decl != nil && decl.Kind == ast.KindEnumDeclaration {
		return e.buildEnum(decl, name)
	}
	return e.buildObjectShape(sym, name)
}

// buildObjectShape builds an interface or class node from the symbol's
// declared type. The declared (uninstantiated) body is what gets
// registered; instantiations only differ in the type arguments their refs
// carry.
func (e *Extractor) buildObjectShape(sym *ast.Symbol, name string) *typemodel.TypeModel {
	decl := declarationOf(sym)
	declared := shimchecker.Checker_getDeclaredTypeOfSymbol(e.checker, sym)

	node := &typemodel.TypeModel{Kind: typemodel.KindInterface, Name: name}
	isClass := decl != nil && decl.Kind == ast.KindClassDeclaration
	if isClass {
		node.Kind = typemodel.KindClass
	}
	if decl != nil {
		node.Doc = docComment(decl)
		node.TypeParameters = e.typeParameters(typeParameterDecls(decl))
		node.Extends, node.Implements = e.heritageEdges(decl)

		// A mapped-type body replaces the member list entirely.
		if mappedNode := mappedDeclOf(sym, declared); mappedNode != nil {
			node.Mapped = e.mappedDescriptor(mappedNode)
			return node
		}
	}

	inherited := make(map[uint64]bool)
	e.inheritedMemberIDs(node.Extends, inherited)
	e.inheritedMemberIDs(node.Implements, inherited)

	node.Props = e.buildProps(declared, inherited, false)
	node.Indexes = e.buildIndexes(declared, decl, node.Extends)
	node.Calls = e.buildCallSignatures(decl)

	if isClass {
		node.Ctors = e.buildConstructors(decl)
		node.Statics = e.buildStatics(sym)
	}
	return node
}

// buildAnonymousObject inlines a structurally anonymous object type.
func (e *Extractor) buildAnonymousObject(t *shimchecker.Type) typemodel.TypeModel {
	sym := t.Symbol()
	decl := declarationOf(sym)

	// Mapped types surface as anonymous objects carrying the mapped flag.
	if mappedNode := mappedDeclOf(sym, t); mappedNode != nil {
		return typemodel.TypeModel{Kind: typemodel.KindInterface, Mapped: e.mappedDescriptor(mappedNode)}
	}

	// Pure function types become a function node instead of an empty shape.
	callSigs := shimchecker.Checker_getSignaturesOfType(e.checker, t, shimchecker.SignatureKindCall)
	props := shimchecker.Checker_getPropertiesOfType(e.checker, t)
	if len(callSigs) > 0 && len(props) == 0 {
		if sig, err := e.signatureFromDecl(decl); err == nil {
			return typemodel.TypeModel{Kind: typemodel.KindFunction, Signature: sig}
		}
		return e.unsupported(decl, "function type without a usable signature declaration")
	}

	node := typemodel.TypeModel{Kind: typemodel.KindInterface}
	node.Props = e.buildProps(t, nil, false)
	node.Indexes = e.buildIndexes(t, decl, nil)
	node.Calls = e.buildCallSignatures(decl)
	return node
}

// buildProps builds the own-member list of an object type, skipping every
// property whose symbol identity appears in inherited. getPropertiesOfType
// flattens the full inheritance chain, so the exclusion set is what makes
// the list "own" — and it is diamond safe, because a member reached twice
// still has one symbol id.
func (e *Extractor) buildProps(t *shimchecker.Type, inherited map[uint64]bool, static bool) []typemodel.Prop {
	if t == nil {
		return nil
	}
	var out []typemodel.Prop
	for _, propSym := range shimchecker.Checker_getPropertiesOfType(e.checker, t) {
		if static && propSym.Name == "prototype" {
			continue
		}
		id := uint64(ast.GetSymbolId(propSym))
		if inherited[id] {
			continue
		}
		out = append(out, e.buildProp(propSym, id, static))
	}
	return out
}

func (e *Extractor) buildProp(sym *ast.Symbol, id uint64, static bool) typemodel.Prop {
	propType := shimchecker.Checker_getTypeOfSymbol(e.checker, sym)
	p := typemodel.Prop{
		Name:     sym.Name,
		ID:       id,
		Optional: sym.Flags&ast.SymbolFlagsOptional != 0,
		Type:     e.walkType(propType),
	}
	if static {
		p.Modifiers = append(p.Modifiers, "static")
	}
	if shimchecker.Checker_isReadonlySymbol(e.checker, sym) {
		p.Modifiers = append(p.Modifiers, "readonly")
	}
	if sym.ValueDeclaration != nil {
		p.Doc = docComment(sym.ValueDeclaration)
		p.Modifiers = append(p.Modifiers, accessModifiers(sym.ValueDeclaration)...)
	}
	return p
}

// accessModifiers collects declaration-level access modifiers in source
// order.
func accessModifiers(decl *ast.Node) []string {
	mods := decl.Modifiers()
	if mods == nil {
		return nil
	}
	var out []string
	for _, m := range mods.Nodes {
		switch m.Kind {
		case ast.KindPrivateKeyword:
			out = append(out, "private")
		case ast.KindProtectedKeyword:
			out = append(out, "protected")
		case ast.KindPublicKeyword:
			out = append(out, "public")
		case ast.KindAbstractKeyword:
			out = append(out, "abstract")
		}
	}
	return out
}

// heritageEdges walks the declaration's heritage clauses into extends and
// implements edges. Each edge is a ref; when classification of the
// heritage type yields anything else (structurally anonymous base), a ref
// is synthesized under the written identifier so the inheritance chain
// stays navigable.
func (e *Extractor) heritageEdges(decl *ast.Node) (extends, implements []typemodel.TypeModel) {
	clauses := heritageClausesOf(decl)
	if clauses == nil {
		return nil, nil
	}
	for _, clauseNode := range clauses.Nodes {
		clause := clauseNode.AsHeritageClause()
		for _, typeNode := range clause.Types.Nodes {
			edge := e.heritageRef(typeNode)
			if clause.Token == ast.KindImplementsKeyword {
				implements = append(implements, edge)
			} else {
				extends = append(extends, edge)
			}
		}
	}
	return extends, implements
}

func (e *Extractor) heritageRef(typeNode *ast.Node) typemodel.TypeModel {
	t := shimchecker.Checker_getTypeFromTypeNode(e.checker, typeNode)
	edge := e.walkType(t)
	if edge.Kind == typemodel.KindRef {
		return edge
	}

	expr := typeNode.AsExpressionWithTypeArguments().Expression
	if expr == nil || expr.Kind != ast.KindIdentifier {
		return edge
	}
	name := expr.Text()
	if !e.registry.Has(name) {
		e.registry.RegisterPlaceholder(name)
		body := edge
		body.Name = name
		e.registry.Fill(name, &body)
	}
	return e.registry.Resolve(name, nil, t)
}

// inheritedMemberIDs accumulates the symbol identities of every member
// reachable through the given heritage edges. External handles are
// preferred — the live instantiated base answers through the checker, which
// survives the symbol cloning generic instantiation performs. Registered
// bases without a handle contribute their props recursively.
func (e *Extractor) inheritedMemberIDs(edges []typemodel.TypeModel, ids map[uint64]bool) {
	for _, edge := range edges {
		if edge.Kind != typemodel.KindRef {
			continue
		}
		if base, ok := edge.External.(*shimchecker.Type); ok && base != nil {
			for _, propSym := range shimchecker.Checker_getPropertiesOfType(e.checker, base) {
				ids[uint64(ast.GetSymbolId(propSym))] = true
			}
			continue
		}
		entry := e.registry.Get(edge.RefName)
		if entry == nil {
			continue
		}
		for _, p := range entry.Props {
			ids[p.ID] = true
		}
		e.inheritedMemberIDs(entry.Extends, ids)
		e.inheritedMemberIDs(entry.Implements, ids)
	}
}

// buildIndexes turns the type's index infos into index members, suppressing
// infos inherited unchanged from a base (the checker shares the info value
// between base and derived in that case). The synthesized parameter keeps
// the name written in the index signature declaration when one exists.
func (e *Extractor) buildIndexes(t *shimchecker.Type, decl *ast.Node, extends []typemodel.TypeModel) []typemodel.IndexSignature {
	if t == nil {
		return nil
	}
	infos := shimchecker.Checker_getIndexInfosOfType(e.checker, t)
	if len(infos) == 0 {
		return nil
	}

	inherited := make(map[any]bool)
	for _, edge := range extends {
		base, ok := edge.External.(*shimchecker.Type)
		if !ok || base == nil {
			continue
		}
		for _, info := range shimchecker.Checker_getIndexInfosOfType(e.checker, base) {
			inherited[info] = true
		}
	}

	paramNames := indexParameterNames(decl)

	var out []typemodel.IndexSignature
	for _, info := range infos {
		if inherited[info] {
			continue
		}
		key := e.walkType(shimchecker.IndexInfo_keyType(info))
		value := e.walkType(shimchecker.IndexInfo_valueType(info))
		paramName := paramNames[string(key.Kind)]
		if paramName == "" {
			paramName = "key"
		}
		out = append(out, typemodel.IndexSignature{
			Parameter: typemodel.Parameter{Name: paramName, Type: key},
			Type:      value,
		})
	}
	return out
}

// indexParameterNames maps the key kind ("string"/"number") of each index
// signature declared on the node to its written parameter name.
func indexParameterNames(decl *ast.Node) map[string]string {
	members := memberDeclsOf(decl)
	if members == nil {
		return nil
	}
	out := make(map[string]string)
	for _, member := range members.Nodes {
		if member.Kind != ast.KindIndexSignature {
			continue
		}
		params := member.AsIndexSignatureDeclaration().Parameters
		if params == nil || len(params.Nodes) == 0 {
			continue
		}
		param := params.Nodes[0].AsParameterDeclaration()
		if param.Type == nil {
			continue
		}
		switch param.Type.Kind {
		case ast.KindStringKeyword:
			out["string"] = param.Name().Text()
		case ast.KindNumberKeyword:
			out["number"] = param.Name().Text()
		}
	}
	return out
}

// buildCallSignatures extracts call-signature members from the declaration
// body. Signatures come from syntax rather than the checker so parameter
// names, optionality and rest markers match the source.
func (e *Extractor) buildCallSignatures(decl *ast.Node) []typemodel.Signature {
	members := memberDeclsOf(decl)
	if members == nil {
		return nil
	}
	var out []typemodel.Signature
	for _, member := range members.Nodes {
		if member.Kind != ast.KindCallSignature {
			continue
		}
		sig, err := e.signatureFromDecl(member)
		if err != nil {
			e.unsupported(member, "call signature skipped: %v", err)
			continue
		}
		out = append(out, *sig)
	}
	return out
}

// buildConstructors extracts constructor signatures from a class body.
func (e *Extractor) buildConstructors(decl *ast.Node) []typemodel.Signature {
	members := memberDeclsOf(decl)
	if members == nil {
		return nil
	}
	var out []typemodel.Signature
	for _, member := range members.Nodes {
		if member.Kind != ast.KindConstructor {
			continue
		}
		sig, err := e.signatureFromDecl(member)
		if err != nil {
			e.unsupported(member, "constructor skipped: %v", err)
			continue
		}
		out = append(out, *sig)
	}
	return out
}

// buildStatics collects the static side of a class: the properties of the
// constructor-function type, minus the prototype marker.
func (e *Extractor) buildStatics(classSym *ast.Symbol) []typemodel.Prop {
	staticType := shimchecker.Checker_getTypeOfSymbol(e.checker, classSym)
	return e.buildProps(staticType, nil, true)
}

// mappedDeclOf returns the mapped-type node behind sym/t, or nil.
func mappedDeclOf(sym *ast.Symbol, t *shimchecker.Type) *ast.Node {
	if t != nil && shimchecker.Type_objectFlags(t)&shimchecker.ObjectFlagsMapped == 0 {
		return nil
	}
	decl := declarationOf(sym)
	if decl != nil && decl.Kind == ast.KindMappedType {
		return decl
	}
	return nil
}

// mappedDescriptor captures a mapped type's shape from its syntax.
func (e *Extractor) mappedDescriptor(node *ast.Node) *typemodel.Mapped {
	m := node.AsMappedTypeNode()
	tp := m.TypeParameter.AsTypeParameterDeclaration()
	d := &typemodel.Mapped{TypeParameter: tp.Name().Text()}
	if tp.Constraint != nil {
		c := e.walkTypeNode(tp.Constraint)
		d.Constraint = &c
	}
	d.Optional = m.QuestionToken != nil
	d.Readonly = m.ReadonlyToken != nil
	if m.Type != nil {
		v := e.walkTypeNode(m.Type)
		d.Type = &v
	}
	return d
}

// heritageClausesOf returns the heritage clause list of a declaration.
func heritageClausesOf(decl *ast.Node) *ast.NodeList {
	switch decl.Kind {
	case ast.KindInterfaceDeclaration:
		return decl.AsInterfaceDeclaration().HeritageClauses
	case ast.KindClassDeclaration:
		return decl.AsClassDeclaration().HeritageClauses
	default:
		return nil
	}
}

// memberDeclsOf returns the member list of an object-shaped declaration.
func memberDeclsOf(decl *ast.Node) *ast.NodeList {
	if decl == nil {
		return nil
	}
	switch decl.Kind {
	case ast.KindInterfaceDeclaration:
		return decl.AsInterfaceDeclaration().Members
	case ast.KindClassDeclaration:
		return decl.AsClassDeclaration().Members
	case ast.KindTypeLiteral:
		return decl.AsTypeLiteralNode().Members
	default:
		return nil
	}
}

// Package extract converts checker types into the serializable type graph:
// one registry entry per named type, refs for every edge between them, and
// inline nodes for everything structural. Cycle termination is the
// registry's job — a name is present from its first reference, so the
// walker never counts depth.
package extract

import (
	"fmt"

	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"

	"github.com/tsgraph/tsgraph/internal/diagnostic"
	"github.com/tsgraph/tsgraph/internal/modules"
	"github.com/tsgraph/tsgraph/internal/typemodel"
)

// anonymousDefaultName is the synthesized registry name for anonymous
// default exports (`export default class { }`, expression exports).
const anonymousDefaultName = "__default"

// Extractor drives one extraction run: it owns the registry, the naming
// resolver and the diagnostics of the run. Single-threaded, depth-first.
type Extractor struct {
	checker  *shimchecker.Checker
	registry *typemodel.Registry
	resolver *modules.Resolver
	diags    *diagnostic.Collector

	// typeIDs maps the checker identity of alias-resolved anonymous types
	// to their registered name, so later semantic encounters of the same
	// type short-circuit to a ref instead of re-inlining the body.
	typeIDs map[shimchecker.TypeId]string
}

// New creates an extractor bound to one checker and one diagnostics
// collector.
func New(checker *shimchecker.Checker, diags *diagnostic.Collector) *Extractor {
	return &Extractor{
		checker:  checker,
		registry: typemodel.NewRegistry(),
		resolver: modules.NewResolver(),
		diags:    diags,
		typeIDs:  make(map[shimchecker.TypeId]string),
	}
}

// Registry returns the type graph accumulated so far.
func (e *Extractor) Registry() *typemodel.Registry { return e.registry }

// ExtractSourceFile walks every exported top-level declaration of the file
// into registry roots. Roots fail independently: a hard failure in one is
// reported and the rest of the file still extracts.
func (e *Extractor) ExtractSourceFile(sf *ast.SourceFile) {
	for _, stmt := range sf.Statements.Nodes {
		switch {
		case stmt.Kind == ast.KindExportAssignment, stmt.Kind == ast.KindExportDeclaration:
			// Handled below; these carry no export modifier.
		case !isExported(stmt):
			continue
		}
		name, err := e.extractRoot(stmt)
		if err != nil {
			e.diags.Error(diagnostic.CategoryRootFailed, sf.FileName(), 0,
				fmt.Sprintf("extracting %q: %v", name, err))
		}
	}
}

func (e *Extractor) extractRoot(stmt *ast.Node) (string, error) {
	switch stmt.Kind {
	case ast.KindTypeAliasDeclaration:
		decl := stmt.AsTypeAliasDeclaration()
		return decl.Name().Text(), e.extractAlias(decl)
	case ast.KindInterfaceDeclaration:
		return e.extractNamedDeclaration(stmt, stmt.AsInterfaceDeclaration().Name())
	case ast.KindClassDeclaration:
		return e.extractClass(stmt)
	case ast.KindEnumDeclaration:
		return e.extractNamedDeclaration(stmt, stmt.AsEnumDeclaration().Name())
	case ast.KindFunctionDeclaration:
		return e.extractFunction(stmt)
	case ast.KindVariableStatement:
		return "var", e.extractVariables(stmt)
	case ast.KindExportAssignment:
		return typemodel.DefaultEntry, e.extractDefaultExport(stmt)
	case ast.KindExportDeclaration:
		return "export", e.extractExportList(stmt)
	default:
		return "", nil
	}
}

// extractAlias registers an alias root: declared type parameters plus the
// aliased node, walked syntactically so conditional, mapped and operator
// forms keep their structure.
func (e *Extractor) extractAlias(decl *ast.TypeAliasDeclaration) error {
	name := decl.Name().Text()
	if e.registry.Has(name) {
		return nil
	}
	e.registry.RegisterPlaceholder(name)

	// Record the resolved type's identity before walking the body: a
	// self-referential alias to an anonymous shape hands the walker the
	// same checker type again, and the cached name turns that into a ref
	// instead of infinite descent.
	t := shimchecker.Checker_getTypeFromTypeNode(e.checker, decl.Type)
	if t != nil {
		if _, taken := e.typeIDs[t.Id()]; !taken {
			e.typeIDs[t.Id()] = name
		}
	}

	node := typemodel.TypeModel{
		Kind:           typemodel.KindAlias,
		Name:           name,
		Doc:            docComment(decl.AsNode()),
		TypeParameters: e.typeParameters(decl.TypeParameters),
	}

	// The top-level body must not short-circuit on its own cache entry;
	// only nested self-references resolve to the ref.
	bodyNode := decl.Type
	for bodyNode != nil && bodyNode.Kind == ast.KindParenthesizedType {
		bodyNode = bodyNode.AsParenthesizedTypeNode().Type
	}
	var aliased typemodel.TypeModel
	switch {
	case bodyNode == nil:
		aliased = e.unsupported(decl.AsNode(), "alias %q has no type body", name)
	case syntacticTypeNode(bodyNode):
		aliased = e.walkTypeNode(bodyNode)
	case t != nil:
		aliased = e.walkTypeBody(t, name)
	default:
		aliased = e.unsupported(bodyNode, "alias %q has no resolvable type", name)
	}
	node.Type = &aliased
	e.registry.Fill(name, &node)
	return nil
}

// extractNamedDeclaration registers an interface or enum root through the
// shared named-type path.
func (e *Extractor) extractNamedDeclaration(stmt *ast.Node, nameNode *ast.Node) (string, error) {
	name := nameNode.Text()
	sym := e.checker.GetSymbolAtLocation(nameNode)
	if sym == nil {
		return name, fmt.Errorf("no symbol for declaration %q", name)
	}
	e.ensureNamed(sym, e.externalName(sym, name))
	if hasDefaultModifier(stmt) {
		e.fillDefaultRoot(name)
	}
	return name, nil
}

func (e *Extractor) extractClass(stmt *ast.Node) (string, error) {
	decl := stmt.AsClassDeclaration()
	if decl.Name() == nil {
		// Only legal as an anonymous default export.
		if !hasDefaultModifier(stmt) {
			return "", fmt.Errorf("class declaration has no name")
		}
		sym := e.checker.GetSymbolAtLocation(stmt)
		if sym == nil {
			return anonymousDefaultName, fmt.Errorf("no symbol for anonymous default class")
		}
		e.ensureNamed(sym, anonymousDefaultName)
		e.fillDefaultRoot(anonymousDefaultName)
		return anonymousDefaultName, nil
	}
	return e.extractNamedDeclaration(stmt, decl.Name())
}

// ensureNamed builds and fills the registry entry for a named type symbol
// if absent. The presence check makes repeated exports and cross-file
// rediscovery idempotent.
func (e *Extractor) ensureNamed(sym *ast.Symbol, name string) {
	if e.registry.Has(name) {
		return
	}
	e.registry.RegisterPlaceholder(name)
	e.registry.Fill(name, e.buildNamed(sym, name))
}

// extractFunction registers a function root from its declaration syntax.
// A missing parameter type (with no initializer) is fatal for this root.
func (e *Extractor) extractFunction(stmt *ast.Node) (string, error) {
	decl := stmt.AsFunctionDeclaration()
	name := anonymousDefaultName
	if decl.Name() != nil {
		name = decl.Name().Text()
	}
	if e.registry.Has(name) {
		return name, nil
	}

	sig, err := e.buildSignature(decl.TypeParameters, decl.Parameters, decl.Type)
	if err != nil {
		return name, err
	}
	e.registry.RegisterPlaceholder(name)
	e.registry.Fill(name, &typemodel.TypeModel{
		Kind:      typemodel.KindFunction,
		Name:      name,
		Signature: sig,
		Doc:       docComment(stmt),
	})
	if hasDefaultModifier(stmt) {
		e.fillDefaultRoot(name)
	}
	return name, nil
}

// extractVariables registers one const root per declared variable. The
// explicit annotation wins; without one the initializer's resolved type
// stands in, and having neither is fatal for the root.
func (e *Extractor) extractVariables(stmt *ast.Node) error {
	declList := stmt.AsVariableStatement().DeclarationList.AsVariableDeclarationList()
	for _, dn := range declList.Declarations.Nodes {
		decl := dn.AsVariableDeclaration()
		name := decl.Name().Text()
		if e.registry.Has(name) {
			continue
		}

		var typed typemodel.TypeModel
		switch {
		case decl.Type != nil:
			typed = e.walkTypeNode(decl.Type)
		case decl.Initializer != nil:
			sym := e.checker.GetSymbolAtLocation(decl.Name())
			if sym == nil {
				return fmt.Errorf("variable %q has no resolvable symbol", name)
			}
			typed = e.walkType(shimchecker.Checker_getTypeOfSymbol(e.checker, sym))
		default:
			return fmt.Errorf("variable %q has neither type annotation nor initializer", name)
		}

		e.registry.RegisterPlaceholder(name)
		e.registry.Fill(name, &typemodel.TypeModel{
			Kind: typemodel.KindConst,
			Name: name,
			Type: &typed,
			Doc:  docComment(dn),
		})
	}
	return nil
}

// extractDefaultExport handles `export default <expr>`. An identifier
// export builds the named entry it points at; other expressions register
// under the synthesized name when the checker can type them.
func (e *Extractor) extractDefaultExport(stmt *ast.Node) error {
	expr := stmt.AsExportAssignment().Expression
	if expr == nil {
		return fmt.Errorf("export assignment has no expression")
	}

	if expr.Kind == ast.KindIdentifier {
		name := expr.Text()
		sym := e.checker.GetSymbolAtLocation(expr)
		if sym == nil {
			return fmt.Errorf("default export %q has no symbol", name)
		}
		if err := e.buildRootFor(sym, name); err != nil {
			return err
		}
		e.fillDefaultRoot(name)
		return nil
	}

	// Expression exports still produce a default root. When the checker
	// cannot hand back a symbol for the expression the entry degrades to
	// unidentified instead of vanishing.
	var typed typemodel.TypeModel
	if sym := e.checker.GetSymbolAtLocation(expr); sym != nil {
		typed = e.walkType(shimchecker.Checker_getTypeOfSymbol(e.checker, sym))
	} else {
		typed = e.unsupported(expr, "default export expression is not extractable")
	}
	if !e.registry.Has(anonymousDefaultName) {
		e.registry.RegisterPlaceholder(anonymousDefaultName)
		e.registry.Fill(anonymousDefaultName, &typemodel.TypeModel{
			Kind: typemodel.KindConst,
			Name: anonymousDefaultName,
			Type: &typed,
		})
	}
	e.fillDefaultRoot(anonymousDefaultName)
	return nil
}

// extractExportList handles `export { A, B as C }` statements by resolving
// each specifier against the file's own top-level declarations. Targets
// register under their declared name. Re-exports are reported and skipped;
// the target module's own files carry their exports.
func (e *Extractor) extractExportList(stmt *ast.Node) error {
	decl := stmt.AsExportDeclaration()
	if decl.ModuleSpecifier != nil {
		e.diags.Info(diagnostic.CategoryUnsupportedConstruct, fileNameOf(stmt), 0,
			"re-export statement skipped; the source module's declarations extract where they are declared")
		return nil
	}
	if decl.ExportClause == nil || decl.ExportClause.Kind != ast.KindNamedExports {
		return nil
	}

	sf := ast.GetSourceFileOfNode(stmt)
	if sf == nil {
		return fmt.Errorf("export list has no source file")
	}
	for _, el := range decl.ExportClause.AsNamedExports().Elements.Nodes {
		spec := el.AsExportSpecifier()
		nameNode := spec.PropertyName
		if nameNode == nil {
			nameNode = spec.Name()
		}
		name := nameNode.Text()

		sym := e.localDeclarationSymbol(sf, name)
		if sym == nil {
			e.unsupported(el, "export list names %q but no top-level declaration matches", name)
			continue
		}
		if err := e.buildRootFor(sym, name); err != nil {
			return err
		}
	}
	return nil
}

// localDeclarationSymbol finds the symbol of a top-level declaration with
// the given name, looking through the file's own statements.
func (e *Extractor) localDeclarationSymbol(sf *ast.SourceFile, name string) *ast.Symbol {
	for _, stmt := range sf.Statements.Nodes {
		switch stmt.Kind {
		case ast.KindTypeAliasDeclaration, ast.KindInterfaceDeclaration,
			ast.KindClassDeclaration, ast.KindEnumDeclaration, ast.KindFunctionDeclaration:
			if nn := stmt.Name(); nn != nil && nn.Text() == name {
				return e.checker.GetSymbolAtLocation(nn)
			}
		case ast.KindVariableStatement:
			declList := stmt.AsVariableStatement().DeclarationList.AsVariableDeclarationList()
			for _, dn := range declList.Declarations.Nodes {
				if nn := dn.AsVariableDeclaration().Name(); nn != nil && nn.Text() == name {
					return e.checker.GetSymbolAtLocation(nn)
				}
			}
		}
	}
	return nil
}

func fileNameOf(node *ast.Node) string {
	if sf := ast.GetSourceFileOfNode(node); sf != nil {
		return sf.FileName()
	}
	return ""
}

// buildRootFor dispatches a symbol to the root builder matching its
// declaration, for names reached through a default export rather than
// their own exported statement.
func (e *Extractor) buildRootFor(sym *ast.Symbol, name string) error {
	decl := declarationOf(sym)
	if decl == nil {
		return fmt.Errorf("%q has no declaration", name)
	}
	switch decl.Kind {
	case ast.KindTypeAliasDeclaration:
		return e.extractAlias(decl.AsTypeAliasDeclaration())
	case ast.KindInterfaceDeclaration, ast.KindClassDeclaration, ast.KindEnumDeclaration:
		e.ensureNamed(sym, e.externalName(sym, name))
		return nil
	case ast.KindFunctionDeclaration:
		_, err := e.extractFunction(decl)
		return err
	case ast.KindVariableDeclaration:
		if decl.Parent != nil && decl.Parent.Parent != nil {
			return e.extractVariables(decl.Parent.Parent)
		}
		return fmt.Errorf("variable %q has no enclosing statement", name)
	default:
		return fmt.Errorf("%q: unsupported declaration kind %v", name, decl.Kind)
	}
}

// fillDefaultRoot registers the default root as a ref to the underlying
// entry.
func (e *Extractor) fillDefaultRoot(target string) {
	if e.registry.Has(typemodel.DefaultEntry) {
		return
	}
	e.registry.RegisterPlaceholder(typemodel.DefaultEntry)
	ref := e.registry.Resolve(target, nil, nil)
	e.registry.Fill(typemodel.DefaultEntry, &typemodel.TypeModel{
		Kind: typemodel.KindDefault,
		Type: &ref,
	})
}

// walkType dispatches a checker type: terminals, type parameters,
// composites, then object shapes; anything left resolves through its base
// constraint or degrades to unidentified.
func (e *Extractor) walkType(t *shimchecker.Type) typemodel.TypeModel {
	if t == nil {
		return e.unsupported(nil, "checker returned no type")
	}
	if name, ok := e.typeIDs[t.Id()]; ok {
		return e.registry.Resolve(name, nil, t)
	}
	return e.walkTypeUncached(t)
}

// walkTypeBody walks an alias body, ignoring a cache entry that names the
// alias itself.
func (e *Extractor) walkTypeBody(t *shimchecker.Type, self string) typemodel.TypeModel {
	if name, ok := e.typeIDs[t.Id()]; ok && name != self {
		return e.registry.Resolve(name, nil, t)
	}
	return e.walkTypeUncached(t)
}

func (e *Extractor) walkTypeUncached(t *shimchecker.Type) typemodel.TypeModel {
	if node, ok := e.classifyTerminal(t); ok {
		return node
	}
	if t.Flags()&shimchecker.TypeFlagsTypeParameter != 0 {
		return e.typeParameterRef(t)
	}
	if node, ok := e.combinator(t); ok {
		return node
	}
	if t.Flags()&shimchecker.TypeFlagsObject != 0 {
		return e.buildAnonymousObject(t)
	}
	if base := shimchecker.Checker_getBaseConstraintOfType(e.checker, t); base != nil && base != t {
		return e.walkType(base)
	}
	return e.unsupported(nil, "type with flags %v is not recognized", t.Flags())
}

// typeParameterRef resolves a type parameter to a lexically bound ref.
// These refs never touch the registry: the binding lives on the declaring
// node's TypeParameters list.
func (e *Extractor) typeParameterRef(t *shimchecker.Type) typemodel.TypeModel {
	sym := t.Symbol()
	if sym == nil || sym.Name == "" {
		return e.unsupported(nil, "type parameter without a symbol")
	}
	// An infer declaration reached semantically (e.g. as a type argument in
	// the extends branch) keeps its infer form so the name it introduces
	// stays bound.
	if decl := declarationOf(sym); decl != nil && decl.Parent != nil && decl.Parent.Kind == ast.KindInferType {
		return typemodel.TypeModel{Kind: typemodel.KindInfer, Name: sym.Name}
	}
	return typemodel.TypeModel{Kind: typemodel.KindRef, RefName: sym.Name}
}

// walkTypeNode walks a type from its syntax. The forms the checker eagerly
// evaluates (conditional types, indexed access, keyof, infer, mapped and
// function types) keep their declared structure here; everything else
// defers to the semantic walk.
func (e *Extractor) walkTypeNode(node *ast.Node) typemodel.TypeModel {
	if node == nil {
		return e.unsupported(nil, "missing type node")
	}
	switch node.Kind {
	case ast.KindConditionalType:
		return e.conditionalFromNode(node)
	case ast.KindIndexedAccessType:
		return e.indexedAccessFromNode(node)
	case ast.KindTypeOperator:
		return e.prefixFromNode(node)
	case ast.KindInferType:
		return e.inferFromNode(node)
	case ast.KindMappedType:
		return typemodel.TypeModel{Kind: typemodel.KindInterface, Mapped: e.mappedDescriptor(node)}
	case ast.KindFunctionType, ast.KindConstructorType:
		sig, err := e.signatureFromDecl(node)
		if err != nil {
			return e.unsupported(node, "function type: %v", err)
		}
		kind := typemodel.KindFunction
		if node.Kind == ast.KindConstructorType {
			kind = typemodel.KindConstructor
		}
		return typemodel.TypeModel{Kind: kind, Signature: sig}
	case ast.KindParenthesizedType:
		return e.walkTypeNode(node.AsParenthesizedTypeNode().Type)
	}
	return e.walkType(shimchecker.Checker_getTypeFromTypeNode(e.checker, node))
}

// conditionalFromNode builds a conditional node branch by branch. The
// extends branch is walked first so `infer` declarations read naturally in
// the output before their uses in the true branch.
func (e *Extractor) conditionalFromNode(node *ast.Node) typemodel.TypeModel {
	c := node.AsConditionalTypeNode()
	check := e.walkTypeNode(c.CheckType)
	extends := e.walkTypeNode(c.ExtendsType)
	trueT := e.walkTypeNode(c.TrueType)
	falseT := e.walkTypeNode(c.FalseType)
	return typemodel.TypeModel{
		Kind:        typemodel.KindConditional,
		CheckType:   &check,
		ExtendsType: &extends,
		TrueType:    &trueT,
		FalseType:   &falseT,
	}
}

// indexedAccessFromNode builds T[K] from syntax. The index position gets
// a restricted dispatch first — a bare type-parameter reference or a keyof
// operator keeps its shape instead of collapsing to the checker's
// evaluation.
func (e *Extractor) indexedAccessFromNode(node *ast.Node) typemodel.TypeModel {
	n := node.AsIndexedAccessTypeNode()
	object := e.walkTypeNode(n.ObjectType)
	var index typemodel.TypeModel
	switch n.IndexType.Kind {
	case ast.KindTypeOperator:
		index = e.prefixFromNode(n.IndexType)
	default:
		index = e.walkTypeNode(n.IndexType)
	}
	return typemodel.TypeModel{
		Kind:   typemodel.KindIndexedAccess,
		Object: &object,
		Index:  &index,
	}
}

// prefixFromNode builds a unary type operator node (keyof, readonly,
// unique).
func (e *Extractor) prefixFromNode(node *ast.Node) typemodel.TypeModel {
	op := node.AsTypeOperatorNode()
	operator := ""
	switch op.Operator {
	case ast.KindKeyOfKeyword:
		operator = "keyof"
	case ast.KindReadonlyKeyword:
		operator = "readonly"
	case ast.KindUniqueKeyword:
		operator = "unique"
	}
	operand := e.walkTypeNode(op.Type)
	return typemodel.TypeModel{
		Kind:     typemodel.KindPrefix,
		Operator: operator,
		Type:     &operand,
	}
}

// inferFromNode builds an infer declaration; the introduced name binds
// lexically inside the enclosing conditional.
func (e *Extractor) inferFromNode(node *ast.Node) typemodel.TypeModel {
	tp := node.AsInferTypeNode().TypeParameter.AsTypeParameterDeclaration()
	return typemodel.TypeModel{Kind: typemodel.KindInfer, Name: tp.Name().Text()}
}

// syntacticTypeNode reports whether walkTypeNode keeps the node's declared
// structure instead of deferring to the checker.
func syntacticTypeNode(node *ast.Node) bool {
	switch node.Kind {
	case ast.KindConditionalType, ast.KindIndexedAccessType, ast.KindTypeOperator,
		ast.KindInferType, ast.KindMappedType, ast.KindFunctionType, ast.KindConstructorType:
		return true
	default:
		return false
	}
}

func isExported(stmt *ast.Node) bool {
	return ast.HasSyntacticModifier(stmt, ast.ModifierFlagsExport)
}

func hasDefaultModifier(stmt *ast.Node) bool {
	return ast.HasSyntacticModifier(stmt, ast.ModifierFlagsDefault)
}

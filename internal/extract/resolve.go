package extract

import (
	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"

	"github.com/tsgraph/tsgraph/internal/modules"
)

// maxContainerHops bounds the parent-symbol walk used to name anonymous
// library types after their closest named container.
const maxContainerHops = 3

// resolveName returns the registry name a type should live under, or ""
// when the type has no usable name and must be inlined.
//
// Named types resolve through their declaration's origin: bundled-lib and
// global types keep their bare name, importable-module types get a binding
// name from the resolver. Structurally anonymous types from libraries walk
// up the containing symbols looking for something nameable; anonymous local
// types always inline.
func (e *Extractor) resolveName(t *shimchecker.Type) string {
	sym := t.Symbol()
	if sym == nil {
		return ""
	}

	objFlags := shimchecker.Type_objectFlags(t)
	if objFlags&shimchecker.ObjectFlagsAnonymous != 0 {
		return e.containerName(sym)
	}

	if internalName(sym.Name) {
		return ""
	}
	return e.externalName(sym, sym.Name)
}

// internalName reports whether name is one of the checker's synthesized
// symbol names for structural types ("__type", "\xfetype" from mapped-type
// machinery, etc.) which must never leak into the registry.
func internalName(name string) bool {
	if name == "" || name == "__type" || name == "__object" || name == "__function" {
		return true
	}
	return name[0] == '\xfe'
}

// externalName maps a symbol name through its declaring file's origin.
func (e *Extractor) externalName(sym *ast.Symbol, name string) string {
	origin, pkg := e.originOf(sym)
	if origin == modules.OriginModule {
		return e.resolver.BindingName(pkg, name)
	}
	return name
}

// originOf classifies the origin of the file declaring sym. Symbols without
// a locatable declaration count as local.
func (e *Extractor) originOf(sym *ast.Symbol) (modules.Origin, string) {
	decl := declarationOf(sym)
	if decl == nil {
		return modules.OriginLocal, ""
	}
	sf := ast.GetSourceFileOfNode(decl)
	if sf == nil {
		return modules.OriginLocal, ""
	}
	return e.resolver.Classify(sf.FileName())
}

// containerName names an anonymous type after its closest named containing
// symbol, but only for types declared outside the project — a local
// anonymous type stays inline.
func (e *Extractor) containerName(sym *ast.Symbol) string {
	cur := sym
	for hop := 0; hop < maxContainerHops && cur != nil; hop++ {
		if !internalName(cur.Name) {
			origin, pkg := e.originOf(cur)
			switch origin {
			case modules.OriginModule:
				return e.resolver.BindingName(pkg, cur.Name)
			case modules.OriginGlobal, modules.OriginDefaultLib:
				return cur.Name
			default:
				return ""
			}
		}
		cur = cur.Parent
	}
	return ""
}

// declarationOf returns the symbol's primary declaration node, preferring
// the value declaration.
func declarationOf(sym *ast.Symbol) *ast.Node {
	if sym == nil {
		return nil
	}
	if sym.ValueDeclaration != nil {
		return sym.ValueDeclaration
	}
	if len(sym.Declarations) > 0 {
		return sym.Declarations[0]
	}
	return nil
}

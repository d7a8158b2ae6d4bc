package extract

import (
	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"

	"github.com/tsgraph/tsgraph/internal/typemodel"
)

// typeParameters builds one descriptor per declared type parameter. The
// descriptor's Name is a self-referential ref node carrying no arguments;
// refs to it inside the declaring node bind lexically rather than through
// the registry.
func (e *Extractor) typeParameters(list *ast.NodeList) []typemodel.TypeParameter {
	if list == nil || len(list.Nodes) == 0 {
		return nil
	}
	out := make([]typemodel.TypeParameter, 0, len(list.Nodes))
	for _, node := range list.Nodes {
		decl := node.AsTypeParameterDeclaration()
		tp := typemodel.TypeParameter{
			Name: typemodel.TypeModel{Kind: typemodel.KindRef, RefName: decl.Name().Text()},
		}
		if decl.Constraint != nil {
			c := e.walkTypeNode(decl.Constraint)
			tp.Constraint = &c
		} else if sym := e.checker.GetSymbolAtLocation(decl.Name()); sym != nil {
			// No explicit constraint — ask the checker for an implied one
			// (conditional-type infer positions and defaults can imply it).
			declared := shimchecker.Checker_getDeclaredTypeOfSymbol(e.checker, sym)
			if declared != nil {
				if base := shimchecker.Checker_getBaseConstraintOfType(e.checker, declared); base != nil && base != declared {
					c := e.walkType(base)
					tp.Constraint = &c
				}
			}
		}
		if decl.DefaultType != nil {
			d := e.walkTypeNode(decl.DefaultType)
			tp.Default = &d
		}
		out = append(out, tp)
	}
	return out
}

// trimTypeArguments normalizes the supplied type arguments of a generic
// instantiation against the target's declared parameters: the list is
// truncated to the declared count, then trailing arguments equal to their
// parameter's declared default (by checker type identity) are dropped,
// scanning from the end and stopping at the first mismatch.
//
// Omitted-vs-explicitly-supplied defaults are indistinguishable to the
// checker, so `Box<number, string>` with `<T, U = string>` canonicalizes
// to one argument while `Box<number, boolean>` keeps two.
func (e *Extractor) trimTypeArguments(declParams *ast.NodeList, args []*shimchecker.Type) []*shimchecker.Type {
	if declParams == nil {
		return nil
	}
	n := len(args)
	if n > len(declParams.Nodes) {
		n = len(declParams.Nodes)
	}
	for n > 0 {
		param := declParams.Nodes[n-1].AsTypeParameterDeclaration()
		if param.DefaultType == nil {
			break
		}
		def := shimchecker.Checker_getTypeFromTypeNode(e.checker, param.DefaultType)
		if def == nil || args[n-1] == nil || def.Id() != args[n-1].Id() {
			break
		}
		n--
	}
	return args[:n]
}

// typeParameterDecls returns the declared type parameter list of a named
// declaration, or nil for non-generic declarations.
func typeParameterDecls(decl *ast.Node) *ast.NodeList {
	if decl == nil {
		return nil
	}
	switch decl.Kind {
	case ast.KindTypeAliasDeclaration:
		return decl.AsTypeAliasDeclaration().TypeParameters
	case ast.KindInterfaceDeclaration:
		return decl.AsInterfaceDeclaration().TypeParameters
	case ast.KindClassDeclaration:
		return decl.AsClassDeclaration().TypeParameters
	case ast.KindFunctionDeclaration:
		return decl.AsFunctionDeclaration().TypeParameters
	default:
		return nil
	}
}

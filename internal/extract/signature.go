package extract

import (
	"fmt"

	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"

	"github.com/tsgraph/tsgraph/internal/typemodel"
)

// signatureFromDecl builds a Signature from any function-like declaration
// node. Signatures are read from syntax, not the checker, so parameter
// names and optional/rest markers match what was written.
func (e *Extractor) signatureFromDecl(node *ast.Node) (*typemodel.Signature, error) {
	typeParams, params, returnType, ok := functionParts(node)
	if !ok {
		return nil, fmt.Errorf("node kind %v is not function-like", node.Kind)
	}
	return e.buildSignature(typeParams, params, returnType)
}

func (e *Extractor) buildSignature(typeParams *ast.NodeList, params *ast.NodeList, returnType *ast.Node) (*typemodel.Signature, error) {
	sig := &typemodel.Signature{
		TypeParameters: e.typeParameters(typeParams),
	}

	if params != nil {
		for _, pn := range params.Nodes {
			p := pn.AsParameterDeclaration()
			param := typemodel.Parameter{
				Name:     p.Name().Text(),
				Optional: p.QuestionToken != nil,
				Rest:     p.DotDotDotToken != nil,
			}
			switch {
			case p.Type != nil:
				param.Type = e.walkTypeNode(p.Type)
			case p.Initializer != nil:
				// Untyped defaulted parameter — the initializer's resolved
				// type stands in for the missing annotation.
				sym := e.checker.GetSymbolAtLocation(p.Name())
				if sym == nil {
					return nil, fmt.Errorf("parameter %q has no resolvable type", param.Name)
				}
				param.Type = e.walkType(shimchecker.Checker_getTypeOfSymbol(e.checker, sym))
			default:
				return nil, fmt.Errorf("parameter %q has neither type annotation nor initializer", param.Name)
			}
			sig.Parameters = append(sig.Parameters, param)
		}
	}

	if returnType != nil {
		r := e.walkTypeNode(returnType)
		sig.ReturnType = &r
	}
	return sig, nil
}

// functionParts splits a function-like node into its three signature
// pieces. Covers every declaration form the extractor meets: declarations,
// type-position function types, object-member signatures and constructors.
func functionParts(node *ast.Node) (typeParams, params *ast.NodeList, returnType *ast.Node, ok bool) {
	if node == nil {
		return nil, nil, nil, false
	}
	switch node.Kind {
	case ast.KindFunctionDeclaration:
		d := node.AsFunctionDeclaration()
		return d.TypeParameters, d.Parameters, d.Type, true
	case ast.KindFunctionExpression:
		d := node.AsFunctionExpression()
		return d.TypeParameters, d.Parameters, d.Type, true
	case ast.KindArrowFunction:
		d := node.AsArrowFunction()
		return d.TypeParameters, d.Parameters, d.Type, true
	case ast.KindFunctionType:
		d := node.AsFunctionTypeNode()
		return d.TypeParameters, d.Parameters, d.Type, true
	case ast.KindConstructorType:
		d := node.AsConstructorTypeNode()
		return d.TypeParameters, d.Parameters, d.Type, true
	case ast.KindCallSignature:
		d := node.AsCallSignatureDeclaration()
		return d.TypeParameters, d.Parameters, d.Type, true
	case ast.KindConstructSignature:
		d := node.AsConstructSignatureDeclaration()
		return d.TypeParameters, d.Parameters, d.Type, true
	case ast.KindConstructor:
		d := node.AsConstructorDeclaration()
		return d.TypeParameters, d.Parameters, d.Type, true
	case ast.KindMethodSignature:
		d := node.AsMethodSignatureDeclaration()
		return d.TypeParameters, d.Parameters, d.Type, true
	case ast.KindMethodDeclaration:
		d := node.AsMethodDeclaration()
		return d.TypeParameters, d.Parameters, d.Type, true
	default:
		return nil, nil, nil, false
	}
}

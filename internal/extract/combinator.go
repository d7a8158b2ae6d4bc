package extract

import (
	shimchecker "github.com/microsoft/typescript-go/shim/checker"

	"github.com/tsgraph/tsgraph/internal/typemodel"
)

// combinator dispatches structural composites in priority order: tuple,
// then named-object reference, then union, intersection and the
// constraint-resolved forms (indexed access, keyof). Anonymous object
// types fall through to the object builder.
func (e *Extractor) combinator(t *shimchecker.Type) (typemodel.TypeModel, bool) {
	flags := t.Flags()

	if flags&shimchecker.TypeFlagsObject != 0 {
		if shimchecker.IsTupleType(t) {
			return e.buildTuple(t), true
		}
		if shimchecker.Checker_isArrayType(e.checker, t) {
			return e.buildArrayRef(t), true
		}
		if name := e.resolveName(t); name != "" {
			return e.namedRef(t, name), true
		}
		return typemodel.TypeModel{}, false
	}

	if flags&shimchecker.TypeFlagsUnion != 0 {
		return e.buildUnion(t), true
	}
	if flags&shimchecker.TypeFlagsIntersection != 0 {
		return e.buildIntersection(t), true
	}

	// Semantic indexed-access and keyof types that survived classification
	// are still abstract (they mention type parameters); their base
	// constraint is the best concrete answer the checker has.
	if flags&(shimchecker.TypeFlagsIndexedAccess|shimchecker.TypeFlagsIndex) != 0 {
		if base := shimchecker.Checker_getBaseConstraintOfType(e.checker, t); base != nil && base != t {
			return e.walkType(base), true
		}
	}

	return typemodel.TypeModel{}, false
}

// buildTuple walks tuple elements in declaration order.
func (e *Extractor) buildTuple(t *shimchecker.Type) typemodel.TypeModel {
	typeArgs := shimchecker.Checker_getTypeArguments(e.checker, t)
	node := typemodel.TypeModel{Kind: typemodel.KindTuple}
	for _, arg := range typeArgs {
		node.Types = append(node.Types, e.walkType(arg))
	}
	return node
}

// buildArrayRef maps T[] and Array<T> to a ref to the global Array entry.
// The entry itself stays opaque like every bundled-lib type.
func (e *Extractor) buildArrayRef(t *shimchecker.Type) typemodel.TypeModel {
	typeArgs := shimchecker.Checker_getTypeArguments(e.checker, t)
	var args []typemodel.TypeModel
	for _, arg := range typeArgs {
		args = append(args, e.walkType(arg))
	}
	if !e.registry.Has("Array") {
		e.registry.RegisterPlaceholder("Array")
		e.registry.Fill("Array", &typemodel.TypeModel{Kind: typemodel.KindInterface, Name: "Array"})
	}
	return e.registry.Resolve("Array", args, t)
}

// namedRef registers the declared body of a named object type (once) and
// returns a ref carrying the instantiation's trimmed type arguments plus
// the live checker type as the transient External handle.
func (e *Extractor) namedRef(t *shimchecker.Type, name string) typemodel.TypeModel {
	sym := t.Symbol()

	var args []typemodel.TypeModel
	supplied := shimchecker.Checker_getTypeArguments(e.checker, t)
	if len(supplied) > 0 {
		trimmed := e.trimTypeArguments(typeParameterDecls(declarationOf(sym)), supplied)
		for _, arg := range trimmed {
			args = append(args, e.walkType(arg))
		}
	}

	// Presence check before building: a placeholder or filled entry means
	// we are inside (or past) this type's own construction, and the ref
	// alone terminates the recursion.
	if !e.registry.Has(name) {
		e.registry.RegisterPlaceholder(name)
		e.registry.Fill(name, e.buildNamed(sym, name))
	}
	return e.registry.Resolve(name, args, t)
}

// buildUnion walks union members preserving the checker's order. The two
// boolean literals the checker splits `boolean` into are merged back.
func (e *Extractor) buildUnion(t *shimchecker.Type) typemodel.TypeModel {
	members := t.Types()
	if len(members) == 0 {
		return typemodel.TypeModel{Kind: typemodel.KindNever}
	}

	booleanLiterals := 0
	for _, m := range members {
		if m.Flags()&shimchecker.TypeFlagsBooleanLiteral != 0 {
			booleanLiterals++
		}
	}

	var out []typemodel.TypeModel
	mergedBoolean := false
	for _, m := range members {
		if booleanLiterals == 2 && m.Flags()&shimchecker.TypeFlagsBooleanLiteral != 0 {
			if !mergedBoolean {
				out = append(out, typemodel.TypeModel{Kind: typemodel.KindBoolean})
				mergedBoolean = true
			}
			continue
		}
		out = append(out, e.walkType(m))
	}

	if len(out) == 1 {
		return out[0]
	}
	return typemodel.TypeModel{Kind: typemodel.KindUnion, Types: out}
}

// buildIntersection walks intersection members in order. Members are kept
// as declared; object members are not merged.
func (e *Extractor) buildIntersection(t *shimchecker.Type) typemodel.TypeModel {
	members := t.Types()
	if len(members) == 0 {
		return typemodel.TypeModel{Kind: typemodel.KindUnknown}
	}
	var out []typemodel.TypeModel
	for _, m := range members {
		out = append(out, e.walkType(m))
	}
	if len(out) == 1 {
		return out[0]
	}
	return typemodel.TypeModel{Kind: typemodel.KindIntersection, Types: out}
}

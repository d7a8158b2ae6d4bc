package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"

	"github.com/tsgraph/tsgraph/internal/diagnostic"
	"github.com/tsgraph/tsgraph/internal/typemodel"
)

// terminalRule is one entry of the terminal classifier: a predicate over
// the checker type and the constructor invoked when it matches.
type terminalRule struct {
	match func(e *Extractor, t *shimchecker.Type) bool
	build func(e *Extractor, t *shimchecker.Type) typemodel.TypeModel
}

// terminalRules is evaluated in order, first match wins. The order is load
// bearing: the checker's flag encoding makes broad categories supersets of
// narrow ones (every string literal is StringLike, boolean is a union of
// its two literals, enum literals are also literals), so narrower rules
// must come first.
var terminalRules = []terminalRule{
	{flagMatch(shimchecker.TypeFlagsAny), kindNode(typemodel.KindAny)},
	{flagMatch(shimchecker.TypeFlagsUnknown), kindNode(typemodel.KindUnknown)},
	{flagMatch(shimchecker.TypeFlagsEnumLiteral | shimchecker.TypeFlagsEnum), (*Extractor).buildEnumTerminal},
	{flagMatch(shimchecker.TypeFlagsStringLiteral), buildLiteral},
	{flagMatch(shimchecker.TypeFlagsNumberLiteral), buildLiteral},
	{flagMatch(shimchecker.TypeFlagsBooleanLiteral), buildBooleanLiteral},
	{flagMatch(shimchecker.TypeFlagsBigIntLiteral), buildBigIntLiteral},
	{flagMatch(shimchecker.TypeFlagsString | shimchecker.TypeFlagsTemplateLiteral), kindNode(typemodel.KindString)},
	{flagMatch(shimchecker.TypeFlagsBoolean), kindNode(typemodel.KindBoolean)},
	{flagMatch(shimchecker.TypeFlagsNumber), kindNode(typemodel.KindNumber)},
	{flagMatch(shimchecker.TypeFlagsBigInt), kindNode(typemodel.KindBigInt)},
	{flagMatch(shimchecker.TypeFlagsUniqueESSymbol), kindNode(typemodel.KindUniqueSymbol)},
	{flagMatch(shimchecker.TypeFlagsESSymbol), kindNode(typemodel.KindSymbol)},
	{flagMatch(shimchecker.TypeFlagsVoid), kindNode(typemodel.KindVoid)},
	{flagMatch(shimchecker.TypeFlagsUndefined), kindNode(typemodel.KindUndefined)},
	{flagMatch(shimchecker.TypeFlagsNull), kindNode(typemodel.KindNull)},
	{flagMatch(shimchecker.TypeFlagsNever), kindNode(typemodel.KindNever)},
	{flagMatch(shimchecker.TypeFlagsConditional), (*Extractor).buildConditionalTerminal},
	{flagMatch(shimchecker.TypeFlagsSubstitution), (*Extractor).buildSubstitution},
	{flagMatch(shimchecker.TypeFlagsNonPrimitive), kindNode(typemodel.KindNonPrimitive)},
}

// classifyTerminal runs the ordered terminal rules against t.
// No match is not an error: composites and objects follow.
func (e *Extractor) classifyTerminal(t *shimchecker.Type) (typemodel.TypeModel, bool) {
	for _, rule := range terminalRules {
		if rule.match(e, t) {
			return rule.build(e, t), true
		}
	}
	return typemodel.TypeModel{}, false
}

func flagMatch(flags shimchecker.TypeFlags) func(*Extractor, *shimchecker.Type) bool {
	return func(_ *Extractor, t *shimchecker.Type) bool {
		return t.Flags()&flags != 0
	}
}

func kindNode(kind typemodel.Kind) func(*Extractor, *shimchecker.Type) typemodel.TypeModel {
	return func(_ *Extractor, _ *shimchecker.Type) typemodel.TypeModel {
		return typemodel.TypeModel{Kind: kind}
	}
}

func buildLiteral(_ *Extractor, t *shimchecker.Type) typemodel.TypeModel {
	lit := t.AsLiteralType()
	if lit == nil {
		return typemodel.TypeModel{Kind: typemodel.KindUnidentified}
	}
	return typemodel.TypeModel{Kind: typemodel.KindLiteral, Value: normalizeLiteralValue(lit.Value())}
}

func buildBooleanLiteral(_ *Extractor, t *shimchecker.Type) typemodel.TypeModel {
	// Boolean literals are LiteralType with bool value
	if lit := t.AsLiteralType(); lit != nil {
		if boolVal, ok := lit.Value().(bool); ok {
			return typemodel.TypeModel{Kind: typemodel.KindLiteral, Value: boolVal}
		}
	}
	return typemodel.TypeModel{Kind: typemodel.KindBoolean}
}

func buildBigIntLiteral(_ *Extractor, t *shimchecker.Type) typemodel.TypeModel {
	lit := t.AsLiteralType()
	if lit == nil {
		return typemodel.TypeModel{Kind: typemodel.KindUnidentified}
	}
	// Carried as a decimal string; bigint values exceed float64 precision.
	return typemodel.TypeModel{Kind: typemodel.KindBigIntLiteral, Value: fmt.Sprintf("%v", lit.Value())}
}

// buildEnumTerminal handles both flavors of enum-flagged types: the enum
// type itself (a union of its members) becomes a ref to the registered
// enum entry, a single member becomes an inline enumLiteral node.
func (e *Extractor) buildEnumTerminal(t *shimchecker.Type) typemodel.TypeModel {
	if t.Flags()&shimchecker.TypeFlagsUnion == 0 && t.Flags()&shimchecker.TypeFlagsEnumLiteral != 0 {
		return e.buildEnumMember(t)
	}

	sym := t.Symbol()
	if sym == nil || internalName(sym.Name) {
		return e.unsupported(nil, "enum type has no usable symbol")
	}
	decl := declarationOf(sym)
	if decl == nil || decl.Kind != ast.KindEnumDeclaration {
		return e.unsupported(decl, "enum type %q has no enum declaration", sym.Name)
	}

	name := e.externalName(sym, sym.Name)
	if !e.registry.Has(name) {
		e.registry.RegisterPlaceholder(name)
		e.registry.Fill(name, e.buildEnum(decl, name))
	}
	return e.registry.Resolve(name, nil, t)
}

// buildEnumMember builds an enumLiteral node for one enum member type.
func (e *Extractor) buildEnumMember(t *shimchecker.Type) typemodel.TypeModel {
	node := typemodel.TypeModel{Kind: typemodel.KindEnumLiteral}
	if sym := t.Symbol(); sym != nil {
		node.Name = sym.Name
		if parent := sym.Parent; parent != nil {
			if decl := declarationOf(parent); decl != nil && decl.Kind == ast.KindEnumDeclaration {
				node.Const = hasConstModifier(decl)
			}
		}
	}
	if lit := t.AsLiteralType(); lit != nil {
		node.Value = normalizeLiteralValue(lit.Value())
	}
	return node
}

// buildEnum builds the registry entry for an enum declaration: the ordered
// member list with values resolved from initializer syntax. Uninitialized
// members continue the numeric sequence from their predecessor, matching
// the language's auto-increment rule.
func (e *Extractor) buildEnum(decl *ast.Node, name string) *typemodel.TypeModel {
	enumDecl := decl.AsEnumDeclaration()
	node := &typemodel.TypeModel{
		Kind:  typemodel.KindEnum,
		Name:  name,
		Const: hasConstModifier(decl),
		Doc:   docComment(decl),
	}

	next := float64(0)
	numeric := true
	for _, memberNode := range enumDecl.Members.Nodes {
		member := memberNode.AsEnumMember()
		em := typemodel.EnumMember{Name: member.Name().Text()}
		switch {
		case member.Initializer == nil:
			if numeric {
				em.Value = next
				next++
			}
		case member.Initializer.Kind == ast.KindStringLiteral:
			em.Value = member.Initializer.Text()
			numeric = false
		case member.Initializer.Kind == ast.KindNumericLiteral:
			v, ok := parseNumericText(member.Initializer.Text())
			if !ok {
				v, ok = e.memberNumericValue(member)
			}
			if ok {
				em.Value = v
				next = v + 1
				numeric = true
			}
		default:
			// Computed member — resolve through the member symbol's type.
			if sym := e.checker.GetSymbolAtLocation(member.Name()); sym != nil {
				mt := shimchecker.Checker_getTypeOfSymbol(e.checker, sym)
				if lit := mt.AsLiteralType(); lit != nil {
					em.Value = normalizeLiteralValue(lit.Value())
					if v, ok := em.Value.(float64); ok {
						next = v + 1
					} else {
						numeric = false
					}
				}
			}
		}
		node.Members = append(node.Members, em)
	}
	return node
}

// buildConditionalTerminal decomposes a conditional type into its four
// branches through the declaring type node. Conditional checker types only
// arise from alias instantiation, so the alias declaration is the reliable
// route back to syntax; without it the base constraint is the fallback.
func (e *Extractor) buildConditionalTerminal(t *shimchecker.Type) typemodel.TypeModel {
	if alias := shimchecker.Type_alias(t); alias != nil {
		if sym := alias.Symbol(); sym != nil {
			if decl := declarationOf(sym); decl != nil && decl.Kind == ast.KindTypeAliasDeclaration {
				if tn := decl.AsTypeAliasDeclaration().Type; tn != nil && tn.Kind == ast.KindConditionalType {
					return e.conditionalFromNode(tn)
				}
			}
		}
	}
	if base := shimchecker.Checker_getBaseConstraintOfType(e.checker, t); base != nil && base != t {
		return e.walkType(base)
	}
	return e.unsupported(nil, "conditional type without a reachable declaration")
}

// buildSubstitution resolves a substitution type (a narrowed type parameter
// inside a conditional branch) to its base constraint.
func (e *Extractor) buildSubstitution(t *shimchecker.Type) typemodel.TypeModel {
	node := typemodel.TypeModel{Kind: typemodel.KindSubstitution}
	if base := shimchecker.Checker_getBaseConstraintOfType(e.checker, t); base != nil && base != t {
		inner := e.walkType(base)
		node.Type = &inner
	}
	return node
}

// hasConstModifier reports whether a declaration carries the const keyword
// modifier (const enums).
func hasConstModifier(decl *ast.Node) bool {
	mods := decl.Modifiers()
	if mods == nil {
		return false
	}
	for _, m := range mods.Nodes {
		if m.Kind == ast.KindConstKeyword {
			return true
		}
	}
	return false
}

// normalizeLiteralValue converts checker literal values (e.g. jsnum.Number)
// to plain Go types so serialization is stable.
func normalizeLiteralValue(v any) any {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		return val
	case bool:
		return val
	default:
		// jsnum.Number is a float64 under the hood; round-trip via text.
		str := fmt.Sprintf("%v", v)
		var f float64
		if _, err := fmt.Sscanf(str, "%g", &f); err == nil {
			return f
		}
		return v
	}
}

// parseNumericText parses the source text of a numeric literal, covering
// decimal and exponent forms, the hex/binary/octal prefixes and numeric
// separators.
func parseNumericText(text string) (float64, bool) {
	text = strings.ReplaceAll(text, "_", "")
	if v, err := strconv.ParseFloat(text, 64); err == nil {
		return v, true
	}
	// ParseInt with base 0 picks up the 0x/0b/0o prefixes.
	if i, err := strconv.ParseInt(text, 0, 64); err == nil {
		return float64(i), true
	}
	if u, err := strconv.ParseUint(text, 0, 64); err == nil {
		return float64(u), true
	}
	return 0, false
}

// memberNumericValue resolves an enum member's value through the checker,
// for initializer texts the direct parse does not cover.
func (e *Extractor) memberNumericValue(member *ast.EnumMember) (float64, bool) {
	sym := e.checker.GetSymbolAtLocation(member.Name())
	if sym == nil {
		return 0, false
	}
	mt := shimchecker.Checker_getTypeOfSymbol(e.checker, sym)
	if mt == nil {
		return 0, false
	}
	if lit := mt.AsLiteralType(); lit != nil {
		if v, ok := normalizeLiteralValue(lit.Value()).(float64); ok {
			return v, true
		}
	}
	return 0, false
}

// unsupported records an unsupported-construct diagnostic and returns the
// unidentified terminal, letting extraction continue around the gap.
func (e *Extractor) unsupported(at *ast.Node, format string, args ...any) typemodel.TypeModel {
	file := ""
	if at != nil {
		if sf := ast.GetSourceFileOfNode(at); sf != nil {
			file = sf.FileName()
		}
	}
	e.diags.Warn(diagnostic.CategoryUnsupportedConstruct, file, 0, fmt.Sprintf(format, args...))
	return typemodel.TypeModel{Kind: typemodel.KindUnidentified}
}

// Package typemodel defines the serializable type graph schema produced by
// tsgraph — a normalized representation of TypeScript types that downstream
// consumers (documentation, schema generation, binding generation) can use
// without access to the type checker.
package typemodel

// Kind identifies the variant of a TypeModel node.
type Kind string

const (
	// Primitive terminals.
	KindString       Kind = "string"
	KindNumber       Kind = "number"
	KindBoolean      Kind = "boolean"
	KindBigInt       Kind = "bigint"
	KindVoid         Kind = "void"
	KindUndefined    Kind = "undefined"
	KindNull         Kind = "null"
	KindNever        Kind = "never"
	KindAny          Kind = "any"
	KindUnknown      Kind = "unknown"
	KindSymbol       Kind = "symbol"
	KindUniqueSymbol Kind = "uniqueSymbol"
	KindNonPrimitive Kind = "nonPrimitive" // the `object` keyword type

	// Literal terminals.
	KindLiteral       Kind = "literal"
	KindBigIntLiteral Kind = "bigintLiteral"

	// Enum terminals.
	KindEnum        Kind = "enum"
	KindEnumLiteral Kind = "enumLiteral"

	// Structural composites.
	KindTuple         Kind = "tuple"
	KindUnion         Kind = "union"
	KindIntersection  Kind = "intersection"
	KindIndexedAccess Kind = "indexedAccess" // object[index]
	KindPrefix        Kind = "prefix"        // unary type operators: keyof, readonly, unique
	KindConditional   Kind = "conditional"   // C extends E ? T : F
	KindSubstitution  Kind = "substitution"
	KindInfer         Kind = "infer"

	// Object shapes.
	KindInterface Kind = "interface"
	KindClass     Kind = "class"

	// Members.
	KindProp          Kind = "prop"
	KindIndex         Kind = "index"
	KindFunction      Kind = "function"
	KindConstructor   Kind = "constructor"
	KindParameter     Kind = "parameter"
	KindTypeParameter Kind = "typeParameter"

	// Root-level entries.
	KindAlias   Kind = "alias"
	KindConst   Kind = "const"
	KindDefault Kind = "default"

	// Reference to a named entry in the registry.
	KindRef Kind = "ref"

	// Construct the extractor does not recognize. Extraction continues
	// around it; the node marks the gap in the output.
	KindUnidentified Kind = "unidentified"
)

// TypeModel is one node of the output type graph, tagged by Kind. Only the
// fields belonging to the node's kind are populated; everything else stays
// at its zero value and is omitted from serialization.
type TypeModel struct {
	Kind Kind `json:"kind"`

	// Name is the declaration or member name where the node has one
	// (alias, const, function, interface, class, enum, infer parameter).
	Name string `json:"name,omitzero"`

	// Value holds the concrete value of a literal node. For
	// KindBigIntLiteral it is the decimal string form.
	Value any `json:"value,omitzero"`

	// Const marks a const enum. Only set when Kind is KindEnum or
	// KindEnumLiteral.
	Const bool `json:"const,omitzero"`

	// Members holds the ordered member list of an enum node.
	Members []EnumMember `json:"members,omitzero"`

	// Types holds the ordered element/member list of tuple, union and
	// intersection nodes, in declaration order.
	Types []TypeModel `json:"types,omitzero"`

	// Object and Index are the two sides of an indexedAccess node.
	Object *TypeModel `json:"object,omitzero"`
	Index  *TypeModel `json:"index,omitzero"`

	// Operator names the unary operator of a prefix node: "keyof",
	// "readonly" or "unique".
	Operator string `json:"operator,omitzero"`

	// Type is the single operand where the kind has one: the target of an
	// alias or const root, the operand of a prefix node, the base of a
	// substitution, the value type of an index member, and the underlying
	// ref of a default root.
	Type *TypeModel `json:"type,omitzero"`

	// Conditional branches. Only set when Kind == KindConditional.
	CheckType   *TypeModel `json:"checkType,omitzero"`
	ExtendsType *TypeModel `json:"extendsType,omitzero"`
	TrueType    *TypeModel `json:"trueType,omitzero"`
	FalseType   *TypeModel `json:"falseType,omitzero"`

	// TypeParameters holds the declared type parameters of an alias,
	// interface, class or function node.
	TypeParameters []TypeParameter `json:"typeParameters,omitzero"`

	// Extends holds heritage edges of an interface node, or the single
	// base class of a class node. Implements is only set on class nodes
	// and is kept distinct from Extends.
	Extends    []TypeModel `json:"extends,omitzero"`
	Implements []TypeModel `json:"implements,omitzero"`

	// Props is the ordered list of own (non-inherited) properties of an
	// interface or class node.
	Props []Prop `json:"props,omitzero"`

	// Indexes holds index-signature members, Calls call-signature members.
	// Calls follow Indexes in member order.
	Indexes []IndexSignature `json:"indexes,omitzero"`
	Calls   []Signature      `json:"calls,omitzero"`

	// Ctors holds constructor signatures and Statics the non-prototype
	// static members. Only set on class nodes.
	Ctors   []Signature `json:"ctors,omitzero"`
	Statics []Prop      `json:"statics,omitzero"`

	// Mapped describes a mapped type. When set, Props is empty.
	Mapped *Mapped `json:"mapped,omitzero"`

	// Signature is the signature of a function root or function member.
	Signature *Signature `json:"signature,omitzero"`

	// RefName and TypeArguments describe a ref node: the registry name it
	// points at and the supplied type arguments after default trimming.
	RefName       string      `json:"refName,omitzero"`
	TypeArguments []TypeModel `json:"typeArguments,omitzero"`

	// External transiently carries the live checker type a ref stands for,
	// so that inherited-member exclusion can query it structurally. It is
	// never serialized and must not survive into downstream output.
	External any `json:"-"`

	// Doc is the documentation comment attached to the declaration.
	Doc string `json:"doc,omitzero"`
}

// Prop is one own property of an object shape. Created once per member
// encountered, never mutated afterwards.
type Prop struct {
	Name string `json:"name"`

	// Modifiers are the declaration modifiers in source order
	// ("readonly", "static", "private", ...).
	Modifiers []string `json:"modifiers,omitzero"`

	// ID is the checker-assigned symbol identity, treated as opaque. Two
	// properties with the same ID are the same member reached through
	// different inheritance paths.
	ID uint64 `json:"id,omitzero"`

	Optional bool      `json:"optional,omitzero"`
	Doc      string    `json:"doc,omitzero"`
	Type     TypeModel `json:"type"`
}

// TypeParameter describes one declared type parameter. Name is a
// self-referential ref node with no type arguments.
type TypeParameter struct {
	Name       TypeModel  `json:"name"`
	Constraint *TypeModel `json:"constraint,omitzero"`
	Default    *TypeModel `json:"default,omitzero"`
}

// Parameter is one parameter of a signature. Optional and Rest are taken
// from declaration syntax.
type Parameter struct {
	Name     string    `json:"name"`
	Optional bool      `json:"optional,omitzero"`
	Rest     bool      `json:"rest,omitzero"`
	Type     TypeModel `json:"type"`
}

// Signature is a call or construct signature: type parameters, parameters
// and return type.
type Signature struct {
	TypeParameters []TypeParameter `json:"typeParameters,omitzero"`
	Parameters     []Parameter     `json:"parameters,omitzero"`
	ReturnType     *TypeModel      `json:"returnType,omitzero"`
}

// IndexSignature is an index-signature member. Parameter carries the
// declared index parameter name typed string or number.
type IndexSignature struct {
	Parameter Parameter `json:"parameter"`
	Type      TypeModel `json:"type"`
}

// EnumMember is one member of an enum node, in declaration order.
type EnumMember struct {
	Name  string `json:"name"`
	Value any    `json:"value,omitzero"`
}

// Mapped captures the shape of a mapped type: the index variable, its
// constraint, the optional modifier and the value type expression.
type Mapped struct {
	TypeParameter string     `json:"typeParameter"`
	Constraint    *TypeModel `json:"constraint,omitzero"`
	Optional      bool       `json:"optional,omitzero"`
	Readonly      bool       `json:"readonly,omitzero"`
	Type          *TypeModel `json:"type,omitzero"`
}

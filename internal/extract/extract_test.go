package extract_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tsgraph/tsgraph/internal/typemodel"
)

func TestAliasOfPrimitive(t *testing.T) {
	env := setupExtract(t, `export type Id = number;`)
	defer env.release()

	reg, _ := env.graph(t)

	id := entry(t, reg, "Id")
	if id.Kind != typemodel.KindAlias {
		t.Fatalf("expected alias, got %q", id.Kind)
	}
	if id.Type == nil || id.Type.Kind != typemodel.KindNumber {
		t.Fatalf("unexpected aliased type: %+v", id.Type)
	}
}

func TestLiteralRoundTrip(t *testing.T) {
	env := setupExtract(t, `
export type Answer = 42;
export type Greeting = "hi";
export type Yes = true;
`)
	defer env.release()

	reg, _ := env.graph(t)

	answer := entry(t, reg, "Answer").Type
	if answer.Kind != typemodel.KindLiteral {
		t.Fatalf("expected literal, got %q", answer.Kind)
	}
	if v, ok := answer.Value.(float64); !ok || v != 42 {
		t.Fatalf("expected 42, got %v (%T)", answer.Value, answer.Value)
	}

	greeting := entry(t, reg, "Greeting").Type
	if v, ok := greeting.Value.(string); !ok || v != "hi" {
		t.Fatalf("expected \"hi\", got %v (%T)", greeting.Value, greeting.Value)
	}

	yes := entry(t, reg, "Yes").Type
	if v, ok := yes.Value.(bool); !ok || !v {
		t.Fatalf("expected true, got %v (%T)", yes.Value, yes.Value)
	}
}

func TestUnionOrderPreserved(t *testing.T) {
	env := setupExtract(t, `export type Status = "active" | "archived" | "deleted";`)
	defer env.release()

	reg, _ := env.graph(t)

	status := entry(t, reg, "Status").Type
	if status.Kind != typemodel.KindUnion {
		t.Fatalf("expected union, got %q", status.Kind)
	}
	want := []string{"active", "archived", "deleted"}
	if len(status.Types) != len(want) {
		t.Fatalf("expected %d members, got %d", len(want), len(status.Types))
	}
	for i, w := range want {
		if got, _ := status.Types[i].Value.(string); got != w {
			t.Fatalf("member %d: expected %q, got %v", i, w, status.Types[i].Value)
		}
	}
}

func TestTupleOrderPreserved(t *testing.T) {
	env := setupExtract(t, `export type Row = [string, number, boolean];`)
	defer env.release()

	reg, _ := env.graph(t)

	row := entry(t, reg, "Row").Type
	if row.Kind != typemodel.KindTuple {
		t.Fatalf("expected tuple, got %q", row.Kind)
	}
	want := []typemodel.Kind{typemodel.KindString, typemodel.KindNumber, typemodel.KindBoolean}
	if len(row.Types) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(row.Types))
	}
	for i, w := range want {
		if row.Types[i].Kind != w {
			t.Fatalf("element %d: expected %q, got %q", i, w, row.Types[i].Kind)
		}
	}
}

func TestSelfReferentialInterfaceTerminates(t *testing.T) {
	env := setupExtract(t, `
export interface Tree {
	value: number;
	children: Tree[];
}
`)
	defer env.release()

	reg, _ := env.graph(t)

	tree := entry(t, reg, "Tree")
	if tree.Kind != typemodel.KindInterface {
		t.Fatalf("expected interface, got %q", tree.Kind)
	}

	children := findProp(t, tree, "children")
	if children.Type.Kind != typemodel.KindRef || children.Type.RefName != "Array" {
		t.Fatalf("expected ref to Array, got %+v", children.Type)
	}
	if len(children.Type.TypeArguments) != 1 {
		t.Fatalf("expected 1 type argument, got %d", len(children.Type.TypeArguments))
	}
	elem := children.Type.TypeArguments[0]
	if elem.Kind != typemodel.KindRef || elem.RefName != "Tree" {
		t.Fatalf("expected element ref to Tree, got %+v", elem)
	}
}

func TestSelfReferentialAliasTerminates(t *testing.T) {
	env := setupExtract(t, `
export type LinkedList = {
	value: number;
	next: LinkedList | null;
};
`)
	defer env.release()

	reg, _ := env.graph(t)

	list := entry(t, reg, "LinkedList")
	if list.Kind != typemodel.KindAlias {
		t.Fatalf("expected alias, got %q", list.Kind)
	}
	body := list.Type
	if body == nil || body.Kind != typemodel.KindInterface {
		t.Fatalf("expected inline object body, got %+v", body)
	}

	next := findProp(t, body, "next")
	if next.Type.Kind != typemodel.KindUnion {
		t.Fatalf("expected union, got %q", next.Type.Kind)
	}
	foundSelf := false
	for _, m := range next.Type.Types {
		if m.Kind == typemodel.KindRef && m.RefName == "LinkedList" {
			foundSelf = true
		}
	}
	if !foundSelf {
		t.Fatalf("self reference did not resolve to a ref: %+v", next.Type.Types)
	}
}

func TestInheritanceDedup(t *testing.T) {
	env := setupExtract(t, `
export interface Base {
	id: number;
	createdAt: string;
}
export interface Derived extends Base {
	name: string;
}
`)
	defer env.release()

	reg, _ := env.graph(t)

	derived := entry(t, reg, "Derived")
	if len(derived.Props) != 1 || derived.Props[0].Name != "name" {
		t.Fatalf("own props should exclude inherited members, got %+v", derived.Props)
	}
	if len(derived.Extends) != 1 {
		t.Fatalf("expected 1 extends edge, got %d", len(derived.Extends))
	}
	edge := derived.Extends[0]
	if edge.Kind != typemodel.KindRef || edge.RefName != "Base" {
		t.Fatalf("expected extends ref to Base, got %+v", edge)
	}

	base := entry(t, reg, "Base")
	if len(base.Props) != 2 {
		t.Fatalf("expected Base to keep its own props, got %+v", base.Props)
	}
}

func TestInheritanceDedupGenericBase(t *testing.T) {
	env := setupExtract(t, `
export interface Box<T> {
	id: number;
	payload: T;
}
export interface StringBox extends Box<string> {
	label: string;
}
`)
	defer env.release()

	reg, _ := env.graph(t)

	box := entry(t, reg, "StringBox")
	if len(box.Props) != 1 || box.Props[0].Name != "label" {
		t.Fatalf("own props should exclude instantiated base members, got %+v", box.Props)
	}
	if len(box.Extends) != 1 {
		t.Fatalf("expected 1 extends edge, got %d", len(box.Extends))
	}
	edge := box.Extends[0]
	if edge.Kind != typemodel.KindRef || edge.RefName != "Box" {
		t.Fatalf("expected extends ref to Box, got %+v", edge)
	}
	if len(edge.TypeArguments) != 1 || edge.TypeArguments[0].Kind != typemodel.KindString {
		t.Fatalf("expected string type argument on the extends edge, got %+v", edge.TypeArguments)
	}

	base := entry(t, reg, "Box")
	if len(base.Props) != 2 {
		t.Fatalf("expected Box to keep its own props, got %+v", base.Props)
	}
}

func TestGenericDefaultTrimming(t *testing.T) {
	env := setupExtract(t, `
export interface Pair<T, U = string> {
	first: T;
	second: U;
}
export type NumPair = Pair<number, string>;
export type MixedPair = Pair<number, boolean>;
`)
	defer env.release()

	reg, _ := env.graph(t)

	pair := entry(t, reg, "Pair")
	if len(pair.TypeParameters) != 2 {
		t.Fatalf("expected 2 type parameters, got %d", len(pair.TypeParameters))
	}

	numPair := entry(t, reg, "NumPair").Type
	if numPair.Kind != typemodel.KindRef || numPair.RefName != "Pair" {
		t.Fatalf("expected ref to Pair, got %+v", numPair)
	}
	if len(numPair.TypeArguments) != 1 {
		t.Fatalf("argument matching the default should be trimmed, got %d args", len(numPair.TypeArguments))
	}
	if numPair.TypeArguments[0].Kind != typemodel.KindNumber {
		t.Fatalf("unexpected first argument: %+v", numPair.TypeArguments[0])
	}

	mixedPair := entry(t, reg, "MixedPair").Type
	if len(mixedPair.TypeArguments) != 2 {
		t.Fatalf("argument differing from the default must be kept, got %d args", len(mixedPair.TypeArguments))
	}
	if mixedPair.TypeArguments[1].Kind != typemodel.KindBoolean {
		t.Fatalf("unexpected second argument: %+v", mixedPair.TypeArguments[1])
	}
}

func TestIdempotentRefs(t *testing.T) {
	env := setupExtract(t, `
export interface Item {
	id: number;
}
export interface Cart {
	a: Item;
	b: Item;
}
`)
	defer env.release()

	reg, _ := env.graph(t)

	cart := entry(t, reg, "Cart")
	a := findProp(t, cart, "a")
	b := findProp(t, cart, "b")
	if a.Type.Kind != typemodel.KindRef || b.Type.Kind != typemodel.KindRef {
		t.Fatalf("expected both props to be refs: %+v %+v", a.Type, b.Type)
	}
	if a.Type.RefName != b.Type.RefName {
		t.Fatalf("refs to the same type disagree: %q vs %q", a.Type.RefName, b.Type.RefName)
	}
	// One registry entry, many refs.
	names := reg.Names()
	count := 0
	for _, n := range names {
		if n == "Item" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one Item entry, got %d in %v", count, names)
	}
}

func TestMappedTypeShape(t *testing.T) {
	env := setupExtract(t, `
export type Keys = "a" | "b";
export type Flags = { [K in Keys]?: boolean };
`)
	defer env.release()

	reg, _ := env.graph(t)

	flags := entry(t, reg, "Flags").Type
	if flags.Kind != typemodel.KindInterface {
		t.Fatalf("expected interface body, got %q", flags.Kind)
	}
	if len(flags.Props) != 0 {
		t.Fatalf("mapped body must not enumerate props, got %+v", flags.Props)
	}
	if flags.Mapped == nil {
		t.Fatal("missing mapped descriptor")
	}
	if flags.Mapped.TypeParameter != "K" {
		t.Fatalf("unexpected mapped variable: %q", flags.Mapped.TypeParameter)
	}
	if !flags.Mapped.Optional {
		t.Fatal("expected Optional to be set")
	}
	if flags.Mapped.Constraint == nil ||
		flags.Mapped.Constraint.Kind != typemodel.KindRef ||
		flags.Mapped.Constraint.RefName != "Keys" {
		t.Fatalf("expected constraint ref to Keys, got %+v", flags.Mapped.Constraint)
	}
	if flags.Mapped.Type == nil || flags.Mapped.Type.Kind != typemodel.KindBoolean {
		t.Fatalf("unexpected mapped value type: %+v", flags.Mapped.Type)
	}
}

func TestEnumExtraction(t *testing.T) {
	env := setupExtract(t, `
export enum Color {
	Red,
	Green = 10,
	Blue = "b",
}
`)
	defer env.release()

	reg, _ := env.graph(t)

	color := entry(t, reg, "Color")
	if color.Kind != typemodel.KindEnum {
		t.Fatalf("expected enum, got %q", color.Kind)
	}
	if color.Const {
		t.Fatal("Color is not a const enum")
	}
	if len(color.Members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(color.Members))
	}
	if color.Members[0].Name != "Red" || color.Members[0].Value != float64(0) {
		t.Fatalf("unexpected first member: %+v", color.Members[0])
	}
	if color.Members[1].Name != "Green" || color.Members[1].Value != float64(10) {
		t.Fatalf("unexpected second member: %+v", color.Members[1])
	}
	if color.Members[2].Name != "Blue" || color.Members[2].Value != "b" {
		t.Fatalf("unexpected third member: %+v", color.Members[2])
	}
}

func TestEnumNumericLiteralForms(t *testing.T) {
	env := setupExtract(t, `
export enum Flags {
	Hex = 0x10,
	Next,
	Sep = 1_000,
	Bin = 0b101,
}
`)
	defer env.release()

	reg, _ := env.graph(t)

	flags := entry(t, reg, "Flags")
	if len(flags.Members) != 4 {
		t.Fatalf("expected 4 members, got %d", len(flags.Members))
	}
	want := []struct {
		name  string
		value float64
	}{
		{"Hex", 16},
		{"Next", 17},
		{"Sep", 1000},
		{"Bin", 5},
	}
	for i, w := range want {
		m := flags.Members[i]
		if m.Name != w.name || m.Value != w.value {
			t.Fatalf("member %d: want %s=%v, got %+v", i, w.name, w.value, m)
		}
	}
}

func TestConstEnum(t *testing.T) {
	env := setupExtract(t, `
export const enum Direction {
	Up = "up",
	Down = "down",
}
`)
	defer env.release()

	reg, _ := env.graph(t)

	dir := entry(t, reg, "Direction")
	if !dir.Const {
		t.Fatal("expected const enum")
	}
	if len(dir.Members) != 2 || dir.Members[0].Value != "up" {
		t.Fatalf("unexpected members: %+v", dir.Members)
	}
}

func TestFunctionRoot(t *testing.T) {
	env := setupExtract(t, `
export function greet(name: string, times?: number, ...rest: string[]): string {
	return name;
}
`)
	defer env.release()

	reg, _ := env.graph(t)

	greet := entry(t, reg, "greet")
	if greet.Kind != typemodel.KindFunction {
		t.Fatalf("expected function, got %q", greet.Kind)
	}
	sig := greet.Signature
	if sig == nil {
		t.Fatal("missing signature")
	}
	if len(sig.Parameters) != 3 {
		t.Fatalf("expected 3 parameters, got %d", len(sig.Parameters))
	}
	if sig.Parameters[0].Name != "name" || sig.Parameters[0].Optional || sig.Parameters[0].Rest {
		t.Fatalf("unexpected first parameter: %+v", sig.Parameters[0])
	}
	if !sig.Parameters[1].Optional {
		t.Fatal("expected times to be optional")
	}
	if !sig.Parameters[2].Rest {
		t.Fatal("expected rest to be marked rest")
	}
	if sig.ReturnType == nil || sig.ReturnType.Kind != typemodel.KindString {
		t.Fatalf("unexpected return type: %+v", sig.ReturnType)
	}
}

func TestConstRoots(t *testing.T) {
	env := setupExtract(t, `
export const MAX: number = 10;
export const NAME = "app";
`)
	defer env.release()

	reg, _ := env.graph(t)

	max := entry(t, reg, "MAX")
	if max.Kind != typemodel.KindConst {
		t.Fatalf("expected const, got %q", max.Kind)
	}
	if max.Type == nil || max.Type.Kind != typemodel.KindNumber {
		t.Fatalf("annotation should win: %+v", max.Type)
	}

	name := entry(t, reg, "NAME")
	if name.Type == nil || name.Type.Kind != typemodel.KindLiteral {
		t.Fatalf("initializer type expected to be the literal, got %+v", name.Type)
	}
	if v, _ := name.Type.Value.(string); v != "app" {
		t.Fatalf("unexpected literal value: %v", name.Type.Value)
	}
}

func TestDefaultExportInterface(t *testing.T) {
	env := setupExtract(t, `
export default interface Config {
	port: number;
}
`)
	defer env.release()

	reg, _ := env.graph(t)

	cfg := entry(t, reg, "Config")
	if cfg.Kind != typemodel.KindInterface {
		t.Fatalf("expected interface, got %q", cfg.Kind)
	}

	def := entry(t, reg, typemodel.DefaultEntry)
	if def.Kind != typemodel.KindDefault {
		t.Fatalf("expected default root, got %q", def.Kind)
	}
	if def.Type == nil || def.Type.Kind != typemodel.KindRef || def.Type.RefName != "Config" {
		t.Fatalf("default root should ref Config, got %+v", def.Type)
	}
}

func TestDefaultExportOfName(t *testing.T) {
	env := setupExtract(t, `
interface Settings {
	debug: boolean;
}
export default Settings;
`)
	defer env.release()

	reg, _ := env.graph(t)

	if !reg.Has("Settings") {
		t.Fatal("default export should pull the named entry in")
	}
	def := entry(t, reg, typemodel.DefaultEntry)
	if def.Type == nil || def.Type.RefName != "Settings" {
		t.Fatalf("default root should ref Settings, got %+v", def.Type)
	}
}

func TestDefaultExportExpression(t *testing.T) {
	env := setupExtract(t, `export default { port: 3000 };`)
	defer env.release()

	reg, _ := env.graph(t)

	def := entry(t, reg, typemodel.DefaultEntry)
	if def.Kind != typemodel.KindDefault {
		t.Fatalf("expected default root, got %q", def.Kind)
	}
	if def.Type == nil || def.Type.Kind != typemodel.KindRef || def.Type.RefName != "__default" {
		t.Fatalf("default root should ref the synthesized entry, got %+v", def.Type)
	}
	// entry fails the test if the synthesized entry is missing or unfilled.
	entry(t, reg, "__default")
}

func TestExportList(t *testing.T) {
	env := setupExtract(t, `
interface Shape {
	area: number;
}
const LIMIT = 10;
function makeShape(): Shape {
	return { area: 0 };
}
export { Shape, LIMIT, makeShape };
`)
	defer env.release()

	reg, _ := env.graph(t)

	if entry(t, reg, "Shape").Kind != typemodel.KindInterface {
		t.Fatal("export list should pull the interface in")
	}
	if entry(t, reg, "LIMIT").Kind != typemodel.KindConst {
		t.Fatal("export list should pull the const in")
	}
	if entry(t, reg, "makeShape").Kind != typemodel.KindFunction {
		t.Fatal("export list should pull the function in")
	}
}

func TestNonExportedSkipped(t *testing.T) {
	env := setupExtract(t, `
interface Hidden {
	x: number;
}
export interface Shown {
	y: number;
}
`)
	defer env.release()

	reg, _ := env.graph(t)

	if reg.Has("Hidden") {
		t.Fatal("non-exported declaration must not become a root")
	}
	if !reg.Has("Shown") {
		t.Fatal("exported declaration missing")
	}
}

func TestIntersectionKeepsMembers(t *testing.T) {
	env := setupExtract(t, `
export interface Named {
	name: string;
}
export interface Aged {
	age: number;
}
export type Person = Named & Aged;
`)
	defer env.release()

	reg, _ := env.graph(t)

	person := entry(t, reg, "Person").Type
	if person.Kind != typemodel.KindIntersection {
		t.Fatalf("expected intersection, got %q", person.Kind)
	}
	if len(person.Types) != 2 {
		t.Fatalf("expected 2 members, got %d", len(person.Types))
	}
	if person.Types[0].RefName != "Named" || person.Types[1].RefName != "Aged" {
		t.Fatalf("members merged or reordered: %+v", person.Types)
	}
}

func TestKeyofAlias(t *testing.T) {
	env := setupExtract(t, `
export interface User {
	id: number;
	email: string;
}
export type UserKeys = keyof User;
`)
	defer env.release()

	reg, _ := env.graph(t)

	keys := entry(t, reg, "UserKeys").Type
	if keys.Kind != typemodel.KindPrefix || keys.Operator != "keyof" {
		t.Fatalf("expected keyof prefix, got %+v", keys)
	}
	if keys.Type == nil || keys.Type.Kind != typemodel.KindRef || keys.Type.RefName != "User" {
		t.Fatalf("unexpected operand: %+v", keys.Type)
	}
}

func TestIndexedAccessAlias(t *testing.T) {
	env := setupExtract(t, `
export interface Config {
	port: number;
}
export type Port = Config["port"];
`)
	defer env.release()

	reg, _ := env.graph(t)

	port := entry(t, reg, "Port").Type
	if port.Kind != typemodel.KindIndexedAccess {
		t.Fatalf("expected indexedAccess, got %q", port.Kind)
	}
	if port.Object == nil || port.Object.RefName != "Config" {
		t.Fatalf("unexpected object side: %+v", port.Object)
	}
	if port.Index == nil || port.Index.Kind != typemodel.KindLiteral {
		t.Fatalf("unexpected index side: %+v", port.Index)
	}
}

func TestConditionalAliasKeepsBranches(t *testing.T) {
	env := setupExtract(t, `
export type NonNull<T> = T extends null ? never : T;
`)
	defer env.release()

	reg, _ := env.graph(t)

	nonNull := entry(t, reg, "NonNull")
	if len(nonNull.TypeParameters) != 1 {
		t.Fatalf("expected 1 type parameter, got %d", len(nonNull.TypeParameters))
	}
	cond := nonNull.Type
	if cond.Kind != typemodel.KindConditional {
		t.Fatalf("expected conditional, got %q", cond.Kind)
	}
	if cond.CheckType == nil || cond.CheckType.RefName != "T" {
		t.Fatalf("unexpected check branch: %+v", cond.CheckType)
	}
	if cond.ExtendsType == nil || cond.ExtendsType.Kind != typemodel.KindNull {
		t.Fatalf("unexpected extends branch: %+v", cond.ExtendsType)
	}
	if cond.TrueType == nil || cond.TrueType.Kind != typemodel.KindNever {
		t.Fatalf("unexpected true branch: %+v", cond.TrueType)
	}
	if cond.FalseType == nil || cond.FalseType.RefName != "T" {
		t.Fatalf("unexpected false branch: %+v", cond.FalseType)
	}
}

func TestIndexSignature(t *testing.T) {
	env := setupExtract(t, `
export interface Bag {
	[key: string]: number;
}
`)
	defer env.release()

	reg, _ := env.graph(t)

	bag := entry(t, reg, "Bag")
	if len(bag.Indexes) != 1 {
		t.Fatalf("expected 1 index signature, got %d", len(bag.Indexes))
	}
	idx := bag.Indexes[0]
	if idx.Parameter.Name != "key" || idx.Parameter.Type.Kind != typemodel.KindString {
		t.Fatalf("unexpected index parameter: %+v", idx.Parameter)
	}
	if idx.Type.Kind != typemodel.KindNumber {
		t.Fatalf("unexpected index value type: %+v", idx.Type)
	}
}

func TestClassShape(t *testing.T) {
	env := setupExtract(t, `
export class Service {
	static instances = 0;
	private secret: string = "";
	readonly name: string;

	constructor(name: string) {
		this.name = name;
	}
}
`)
	defer env.release()

	reg, _ := env.graph(t)

	svc := entry(t, reg, "Service")
	if svc.Kind != typemodel.KindClass {
		t.Fatalf("expected class, got %q", svc.Kind)
	}
	if len(svc.Ctors) != 1 {
		t.Fatalf("expected 1 constructor, got %d", len(svc.Ctors))
	}
	nameProp := findProp(t, svc, "name")
	hasReadonly := false
	for _, m := range nameProp.Modifiers {
		if m == "readonly" {
			hasReadonly = true
		}
	}
	if !hasReadonly {
		t.Fatalf("expected readonly modifier, got %v", nameProp.Modifiers)
	}

	foundStatic := false
	for _, p := range svc.Statics {
		if p.Name == "instances" {
			foundStatic = true
		}
		if p.Name == "prototype" {
			t.Fatal("prototype leaked into statics")
		}
	}
	if !foundStatic {
		t.Fatalf("static member missing: %+v", svc.Statics)
	}
}

func TestBundledLibTypesStayOpaque(t *testing.T) {
	env := setupExtract(t, `
export interface Job {
	startedAt: Date;
}
`)
	defer env.release()

	reg, _ := env.graph(t)

	date := entry(t, reg, "Date")
	if date.Kind != typemodel.KindInterface {
		t.Fatalf("expected opaque interface entry, got %q", date.Kind)
	}
	if len(date.Props) != 0 {
		t.Fatalf("bundled lib type should not be expanded, got %d props", len(date.Props))
	}

	job := entry(t, reg, "Job")
	started := findProp(t, job, "startedAt")
	if started.Type.Kind != typemodel.KindRef || started.Type.RefName != "Date" {
		t.Fatalf("expected ref to Date, got %+v", started.Type)
	}
}

func TestCrossFileRefs(t *testing.T) {
	env := setupExtractFixture(t, "models.txtar")
	defer env.release()

	reg, _ := env.graph(t)

	user := entry(t, reg, "User")
	role := findProp(t, user, "role")
	if role.Type.Kind != typemodel.KindRef || role.Type.RefName != "Role" {
		t.Fatalf("expected ref to Role, got %+v", role.Type)
	}
	if !reg.Has("Role") {
		t.Fatal("imported type missing from registry")
	}
}

func TestSerializedGraphHasNoLiveHandles(t *testing.T) {
	env := setupExtract(t, `
export interface Base {
	id: number;
}
export interface Derived extends Base {
	name: string;
}
`)
	defer env.release()

	reg, _ := env.graph(t)

	var buf bytes.Buffer
	if err := reg.Encode(&buf, false); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"types"`) {
		t.Fatalf("unexpected document shape:\n%s", out)
	}
	if strings.Contains(strings.ToLower(out), "external") {
		t.Fatalf("live checker handle leaked into output:\n%s", out)
	}
}

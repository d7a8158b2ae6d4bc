// Package modules classifies the origin of source files and produces import
// binding names for types that live in importable library modules. It is the
// naming collaborator consumed by the extraction engine: the engine asks
// where a declaration's file belongs and, for library types, under which
// bound name to register them.
package modules

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Origin classifies where a declaration's source file comes from.
type Origin int

const (
	// OriginLocal is a file belonging to the analyzed project itself.
	OriginLocal Origin = iota
	// OriginDefaultLib is a file of the bundled standard library
	// (lib.*.d.ts). Types from it register under their bare name.
	OriginDefaultLib
	// OriginGlobal is an ambient declaration scope (@types packages or
	// global .d.ts files). Types resolve under their global name.
	OriginGlobal
	// OriginModule is an importable library module under node_modules.
	// Types from it register under a binding name.
	OriginModule
)

func (o Origin) String() string {
	switch o {
	case OriginLocal:
		return "local"
	case OriginDefaultLib:
		return "defaultLib"
	case OriginGlobal:
		return "global"
	case OriginModule:
		return "module"
	default:
		return "unknown"
	}
}

// Resolver classifies file origins and hands out collision-free binding
// names. One Resolver is scoped to one extraction run; binding names are
// unique within the run.
type Resolver struct {
	// bindings maps a handed-out binding name to the module it was bound
	// for, so the same name requested from a different module gets
	// disambiguated instead of colliding.
	bindings map[string]string
	titler   cases.Caser
}

// NewResolver creates a resolver with no recorded bindings.
func NewResolver() *Resolver {
	return &Resolver{
		bindings: make(map[string]string),
		titler:   cases.Title(language.English, cases.NoLower),
	}
}

// Classify determines the origin of fileName and, for module and global
// origins, the owning package name.
func (r *Resolver) Classify(fileName string) (Origin, string) {
	normalized := strings.ReplaceAll(fileName, "\\", "/")

	// Bundled standard library: either inside typescript's lib directory
	// or a lib.*.d.ts delivered with the toolchain.
	base := path.Base(normalized)
	if strings.Contains(normalized, "/node_modules/typescript/lib/") ||
		(strings.HasPrefix(base, "lib.") && strings.HasSuffix(base, ".d.ts")) {
		return OriginDefaultLib, ""
	}

	if pkg, ok := packageAfter(normalized, "/node_modules/@types/"); ok {
		return OriginGlobal, pkg
	}
	if pkg, ok := packageAfter(normalized, "/node_modules/"); ok {
		return OriginModule, pkg
	}
	return OriginLocal, ""
}

// packageAfter extracts the package name following marker in p: one path
// segment, or two for scoped packages (@scope/name).
func packageAfter(p, marker string) (string, bool) {
	idx := strings.LastIndex(p, marker)
	if idx < 0 {
		return "", false
	}
	rest := p[idx+len(marker):]
	segments := strings.SplitN(rest, "/", 3)
	if len(segments) == 0 || segments[0] == "" {
		return "", false
	}
	if strings.HasPrefix(segments[0], "@") {
		if len(segments) < 2 || segments[1] == "" {
			return "", false
		}
		return segments[0] + "/" + segments[1], true
	}
	return segments[0], true
}

// BindingName returns the canonical registry name for exported from module.
// The plain exported name is preferred; when it is already bound for a
// different module, the name is prefixed with the normalized module name
// ("node-fetch" + "Response" → "NodeFetchResponse").
func (r *Resolver) BindingName(module, exported string) string {
	if owner, ok := r.bindings[exported]; !ok || owner == module {
		r.bindings[exported] = module
		return exported
	}

	qualified := r.normalizeModule(module) + exported
	name := qualified
	for n := 2; ; n++ {
		owner, taken := r.bindings[name]
		if !taken || owner == module {
			break
		}
		name = qualified + strings.Repeat("_", n-1)
	}
	r.bindings[name] = module
	return name
}

// normalizeModule turns a module path into an identifier-style prefix:
// "@scope/pkg-name" → "ScopePkgName".
func (r *Resolver) normalizeModule(module string) string {
	var sb strings.Builder
	for _, seg := range strings.FieldsFunc(module, func(c rune) bool {
		return c == '@' || c == '/' || c == '-' || c == '_' || c == '.'
	}) {
		sb.WriteString(r.titler.String(seg))
	}
	return sb.String()
}

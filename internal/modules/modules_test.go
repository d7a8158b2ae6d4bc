package modules

import "testing"

func TestClassify(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		file   string
		origin Origin
		pkg    string
	}{
		{"/app/src/models/user.ts", OriginLocal, ""},
		{"/app/node_modules/typescript/lib/lib.es2020.d.ts", OriginDefaultLib, ""},
		{"/usr/lib/bundled/lib.dom.d.ts", OriginDefaultLib, ""},
		{"/app/node_modules/@types/node/fs.d.ts", OriginGlobal, "node"},
		{"/app/node_modules/@types/express/index.d.ts", OriginGlobal, "express"},
		{"/app/node_modules/zod/lib/types.d.ts", OriginModule, "zod"},
		{"/app/node_modules/@nestjs/common/index.d.ts", OriginModule, "@nestjs/common"},
		{"/app/node_modules/a/node_modules/b/index.d.ts", OriginModule, "b"},
		{`C:\app\node_modules\zod\index.d.ts`, OriginModule, "zod"},
	}

	for _, tt := range tests {
		origin, pkg := r.Classify(tt.file)
		if origin != tt.origin {
			t.Errorf("Classify(%q) origin = %v, want %v", tt.file, origin, tt.origin)
		}
		if pkg != tt.pkg {
			t.Errorf("Classify(%q) pkg = %q, want %q", tt.file, pkg, tt.pkg)
		}
	}
}

func TestBindingNamePrefersPlainName(t *testing.T) {
	r := NewResolver()

	if got := r.BindingName("zod", "ZodType"); got != "ZodType" {
		t.Errorf("first binding = %q, want ZodType", got)
	}
	// Same module asking again gets the same answer.
	if got := r.BindingName("zod", "ZodType"); got != "ZodType" {
		t.Errorf("repeat binding = %q, want ZodType", got)
	}
}

func TestBindingNameCollision(t *testing.T) {
	r := NewResolver()

	if got := r.BindingName("node-fetch", "Response"); got != "Response" {
		t.Errorf("first Response = %q", got)
	}
	got := r.BindingName("undici", "Response")
	if got != "UndiciResponse" {
		t.Errorf("colliding Response = %q, want UndiciResponse", got)
	}
	// The disambiguated name is sticky for its module.
	if again := r.BindingName("undici", "Response"); again != got {
		t.Errorf("repeat colliding Response = %q, want %q", again, got)
	}
}

func TestBindingNameScopedModulePrefix(t *testing.T) {
	r := NewResolver()

	r.BindingName("a", "Config")
	got := r.BindingName("@nestjs/common", "Config")
	if got != "NestjsCommonConfig" {
		t.Errorf("scoped collision = %q, want NestjsCommonConfig", got)
	}
}

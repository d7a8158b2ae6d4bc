package extract_test

import (
	"context"
	"path"
	"runtime"
	"testing"

	"github.com/microsoft/typescript-go/shim/ast"
	"github.com/microsoft/typescript-go/shim/bundled"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"
	shimcompiler "github.com/microsoft/typescript-go/shim/compiler"
	"github.com/microsoft/typescript-go/shim/core"
	"github.com/microsoft/typescript-go/shim/tsoptions"
	"github.com/microsoft/typescript-go/shim/tspath"

	"github.com/tsgraph/tsgraph/internal/diagnostic"
	"github.com/tsgraph/tsgraph/internal/extract"
	"github.com/tsgraph/tsgraph/internal/testutil"
	"github.com/tsgraph/tsgraph/internal/typemodel"
)

// extractTestDir returns the absolute path to testdata/extract/.
func extractTestDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return path.Join(path.Dir(filename), "..", "..", "testdata", "extract")
}

const testTSConfig = `{
	"compilerOptions": {
		"target": "es2022",
		"module": "esnext",
		"moduleResolution": "bundler",
		"strict": true,
		"noEmit": true
	}
}`

// extractEnv holds a tsgo program, checker and the non-declaration source
// files of an extraction test.
type extractEnv struct {
	program *shimcompiler.Program
	checker *shimchecker.Checker
	files   []*ast.SourceFile
	release func()
}

// setupExtract creates a program from one inline TypeScript source file.
// The caller must call env.release() when done.
func setupExtract(t *testing.T, tsSource string) *extractEnv {
	t.Helper()
	rootDir := extractTestDir()
	return setupFromVirtual(t, rootDir, map[string]string{
		tspath.ResolvePath(rootDir, "main.ts"): tsSource,
	})
}

// setupExtractFixture creates a program from a txtar fixture file under
// testdata/extract/.
func setupExtractFixture(t *testing.T, fixture string) *extractEnv {
	t.Helper()
	rootDir := extractTestDir()
	files := testutil.LoadFixture(t, path.Join(rootDir, fixture), rootDir)
	return setupFromVirtual(t, rootDir, files)
}

func setupFromVirtual(t *testing.T, rootDir string, virtualFiles map[string]string) *extractEnv {
	t.Helper()

	virtualFiles[tspath.ResolvePath(rootDir, "tsconfig.json")] = testTSConfig
	fs := testutil.NewDefaultOverlayVFS(virtualFiles)
	host := shimcompiler.NewCompilerHost(rootDir, fs, bundled.LibPath(), nil, nil)

	configParseResult, diags := tsoptions.GetParsedCommandLineOfConfigFile(
		"tsconfig.json", &core.CompilerOptions{}, nil, host, nil,
	)
	if len(diags) > 0 {
		t.Fatalf("tsconfig parse errors: %v", diags[0].String())
	}

	program := shimcompiler.NewProgram(shimcompiler.ProgramOptions{
		Config:                      configParseResult,
		SingleThreaded:              core.TSTrue,
		Host:                        host,
		UseSourceOfProjectReference: true,
	})
	if program == nil {
		t.Fatal("failed to create program")
	}
	program.BindSourceFiles()

	var files []*ast.SourceFile
	for _, sf := range program.GetSourceFiles() {
		if !sf.IsDeclarationFile {
			files = append(files, sf)
		}
	}
	if len(files) == 0 {
		t.Fatal("no source files in program")
	}

	checker, release := shimcompiler.Program_GetTypeChecker(program, context.Background())
	if checker == nil {
		t.Fatal("failed to get type checker")
	}

	return &extractEnv{
		program: program,
		checker: checker,
		files:   files,
		release: release,
	}
}

// graph extracts every source file of the environment and verifies the
// resulting registry before handing it back.
func (env *extractEnv) graph(t *testing.T) (*typemodel.Registry, *diagnostic.Collector) {
	t.Helper()

	collector := diagnostic.NewCollector(false, false)
	extractor := extract.New(env.checker, collector)
	for _, sf := range env.files {
		extractor.ExtractSourceFile(sf)
	}

	reg := extractor.Registry()
	if err := reg.Verify(); err != nil {
		t.Fatalf("graph verification failed: %v", err)
	}
	return reg, collector
}

// entry fetches a filled registry entry or fails the test.
func entry(t *testing.T, reg *typemodel.Registry, name string) *typemodel.TypeModel {
	t.Helper()
	node := reg.Get(name)
	if node == nil {
		t.Fatalf("entry %q not in registry (have %v)", name, reg.Names())
	}
	if node.Kind == "" {
		t.Fatalf("entry %q is an unfilled placeholder", name)
	}
	return node
}

// findProp fetches a named own property or fails the test.
func findProp(t *testing.T, node *typemodel.TypeModel, name string) typemodel.Prop {
	t.Helper()
	for _, p := range node.Props {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("property %q not found on %q (have %d props)", name, node.Name, len(node.Props))
	return typemodel.Prop{}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	shimcompiler "github.com/microsoft/typescript-go/shim/compiler"
	"github.com/tsgraph/tsgraph/internal/compiler"
	"github.com/tsgraph/tsgraph/internal/config"
	"github.com/tsgraph/tsgraph/internal/diagnostic"
	"github.com/tsgraph/tsgraph/internal/extract"
)

// runExtract executes the extraction pipeline:
// tsconfig parse -> program + checker -> entry walk -> verify -> encode.
func runExtract(args []string) int {
	extractFlags := flag.NewFlagSet("extract", flag.ExitOnError)

	var (
		configPath   string
		tsconfigPath string
		outPath      string
		pretty       bool
		strict       bool
		quiet        bool
	)

	extractFlags.StringVar(&configPath, "config", "", "Path to tsgraph config file (tsgraph.config.json)")
	extractFlags.StringVar(&tsconfigPath, "project", "", "Path to tsconfig.json (or use -p)")
	extractFlags.StringVar(&tsconfigPath, "p", "", "Path to tsconfig.json (shorthand for --project)")
	extractFlags.StringVar(&outPath, "out", "", "Output path for the graph JSON")
	extractFlags.BoolVar(&pretty, "pretty", false, "Indent the graph JSON")
	extractFlags.BoolVar(&strict, "strict", false, "Treat extraction warnings as errors")
	extractFlags.BoolVar(&quiet, "quiet", false, "Suppress extraction warnings")

	extractFlags.Usage = func() {
		fmt.Println("Usage: tsgraph extract [flags]")
		fmt.Println()
		fmt.Println("Flags:")
		extractFlags.PrintDefaults()
	}

	extractFlags.Parse(args)

	extractStart := time.Now()

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not get working directory: %v\n", err)
		return 2
	}

	// Load config: explicit path, default file if present, built-in defaults.
	cfg, code := loadConfig(configPath, cwd)
	if cfg == nil {
		return code
	}

	// CLI flags override the config file.
	if tsconfigPath != "" {
		cfg.Project = tsconfigPath
	}
	if outPath != "" {
		cfg.Output.Path = outPath
	}
	prettySet := false
	extractFlags.Visit(func(f *flag.Flag) {
		if f.Name == "pretty" {
			prettySet = true
		}
	})
	if prettySet {
		cfg.Output.Pretty = pretty
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	// Build the program the extraction queries.
	tsFS := compiler.CreateDefaultFS()
	host := compiler.CreateDefaultHost(cwd, tsFS)

	fmt.Fprintf(os.Stderr, "extracting with tsconfig: %s\n", cfg.Project)

	result, diags, err := compiler.CreateProgram(true, tsFS, cwd, cfg.Project, host)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if len(diags) > 0 {
		fmt.Fprint(os.Stderr, compiler.FormatDiagnostics(diags))
		return 1
	}
	program := result.Program

	// Refuse files that did not parse. Extraction trusts declaration shapes;
	// a broken parse would walk garbage.
	syntaxDiags := compiler.GetSyntacticDiagnostics(program)
	if compiler.CountErrors(syntaxDiags) > 0 {
		compiler.WriteDiagnostics(os.Stderr, syntaxDiags, cwd)
		fmt.Fprintf(os.Stderr, "error: %d file(s) failed to parse\n", len(compiler.FilesWithSyntaxErrors(syntaxDiags)))
		return 1
	}

	checker, release := shimcompiler.Program_GetTypeChecker(program, context.Background())
	if checker == nil {
		fmt.Fprintln(os.Stderr, "error: failed to get type checker")
		return 1
	}
	defer release()

	collector := diagnostic.NewCollector(strict, quiet)
	extractor := extract.New(checker, collector)

	walked := 0
	for _, sf := range compiler.GetSourceFiles(program) {
		if !extract.MatchesEntry(sf.FileName(), cfg.Entries.Include, cfg.Entries.Exclude) {
			continue
		}
		extractor.ExtractSourceFile(sf)
		walked++
	}
	if walked == 0 {
		fmt.Fprintln(os.Stderr, "warning: no source files matched entries.include")
	}

	registry := extractor.Registry()
	if err := registry.Verify(); err != nil {
		fmt.Fprintf(os.Stderr, "error: inconsistent type graph: %v\n", err)
		return 1
	}

	// Write the graph even when some roots failed; the surviving roots are
	// still useful and the diagnostics explain the holes.
	resolvedOut := cfg.Output.Path
	if !filepath.IsAbs(resolvedOut) {
		resolvedOut = filepath.Join(cwd, resolvedOut)
	}
	if err := os.MkdirAll(filepath.Dir(resolvedOut), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	outFile, err := os.Create(resolvedOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	encodeErr := registry.Encode(outFile, cfg.Output.Pretty)
	if closeErr := outFile.Close(); encodeErr == nil {
		encodeErr = closeErr
	}
	if encodeErr != nil {
		fmt.Fprintf(os.Stderr, "error: writing %s: %v\n", cfg.Output.Path, encodeErr)
		return 1
	}

	if out := collector.FormatAll(); out != "" {
		fmt.Fprint(os.Stderr, out)
	}
	fmt.Fprintf(os.Stderr, "wrote %d type(s) to %s in %s (%s)\n",
		registry.Len(), cfg.Output.Path, time.Since(extractStart).Round(time.Millisecond), collector.Summary())

	if collector.HasErrors() {
		return 1
	}
	return 0
}

// loadConfig resolves the effective config. A nil return means the exit code
// should be used.
func loadConfig(configPath string, cwd string) (*config.Config, int) {
	if configPath != "" {
		resolved := configPath
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(cwd, resolved)
		}
		cfg, err := config.Load(resolved)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return nil, 2
		}
		fmt.Fprintf(os.Stderr, "loaded config from %s\n", configPath)
		return cfg, 0
	}

	defaultPath := filepath.Join(cwd, "tsgraph.config.json")
	if _, statErr := os.Stat(defaultPath); statErr == nil {
		cfg, err := config.Load(defaultPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return nil, 2
		}
		fmt.Fprintf(os.Stderr, "loaded config from %s\n", filepath.Base(defaultPath))
		return cfg, 0
	}

	cfg := config.DefaultConfig()
	return &cfg, 0
}

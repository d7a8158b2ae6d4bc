package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Project != "tsconfig.json" {
		t.Fatalf("expected default project 'tsconfig.json', got %q", cfg.Project)
	}
	if len(cfg.Entries.Include) != 1 {
		t.Fatalf("expected 1 default include pattern, got %d", len(cfg.Entries.Include))
	}
	if cfg.Entries.Include[0] != "src/**/*.ts" {
		t.Fatalf("expected default include pattern 'src/**/*.ts', got %q", cfg.Entries.Include[0])
	}
	if cfg.Output.Path != "dist/typegraph.json" {
		t.Fatalf("expected default output 'dist/typegraph.json', got %q", cfg.Output.Path)
	}
	if cfg.Output.Pretty {
		t.Fatal("expected pretty to be false by default")
	}
}

func TestLoadValidConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "tsgraph.config.json")
	content := `{
		"project": "tsconfig.build.json",
		"entries": {
			"include": ["src/models/**/*.ts"],
			"exclude": ["src/**/*.spec.ts"]
		},
		"output": {
			"path": "dist/graph/types.json",
			"pretty": true
		}
	}`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Project != "tsconfig.build.json" {
		t.Fatalf("unexpected project: %q", cfg.Project)
	}
	if len(cfg.Entries.Include) != 1 || cfg.Entries.Include[0] != "src/models/**/*.ts" {
		t.Fatalf("unexpected include: %v", cfg.Entries.Include)
	}
	if len(cfg.Entries.Exclude) != 1 || cfg.Entries.Exclude[0] != "src/**/*.spec.ts" {
		t.Fatalf("unexpected exclude: %v", cfg.Entries.Exclude)
	}
	if cfg.Output.Path != "dist/graph/types.json" {
		t.Fatalf("unexpected output path: %q", cfg.Output.Path)
	}
	if !cfg.Output.Pretty {
		t.Fatal("expected pretty to be true")
	}
}

func TestLoadPartialConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "tsgraph.config.json")
	content := `{
		"output": {
			"path": "out/graph.json"
		}
	}`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should have defaults for unspecified fields
	if cfg.Project != "tsconfig.json" {
		t.Fatalf("expected default project, got %q", cfg.Project)
	}
	if len(cfg.Entries.Include) != 1 || cfg.Entries.Include[0] != "src/**/*.ts" {
		t.Fatalf("expected default include, got %v", cfg.Entries.Include)
	}
	if cfg.Output.Path != "out/graph.json" {
		t.Fatalf("expected overridden output path, got %q", cfg.Output.Path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.json")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "tsgraph.config.json")
	if err := os.WriteFile(configPath, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestValidateEmptyInclude(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Entries.Include = []string{}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for empty include")
	}
}

func TestValidateEmptyOutput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Path = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for empty output path")
	}
}

func TestValidateNonJSONOutput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Path = "dist/typegraph.yaml"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for non-json output path")
	}
}

func TestValidateEmptyProject(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Project = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for empty project")
	}
}

func TestValidateValidConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

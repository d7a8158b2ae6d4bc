package config

import (
	"testing"
)

func TestValidateDetailed_Valid(t *testing.T) {
	cfg := DefaultConfig()
	result := cfg.ValidateDetailed()
	if !result.IsValid() {
		t.Errorf("expected valid config, got errors: %v", result.Errors)
	}
}

func TestValidateDetailed_MissingInclude(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Entries.Include = nil
	result := cfg.ValidateDetailed()
	if result.IsValid() {
		t.Error("expected invalid config")
	}
}

func TestValidateDetailed_NonJSONOutput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Path = "dist/typegraph.yaml"
	result := cfg.ValidateDetailed()
	if result.IsValid() {
		t.Error("expected error for non-json output path")
	}
}

func TestValidateDetailed_WeirdIncludePattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Entries.Include = []string{"src/models"}
	result := cfg.ValidateDetailed()
	if len(result.Warnings) == 0 {
		t.Error("expected warning for pattern without wildcard")
	}
}

func TestValidateDetailed_DeclarationExcludeWarning(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Entries.Exclude = []string{"src/types.d.ts"}
	result := cfg.ValidateDetailed()
	if len(result.Warnings) == 0 {
		t.Error("expected warning for redundant .d.ts exclude")
	}
}

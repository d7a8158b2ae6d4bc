package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidationResult holds config validation results.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// ValidateDetailed performs thorough config validation with suggestions.
func (c *Config) ValidateDetailed() *ValidationResult {
	result := &ValidationResult{}

	if c.Project == "" {
		result.Errors = append(result.Errors, "project: a tsconfig path is required")
	} else if filepath.Ext(c.Project) != ".json" {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("project: %q does not look like a tsconfig file — expected a .json path", c.Project))
	}

	// Entries
	if len(c.Entries.Include) == 0 {
		result.Errors = append(result.Errors, "entries.include: at least one pattern required")
	}
	for _, pattern := range c.Entries.Include {
		if !strings.Contains(pattern, "*") && !strings.HasSuffix(pattern, ".ts") {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("entries.include: pattern %q doesn't contain a wildcard or .ts extension — did you mean %q?", pattern, pattern+"/**/*.ts"))
		}
	}
	for _, pattern := range c.Entries.Exclude {
		if strings.HasSuffix(pattern, ".d.ts") {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("entries.exclude: pattern %q is redundant — declaration files never contribute entry points", pattern))
		}
	}

	// Output
	if c.Output.Path == "" {
		result.Errors = append(result.Errors, "output.path: a destination is required")
	} else if ext := filepath.Ext(c.Output.Path); ext != ".json" {
		result.Errors = append(result.Errors,
			fmt.Sprintf("output.path: extension %q is invalid — the graph is always written as .json", ext))
	}

	return result
}

// IsValid returns true if there are no errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

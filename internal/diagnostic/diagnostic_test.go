package diagnostic

import (
	"strings"
	"testing"
)

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Severity: SeverityWarning,
		Category: CategoryUnsupportedConstruct,
		File:     "src/shapes.ts",
		Line:     10,
		Column:   5,
		Message:  "declaration shape is not recognized",
		Hint:     "the node degrades to an unidentified terminal",
	}

	s := d.String()
	if !strings.Contains(s, "src/shapes.ts:10:5") {
		t.Errorf("expected file:line:col, got %q", s)
	}
	if !strings.Contains(s, "warning") {
		t.Errorf("expected 'warning', got %q", s)
	}
	if !strings.Contains(s, "[unsupported-construct]") {
		t.Errorf("expected category, got %q", s)
	}
	if !strings.Contains(s, "hint:") {
		t.Errorf("expected hint, got %q", s)
	}
}

func TestCollector_WarnAndError(t *testing.T) {
	c := NewCollector(false, false)
	c.Warn(CategoryMissingDeclaration, "test.ts", 5, "symbol has no declaration")
	c.Error(CategoryConfigInvalid, "", 0, "missing config field")

	if c.WarningCount() != 1 {
		t.Errorf("expected 1 warning, got %d", c.WarningCount())
	}
	if c.ErrorCount() != 1 {
		t.Errorf("expected 1 error, got %d", c.ErrorCount())
	}
	if !c.HasErrors() {
		t.Error("expected HasErrors() = true")
	}
}

func TestCollector_StrictMode(t *testing.T) {
	c := NewCollector(true, false) // strict mode
	c.Warn(CategoryUnsupportedConstruct, "test.ts", 1, "unrecognized type flags")

	// In strict mode, warnings become errors
	if c.ErrorCount() != 1 {
		t.Errorf("expected 1 error (strict mode), got %d", c.ErrorCount())
	}
	if c.WarningCount() != 0 {
		t.Errorf("expected 0 warnings (strict mode), got %d", c.WarningCount())
	}
}

func TestCollector_QuietMode(t *testing.T) {
	c := NewCollector(false, true) // quiet mode
	c.Warn(CategoryUnsupportedConstruct, "test.ts", 1, "unrecognized type flags")
	c.Info(CategoryOracleQuery, "test.ts", 1, "checker query retried")
	c.Error(CategoryConfigInvalid, "", 0, "real error") // errors still show

	if len(c.Diagnostics()) != 1 {
		t.Errorf("expected 1 diagnostic (only error), got %d", len(c.Diagnostics()))
	}
}

func TestCollector_Summary(t *testing.T) {
	c := NewCollector(false, false)
	c.Warn(CategoryMissingDeclaration, "a.ts", 1, "warn1")
	c.Warn(CategoryMissingDeclaration, "b.ts", 2, "warn2")
	c.Error(CategoryConfigInvalid, "", 0, "err1")

	summary := c.Summary()
	if !strings.Contains(summary, "1 error") {
		t.Errorf("expected '1 error' in summary, got %q", summary)
	}
	if !strings.Contains(summary, "2 warning") {
		t.Errorf("expected '2 warning' in summary, got %q", summary)
	}
}

func TestCollector_NilSafe(t *testing.T) {
	var c *Collector
	// Should not panic
	c.Warn(CategoryUnsupportedConstruct, "", 0, "test")
	c.Error(CategoryConfigInvalid, "", 0, "test")
	if c.HasErrors() {
		t.Error("nil collector should not have errors")
	}
	if c.Summary() != "" {
		t.Error("nil collector should return empty summary")
	}
}

func TestCollector_FormatAll(t *testing.T) {
	c := NewCollector(false, false)
	c.Warn(CategoryUnsupportedConstruct, "test.ts", 10, "construct not recognized")

	formatted := c.FormatAll()
	if !strings.Contains(formatted, "test.ts:10") {
		t.Errorf("expected formatted output with file:line, got %q", formatted)
	}
}

func TestCollector_WarnWithHint(t *testing.T) {
	c := NewCollector(false, false)
	c.WarnWithHint(CategoryUnsupportedConstruct, "test.ts", 5, "mapped form not recognized", "inline the container type")

	diags := c.Diagnostics()
	if len(diags) != 1 || diags[0].Hint != "inline the container type" {
		t.Errorf("expected hint, got %v", diags)
	}
}

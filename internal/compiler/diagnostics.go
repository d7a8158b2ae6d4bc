package compiler

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/microsoft/typescript-go/shim/ast"
	shimscanner "github.com/microsoft/typescript-go/shim/scanner"
)

// DiagnosticCategory mirrors tsgo's diagnostics.Category.
// Redeclared here to avoid importing the internal diagnostics package directly.
type DiagnosticCategory int

const (
	CategoryWarning    DiagnosticCategory = 0
	CategoryError      DiagnosticCategory = 1
	CategorySuggestion DiagnosticCategory = 2
	CategoryMessage    DiagnosticCategory = 3
)

func (c DiagnosticCategory) Name() string {
	switch c {
	case CategoryError:
		return "error"
	case CategoryWarning:
		return "warning"
	case CategorySuggestion:
		return "suggestion"
	case CategoryMessage:
		return "message"
	}
	return "unknown"
}

// WriteDiagnostics writes parser diagnostics in tsc plain format:
//
//	file(line,col): error TS1005: message
//
// Extraction refuses files that did not parse; this is how the refusal is
// explained.
func WriteDiagnostics(w io.Writer, diags []*ast.Diagnostic, cwd string) {
	for _, d := range diags {
		if d.File() != nil {
			line, char := shimscanner.GetECMALineAndCharacterOfPosition(d.File(), d.Pos())
			fileName := relativePath(d.File().FileName(), cwd)
			fmt.Fprintf(w, "%s(%d,%d): ", fileName, line+1, char+1)
		}
		cat := DiagnosticCategory(ast.Diagnostic_Category(d))
		fmt.Fprintf(w, "%s TS%d: %s\n", cat.Name(), d.Code(), d.String())
	}
}

// CountErrors returns the number of CategoryError diagnostics.
func CountErrors(diags []*ast.Diagnostic) int {
	count := 0
	for _, d := range diags {
		if DiagnosticCategory(ast.Diagnostic_Category(d)) == CategoryError {
			count++
		}
	}
	return count
}

// FilesWithSyntaxErrors returns source file paths that have syntactic diagnostics.
func FilesWithSyntaxErrors(diags []*ast.Diagnostic) map[string]bool {
	files := make(map[string]bool)
	for _, d := range diags {
		if d.File() != nil {
			files[d.File().FileName()] = true
		}
	}
	return files
}

// relativePath converts an absolute path to relative if possible.
func relativePath(absPath string, cwd string) string {
	if cwd == "" {
		return absPath
	}
	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}
	return rel
}

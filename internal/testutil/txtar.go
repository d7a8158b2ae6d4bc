package testutil

import (
	"strings"
	"testing"

	"github.com/microsoft/typescript-go/shim/tspath"
	"golang.org/x/tools/txtar"
)

// LoadFixture parses a txtar archive and returns its files as a virtual-file
// map rooted at rootDir, ready for NewDefaultOverlayVFS. File names in the
// archive are relative; they are resolved against rootDir.
func LoadFixture(t *testing.T, path string, rootDir string) map[string]string {
	t.Helper()

	archive, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("parsing fixture %q: %v", path, err)
	}
	return fixtureFiles(archive, rootDir)
}

// ParseFixture is LoadFixture for inline archive text.
func ParseFixture(data string, rootDir string) map[string]string {
	return fixtureFiles(txtar.Parse([]byte(data)), rootDir)
}

func fixtureFiles(archive *txtar.Archive, rootDir string) map[string]string {
	files := make(map[string]string, len(archive.Files))
	for _, f := range archive.Files {
		resolved := tspath.ResolvePath(rootDir, strings.TrimSpace(f.Name))
		files[resolved] = string(f.Data)
	}
	return files
}

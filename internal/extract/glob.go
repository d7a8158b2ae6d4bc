package extract

import (
	"path/filepath"
	"strings"
)

// MatchesEntry checks if a file path matches any of the include patterns
// and does not match any of the exclude patterns. With no include patterns
// every non-excluded file matches.
func MatchesEntry(filePath string, includePatterns []string, excludePatterns []string) bool {
	filePath = filepath.ToSlash(filePath)

	// Check exclude first
	for _, pattern := range excludePatterns {
		pattern = filepath.ToSlash(pattern)
		if globMatch(filePath, pattern) {
			return false
		}
	}

	if len(includePatterns) == 0 {
		return true
	}
	for _, pattern := range includePatterns {
		pattern = filepath.ToSlash(pattern)
		if globMatch(filePath, pattern) {
			return true
		}
	}

	return false
}

// globMatch matches a path against a glob pattern with ** support.
// The matching is done against suffixes of the path — if the pattern
// is "src/**/*.model.ts", it matches any file under a "src/" directory
// whose name matches "*.model.ts".
func globMatch(filePath, pattern string) bool {
	// Try exact match first
	if matched, _ := filepath.Match(pattern, filePath); matched {
		return true
	}

	// Handle ** glob patterns
	if strings.Contains(pattern, "**") {
		parts := strings.SplitN(pattern, "**", 2)
		prefix := strings.TrimSuffix(parts[0], "/")
		suffix := strings.TrimPrefix(parts[1], "/")

		if prefix == "" {
			// Pattern like **/*.model.ts — match suffix against any file
			if suffix == "" {
				return true
			}
			fileName := filepath.Base(filePath)
			if matched, _ := filepath.Match(suffix, fileName); matched {
				return true
			}
		} else {
			// Pattern like src/**/*.model.ts — find prefix in path, then match suffix
			searchStr := "/" + prefix + "/"
			idx := strings.Index(filePath, searchStr)
			if idx >= 0 {
				remaining := filePath[idx+len(searchStr):]
				if suffix == "" {
					return true
				}
				fileName := filepath.Base(remaining)
				if matched, _ := filepath.Match(suffix, fileName); matched {
					return true
				}
				if matched, _ := filepath.Match(suffix, remaining); matched {
					return true
				}
			}
		}
	} else {
		// No ** — match the pattern against the same number of trailing
		// path segments, so "src/*.ts" requires a src/ parent instead of
		// matching every basename.
		patternSegs := strings.Split(pattern, "/")
		pathSegs := strings.Split(filePath, "/")
		if len(pathSegs) >= len(patternSegs) {
			tail := strings.Join(pathSegs[len(pathSegs)-len(patternSegs):], "/")
			if matched, _ := filepath.Match(pattern, tail); matched {
				return true
			}
		}
	}

	return false
}

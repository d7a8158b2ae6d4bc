
// Code generated by tools/gen_shims. DO NOT EDIT.

package vfs

import "github.com/dlclark/regexp2"
import "github.com/microsoft/typescript-go/internal/vfs"
import _ "unsafe"

type DirEntry = vfs.DirEntry
type Entries = vfs.Entries
var ErrClosed = vfs.ErrClosed
var ErrExist = vfs.ErrExist
var ErrInvalid = vfs.ErrInvalid
var ErrNotExist = vfs.ErrNotExist
var ErrPermission = vfs.ErrPermission
type FS = vfs.FS
type FileInfo = vfs.FileInfo
type FileMatcherPatterns = vfs.FileMatcherPatterns
//go:linkname GetPatternFromSpec github.com/microsoft/typescript-go/internal/vfs.GetPatternFromSpec
func GetPatternFromSpec(spec string, basePath string, usage vfs.Usage) string
//go:linkname GetRegexFromPattern github.com/microsoft/typescript-go/internal/vfs.GetRegexFromPattern
func GetRegexFromPattern(pattern string, useCaseSensitiveFileNames bool) *regexp2.Regexp
//go:linkname GetRegularExpressionForWildcard github.com/microsoft/typescript-go/internal/vfs.GetRegularExpressionForWildcard
func GetRegularExpressionForWildcard(specs []string, basePath string, usage vfs.Usage) string
//go:linkname GetRegularExpressionsForWildcards github.com/microsoft/typescript-go/internal/vfs.GetRegularExpressionsForWildcards
func GetRegularExpressionsForWildcards(specs []string, basePath string, usage vfs.Usage) []string
//go:linkname GetSubPatternFromSpec github.com/microsoft/typescript-go/internal/vfs.GetSubPatternFromSpec
func GetSubPatternFromSpec(spec string, basePath string, usage vfs.Usage, matcher vfs.WildcardMatcher) string
//go:linkname IsImplicitGlob github.com/microsoft/typescript-go/internal/vfs.IsImplicitGlob
func IsImplicitGlob(lastPathComponent string) bool
//go:linkname ReadDirectory github.com/microsoft/typescript-go/internal/vfs.ReadDirectory
func ReadDirectory(host vfs.FS, currentDir string, path string, extensions []string, excludes []string, includes []string, depth *int) []string
var SkipAll = vfs.SkipAll
var SkipDir = vfs.SkipDir
type Usage = vfs.Usage
const UsageDirectories = vfs.UsageDirectories
const UsageExclude = vfs.UsageExclude
const UsageFiles = vfs.UsageFiles
type WalkDirFunc = vfs.WalkDirFunc
type WildcardMatcher = vfs.WildcardMatcher

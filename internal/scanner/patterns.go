package scanner

import (
	"regexp"
	"strings"
)

// PatternKind names one of the import-like constructs recognized in source text.
type PatternKind string

const (
	// StaticImport matches `import x from 'pkg'`, `import { a } from "pkg"`,
	// `import * as ns from 'pkg'` and the bare `import 'pkg'`.
	StaticImport PatternKind = "static-import"
	// Require matches `require('pkg')`.
	Require PatternKind = "require"
	// DynamicImport matches `import('pkg')`.
	DynamicImport PatternKind = "dynamic-import"
)

// Pattern is a single extraction rule. The first capture group holds the target.
type Pattern struct {
	Kind   PatternKind
	Regexp *regexp.Regexp
}

//nolint:gochecknoglobals // compiled once, read-only
var patterns = []Pattern{
	{Kind: StaticImport, Regexp: regexp.MustCompile(`import\s+(?:[\w{},*\s]+\s+from\s+)?['"]([^'"]+)['"]`)},
	{Kind: Require, Regexp: regexp.MustCompile(`require\s*\(['"]([^'"]+)['"]\)`)},
	{Kind: DynamicImport, Regexp: regexp.MustCompile(`import\s*\(['"]([^'"]+)['"]\)`)},
}

// Patterns returns a copy of the recognized extraction rules.
func Patterns() []Pattern {
	out := make([]Pattern, len(patterns))
	copy(out, patterns)
	return out
}

// ExtractPackageReferences returns the unique package names referenced by content.
// Each pattern runs independently over the whole text and the results are unioned.
// Relative and absolute targets never produce a reference.
func ExtractPackageReferences(content string) map[string]struct{} {
	found := make(map[string]struct{})
	for _, p := range patterns {
		for _, match := range p.Regexp.FindAllStringSubmatch(content, -1) {
			if len(match) < 2 { //nolint:mnd // full match + target
				continue
			}
			if name := NormalizePackageName(match[1]); name != "" {
				found[name] = struct{}{}
			}
		}
	}
	return found
}

// NormalizePackageName maps an import target to the package that provides it:
// "lodash/debounce" -> "lodash", "@scope/pkg/deep" -> "@scope/pkg".
// Targets starting with "." or "/" are local files and yield "".
func NormalizePackageName(target string) string {
	if strings.HasPrefix(target, ".") || strings.HasPrefix(target, "/") {
		return ""
	}

	parts := strings.Split(target, "/")
	if strings.HasPrefix(target, "@") {
		if len(parts) >= 2 { //nolint:mnd // scope + name
			return parts[0] + "/" + parts[1]
		}
		return target
	}

	return parts[0]
}

package glob

import (
	"runtime"
	"strings"
)

// NormalizePath turns a path into the repository-relative form expected by
// MatchesRepoRelativePath.
//
// Normalization steps (applied in order):
//  1. Convert backslashes to forward slashes (Windows only; on Linux \ is valid in filenames)
//  2. Collapse consecutive slashes
//  3. Remove leading "./" prefixes and leading slashes
//  4. Remove trailing slash
func NormalizePath(p string) string {
	// Step 1: Convert backslashes to forward slashes (Windows only).
	// Git only performs this conversion on Windows.
	if runtime.GOOS == "windows" {
		p = strings.ReplaceAll(p, "\\", "/")
	}

	// Step 2: Collapse consecutive slashes (must happen before trailing slash removal)
	if strings.Contains(p, "//") {
		var b strings.Builder
		b.Grow(len(p))
		prevSlash := false
		for i := 0; i < len(p); i++ {
			if p[i] == '/' {
				if !prevSlash {
					b.WriteByte('/')
				}
				prevSlash = true
			} else {
				b.WriteByte(p[i])
				prevSlash = false
			}
		}
		p = b.String()
	}

	// Step 3: Remove leading ./ and / (all occurrences for idempotency)
	for {
		if strings.HasPrefix(p, "./") {
			p = p[2:]
		} else if strings.HasPrefix(p, "/") {
			p = p[1:]
		} else {
			break
		}
	}

	// Step 4: Remove trailing slash
	return strings.TrimSuffix(p, "/")
}

// NormalizeBasePath normalizes the directory that scopes a set of patterns.
// The result is empty for the repository root and otherwise ends with "/",
// as MatchesRepoRelativePath requires.
func NormalizeBasePath(basePath string) string {
	basePath = NormalizePath(basePath)
	if basePath == "" || basePath == "." {
		return ""
	}
	return basePath + "/"
}

// BasenameStart returns the offset at which the last segment of path
// begins, or -1 if path contains no slash.
func BasenameStart(path string) int {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return -1
	}
	return i + 1
}

// trimTrailingSpaces removes trailing spaces from a pattern unless they are
// escaped with a backslash. The backslash stays in place so the glob
// matcher sees the escape:
//   - "foo "    → "foo"
//   - "foo\ "   → "foo\ "
//   - "foo\  "  → "foo\ "
//   - "foo\\ "  → "foo\\"
//
// Tabs are not trimmed, matching git.
func trimTrailingSpaces(s string) string {
	lastSpace := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ':
			if lastSpace < 0 {
				lastSpace = i
			}
		case '\\':
			i++
			if i >= len(s) {
				return s
			}
			lastSpace = -1
		default:
			lastSpace = -1
		}
	}
	if lastSpace >= 0 {
		return s[:lastSpace]
	}
	return s
}

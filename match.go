package glob

import (
	"strings"

	"github.com/Sriram-PR/go-glob/wildmatch"
)

// MatchesRepoRelativePath reports whether p covers path.
//
// path is relative to the repository root and uses "/" as its only
// separator. basenameStart is the offset of path's last segment as returned
// by BasenameStart, or -1 if path has no slash. basePath is the directory
// that scopes p; it is empty for the root and otherwise ends with "/" and
// is a prefix of path. isDir tells whether path names a directory.
//
// The result does not account for IsNegative; callers combining several
// patterns apply the negation themselves.
//
// The preconditions are not verified unless the package is built with the
// globdebug tag, in which case violations panic. Use
// MatchesRepoRelativePathChecked to have them reported as errors.
func (p Pattern) MatchesRepoRelativePath(path string, basenameStart int, basePath string, isDir bool, c Case) bool {
	if !isDir && p.mode.Contains(MustBeDir) {
		return false
	}

	if debugChecks {
		if err := ValidatePathContext(path, basenameStart, basePath); err != nil {
			panic("glob: BUG: " + err.Error())
		}
	}

	mode := wildmatch.NoMatchSlashLiteral
	if c == CaseFold {
		mode |= wildmatch.IgnoreCase
	}

	text, pos := p.text, p.firstWildcardPos
	if p.mode.Contains(Absolute) {
		text = text[1:]
		if pos >= 0 {
			pos--
		}
	}

	if p.mode.Contains(NoSubDir) {
		var basename string
		switch {
		case p.mode.Contains(Absolute):
			rel, ok := stripBase(path, basePath)
			if !ok {
				return false
			}
			basename = rel
		case basenameStart > 0:
			basename = path[basenameStart:]
		default:
			basename = path
		}
		return p.matchesInner(text, pos, basename, mode)
	}

	rel, ok := stripBase(path, basePath)
	if !ok {
		return false
	}
	return p.matchesInner(text, pos, rel, mode)
}

// Matches reports whether value matches p under mode.
//
// value is compared as a whole: no anchoring, basename extraction or
// directory rule applies. With wildmatch.NoMatchSlashLiteral set, wildcards
// do not match "/". Case folding is ASCII only.
func (p Pattern) Matches(value string, mode wildmatch.Mode) bool {
	return p.matchesInner(p.text, p.firstWildcardPos, value, mode)
}

// matchesInner compares value with text, taking shortcuts where they give
// the same answer as wildmatch.Match(text, value, mode).
func (p Pattern) matchesInner(text string, firstWildcardPos int, value string, mode wildmatch.Mode) bool {
	fold := mode.Contains(wildmatch.IgnoreCase)

	// Literal
	if firstWildcardPos < 0 {
		if fold {
			return equalFoldASCII(text, value)
		}
		return text == value
	}

	// "*literal": compare the tail; overrides the prefix check
	if p.mode.Contains(EndsWith) && strings.IndexByte(value, '/') < 0 {
		suffix := text[firstWildcardPos+1:]
		if len(value) < len(suffix) {
			return false
		}
		tail := value[len(value)-len(suffix):]
		if fold {
			return equalFoldASCII(suffix, tail)
		}
		return suffix == tail
	}

	// The literal prefix before the first wildcard must match exactly
	prefix := text[:firstWildcardPos]
	if len(value) < len(prefix) {
		return false
	}
	if fold {
		if !equalFoldASCII(prefix, value[:len(prefix)]) {
			return false
		}
	} else if value[:len(prefix)] != prefix {
		return false
	}

	return wildmatch.Match(text, value, mode)
}

// stripBase removes basePath from the front of path. It reports false when
// path lies outside basePath.
func stripBase(path, basePath string) (string, bool) {
	if basePath == "" {
		return path, true
	}
	if !strings.HasPrefix(path, basePath) {
		return "", false
	}
	return path[len(basePath):], true
}

// equalFoldASCII reports whether a and b are equal under ASCII-only case
// folding. Unlike strings.EqualFold it never applies Unicode folding.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

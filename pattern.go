package glob

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPattern is returned by NewPattern when the given parts violate
// the invariants of a compiled pattern.
var ErrInvalidPattern = errors.New("invalid pattern")

// globChars are the bytes that give a pattern wildcard meaning.
const globChars = `*?[\`

// Pattern is a compiled gitignore-style pattern.
//
// A Pattern is immutable once created and safe to share between goroutines.
// The zero value is not a valid pattern; use Parse or NewPattern.
type Pattern struct {
	text             string // normalized pattern text, never empty
	mode             Mode   // flags derived while compiling
	firstWildcardPos int    // offset of the first glob character, -1 for literals
}

// Parse compiles a single raw pattern, as it would appear on one line of
// an ignore file, into a Pattern. It reports false if nothing is left to
// match once the negation, anchoring and directory markers are removed.
//
// Comments and blank lines are not recognized here; callers drop them
// before calling Parse.
func Parse(text string) (Pattern, bool) {
	// Step 1: Nothing to compile
	if text == "" {
		return Pattern{}, false
	}

	// Step 2: Handle negation and the \! and \# escapes
	var mode Mode
	if text[0] == '!' {
		mode |= Negative
		text = text[1:]
	} else if strings.HasPrefix(text, `\!`) || strings.HasPrefix(text, `\#`) {
		text = text[1:]
	}

	// Step 3: Whitespace-only patterns never match
	if isBlank(text) {
		return Pattern{}, false
	}

	// Step 4: Anchoring. The leading slash stays in the text and is skipped
	// at match time.
	if text[0] == '/' {
		mode |= Absolute
	}

	// Step 5: Trailing spaces are dropped unless escaped
	text = trimTrailingSpaces(text)

	// Step 6: Directory-only (trailing /)
	if strings.HasSuffix(text, "/") {
		mode |= MustBeDir
		text = text[:len(text)-1]
	}

	// Step 7: Something must remain after the anchor
	body := text
	if mode.Contains(Absolute) {
		body = strings.TrimPrefix(text, "/")
	}
	if body == "" {
		return Pattern{}, false
	}

	// Step 8: Classify the shape for the matching shortcuts
	if !strings.Contains(body, "/") {
		mode |= NoSubDir
	}
	if text[0] == '*' && !strings.ContainsAny(text[1:], globChars) {
		mode |= EndsWith
	}

	return Pattern{
		text:             text,
		mode:             mode,
		firstWildcardPos: strings.IndexAny(text, globChars),
	}, true
}

// MustParse is like Parse but panics if text does not compile.
// It simplifies initialization of patterns known at compile time.
func MustParse(text string) Pattern {
	p, ok := Parse(text)
	if !ok {
		panic(fmt.Sprintf("glob: pattern %q does not compile", text))
	}
	return p
}

// NewPattern assembles a Pattern from parts produced by another compiler.
// firstWildcardPos is -1 when text holds no glob character.
func NewPattern(text string, mode Mode, firstWildcardPos int) (Pattern, error) {
	switch {
	case text == "":
		return Pattern{}, fmt.Errorf("%w: empty text", ErrInvalidPattern)
	case firstWildcardPos < -1 || firstWildcardPos >= len(text):
		return Pattern{}, fmt.Errorf("%w: wildcard position %d out of range for %q", ErrInvalidPattern, firstWildcardPos, text)
	case mode.Contains(Absolute) && (len(text) < 2 || text[0] != '/'):
		return Pattern{}, fmt.Errorf("%w: absolute pattern %q must start with / and name something", ErrInvalidPattern, text)
	case mode.Contains(Absolute) && firstWildcardPos == 0:
		return Pattern{}, fmt.Errorf("%w: absolute pattern %q has a wildcard at its anchor", ErrInvalidPattern, text)
	}
	return Pattern{text: text, mode: mode, firstWildcardPos: firstWildcardPos}, nil
}

// Text returns the normalized pattern text. Absolute patterns keep their
// leading slash.
func (p Pattern) Text() string {
	return p.text
}

// Mode returns the flags derived while compiling.
func (p Pattern) Mode() Mode {
	return p.mode
}

// FirstWildcard returns the offset of the first glob character in Text, and
// false if the pattern is a literal.
func (p Pattern) FirstWildcard() (int, bool) {
	return p.firstWildcardPos, p.firstWildcardPos >= 0
}

// IsNegative reports whether a match of this pattern should be negated by
// the caller.
func (p Pattern) IsNegative() bool {
	return p.mode.Contains(Negative)
}

// String returns a debug representation of the pattern.
func (p Pattern) String() string {
	prefix := ""
	if p.IsNegative() {
		prefix = "!"
	}
	suffix := ""
	if p.mode.Contains(MustBeDir) {
		suffix = "/"
	}
	return prefix + p.text + suffix + " [" + p.mode.String() + "]"
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
		default:
			return false
		}
	}
	return true
}

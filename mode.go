package glob

import (
	"strings"
)

// Mode holds information about a Pattern that was derived when compiling it.
//
// Its main purpose is to accelerate matching, to mark a pattern as negated,
// or to enable rules that only apply when matching paths.
type Mode uint32

const (
	// NoSubDir is set when the pattern contains no "/" once the anchoring
	// and the trailing slash are removed. Such a pattern is compared against
	// the basename only.
	NoSubDir Mode = 1 << iota
	// EndsWith is set for "*literal" patterns.
	EndsWith
	// MustBeDir is set when the pattern had a trailing "/".
	MustBeDir
	// Negative is set when the pattern started with "!". Matching does not
	// apply it; callers do.
	Negative
	// Absolute is set when the pattern starts with "/" and only matches
	// from the root of its scope.
	Absolute
)

var modeNames = []struct {
	flag Mode
	name string
}{
	{NoSubDir, "noSubDir"},
	{EndsWith, "endsWith"},
	{MustBeDir, "mustBeDir"},
	{Negative, "negative"},
	{Absolute, "absolute"},
}

// Contains reports whether all bits of f are set in m.
func (m Mode) Contains(f Mode) bool {
	return m&f == f
}

// String returns the set flags joined by "|", or "none".
func (m Mode) String() string {
	var names []string
	for _, n := range modeNames {
		if m.Contains(n.flag) {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// Case describes whether paths are matched case-sensitively.
type Case int

const (
	// CaseSensitive compares bytes as they are.
	CaseSensitive Case = iota
	// CaseFold ignores the case of ASCII letters.
	CaseFold
)

func (c Case) String() string {
	if c == CaseFold {
		return "fold"
	}
	return "sensitive"
}

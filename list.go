package glob

// ParseWarning reports a raw pattern that List could not compile.
type ParseWarning struct {
	Pattern  string // The raw pattern as given
	Message  string // Human-readable warning message
	Index    int    // Position of the pattern in the input (0-indexed)
	BasePath string // Scope of the list (empty for root)
}

// Match describes one pattern of a List that covers a path.
type Match struct {
	// Pattern is the compiled pattern that matched.
	Pattern Pattern

	// Source is the raw pattern text the List was built from.
	Source string

	// Index is the position of the pattern in the input, counting skipped
	// patterns as well, so it lines up with the caller's source.
	Index int

	// Negative mirrors Pattern.IsNegative for convenience.
	Negative bool
}

// ListOptions configures List behavior.
type ListOptions struct {
	// Case selects case-sensitive (default, as git) or ASCII-folded matching.
	Case Case
}

// List holds patterns compiled for a single scope, such as the contents of
// one ignore file.
//
// A List never decides between its patterns: Matching reports every pattern
// that covers a path, in input order, and leaves negation and precedence to
// the caller. A List is immutable and safe for concurrent use.
type List struct {
	basePath string
	patterns []Pattern
	sources  []string
	indexes  []int
	opts     ListOptions
}

// NewList compiles raw patterns scoped to basePath, the directory holding
// them relative to the repository root ("" for the root). Patterns that do
// not compile are skipped and reported as warnings.
func NewList(basePath string, patterns []string, opts ListOptions) (*List, []ParseWarning) {
	l := &List{
		basePath: NormalizeBasePath(basePath),
		patterns: make([]Pattern, 0, len(patterns)),
		sources:  make([]string, 0, len(patterns)),
		indexes:  make([]int, 0, len(patterns)),
		opts:     opts,
	}

	var warnings []ParseWarning
	for i, raw := range patterns {
		p, ok := Parse(raw)
		if !ok {
			warnings = append(warnings, ParseWarning{
				Pattern:  raw,
				Message:  "pattern is empty after processing",
				Index:    i,
				BasePath: l.basePath,
			})
			continue
		}
		l.patterns = append(l.patterns, p)
		l.sources = append(l.sources, raw)
		l.indexes = append(l.indexes, i)
	}
	return l, warnings
}

// BasePath returns the normalized scope of the list.
func (l *List) BasePath() string {
	return l.basePath
}

// Len returns the number of compiled patterns.
func (l *List) Len() int {
	return len(l.patterns)
}

// Patterns returns a copy of the compiled patterns.
func (l *List) Patterns() []Pattern {
	out := make([]Pattern, len(l.patterns))
	copy(out, l.patterns)
	return out
}

// Matching returns every pattern covering path, in input order.
//
// path is normalized with NormalizePath first. Paths outside the list's
// base path are never covered.
func (l *List) Matching(path string, isDir bool) []Match {
	path = NormalizePath(path)
	if path == "" {
		return nil
	}
	if l.basePath != "" && (len(path) < len(l.basePath) || path[:len(l.basePath)] != l.basePath) {
		return nil
	}

	basenameStart := BasenameStart(path)

	var matches []Match
	for i := range l.patterns {
		p := l.patterns[i]
		if p.MatchesRepoRelativePath(path, basenameStart, l.basePath, isDir, l.opts.Case) {
			matches = append(matches, Match{
				Pattern:  p,
				Source:   l.sources[i],
				Index:    l.indexes[i],
				Negative: p.IsNegative(),
			})
		}
	}
	return matches
}

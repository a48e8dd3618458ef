// Package glob matches gitignore-style patterns against repository paths.
//
// A pattern is compiled once with Parse and can then be matched against any
// number of paths, from any number of goroutines, without locking. Matching
// gives the same answers as git's wildmatch algorithm (see the wildmatch
// subpackage) but avoids running it for plain literals, "*suffix" patterns
// and values whose literal prefix already differs.
//
// # Basic Usage
//
//	p := glob.MustParse("*.log")
//
//	path := "logs/debug.log"
//	if p.MatchesRepoRelativePath(path, glob.BasenameStart(path), "", false, glob.CaseSensitive) {
//	    // path is covered by p
//	}
//
// # Path Context
//
// MatchesRepoRelativePath applies the rules that depend on where a pattern
// came from and what it is matched against:
//
//   - Trailing /: "build/" only matches directories
//   - Leading /: "/debug.log" only matches directly below the base path
//   - No slash: "debug.log" matches the basename at any depth
//   - Base path: patterns of "src/.gitignore" are scoped with base path "src/"
//
// Negation ("!keep.log") is recorded with IsNegative but never applied by
// the matcher; callers that combine many patterns decide precedence.
//
// # Plain Values
//
// Matches compares a pattern with an arbitrary string, with or without
// letting wildcards cross "/":
//
//	glob.MustParse("*.log").Matches("a/error.log", wildmatch.NoMatchSlashLiteral) // false
//	glob.MustParse("*.log").Matches("a/error.log", 0)                             // true
//
// # Preconditions
//
// MatchesRepoRelativePath trusts its caller. Building with -tags globdebug
// turns precondition violations into panics; MatchesRepoRelativePathChecked
// reports them as errors instead.
package glob

//go:build globdebug

package glob

// debugChecks enables precondition checks in MatchesRepoRelativePath.
const debugChecks = true

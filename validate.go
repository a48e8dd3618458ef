package glob

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is wrapped by every PathContextError.
var ErrInvalidInput = errors.New("invalid path context")

// PathContextError describes a path, basename offset or base path that
// violates the preconditions of MatchesRepoRelativePath.
type PathContextError struct {
	Path          string // The candidate path
	BasePath      string // The scoping directory (empty for the root)
	BasenameStart int    // The offset the caller supplied
	Reason        string // Human-readable description of the violation
}

func (e *PathContextError) Error() string {
	return fmt.Sprintf("%s: %s (path %q, base %q, basename start %d)",
		ErrInvalidInput, e.Reason, e.Path, e.BasePath, e.BasenameStart)
}

// Unwrap returns ErrInvalidInput.
func (e *PathContextError) Unwrap() error {
	return ErrInvalidInput
}

// ValidatePathContext checks the inputs of MatchesRepoRelativePath:
//   - basenameStart is one past the last slash of path, or -1 without slash
//   - basePath is empty or ends with "/"
//   - path does not start with "/"
//   - path starts with basePath
func ValidatePathContext(path string, basenameStart int, basePath string) error {
	fail := func(reason string) error {
		return &PathContextError{Path: path, BasePath: basePath, BasenameStart: basenameStart, Reason: reason}
	}
	if want := BasenameStart(path); basenameStart != want {
		return fail(fmt.Sprintf("basename start must be %d", want))
	}
	if basePath != "" && !strings.HasSuffix(basePath, "/") {
		return fail("base path must end with a slash")
	}
	if strings.HasPrefix(path, "/") {
		return fail("path must be relative")
	}
	if !strings.HasPrefix(path, basePath) {
		return fail("path lies outside the base path")
	}
	return nil
}

// MatchesRepoRelativePathChecked validates its inputs with
// ValidatePathContext and then behaves like MatchesRepoRelativePath.
func (p Pattern) MatchesRepoRelativePathChecked(path string, basenameStart int, basePath string, isDir bool, c Case) (bool, error) {
	if err := ValidatePathContext(path, basenameStart, basePath); err != nil {
		return false, err
	}
	return p.MatchesRepoRelativePath(path, basenameStart, basePath, isDir, c), nil
}

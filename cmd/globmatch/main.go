// Command globmatch reports which gitignore-style patterns cover each of a
// list of repository-relative paths.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

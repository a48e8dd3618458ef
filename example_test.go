package glob_test

import (
	"fmt"

	glob "github.com/Sriram-PR/go-glob"
	"github.com/Sriram-PR/go-glob/wildmatch"
)

func ExampleParse() {
	p, ok := glob.Parse("!/build/")
	fmt.Println(ok, p.Text(), p.Mode())

	_, ok = glob.Parse("!")
	fmt.Println(ok)
	// Output:
	// true /build noSubDir|mustBeDir|negative|absolute
	// false
}

func ExamplePattern_MatchesRepoRelativePath() {
	p := glob.MustParse("*.log")

	for _, path := range []string{"debug.log", "logs/debug.log", "debug.log.txt"} {
		fmt.Println(path, p.MatchesRepoRelativePath(path, glob.BasenameStart(path), "", false, glob.CaseSensitive))
	}
	// Output:
	// debug.log true
	// logs/debug.log true
	// debug.log.txt false
}

func ExamplePattern_MatchesRepoRelativePath_basePath() {
	// Patterns read from src/.gitignore
	p := glob.MustParse("/generated.go")
	base := glob.NormalizeBasePath("src")

	for _, path := range []string{"src/generated.go", "src/pkg/generated.go"} {
		fmt.Println(path, p.MatchesRepoRelativePath(path, glob.BasenameStart(path), base, false, glob.CaseSensitive))
	}
	// Output:
	// src/generated.go true
	// src/pkg/generated.go false
}

func ExamplePattern_Matches() {
	p := glob.MustParse("*.log")

	fmt.Println(p.Matches("a/error.log", wildmatch.NoMatchSlashLiteral))
	fmt.Println(p.Matches("a/error.log", 0))
	fmt.Println(p.Matches("ERROR.LOG", wildmatch.IgnoreCase))
	// Output:
	// false
	// true
	// true
}

func ExampleList_Matching() {
	l, warnings := glob.NewList("", []string{"*.log", "!important.log", "/"}, glob.ListOptions{})
	for _, w := range warnings {
		fmt.Printf("skipped %q: %s\n", w.Pattern, w.Message)
	}

	for _, m := range l.Matching("important.log", false) {
		fmt.Printf("%d %s negative=%v\n", m.Index, m.Source, m.Negative)
	}
	// Output:
	// skipped "/": pattern is empty after processing
	// 0 *.log negative=false
	// 1 !important.log negative=true
}

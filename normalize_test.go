package glob

import (
	"runtime"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// Basic cases
		{"empty string", "", ""},
		{"simple path", "foo/bar", "foo/bar"},
		{"single file", "file.txt", "file.txt"},

		// Leading ./ removal
		{"leading dot slash", "./foo", "foo"},
		{"leading dot slash nested", "./foo/bar", "foo/bar"},
		{"dot slash only", "./", ""},
		{"multiple leading dot slash", "././foo", "foo"},

		// Leading slash removal
		{"leading slash", "/foo", "foo"},
		{"leading double slash", "//foo", "foo"},
		{"slash then dot slash", "/./foo", "foo"},

		// Trailing slash removal
		{"trailing slash", "foo/", "foo"},
		{"trailing slash nested", "foo/bar/", "foo/bar"},
		{"only slash", "/", ""},

		// Double slash collapse
		{"double slash", "foo//bar", "foo/bar"},
		{"triple slash", "foo///bar", "foo/bar"},
		{"multiple double slashes", "foo//bar//baz", "foo/bar/baz"},

		// Edge cases
		{"just dot", ".", "."},
		{"dot dot", "..", ".."},
		{"dot in middle", "foo/./bar", "foo/./bar"}, // Only leading ./ is removed
		{"hidden file", ".gitignore", ".gitignore"},
		{"hidden dir", ".git/config", ".git/config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePath(tt.input)
			if got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePath_Backslashes(t *testing.T) {
	tests := []struct {
		input   string
		windows string
		other   string
	}{
		{"foo\\bar", "foo/bar", "foo\\bar"},
		{"foo\\bar/baz", "foo/bar/baz", "foo\\bar/baz"},
		{"foo\\bar\\", "foo/bar", "foo\\bar\\"},
		{".\\foo\\\\bar/baz//qux/", "foo/bar/baz/qux", ".\\foo\\\\bar/baz/qux"},
	}

	for _, tt := range tests {
		want := tt.other
		if runtime.GOOS == "windows" {
			want = tt.windows
		}
		if got := NormalizePath(tt.input); got != want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.input, got, want)
		}
	}
}

func TestNormalizeBasePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// Empty is repository root
		{"empty string", "", ""},
		{"dot", ".", ""},
		{"dot slash", "./", ""},
		{"slash", "/", ""},

		// Trailing slash added
		{"simple path", "src", "src/"},
		{"nested path", "src/lib", "src/lib/"},
		{"trailing slash kept", "src/", "src/"},

		// Leading ./ removed
		{"leading dot slash", "./src", "src/"},
		{"leading slash", "/src/lib", "src/lib/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeBasePath(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeBasePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBasenameStart(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"", -1},
		{"foo", -1},
		{"a/foo", 2},
		{"a/b/foo", 4},
		{"a/", 2},
		{"/foo", 1},
	}

	for _, tt := range tests {
		if got := BasenameStart(tt.path); got != tt.want {
			t.Errorf("BasenameStart(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}

func TestTrimTrailingSpaces(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// No whitespace
		{"no whitespace", "*.log", "*.log"},
		{"empty", "", ""},

		// Trailing spaces
		{"trailing space", "*.log ", "*.log"},
		{"multiple trailing spaces", "*.log   ", "*.log"},

		// Escaped spaces keep their backslash
		{"escaped space", `foo\ `, `foo\ `},
		{"escaped then plain", `foo\  `, `foo\ `},
		{"escaped backslash then space", `foo\\ `, `foo\\`},
		{"dangling backslash", `foo\`, `foo\`},

		// Tabs are not spaces
		{"trailing tab", "*.log\t", "*.log\t"},
		{"space then tab", "*.log \t", "*.log \t"},
		{"tab then space", "*.log\t ", "*.log\t"},

		// Leading and middle spaces preserved
		{"leading space", " *.log", " *.log"},
		{"leading and trailing", " *.log ", " *.log"},
		{"middle space", "foo bar.txt", "foo bar.txt"},
		{"middle and trailing", "foo bar.txt  ", "foo bar.txt"},

		// Only whitespace
		{"only spaces", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trimTrailingSpaces(tt.input)
			if got != tt.want {
				t.Errorf("trimTrailingSpaces(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestNormalizePathIdempotent verifies that normalizing twice produces same result
func TestNormalizePathIdempotent(t *testing.T) {
	paths := []string{
		"foo/bar",
		"foo\\bar",
		"./foo",
		"foo/",
		"foo//bar",
		".\\foo\\\\bar/",
		"././foo",
		"./././bar",
		"/./foo//",
		".//foo",
	}

	for _, p := range paths {
		first := NormalizePath(p)
		second := NormalizePath(first)
		if first != second {
			t.Errorf("NormalizePath not idempotent: NormalizePath(%q) = %q, NormalizePath(%q) = %q",
				p, first, first, second)
		}
	}
}

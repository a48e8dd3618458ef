// Package wildmatch implements git's wildmatch algorithm for shell-style
// glob patterns.
//
// Supported syntax:
//
//   - "*" matches zero or more bytes
//   - "**" matches across "/" when it forms a whole path segment
//   - "?" matches exactly one byte
//   - "[abc]", "[a-z]", "[!a]", "[^a]" and "[[:alpha:]]" match one byte from a set
//   - "\x" matches x literally
//
// With NoMatchSlashLiteral set, "*", "?" and bracket expressions never match
// "/"; only "**" in a segment of its own can cross directories.
package wildmatch

// Mode controls how Match compares a pattern with a value.
type Mode uint32

const (
	// NoMatchSlashLiteral makes "/" special: only "**" may match it.
	NoMatchSlashLiteral Mode = 1 << iota
	// IgnoreCase folds ASCII letters on both sides before comparing.
	IgnoreCase
)

// Contains reports whether all bits of f are set in m.
func (m Mode) Contains(f Mode) bool {
	return m&f == f
}

// String returns a debug representation of the mode.
func (m Mode) String() string {
	switch m {
	case 0:
		return "none"
	case NoMatchSlashLiteral:
		return "no-match-slash-literal"
	case IgnoreCase:
		return "ignore-case"
	case NoMatchSlashLiteral | IgnoreCase:
		return "no-match-slash-literal|ignore-case"
	}
	return "unknown"
}

// result of a single dowild invocation.
type result int

const (
	matched result = iota
	noMatch
	// abortAll stops every enclosing star from trying longer spans.
	abortAll
	// abortToStarStar stops enclosing single stars but lets "**" continue.
	abortToStarStar
)

// Match reports whether value matches pattern under mode.
func Match(pattern, value string, mode Mode) bool {
	return dowild(pattern, value, mode) == matched
}

func dowild(p, text string, mode Mode) result {
	fold := mode&IgnoreCase != 0
	pathname := mode&NoMatchSlashLiteral != 0

	pi, ti := 0, 0
	for pi < len(p) {
		pch := p[pi]
		if ti >= len(text) && pch != '*' {
			return abortAll
		}
		var tch byte
		if ti < len(text) {
			tch = foldByte(text[ti], fold)
		}
		pch = foldByte(pch, fold)

		switch pch {
		case '\\':
			pi++
			if pi >= len(p) {
				return abortAll
			}
			if tch != foldByte(p[pi], fold) {
				return noMatch
			}
			pi++
			ti++

		case '?':
			if pathname && tch == '/' {
				return noMatch
			}
			pi++
			ti++

		case '*':
			pi++
			matchSlash := !pathname
			if pi < len(p) && p[pi] == '*' {
				prev := pi - 2
				for pi < len(p) && p[pi] == '*' {
					pi++
				}
				if !pathname {
					matchSlash = true
				} else if (prev < 0 || p[prev] == '/') &&
					(pi == len(p) || p[pi] == '/' || (p[pi] == '\\' && pi+1 < len(p) && p[pi+1] == '/')) {
					// "**/" may match no directory at all.
					if pi < len(p) && p[pi] == '/' && dowild(p[pi+1:], text[ti:], mode) == matched {
						return matched
					}
					matchSlash = true
				} else {
					matchSlash = false
				}
			}

			if pi == len(p) {
				if !matchSlash && indexByte(text[ti:], '/') >= 0 {
					return abortToStarStar
				}
				return matched
			}
			if !matchSlash && p[pi] == '/' {
				slash := indexByte(text[ti:], '/')
				if slash < 0 {
					return abortAll
				}
				// the slash itself is consumed by the literal branch
				ti += slash
				continue
			}

			for ti < len(text) {
				if !isGlobSpecial(p[pi]) {
					lit := foldByte(p[pi], fold)
					for ti < len(text) && (matchSlash || text[ti] != '/') {
						if foldByte(text[ti], fold) == lit {
							break
						}
						ti++
					}
					if ti == len(text) {
						return abortAll
					}
					if foldByte(text[ti], fold) != lit {
						// stopped at a slash a single star cannot cross
						return abortToStarStar
					}
				}
				r := dowild(p[pi:], text[ti:], mode)
				if r != noMatch {
					if !matchSlash || r != abortToStarStar {
						return r
					}
				} else if !matchSlash && text[ti] == '/' {
					return abortToStarStar
				}
				ti++
			}
			return abortAll

		case '[':
			next, ok, r := matchClass(p, pi, tch, fold)
			if r != matched {
				return r
			}
			if !ok || (pathname && tch == '/') {
				return noMatch
			}
			pi = next
			ti++

		default:
			if tch != pch {
				return noMatch
			}
			pi++
			ti++
		}
	}

	if ti < len(text) {
		return noMatch
	}
	return matched
}

// matchClass evaluates the bracket expression starting at p[open] against
// the (already folded) byte tch. It returns the index after the closing
// bracket and whether tch belongs to the set. A malformed expression yields
// abortAll.
func matchClass(p string, open int, tch byte, fold bool) (next int, ok bool, r result) {
	i := open + 1
	if i >= len(p) {
		return 0, false, abortAll
	}
	negated := false
	if p[i] == '!' || p[i] == '^' {
		negated = true
		i++
	}

	var prev byte
	found := false
	for first := true; ; first = false {
		if i >= len(p) {
			return 0, false, abortAll
		}
		c := p[i]
		if c == ']' && !first {
			break
		}
		switch {
		case c == '\\':
			i++
			if i >= len(p) {
				return 0, false, abortAll
			}
			c = p[i]
			if tch == foldByte(c, fold) {
				found = true
			}
			prev = c
		case c == '-' && prev != 0 && i+1 < len(p) && p[i+1] != ']':
			i++
			hi := p[i]
			if hi == '\\' {
				i++
				if i >= len(p) {
					return 0, false, abortAll
				}
				hi = p[i]
			}
			lo := prev
			if inRange(tch, lo, hi, fold) {
				found = true
			}
			prev = 0
		case c == '[' && i+1 < len(p) && p[i+1] == ':':
			end := i + 2
			for end < len(p) && p[end] != ']' {
				end++
			}
			if end >= len(p) {
				return 0, false, abortAll
			}
			if end-1 < i+2 || p[end-1] != ':' {
				// no ":]", so "[" is an ordinary member
				if tch == '[' {
					found = true
				}
				prev = '['
				break
			}
			member, known := posixClass(p[i+2:end-1], tch, fold)
			if !known {
				return 0, false, abortAll
			}
			if member {
				found = true
			}
			i = end
			prev = 0
		default:
			if tch == foldByte(c, fold) {
				found = true
			}
			prev = c
		}
		i++
	}
	return i + 1, found != negated, matched
}

func inRange(tch, lo, hi byte, fold bool) bool {
	if tch >= lo && tch <= hi {
		return true
	}
	if fold {
		if isLower(tch) {
			up := tch - ('a' - 'A')
			return up >= lo && up <= hi
		}
	}
	return false
}

func posixClass(name string, c byte, fold bool) (member, known bool) {
	switch name {
	case "alnum":
		return isAlpha(c) || isDigit(c), true
	case "alpha":
		return isAlpha(c), true
	case "blank":
		return c == ' ' || c == '\t', true
	case "cntrl":
		return c < 0x20 || c == 0x7f, true
	case "digit":
		return isDigit(c), true
	case "graph":
		return c > 0x20 && c < 0x7f, true
	case "lower":
		return isLower(c), true
	case "print":
		return c >= 0x20 && c < 0x7f, true
	case "punct":
		return c > 0x20 && c < 0x7f && !isAlpha(c) && !isDigit(c), true
	case "space":
		return c == ' ' || (c >= '\t' && c <= '\r'), true
	case "upper":
		return isUpper(c) || (fold && isLower(c)), true
	case "xdigit":
		return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F'), true
	}
	return false, false
}

func isGlobSpecial(c byte) bool {
	return c == '*' || c == '?' || c == '[' || c == '\\'
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isAlpha(c byte) bool { return isUpper(c) || isLower(c) }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func foldByte(c byte, fold bool) byte {
	if fold && isUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

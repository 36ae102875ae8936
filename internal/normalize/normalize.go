package normalize

import "strings"

// Normalize returns src with duplicate type-alias pairs collapsed and
// parameter metadata injected. Input is assumed syntactically complete
// (all diagnostics repaired); unrecognized constructs pass through
// untouched.
func Normalize(src string) string {
	return InjectParams(CollapseDuplicates(src))
}

// declHead splits a `pub const <name> = <rest>` or `const <name> = <rest>`
// line into the declared name and the text after the equals sign.
func declHead(line string) (name, rest string, ok bool) {
	s := strings.TrimPrefix(line, "pub ")

	s, found := strings.CutPrefix(s, "const ")
	if !found {
		return "", "", false
	}

	i := 0
	for i < len(s) && isIdentChar(s[i]) {
		i++
	}

	if i == 0 {
		return "", "", false
	}

	name = s[:i]

	rest, found = strings.CutPrefix(s[i:], " = ")
	if !found {
		return "", "", false
	}

	return name, rest, true
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// splitLines splits src into lines without terminators, remembering
// whether the input ended with a newline so joinLines can restore it.
func splitLines(src string) (lines []string, trailingNewline bool) {
	if src == "" {
		return nil, false
	}

	trailingNewline = strings.HasSuffix(src, "\n")

	trimmed := strings.TrimSuffix(src, "\n")
	if trimmed == "" {
		return []string{""}, true
	}

	return strings.Split(trimmed, "\n"), trailingNewline
}

func joinLines(lines []string, trailingNewline bool) string {
	out := strings.Join(lines, "\n")
	if trailingNewline {
		out += "\n"
	}

	return out
}

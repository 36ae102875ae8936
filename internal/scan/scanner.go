package scan

import (
	"strconv"
	"strings"

	"cbind-repair/internal/diag"
)

// Failure marker shape, spread over two adjacent lines:
//
//	pub const <name> = @compileError("<message>");
//	// <path>:<line>:<column>
//
// The leading "pub " is optional. The replaceable span covers both lines
// including the trailing newline of the comment line.
const (
	markerOpen  = "@compileError(\""
	markerClose = ");"
)

// Scan returns every diagnostic found in src, in order of appearance.
// Zero diagnostics is a valid terminal result, not an error; malformed
// input simply fails to match and contributes nothing.
func Scan(src string) []diag.Diagnostic {
	var out []diag.Diagnostic

	s := newLineScanner(src)
	for s.next() {
		name, message, ok := parseMarkerLine(s.line)
		if !ok {
			continue
		}

		start := s.start

		// The location comment must be on the immediately following line.
		comment, commentEnd, ok := s.peekLine()
		if !ok {
			continue
		}

		line, column, ok := parseLocationComment(comment)
		if !ok {
			continue
		}

		s.next() // consume the comment line

		out = append(out, diag.Diagnostic{
			Name:     name,
			Message:  message,
			Line:     line,
			Column:   column,
			FullText: src[start:commentEnd],
			Start:    start,
			End:      commentEnd,
		})
	}

	return out
}

// lineScanner walks src one line at a time while tracking byte offsets,
// so matched spans can be cut out of the original string verbatim.
type lineScanner struct {
	src   string
	line  string // current line, without terminator
	start int    // byte offset of the current line's first character
	end   int    // byte offset just past the current line's terminator
}

func newLineScanner(src string) *lineScanner {
	return &lineScanner{src: src}
}

// next advances to the following line. Returns false at end of input.
func (s *lineScanner) next() bool {
	if s.end >= len(s.src) {
		return false
	}

	s.start = s.end

	if i := strings.IndexByte(s.src[s.start:], '\n'); i >= 0 {
		s.line = s.src[s.start : s.start+i]
		s.end = s.start + i + 1
	} else {
		s.line = s.src[s.start:]
		s.end = len(s.src)
	}

	return true
}

// peekLine returns the next line and the byte offset just past its
// terminator, without advancing.
func (s *lineScanner) peekLine() (string, int, bool) {
	if s.end >= len(s.src) {
		return "", 0, false
	}

	if i := strings.IndexByte(s.src[s.end:], '\n'); i >= 0 {
		return s.src[s.end : s.end+i], s.end + i + 1, true
	}

	return s.src[s.end:], len(s.src), true
}

// parseMarkerLine matches `pub const <name> = @compileError("<message>");`
// and returns the declaration name and the unescaped message.
func parseMarkerLine(line string) (name, message string, ok bool) {
	rest := strings.TrimPrefix(line, "pub ")

	rest, found := strings.CutPrefix(rest, "const ")
	if !found {
		return "", "", false
	}

	name, rest, ok = cutIdentifier(rest)
	if !ok {
		return "", "", false
	}

	rest, found = strings.CutPrefix(rest, " = "+markerOpen)
	if !found {
		return "", "", false
	}

	message, rest, ok = cutStringBody(rest)
	if !ok {
		return "", "", false
	}

	if strings.TrimRight(rest, " \t") != markerClose {
		return "", "", false
	}

	return name, message, true
}

// cutIdentifier splits an identifier off the front of s. Quoted
// identifiers (`@"weird name"`) are accepted and returned unquoted.
func cutIdentifier(s string) (ident, rest string, ok bool) {
	if strings.HasPrefix(s, "@\"") {
		end := strings.Index(s[2:], "\"")
		if end < 0 {
			return "", "", false
		}

		return s[2 : 2+end], s[2+end+1:], true
	}

	i := 0
	for i < len(s) && isIdentChar(s[i]) {
		i++
	}

	if i == 0 {
		return "", "", false
	}

	return s[:i], s[i:], true
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// cutStringBody consumes the body of a double-quoted string up to its
// closing quote, honoring backslash escapes, and returns the unescaped
// text plus what follows the closing quote.
func cutStringBody(s string) (body, rest string, ok bool) {
	var sb strings.Builder

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			return sb.String(), s[i+1:], true
		case '\\':
			if i+1 >= len(s) {
				return "", "", false
			}

			i++
			sb.WriteByte(s[i])
		default:
			sb.WriteByte(s[i])
		}
	}

	return "", "", false
}

// parseLocationComment matches `// <path>:<line>:<column>`. The path may
// itself contain colons, so line and column are taken from the right.
func parseLocationComment(s string) (line, column int, ok bool) {
	rest, found := strings.CutPrefix(strings.TrimRight(s, " \t"), "// ")
	if !found {
		return 0, 0, false
	}

	lastColon := strings.LastIndexByte(rest, ':')
	if lastColon < 0 {
		return 0, 0, false
	}

	prevColon := strings.LastIndexByte(rest[:lastColon], ':')
	if prevColon < 0 {
		return 0, 0, false
	}

	if prevColon == 0 {
		// No path before the position.
		return 0, 0, false
	}

	line, err := strconv.Atoi(rest[prevColon+1 : lastColon])
	if err != nil {
		return 0, 0, false
	}

	column, err = strconv.Atoi(rest[lastColon+1:])
	if err != nil {
		return 0, 0, false
	}

	return line, column, true
}

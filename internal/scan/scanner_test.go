package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanSingleDiagnostic(t *testing.T) {
	src := `pub const FOO = @compileError("unable to translate macro");
// /usr/include/foo.h:12:9
pub extern fn add(a: c_int, b: c_int) c_int;
`

	diags := Scan(src)
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, "FOO", d.Name)
	assert.Equal(t, "unable to translate macro", d.Message)
	assert.Equal(t, 12, d.Line)
	assert.Equal(t, 9, d.Column)

	// The span must occur verbatim exactly once at its recorded offset.
	assert.Equal(t, d.FullText, src[d.Start:d.End])
	assert.Equal(t, 1, strings.Count(src, d.FullText))
	assert.Equal(t, "pub const FOO = @compileError(\"unable to translate macro\");\n// /usr/include/foo.h:12:9\n", d.FullText)
}

func TestScanOrderOfAppearance(t *testing.T) {
	src := `pub const A = @compileError("first");
// /h.h:1:1
pub const Keep = c_int;
pub const B = @compileError("second");
// /h.h:2:2
`

	diags := Scan(src)
	require.Len(t, diags, 2)
	assert.Equal(t, "A", diags[0].Name)
	assert.Equal(t, "B", diags[1].Name)
	assert.Less(t, diags[0].Start, diags[1].Start)
}

func TestScanShapeVariants(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    int
		declare string
	}{
		{
			name: "without pub",
			src: "const x = @compileError(\"msg\");\n" +
				"// /a.h:3:4\n",
			want:    1,
			declare: "x",
		},
		{
			name: "quoted declaration name",
			src: "pub const @\"error\" = @compileError(\"msg\");\n" +
				"// /a.h:3:4\n",
			want:    1,
			declare: "error",
		},
		{
			name: "escaped quotes in message",
			src: "pub const y = @compileError(\"cannot express \\\"volatile\\\"\");\n" +
				"// /a.h:5:6\n",
			want:    1,
			declare: "y",
		},
		{
			name: "path containing colons",
			src: "pub const z = @compileError(\"msg\");\n" +
				"// C:\\include\\a.h:7:8\n",
			want:    1,
			declare: "z",
		},
		{
			name: "missing location comment",
			src:  "pub const q = @compileError(\"msg\");\npub const r = c_int;\n",
			want: 0,
		},
		{
			name: "marker at end of input without newline",
			src: "pub const last = @compileError(\"msg\");\n" +
				"// /a.h:9:1",
			want:    1,
			declare: "last",
		},
		{
			name: "comment without position",
			src:  "pub const q = @compileError(\"msg\");\n// just a comment\n",
			want: 0,
		},
		{
			name: "ordinary declarations only",
			src:  "pub const A = c_int;\npub extern fn f() void;\n",
			want: 0,
		},
		{
			name: "empty input",
			src:  "",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Scan(tt.src)
			require.Len(t, diags, tt.want)

			if tt.want == 1 {
				assert.Equal(t, tt.declare, diags[0].Name)
				assert.Equal(t, tt.src[diags[0].Start:diags[0].End], diags[0].FullText)
			}
		})
	}
}

func TestScanEscapedMessageUnescaped(t *testing.T) {
	src := "pub const y = @compileError(\"cannot express \\\"volatile\\\"\");\n// /a.h:5:6\n"

	diags := Scan(src)
	require.Len(t, diags, 1)
	assert.Equal(t, `cannot express "volatile"`, diags[0].Message)
}

func TestScanMalformedInputFailsOpen(t *testing.T) {
	// Garbage that merely mentions the marker must not match.
	src := "@compileError(\n pub const = @compileError(\"\");\n// nope\n"

	assert.Empty(t, Scan(src))
}

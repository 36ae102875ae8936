package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const anchorLine = "pub const __params__anchor = [_][]const u8{};"

func TestInjectParamsBasic(t *testing.T) {
	src := "pub extern fn add(a: c_int, b: c_int) c_int;\n"

	got := InjectParams(src)

	assert.Equal(t,
		"pub const __params_add = [_][]const u8{ \"a\", \"b\" };\n"+
			"pub extern fn add(a: c_int, b: c_int) c_int;\n"+
			anchorLine+"\n",
		got)
}

func TestInjectParamsZeroParamsGetNoMetadata(t *testing.T) {
	src := "pub extern fn init() void;\n"

	got := InjectParams(src)
	assert.NotContains(t, got, "__params_init")
	assert.Contains(t, got, anchorLine)
}

func TestInjectParamsAnchorAlwaysAppended(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty input", ""},
		{"no functions", "pub const A = c_int;\n"},
		{"only zero-param functions", "pub extern fn init() void;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InjectParams(tt.src)
			assert.Equal(t, 1, strings.Count(got, anchorLine))
			assert.True(t, strings.HasSuffix(got, anchorLine+"\n"))
		})
	}
}

func TestInjectParamsVariadicTail(t *testing.T) {
	src := "pub extern fn printf(format: [*c]const u8, ...) c_int;\n"

	got := InjectParams(src)
	assert.Contains(t, got, "pub const __params_printf = [_][]const u8{ \"format\" };")
}

func TestInjectParamsUnnamedKeepsPosition(t *testing.T) {
	src := "pub extern fn cmp(a: c_int, c_int) c_int;\n"

	got := InjectParams(src)
	assert.Contains(t, got, "pub const __params_cmp = [_][]const u8{ \"a\", \"_\" };")
}

func TestInjectParamsQuotedAndQualified(t *testing.T) {
	src := "pub extern fn f(@\"type\": c_int, noalias dest: ?*anyopaque) void;\n"

	got := InjectParams(src)
	assert.Contains(t, got, "pub const __params_f = [_][]const u8{ \"type\", \"dest\" };")
}

func TestInjectParamsFunctionPointerParam(t *testing.T) {
	src := "pub extern fn walk(root: [*c]u8, cb: ?*const fn ([*c]u8, c_int) callconv(.C) c_int) void;\n"

	got := InjectParams(src)
	assert.Contains(t, got, "pub const __params_walk = [_][]const u8{ \"root\", \"cb\" };")
}

func TestInjectParamsMultiLineDeclaration(t *testing.T) {
	src := `pub extern fn configure(
    handle: ?*anyopaque,
    flags: c_uint,
) c_int;
`

	got := InjectParams(src)

	lines := strings.Split(got, "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "pub const __params_configure = [_][]const u8{ \"handle\", \"flags\" };", lines[0])
	assert.Equal(t, "pub extern fn configure(", lines[1])
}

func TestInjectParamsIdempotent(t *testing.T) {
	src := "pub extern fn add(a: c_int, b: c_int) c_int;\npub extern fn sub(x: c_int, y: c_int) c_int;\n"

	once := InjectParams(src)
	twice := InjectParams(once)
	assert.Equal(t, once, twice)
}

func TestNormalizeEndToEnd(t *testing.T) {
	src := structThenAlias + "pub extern fn add(a: c_int, b: c_int) c_int;\n"

	got := Normalize(src)

	assert.NotContains(t, got, "struct_Foo")
	assert.Contains(t, got, "pub const Foo = extern struct {")
	assert.Contains(t, got, "pub const __params_add = [_][]const u8{ \"a\", \"b\" };")
	assert.True(t, strings.HasSuffix(got, anchorLine+"\n"))
}

func TestNormalizeIdempotent(t *testing.T) {
	src := structThenAlias + "pub extern fn add(a: c_int, b: c_int) c_int;\n"

	once := Normalize(src)
	twice := Normalize(once)
	assert.Equal(t, once, twice)
}

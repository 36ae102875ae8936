package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"foo.h", "foo.zig"},
		{"/usr/include/SDL2/SDL.h", "SDL.zig"},
		{"already.zig", "already.zig"},
		{"noext", "noext.zig"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, BindingFilename(tt.in))
		})
	}
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	files := []GeneratedFile{
		{Filename: "a.zig", Content: []byte("pub const A = c_int;\n")},
		{Filename: "b.zig", Content: []byte("pub const B = c_int;\n")},
	}

	require.NoError(t, WriteFiles(files, dir))

	data, err := os.ReadFile(filepath.Join(dir, "a.zig"))
	require.NoError(t, err)
	assert.Equal(t, "pub const A = c_int;\n", string(data))
}

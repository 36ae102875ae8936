package translate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	cache, err := OpenCacheDir(t.TempDir())
	require.NoError(t, err)

	header := filepath.Join(t.TempDir(), "foo.h")
	require.NoError(t, os.WriteFile(header, []byte("int add(int a, int b);\n"), 0o644))

	key, err := cache.Key(header, []string{"translate-c", header})
	require.NoError(t, err)

	_, hit := cache.Get(key)
	assert.False(t, hit)

	require.NoError(t, cache.Put(key, "pub extern fn add(a: c_int, b: c_int) c_int;\n"))

	out, hit := cache.Get(key)
	require.True(t, hit)
	assert.Equal(t, "pub extern fn add(a: c_int, b: c_int) c_int;\n", out)
}

func TestCacheKeyDependsOnContentAndArgs(t *testing.T) {
	cache, err := OpenCacheDir(t.TempDir())
	require.NoError(t, err)

	dir := t.TempDir()
	header := filepath.Join(dir, "foo.h")
	require.NoError(t, os.WriteFile(header, []byte("int x;\n"), 0o644))

	base, err := cache.Key(header, []string{"translate-c", header})
	require.NoError(t, err)

	otherArgs, err := cache.Key(header, []string{"translate-c", "-D", "FOO", header})
	require.NoError(t, err)
	assert.NotEqual(t, base, otherArgs)

	require.NoError(t, os.WriteFile(header, []byte("int y;\n"), 0o644))

	edited, err := cache.Key(header, []string{"translate-c", header})
	require.NoError(t, err)
	assert.NotEqual(t, base, edited)
}

func TestNilCacheIsInert(t *testing.T) {
	var cache *Cache

	_, err := cache.Key("whatever.h", nil)
	assert.Error(t, err)

	_, hit := cache.Get("key")
	assert.False(t, hit)

	assert.NoError(t, cache.Put("key", "out"))
}

func TestRunnerArgsContract(t *testing.T) {
	r := &Runner{
		IncludeDirs: []string{"/usr/include/SDL2"},
		Defines:     []string{"NDEBUG", "FOO=1"},
		ExtraArgs:   []string{"-target", "x86_64-linux-gnu"},
	}

	assert.Equal(t, []string{
		"translate-c",
		"-I", "/usr/include/SDL2",
		"-D", "NDEBUG",
		"-D", "FOO=1",
		"-target", "x86_64-linux-gnu",
		"foo.h",
	}, r.Args("foo.h"))
}

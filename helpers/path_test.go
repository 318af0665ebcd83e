package helpers

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestOpenFileForWriting(t *testing.T) {
	fs := afero.NewMemMapFs()

	f, err := OpenFileForWriting(fs, "/a/b/c/index.html")
	require.NoError(t, err)
	_, err = f.WriteString("content")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	// Truncates.
	require.NoError(t, WriteToDisk("/a/b/c/index.html", strings.NewReader("new"), fs))
	b, err := afero.ReadFile(fs, "/a/b/c/index.html")
	require.NoError(t, err)
	require.Equal(t, "new", string(b))
}

func TestCopyDir(t *testing.T) {
	src := afero.NewMemMapFs()
	dst := afero.NewMemMapFs()
	binary := []byte{0xff, 0xd8, 0x00, 0x10, '\r', '\n'}
	require.NoError(t, afero.WriteFile(src, "/site/assets/style.css", []byte("body{}"), 0o644))
	require.NoError(t, afero.WriteFile(src, "/site/assets/uploads/a.jpg", binary, 0o644))
	require.NoError(t, src.MkdirAll("/site/assets/empty", 0o755))

	n, err := CopyDir(src, "/site/assets", dst, "/out/assets")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	b, err := afero.ReadFile(dst, "/out/assets/uploads/a.jpg")
	require.NoError(t, err)
	require.Equal(t, binary, b)

	isDir, err := DirExists("/out/assets/empty", dst)
	require.NoError(t, err)
	require.True(t, isDir)
}

func TestCopyDirMissingSource(t *testing.T) {
	_, err := CopyDir(afero.NewMemMapFs(), "/nope", afero.NewMemMapFs(), "/out")
	require.Error(t, err)
}

func TestAddTrailingSlash(t *testing.T) {
	require.Equal(t, "/en/", AddTrailingSlash("/en"))
	require.Equal(t, "/en/", AddTrailingSlash("/en/"))
}

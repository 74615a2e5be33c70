package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/rail"
	"github.com/jcorbin/rail/loader"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadListSkipsBlankAndCommentLines(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.rail", "1 1 +")
	listPath := writeFile(t, dir, "all.txt", "\n# a comment\na.rail\n")

	paths, err := loader.ReadList(listPath)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(dir, "a.rail"), paths[0])
}

func TestReadListResolvesRelativeToListDir(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, sub, "b.rail", "2 2 +")
	listPath := writeFile(t, dir, "list.txt", "sub/b.rail\n")

	paths, err := loader.ReadList(listPath)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(sub, "b.rail"), paths[0])
}

func TestResolveAndReadAllConcatenatesInOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.rail", "1 1 +")
	writeFile(t, dir, "b.rail", "2 2 +")
	listPath := writeFile(t, dir, "all.txt", "a.rail\nb.rail\n")

	in, err := loader.Resolve([]string{listPath})
	require.NoError(t, err)

	src, err := loader.ReadAll(in)
	require.NoError(t, err)
	assert.Equal(t, "1 1 +\n2 2 +", src)
}

func TestResolveRejectsUnrecognizedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "weird.ext", "nonsense")

	_, err := loader.Resolve([]string{path})
	assert.Error(t, err)
}

func TestStdlibBootstrapPathNamesVersionedDirectory(t *testing.T) {
	conventions := rail.DefaultConventions()
	conventions.Version = "1.2.3"

	path, err := loader.StdlibBootstrapPath(conventions)
	require.NoError(t, err)
	assert.Contains(t, path, filepath.Join("rail-1.2.3", "rail-src", "stdlib", "all.txt"))
}

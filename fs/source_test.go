package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/wordtracker"
	"github.com/fwojciec/wordtracker/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSourceReader_ReadSources(t *testing.T) {
	t.Parallel()

	t.Run("tokenizes files in argument order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var paths []string
		for i, content := range []string{"Cat dog\ncat bird\n", "one\ntwo three\n", "", "x"} {
			paths = append(paths, writeFile(t, dir, string(rune('a'+i))+".txt", content))
		}

		sources, err := fs.NewSourceReader(2).ReadSources(context.Background(), paths)

		require.NoError(t, err)
		require.Len(t, sources, 4)
		for i, src := range sources {
			assert.Equal(t, paths[i], src.Path)
			assert.NoError(t, src.Err)
			assert.Len(t, src.Hash, 16)
		}
		assert.Equal(t, []wordtracker.Token{
			{Text: "cat", Line: 1},
			{Text: "dog", Line: 1},
			{Text: "cat", Line: 2},
			{Text: "bird", Line: 2},
		}, sources[0].Tokens)
		assert.Equal(t, 2, sources[0].Lines)
		assert.Empty(t, sources[2].Tokens)
	})

	t.Run("reports missing files without failing the rest", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		good := writeFile(t, dir, "good.txt", "hello\n")
		missing := filepath.Join(dir, "missing.txt")

		sources, err := fs.NewSourceReader(0).ReadSources(context.Background(), []string{missing, good})

		require.NoError(t, err)
		require.Len(t, sources, 2)
		assert.Equal(t, wordtracker.ENOTFOUND, wordtracker.ErrorCode(sources[0].Err))
		assert.NoError(t, sources[1].Err)
		assert.Equal(t, []wordtracker.Token{{Text: "hello", Line: 1}}, sources[1].Tokens)
	})

	t.Run("gives identical content the same hash", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		a := writeFile(t, dir, "a.txt", "same words\n")
		b := writeFile(t, dir, "b.txt", "same words\n")
		c := writeFile(t, dir, "c.txt", "other words\n")

		sources, err := fs.NewSourceReader(3).ReadSources(context.Background(), []string{a, b, c})

		require.NoError(t, err)
		assert.Equal(t, sources[0].Hash, sources[1].Hash)
		assert.NotEqual(t, sources[0].Hash, sources[2].Hash)
	})

	t.Run("returns the context error when canceled", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "a.txt", "word\n")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewSourceReader(1).ReadSources(ctx, []string{path})

		assert.ErrorIs(t, err, context.Canceled)
	})
}

package fs_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/fwojciec/wordtracker"
	"github.com/fwojciec/wordtracker/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fiveWords builds an index of five words spread over two files.
func fiveWords(t *testing.T) *wordtracker.Tree[*wordtracker.Word] {
	t.Helper()
	ix := wordtracker.NewIndexer(wordtracker.NewIndex(), nil)
	records := []struct {
		text string
		file string
		line int
	}{
		{"mango", "a.txt", 1},
		{"apple", "a.txt", 1},
		{"pear", "a.txt", 2},
		{"apple", "b.txt", 7},
		{"kiwi", "b.txt", 3},
		{"zucchini", "b.txt", 3},
		{"apple", "a.txt", 9},
	}
	for _, r := range records {
		require.NoError(t, ix.Record(r.text, r.file, r.line))
	}
	require.Equal(t, 5, ix.Tree.Len())
	return ix.Tree
}

func preOrderTexts(tree *wordtracker.Tree[*wordtracker.Word]) []string {
	var out []string
	for w := range wordtracker.Values(tree.PreOrder()) {
		out = append(out, w.Text)
	}
	return out
}

// Story: Repository round trip
// Saving an index and loading it back yields the same words, occurrences
// and tree shape.

func TestRepository_SaveAndLoad(t *testing.T) {
	t.Parallel()

	// Given an index with five words
	tree := fiveWords(t)
	repo := fs.NewRepository(filepath.Join(t.TempDir(), "nested", "repository.json"))
	ctx := context.Background()

	// When I save and reload it
	require.NoError(t, repo.Save(ctx, tree))
	loaded, err := repo.Load(ctx)

	// Then the in-order sequence and every occurrence map match
	require.NoError(t, err)
	original := slices.Collect(tree.All())
	reloaded := slices.Collect(loaded.All())
	require.Len(t, reloaded, len(original))
	for i := range original {
		assert.Equal(t, original[i].Text, reloaded[i].Text)
		assert.Equal(t, original[i].Occurrences, reloaded[i].Occurrences)
	}

	// And the shape is identical
	assert.Equal(t, preOrderTexts(tree), preOrderTexts(loaded))
	assert.Equal(t, tree.Height(), loaded.Height())

	// And no temp file is left behind
	_, err = os.Stat(repo.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestRepository_Load(t *testing.T) {
	t.Parallel()

	t.Run("returns an empty index when nothing was saved", func(t *testing.T) {
		t.Parallel()

		repo := fs.NewRepository(filepath.Join(t.TempDir(), "repository.json"))

		tree, err := repo.Load(context.Background())

		require.NoError(t, err)
		assert.True(t, tree.IsEmpty())
	})

	t.Run("detects a tampered body", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "repository.json")
		repo := fs.NewRepository(path)
		require.NoError(t, repo.Save(context.Background(), fiveWords(t)))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		data = bytes.Replace(data, []byte(`"mango"`), []byte(`"mangu"`), 1)
		require.NoError(t, os.WriteFile(path, data, 0644))

		_, err = repo.Load(context.Background())

		require.Error(t, err)
		assert.Equal(t, wordtracker.EINVALID, wordtracker.ErrorCode(err))
	})

	t.Run("rejects files without a header", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "repository.json")
		require.NoError(t, os.WriteFile(path, []byte("[]"), 0644))

		_, err := fs.NewRepository(path).Load(context.Background())

		assert.Equal(t, wordtracker.EINVALID, wordtracker.ErrorCode(err))
	})

	t.Run("rejects unknown versions", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "repository.json")
		content := `{"format":"wordtracker-repository","version":99,"count":0,"checksum":""}` + "\n[]"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		_, err := fs.NewRepository(path).Load(context.Background())

		assert.Equal(t, wordtracker.EINVALID, wordtracker.ErrorCode(err))
	})

	t.Run("accumulates across saves", func(t *testing.T) {
		t.Parallel()

		repo := fs.NewRepository(filepath.Join(t.TempDir(), "repository.json"))
		ctx := context.Background()
		require.NoError(t, repo.Save(ctx, fiveWords(t)))

		tree, err := repo.Load(ctx)
		require.NoError(t, err)
		ix := wordtracker.NewIndexer(tree, nil)
		require.NoError(t, ix.Record("apple", "c.txt", 2))
		require.NoError(t, ix.Record("banana", "c.txt", 2))
		require.NoError(t, repo.Save(ctx, tree))

		reloaded, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 6, reloaded.Len())
		node, err := reloaded.Search(&wordtracker.Word{Text: "apple"})
		require.NoError(t, err)
		assert.Equal(t, map[string][]int{"a.txt": {1, 9}, "b.txt": {7}, "c.txt": {2}}, node.Element().Occurrences)
	})
}

func TestRepository_Clear(t *testing.T) {
	t.Parallel()

	t.Run("removes the saved index", func(t *testing.T) {
		t.Parallel()

		repo := fs.NewRepository(filepath.Join(t.TempDir(), "repository.json"))
		ctx := context.Background()
		require.NoError(t, repo.Save(ctx, fiveWords(t)))

		require.NoError(t, repo.Clear(ctx))

		tree, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.True(t, tree.IsEmpty())
	})

	t.Run("succeeds when nothing was saved", func(t *testing.T) {
		t.Parallel()

		repo := fs.NewRepository(filepath.Join(t.TempDir(), "repository.json"))

		assert.NoError(t, repo.Clear(context.Background()))
	})
}

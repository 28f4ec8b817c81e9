package fs

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/wordtracker"
	"github.com/google/uuid"
)

// Ensure Repository implements wordtracker.Repository at compile time.
var _ wordtracker.Repository = (*Repository)(nil)

const (
	formatName    = "wordtracker-repository"
	formatVersion = 1
)

// header is the first line of a repository file.
type header struct {
	Format   string    `json:"format"`
	Version  int       `json:"version"`
	ID       string    `json:"id"`
	SavedAt  time.Time `json:"savedAt"`
	Count    int       `json:"count"`
	Checksum string    `json:"checksum"` // xxhash of the body
}

// Repository stores the word index in a single file: a JSON header line
// followed by a JSON array of words in pre-order.
//
// Save writes to path.tmp and renames it over path, so a failed save
// leaves the previous snapshot intact.
type Repository struct {
	path string
}

// NewRepository creates a new Repository backed by the file at path.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Path returns the repository file path.
func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) tempPath() string {
	return r.path + ".tmp"
}

// Load reads the index. A missing file yields an empty index.
func (r *Repository) Load(ctx context.Context) (*wordtracker.Tree[*wordtracker.Word], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return wordtracker.NewIndex(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	line, err := br.ReadBytes('\n')
	if err != nil {
		return nil, wordtracker.Errorf(wordtracker.EINVALID, "repository %s has no header", r.path)
	}
	var h header
	if err := json.Unmarshal(line, &h); err != nil {
		return nil, wordtracker.Errorf(wordtracker.EINVALID, "repository %s has a malformed header", r.path)
	}
	if h.Format != formatName || h.Version != formatVersion {
		return nil, wordtracker.Errorf(wordtracker.EINVALID, "unsupported repository format %q version %d", h.Format, h.Version)
	}

	body, err := io.ReadAll(br)
	if err != nil {
		return nil, fmt.Errorf("failed to read repository: %w", err)
	}
	if sum := hashContent(body); sum != h.Checksum {
		return nil, wordtracker.Errorf(wordtracker.EINVALID, "repository checksum mismatch: header %s, content %s", h.Checksum, sum)
	}

	var words []*wordtracker.Word
	if err := json.Unmarshal(body, &words); err != nil {
		return nil, wordtracker.Errorf(wordtracker.EINVALID, "repository %s has a malformed body", r.path)
	}
	if len(words) != h.Count {
		return nil, wordtracker.Errorf(wordtracker.EINVALID, "repository holds %d words, header says %d", len(words), h.Count)
	}

	return wordtracker.Restore(words)
}

// Save replaces the stored index with tree.
func (r *Repository) Save(ctx context.Context, tree *wordtracker.Tree[*wordtracker.Word]) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	words := wordtracker.Snapshot(tree)
	body, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("failed to encode words: %w", err)
	}

	h := header{
		Format:   formatName,
		Version:  formatVersion,
		ID:       uuid.New().String(),
		SavedAt:  time.Now().UTC(),
		Count:    len(words),
		Checksum: hashContent(body),
	}
	line, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(line) + 1 + len(body))
	buf.Write(line)
	buf.WriteByte('\n')
	buf.Write(body)

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(r.tempPath(), buf.Bytes(), 0644); err != nil {
		return err
	}

	// Atomically replace the previous snapshot
	if err := os.Rename(r.tempPath(), r.path); err != nil {
		_ = os.Remove(r.tempPath())
		return err
	}

	return nil
}

// Clear removes the repository file.
func (r *Repository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, p := range []string{r.path, r.tempPath()} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}

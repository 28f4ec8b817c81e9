package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fwojciec/wordtracker"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ wordtracker.Repository = (*Repository)(nil)

// Repository implements wordtracker.Repository using SQLite.
// Words are stored with their pre-order position; occurrences keep the
// order they were recorded in through a per-file sequence number.
type Repository struct {
	db *DB
}

// NewRepository creates a new Repository.
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// Snapshot describes one call to Save.
type Snapshot struct {
	ID        string
	SavedAt   time.Time
	WordCount int
}

// Load reads the index. An empty database yields an empty index.
func (r *Repository) Load(ctx context.Context) (*wordtracker.Tree[*wordtracker.Word], error) {
	rows, err := r.db.QueryContext(ctx, "SELECT position, text FROM words ORDER BY position ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []*wordtracker.Word
	byPosition := make(map[int]*wordtracker.Word)
	for rows.Next() {
		var position int
		var text string
		if err := rows.Scan(&position, &text); err != nil {
			return nil, err
		}
		w := wordtracker.NewWord(text)
		words = append(words, w)
		byPosition[position] = w
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	occRows, err := r.db.QueryContext(ctx, `
		SELECT word_position, file, line
		FROM occurrences
		ORDER BY word_position ASC, file ASC, seq ASC
	`)
	if err != nil {
		return nil, err
	}
	defer occRows.Close()

	for occRows.Next() {
		var position, line int
		var file string
		if err := occRows.Scan(&position, &file, &line); err != nil {
			return nil, err
		}
		w, ok := byPosition[position]
		if !ok {
			return nil, wordtracker.Errorf(wordtracker.EINVALID, "occurrence references unknown word position %d", position)
		}
		w.AddOccurrence(file, line)
	}
	if err := occRows.Err(); err != nil {
		return nil, err
	}

	return wordtracker.Restore(words)
}

// Save replaces the stored index with tree in a single transaction.
func (r *Repository) Save(ctx context.Context, tree *wordtracker.Tree[*wordtracker.Word]) error {
	words := wordtracker.Snapshot(tree)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := clearWords(ctx, tx); err != nil {
		return err
	}

	wordStmt, err := tx.PrepareContext(ctx, "INSERT INTO words (position, text) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer wordStmt.Close()

	occStmt, err := tx.PrepareContext(ctx, "INSERT INTO occurrences (word_position, file, seq, line) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer occStmt.Close()

	for position, w := range words {
		if _, err := wordStmt.ExecContext(ctx, position, w.Text); err != nil {
			return fmt.Errorf("failed to insert word %q: %w", w.Text, err)
		}
		for _, file := range w.Files() {
			for seq, line := range w.Occurrences[file] {
				if _, err := occStmt.ExecContext(ctx, position, file, seq, line); err != nil {
					return fmt.Errorf("failed to insert occurrence of %q: %w", w.Text, err)
				}
			}
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, saved_at, word_count)
		VALUES (?, ?, ?)
	`, uuid.New().String(), time.Now().UTC().Format(time.RFC3339Nano), len(words)); err != nil {
		return err
	}

	return tx.Commit()
}

// Clear removes every stored word and the snapshot history.
func (r *Repository) Clear(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := clearWords(ctx, tx); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM snapshots"); err != nil {
		return err
	}

	return tx.Commit()
}

// Snapshots returns the save history, most recent first.
func (r *Repository) Snapshots(ctx context.Context) ([]*Snapshot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, saved_at, word_count
		FROM snapshots
		ORDER BY rowid DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*Snapshot
	for rows.Next() {
		var s Snapshot
		var savedAt string
		if err := rows.Scan(&s.ID, &savedAt, &s.WordCount); err != nil {
			return nil, err
		}
		s.SavedAt, err = time.Parse(time.RFC3339Nano, savedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse saved_at: %w", err)
		}
		snapshots = append(snapshots, &s)
	}

	return snapshots, rows.Err()
}

func clearWords(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM occurrences"); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM words"); err != nil {
		return err
	}
	return nil
}

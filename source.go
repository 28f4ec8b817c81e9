package wordtracker

import "context"

// Source is an input file read and tokenized for indexing.
type Source struct {
	Path   string
	Hash   string // xxhash of the file contents
	Lines  int
	Tokens []Token

	// Err is set when the file could not be read. ENOTFOUND marks a
	// missing file; the remaining sources are still usable.
	Err error
}

// SourceReader reads and tokenizes input files.
type SourceReader interface {
	// ReadSources returns one Source per path, in the order given.
	// Per-file failures are reported in Source.Err; the returned error is
	// reserved for failures that abort the whole read (e.g. cancellation).
	ReadSources(ctx context.Context, paths []string) ([]*Source, error)
}

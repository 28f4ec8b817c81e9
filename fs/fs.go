// Package fs provides file-based implementations of the wordtracker
// source reader and repository.
package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// hashContent computes the xxHash of content as a fixed-width hex string.
func hashContent(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

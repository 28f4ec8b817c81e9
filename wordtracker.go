// Package wordtracker maintains a sorted index of unique words and the
// source locations (file and line numbers) where each word occurs.
//
// The index is an unbalanced binary search tree (Tree) whose elements are
// occurrence records (Word). The tree persists across runs through a
// Repository, so words seen in earlier runs keep accumulating occurrences.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, bloom/, etree/).
package wordtracker

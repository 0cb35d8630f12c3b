// Package rope provides an immutable, grapheme-aware rope for storing
// document text.
//
// The rope is a B+ tree whose leaves hold bounded text chunks and whose
// internal nodes carry aggregated byte and newline counts. All operations
// return new Rope values; an existing Rope is never modified, so any
// number of goroutines may read a Rope while a writer builds its
// successor.
//
// Beyond the usual O(log n) Insert/Delete/Slice, the rope answers the
// queries a text editor needs: line start offsets, line lookup by byte,
// and Unicode grapheme-cluster boundaries (via rivo/uniseg). Cursor
// offsets in the engine always align to grapheme boundaries, never to
// raw bytes inside a cluster.
//
// Basic usage:
//
//	r := rope.FromString("héllo\nworld")
//	r = r.Insert(0, ">> ")
//	line := r.LineOfByte(9)
//	ok := r.IsGraphemeBoundary(3)
package rope

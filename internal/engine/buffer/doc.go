// Package buffer implements the text buffer of the editor.
//
// A TextBuffer pairs immutable rope contents with optional file
// metadata. Every editing operation is a pure transform: it takes the
// buffer and the panes viewing it and returns new values, leaving the
// inputs untouched. Readers holding an old buffer keep a consistent
// snapshot for free.
package buffer

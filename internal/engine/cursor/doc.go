// Package cursor provides selections and panes for multi-cursor text
// editing.
//
// A Selection is a cursor anchored at a byte offset plus a signed
// extent to the other end of the highlighted range; a zero extent is a
// plain cursor. A Pane owns the ordered set of selections a user edits
// one buffer with, keyed uniquely by selection start, together with the
// main cursor and the remembered visual column used by vertical
// movement.
//
// Both types are immutable values: buffer transformations consume a
// Pane and return a replacement rather than mutating in place, so a
// renderer can keep reading an old Pane while the writer publishes a
// new one.
package cursor

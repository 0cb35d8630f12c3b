// Package dispatcher serializes editing intents into buffer and pane
// snapshots.
//
// All mutation flows through one goroutine running Run. Frontends send
// Intents on a channel; the loop applies each one as a pure transform,
// publishes the resulting snapshots through shared lists, and pokes the
// redraw channel. Readers never block the writer and the writer never
// waits for readers.
package dispatcher

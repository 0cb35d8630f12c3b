package dispatcher

import (
	"go.uber.org/zap"

	"github.com/vellum-editor/vellum/internal/engine/buffer"
	"github.com/vellum-editor/vellum/internal/engine/cursor"
	"github.com/vellum-editor/vellum/internal/engine/shared"
)

const intentBufferSize = 128

// Dispatcher owns the write side of the editor state. Construct one
// with New, start Run on its own goroutine, and feed it through Send.
type Dispatcher struct {
	buffers *shared.List[buffer.TextBuffer]
	panes   *shared.List[cursor.Pane]
	intents chan Intent
	redraw  chan cursor.BufferID
	log     *zap.Logger
}

// New returns a dispatcher publishing into the given lists.
func New(buffers *shared.List[buffer.TextBuffer], panes *shared.List[cursor.Pane], log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		buffers: buffers,
		panes:   panes,
		intents: make(chan Intent, intentBufferSize),
		redraw:  make(chan cursor.BufferID, 1),
		log:     log,
	}
}

// Send queues an intent. It blocks only if the loop is more than
// intentBufferSize intents behind.
func (d *Dispatcher) Send(in Intent) {
	d.intents <- in
}

// Close stops the loop after the queued intents drain. No Send may
// follow.
func (d *Dispatcher) Close() {
	close(d.intents)
}

// Redraw returns the channel carrying the buffer id of every applied
// intent. Notifications are coalesced; one value may cover many
// intents.
func (d *Dispatcher) Redraw() <-chan cursor.BufferID {
	return d.redraw
}

// Run applies intents until Close. It must be the only goroutine that
// stores into the buffer and pane lists. Intents that cannot be
// resolved to a pane are dropped without a redraw.
func (d *Dispatcher) Run() {
	for in := range d.intents {
		if bufID, ok := d.apply(in); ok {
			d.notify(bufID)
		}
	}
}

func (d *Dispatcher) apply(in Intent) (cursor.BufferID, bool) {
	paneIdx, p, ok := d.findPane(in.Pane)
	if !ok {
		d.log.Warn("intent for unknown pane",
			zap.Stringer("kind", in.Kind),
			zap.Int("pane", int(in.Pane)))
		return 0, false
	}
	bufID := p.BufferID
	bufIdx := int(bufID)
	buf := d.buffers.View().Get(bufIdx)
	// The transforms are defined over every pane viewing the buffer
	// and will refuse a set they cannot keep consistent.
	involved := shared.InvolvedPanes(d.panes.View(), bufID)

	switch in.Kind {
	case KindInsert:
		buf, involved = buf.Insert(in.Text, involved, in.Pane)
		d.publish(involved, bufIdx, buf)

	case KindBackdelete:
		buf, involved = buf.BackdeleteCursor(involved, in.Pane)
		d.publish(involved, bufIdx, buf)

	case KindMoveHorizontal:
		_, involved = buf.MoveHorizontal(in.Offset, involved, in.Pane)
		shared.StoreAll(d.panes, involved)

	case KindMoveVertical:
		_, involved = buf.MoveVertical(in.Offset, involved, in.Pane)
		shared.StoreAll(d.panes, involved)

	case KindSetMainCursor:
		start := snapToBoundary(buf, in.Start)
		d.panes.Store(paneIdx, p.WithMainCursor(start, buf.GraphemeColOffset(start)))

	case KindAddCursor:
		start := snapToBoundary(buf, in.Start)
		d.panes.Store(paneIdx, p.WithCursor(start))

	case KindScrollLines:
		end := float32(buf.NumLines() - 1)
		d.panes.Store(paneIdx, p.WithScroll(float32(in.Offset), end))

	case KindSave:
		d.save(bufIdx, buf)

	default:
		d.log.Warn("unknown intent", zap.Int("kind", int(in.Kind)))
		return 0, false
	}
	return bufID, true
}

// publish stores the panes before the buffer. A reader racing with an
// edit may then see new cursors over the old rope for one frame; the
// cursors are clamped at draw time, whereas old cursors over a shorter
// rope would not be.
func (d *Dispatcher) publish(panes []cursor.Pane, bufIdx int, buf buffer.TextBuffer) {
	shared.StoreAll(d.panes, panes)
	d.buffers.Store(bufIdx, buf)
}

func (d *Dispatcher) save(bufIdx int, buf buffer.TextBuffer) {
	path := buf.Path()
	if path == "" {
		d.log.Warn("save requested for a buffer with no filename")
		return
	}
	saved, err := buf.Write(path)
	if err != nil {
		// The buffer stays marked modified so the state is not lost.
		d.log.Error("save failed", zap.String("path", path), zap.Error(err))
		return
	}
	d.buffers.Store(bufIdx, saved)
	d.log.Info("saved", zap.String("path", path), zap.Int("bytes", saved.Len()))
}

func (d *Dispatcher) findPane(id cursor.PaneID) (int, cursor.Pane, bool) {
	panes := d.panes.View().Load()
	for i, p := range panes {
		if p.ID == id {
			return i, p, true
		}
	}
	return 0, cursor.Pane{}, false
}

// snapToBoundary clamps a raw byte offset into the buffer and snaps it
// back onto a grapheme boundary. Mouse clicks can produce both kinds of
// stray offsets.
func snapToBoundary(buf buffer.TextBuffer, start int) int {
	if start <= 0 {
		return 0
	}
	if start >= buf.Len() {
		return buf.Len()
	}
	if !buf.Contents.IsGraphemeBoundary(start) {
		return buf.Contents.PrevGraphemeBoundary(start)
	}
	return start
}

func (d *Dispatcher) notify(bufID cursor.BufferID) {
	select {
	case d.redraw <- bufID:
	default:
	}
}

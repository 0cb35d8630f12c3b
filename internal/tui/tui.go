// Package tui is the terminal frontend. It owns the tcell screen,
// translates input events into dispatcher intents, and redraws from
// the published snapshots whenever the dispatcher signals.
package tui

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/vellum-editor/vellum/internal/config"
	"github.com/vellum-editor/vellum/internal/dispatcher"
	"github.com/vellum-editor/vellum/internal/engine/buffer"
	"github.com/vellum-editor/vellum/internal/engine/cursor"
	"github.com/vellum-editor/vellum/internal/engine/shared"
)

// UI drives one pane on a tcell screen.
type UI struct {
	screen  tcell.Screen
	disp    *dispatcher.Dispatcher
	buffers shared.View[buffer.TextBuffer]
	panes   shared.View[cursor.Pane]
	cfg     config.Config
	log     *zap.Logger
	pane    cursor.PaneID

	blinkOn  bool
	quit     chan struct{}
	quitOnce sync.Once
}

// New wires a UI over an existing screen. The screen is not yet
// initialized; Run does that.
func New(screen tcell.Screen, disp *dispatcher.Dispatcher, buffers shared.View[buffer.TextBuffer], panes shared.View[cursor.Pane], cfg config.Config, log *zap.Logger, pane cursor.PaneID) *UI {
	if log == nil {
		log = zap.NewNop()
	}
	return &UI{
		screen:  screen,
		disp:    disp,
		buffers: buffers,
		panes:   panes,
		cfg:     cfg,
		log:     log,
		pane:    pane,
		blinkOn: true,
		quit:    make(chan struct{}),
	}
}

// Run initializes the screen and blocks until the user quits.
func (u *UI) Run() error {
	if err := u.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer u.screen.Fini()
	u.screen.EnableMouse()

	events := make(chan tcell.Event, 16)
	go u.screen.ChannelEvents(events, u.quit)

	var blink <-chan time.Time
	if u.cfg.CursorBlinkMS > 0 {
		t := time.NewTicker(time.Duration(u.cfg.CursorBlinkMS) * time.Millisecond)
		defer t.Stop()
		blink = t.C
	}

	u.draw()
	for {
		select {
		case <-u.quit:
			return nil
		case ev := <-events:
			u.handleEvent(ev)
		case <-u.disp.Redraw():
			u.blinkOn = true
			u.draw()
		case <-blink:
			u.blinkOn = !u.blinkOn
			u.draw()
		}
	}
}

// Stop ends Run from any goroutine.
func (u *UI) Stop() {
	u.quitOnce.Do(func() { close(u.quit) })
}

func (u *UI) handleEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
		u.draw()
	case *tcell.EventKey:
		u.handleKey(e)
	case *tcell.EventMouse:
		u.handleMouse(e)
	}
}

func (u *UI) handleKey(ev *tcell.EventKey) {
	_, h := u.screen.Size()
	page := h - 1
	if page < 1 {
		page = 1
	}

	switch ev.Key() {
	case tcell.KeyCtrlQ:
		u.Stop()
	case tcell.KeyCtrlS:
		u.send(dispatcher.Intent{Kind: dispatcher.KindSave})
	case tcell.KeyEnter:
		u.send(dispatcher.Intent{Kind: dispatcher.KindInsert, Text: "\n"})
	case tcell.KeyTab:
		u.send(dispatcher.Intent{Kind: dispatcher.KindInsert, Text: "\t"})
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		u.send(dispatcher.Intent{Kind: dispatcher.KindBackdelete})
	case tcell.KeyLeft:
		u.send(dispatcher.Intent{Kind: dispatcher.KindMoveHorizontal, Offset: -1})
	case tcell.KeyRight:
		u.send(dispatcher.Intent{Kind: dispatcher.KindMoveHorizontal, Offset: 1})
	case tcell.KeyUp:
		u.send(dispatcher.Intent{Kind: dispatcher.KindMoveVertical, Offset: -1})
	case tcell.KeyDown:
		u.send(dispatcher.Intent{Kind: dispatcher.KindMoveVertical, Offset: 1})
	case tcell.KeyPgUp:
		u.send(dispatcher.Intent{Kind: dispatcher.KindMoveVertical, Offset: -page})
	case tcell.KeyPgDn:
		u.send(dispatcher.Intent{Kind: dispatcher.KindMoveVertical, Offset: page})
	case tcell.KeyRune:
		u.send(dispatcher.Intent{Kind: dispatcher.KindInsert, Text: string(ev.Rune())})
	}
}

func (u *UI) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	btns := ev.Buttons()
	switch {
	case btns&tcell.WheelUp != 0:
		u.send(dispatcher.Intent{Kind: dispatcher.KindScrollLines, Offset: -u.cfg.ScrollStep})
	case btns&tcell.WheelDown != 0:
		u.send(dispatcher.Intent{Kind: dispatcher.KindScrollLines, Offset: u.cfg.ScrollStep})
	case btns&tcell.Button1 != 0:
		off, ok := u.offsetAt(x, y)
		if !ok {
			return
		}
		kind := dispatcher.KindSetMainCursor
		if ev.Modifiers()&tcell.ModAlt != 0 {
			kind = dispatcher.KindAddCursor
		}
		u.send(dispatcher.Intent{Kind: kind, Start: off})
	}
}

func (u *UI) send(in dispatcher.Intent) {
	in.Pane = u.pane
	u.disp.Send(in)
}

func (u *UI) currentPane() (cursor.Pane, bool) {
	for _, p := range u.panes.Load() {
		if p.ID == u.pane {
			return p, true
		}
	}
	return cursor.Pane{}, false
}

// Package app wires the editor together: config, logging, the shared
// snapshot lists, the dispatcher goroutine, and the terminal frontend.
package app

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/vellum-editor/vellum/internal/config"
	"github.com/vellum-editor/vellum/internal/dispatcher"
	"github.com/vellum-editor/vellum/internal/engine/buffer"
	"github.com/vellum-editor/vellum/internal/engine/cursor"
	"github.com/vellum-editor/vellum/internal/engine/shared"
	"github.com/vellum-editor/vellum/internal/tui"
)

// Options configures a run of the editor.
type Options struct {
	// ConfigPath overrides the default config location when non-empty.
	ConfigPath string
	// Path is the file to open. Empty opens a scratch buffer.
	Path string
}

// App holds the composed editor.
type App struct {
	cfg     config.Config
	log     *zap.Logger
	buffers *shared.List[buffer.TextBuffer]
	panes   *shared.List[cursor.Pane]
	disp    *dispatcher.Dispatcher
}

// New loads configuration, opens the initial buffer, and composes the
// editor. The returned App is not yet running.
func New(opts Options, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	path := opts.ConfigPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, err
	}

	buf, err := openInitial(opts.Path, cfg.MaxFileSize)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:     cfg,
		log:     log,
		buffers: shared.NewList[buffer.TextBuffer](),
		panes:   shared.NewList[cursor.Pane](),
	}
	a.buffers.Store(0, buf)
	a.panes.Store(0, cursor.NewPane(0, 1))
	a.disp = dispatcher.New(a.buffers, a.panes, log)
	return a, nil
}

// openInitial opens path, or a scratch buffer when path is empty. A
// missing file becomes an unsaved buffer that will be created on save.
func openInitial(path string, limit int64) (buffer.TextBuffer, error) {
	if path == "" {
		return buffer.Blank(), nil
	}
	buf, err := buffer.OpenWithLimit(path, limit)
	if err == nil {
		return buf, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		b := buffer.Blank()
		b.File = &buffer.FileInfo{Filename: path, IsModified: true}
		return b, nil
	}
	return buffer.TextBuffer{}, err
}

// Run starts the dispatcher and blocks in the UI until quit.
func (a *App) Run() error {
	go a.disp.Run()
	defer a.disp.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	ui := tui.New(screen, a.disp, a.buffers.View(), a.panes.View(), a.cfg, a.log, 1)
	a.log.Info("editor started", zap.String("file", a.buffers.View().Get(0).Path()))
	return ui.Run()
}

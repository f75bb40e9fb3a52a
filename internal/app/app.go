// Package app provides the main application structure and coordination
// for the kite editor. It wires configuration, logging, the editing
// session, the renderer, the terminal backend and the file watcher
// together and runs the event loop.
package app

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/kite/internal/config"
	"github.com/dshills/kite/internal/editor"
	"github.com/dshills/kite/internal/engine/buffer"
	"github.com/dshills/kite/internal/renderer"
	"github.com/dshills/kite/internal/renderer/backend"
	"github.com/dshills/kite/internal/renderer/highlight"
	"github.com/dshills/kite/internal/watcher"
)

// HelpMessage is the status shown when the editor starts.
const HelpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find"

// Application is the central coordinator for the kite components.
type Application struct {
	mu sync.Mutex

	config   *config.Config
	logger   *Logger
	logFile  io.Closer
	theme    *highlight.Theme
	session  *editor.Session
	renderer *renderer.Renderer
	backend  backend.Backend
	watcher  *watcher.FileWatcher

	running      atomic.Bool
	stopping     atomic.Bool
	shutdownOnce sync.Once

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is an explicit configuration file. It must exist.
	ConfigPath string

	// File is the file to open. Empty starts with an unnamed buffer.
	File string

	// LogLevel overrides logging.level when set.
	LogLevel string

	// LogFile overrides logging.file when set.
	LogFile string

	// TabStop overrides editor.tabStop when positive.
	TabStop int

	// Version is shown in the welcome banner.
	Version string

	// ConfigOptions are passed to config.New before the options above
	// are applied.
	ConfigOptions []config.Option
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts}

	if err := app.bootstrap(); err != nil {
		app.closeLog()
		return nil, err
	}

	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	cfgOpts := append([]config.Option(nil), app.opts.ConfigOptions...)
	if app.opts.ConfigPath != "" {
		cfgOpts = append(cfgOpts, config.WithConfigFile(app.opts.ConfigPath))
	}
	app.config = config.New(cfgOpts...)
	if err := app.config.Load(context.Background()); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if err := app.applyOverrides(); err != nil {
		return &InitError{Component: "config", Err: err}
	}

	// 2. Logging
	logCfg := app.config.Logging()
	out, err := OpenLogFile(logCfg.File)
	if err != nil {
		return &InitError{Component: "logging", Err: err}
	}
	app.logFile = out
	app.logger = NewLogger(LoggerConfig{
		Level:  ParseLogLevel(logCfg.Level),
		Output: out,
		Prefix: "kite",
	}).WithField("session", uuid.NewString())

	// 3. Theme
	ui := app.config.UI()
	app.theme, err = highlight.DefaultTheme().Override(ui.Theme)
	if err != nil {
		return &InitError{Component: "theme", Err: err}
	}

	// 4. Session
	edCfg := app.config.Editor()
	sessOpts := []editor.Option{
		editor.WithConfig(editor.Config{
			TabStop:        edCfg.TabStop,
			QuitTimes:      edCfg.QuitTimes,
			MessageTimeout: ui.MessageTimeout,
			ShowWelcome:    ui.ShowWelcome,
			Version:        app.version(),
		}),
		editor.WithLogger(app.logger.WithComponent("editor")),
	}
	if app.opts.File == "" {
		app.session = editor.New(buffer.New(buffer.WithTabStop(edCfg.TabStop)), "", sessOpts...)
	} else {
		app.session, err = editor.Open(app.opts.File, sessOpts...)
		if err != nil {
			return &InitError{Component: "session", Err: err}
		}
	}

	ft := "none"
	if g := app.session.Grammar(); g != nil {
		ft = g.FileType
	}
	app.logger.Info("started version=%s file=%q filetype=%s rows=%d sources=%v",
		app.version(), app.opts.File, ft, app.session.Buffer().Len(), app.config.Sources())
	return nil
}

// applyOverrides applies command-line values on top of the loaded layers.
func (app *Application) applyOverrides() error {
	set := func(path string, value any) error {
		return app.config.Set(path, value)
	}
	if app.opts.LogLevel != "" {
		if err := set("logging.level", app.opts.LogLevel); err != nil {
			return err
		}
	}
	if app.opts.LogFile != "" {
		if err := set("logging.file", app.opts.LogFile); err != nil {
			return err
		}
	}
	if app.opts.TabStop > 0 {
		if err := set("editor.tabStop", int64(app.opts.TabStop)); err != nil {
			return err
		}
	}
	return app.config.Validate()
}

func (app *Application) version() string {
	if app.opts.Version == "" {
		return "dev"
	}
	return app.opts.Version
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Run starts the application main loop.
// Blocks until the user quits or Shutdown is called.
func (app *Application) Run() error {
	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b == nil {
		return ErrNoBackend
	}

	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.Shutdown()

	app.mu.Lock()
	app.renderer = renderer.New(b, app.theme)
	app.mu.Unlock()
	app.session.Resize(b.Size())

	if err := app.startWatcher(); err != nil {
		app.logger.Warn("file watching disabled: %v", err)
	}

	app.session.SetStatus(HelpMessage)

	return app.eventLoop()
}

// startWatcher posts file changes to the backend event queue so they are
// handled on the event loop goroutine.
func (app *Application) startWatcher() error {
	wcfg := app.config.Watch()
	path := app.session.Filename()
	if !wcfg.Enabled || path == "" {
		return nil
	}

	log := app.logger.WithComponent("watcher")
	fw, err := watcher.WatchFile(path, wcfg.Debounce, func(ev watcher.Event) {
		if err := app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: ev}); err != nil {
			log.Warn("dropped %s event for %s: %v", ev.Op, ev.Path, err)
		}
	}, watcher.OnError(func(err error) {
		log.Error("watch error: %v", err)
	}))
	if err != nil {
		return NewOperationError("watch", path, err)
	}

	app.mu.Lock()
	app.watcher = fw
	app.mu.Unlock()
	log.Debug("watching %s", fw.Path())
	return nil
}

// Shutdown stops the watcher, restores the terminal and closes the log.
// It is safe to call more than once.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		app.stopping.Store(true)
		errs := NewErrorList()

		app.mu.Lock()
		fw, b, r := app.watcher, app.backend, app.renderer
		app.mu.Unlock()

		if fw != nil {
			errs.Add(fw.Close())
		}
		// The backend was initialized only if a renderer exists.
		if b != nil && r != nil {
			b.Shutdown()
			app.logger.Info("shutdown after %d frames", r.FrameCount())
		}
		if err := errs.AsError(); err != nil {
			app.logger.Error("shutdown: %v", err)
		}
		app.closeLog()
	})
}

func (app *Application) closeLog() {
	if app.logFile != nil {
		_ = app.logFile.Close()
		app.logFile = nil
	}
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the loaded configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Session returns the editing session.
func (app *Application) Session() *editor.Session {
	return app.session
}

// Renderer returns the renderer. It is nil until Run is called.
func (app *Application) Renderer() *renderer.Renderer {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.renderer
}

// isQuit reports whether err ends the event loop normally.
func isQuit(err error) bool {
	return errors.Is(err, editor.ErrQuit)
}

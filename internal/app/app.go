// Package app wires the editor core to a terminal backend and runs the
// event loop. It owns the editor state; every key, prefix timeout and
// keymap reload is applied on the loop goroutine.
package app

import (
	"context"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lxedit/lx/internal/config"
	"github.com/lxedit/lx/internal/dispatcher"
	"github.com/lxedit/lx/internal/editor"
	"github.com/lxedit/lx/internal/input/keymap"
	"github.com/lxedit/lx/internal/renderer"
	"github.com/lxedit/lx/internal/renderer/backend"
)

// Application is the central coordinator: config, editor state,
// dispatcher, renderer and backend.
type Application struct {
	mu sync.RWMutex

	config     config.Config
	logger     *Logger
	metrics    *Metrics
	clock      func() time.Time
	onRequest  func(name string)
	keymapPath string

	state      *editor.State
	dispatcher *dispatcher.Dispatcher
	renderer   *renderer.Renderer
	backend    backend.Backend
	watcher    *keymap.Watcher

	running  atomic.Bool
	done     chan struct{}
	doneOnce sync.Once
}

// Options configures the application.
type Options struct {
	// Config holds validated settings. The zero value selects
	// config.Default.
	Config *config.Config

	// Keymap overrides the table loaded from Config.Input.Keymap.
	Keymap *keymap.Table

	// Logger receives application logs. Nil selects GetLogger.
	Logger *Logger

	// OnRequest receives named external requests (Request operations).
	// Nil logs them instead.
	OnRequest func(name string)

	// Clock returns the current time. Nil selects time.Now.
	Clock func() time.Time
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	if err := cfg.Validate(); err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	app := &Application{
		config:     cfg,
		logger:     opts.Logger,
		metrics:    NewMetrics(),
		clock:      opts.Clock,
		onRequest:  opts.OnRequest,
		keymapPath: cfg.Input.Keymap,
		done:       make(chan struct{}),
	}
	if app.logger == nil {
		app.logger = GetLogger()
	}
	if app.clock == nil {
		app.clock = time.Now
	}

	table := opts.Keymap
	if table == nil {
		var err error
		if table, err = app.loadKeymap(); err != nil {
			return nil, &InitError{Component: "keymap", Err: err}
		}
	}

	app.state = editor.New(editor.Options{
		HistorySize:   cfg.Input.HistorySize,
		PageSize:      cfg.View.PageSize,
		PrefixTimeout: cfg.Input.PrefixTimeout,
		TabWidth:      cfg.View.TabWidth,
		Keymap:        table,
	})

	dcfg := dispatcher.DefaultConfig().
		WithClock(app.clock).
		WithLogger(app.logger.WithComponent("dispatcher")).
		WithMetrics()
	app.dispatcher = dispatcher.New(dcfg)

	return app, nil
}

func (app *Application) loadKeymap() (*keymap.Table, error) {
	if app.keymapPath == "" {
		return keymap.Default(), nil
	}
	table, err := keymap.LoadFile(app.keymapPath)
	if err != nil {
		return nil, err
	}
	app.logger.Info("loaded keymap %s", app.keymapPath)
	return table, nil
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

// Run initializes the backend and runs the event loop until a quit is
// requested, ctx is cancelled or Shutdown is called. A quit returns nil.
// The backend is shut down before Run returns, including after a panic,
// which is reported as a *RecoveredPanicError.
func (app *Application) Run(ctx context.Context) (err error) {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	defer func() {
		if r := recover(); r != nil {
			err = NewRecoveredPanicError(r, string(debug.Stack()))
			app.logger.Error("%v", err)
		}
	}()

	app.mu.RLock()
	b := app.backend
	app.mu.RUnlock()
	if b == nil {
		return ErrNoBackend
	}

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()

	app.renderer = renderer.New(b, renderer.Options{
		TabWidth:      app.config.View.TabWidth,
		ShowDebugLine: true,
	})

	if app.config.Input.WatchKeymap && app.keymapPath != "" {
		w, werr := keymap.NewWatcher(app.keymapPath, 0)
		if werr != nil {
			app.logger.Warn("%v", NewComponentError("keymap", "watch "+app.keymapPath, werr))
		} else {
			app.watcher = w
			defer func() {
				if cerr := w.Close(); cerr != nil {
					app.logger.Warn("%v", NewComponentError("keymap", "close watcher", cerr))
				}
			}()
		}
	}

	app.logger.Info("started")
	err = app.eventLoop(ctx, b)
	app.logger.Info("stopped")
	return err
}

// Shutdown stops the event loop. It is safe to call more than once and
// from any goroutine.
func (app *Application) Shutdown() {
	app.doneOnce.Do(func() { close(app.done) })
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the settings the application was built with.
func (app *Application) Config() config.Config {
	return app.config
}

// State returns the editor state. It is owned by the event loop while
// Run is active.
func (app *Application) State() *editor.State {
	return app.state
}

// Dispatcher returns the dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Renderer returns the renderer, or nil before Run.
func (app *Application) Renderer() *renderer.Renderer {
	return app.renderer
}

package app

import (
	"context"
	"errors"
	"time"

	"github.com/lxedit/lx/internal/input/keymap"
	"github.com/lxedit/lx/internal/renderer/backend"
)

// eventLoop is the main application loop. It is the only goroutine that
// touches app.state.
func (app *Application) eventLoop(ctx context.Context, b backend.Backend) error {
	events := app.startInputPolling(b)

	prefixTimer := time.NewTimer(time.Hour)
	stopTimer(prefixTimer)
	defer prefixTimer.Stop()

	var updates <-chan *keymap.Table
	var watchErrs <-chan error
	if app.watcher != nil {
		updates, watchErrs = app.watcher.Updates(), app.watcher.Errors()
	}

	app.render()

	for {
		prefixC := app.resetPrefixTimer(prefixTimer)

		select {
		case <-ctx.Done():
			return nil

		case <-app.done:
			return nil

		case ev, ok := <-events:
			if !ok {
				return ErrBackendClosed
			}
			if err := app.handleBackendEvent(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}

		case <-prefixC:
			if app.dispatcher.Expire(app.state) {
				app.metrics.RecordPrefixTimeout()
				app.render()
			}

		case table, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			app.state.SetKeymap(table)
			app.metrics.RecordKeymapReload(true)
			app.logger.Info("reloaded keymap %s", app.keymapPath)
			app.render()

		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			app.metrics.RecordKeymapReload(false)
			app.logger.Warn("%v", NewComponentError("keymap", "reload", err))
		}
	}
}

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	case backend.EventResize:
		app.render()
		return nil
	case backend.EventClosed:
		return ErrBackendClosed
	default:
		return nil
	}
}

// handleKeyEvent runs one dispatch cycle for a key.
func (app *Application) handleKeyEvent(ev backend.Event) error {
	timer := StartTimer()
	app.dispatcher.Handle(app.state, ev.Key)
	app.metrics.RecordInput(timer.Elapsed())

	if name := app.state.TakeRequest(); name != "" {
		app.deliverRequest(name)
	}
	if app.state.Quit() {
		return ErrQuit
	}

	app.render()
	return nil
}

func (app *Application) deliverRequest(name string) {
	if app.onRequest != nil {
		app.onRequest(name)
		return
	}
	app.logger.Info("request %s", name)
}

func (app *Application) render() {
	if app.renderer == nil {
		return
	}
	timer := StartTimer()
	app.renderer.Render(app.state.Snapshot())
	app.metrics.RecordRender(timer.Elapsed())
}

// resetPrefixTimer arms t at the prefix deadline and returns its channel,
// or nil when nothing is armed.
func (app *Application) resetPrefixTimer(t *time.Timer) <-chan time.Time {
	stopTimer(t)
	deadline, ok := app.state.Prefix().Deadline()
	if !ok {
		return nil
	}
	t.Reset(max(deadline.Sub(app.clock()), 0))
	return t.C
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}

// startInputPolling starts a goroutine that polls for input events.
// Events are sent to the returned channel.
//
// PollEvent is blocking, so this goroutine may outlive the loop until the
// backend is shut down, which makes PollEvent return EventClosed.
func (app *Application) startInputPolling(b backend.Backend) <-chan backend.Event {
	events := make(chan backend.Event, 100)

	go func() {
		defer close(events)

		for {
			ev := b.PollEvent()
			if ev.Type == backend.EventClosed {
				select {
				case events <- ev:
				case <-app.done:
				default:
				}
				return
			}

			select {
			case events <- ev:
			case <-app.done:
				return
			default:
				// Buffer full; drop rather than block the terminal reader.
				app.metrics.RecordInputDropped()
			}
		}
	}()

	return events
}

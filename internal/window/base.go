package window

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/kmacinski/harvest/internal/keys"
	"github.com/kmacinski/harvest/internal/logging"
	"github.com/kmacinski/harvest/internal/terminal"
	"github.com/kmacinski/harvest/internal/ui"
)

var (
	// ErrNotIdle is returned when Start is called on a window that already ran.
	ErrNotIdle = errors.New("window is not idle")
	// ErrInterrupted is returned by ReadKey for the interrupt key. It unwinds
	// every nested loop up to the application.
	ErrInterrupted = errors.New("interrupted")
)

// Window owns a surface and runs the render loop for its handler
type Window struct {
	name    string
	env     *Env
	surface *terminal.Surface
	opts    Options
	handler Handler
	state   State
	log     *slog.Logger
}

// New creates a window over a new surface of env's screen
func New(env *Env, name string, handler Handler, opts Options) (*Window, error) {
	log := logging.Component(env.Log, "window").With("window", name)
	log.Info("creating a new window",
		"height", opts.Height, "width", opts.Width,
		"origin_y", opts.OriginY, "origin_x", opts.OriginX)

	surface, err := terminal.NewSurface(env.Screen, opts.Height, opts.Width, opts.OriginY, opts.OriginX)
	if err != nil {
		return nil, fmt.Errorf("window %s: %w", name, err)
	}
	return &Window{
		name:    name,
		env:     env,
		surface: surface,
		opts:    opts,
		handler: handler,
		log:     log,
	}, nil
}

// Name returns the window name
func (w *Window) Name() string {
	return w.name
}

// State returns the lifecycle stage
func (w *Window) State() State {
	return w.state
}

// Env returns the shared environment
func (w *Window) Env() *Env {
	return w.env
}

// Surface returns the drawing surface
func (w *Window) Surface() *terminal.Surface {
	return w.surface
}

// Options returns the options the window was created with
func (w *Window) Options() Options {
	return w.opts
}

// Logger returns the window's logger
func (w *Window) Logger() *slog.Logger {
	return w.log
}

// Start runs the loop until the handler asks to quit or an error occurs.
// Each iteration clears the surface, renders the layout, binds data,
// refreshes and waits for one key.
func (w *Window) Start() error {
	if w.state != Idle {
		return fmt.Errorf("window %s (%s): %w", w.name, w.state, ErrNotIdle)
	}
	w.state = Running
	w.log.Info("starting window loop")
	defer func() {
		w.state = Terminated
		w.log.Info("window loop stopped")
	}()

	for {
		if err := w.Frame(); err != nil {
			return err
		}
		quit, err := w.handler.OnKeyPressed(w)
		if err != nil {
			return fmt.Errorf("window %s: key handler: %w", w.name, err)
		}
		if quit {
			w.log.Info("quitting window")
			return nil
		}
	}
}

// Frame draws one frame without reading input.
func (w *Window) Frame() error {
	w.log.Debug("clearing window")
	w.surface.Clear()
	w.RenderLayout()

	w.log.Debug("binding data")
	if err := w.handler.BindData(w); err != nil {
		return fmt.Errorf("window %s: bind data: %w", w.name, err)
	}

	w.log.Debug("refreshing window")
	w.surface.Refresh()
	return nil
}

// RenderLayout applies the background pair and border. Failures are logged
// and never stop the loop.
func (w *Window) RenderLayout() {
	if w.opts.Background != ui.NoPair {
		style, err := w.env.Colors.Resolve(w.opts.Background)
		if err != nil {
			w.log.Warn("background not applied", "error", err)
		} else {
			w.surface.SetBackground(style)
		}
	}
	if w.opts.Borders {
		w.surface.DrawBorder('|', '-')
	}
}

// Spawn creates a child window on the same screen and runs it to
// completion. The caller's loop stays blocked until the child quits.
func (w *Window) Spawn(name string, handler Handler, opts Options) error {
	child, err := New(w.env, name, handler, opts)
	if err != nil {
		return err
	}
	w.log.Info("spawning child window", "child", name)
	return child.Start()
}

// Write puts text at column x, row y with no explicit attribute.
func (w *Window) Write(text string, x, y int) error {
	return w.surface.Write(text, x, y)
}

// WritePair puts text at column x, row y styled by a registered color pair.
func (w *Window) WritePair(text string, x, y int, pair ui.PairID) error {
	if pair == ui.NoPair {
		return w.surface.Write(text, x, y)
	}
	style, err := w.env.Colors.Resolve(pair)
	if err != nil {
		return err
	}
	return w.surface.WriteStyled(text, x, y, style)
}

// ReadKey blocks for one key. The interrupt key is never returned to the
// handler; it yields ErrInterrupted instead.
func (w *Window) ReadKey() (keys.Key, error) {
	k, err := w.surface.ReadKey()
	if err != nil {
		return 0, err
	}
	w.log.Info("key received", "code", int(k), "key", k.String())
	if key.Matches(k, w.env.Keys.Interrupt) {
		w.log.Warn("interrupt key pressed")
		return k, ErrInterrupted
	}
	return k, nil
}

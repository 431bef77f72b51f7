package app

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/kmacinski/harvest/internal/keys"
	"github.com/kmacinski/harvest/internal/logging"
	"github.com/kmacinski/harvest/internal/terminal"
	"github.com/kmacinski/harvest/internal/ui"
	"github.com/kmacinski/harvest/internal/window"
)

// Root describes the window an application starts with
type Root struct {
	Name    string
	Handler window.Handler
	Options window.Options
}

// RootFunc builds the root window once the terminal is ready
type RootFunc func(env *window.Env) (Root, error)

// Options configures an App
type Options struct {
	Screen  terminal.ScreenFactory // defaults to the real terminal
	Palette ui.Palette
	Keys    *keys.KeyMap // defaults to keys.DefaultKeyMap
	Log     *slog.Logger
	Root    RootFunc
}

// App acquires the terminal, installs the color pairs and runs the root
// window until it quits.
type App struct {
	screen terminal.ScreenFactory
	colors *ui.Registry
	keys   keys.KeyMap
	base   *slog.Logger
	log    *slog.Logger
	root   RootFunc

	mu   sync.Mutex
	term *terminal.Terminal
}

// New creates a new application
func New(opts Options) *App {
	a := &App{
		screen: opts.Screen,
		colors: ui.NewRegistry(opts.Palette),
		keys:   keys.DefaultKeyMap,
		base:   opts.Log,
		root:   opts.Root,
	}
	if a.screen == nil {
		a.screen = terminal.NewScreen
	}
	if opts.Keys != nil {
		a.keys = *opts.Keys
	}
	if a.base == nil {
		a.base = logging.Discard()
	}
	a.log = logging.Component(a.base, "app")
	return a
}

// Colors returns the color registry
func (a *App) Colors() *ui.Registry {
	return a.colors
}

// Run blocks until the root window quits. The terminal is restored before
// Run returns, including when the loop fails or panics.
func (a *App) Run() error {
	if a.root == nil {
		return fmt.Errorf("app: no root window")
	}

	term, err := terminal.Open(a.screen)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.term = term
	a.mu.Unlock()
	defer a.release()
	a.log.Info("terminal acquired")

	if err := a.colors.RegisterDefaults(); err != nil {
		return fmt.Errorf("color pairs: %w", err)
	}

	env := &window.Env{
		Screen: term.Screen(),
		Colors: a.colors,
		Log:    a.base,
		Keys:   a.keys,
	}
	root, err := a.root(env)
	if err != nil {
		return fmt.Errorf("root window: %w", err)
	}

	// The root always covers the whole screen.
	opts := root.Options
	opts.Height, opts.Width, opts.OriginY, opts.OriginX = 0, 0, 0, 0

	w, err := window.New(env, root.Name, root.Handler, opts)
	if err != nil {
		return err
	}
	return w.Start()
}

// Interrupt restores the terminal from another goroutine, typically a
// signal handler. The blocked key read then fails and Run unwinds.
func (a *App) Interrupt() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.term != nil {
		a.log.Info("interrupted")
		a.term.Close()
	}
}

func (a *App) release() {
	a.mu.Lock()
	term := a.term
	a.term = nil
	a.mu.Unlock()

	term.Close()
	a.log.Info("terminal released")
}

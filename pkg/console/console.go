// Package console implements a line-oriented interactive command console:
// a registry of named handlers plus a read-parse-dispatch loop over standard
// input. Registration happens before the loop starts; each iteration reads
// one line, tokenizes it into a command name with positional and keyword
// arguments, and invokes the matching handler. Handler failures are reported
// to the user and never stop the loop.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/chzyer/readline"

	"github.com/sandevgo/shellkit/pkg/log"
)

// State of a Console. A console starts Idle, moves to Running when Run is
// called and ends Stopped. It cannot be restarted.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

// ErrAlreadyRunning is returned by Run on a console that is not idle, and
// by Register once the loop has started.
var ErrAlreadyRunning = errors.New("console already started")

// Handler executes one dispatched command. It runs on the loop goroutine
// with the Run context; an error return (or a panic, which the loop
// recovers) is reported to the user and the loop continues.
type Handler func(ctx context.Context, inv Invocation) error

// LineReader supplies one input line at a time. *readline.Instance
// satisfies it; tests substitute a scripted reader.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

type Config struct {
	// Prompt shown before each read. Defaults to "> ".
	Prompt string
	// Greeting printed once when Run starts, when non-empty.
	Greeting string
	// Input overrides the default readline-backed reader.
	Input LineReader
	// Output receives everything Display writes. Defaults to the
	// reader's stdout.
	Output io.Writer
}

// Console owns the command registry, the greeting and the loop state. One
// instance per process; Run owns stdin/stdout until it returns.
type Console struct {
	registry *Registry
	greeting string
	in       LineReader
	out      io.Writer
	objects  map[string]any
	state    atomic.Int32
	stopped  atomic.Bool
}

func New(cfg Config) (*Console, error) {
	if cfg.Prompt == "" {
		cfg.Prompt = "> "
	}

	in := cfg.Input
	out := cfg.Output
	if in == nil {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:                 cfg.Prompt,
			InterruptPrompt:        "^C",
			DisableAutoSaveHistory: true,
		})
		if err != nil {
			return nil, fmt.Errorf("init readline: %w", err)
		}
		in = rl
		if out == nil {
			out = rl.Stdout()
		}
	}
	if out == nil {
		out = os.Stdout
	}

	return &Console{
		registry: NewRegistry(),
		greeting: cfg.Greeting,
		in:       in,
		out:      out,
		objects:  make(map[string]any),
	}, nil
}

// Register binds a command name to a handler and returns the handler
// unchanged. Registration is only allowed before Run: the registry is
// read-only while the loop is running.
func (c *Console) Register(name string, h Handler) (Handler, error) {
	if c.State() != StateIdle {
		return h, ErrAlreadyRunning
	}
	return c.registry.Register(name, h)
}

// MustRegister is Register for static startup wiring; it panics on error.
func (c *Console) MustRegister(name string, h Handler) Handler {
	h, err := c.Register(name, h)
	if err != nil {
		panic(err)
	}
	return h
}

// Default installs a fallback handler for unrecognized command names.
func (c *Console) Default(h Handler) Handler {
	return c.registry.SetDefault(h)
}

// Commands returns the sorted registered command names.
func (c *Console) Commands() []string {
	return c.registry.Names()
}

// Attach stores a host object under key for handlers to retrieve with
// Object. Like registration, attachment belongs to startup wiring.
func (c *Console) Attach(key string, obj any) {
	c.objects[key] = obj
}

// Object returns an attached host object.
func (c *Console) Object(key string) (any, bool) {
	obj, ok := c.objects[key]
	return obj, ok
}

// Display writes each line followed by a newline to the console output.
// This is the only sanctioned way handlers produce visible output.
func (c *Console) Display(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(c.out, line)
	}
}

// Stop requests loop exit after the current dispatch completes. This is how
// a quit command terminates the console from inside a handler.
func (c *Console) Stop() {
	c.stopped.Store(true)
}

func (c *Console) State() State {
	return State(c.state.Load())
}

// Close releases the line reader. Safe to call after Run returns.
func (c *Console) Close() error {
	return c.in.Close()
}

// Run prints the greeting once and blocks in the read-dispatch cycle until
// end of input, an interrupt, or a Stop request. An interrupt during the
// blocking read prints "Exiting..." and returns nil; it never propagates.
// Run fails with ErrAlreadyRunning when the console is not idle.
func (c *Console) Run(ctx context.Context) error {
	if !c.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		return ErrAlreadyRunning
	}
	defer c.state.Store(int32(StateStopped))

	logger := log.FromCtx(ctx)

	if c.greeting != "" {
		c.Display(c.greeting)
	}
	logger.Debug().Int("commands", len(c.registry.commands)).Msg("console loop started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := c.in.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			c.Display("Exiting...")
			logger.Debug().Msg("interrupt received, console stopping")
			return nil
		case errors.Is(err, io.EOF):
			logger.Debug().Msg("end of input, console stopping")
			return nil
		case err != nil:
			return fmt.Errorf("read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		inv, ok := parseLine(line)
		if !ok {
			continue
		}
		c.dispatch(ctx, inv)

		if c.stopped.Load() {
			logger.Debug().Msg("stop requested, console stopping")
			return nil
		}
	}
}

func (c *Console) dispatch(ctx context.Context, inv Invocation) {
	handler, ok := c.registry.Lookup(inv.Name)
	if !ok {
		if c.registry.fallback == nil {
			c.Display("Unknown command: " + inv.Name)
			return
		}
		handler = c.registry.fallback
	}

	if err := invoke(ctx, handler, inv); err != nil {
		log.FromCtx(ctx).Debug().Err(err).Str("command", inv.Name).Msg("command failed")
		c.Display(fmt.Sprintf("Error: %s: %v", inv.Name, err))
	}
}

// invoke runs one handler, converting a panic into an error so a broken
// handler cannot take the loop down with it.
func invoke(ctx context.Context, h Handler, inv Invocation) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return h(ctx, inv)
}

package console

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

var (
	// ErrInvalidName is returned by Register for an empty name or a name
	// containing whitespace. The loop splits input on whitespace, so a
	// command name must be a single token.
	ErrInvalidName = errors.New("invalid command name")

	// ErrDuplicateCommand is returned when a name is registered twice.
	// Duplicate registrations are rejected rather than overwritten, so a
	// typo in startup wiring fails loudly instead of silently shadowing
	// an earlier command.
	ErrDuplicateCommand = errors.New("command already registered")

	// ErrNilHandler is returned when a nil handler is registered.
	ErrNilHandler = errors.New("nil command handler")
)

// Registry maps command names to handlers. It is populated during startup
// and read-only once the console loop is running.
type Registry struct {
	commands map[string]Handler
	fallback Handler
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Handler)}
}

// Register binds name to h and returns h unchanged, so call sites that keep
// the returned value keep working. Names are case-sensitive single tokens.
func (r *Registry) Register(name string, h Handler) (Handler, error) {
	if name == "" || strings.ContainsFunc(name, unicode.IsSpace) {
		return h, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if h == nil {
		return nil, fmt.Errorf("%w: %q", ErrNilHandler, name)
	}
	if _, exists := r.commands[name]; exists {
		return h, fmt.Errorf("%w: %q", ErrDuplicateCommand, name)
	}
	r.commands[name] = h
	return h, nil
}

// MustRegister is Register for static startup wiring; it panics on error.
func (r *Registry) MustRegister(name string, h Handler) Handler {
	h, err := r.Register(name, h)
	if err != nil {
		panic(err)
	}
	return h
}

// Lookup returns the handler bound to name. Exact match only.
func (r *Registry) Lookup(name string) (Handler, bool) {
	h, ok := r.commands[name]
	return h, ok
}

// SetDefault installs a fallback handler invoked for unrecognized command
// names. Without one the loop prints an "Unknown command" message instead.
func (r *Registry) SetDefault(h Handler) Handler {
	r.fallback = h
	return h
}

// Names returns the sorted registered command names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

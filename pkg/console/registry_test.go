package console

import (
	"context"
	"errors"
	"testing"
)

func noopHandler(ctx context.Context, inv Invocation) error {
	return nil
}

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry()

	invoked := false
	h := func(ctx context.Context, inv Invocation) error {
		invoked = true
		return nil
	}

	returned, err := r.Register("greet", h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := r.Lookup("greet")
	if !ok {
		t.Fatal("expected greet to be registered")
	}

	// Handlers are not comparable; verify the returned and stored values
	// are the original by observing the same side effect.
	if err := returned(context.Background(), Invocation{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !invoked {
		t.Error("Register did not return the original handler")
	}
	invoked = false
	if err := got(context.Background(), Invocation{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !invoked {
		t.Error("Lookup did not return the registered handler")
	}
}

func TestRegisterInvalidNames(t *testing.T) {
	tests := []struct {
		name    string
		cmdName string
	}{
		{name: "empty", cmdName: ""},
		{name: "inner space", cmdName: "two words"},
		{name: "tab", cmdName: "with\ttab"},
		{name: "leading space", cmdName: " lead"},
		{name: "trailing newline", cmdName: "cmd\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			if _, err := r.Register(tt.cmdName, noopHandler); !errors.Is(err, ErrInvalidName) {
				t.Errorf("Register(%q) error = %v, want ErrInvalidName", tt.cmdName, err)
			}
			if len(r.Names()) != 0 {
				t.Errorf("invalid name %q was stored", tt.cmdName)
			}
		})
	}
}

func TestRegisterDuplicateRejected(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Register("status", noopHandler); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Register("status", noopHandler); !errors.Is(err, ErrDuplicateCommand) {
		t.Fatalf("second Register error = %v, want ErrDuplicateCommand", err)
	}
}

func TestRegisterNilHandler(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Register("status", nil); !errors.Is(err, ErrNilHandler) {
		t.Fatalf("Register error = %v, want ErrNilHandler", err)
	}
}

func TestMustRegisterPanicsOnError(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("once", noopHandler)

	defer func() {
		if recover() == nil {
			t.Error("expected MustRegister to panic on duplicate")
		}
	}()
	r.MustRegister("once", noopHandler)
}

func TestNamesSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"quit", "echo", "help"} {
		if _, err := r.Register(name, noopHandler); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	names := r.Names()
	want := []string{"echo", "help", "quit"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Register("Echo", noopHandler); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := r.Lookup("echo"); ok {
		t.Error("Lookup matched a name with different case")
	}
}

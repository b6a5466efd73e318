// Package commands holds the built-in command set wired onto the demo
// console by the run command.
package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/shellkit/pkg/console"
)

const profileKey = "profile"

// Profile holds per-session state shared by the greet and quit commands.
type Profile struct {
	Name string
}

// RegisterAll wires the built-in command set onto con. Aliases share one
// handler. Registration failures surface to the caller before the loop
// starts; they are startup misconfiguration, not runtime errors.
func RegisterAll(con *console.Console) error {
	con.Attach(profileKey, &Profile{})

	bindings := []struct {
		name string
		h    console.Handler
	}{
		{"help", helpCmd(con)},
		{"?", helpCmd(con)},
		{"echo", echoCmd(con)},
		{"greet", greetCmd(con)},
		{"quit", quitCmd(con)},
		{"q", quitCmd(con)},
	}
	for _, b := range bindings {
		if _, err := con.Register(b.name, b.h); err != nil {
			return fmt.Errorf("register %s: %w", b.name, err)
		}
	}
	return nil
}

func currentProfile(con *console.Console) *Profile {
	obj, ok := con.Object(profileKey)
	if !ok {
		return &Profile{}
	}
	return obj.(*Profile)
}

func helpCmd(con *console.Console) console.Handler {
	return func(ctx context.Context, inv console.Invocation) error {
		con.Display("Available commands:")
		for _, name := range con.Commands() {
			con.Display("  " + name)
		}
		return nil
	}
}

func echoCmd(con *console.Console) console.Handler {
	return func(ctx context.Context, inv console.Invocation) error {
		con.Display(strings.Join(inv.Positional, " "))
		return nil
	}
}

// greetCmd greets by name. The name comes from the name= keyword argument or
// the first positional argument, and is remembered for later greetings.
func greetCmd(con *console.Console) console.Handler {
	return func(ctx context.Context, inv console.Invocation) error {
		profile := currentProfile(con)

		name := inv.Keyword["name"]
		if name == "" && len(inv.Positional) > 0 {
			name = inv.Positional[0]
		}
		if name != "" {
			profile.Name = name
		}

		if profile.Name == "" {
			con.Display("Hello there!")
			return nil
		}
		con.Display(fmt.Sprintf("Hello, %s!", profile.Name))
		return nil
	}
}

func quitCmd(con *console.Console) console.Handler {
	return func(ctx context.Context, inv console.Invocation) error {
		if profile := currentProfile(con); profile.Name != "" {
			con.Display(fmt.Sprintf("Goodbye, %s!", profile.Name))
		} else {
			con.Display("Goodbye!")
		}
		con.Stop()
		return nil
	}
}

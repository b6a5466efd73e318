package console

import "strings"

// Invocation is the parsed form of one input line: a command name plus
// positional and keyword arguments. It is built fresh for every line and
// handed to exactly one handler.
type Invocation struct {
	Name       string
	Positional []string
	Keyword    map[string]string
}

// parseLine tokenizes one trimmed input line. Tokens are separated by runs
// of whitespace; the first token is the command name. A remaining token
// containing '=' is split on the first '=' into a keyword pair, with
// repeated keys keeping the last value. A token starting with '=' has no
// key and stays positional. There is no quoting or escape support: this is
// a raw split, and a '=' inside what the user thinks of as a quoted value
// is still a keyword separator. ok is false when the line has no tokens.
func parseLine(line string) (Invocation, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Invocation{}, false
	}

	inv := Invocation{
		Name:    fields[0],
		Keyword: make(map[string]string),
	}
	for _, tok := range fields[1:] {
		if i := strings.Index(tok, "="); i > 0 {
			inv.Keyword[tok[:i]] = tok[i+1:]
			continue
		}
		inv.Positional = append(inv.Positional, tok)
	}
	return inv, true
}

package console

import (
	"reflect"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Invocation
		ok   bool
	}{
		{
			name: "name only",
			line: "foo",
			want: Invocation{Name: "foo", Keyword: map[string]string{}},
			ok:   true,
		},
		{
			name: "positional and keyword",
			line: "foo bar baz=1",
			want: Invocation{
				Name:       "foo",
				Positional: []string{"bar"},
				Keyword:    map[string]string{"baz": "1"},
			},
			ok: true,
		},
		{
			name: "repeated key keeps last value",
			line: "foo a=1 a=2",
			want: Invocation{Name: "foo", Keyword: map[string]string{"a": "2"}},
			ok:   true,
		},
		{
			name: "empty key stays positional",
			line: "foo =value",
			want: Invocation{
				Name:       "foo",
				Positional: []string{"=value"},
				Keyword:    map[string]string{},
			},
			ok: true,
		},
		{
			name: "value split on first equals only",
			line: "set url=http://host?a=b",
			want: Invocation{
				Name:    "set",
				Keyword: map[string]string{"url": "http://host?a=b"},
			},
			ok: true,
		},
		{
			name: "empty value",
			line: "set key=",
			want: Invocation{Name: "set", Keyword: map[string]string{"key": ""}},
			ok:   true,
		},
		{
			name: "runs of whitespace collapse",
			line: "foo   bar\t baz",
			want: Invocation{
				Name:       "foo",
				Positional: []string{"bar", "baz"},
				Keyword:    map[string]string{},
			},
			ok: true,
		},
		{
			name: "positional order preserved",
			line: "cp src dst mode=fast",
			want: Invocation{
				Name:       "cp",
				Positional: []string{"src", "dst"},
				Keyword:    map[string]string{"mode": "fast"},
			},
			ok: true,
		},
		{
			name: "blank line",
			line: "",
			want: Invocation{},
			ok:   false,
		},
		{
			name: "whitespace only",
			line: "   \t  ",
			want: Invocation{},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseLine(tt.line)
			if ok != tt.ok {
				t.Fatalf("parseLine(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if !ok {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

package main

import (
	"reflect"
	"testing"
)

func TestExtractLines(t *testing.T) {
	tests := []struct {
		input     string
		wantLines []string
		wantRest  string
	}{
		{"", nil, ""},
		{"NICK alice\r\n", []string{"NICK alice"}, ""},
		{"NICK alice\r\nUSER a 0 * :A\r\n", []string{"NICK alice", "USER a 0 * :A"}, ""},
		{"NICK al", nil, "NICK al"},
		{"NICK alice\r\nPAR", []string{"NICK alice"}, "PAR"},
		{"\r\n", []string{""}, ""},
	}

	for _, test := range tests {
		lines, rest := extractLines([]byte(test.input))
		if !reflect.DeepEqual(lines, test.wantLines) {
			t.Errorf("extractLines(%q) lines = %#v, wanted %#v", test.input, lines,
				test.wantLines)
		}
		if string(rest) != test.wantRest {
			t.Errorf("extractLines(%q) rest = %q, wanted %q", test.input, rest,
				test.wantRest)
		}
	}
}

// TestExtractLinesAcrossSplits checks that splitting the same byte stream
// across two reads, at every possible split point, produces the same lines,
// independent of where the split falls (spec.md §8 property 2).
func TestExtractLinesAcrossSplits(t *testing.T) {
	full := "NICK alice\r\nUSER a 0 * :Alice Name\r\nQUIT :bye\r\n"

	for split := 0; split <= len(full); split++ {
		var buf []byte
		var got []string

		first := []byte(full[:split])
		second := []byte(full[split:])

		buf = append(buf, first...)
		var lines []string
		lines, buf = extractLines(buf)
		got = append(got, lines...)

		buf = append(buf, second...)
		lines, buf = extractLines(buf)
		got = append(got, lines...)

		want := []string{"NICK alice", "USER a 0 * :Alice Name", "QUIT :bye"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("split at %d: got %#v, wanted %#v", split, got, want)
		}
		if len(buf) != 0 {
			t.Errorf("split at %d: leftover buffer %q", split, buf)
		}
	}
}

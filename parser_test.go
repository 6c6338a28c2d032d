package main

import "testing"

func TestParseLine(t *testing.T) {
	tests := []struct {
		input      string
		wantPrefix string
		wantVerb   string
		wantParams []string
		wantOK     bool
	}{
		{"NICK alice", "", "NICK", []string{"alice"}, true},
		{"nick alice", "", "NICK", []string{"alice"}, true},
		{"USER alice 0 * :Alice Name", "", "USER", []string{"alice", "0", "*", "Alice Name"}, true},
		{":nick!user@host PRIVMSG #chat :hi there", "nick!user@host", "PRIVMSG", []string{"#chat", "hi there"}, true},
		{"PING", "", "PING", nil, true},
		{"", "", "", nil, false},
		{"   ", "", "", nil, false},
		{":", "", "", nil, false},
		{":onlyprefix", "", "", nil, false},
		{"JOIN #a :", "", "JOIN", []string{"#a", ""}, true},
		{"PRIVMSG #chat ::colon-led text", "", "PRIVMSG", []string{"#chat", ":colon-led text"}, true},
	}

	for _, test := range tests {
		prefix, verb, params, ok := parseLine(test.input)
		if ok != test.wantOK {
			t.Errorf("parseLine(%q) ok = %v, wanted %v", test.input, ok, test.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if prefix != test.wantPrefix || verb != test.wantVerb {
			t.Errorf("parseLine(%q) = (%q, %q, ...), wanted (%q, %q, ...)",
				test.input, prefix, verb, test.wantPrefix, test.wantVerb)
		}
		if len(params) != len(test.wantParams) {
			t.Errorf("parseLine(%q) params = %#v, wanted %#v", test.input, params,
				test.wantParams)
			continue
		}
		for i := range params {
			if params[i] != test.wantParams[i] {
				t.Errorf("parseLine(%q) params[%d] = %q, wanted %q", test.input, i,
					params[i], test.wantParams[i])
			}
		}
	}
}

// TestParseLineRoundTrip checks spec.md §8 property 1: a serialized
// (prefix, verb, params) triple parses back to the same triple, including
// a trailing parameter with embedded spaces.
func TestParseLineRoundTrip(t *testing.T) {
	tests := []struct {
		prefix string
		verb   string
		params []string
	}{
		{"", "NICK", []string{"alice"}},
		{"alice!a@host", "PRIVMSG", []string{"#chat", "hello there world"}},
		{"", "USER", []string{"a", "0", "*", "Real Name Here"}},
	}

	for _, test := range tests {
		line := ""
		if test.prefix != "" {
			line += ":" + test.prefix + " "
		}
		line += test.verb
		for i, p := range test.params {
			line += " "
			if i == len(test.params)-1 {
				line += ":" + p
			} else {
				line += p
			}
		}

		prefix, verb, params, ok := parseLine(line)
		if !ok {
			t.Fatalf("parseLine(%q) failed to parse", line)
		}
		if prefix != test.prefix {
			t.Errorf("parseLine(%q) prefix = %q, wanted %q", line, prefix, test.prefix)
		}
		if verb != test.verb {
			t.Errorf("parseLine(%q) verb = %q, wanted %q", line, verb, test.verb)
		}
		if len(params) != len(test.params) {
			t.Fatalf("parseLine(%q) params = %#v, wanted %#v", line, params, test.params)
		}
		for i := range params {
			if params[i] != test.params[i] {
				t.Errorf("parseLine(%q) params[%d] = %q, wanted %q", line, i, params[i],
					test.params[i])
			}
		}
	}
}

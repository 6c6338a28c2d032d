package main

import "strings"

// parseLine converts one CRLF-stripped line into a prefix/verb/parameter
// triple, following spec.md §4.2 exactly. This is a fresh implementation
// against that rule set rather than github.com/horgh/irc's Decode: that
// decoder enforces its own parameter-count ceiling and prefix rules, which
// differ in edge cases from spec.md's (e.g. a malformed prefix with no
// following space is silently discarded here, not an error). See
// DESIGN.md. The IRCServer.cpp original's parseCommand (scan, skip spaces,
// split on ' ', trailing ':') is the structural model.
//
// ok is false when the line has no verb, or its prefix is malformed, and
// should be silently discarded.
func parseLine(line string) (prefix string, verb string, params []string, ok bool) {
	i := 0
	n := len(line)

	skipSpaces := func() {
		for i < n && line[i] == ' ' {
			i++
		}
	}

	skipSpaces()
	if i >= n {
		return "", "", nil, false
	}

	if line[i] == ':' {
		i++
		start := i
		for i < n && line[i] != ' ' {
			i++
		}
		if i >= n {
			// No space following the prefix: malformed, discard.
			return "", "", nil, false
		}
		prefix = line[start:i]
		i++ // consume the delimiting space
	}

	skipSpaces()
	if i >= n {
		return "", "", nil, false
	}

	verbStart := i
	for i < n && line[i] != ' ' {
		i++
	}
	verb = strings.ToUpper(line[verbStart:i])
	if verb == "" {
		return "", "", nil, false
	}

	for {
		skipSpaces()
		if i >= n {
			break
		}

		if line[i] == ':' {
			params = append(params, line[i+1:])
			break
		}

		paramStart := i
		for i < n && line[i] != ' ' {
			i++
		}
		params = append(params, line[paramStart:i])
	}

	return prefix, verb, params, true
}

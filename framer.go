package main

import "bytes"

// extractLines pulls every complete CRLF-terminated line out of buf,
// returning the lines (delimiter stripped) and whatever partial data is
// left over to prepend to the next read (spec.md §4.1). Lines are not
// length-capped: implementers MAY cap at 512 bytes to match RFC, but this
// implementation does not, matching spec.md's explicit permission.
func extractLines(buf []byte) (lines []string, rest []byte) {
	for {
		idx := bytes.Index(buf, []byte("\r\n"))
		if idx == -1 {
			return lines, buf
		}

		lines = append(lines, string(buf[:idx]))
		buf = buf[idx+2:]
	}
}

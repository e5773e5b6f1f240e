// Package frontmatter extracts key/value metadata from the delimited
// header block of a skill definition file.
package frontmatter

import "strings"

// Delimiter is the marker line that opens and closes a frontmatter block.
const Delimiter = "---"

// Parse extracts the frontmatter block from raw file text.
//
// A block must start at the very beginning of the text with a line that is
// exactly the delimiter and end with a second delimiter line. Interior
// lines are split on the first colon; the trimmed left side becomes the
// key and the trimmed remainder the value. Lines without a colon are
// ignored. When the closing delimiter is missing the block is treated as
// absent and an empty map is returned; the parser never falls back to
// reading until end of file.
func Parse(text string) map[string]string {
	meta := make(map[string]string)

	lines := strings.Split(text, "\n")
	if len(lines) == 0 || trimEOL(lines[0]) != Delimiter {
		return meta
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if trimEOL(lines[i]) == Delimiter {
			end = i
			break
		}
	}
	if end == -1 {
		return meta
	}

	for _, line := range lines[1:end] {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		meta[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return meta
}

// Body returns the free-form text following the frontmatter block, with
// leading blank lines removed. Text without a complete block is returned
// unchanged.
func Body(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || trimEOL(lines[0]) != Delimiter {
		return text
	}
	for i := 1; i < len(lines); i++ {
		if trimEOL(lines[i]) == Delimiter {
			return strings.TrimLeft(strings.Join(lines[i+1:], "\n"), "\n")
		}
	}
	return text
}

// trimEOL drops a trailing carriage return so CRLF files parse the same
// as LF files.
func trimEOL(line string) string {
	return strings.TrimSuffix(line, "\r")
}

package subtitle

import "strings"

// parseState is the position of the line scanner relative to an SRT entry.
type parseState int

const (
	// stateSeeking: between entries, waiting for a timing line.
	stateSeeking parseState = iota
	// stateInText: accumulating the text lines of the current entry.
	stateInText
)

// Parse extracts the cleaned text blocks from raw SRT file content, in entry
// order. Sequence-index lines and timing lines are discarded, each entry's
// text lines are joined with single spaces and normalized via Clean, and
// entries that are empty after normalization are dropped. A final entry not
// followed by a trailing blank line is still emitted.
func Parse(content string) []string {
	var blocks []string
	var current []string
	state := stateSeeking

	flush := func() {
		if len(current) == 0 {
			return
		}
		if text := Clean(strings.Join(current, " ")); text != "" {
			blocks = append(blocks, text)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case line == "":
			// End of block.
			flush()
			state = stateSeeking
		case strings.Contains(line, "-->"):
			state = stateInText
		case isIndexLine(line):
			// Sequence index, never content and never a state change.
		case state == stateInText:
			current = append(current, line)
		}
	}

	flush()
	return blocks
}

// isIndexLine reports whether the line is purely a decimal integer.
func isIndexLine(line string) bool {
	if line == "" {
		return false
	}
	for _, r := range line {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

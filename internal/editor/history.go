package editor

// History records submitted lines in insertion order. The cursor ranges over
// [0, Len()]; Len() denotes the implicit empty line past the newest entry.
type History struct {
	entries []string
	cursor  int
}

// Len returns the number of recorded entries.
func (h *History) Len() int { return len(h.entries) }

// Cursor returns the recall position.
func (h *History) Cursor() int { return h.cursor }

// Entries returns a copy of the recorded lines.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Push records a line and parks the cursor past the end.
func (h *History) Push(line string) {
	h.entries = append(h.entries, line)
	h.Reset()
}

// Reset parks the cursor past the newest entry.
func (h *History) Reset() {
	h.cursor = len(h.entries)
}

// Prev moves towards older entries. It reports false when already at the
// oldest entry.
func (h *History) Prev() (string, bool) {
	if h.cursor <= 0 {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next moves towards newer entries. Stepping off the newest entry yields the
// empty line; at the end it reports false.
func (h *History) Next() (string, bool) {
	if h.cursor >= len(h.entries) {
		return "", false
	}
	h.cursor++
	if h.cursor == len(h.entries) {
		return "", true
	}
	return h.entries[h.cursor], true
}

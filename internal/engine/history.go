package engine

// History holds completed expressions, most recent first.
// It is not safe for concurrent use; the owning component serialises access.
type History struct {
	entries []string
}

// Record inserts entry at the front. There is no eviction.
func (h *History) Record(entry string) {
	h.entries = append(h.entries, "")
	copy(h.entries[1:], h.entries)
	h.entries[0] = entry
}

// Clear empties the list.
func (h *History) Clear() {
	h.entries = nil
}

// Entries returns a copy of the list, newest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int {
	return len(h.entries)
}

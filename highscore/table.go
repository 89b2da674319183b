package highscore

import "sort"

// Entry is one finished run
type Entry struct {
	Name  string `toml:"name"`
	Score int    `toml:"score"`
}

// Table is the append-only list of finished runs in completion order
type Table struct {
	Entries []Entry `toml:"entry"`
}

// Add appends a run
func (t *Table) Add(name string, score int) {
	t.Entries = append(t.Entries, Entry{Name: name, Score: score})
}

// Len returns the number of recorded runs
func (t *Table) Len() int {
	return len(t.Entries)
}

// Top returns up to n entries by descending score
// Ties keep completion order
func (t *Table) Top(n int) []Entry {
	sorted := make([]Entry, len(t.Entries))
	copy(sorted, t.Entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Best returns the highest score, 0 for an empty table
func (t *Table) Best() int {
	best := 0
	for _, e := range t.Entries {
		if e.Score > best {
			best = e.Score
		}
	}
	return best
}

package progress

import (
	"sort"
	"time"

	"skilltrack/internal/domain/skill"
)

// History is an immutable, chronologically ordered view of one skill's rating
// entries. Entries sharing a date are ordered by UpdatedAt, so "latest" is
// deterministic even for same-day re-rates.
type History struct {
	entries []skill.Rating
}

func NewHistory(entries []skill.Rating) History {
	out := make([]skill.Rating, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].UpdatedAt.Before(out[j].UpdatedAt)
		}
		return out[i].Date.Before(out[j].Date)
	})
	return History{entries: out}
}

func (h History) Len() int {
	return len(h.entries)
}

// Ascending returns the full history sorted by date, oldest first.
func (h History) Ascending() []skill.Rating {
	out := make([]skill.Rating, len(h.entries))
	copy(out, h.entries)
	return out
}

// Latest returns the most recent entry, or false for an empty history. An
// empty history is a normal state, not an error.
func (h History) Latest() (skill.Rating, bool) {
	if len(h.entries) == 0 {
		return skill.Rating{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// LastTwo returns the two most recent entries, newest first. ok is false when
// fewer than two entries exist.
func (h History) LastTwo() (newest, previous skill.Rating, ok bool) {
	if len(h.entries) < 2 {
		return skill.Rating{}, skill.Rating{}, false
	}
	return h.entries[len(h.entries)-1], h.entries[len(h.entries)-2], true
}

// Since returns the entries with Date >= cutoff, oldest first.
func (h History) Since(cutoff time.Time) []skill.Rating {
	i := sort.Search(len(h.entries), func(i int) bool {
		return !h.entries[i].Date.Before(cutoff)
	})
	out := make([]skill.Rating, len(h.entries)-i)
	copy(out, h.entries[i:])
	return out
}

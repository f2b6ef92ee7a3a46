// Package scores keeps the high-score table and its on-disk form.
package scores

import (
	"cmp"
	"log/slog"
	"slices"
	"strings"
)

// MaxEntries is how many scores the table keeps
const MaxEntries = 10

type Entry struct {
	Name  string
	Score int
}

// Store persists the table between runs
type Store interface {
	Load() ([]Entry, error)
	Save([]Entry) error
}

// Table is the descending top-ten list. It is owned by the application and
// touched only between sessions.
type Table struct {
	entries []Entry
	store   Store
	logger  *slog.Logger
}

// NewTable loads the table from store, dropping entries Record would have
// refused. A load failure leaves the table empty.
func NewTable(store Store, logger *slog.Logger) *Table {
	if logger == nil {
		logger = slog.Default()
	}
	t := &Table{store: store, logger: logger}
	if store == nil {
		return t
	}

	entries, err := store.Load()
	if err != nil {
		logger.Warn("no high scores loaded", "err", err)
		return t
	}
	t.entries = slices.DeleteFunc(entries, func(e Entry) bool {
		return strings.TrimSpace(e.Name) == "" || e.Score <= 0
	})
	t.sort()
	t.truncate()
	return t
}

// Record adds a score for name, keeps the table sorted and capped, and saves
// it. Blank names and non-positive scores are ignored. Returns whether the
// entry is in the table afterwards.
func (t *Table) Record(name string, score int) bool {
	name = strings.TrimSpace(name)
	if name == "" || score <= 0 {
		return false
	}

	e := Entry{Name: name, Score: score}
	t.entries = append(t.entries, e)
	t.sort()
	idx := t.lastIndexOf(e)
	t.truncate()
	if idx >= MaxEntries {
		return false
	}

	if t.store != nil {
		if err := t.store.Save(t.entries); err != nil {
			t.logger.Error("could not save high scores", "err", err)
		}
	}
	return true
}

func (t *Table) lastIndexOf(e Entry) int {
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i] == e {
			return i
		}
	}
	return -1
}

// Qualifies reports whether score would enter the table if recorded now
func (t *Table) Qualifies(score int) bool {
	if score <= 0 {
		return false
	}
	if len(t.entries) < MaxEntries {
		return true
	}
	return score > t.entries[len(t.entries)-1].Score
}

// Entries returns a copy of the table, highest score first
func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

func (t *Table) Len() int {
	return len(t.entries)
}

// sort orders descending by score, keeping insertion order among equal scores
func (t *Table) sort() {
	slices.SortStableFunc(t.entries, func(a, b Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})
}

func (t *Table) truncate() {
	if len(t.entries) > MaxEntries {
		t.entries = t.entries[:MaxEntries]
	}
}

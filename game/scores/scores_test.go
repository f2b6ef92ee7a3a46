package scores

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"testing"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memStore counts saves and can be told to fail
type memStore struct {
	entries []Entry
	saves   int
	loadErr error
	saveErr error
}

func (m *memStore) Load() ([]Entry, error) {
	return append([]Entry(nil), m.entries...), m.loadErr
}

func (m *memStore) Save(e []Entry) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.entries = append([]Entry(nil), e...)
	return nil
}

func checkSorted(t *testing.T, entries []Entry) {
	t.Helper()
	if len(entries) > MaxEntries {
		t.Fatalf("%d entries, cap is %d", len(entries), MaxEntries)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Score < entries[i].Score {
			t.Fatalf("not descending at %d: %v", i, entries)
		}
	}
}

func TestRecordKeepsTopTen(t *testing.T) {
	store := &memStore{}
	table := NewTable(store, quietLogger())

	scores := []int{30, 120, 10, 80, 80, 200, 50, 40, 90, 60, 70, 20, 150}
	for i, s := range scores {
		table.Record(fmt.Sprintf("p%d", i), s)
		checkSorted(t, table.Entries())
	}

	got := table.Entries()
	if len(got) != MaxEntries {
		t.Fatalf("table has %d entries", len(got))
	}
	if got[0].Score != 200 || got[len(got)-1].Score != 40 {
		t.Errorf("top %d bottom %d", got[0].Score, got[len(got)-1].Score)
	}
	if len(store.entries) != MaxEntries {
		t.Errorf("store holds %d entries", len(store.entries))
	}
}

func TestRecordBelowTableIsNoop(t *testing.T) {
	store := &memStore{}
	table := NewTable(store, quietLogger())
	for i := 0; i < MaxEntries; i++ {
		table.Record(fmt.Sprintf("p%d", i), 100+i*10)
	}
	before := table.Entries()
	saves := store.saves

	if table.Record("late", 50) {
		t.Error("score below the table reported as recorded")
	}
	if table.Qualifies(100) {
		t.Error("tie with the lowest entry should not qualify")
	}
	after := table.Entries()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("table changed at %d: %v -> %v", i, before[i], after[i])
		}
	}
	if store.saves != saves {
		t.Error("unchanged table was saved")
	}
}

func TestRecordTieKeepsEarlierEntry(t *testing.T) {
	table := NewTable(&memStore{}, quietLogger())
	table.Record("first", 50)
	table.Record("second", 50)
	got := table.Entries()
	if got[0].Name != "first" || got[1].Name != "second" {
		t.Errorf("tie order %v", got)
	}
}

func TestRecordIgnoresBlankAndZero(t *testing.T) {
	store := &memStore{}
	table := NewTable(store, quietLogger())

	if table.Record("   ", 100) {
		t.Error("blank name recorded")
	}
	if table.Record("ann", 0) {
		t.Error("zero score recorded")
	}
	if !table.Record("  ann  ", 10) {
		t.Fatal("valid score not recorded")
	}
	if got := table.Entries()[0].Name; got != "ann" {
		t.Errorf("name %q not trimmed", got)
	}
	if store.saves != 1 {
		t.Errorf("%d saves, want 1", store.saves)
	}
}

func TestTableLoadFailureStartsEmpty(t *testing.T) {
	table := NewTable(&memStore{loadErr: errors.New("disk on fire")}, quietLogger())
	if table.Len() != 0 {
		t.Errorf("table has %d entries", table.Len())
	}
}

func TestTableSaveFailureKeepsEntry(t *testing.T) {
	table := NewTable(&memStore{saveErr: errors.New("read-only")}, quietLogger())
	if !table.Record("ann", 10) {
		t.Fatal("save failure should not reject the score")
	}
	if table.Len() != 1 {
		t.Errorf("table has %d entries", table.Len())
	}
}

func TestTableLoadSortsAndCaps(t *testing.T) {
	var stored []Entry
	for i := 0; i < 15; i++ {
		stored = append(stored, Entry{Name: fmt.Sprintf("p%d", i), Score: i})
	}
	table := NewTable(&memStore{entries: stored}, quietLogger())
	got := table.Entries()
	checkSorted(t, got)
	if len(got) != MaxEntries || got[0].Score != 14 {
		t.Errorf("loaded %v", got)
	}
}

func TestTableLoadExtremeScores(t *testing.T) {
	stored := []Entry{
		{Name: "a", Score: -2},
		{Name: "b", Score: math.MaxInt},
		{Name: "c", Score: 5},
		{Name: "d", Score: 0},
		{Name: " ", Score: 7},
	}
	table := NewTable(&memStore{entries: stored}, quietLogger())
	got := table.Entries()
	checkSorted(t, got)
	want := []Entry{{"b", math.MaxInt}, {"c", 5}}
	if len(got) != len(want) {
		t.Fatalf("loaded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %v, want %v", i, got[i], want[i])
		}
	}
	if !table.Record("e", math.MaxInt-1) || table.Entries()[1].Name != "e" {
		t.Errorf("near-max score misplaced: %v", table.Entries())
	}
}

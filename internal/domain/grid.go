package domain

import (
	"sort"

	"github.com/m04kA/PacificPool/pkg/types"
)

// SlotKey composite (time-of-day, date) key of a grid cell
type SlotKey struct {
	Time types.TimeString
	Date Date
}

// SlotIndex two-level ordered map time -> date -> Session, plus an id index.
//
// Two sessions with the same SlotKey are a data inconsistency on the server:
// the later one in the input wins and the overwritten key is recorded in
// Duplicates(). Nothing is merged or corrected.
type SlotIndex struct {
	rows       map[types.TimeString]map[Date]Session
	byID       map[int64]SlotKey
	duplicates []SlotKey
}

// GroupByTime indexes sessions for grid rendering and id lookups
func GroupByTime(sessions []Session) *SlotIndex {
	ix := &SlotIndex{
		rows: make(map[types.TimeString]map[Date]Session),
		byID: make(map[int64]SlotKey, len(sessions)),
	}
	for _, s := range sessions {
		ix.put(s)
	}
	return ix
}

func (ix *SlotIndex) put(s Session) {
	key := s.Key()

	// тот же id пришёл под другим ключом - старая ячейка больше не его
	if prev, ok := ix.byID[s.ID]; ok && prev != key {
		if cell, ok := ix.rows[prev.Time][prev.Date]; ok && cell.ID == s.ID {
			ix.remove(prev)
		}
	}

	row, ok := ix.rows[key.Time]
	if !ok {
		row = make(map[Date]Session)
		ix.rows[key.Time] = row
	}

	if existing, ok := row[key.Date]; ok {
		ix.duplicates = append(ix.duplicates, key)
		if existing.ID != s.ID {
			delete(ix.byID, existing.ID)
		}
	}

	row[key.Date] = s
	ix.byID[s.ID] = key
}

func (ix *SlotIndex) remove(key SlotKey) {
	row := ix.rows[key.Time]
	delete(row, key.Date)
	if len(row) == 0 {
		delete(ix.rows, key.Time)
	}
}

// Times distinct start times, ascending (lexical == chronological for HH:MM)
func (ix *SlotIndex) Times() []types.TimeString {
	times := make([]types.TimeString, 0, len(ix.rows))
	for t := range ix.rows {
		times = append(times, t)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].IsBefore(times[j]) })
	return times
}

// Row sessions starting at t, ordered by date
func (ix *SlotIndex) Row(t types.TimeString) []Session {
	row := ix.rows[t]
	out := make([]Session, 0, len(row))
	for _, s := range row {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Lookup session at (t, d)
func (ix *SlotIndex) Lookup(t types.TimeString, d Date) (Session, bool) {
	s, ok := ix.rows[t][d]
	return s, ok
}

// ByID session with the given id, if it survived grouping
func (ix *SlotIndex) ByID(id int64) (Session, bool) {
	key, ok := ix.byID[id]
	if !ok {
		return Session{}, false
	}
	return ix.Lookup(key.Time, key.Date)
}

// Duplicates keys that were overwritten, in input order
func (ix *SlotIndex) Duplicates() []SlotKey {
	out := make([]SlotKey, len(ix.duplicates))
	copy(out, ix.duplicates)
	return out
}

// Len number of populated cells
func (ix *SlotIndex) Len() int {
	return len(ix.byID)
}

// Sessions all indexed sessions ordered by (time, date)
func (ix *SlotIndex) Sessions() []Session {
	out := make([]Session, 0, ix.Len())
	for _, t := range ix.Times() {
		out = append(out, ix.Row(t)...)
	}
	return out
}

// Grid time x date matrix; columns are fixed even when a cell is empty
type Grid struct {
	Dates []Date
	Rows  []GridRow
}

type GridRow struct {
	Time  types.TimeString
	Cells []GridCell
}

// GridCell Session is nil for an empty cell
type GridCell struct {
	Date    Date
	Session *Session
}

// BuildGrid lays the index out with one column per given date
func BuildGrid(ix *SlotIndex, columns []Date) Grid {
	grid := Grid{
		Dates: append([]Date(nil), columns...),
		Rows:  make([]GridRow, 0, len(ix.rows)),
	}

	for _, t := range ix.Times() {
		row := GridRow{Time: t, Cells: make([]GridCell, len(columns))}
		for i, d := range columns {
			row.Cells[i] = GridCell{Date: d}
			if s, ok := ix.Lookup(t, d); ok {
				s := s
				row.Cells[i].Session = &s
			}
		}
		grid.Rows = append(grid.Rows, row)
	}

	return grid
}

package forminator

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/forminator-backfill/internal/timex"
)

// Generator turns entries into meta rows and INSERT statements. The clock
// only matters for entries without an explicit DateCreated; it is a field so
// tests can pin it.
type Generator struct {
	now func() time.Time
}

// New returns a Generator using the wall clock for defaulted creation
// timestamps.
func New() *Generator {
	return &Generator{now: time.Now}
}

// Rows builds the ordered meta rows for one entry. Meta ids start at
// e.MetaIDStart and increase by one per included row; excluded slots consume
// nothing, so ids stay dense. Errors identify the entry and, where relevant,
// the field.
func (g *Generator) Rows(e *Entry) ([]Row, error) {
	created, err := g.createdAt(e)
	if err != nil {
		return nil, fmt.Errorf("entry %d: %w", e.EntryID, err)
	}

	c := &slotContext{entry: e, created: created}

	rows := make([]Row, 0, len(layout))
	metaID := e.MetaIDStart
	for _, s := range layout {
		if s.include != nil && !s.include(e) {
			continue
		}
		value, err := s.value(c)
		if err != nil {
			return nil, fmt.Errorf("entry %d: field %s: %w", e.EntryID, s.key, err)
		}
		rows = append(rows, Row{
			MetaID:  metaID,
			EntryID: e.EntryID,
			Key:     s.key,
			Value:   value,
			Created: created,
		})
		metaID++
	}
	return rows, nil
}

// RowGroups builds the meta rows for every entry, one group per entry.
// A single failing entry fails the whole batch; partial output invites a
// half-applied backfill.
func (g *Generator) RowGroups(entries []Entry) ([][]Row, error) {
	groups := make([][]Row, 0, len(entries))
	for i := range entries {
		rows, err := g.Rows(&entries[i])
		if err != nil {
			return nil, err
		}
		groups = append(groups, rows)
	}
	return groups, nil
}

// RenderStatements renders the INSERT statements for the given row groups,
// inserting one empty element between consecutive groups (a blank line once
// joined) and none after the last.
func RenderStatements(groups [][]Row) []string {
	var out []string
	for i, rows := range groups {
		if i > 0 {
			out = append(out, "")
		}
		for _, r := range rows {
			out = append(out, r.Statement())
		}
	}
	return out
}

// Statements renders the INSERT statements for one entry, in row order.
func (g *Generator) Statements(e *Entry) ([]string, error) {
	rows, err := g.Rows(e)
	if err != nil {
		return nil, err
	}
	stmts := make([]string, len(rows))
	for i, r := range rows {
		stmts[i] = r.Statement()
	}
	return stmts, nil
}

// Batch renders statements for a list of entries, with the blank separator
// convention of RenderStatements. Each entry keeps its own meta id counter.
func (g *Generator) Batch(entries []Entry) ([]string, error) {
	groups, err := g.RowGroups(entries)
	if err != nil {
		return nil, err
	}
	return RenderStatements(groups), nil
}

// createdAt resolves the entry's creation time: the explicit override when
// present, the clock otherwise.
func (g *Generator) createdAt(e *Entry) (time.Time, error) {
	if e.DateCreated == "" {
		return g.now(), nil
	}
	t, err := timex.ParseDateTime(e.DateCreated)
	if err != nil {
		return time.Time{}, fmt.Errorf("date_created: %w", err)
	}
	return t, nil
}

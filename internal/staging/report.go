package staging

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/forminator-backfill/internal/phpserialize"
)

// Report summarizes what the rehearsal found. A zero Issues slice means the
// staged rows look safe to apply.
type Report struct {
	Entries int
	Rows    int

	// Issues are human-readable findings, one per defect.
	Issues []string
}

// OK reports whether the rehearsal found nothing wrong.
func (r *Report) OK() bool {
	return len(r.Issues) == 0
}

func (r *Report) String() string {
	if r.OK() {
		return fmt.Sprintf("%d rows across %d entries, no issues", r.Rows, r.Entries)
	}
	return fmt.Sprintf("%d rows across %d entries, %d issues:\n  %s",
		r.Rows, r.Entries, len(r.Issues), strings.Join(r.Issues, "\n  "))
}

// Verify inspects the staged rows: per-entry meta id ranges must be dense,
// no entry may carry the same meta key twice, and the values of serialized
// fields must parse. Duplicate meta ids cannot appear here at all; the
// primary key already rejects them during insert.
func (s *Store) Verify(ctx context.Context) (*Report, error) {
	report := &Report{}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(DISTINCT entry_id) FROM wp_frmt_form_entry_meta`,
	).Scan(&report.Rows, &report.Entries)
	if err != nil {
		return nil, fmt.Errorf("count staged rows: %w", err)
	}

	if err := s.checkIDRanges(ctx, report); err != nil {
		return nil, err
	}
	if err := s.checkDuplicateKeys(ctx, report); err != nil {
		return nil, err
	}
	if err := s.checkPayloads(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

func (s *Store) checkIDRanges(ctx context.Context, report *Report) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT entry_id, COUNT(*), MIN(meta_id), MAX(meta_id)
		FROM wp_frmt_form_entry_meta
		GROUP BY entry_id
		ORDER BY entry_id`)
	if err != nil {
		return fmt.Errorf("query id ranges: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entryID, count, minID, maxID int64
		if err := rows.Scan(&entryID, &count, &minID, &maxID); err != nil {
			return err
		}
		if maxID-minID+1 != count {
			report.Issues = append(report.Issues, fmt.Sprintf(
				"entry %d: meta ids %d..%d are not dense for %d rows", entryID, minID, maxID, count))
		}
	}
	return rows.Err()
}

func (s *Store) checkDuplicateKeys(ctx context.Context, report *Report) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT entry_id, meta_key, COUNT(*)
		FROM wp_frmt_form_entry_meta
		GROUP BY entry_id, meta_key
		HAVING COUNT(*) > 1
		ORDER BY entry_id, meta_key`)
	if err != nil {
		return fmt.Errorf("query duplicate keys: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entryID, count int64
		var key string
		if err := rows.Scan(&entryID, &key, &count); err != nil {
			return err
		}
		report.Issues = append(report.Issues, fmt.Sprintf(
			"entry %d: meta key %s appears %d times", entryID, key, count))
	}
	return rows.Err()
}

// serializedKeys are the meta keys whose values must be parseable aggregates.
// Every other key holds plain text and is left alone.
const serializedKeys = `'calculation-1', 'calculation-2', 'name-1', 'stripe-ocs-1'`

func (s *Store) checkPayloads(ctx context.Context, report *Report) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT meta_id, entry_id, meta_key, meta_value
		FROM wp_frmt_form_entry_meta
		WHERE meta_key IN (`+serializedKeys+`)
		ORDER BY meta_id`)
	if err != nil {
		return fmt.Errorf("query serialized payloads: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var metaID, entryID int64
		var key, value string
		if err := rows.Scan(&metaID, &entryID, &key, &value); err != nil {
			return err
		}
		if err := phpserialize.Validate(value); err != nil {
			report.Issues = append(report.Issues, fmt.Sprintf(
				"entry %d: %s (meta %d) does not deserialize: %v", entryID, key, metaID, err))
		}
	}
	return rows.Err()
}

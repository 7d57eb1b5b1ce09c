package forminator

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/forminator-backfill/internal/timex"
)

// TableName is the meta table the generated statements target. Forminator
// stores one row per form field here.
const TableName = "wp_frmt_form_entry_meta"

// ZeroDate is the sentinel date_updated value meaning "never updated".
const ZeroDate = "0000-00-00 00:00:00"

// Row is one meta record: a synthetic meta id, the owning entry id, the
// field's meta key and its (possibly serialized) value, plus the creation
// timestamp. The updated timestamp is always the zero-date sentinel and is
// supplied at render time.
type Row struct {
	MetaID  int64
	EntryID int64
	Key     string
	Value   string
	Created time.Time
}

// Statement renders the row as a MySQL INSERT statement against TableName.
// Key and value are escaped; ids and timestamps need no escaping by
// construction.
func (r Row) Statement() string {
	return fmt.Sprintf(
		"INSERT INTO `%s` (`meta_id`, `entry_id`, `meta_key`, `meta_value`, `date_created`, `date_updated`) "+
			"VALUES (%d, %d, '%s', '%s', '%s', '%s');",
		TableName, r.MetaID, r.EntryID,
		EscapeSQL(r.Key), EscapeSQL(r.Value),
		timex.FormatDateTime(r.Created), ZeroDate,
	)
}

// EscapeSQL prepares text for embedding in a single-quoted MySQL string
// literal. Backslashes must be doubled before quotes are escaped; the
// reverse order would double the backslashes just introduced for quotes.
func EscapeSQL(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `'`, `\'`)
}

package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/forminator-backfill/internal/forminator"
	"github.com/dmitrijs2005/forminator-backfill/internal/timex"
)

// BuildArtifact renders the .sql file for one run: a comment header, the
// statements with one blank line between entries, and a trailing total.
// Comment lines keep MySQL clients from choking when the file is piped in.
func BuildArtifact(groups [][]forminator.Row, generatedAt time.Time) string {
	statements := forminator.RenderStatements(groups)

	total := 0
	for _, g := range groups {
		total += len(g)
	}

	var b strings.Builder
	b.WriteString("-- Forminator Form Entry Meta INSERT Queries\n")
	fmt.Fprintf(&b, "-- Generated: %s\n", timex.FormatDateTime(generatedAt))
	fmt.Fprintf(&b, "-- Entries: %d\n", len(groups))
	b.WriteString("\n")

	for _, s := range statements {
		b.WriteString(s)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "-- Total queries generated: %d\n", total)
	return b.String()
}

package queries

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/JaimeStill/qit/internal/keyword"
)

// CSVHeader is the header row written by WriteCSV.
var CSVHeader = []string{"query", "intent", "source"}

// WriteCSV writes queries as CSV rows of query, intent and source, preceded
// by a header row.
func WriteCSV(w io.Writer, queries []keyword.Classified) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, q := range queries {
		if err := cw.Write([]string{q.Query, string(q.Intent), string(q.Source)}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportFilename returns the attachment name for a result's CSV export.
func ExportFilename(r *Result) string {
	return fmt.Sprintf("queries-%s.csv", r.ID)
}

// Package reconcile compares the feed's external references against a
// reference column from an externally supplied workbook and reports the
// mismatches on both sides.
package reconcile

import (
	"errors"
	"strings"

	"feedaudit/internal/codebook"
	"feedaudit/internal/feed"
)

// RefColumn is the one required column of the supplied table.
const RefColumn = "Property ref"

// Optional columns passed through verbatim when present.
const (
	URLColumn         = "Property url"
	SaleStatusColumn  = "Sale status"
	DateCreatedColumn = "Date created"
	DateEditedColumn  = "Date last edited"
)

// ErrMissingRefColumn aborts the reconciliation action; the loaded feed
// document is unaffected.
var ErrMissingRefColumn = errors.New(`reference table has no "` + RefColumn + `" column`)

// Issue classifications for supplied-side anomalies.
const (
	IssueMissing   = "Missing"
	IssueDuplicate = "Duplicate"
)

// SuppliedRow is one row of the external reference table. Ref is trimmed at
// load; the auxiliary columns are carried as-is.
type SuppliedRow struct {
	Ref            string
	URL            string
	SaleStatus     string
	DateCreated    string
	DateLastEdited string
}

// Anomaly is a supplied row whose reference does not occur exactly once in
// the feed.
type Anomaly struct {
	SuppliedRow
	Issue string
}

// DocumentOnly is a feed reference absent from the supplied table.
type DocumentOnly struct {
	Ref         string
	SalesStatus string // resolved label, "Unknown" for codes outside the table
}

// Result holds both anomaly reports. Empty reports mean full agreement.
type Result struct {
	Supplied     []Anomaly
	DocumentOnly []DocumentOnly
}

// FromTable extracts supplied rows from a header + data-row table. The
// reference column is required; auxiliary columns are optional. Rows may be
// ragged (spreadsheet readers drop trailing empty cells).
func FromTable(header []string, rows [][]string) ([]SuppliedRow, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	refIdx, ok := idx[RefColumn]
	if !ok {
		return nil, ErrMissingRefColumn
	}

	cell := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	supplied := make([]SuppliedRow, 0, len(rows))
	for _, row := range rows {
		ref := ""
		if refIdx < len(row) {
			ref = strings.TrimSpace(row[refIdx])
		}
		supplied = append(supplied, SuppliedRow{
			Ref:            ref,
			URL:            cell(row, URLColumn),
			SaleStatus:     cell(row, SaleStatusColumn),
			DateCreated:    cell(row, DateCreatedColumn),
			DateLastEdited: cell(row, DateEditedColumn),
		})
	}
	return supplied, nil
}

// Run computes both reports. Each preserves the order of its source
// collection: supplied anomalies follow the supplied rows, document-side
// anomalies follow document order.
func Run(doc *feed.Document, supplied []SuppliedRow) Result {
	counts := make(map[string]int, len(doc.Properties))
	for _, p := range doc.Properties {
		counts[strings.TrimSpace(p.ExternalReference)]++
	}

	var res Result
	for _, row := range supplied {
		switch c := counts[row.Ref]; {
		case c == 0:
			res.Supplied = append(res.Supplied, Anomaly{SuppliedRow: row, Issue: IssueMissing})
		case c > 1:
			res.Supplied = append(res.Supplied, Anomaly{SuppliedRow: row, Issue: IssueDuplicate})
		}
	}

	suppliedSet := make(map[string]struct{}, len(supplied))
	for _, row := range supplied {
		suppliedSet[row.Ref] = struct{}{}
	}
	for _, p := range doc.Properties {
		ref := strings.TrimSpace(p.ExternalReference)
		if _, ok := suppliedSet[ref]; ok {
			continue
		}
		label, ok := codebook.SalesStatus[strings.TrimSpace(p.SalesStatus)]
		if !ok {
			label = "Unknown"
		}
		res.DocumentOnly = append(res.DocumentOnly, DocumentOnly{Ref: ref, SalesStatus: label})
	}
	return res
}

package scrape

import (
	"errors"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoTables reports a page without a single table element. The message is
// part of the tool contract and surfaces verbatim to callers.
var ErrNoTables = errors.New("No tables found on page")

// IndexError reports a table index past the number of tables on the page.
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("Table index %d out of range. Found %d tables.", e.Index, e.Count)
}

// TableData is one extracted table: header cells, data rows, and the row
// count callers echo back in tool results.
type TableData struct {
	Headers  []string   `json:"headers"`
	Rows     [][]string `json:"rows"`
	RowCount int        `json:"row_count"`
}

// Table extracts the index-th table in document order. Headers come only
// from a <thead> section's header or data cells; without one the header list
// stays empty. Every <tr> anywhere in the table contributes a row of its
// cleaned cell texts, except rows whose cells exactly equal the header
// sequence. That skip keeps the <thead> row itself out of the data rows, and
// it also drops a data row that happens to repeat the header text verbatim.
func Table(doc *goquery.Document, index int) (TableData, error) {
	tables := doc.Find("table")
	n := tables.Length()
	if n == 0 {
		return TableData{}, ErrNoTables
	}
	if index < 0 || index >= n {
		return TableData{}, &IndexError{Index: index, Count: n}
	}
	table := tables.Eq(index)

	headers := []string{}
	if thead := table.Find("thead").First(); thead.Length() > 0 {
		thead.Find("th, td").Each(func(_ int, s *goquery.Selection) {
			headers = append(headers, CleanText(s.Text()))
		})
	}

	rows := [][]string{}
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := []string{}
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, CleanText(cell.Text()))
		})
		if len(cells) == 0 || equalStrings(cells, headers) {
			return
		}
		rows = append(rows, cells)
	})

	return TableData{Headers: headers, Rows: rows, RowCount: len(rows)}, nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

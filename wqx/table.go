package wqx

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"

	"github.com/nwqmc/wqp/wqperr"
)

// Strategy selects how a Table is constructed. Both strategies are
// equivalent: sliced at the same row index they yield identical
// column-to-value data.
type Strategy int

const (
	// RowMajor builds a list of complete Rows and exposes columns by
	// projection.
	RowMajor Strategy = iota
	// ColumnMajor builds one list of values per schema column,
	// appending the per-row value in row assembly order.
	ColumnMajor
)

func (s Strategy) String() string {
	switch s {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return "Strategy(?)"
	}
}

// Table is the tabular form of one WQX document: a fixed column
// order plus a sequence of rows. Every row's key set equals Columns
// exactly. A Table has no further mutation after construction and is
// owned solely by its caller.
type Table struct {
	Type    TableType
	Columns []string
	Rows    []Row
}

func tableFromColumns(table TableType, columns []string, data map[string][]string) *Table {
	var n int
	for _, values := range data {
		n = len(values)
		break
	}
	rows := make([]Row, n)
	for i := range rows {
		row := make(Row, len(columns))
		for _, column := range columns {
			row[column] = data[column][i]
		}
		rows[i] = row
	}
	return &Table{Type: table, Columns: columns, Rows: rows}
}

// Len returns the number of rows
func (t *Table) Len() int { return len(t.Rows) }

// Column returns the values of the named column in row order
func (t *Table) Column(name string) ([]string, error) {
	if !t.hasColumn(name) {
		return nil, wqperr.UnknownColumn(name)
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[name]
	}
	return values, nil
}

func (t *Table) hasColumn(name string) bool {
	for _, column := range t.Columns {
		if column == name {
			return true
		}
	}
	return false
}

// WriteCSV writes the table to w in the Water Quality Portal CSV
// download shape: a header record of the column names followed by
// one record per row, all in schema column order.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return errors.Wrap(err, "writing CSV header")
	}
	record := make([]string, len(t.Columns))
	for i, row := range t.Rows {
		for j, column := range t.Columns {
			record[j] = row[column]
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrapf(err, "writing CSV row %d", i)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing CSV")
}

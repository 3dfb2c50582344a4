package wqx

import (
	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"

	"github.com/nwqmc/wqp/wqperr"
)

// Row is one table row: a mapping from column name to string value.
// After projection through a table type's column sequence, a Row's
// key set equals that sequence exactly; columns absent from the
// source XML hold the empty string.
type Row map[string]string

// Mapper walks parsed WQX documents and assembles tabular rows
// against a Registry. The zero Mapper is not usable; construct with
// NewMapper.
type Mapper struct {
	reg *Registry
}

// NewMapper returns a Mapper over the given registry
func NewMapper(reg *Registry) *Mapper { return &Mapper{reg: reg} }

// assemble walks the document depth-first and returns one raw
// fragment map per row in document order, before projection.
//
// The station walk visits each MonitoringLocation of each
// Organization, emitting one fragment per station composed of the
// org scope merged with the station scope. The result walk visits
// each Result of each Activity of each Organization, emitting one
// fragment per result composed of org, activity and result scopes.
// Merge order is shallowest scope first, so a deeper scope's value
// wins any accidental key overlap.
func (m *Mapper) assemble(table TableType, doc *xmlquery.Node) ([]map[string]string, error) {
	var fragments []map[string]string
	for _, org := range m.reg.Children(doc, KindOrg) {
		orgPart := extract(org, m.reg.values[KindOrg])
		switch table {
		case TableStation:
			for _, station := range m.reg.Children(org, KindStation) {
				fragment := make(map[string]string, len(orgPart)+len(m.reg.values[KindStation]))
				merge(fragment, orgPart)
				merge(fragment, extract(station, m.reg.values[KindStation]))
				fragments = append(fragments, fragment)
			}
		case TableResult:
			for _, activity := range m.reg.Children(org, KindActivity) {
				activityPart := extract(activity, m.reg.values[KindActivity])
				for _, result := range m.reg.Children(activity, KindResult) {
					fragment := make(map[string]string,
						len(orgPart)+len(activityPart)+len(m.reg.values[KindResult]))
					merge(fragment, orgPart)
					merge(fragment, activityPart)
					merge(fragment, extract(result, m.reg.values[KindResult]))
					fragments = append(fragments, fragment)
				}
			}
		default:
			return nil, wqperr.UnknownTableType(table.String())
		}
	}
	return fragments, nil
}

func merge(dst map[string]string, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}

// Rows returns the row-major tabular form of doc: one Row per
// station or result node, in document order, each projected through
// the table type's column sequence.
func (m *Mapper) Rows(table TableType, doc *xmlquery.Node) ([]Row, error) {
	columns, err := m.reg.Columns(table)
	if err != nil {
		return nil, err
	}
	fragments, err := m.assemble(table, doc)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, len(fragments))
	for i, fragment := range fragments {
		row := make(Row, len(columns))
		for _, column := range columns {
			row[column] = fragment[column]
		}
		rows[i] = row
	}
	return rows, nil
}

// ColumnData returns the column-major tabular form of doc: one list
// of values per schema column, each in row order. All lists have
// equal length, the table's row count; a single row is obtained by
// slicing every list at the same index.
func (m *Mapper) ColumnData(table TableType, doc *xmlquery.Node) (map[string][]string, error) {
	columns, err := m.reg.Columns(table)
	if err != nil {
		return nil, err
	}
	fragments, err := m.assemble(table, doc)
	if err != nil {
		return nil, err
	}
	data := make(map[string][]string, len(columns))
	for _, column := range columns {
		data[column] = make([]string, len(fragments))
	}
	for i, fragment := range fragments {
		for _, column := range columns {
			data[column][i] = fragment[column]
		}
	}
	return data, nil
}

// Table returns the complete tabular form of doc, built with the
// given construction strategy. Both strategies produce identical
// tables; see Strategy.
func (m *Mapper) Table(table TableType, doc *xmlquery.Node, strategy Strategy) (*Table, error) {
	columns, err := m.reg.Columns(table)
	if err != nil {
		return nil, err
	}
	switch strategy {
	case RowMajor:
		rows, err := m.Rows(table, doc)
		if err != nil {
			return nil, err
		}
		return &Table{Type: table, Columns: columns, Rows: rows}, nil
	case ColumnMajor:
		data, err := m.ColumnData(table, doc)
		if err != nil {
			return nil, err
		}
		return tableFromColumns(table, columns, data), nil
	default:
		return nil, errors.Errorf("unknown construction strategy %v", strategy)
	}
}

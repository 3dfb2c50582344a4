package wqx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwqmc/wqp/wqperr"
)

func TestTableWriteCSV(t *testing.T) {
	ck := assert.New(t)
	table := &Table{
		Columns: []string{"A", "B", "C"},
		Rows: []Row{
			{"A": "1", "B": "two, three", "C": ""},
			{"A": "", "B": "x", "C": "y"},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf))
	ck.Equal("A,B,C\n1,\"two, three\",\n,x,y\n", buf.String())
}

func TestTableWriteCSVMapped(t *testing.T) {
	ck := assert.New(t)
	m := newMapper(t)
	doc := parseDoc(t, docTwoStations)

	table, err := m.Table(TableStation, doc, RowMajor)
	require.NoError(t, err)
	ck.Equal(2, table.Len())

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	ck.Equal(strings.Join(table.Columns, ","), lines[0])
	ck.True(strings.HasPrefix(lines[1], "USGS-IA,USGS Iowa Water Science Center,IA001,"))
	ck.True(strings.HasPrefix(lines[2], "USGS-IA,USGS Iowa Water Science Center,IA002,"))
}

func TestTableColumn(t *testing.T) {
	ck := assert.New(t)
	m := newMapper(t)
	doc := parseDoc(t, docTwoStations)

	table, err := m.Table(TableStation, doc, ColumnMajor)
	require.NoError(t, err)

	ids, err := table.Column("MonitoringLocationIdentifier")
	ck.NoError(err)
	ck.Equal([]string{"IA001", "IA002"}, ids)

	_, err = table.Column("CharacteristicName")
	ck.True(wqperr.HasTag(err, "unknown-column"))
}

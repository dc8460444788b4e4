package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jobportal/portalManager/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	columns := []table.Column{
		{Key: "name", Header: "Name"},
		{Key: "verified", Header: "Verified", Plain: func(row table.Row) string {
			if row.Bool("verified") {
				return "Yes"
			}
			return "No"
		}},
	}
	rows := []table.Row{
		{"id": "1", "name": "Acme", "verified": true},
		{"id": "2", "name": nil, "verified": false},
	}

	buf := &bytes.Buffer{}
	require.NoError(t, WriteXLSX(buf, "Companies", columns, rows))

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Companies"}, f.GetSheetList())

	sheetRows, err := f.GetRows("Companies")
	require.NoError(t, err)
	require.Len(t, sheetRows, 3)
	assert.Equal(t, []string{"Name", "Verified"}, sheetRows[0])
	assert.Equal(t, []string{"Acme", "Yes"}, sheetRows[1])
	assert.Equal(t, []string{"", "No"}, sheetRows[2])
}

func TestWriteXLSXWithoutRows(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteXLSX(buf, "", []table.Column{{Key: "name", Header: "Name"}}, nil))

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	sheetRows, err := f.GetRows("Export")
	require.NoError(t, err)
	assert.Len(t, sheetRows, 1)
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Export", sheetName(""))
	assert.Equal(t, strings.Repeat("a", 31), sheetName(strings.Repeat("a", 40)))
}

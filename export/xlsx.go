package export

import (
	"fmt"
	"io"

	"github.com/jobportal/portalManager/table"
	"github.com/xuri/excelize/v2"
)

// ContentTypeXLSX is the media type of the written workbooks.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const maxSheetName = 31

// WriteXLSX writes the rows as a single sheet workbook. The first row holds
// the column headers, cells hold the plain text form of each column.
func WriteXLSX(w io.Writer, sheet string, columns []table.Column, rows []table.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet = sheetName(sheet)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, 0, len(columns))
	for _, column := range columns {
		header = append(header, column.Header)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range rows {
		values := make([]any, 0, len(columns))
		for _, column := range columns {
			values = append(values, column.PlainText(row))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if len(columns) > 0 {
		if err := styleHeader(f, sheet, len(columns)); err != nil {
			return err
		}
		if err := f.AutoFilter(sheet, "A1:"+lastHeaderCell(len(columns)), nil); err != nil {
			return fmt.Errorf("add auto filter: %w", err)
		}
	}

	return f.Write(w)
}

func styleHeader(f *excelize.File, sheet string, columns int) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E5E7EB"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeaderCell(columns), style); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	lastColumn, err := excelize.ColumnNumberToName(columns)
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastColumn, 22)
}

func lastHeaderCell(columns int) string {
	cell, _ := excelize.CoordinatesToCellName(columns, 1)
	return cell
}

// sheetName trims the name to the sheet name limit, "Export" when empty.
func sheetName(name string) string {
	if name == "" {
		return "Export"
	}
	runes := []rune(name)
	if len(runes) > maxSheetName {
		return string(runes[:maxSheetName])
	}
	return name
}

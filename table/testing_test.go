package table

import (
	"fmt"
	"time"
)

func numberedRows(n int) []Row {
	rows := make([]Row, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, Row{
			"id":   fmt.Sprintf("row-%02d", i),
			"name": fmt.Sprintf("Row %d", i),
		})
	}
	return rows
}

func nameColumns() []Column {
	return []Column{{Key: "name", Header: "Name"}}
}

var testTime = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

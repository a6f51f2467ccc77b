package main

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/trezcool/gradebook/core/student"
)

var summaryHeader = []string{"Roll No", "Name", "Kind", "Average", "Grade"}

// renderSummary draws one table row per student.
func renderSummary(out io.Writer, rows []student.Summary) {
	table := tablewriter.NewWriter(out)
	table.SetHeader(summaryHeader)
	table.SetAutoFormatHeaders(false)
	for _, row := range rows {
		table.Append([]string{
			strconv.Itoa(row.RollNo),
			row.Name,
			string(row.Kind),
			row.Average,
			string(row.Grade),
		})
	}
	table.Render()
}

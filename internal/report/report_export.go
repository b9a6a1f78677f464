package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Leave Report"

type exportColumn struct {
	header string
	width  float64
	value  func(r LeaveReportResponse) any
}

var exportColumns = []exportColumn{
	{"Request ID", 38, func(r LeaveReportResponse) any { return r.ID }},
	{"Emp ID", 12, func(r LeaveReportResponse) any { return r.EmpID }},
	{"Employee", 24, func(r LeaveReportResponse) any { return r.EmployeeName }},
	{"Leave Type", 16, func(r LeaveReportResponse) any { return r.LeaveType }},
	{"Start Date", 12, func(r LeaveReportResponse) any { return r.StartDate }},
	{"End Date", 12, func(r LeaveReportResponse) any { return r.EndDate }},
	{"Days", 8, func(r LeaveReportResponse) any { return r.TotalDays }},
	{"Status", 12, func(r LeaveReportResponse) any { return r.Status }},
	{"Reason", 40, func(r LeaveReportResponse) any { return r.Reason }},
	{"Admin Remarks", 40, func(r LeaveReportResponse) any {
		if r.AdminRemarks == nil {
			return ""
		}
		return *r.AdminRemarks
	}},
}

// WriteXLSX streams rows as a single-sheet workbook.
func WriteXLSX(w io.Writer, rows []LeaveReportResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("create stream writer: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
	})
	if err != nil {
		return err
	}

	headers := make([]any, len(exportColumns))
	for i, col := range exportColumns {
		if err := sw.SetColWidth(i+1, i+1, col.width); err != nil {
			return err
		}
		headers[i] = excelize.Cell{StyleID: headerStyle, Value: col.header}
	}
	if err := sw.SetRow("A1", headers); err != nil {
		return err
	}

	for i, r := range rows {
		values := make([]any, len(exportColumns))
		for j, col := range exportColumns {
			values[j] = col.value(r)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush stream: %w", err)
	}

	_, err = f.WriteTo(w)
	return err
}

package checkins

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{"Employee Name", "Employee ID", "Check-In Time", "Food Tickets", "Notes"}

// ExportWorkbook renders the current check-in list as an .xlsx workbook.
func (s *Service) ExportWorkbook(ctx context.Context) ([]byte, error) {
	data, err := s.getData(ctx)
	if err != nil {
		return nil, err
	}

	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	sheet := file.GetSheetName(0)
	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, title); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for i, checkIn := range data.CheckIns {
		values := []any{checkIn.EmployeeName, checkIn.EmployeeID, checkIn.CheckInTime, checkIn.FoodTickets, checkIn.Notes}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("write row %d: %w", i+2, err)
			}
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

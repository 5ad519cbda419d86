package student

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	domain "zawiya/internal/domain/student"
)

// Workbook renders records into a fresh xlsx workbook with the store's fixed
// column order. Used by the export route so both store backends stream the
// same spreadsheet shape.
// POST: Caller owns the returned file and must Close it
func Workbook(records []domain.Record) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetRow(sheetName, "A1", &Columns); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, r := range records {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &[]any{
			r.Seq, r.StudentID, r.FirstName, r.LastName, r.Age, r.Gender,
			r.Address, r.State, r.Phone, r.Email, r.Program, r.RegisteredAt, r.Status,
		}); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	return f, nil
}

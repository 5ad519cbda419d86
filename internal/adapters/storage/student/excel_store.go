package student

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/xuri/excelize/v2"

	domain "zawiya/internal/domain/student"
)

const sheetName = "Sheet1"

// Columns is the fixed column order of the student spreadsheet.
var Columns = []string{
	"No", "Student ID", "First Name", "Last Name", "Age", "Gender",
	"Address", "State", "Phone", "Email", "Program", "Registered At", "Status",
}

// ExcelStore implements Store on a single xlsx file. Every append is a full
// read-modify-write of the file; a mutex serializes writers so concurrent
// appends cannot lose rows.
type ExcelStore struct {
	mu   sync.Mutex
	path string
}

// NewExcelStore opens the store at path, creating the file with a header row
// when it does not exist yet.
func NewExcelStore(path string) (*ExcelStore, error) {
	s := &ExcelStore{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f := excelize.NewFile()
		defer f.Close()
		if err := f.SetSheetRow(sheetName, "A1", &Columns); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
		if err := f.SaveAs(path); err != nil {
			return nil, fmt.Errorf("create student file: %w", err)
		}
	}
	return s, nil
}

// Path returns the backing file path.
func (s *ExcelStore) Path() string {
	return s.path
}

// Append persists a record at the end of the sheet.
// PRE: value has been validated
// POST: The file contains one more row; returns the assigned sequence number
func (s *ExcelStore) Append(ctx context.Context, value domain.Record) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return 0, fmt.Errorf("open student file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return 0, fmt.Errorf("read student rows: %w", err)
	}

	// First row is the header, so the next sequence number equals the
	// current data row count plus one.
	seq := len(rows)
	value.Seq = seq
	cell := fmt.Sprintf("A%d", len(rows)+1)
	if err := f.SetSheetRow(sheetName, cell, &[]any{
		value.Seq, value.StudentID, value.FirstName, value.LastName,
		value.Age, value.Gender, value.Address, value.State,
		value.Phone, value.Email, value.Program, value.RegisteredAt, value.Status,
	}); err != nil {
		return 0, fmt.Errorf("write student row: %w", err)
	}
	if err := f.Save(); err != nil {
		return 0, fmt.Errorf("save student file: %w", err)
	}
	return seq, nil
}

// All returns every record in insertion order.
func (s *ExcelStore) All(ctx context.Context) ([]domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

func (s *ExcelStore) readAll() ([]domain.Record, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open student file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read student rows: %w", err)
	}

	var records []domain.Record
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		records = append(records, rowToRecord(row, i))
	}
	return records, nil
}

// rowToRecord maps a sheet row to a Record. Short rows (trailing empty
// cells are trimmed by the reader) are padded.
func rowToRecord(row []string, fallbackSeq int) domain.Record {
	col := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	seq, err := strconv.Atoi(col(0))
	if err != nil {
		seq = fallbackSeq
	}
	return domain.Record{
		Seq:          seq,
		StudentID:    col(1),
		FirstName:    col(2),
		LastName:     col(3),
		Age:          col(4),
		Gender:       col(5),
		Address:      col(6),
		State:        col(7),
		Phone:        col(8),
		Email:        col(9),
		Program:      col(10),
		RegisteredAt: col(11),
		Status:       col(12),
	}
}

// GetByStudentID returns the record with the given student ID.
func (s *ExcelStore) GetByStudentID(ctx context.Context, studentID string) (domain.Record, error) {
	records, err := s.All(ctx)
	if err != nil {
		return domain.Record{}, err
	}
	for _, r := range records {
		if r.StudentID == studentID {
			return r, nil
		}
	}
	return domain.Record{}, ErrNotFound
}

// Filter returns records matching the filter, in insertion order.
func (s *ExcelStore) Filter(ctx context.Context, filter Filter) ([]domain.Record, error) {
	records, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Record
	for _, r := range records {
		if filter.Matches(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Count returns the total number of records.
func (s *ExcelStore) Count(ctx context.Context) (int, error) {
	records, err := s.All(ctx)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

package contact

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/xuri/excelize/v2"

	domain "zawiya/internal/domain/contact"
)

const sheetName = "Sheet1"

// Columns is the fixed column order of the contact spreadsheet.
var Columns = []string{
	"No", "Name", "Email", "Phone", "Subject", "Message", "Date", "Status",
}

// ExcelStore implements Store on a single xlsx file with the same
// read-modify-write cycle as the student store.
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
			return nil, fmt.Errorf("create contact file: %w", err)
		}
	}
	return s, nil
}

// Path returns the backing file path.
func (s *ExcelStore) Path() string {
	return s.path
}

// Append persists a message at the end of the sheet.
// PRE: value has been validated
// POST: The file contains one more row; returns the assigned sequence number
func (s *ExcelStore) Append(ctx context.Context, value domain.Message) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return 0, fmt.Errorf("open contact file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return 0, fmt.Errorf("read contact rows: %w", err)
	}

	seq := len(rows)
	value.Seq = seq
	cell := fmt.Sprintf("A%d", len(rows)+1)
	if err := f.SetSheetRow(sheetName, cell, &[]any{
		value.Seq, value.Name, value.Email, value.Phone,
		value.Subject, value.Body, value.SubmittedAt, value.Status,
	}); err != nil {
		return 0, fmt.Errorf("write contact row: %w", err)
	}
	if err := f.Save(); err != nil {
		return 0, fmt.Errorf("save contact file: %w", err)
	}
	return seq, nil
}

// All returns every message in insertion order.
func (s *ExcelStore) All(ctx context.Context) ([]domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open contact file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read contact rows: %w", err)
	}

	var messages []domain.Message
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		messages = append(messages, rowToMessage(row, i))
	}
	return messages, nil
}

func rowToMessage(row []string, fallbackSeq int) domain.Message {
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
	return domain.Message{
		Seq:         seq,
		Name:        col(1),
		Email:       col(2),
		Phone:       col(3),
		Subject:     col(4),
		Body:        col(5),
		SubmittedAt: col(6),
		Status:      col(7),
	}
}

// Count returns the total number of messages.
func (s *ExcelStore) Count(ctx context.Context) (int, error) {
	messages, err := s.All(ctx)
	if err != nil {
		return 0, err
	}
	return len(messages), nil
}

package student

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"zawiya/internal/adapters/storage"
	domain "zawiya/internal/domain/student"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new student store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const studentColumns = "seq, student_id, first_name, last_name, age, gender, address, state, phone, email, program, registered_at, status"

// Append persists a record.
// PRE: value has been validated
// POST: Record is inserted; returns the assigned sequence number
func (s *SQLiteStore) Append(ctx context.Context, value domain.Record) (int, error) {
	query := `INSERT INTO student (student_id, first_name, last_name, age, gender, address, state, phone, email, program, registered_at, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, query,
		value.StudentID, value.FirstName, value.LastName, value.Age,
		value.Gender, value.Address, value.State, value.Phone,
		value.Email, value.Program, value.RegisteredAt, value.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("insert student: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("student seq: %w", err)
	}
	return int(seq), nil
}

// All returns every record in insertion order.
func (s *SQLiteStore) All(ctx context.Context) ([]domain.Record, error) {
	return s.queryRecords(ctx, "SELECT "+studentColumns+" FROM student ORDER BY seq")
}

// GetByStudentID returns the record with the given student ID.
// PRE: studentID is non-empty
// POST: Returns the record or ErrNotFound
func (s *SQLiteStore) GetByStudentID(ctx context.Context, studentID string) (domain.Record, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+studentColumns+" FROM student WHERE student_id = ?", studentID)
	entity, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Record{}, ErrNotFound
	}
	return entity, err
}

// Filter returns records matching the filter, in insertion order.
func (s *SQLiteStore) Filter(ctx context.Context, filter Filter) ([]domain.Record, error) {
	query := "SELECT " + studentColumns + " FROM student"
	var conds []string
	var args []any
	if filter.Program != "" {
		conds = append(conds, "program = ?")
		args = append(args, filter.Program)
	}
	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, filter.Status)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY seq"
	return s.queryRecords(ctx, query, args...)
}

// Count returns the total number of records.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM student").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count students: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) queryRecords(ctx context.Context, query string, args ...any) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query students: %w", err)
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		entity, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		records = append(records, entity)
	}
	return records, rows.Err()
}

func scanRecord(scan func(dest ...any) error) (domain.Record, error) {
	var entity domain.Record
	var phone sql.NullString
	err := scan(
		&entity.Seq,
		&entity.StudentID,
		&entity.FirstName,
		&entity.LastName,
		&entity.Age,
		&entity.Gender,
		&entity.Address,
		&entity.State,
		&phone,
		&entity.Email,
		&entity.Program,
		&entity.RegisteredAt,
		&entity.Status,
	)
	if phone.Valid {
		entity.Phone = phone.String
	}
	return entity, err
}

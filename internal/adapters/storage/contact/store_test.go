package contact_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"zawiya/internal/adapters/storage"
	store "zawiya/internal/adapters/storage/contact"
	domain "zawiya/internal/domain/contact"
)

func testMessage(name string) domain.Message {
	return domain.Message{
		Name:        name,
		Email:       "a@b.c",
		Phone:       "",
		Subject:     "S",
		Body:        "M",
		SubmittedAt: "2026-02-01 09:00:00",
		Status:      domain.StatusNew,
	}
}

// TestExcelStoreRoundTrip tests append/read on the xlsx backend, including
// a row with an empty optional phone column.
func TestExcelStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := store.NewExcelStore(filepath.Join(t.TempDir(), "contacts.xlsx"))
	if err != nil {
		t.Fatalf("NewExcelStore failed: %v", err)
	}

	seq, err := s.Append(ctx, testMessage("A"))
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if seq != 1 {
		t.Errorf("first seq = %d, want 1", seq)
	}

	msg := testMessage("B")
	msg.Phone = "+213 555 999 888"
	if _, err := s.Append(ctx, msg); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	messages, err := s.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Name != "A" || messages[0].Status != domain.StatusNew {
		t.Errorf("unexpected first message: %+v", messages[0])
	}
	if messages[1].Phone != "+213 555 999 888" {
		t.Errorf("phone not preserved: %+v", messages[1])
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}

// TestSQLiteStoreRoundTrip tests append/read on the SQLite backend.
func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("init db: %v", err)
	}

	s := store.NewSQLiteStore(db)
	if _, err := s.Append(ctx, testMessage("A")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	seq, err := s.Append(ctx, testMessage("B"))
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if seq != 2 {
		t.Errorf("second seq = %d, want 2", seq)
	}

	messages, err := s.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(messages) != 2 || messages[1].Name != "B" {
		t.Errorf("unexpected messages: %+v", messages)
	}
}

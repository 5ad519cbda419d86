package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	emailPkg "zawiya/internal/adapters/email"
	web "zawiya/internal/adapters/http"
	"zawiya/internal/adapters/qr"
	"zawiya/internal/adapters/storage"
	contactStore "zawiya/internal/adapters/storage/contact"
	studentStore "zawiya/internal/adapters/storage/student"
	"zawiya/internal/domain/admin"
	"zawiya/internal/domain/catalog"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Local .env overrides are optional; real deployments set env vars directly
	_ = godotenv.Load()

	dataDir := envOrDefault("ZAWIYA_DATA_DIR", "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("failed to create data directory: %v", err)
	}

	// Storage backend: append-only xlsx workbooks by default, SQLite optional
	var stores *web.Stores
	backend := envOrDefault("ZAWIYA_STORE", "excel")
	switch backend {
	case "excel":
		sStore, err := studentStore.NewExcelStore(filepath.Join(dataDir, "students_data.xlsx"))
		if err != nil {
			log.Fatalf("failed to open student workbook: %v", err)
		}
		cStore, err := contactStore.NewExcelStore(filepath.Join(dataDir, "contact_messages.xlsx"))
		if err != nil {
			log.Fatalf("failed to open contact workbook: %v", err)
		}
		stores = &web.Stores{StudentStore: sStore, ContactStore: cStore}

	case "sqlite":
		dbPath := filepath.Join(dataDir, "zawiya.db")
		dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
		db, err := sql.Open("sqlite", dsn)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		if err := db.Ping(); err != nil {
			log.Fatalf("database unreachable: %v", err)
		}
		if err := storage.InitDB(db); err != nil {
			log.Fatalf("failed to initialize database: %v", err)
		}
		stores = &web.Stores{
			StudentStore: studentStore.NewSQLiteStore(db),
			ContactStore: contactStore.NewSQLiteStore(db),
		}

	default:
		log.Fatalf("unknown ZAWIYA_STORE %q (want excel or sqlite)", backend)
	}
	log.Printf("Storage initialized (%s backend)", backend)

	// QR images live under the static tree so pages can serve them directly
	qrDir := envOrDefault("ZAWIYA_QR_DIR", filepath.Join("static", "qrcodes"))
	qrGen, err := qr.NewGenerator(qrDir)
	if err != nil {
		log.Fatalf("failed to create QR directory: %v", err)
	}

	// Admin credentials are hashed at startup, never kept in plain text
	adminUser := envOrDefault("ZAWIYA_ADMIN_USER", "admin")
	adminPassword := envOrDefault("ZAWIYA_ADMIN_PASSWORD", "admin")
	creds, err := admin.NewCredentials(adminUser, adminPassword)
	if err != nil {
		log.Fatalf("failed to hash admin credentials: %v", err)
	}
	if adminPassword == "admin" && os.Getenv("ZAWIYA_ENV") == "production" {
		log.Println("WARNING: default admin password in production — set ZAWIYA_ADMIN_PASSWORD")
	}

	// Configure email sender for contact notifications
	resendKey := os.Getenv("ZAWIYA_RESEND_KEY")
	emailFrom := envOrDefault("ZAWIYA_RESEND_FROM", "Zawiya Tijania <noreply@zawiya-tijania.dz>")
	notifyTo := envOrDefault("ZAWIYA_NOTIFY_TO", "info@zawiya-tijania.dz")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom, notifyTo)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom, notifyTo)
		if os.Getenv("ZAWIYA_ENV") == "production" {
			log.Println("WARNING: ZAWIYA_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set ZAWIYA_RESEND_KEY for real delivery)")
		}
	}

	mux := web.NewMux("static", stores, catalog.NewScheduleTable(), qrGen, creds)

	addr := envOrDefault("ZAWIYA_ADDR", ":8080")
	log.Printf("Zawiya %s starting on %s (env=%s, store=%s)", version, addr, envOrDefault("ZAWIYA_ENV", "development"), backend)

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"zawiya/internal/adapters/email"
	"zawiya/internal/adapters/http/middleware"
	"zawiya/internal/adapters/qr"
	contactStore "zawiya/internal/adapters/storage/contact"
	studentStore "zawiya/internal/adapters/storage/student"
	"zawiya/internal/application/orchestrators"
	"zawiya/internal/domain/catalog"
)

// Stores holds all storage dependencies.
type Stores struct {
	StudentStore studentStore.Store
	ContactStore contactStore.Store
}

// loadCSRFKey reads the CSRF secret from ZAWIYA_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("ZAWIYA_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("ZAWIYA_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("ZAWIYA_ENV") == "production" {
		log.Fatal("ZAWIYA_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set ZAWIYA_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// Global schedule table (set by NewMux)
var schedule *catalog.ScheduleTable

// Global QR generator (set by NewMux)
var qrGen *qr.Generator

// Global admin credential verifier (set by NewMux)
var verifier orchestrators.CredentialVerifier

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string
var notifyAddress string

// SetEmailSender sets the global email sender for contact notifications.
func SetEmailSender(sender email.Sender, from, notifyTo string) {
	emailSender = sender
	emailFromAddress = from
	notifyAddress = notifyTo
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores, table *catalog.ScheduleTable, gen *qr.Generator, creds orchestrators.CredentialVerifier) http.Handler {
	stores = s
	schedule = table
	qrGen = gen
	verifier = creds
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("ZAWIYA_ENV") == "production"

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Metrics -> Auth -> CSRF -> SecurityHeaders -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Metrics,
	)
}

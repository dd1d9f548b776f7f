package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	emailPkg "clubreg/internal/adapters/email"
	web "clubreg/internal/adapters/http"
	"clubreg/internal/adapters/storage"
	accountStore "clubreg/internal/adapters/storage/account"
	candidateStore "clubreg/internal/adapters/storage/candidate"
	memberStore "clubreg/internal/adapters/storage/member"
	"clubreg/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Initialize database with WAL mode and busy timeout
	dbPath := envOrDefault("CLUBREG_DB", "clubreg.db")
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

	kv := storage.NewSQLiteKV(db)
	acctStore := accountStore.NewSQLiteStore(db)
	stores := &web.Stores{
		CandidateStore: candidateStore.NewKVStore(kv),
		MemberStore:    memberStore.NewKVStore(kv),
		AccountStore:   acctStore,
	}

	// Seed default admin account if no accounts exist
	adminEmail := envOrDefault("CLUBREG_ADMIN_EMAIL", "admin@club.example")
	adminPassword := envOrDefault("CLUBREG_ADMIN_PASSWORD", "change me please")
	seedDeps := orchestrators.SeedAdminDeps{AccountStore: acctStore}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), seedDeps, adminEmail, adminPassword); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Configure email sender for decision notifications
	resendKey := os.Getenv("CLUBREG_RESEND_KEY")
	emailFrom := envOrDefault("CLUBREG_EMAIL_FROM", "Club Registration <noreply@club.example>")
	emailReply := envOrDefault("CLUBREG_REPLY_TO", "info@club.example")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom, emailReply)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom, emailReply)
		if os.Getenv("CLUBREG_ENV") == "production" {
			log.Println("WARNING: CLUBREG_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set CLUBREG_RESEND_KEY for real delivery)")
		}
	}

	mux := web.NewMux("static", stores)

	addr := envOrDefault("CLUBREG_ADDR", ":8080")
	log.Printf("clubreg %s starting on %s (env=%s)", version, addr, envOrDefault("CLUBREG_ENV", "development"))

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

// cmd/bankdash/main.go
package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"bancoexpres/internal/auth"
	"bancoexpres/internal/bank"
	"bancoexpres/internal/reports"
)

func main() {
	sessionPath := getEnv("BANKDASH_SESSION_FILE", filepath.Join(os.TempDir(), "bankdash", "session.json"))

	authStore := auth.NewStore(auth.NewFileVault(sessionPath), auth.DemoOperators(),
		auth.WithAttemptLimit(1*time.Minute, 5),
	)

	if snap := authStore.Snapshot(); snap.Authenticated {
		log.Printf("Restored session for %s (%s)", snap.User.Name, snap.User.Email)
	} else {
		email := getEnv("BANKDASH_EMAIL", "admin@bancoexpres.com")
		secret := getEnv("BANKDASH_SECRET", "admin123")
		if !authStore.Login(context.Background(), email, secret) {
			log.Fatalf("Login failed: %s", authStore.Snapshot().Err)
		}
		snap = authStore.Snapshot()
		log.Printf("Logged in as %s (%s)", snap.User.Name, snap.User.Branch)
	}

	store := bank.NewStore(bank.Seed())
	defer store.Close()

	unsubscribe := store.Subscribe(func(snap bank.Snapshot) {
		for _, t := range snap.Toasts {
			log.Printf("[%s] %s", t.Severity, t.Message)
		}
	})
	defer unsubscribe()

	// Scripted quick action: a completed deposit on Juan Pérez's
	// savings account.
	now := time.Now()
	tx := bank.Transaction{
		ID:      bank.TransactionID(now),
		Date:    now.Format("2006-01-02"),
		Type:    bank.Deposit,
		Client:  "Juan Pérez",
		Account: "1001234567",
		Amount:  500000,
		Status:  bank.Completed,
	}
	if err := bank.ValidateQuickTransaction(tx); err != nil {
		store.ShowToast("Please complete all required fields", bank.Error)
		log.Fatalf("Quick action rejected: %v", err)
	}
	store.Dispatch(bank.AddTransaction{Transaction: tx})
	store.ShowToast("Deposit processed successfully", bank.Success)

	reportType := reports.Financial
	if len(os.Args) > 1 {
		reportType = reports.Type(os.Args[1])
	}

	report, err := reports.NewGenerator().Generate(context.Background(), reportType, store.Snapshot())
	if err != nil {
		log.Fatalf("Generate report: %v", err)
	}

	log.Printf("Report %s:", reports.Filename(reportType, now))
	if err := reports.Write(os.Stdout, report); err != nil {
		log.Fatalf("Write report: %v", err)
	}
	os.Stdout.WriteString("\n")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

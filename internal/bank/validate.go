// internal/bank/validate.go
//
// Business-rule checks the initiating view runs BEFORE dispatching.
// The store itself is a pure merge and enforces nothing; a failed
// check here is surfaced with ShowToast(..., Error) and the action is
// never dispatched.
package bank

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrDuplicateKey = errors.New("a record with this key already exists")
	ErrMissingField = errors.New("required field is missing")
)

// ValidateNewClient rejects incomplete clients and duplicate national
// IDs.
func ValidateNewClient(s Snapshot, c Client) error {
	if c.NationalID == "" || c.Name == "" {
		return ErrMissingField
	}
	if _, exists := s.Clients[c.NationalID]; exists {
		return fmt.Errorf("client %s: %w", c.NationalID, ErrDuplicateKey)
	}
	return nil
}

// ValidateNewAccount rejects incomplete accounts and duplicate
// account numbers.
func ValidateNewAccount(s Snapshot, a Account) error {
	if a.Number == "" || a.HolderName == "" {
		return ErrMissingField
	}
	if _, exists := s.Accounts[a.Number]; exists {
		return fmt.Errorf("account %s: %w", a.Number, ErrDuplicateKey)
	}
	return nil
}

// ValidateNewCredit rejects incomplete credits and duplicate IDs.
func ValidateNewCredit(s Snapshot, c Credit) error {
	if c.ID == "" || c.HolderName == "" {
		return ErrMissingField
	}
	if _, exists := s.Credits[c.ID]; exists {
		return fmt.Errorf("credit %s: %w", c.ID, ErrDuplicateKey)
	}
	return nil
}

// ValidateQuickTransaction mirrors the quick-action form: client,
// account and a positive amount are required.
func ValidateQuickTransaction(t Transaction) error {
	if t.Client == "" || t.Account == "" || t.Amount <= 0 {
		return ErrMissingField
	}
	return nil
}

// ValidateQuickPayment mirrors the service-payment form: client,
// reference and a positive amount are required.
func ValidateQuickPayment(p ServicePayment) error {
	if p.Client == "" || p.Reference == "" || p.Amount <= 0 {
		return ErrMissingField
	}
	return nil
}

// TransactionID builds a time-based ledger ID, e.g. TXN1735142400000.
func TransactionID(at time.Time) string {
	return fmt.Sprintf("TXN%d", at.UnixMilli())
}

// PaymentID builds a time-based payment ID, e.g. PAG1735142400000.
func PaymentID(at time.Time) string {
	return fmt.Sprintf("PAG%d", at.UnixMilli())
}

// NextAccountStatus is the active/blocked toggle used by the accounts
// view. Closed accounts stay closed.
func NextAccountStatus(status AccountStatus) AccountStatus {
	switch status {
	case AccountActive:
		return AccountBlocked
	case AccountBlocked:
		return AccountActive
	default:
		return status
	}
}

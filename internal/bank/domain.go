// internal/bank/domain.go
package bank

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ClientStatus classifies a bank customer.
type ClientStatus string

const (
	ClientStandard  ClientStatus = "standard"
	ClientPreferred ClientStatus = "preferred"
	ClientInactive  ClientStatus = "inactive"
)

// Client is a bank customer, keyed by national ID. Balance is in
// integer currency units (COP).
type Client struct {
	NationalID   string       `json:"national_id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Status       ClientStatus `json:"status"`
	RegisteredOn string       `json:"registered_on"`
	Balance      int64        `json:"balance"`
}

type AccountType string

const (
	Savings  AccountType = "savings"
	Checking AccountType = "checking"
	Business AccountType = "business"
)

type AccountStatus string

const (
	AccountActive  AccountStatus = "active"
	AccountBlocked AccountStatus = "blocked"
	AccountClosed  AccountStatus = "closed"
)

// Account is keyed by account number. The holder is referenced by
// denormalized name and national ID strings; nothing enforces that
// the client exists, so orphaned accounts are possible.
type Account struct {
	Number     string        `json:"number"`
	HolderName string        `json:"holder_name"`
	NationalID string        `json:"national_id"`
	Type       AccountType   `json:"type"`
	Balance    int64         `json:"balance"`
	Status     AccountStatus `json:"status"`
	OpenedOn   string        `json:"opened_on"`
}

type CreditType string

const (
	Personal       CreditType = "personal"
	Mortgage       CreditType = "mortgage"
	Vehicle        CreditType = "vehicle"
	BusinessCredit CreditType = "business"
)

type CreditStatus string

const (
	CreditActive     CreditStatus = "active"
	CreditPaid       CreditStatus = "paid"
	CreditDelinquent CreditStatus = "delinquent"
	CreditExpired    CreditStatus = "expired"
)

// Installments is repayment progress as a paid/total pair. It
// serializes as the string "paid/total".
type Installments struct {
	Paid  int
	Total int
}

// Progress is the repayment percentage, rounded to the nearest
// integer. Zero when no installments are defined.
func (i Installments) Progress() int {
	if i.Total <= 0 {
		return 0
	}
	return int(math.Round(float64(i.Paid) / float64(i.Total) * 100))
}

func (i Installments) String() string {
	return fmt.Sprintf("%d/%d", i.Paid, i.Total)
}

// ParseInstallments reads the "paid/total" form.
func ParseInstallments(s string) (Installments, error) {
	paidStr, totalStr, ok := strings.Cut(s, "/")
	if !ok {
		return Installments{}, fmt.Errorf("installments %q: want paid/total", s)
	}
	paid, err := strconv.Atoi(paidStr)
	if err != nil {
		return Installments{}, fmt.Errorf("installments %q: %w", s, err)
	}
	total, err := strconv.Atoi(totalStr)
	if err != nil {
		return Installments{}, fmt.Errorf("installments %q: %w", s, err)
	}
	return Installments{Paid: paid, Total: total}, nil
}

func (i Installments) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

func (i *Installments) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseInstallments(s)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// Credit is a loan or credit line, keyed by credit ID. Amount is the
// original principal, Balance the outstanding amount.
type Credit struct {
	ID           string       `json:"id"`
	HolderName   string       `json:"holder_name"`
	NationalID   string       `json:"national_id"`
	Type         CreditType   `json:"type"`
	Amount       int64        `json:"amount"`
	Balance      int64        `json:"balance"`
	Installments Installments `json:"installments"`
	Status       CreditStatus `json:"status"`
	ApprovedOn   string       `json:"approved_on"`
	Rate         float64      `json:"rate"`
}

type TransactionType string

const (
	Deposit    TransactionType = "deposit"
	Withdrawal TransactionType = "withdrawal"
	Transfer   TransactionType = "transfer"
	Payment    TransactionType = "payment"
)

type TransactionStatus string

const (
	Completed TransactionStatus = "completed"
	Pending   TransactionStatus = "pending"
	Failed    TransactionStatus = "failed"
)

// Transaction is an append-only ledger record of a money movement.
// Once appended it is never mutated or removed.
type Transaction struct {
	ID      string            `json:"id"`
	Date    string            `json:"date"`
	Type    TransactionType   `json:"type"`
	Client  string            `json:"client"`
	Account string            `json:"account"`
	Amount  int64             `json:"amount"`
	Status  TransactionStatus `json:"status"`
	Note    string            `json:"note,omitempty"`
}

// ServicePayment is a service-bill payment record, append-only like
// Transaction but scoped to utility and service payments.
type ServicePayment struct {
	ID        string            `json:"id"`
	Date      string            `json:"date"`
	Client    string            `json:"client"`
	Service   string            `json:"service"`
	Reference string            `json:"reference"`
	Amount    int64             `json:"amount"`
	Status    TransactionStatus `json:"status"`
	Note      string            `json:"note,omitempty"`
}

// Severity grades a toast.
type Severity string

const (
	Info    Severity = "info"
	Success Severity = "success"
	Warning Severity = "warning"
	Error   Severity = "error"
)

// Toast is an ephemeral operator-facing notification, removed
// automatically a fixed delay after it is shown.
type Toast struct {
	ID       int64    `json:"id"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// KPISnapshot holds the dashboard aggregates. It is fed wholesale via
// UpdateKPIs and deliberately NOT recomputed from the ledger, so the
// two can drift.
type KPISnapshot struct {
	TotalDeposits     int64 `json:"total_deposits"`
	TotalWithdrawals  int64 `json:"total_withdrawals"`
	TotalTransactions int   `json:"total_transactions"`
	ClientsServed     int   `json:"clients_served"`
}

// Snapshot is the immutable bank state at a point in time. Readers
// must treat it as read-only; mutations go through Store.Dispatch,
// which produces a fresh snapshot. Transactions and Payments are
// newest-first.
type Snapshot struct {
	Clients      map[string]Client
	Accounts     map[string]Account
	Credits      map[string]Credit
	Transactions []Transaction
	Payments     []ServicePayment
	Toasts       []Toast
	KPIs         KPISnapshot
}

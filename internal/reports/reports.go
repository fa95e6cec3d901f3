// internal/reports/reports.go
//
// Stateless report aggregation over a bank snapshot. Reports are
// recomputed in full on every invocation and never stored; O(n) over
// the relevant collection is fine at the data sizes in play.
package reports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"bancoexpres/internal/bank"
)

// Type selects one of the four report shapes.
type Type string

const (
	Financial    Type = "financial"
	Clients      Type = "clients"
	Transactions Type = "transactions"
	Credits      Type = "credits"
)

var ErrUnknownType = errors.New("unknown report type")

// FinancialReport is the balance and cash-flow summary.
type FinancialReport struct {
	TotalDeposits    int64 `json:"totalDeposits"`
	TotalWithdrawals int64 `json:"totalWithdrawals"`
	NetFlow          int64 `json:"netFlow"`
	TotalAccounts    int64 `json:"totalAccounts"`
	TotalCredits     int64 `json:"totalCredits"`
	TotalAssets      int64 `json:"totalAssets"`
}

// ClientsReport is the customer-base summary.
type ClientsReport struct {
	TotalClients    int                       `json:"totalClients"`
	ClientsByStatus map[bank.ClientStatus]int `json:"clientsByStatus"`
	AvgBalance      float64                   `json:"avgBalance"`
	TopClients      []bank.Client             `json:"topClients"`
}

// TransactionsReport is the ledger summary.
type TransactionsReport struct {
	TotalTransactions    int                            `json:"totalTransactions"`
	TransactionsByType   map[bank.TransactionType]int   `json:"transactionsByType"`
	TransactionsByStatus map[bank.TransactionStatus]int `json:"transactionsByStatus"`
	TotalVolume          int64                          `json:"totalVolume"`
}

// CreditsReport is the loan-portfolio summary.
type CreditsReport struct {
	TotalCredits    int                       `json:"totalCredits"`
	CreditsByType   map[bank.CreditType]int   `json:"creditsByType"`
	CreditsByStatus map[bank.CreditStatus]int `json:"creditsByStatus"`
	TotalAmount     int64                     `json:"totalAmount"`
	TotalBalance    int64                     `json:"totalBalance"`
}

// Generator reduces snapshots into report records.
type Generator struct {
	tracer trace.Tracer
}

func NewGenerator() *Generator {
	return &Generator{tracer: otel.Tracer("bancoexpres/reports")}
}

// Generate reduces the snapshot into the report shape for t. The
// result is a plain record ready for serialization.
func (g *Generator) Generate(ctx context.Context, t Type, snap bank.Snapshot) (any, error) {
	_, span := g.tracer.Start(ctx, "reports.generate",
		trace.WithAttributes(attribute.String("report.type", string(t))),
	)
	defer span.End()

	switch t {
	case Financial:
		return g.financial(snap), nil
	case Clients:
		return g.clients(snap), nil
	case Transactions:
		return g.transactions(snap), nil
	case Credits:
		return g.credits(snap), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
}

func (g *Generator) financial(snap bank.Snapshot) FinancialReport {
	deposits := snap.CompletedVolumeByType(bank.Deposit)
	withdrawals := snap.CompletedVolumeByType(bank.Withdrawal)
	accounts := snap.TotalAccountBalance()
	credits := snap.TotalCreditBalance()

	return FinancialReport{
		TotalDeposits:    deposits,
		TotalWithdrawals: withdrawals,
		NetFlow:          deposits - withdrawals,
		TotalAccounts:    accounts,
		TotalCredits:     credits,
		TotalAssets:      accounts + credits,
	}
}

func (g *Generator) clients(snap bank.Snapshot) ClientsReport {
	byStatus := make(map[bank.ClientStatus]int)
	for _, c := range snap.Clients {
		byStatus[c.Status]++
	}

	return ClientsReport{
		TotalClients:    len(snap.Clients),
		ClientsByStatus: byStatus,
		AvgBalance:      snap.AverageClientBalance(),
		TopClients:      snap.TopClientsByBalance(5),
	}
}

func (g *Generator) transactions(snap bank.Snapshot) TransactionsReport {
	byType := make(map[bank.TransactionType]int)
	byStatus := make(map[bank.TransactionStatus]int)
	var volume int64
	for _, tx := range snap.Transactions {
		byType[tx.Type]++
		byStatus[tx.Status]++
		volume += tx.Amount
	}

	return TransactionsReport{
		TotalTransactions:    len(snap.Transactions),
		TransactionsByType:   byType,
		TransactionsByStatus: byStatus,
		TotalVolume:          volume,
	}
}

func (g *Generator) credits(snap bank.Snapshot) CreditsReport {
	byType := make(map[bank.CreditType]int)
	byStatus := make(map[bank.CreditStatus]int)
	var amount, balance int64
	for _, c := range snap.Credits {
		byType[c.Type]++
		byStatus[c.Status]++
		amount += c.Amount
		balance += c.Balance
	}

	return CreditsReport{
		TotalCredits:    len(snap.Credits),
		CreditsByType:   byType,
		CreditsByStatus: byStatus,
		TotalAmount:     amount,
		TotalBalance:    balance,
	}
}

// Write serializes a report the way the download path does:
// two-space-indented JSON.
func Write(w io.Writer, report any) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Filename is the download name for a report generated on the given
// day, e.g. report_financial_2024-12-26.json.
func Filename(t Type, on time.Time) string {
	return fmt.Sprintf("report_%s_%s.json", t, on.Format("2006-01-02"))
}

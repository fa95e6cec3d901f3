// internal/bank/selectors.go
//
// Derived views: computed on read from a snapshot, never stored.
package bank

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ClientCountByStatus counts clients in the given status.
func (s Snapshot) ClientCountByStatus(status ClientStatus) int {
	n := 0
	for _, c := range s.Clients {
		if c.Status == status {
			n++
		}
	}
	return n
}

// AccountCountByStatus counts accounts in the given status.
func (s Snapshot) AccountCountByStatus(status AccountStatus) int {
	n := 0
	for _, a := range s.Accounts {
		if a.Status == status {
			n++
		}
	}
	return n
}

// BalanceByAccountType sums account balances of one account type.
func (s Snapshot) BalanceByAccountType(t AccountType) int64 {
	var sum int64
	for _, a := range s.Accounts {
		if a.Type == t {
			sum += a.Balance
		}
	}
	return sum
}

// OutstandingByCreditStatus sums outstanding credit balances in the
// given status.
func (s Snapshot) OutstandingByCreditStatus(status CreditStatus) int64 {
	var sum int64
	for _, c := range s.Credits {
		if c.Status == status {
			sum += c.Balance
		}
	}
	return sum
}

// TransactionCountByType counts ledger records of one type.
func (s Snapshot) TransactionCountByType(t TransactionType) int {
	n := 0
	for _, tx := range s.Transactions {
		if tx.Type == t {
			n++
		}
	}
	return n
}

// TransactionCountByStatus counts ledger records in one status.
func (s Snapshot) TransactionCountByStatus(status TransactionStatus) int {
	n := 0
	for _, tx := range s.Transactions {
		if tx.Status == status {
			n++
		}
	}
	return n
}

// PaymentCountByStatus counts service payments in one status.
func (s Snapshot) PaymentCountByStatus(status TransactionStatus) int {
	n := 0
	for _, p := range s.Payments {
		if p.Status == status {
			n++
		}
	}
	return n
}

// CompletedVolumeByType sums amounts of completed transactions of one
// type.
func (s Snapshot) CompletedVolumeByType(t TransactionType) int64 {
	var sum int64
	for _, tx := range s.Transactions {
		if tx.Type == t && tx.Status == Completed {
			sum += tx.Amount
		}
	}
	return sum
}

// TotalAccountBalance sums all account balances.
func (s Snapshot) TotalAccountBalance() int64 {
	var sum int64
	for _, a := range s.Accounts {
		sum += a.Balance
	}
	return sum
}

// TotalCreditBalance sums all outstanding credit balances.
func (s Snapshot) TotalCreditBalance() int64 {
	var sum int64
	for _, c := range s.Credits {
		sum += c.Balance
	}
	return sum
}

// AverageClientBalance is the mean balance across all clients, zero
// when there are none.
func (s Snapshot) AverageClientBalance() float64 {
	if len(s.Clients) == 0 {
		return 0
	}
	var sum int64
	for _, c := range s.Clients {
		sum += c.Balance
	}
	return float64(sum) / float64(len(s.Clients))
}

// TopClientsByBalance returns up to n clients ordered by balance
// descending, ties broken by national ID for determinism.
func (s Snapshot) TopClientsByBalance(n int) []Client {
	clients := slices.SortedFunc(maps.Values(s.Clients), func(a, b Client) int {
		if a.Balance != b.Balance {
			if a.Balance > b.Balance {
				return -1
			}
			return 1
		}
		return strings.Compare(a.NationalID, b.NationalID)
	})
	if len(clients) > n {
		clients = clients[:n]
	}
	return clients
}

// Global search across clients, accounts and credits.

const (
	// MinQueryLen is the minimum query length; shorter queries return
	// no results.
	MinQueryLen = 2
	// MaxSearchResults caps results across all collections.
	MaxSearchResults = 5
)

type ResultKind string

const (
	KindClient  ResultKind = "client"
	KindAccount ResultKind = "account"
	KindCredit  ResultKind = "credit"
)

// SearchResult points at one matching record.
type SearchResult struct {
	Kind     ResultKind
	Key      string
	Title    string
	Subtitle string
}

// Search matches the query case-insensitively as a substring of the
// key human-readable fields, scanning clients first, then accounts,
// then credits, and caps the result at MaxSearchResults. Each
// collection is scanned in natural-key order so results are
// deterministic.
func (s Snapshot) Search(query string) []SearchResult {
	if len(query) < MinQueryLen {
		return nil
	}
	q := strings.ToLower(query)

	var results []SearchResult

	for _, key := range slices.Sorted(maps.Keys(s.Clients)) {
		c := s.Clients[key]
		if strings.Contains(c.NationalID, q) ||
			strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Email), q) {
			results = append(results, SearchResult{
				Kind:     KindClient,
				Key:      c.NationalID,
				Title:    c.Name,
				Subtitle: "ID: " + c.NationalID,
			})
		}
	}

	for _, key := range slices.Sorted(maps.Keys(s.Accounts)) {
		a := s.Accounts[key]
		if strings.Contains(a.Number, q) ||
			strings.Contains(strings.ToLower(a.HolderName), q) {
			results = append(results, SearchResult{
				Kind:     KindAccount,
				Key:      a.Number,
				Title:    fmt.Sprintf("Account %s", a.Number),
				Subtitle: a.HolderName,
			})
		}
	}

	for _, key := range slices.Sorted(maps.Keys(s.Credits)) {
		c := s.Credits[key]
		if strings.Contains(strings.ToLower(c.ID), q) ||
			strings.Contains(strings.ToLower(c.HolderName), q) {
			results = append(results, SearchResult{
				Kind:     KindCredit,
				Key:      c.ID,
				Title:    fmt.Sprintf("Credit %s", c.ID),
				Subtitle: c.HolderName,
			})
		}
	}

	if len(results) > MaxSearchResults {
		results = results[:MaxSearchResults]
	}
	return results
}

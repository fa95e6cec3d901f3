// internal/bank/actions.go
package bank

import (
	"maps"
	"slices"
)

// Action is the closed set of bank store transitions. Every action is
// a pure state merge; the store performs no business validation, that
// is the caller's job before dispatch (see validate.go).
type Action interface{ isAction() }

type AddClient struct{ Client Client }

type UpdateClient struct {
	NationalID string
	Patch      ClientPatch
}

type DeleteClient struct{ NationalID string }

type AddAccount struct{ Account Account }

type UpdateAccount struct {
	Number string
	Patch  AccountPatch
}

type DeleteAccount struct{ Number string }

type AddCredit struct{ Credit Credit }

type UpdateCredit struct {
	ID    string
	Patch CreditPatch
}

type DeleteCredit struct{ ID string }

type AddTransaction struct{ Transaction Transaction }

type AddPayment struct{ Payment ServicePayment }

type AddToast struct{ Toast Toast }

type RemoveToast struct{ ID int64 }

type UpdateKPIs struct{ Patch KPIPatch }

func (AddClient) isAction()      {}
func (UpdateClient) isAction()   {}
func (DeleteClient) isAction()   {}
func (AddAccount) isAction()     {}
func (UpdateAccount) isAction()  {}
func (DeleteAccount) isAction()  {}
func (AddCredit) isAction()      {}
func (UpdateCredit) isAction()   {}
func (DeleteCredit) isAction()   {}
func (AddTransaction) isAction() {}
func (AddPayment) isAction()     {}
func (AddToast) isAction()       {}
func (RemoveToast) isAction()    {}
func (UpdateKPIs) isAction()     {}

// ClientPatch is a shallow merge onto a Client; nil fields are left
// untouched.
type ClientPatch struct {
	Name         *string
	Email        *string
	Phone        *string
	Status       *ClientStatus
	RegisteredOn *string
	Balance      *int64
}

func (p ClientPatch) apply(c Client) Client {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.RegisteredOn != nil {
		c.RegisteredOn = *p.RegisteredOn
	}
	if p.Balance != nil {
		c.Balance = *p.Balance
	}
	return c
}

// AccountPatch is a shallow merge onto an Account.
type AccountPatch struct {
	HolderName *string
	NationalID *string
	Type       *AccountType
	Balance    *int64
	Status     *AccountStatus
	OpenedOn   *string
}

func (p AccountPatch) apply(a Account) Account {
	if p.HolderName != nil {
		a.HolderName = *p.HolderName
	}
	if p.NationalID != nil {
		a.NationalID = *p.NationalID
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Balance != nil {
		a.Balance = *p.Balance
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.OpenedOn != nil {
		a.OpenedOn = *p.OpenedOn
	}
	return a
}

// CreditPatch is a shallow merge onto a Credit.
type CreditPatch struct {
	HolderName   *string
	NationalID   *string
	Type         *CreditType
	Amount       *int64
	Balance      *int64
	Installments *Installments
	Status       *CreditStatus
	ApprovedOn   *string
	Rate         *float64
}

func (p CreditPatch) apply(c Credit) Credit {
	if p.HolderName != nil {
		c.HolderName = *p.HolderName
	}
	if p.NationalID != nil {
		c.NationalID = *p.NationalID
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Amount != nil {
		c.Amount = *p.Amount
	}
	if p.Balance != nil {
		c.Balance = *p.Balance
	}
	if p.Installments != nil {
		c.Installments = *p.Installments
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.ApprovedOn != nil {
		c.ApprovedOn = *p.ApprovedOn
	}
	if p.Rate != nil {
		c.Rate = *p.Rate
	}
	return c
}

// KPIPatch is a shallow merge onto the KPI snapshot.
type KPIPatch struct {
	TotalDeposits     *int64
	TotalWithdrawals  *int64
	TotalTransactions *int
	ClientsServed     *int
}

func (p KPIPatch) apply(k KPISnapshot) KPISnapshot {
	if p.TotalDeposits != nil {
		k.TotalDeposits = *p.TotalDeposits
	}
	if p.TotalWithdrawals != nil {
		k.TotalWithdrawals = *p.TotalWithdrawals
	}
	if p.TotalTransactions != nil {
		k.TotalTransactions = *p.TotalTransactions
	}
	if p.ClientsServed != nil {
		k.ClientsServed = *p.ClientsServed
	}
	return k
}

// Apply is the pure transition function: action plus snapshot in, next
// snapshot out. It is total and never mutates its input; collections
// touched by the action are copied first. Inserts are last-write-wins
// under the record's natural key, updates onto an absent key insert a
// partial record, deletes of an absent key are no-ops.
func Apply(s Snapshot, a Action) Snapshot {
	switch a := a.(type) {
	case AddClient:
		s.Clients = cloneWith(s.Clients, a.Client.NationalID, a.Client)
	case UpdateClient:
		merged := a.Patch.apply(s.Clients[a.NationalID])
		merged.NationalID = a.NationalID
		s.Clients = cloneWith(s.Clients, a.NationalID, merged)
	case DeleteClient:
		s.Clients = cloneWithout(s.Clients, a.NationalID)
	case AddAccount:
		s.Accounts = cloneWith(s.Accounts, a.Account.Number, a.Account)
	case UpdateAccount:
		merged := a.Patch.apply(s.Accounts[a.Number])
		merged.Number = a.Number
		s.Accounts = cloneWith(s.Accounts, a.Number, merged)
	case DeleteAccount:
		s.Accounts = cloneWithout(s.Accounts, a.Number)
	case AddCredit:
		s.Credits = cloneWith(s.Credits, a.Credit.ID, a.Credit)
	case UpdateCredit:
		merged := a.Patch.apply(s.Credits[a.ID])
		merged.ID = a.ID
		s.Credits = cloneWith(s.Credits, a.ID, merged)
	case DeleteCredit:
		s.Credits = cloneWithout(s.Credits, a.ID)
	case AddTransaction:
		s.Transactions = prepend(s.Transactions, a.Transaction)
	case AddPayment:
		s.Payments = prepend(s.Payments, a.Payment)
	case AddToast:
		s.Toasts = append(slices.Clone(s.Toasts), a.Toast)
	case RemoveToast:
		s.Toasts = slices.DeleteFunc(slices.Clone(s.Toasts), func(t Toast) bool {
			return t.ID == a.ID
		})
	case UpdateKPIs:
		s.KPIs = a.Patch.apply(s.KPIs)
	}
	return s
}

func cloneWith[K comparable, V any](m map[K]V, k K, v V) map[K]V {
	next := maps.Clone(m)
	if next == nil {
		next = make(map[K]V, 1)
	}
	next[k] = v
	return next
}

func cloneWithout[K comparable, V any](m map[K]V, k K) map[K]V {
	next := maps.Clone(m)
	delete(next, k)
	return next
}

func prepend[T any](xs []T, x T) []T {
	next := make([]T, 0, len(xs)+1)
	next = append(next, x)
	return append(next, xs...)
}

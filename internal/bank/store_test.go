// internal/bank/store_test.go
package bank

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestClientLifecycle(t *testing.T) {
	store := NewStore(Seed())
	defer store.Close()

	client := Client{
		NationalID:   "99887766",
		Name:         "Sofía Torres",
		Email:        "sofia.torres@email.com",
		Phone:        "300-998-8776",
		Status:       ClientStandard,
		RegisteredOn: "2024-12-26",
		Balance:      1000000,
	}
	store.Dispatch(AddClient{Client: client})
	assert.Equal(t, client, store.Snapshot().Clients["99887766"])

	status := ClientPreferred
	balance := int64(2000000)
	store.Dispatch(UpdateClient{NationalID: "99887766", Patch: ClientPatch{Status: &status, Balance: &balance}})

	updated := store.Snapshot().Clients["99887766"]
	assert.Equal(t, ClientPreferred, updated.Status)
	assert.Equal(t, int64(2000000), updated.Balance)
	assert.Equal(t, "Sofía Torres", updated.Name)

	store.Dispatch(DeleteClient{NationalID: "99887766"})
	_, exists := store.Snapshot().Clients["99887766"]
	assert.False(t, exists)

	// Deleting an absent key is a no-op.
	before := store.Snapshot()
	store.Dispatch(DeleteClient{NationalID: "99887766"})
	assert.Equal(t, before.Clients, store.Snapshot().Clients)
}

func TestUpdateAbsentKeyInsertsPartialRecord(t *testing.T) {
	store := NewStore(Seed())
	defer store.Close()

	name := "Fantasma"
	store.Dispatch(UpdateClient{NationalID: "00000000", Patch: ClientPatch{Name: &name}})

	ghost, exists := store.Snapshot().Clients["00000000"]
	require.True(t, exists)
	assert.Equal(t, "00000000", ghost.NationalID)
	assert.Equal(t, "Fantasma", ghost.Name)
	assert.Empty(t, ghost.Email)
}

func TestAddExistingKeyIsLastWriteWins(t *testing.T) {
	store := NewStore(Seed())
	defer store.Close()

	replacement := Client{NationalID: "12345678", Name: "Otro Juan", Status: ClientInactive}
	store.Dispatch(AddClient{Client: replacement})
	assert.Equal(t, replacement, store.Snapshot().Clients["12345678"])
}

func TestAccountStatusToggle(t *testing.T) {
	store := NewStore(Seed())
	defer store.Close()

	account := store.Snapshot().Accounts["1001234567"]
	next := NextAccountStatus(account.Status)
	require.Equal(t, AccountBlocked, next)

	store.Dispatch(UpdateAccount{Number: "1001234567", Patch: AccountPatch{Status: &next}})
	assert.Equal(t, AccountBlocked, store.Snapshot().Accounts["1001234567"].Status)

	back := NextAccountStatus(next)
	store.Dispatch(UpdateAccount{Number: "1001234567", Patch: AccountPatch{Status: &back}})
	assert.Equal(t, AccountActive, store.Snapshot().Accounts["1001234567"].Status)

	assert.Equal(t, AccountClosed, NextAccountStatus(AccountClosed))
}

func TestDepositDoesNotTouchAccountBalance(t *testing.T) {
	store := NewStore(Seed())
	defer store.Close()

	require.Equal(t, int64(2500000), store.Snapshot().Accounts["1001234567"].Balance)

	tx := Transaction{
		ID:      "TXN9000000001",
		Date:    "2024-12-26",
		Type:    Deposit,
		Client:  "Juan Pérez",
		Account: "1001234567",
		Amount:  500000,
		Status:  Completed,
	}
	store.Dispatch(AddTransaction{Transaction: tx})

	snap := store.Snapshot()
	require.NotEmpty(t, snap.Transactions)
	assert.Equal(t, tx, snap.Transactions[0])
	// Accounts and the ledger are independent collections.
	assert.Equal(t, int64(2500000), snap.Accounts["1001234567"].Balance)
}

func TestLedgersAreNewestFirst(t *testing.T) {
	store := NewStore(Seed())
	defer store.Close()

	first := ServicePayment{ID: "PAG001", Date: "2024-12-26", Client: "Juan Pérez", Service: "Energía", Reference: "F-001", Amount: 120000, Status: Completed}
	second := ServicePayment{ID: "PAG002", Date: "2024-12-26", Client: "María García", Service: "Agua", Reference: "F-002", Amount: 65000, Status: Completed}
	store.Dispatch(AddPayment{Payment: first})
	store.Dispatch(AddPayment{Payment: second})

	payments := store.Snapshot().Payments
	require.Len(t, payments, 2)
	assert.Equal(t, "PAG002", payments[0].ID)
	assert.Equal(t, "PAG001", payments[1].ID)
	assert.Equal(t, 2, store.Snapshot().PaymentCountByStatus(Completed))
}

func TestSnapshotsAreImmutable(t *testing.T) {
	store := NewStore(Seed())
	defer store.Close()

	before := store.Snapshot()
	clientsBefore := len(before.Clients)
	txBefore := len(before.Transactions)

	store.Dispatch(AddClient{Client: Client{NationalID: "77700011", Name: "Nueva Cliente"}})
	store.Dispatch(AddTransaction{Transaction: Transaction{ID: "TXN-X", Type: Deposit, Client: "x", Account: "y", Amount: 1, Status: Completed}})
	store.Dispatch(DeleteClient{NationalID: "12345678"})

	assert.Len(t, before.Clients, clientsBefore)
	assert.Len(t, before.Transactions, txBefore)
	_, stillThere := before.Clients["12345678"]
	assert.True(t, stillThere)
}

func TestKPIPatchMergesShallowly(t *testing.T) {
	store := NewStore(Seed())
	defer store.Close()

	deposits := int64(46000000)
	served := 90
	store.Dispatch(UpdateKPIs{Patch: KPIPatch{TotalDeposits: &deposits, ClientsServed: &served}})

	kpis := store.Snapshot().KPIs
	assert.Equal(t, int64(46000000), kpis.TotalDeposits)
	assert.Equal(t, 90, kpis.ClientsServed)
	assert.Equal(t, int64(32150000), kpis.TotalWithdrawals)
	assert.Equal(t, 1247, kpis.TotalTransactions)
}

func TestToastAutoExpires(t *testing.T) {
	store := NewStore(Seed(), WithToastTTL(30*time.Millisecond))
	defer store.Close()

	store.ShowToast("Client created successfully", Success)
	store.ShowToast("Something else happened", Info)
	require.Len(t, store.Snapshot().Toasts, 2)

	assert.Eventually(t, func() bool {
		return len(store.Snapshot().Toasts) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestToastEarlyDismissalCancelsTimer(t *testing.T) {
	store := NewStore(Seed(), WithToastTTL(50*time.Millisecond))
	defer store.Close()

	id := store.ShowToast("dismiss me", Warning)
	store.DismissToast(id)
	assert.Empty(t, store.Snapshot().Toasts)

	// Dismissing again, and letting the original deadline pass, must
	// both be harmless.
	store.DismissToast(id)
	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, store.Snapshot().Toasts)
}

func TestToastIDsAreUnique(t *testing.T) {
	fixed := time.UnixMilli(1735142400000)
	store := NewStore(Seed(), WithToastTTL(time.Hour), WithClock(func() time.Time { return fixed }))
	defer store.Close()

	a := store.ShowToast("first", Info)
	b := store.ShowToast("second", Info)
	c := store.ShowToast("third", Info)
	assert.Less(t, a, b)
	assert.Less(t, b, c)
	assert.Len(t, store.Snapshot().Toasts, 3)
}

func TestCloseStopsPendingTimers(t *testing.T) {
	store := NewStore(Seed(), WithToastTTL(20*time.Millisecond))

	store.ShowToast("left behind", Info)
	store.Close()

	time.Sleep(50 * time.Millisecond)
	// The store is torn down; the dangling timer must not dispatch.
	assert.Len(t, store.Snapshot().Toasts, 1)

	store.Dispatch(DeleteClient{NationalID: "12345678"})
	_, stillThere := store.Snapshot().Clients["12345678"]
	assert.True(t, stillThere)
}

func TestSubscriberSeesEachDispatch(t *testing.T) {
	store := NewStore(Seed(), WithToastTTL(time.Hour))
	defer store.Close()

	var count int
	cancel := store.Subscribe(func(Snapshot) { count++ })

	store.Dispatch(DeleteClient{NationalID: "44332211"})
	store.Dispatch(DeleteAccount{Number: "1004433221"})
	assert.Equal(t, 2, count)

	cancel()
	store.Dispatch(DeleteCredit{ID: "CRE004"})
	assert.Equal(t, 2, count)
}

// Replaying the action log from the seed must reproduce the store's
// final snapshot exactly.
func TestReplayReproducesFinalSnapshot(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		actions := rapid.SliceOfN(actionGen(), 0, 50).Draw(t, "actions")

		store := NewStore(Seed(), WithToastTTL(time.Hour))
		defer store.Close()
		for _, a := range actions {
			store.Dispatch(a)
		}

		replayed := Seed()
		for _, a := range actions {
			replayed = Apply(replayed, a)
		}

		assert.Equal(t, replayed, store.Snapshot())
	})
}

func actionGen() *rapid.Generator[Action] {
	keys := []string{"12345678", "87654321", "11223344", "44332211", "55667788", "99900011"}
	accounts := []string{"1001234567", "1007654321", "1001122334", "1009999999"}
	credits := []string{"CRE001", "CRE002", "CRE009"}

	addClient := rapid.Custom(func(t *rapid.T) Action {
		return AddClient{Client: Client{
			NationalID: rapid.SampledFrom(keys).Draw(t, "id"),
			Name:       rapid.StringMatching(`[A-Z][a-z]{2,8}`).Draw(t, "name"),
			Status:     rapid.SampledFrom([]ClientStatus{ClientStandard, ClientPreferred, ClientInactive}).Draw(t, "status"),
			Balance:    rapid.Int64Range(0, 10_000_000).Draw(t, "balance"),
		}}
	})
	updateClient := rapid.Custom(func(t *rapid.T) Action {
		patch := ClientPatch{}
		if rapid.Bool().Draw(t, "patchName") {
			name := rapid.StringMatching(`[A-Z][a-z]{2,8}`).Draw(t, "newName")
			patch.Name = &name
		}
		if rapid.Bool().Draw(t, "patchBalance") {
			balance := rapid.Int64Range(0, 10_000_000).Draw(t, "newBalance")
			patch.Balance = &balance
		}
		return UpdateClient{NationalID: rapid.SampledFrom(keys).Draw(t, "id"), Patch: patch}
	})
	deleteClient := rapid.Custom(func(t *rapid.T) Action {
		return DeleteClient{NationalID: rapid.SampledFrom(keys).Draw(t, "id")}
	})
	updateAccount := rapid.Custom(func(t *rapid.T) Action {
		status := rapid.SampledFrom([]AccountStatus{AccountActive, AccountBlocked, AccountClosed}).Draw(t, "status")
		return UpdateAccount{Number: rapid.SampledFrom(accounts).Draw(t, "number"), Patch: AccountPatch{Status: &status}}
	})
	deleteCredit := rapid.Custom(func(t *rapid.T) Action {
		return DeleteCredit{ID: rapid.SampledFrom(credits).Draw(t, "id")}
	})
	addTransaction := rapid.Custom(func(t *rapid.T) Action {
		return AddTransaction{Transaction: Transaction{
			ID:      rapid.StringMatching(`TXN[0-9]{6}`).Draw(t, "txid"),
			Date:    "2024-12-26",
			Type:    rapid.SampledFrom([]TransactionType{Deposit, Withdrawal, Transfer, Payment}).Draw(t, "type"),
			Client:  "Juan Pérez",
			Account: rapid.SampledFrom(accounts).Draw(t, "account"),
			Amount:  rapid.Int64Range(1, 5_000_000).Draw(t, "amount"),
			Status:  rapid.SampledFrom([]TransactionStatus{Completed, Pending, Failed}).Draw(t, "txstatus"),
		}}
	})
	updateKPIs := rapid.Custom(func(t *rapid.T) Action {
		total := rapid.Int64Range(0, 100_000_000).Draw(t, "deposits")
		return UpdateKPIs{Patch: KPIPatch{TotalDeposits: &total}}
	})

	return rapid.OneOf(addClient, updateClient, deleteClient, updateAccount, deleteCredit, addTransaction, updateKPIs)
}

func TestValidationHelpers(t *testing.T) {
	snap := Seed()

	assert.ErrorIs(t, ValidateNewClient(snap, Client{NationalID: "12345678", Name: "Juan Pérez"}), ErrDuplicateKey)
	assert.ErrorIs(t, ValidateNewClient(snap, Client{Name: "Sin Cédula"}), ErrMissingField)
	assert.NoError(t, ValidateNewClient(snap, Client{NationalID: "99900011", Name: "Cliente Nuevo"}))

	assert.ErrorIs(t, ValidateNewAccount(snap, Account{Number: "1001234567", HolderName: "Juan Pérez"}), ErrDuplicateKey)
	assert.NoError(t, ValidateNewAccount(snap, Account{Number: "1009999999", HolderName: "Cliente Nuevo"}))

	assert.ErrorIs(t, ValidateNewCredit(snap, Credit{ID: "CRE001", HolderName: "Juan Pérez"}), ErrDuplicateKey)

	assert.ErrorIs(t, ValidateQuickTransaction(Transaction{Client: "Juan", Account: "", Amount: 100}), ErrMissingField)
	assert.ErrorIs(t, ValidateQuickTransaction(Transaction{Client: "Juan", Account: "1001234567", Amount: 0}), ErrMissingField)
	assert.NoError(t, ValidateQuickTransaction(Transaction{Client: "Juan", Account: "1001234567", Amount: 100}))

	assert.ErrorIs(t, ValidateQuickPayment(ServicePayment{Client: "Juan", Amount: 100}), ErrMissingField)
	assert.NoError(t, ValidateQuickPayment(ServicePayment{Client: "Juan", Reference: "F-001", Amount: 100}))

	at := time.UnixMilli(1735142400000)
	assert.Equal(t, "TXN1735142400000", TransactionID(at))
	assert.Equal(t, "PAG1735142400000", PaymentID(at))
}

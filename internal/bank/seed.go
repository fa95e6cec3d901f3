// internal/bank/seed.go
package bank

// Seed returns the static fixture snapshot the store starts from on
// every process start. Nothing here is persisted.
func Seed() Snapshot {
	return Snapshot{
		Clients: map[string]Client{
			"12345678": {
				NationalID:   "12345678",
				Name:         "Juan Pérez",
				Email:        "juan.perez@email.com",
				Phone:        "300-123-4567",
				Status:       ClientStandard,
				RegisteredOn: "2023-01-15",
				Balance:      2500000,
			},
			"87654321": {
				NationalID:   "87654321",
				Name:         "María García",
				Email:        "maria.garcia@email.com",
				Phone:        "300-987-6543",
				Status:       ClientPreferred,
				RegisteredOn: "2022-08-22",
				Balance:      5750000,
			},
			"11223344": {
				NationalID:   "11223344",
				Name:         "Carlos López",
				Email:        "carlos.lopez@email.com",
				Phone:        "300-112-2334",
				Status:       ClientStandard,
				RegisteredOn: "2023-03-10",
				Balance:      12300000,
			},
			"44332211": {
				NationalID:   "44332211",
				Name:         "Ana Rodríguez",
				Email:        "ana.rodriguez@email.com",
				Phone:        "300-443-3221",
				Status:       ClientInactive,
				RegisteredOn: "2021-12-05",
				Balance:      890000,
			},
			"55667788": {
				NationalID:   "55667788",
				Name:         "Luis Martínez",
				Email:        "luis.martinez@email.com",
				Phone:        "300-556-6778",
				Status:       ClientStandard,
				RegisteredOn: "2023-02-18",
				Balance:      3200000,
			},
		},
		Accounts: map[string]Account{
			"1001234567": {
				Number:     "1001234567",
				HolderName: "Juan Pérez",
				NationalID: "12345678",
				Type:       Savings,
				Balance:    2500000,
				Status:     AccountActive,
				OpenedOn:   "2023-01-15",
			},
			"1007654321": {
				Number:     "1007654321",
				HolderName: "María García",
				NationalID: "87654321",
				Type:       Checking,
				Balance:    5750000,
				Status:     AccountActive,
				OpenedOn:   "2022-08-22",
			},
			"1001122334": {
				Number:     "1001122334",
				HolderName: "Carlos López",
				NationalID: "11223344",
				Type:       Business,
				Balance:    12300000,
				Status:     AccountActive,
				OpenedOn:   "2023-03-10",
			},
			"1004433221": {
				Number:     "1004433221",
				HolderName: "Ana Rodríguez",
				NationalID: "44332211",
				Type:       Savings,
				Balance:    890000,
				Status:     AccountBlocked,
				OpenedOn:   "2021-12-05",
			},
			"1005566778": {
				Number:     "1005566778",
				HolderName: "Luis Martínez",
				NationalID: "55667788",
				Type:       Checking,
				Balance:    3200000,
				Status:     AccountActive,
				OpenedOn:   "2023-02-18",
			},
		},
		Credits: map[string]Credit{
			"CRE001": {
				ID:           "CRE001",
				HolderName:   "Juan Pérez",
				NationalID:   "12345678",
				Type:         Personal,
				Amount:       5000000,
				Balance:      3200000,
				Installments: Installments{Paid: 18, Total: 36},
				Status:       CreditActive,
				ApprovedOn:   "2023-01-15",
				Rate:         12.5,
			},
			"CRE002": {
				ID:           "CRE002",
				HolderName:   "María García",
				NationalID:   "87654321",
				Type:         Mortgage,
				Amount:       150000000,
				Balance:      142000000,
				Installments: Installments{Paid: 12, Total: 240},
				Status:       CreditActive,
				ApprovedOn:   "2022-08-22",
				Rate:         8.5,
			},
			"CRE003": {
				ID:           "CRE003",
				HolderName:   "Carlos López",
				NationalID:   "11223344",
				Type:         Vehicle,
				Amount:       25000000,
				Balance:      18500000,
				Installments: Installments{Paid: 24, Total: 60},
				Status:       CreditActive,
				ApprovedOn:   "2023-03-10",
				Rate:         15.2,
			},
			"CRE004": {
				ID:           "CRE004",
				HolderName:   "Ana Rodríguez",
				NationalID:   "44332211",
				Type:         Personal,
				Amount:       3000000,
				Balance:      850000,
				Installments: Installments{Paid: 30, Total: 36},
				Status:       CreditDelinquent,
				ApprovedOn:   "2021-12-05",
				Rate:         18.0,
			},
			"CRE005": {
				ID:           "CRE005",
				HolderName:   "Luis Martínez",
				NationalID:   "55667788",
				Type:         BusinessCredit,
				Amount:       50000000,
				Balance:      0,
				Installments: Installments{Paid: 48, Total: 48},
				Status:       CreditPaid,
				ApprovedOn:   "2020-06-15",
				Rate:         10.5,
			},
		},
		Transactions: []Transaction{
			{ID: "TXN001", Date: "2024-12-25", Type: Deposit, Client: "Juan Pérez", Account: "1001234567", Amount: 500000, Status: Completed},
			{ID: "TXN002", Date: "2024-12-25", Type: Withdrawal, Client: "María García", Account: "1007654321", Amount: 200000, Status: Completed},
			{ID: "TXN003", Date: "2024-12-25", Type: Transfer, Client: "Carlos López", Account: "1001122334", Amount: 1500000, Status: Pending},
			{ID: "TXN004", Date: "2024-12-25", Type: Payment, Client: "Ana Rodríguez", Account: "1004433221", Amount: 85000, Status: Completed},
			{ID: "TXN005", Date: "2024-12-24", Type: Deposit, Client: "Luis Martínez", Account: "1005566778", Amount: 750000, Status: Completed},
		},
		KPIs: KPISnapshot{
			TotalDeposits:     45230000,
			TotalWithdrawals:  32150000,
			TotalTransactions: 1247,
			ClientsServed:     89,
		},
	}
}

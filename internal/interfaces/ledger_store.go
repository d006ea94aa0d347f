package interfaces

import (
	"github.com/shopspring/decimal"

	"cashdesk/internal/models"
)

// LedgerStore is the persistence boundary of the cash desk. Implementations
// read the full collection from backing storage on every call and rewrite it
// in full on every mutation; the ledger keeps no state between calls.
//
// LoadClients and LoadTransactions never fail: missing or malformed storage
// degrades to an empty collection.
type LedgerStore interface {
	LoadClients() []models.Client
	SaveClients(clients []models.Client) error
	GetClientByID(id int) (models.Client, bool)
	UpdateClientBalance(id int, newBalance decimal.Decimal) error
	LoadTransactions() []models.Transaction
	SaveTransaction(tx models.Transaction) (models.Transaction, error)
}

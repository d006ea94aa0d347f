// Package ledger implements the cash desk operations: deposits, withdrawals,
// transfers and the read side consumed by the presentation layer.
package ledger

import (
	"github.com/shopspring/decimal"

	"cashdesk/internal/interfaces"
	"cashdesk/internal/models"
)

// Ledger runs balance mutations against a LedgerStore. It holds no state of
// its own: every call re-reads the persisted collections, so callers must
// re-query after each mutation instead of expecting pushed updates.
type Ledger struct {
	store interfaces.LedgerStore
	now   func() string
}

// New creates a Ledger over the given store.
func New(store interfaces.LedgerStore) *Ledger {
	return &Ledger{
		store: store,
		now:   models.CurrentTimestamp,
	}
}

// Clients returns all clients in storage order.
func (l *Ledger) Clients() []models.Client {
	return l.store.LoadClients()
}

// ClientByID looks up a single client.
func (l *Ledger) ClientByID(id int) (models.Client, bool) {
	return l.store.GetClientByID(id)
}

// History returns all recorded transactions, oldest first.
func (l *Ledger) History() []models.Transaction {
	return l.store.LoadTransactions()
}

// Deposit credits the client's balance and records a deposit transaction.
// A blank description defaults to the standard top-up text.
func (l *Ledger) Deposit(clientID int, amount decimal.Decimal, description string) (models.Transaction, error) {
	clients := l.store.LoadClients()
	client := findClient(clients, clientID)
	if client == nil {
		return models.Transaction{}, ErrClientNotFound
	}

	client.Balance = client.Balance.Add(amount).Round(2)
	if err := l.store.SaveClients(clients); err != nil {
		return models.Transaction{}, err
	}

	if description == "" {
		description = models.DescDeposit
	}
	return l.store.SaveTransaction(models.Transaction{
		Timestamp:     l.now(),
		OperationType: models.OpDeposit,
		Amount:        amount,
		ClientName:    client.Name,
		Description:   description,
	})
}

// Withdraw debits the client's balance and records a withdrawal transaction.
// The balance check happens before anything is written, so a failed call
// leaves persisted state unchanged.
func (l *Ledger) Withdraw(clientID int, amount decimal.Decimal, description string) (models.Transaction, error) {
	clients := l.store.LoadClients()
	client := findClient(clients, clientID)
	if client == nil {
		return models.Transaction{}, ErrClientNotFound
	}
	if client.Balance.LessThan(amount) {
		return models.Transaction{}, ErrInsufficientFunds
	}

	client.Balance = client.Balance.Sub(amount).Round(2)
	if err := l.store.SaveClients(clients); err != nil {
		return models.Transaction{}, err
	}

	if description == "" {
		description = models.DescWithdrawal
	}
	return l.store.SaveTransaction(models.Transaction{
		Timestamp:     l.now(),
		OperationType: models.OpWithdrawal,
		Amount:        amount,
		ClientName:    client.Name,
		Description:   description,
	})
}

// Transfer moves funds between two clients. Both balances are mutated in
// memory and persisted in a single rewrite of the client collection; one
// transaction is recorded, attributed to the source client with the target's
// display name snapshotted into TargetClient.
func (l *Ledger) Transfer(sourceID, targetID int, amount decimal.Decimal, description string) (models.Transaction, error) {
	if sourceID == targetID {
		return models.Transaction{}, ErrSelfTransfer
	}

	clients := l.store.LoadClients()
	source := findClient(clients, sourceID)
	target := findClient(clients, targetID)
	if source == nil || target == nil {
		return models.Transaction{}, ErrClientNotFound
	}
	if source.Balance.LessThan(amount) {
		return models.Transaction{}, ErrInsufficientFunds
	}

	source.Balance = source.Balance.Sub(amount).Round(2)
	target.Balance = target.Balance.Add(amount).Round(2)
	if err := l.store.SaveClients(clients); err != nil {
		return models.Transaction{}, err
	}

	if description == "" {
		description = models.TransferDescription(target.Name)
	}
	targetName := target.Name
	return l.store.SaveTransaction(models.Transaction{
		Timestamp:     l.now(),
		OperationType: models.OpTransfer,
		Amount:        amount,
		ClientName:    source.Name,
		Description:   description,
		TargetClient:  &targetName,
	})
}

func findClient(clients []models.Client, id int) *models.Client {
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i]
		}
	}
	return nil
}

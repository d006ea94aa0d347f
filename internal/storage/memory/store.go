// Package memory provides an in-memory LedgerStore with the same
// full-collection read/rewrite semantics as the file-backed store. It is used
// by tests in place of real files.
package memory

import (
	"sync"

	"github.com/shopspring/decimal"

	"cashdesk/internal/interfaces"
	"cashdesk/internal/models"
)

// Store keeps both collections in memory. All methods copy data in and out so
// callers can never alias internal state.
type Store struct {
	mu           sync.Mutex
	clients      []models.Client
	transactions []models.Transaction
}

// New creates a Store pre-populated with the given clients.
func New(clients ...models.Client) *Store {
	s := &Store{}
	s.clients = append(s.clients, clients...)
	return s
}

// LoadClients returns a copy of the client collection.
func (s *Store) LoadClients() []models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// SaveClients replaces the client collection.
func (s *Store) SaveClients(clients []models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients = make([]models.Client, len(clients))
	copy(s.clients, clients)
	return nil
}

// GetClientByID does a linear lookup.
func (s *Store) GetClientByID(id int) (models.Client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, client := range s.clients {
		if client.ID == id {
			return client, true
		}
	}
	return models.Client{}, false
}

// UpdateClientBalance sets a client's balance rounded to two decimal places;
// unknown ids are a silent no-op.
func (s *Store) UpdateClientBalance(id int, newBalance decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.clients {
		if s.clients[i].ID == id {
			s.clients[i].Balance = newBalance.Round(2)
			break
		}
	}
	return nil
}

// LoadTransactions returns a copy of the transaction collection.
func (s *Store) LoadTransactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// SaveTransaction assigns the next sequential id when unset and appends.
func (s *Store) SaveTransaction(tx models.Transaction) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tx.ID == 0 {
		tx.ID = len(s.transactions) + 1
	}
	s.transactions = append(s.transactions, tx)
	return tx, nil
}

var _ interfaces.LedgerStore = (*Store)(nil)

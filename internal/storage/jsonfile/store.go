// Package jsonfile persists the cash desk state as two pretty-printed JSON
// documents in a data directory: clients.json and transactions.json. Every
// mutation rewrites the affected collection in full, replacing the file
// atomically (temp file + rename) so a crash mid-write cannot corrupt the
// previous state.
package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"cashdesk/internal/interfaces"
	"cashdesk/internal/models"
)

func init() {
	// Balances and amounts are stored as plain JSON numbers in the
	// historical file format, not as quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Store is the file-backed LedgerStore.
type Store struct {
	clientsFile      string
	transactionsFile string
}

var _ interfaces.LedgerStore = (*Store)(nil)

// New opens the data directory, creating and seeding it on first run.
// Seeding only applies to files that do not exist yet: re-opening an existing
// directory never resets state.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	s := &Store{
		clientsFile:      filepath.Join(dataDir, "clients.json"),
		transactionsFile: filepath.Join(dataDir, "transactions.json"),
	}
	if err := s.seedDefaults(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) seedDefaults() error {
	if _, err := os.Stat(s.clientsFile); os.IsNotExist(err) {
		if err := writeJSON(s.clientsFile, defaultClients()); err != nil {
			return err
		}
	}
	if _, err := os.Stat(s.transactionsFile); os.IsNotExist(err) {
		if err := writeJSON(s.transactionsFile, []models.Transaction{}); err != nil {
			return err
		}
	}
	return nil
}

func defaultClients() []models.Client {
	return []models.Client{
		{
			ID:            1,
			Name:          "Иванов Иван Иванович",
			AccountNumber: "40817810099910004312",
			Balance:       decimal.RequireFromString("15000.50"),
			Currency:      models.DefaultCurrency,
		},
		{
			ID:            2,
			Name:          "Петрова Анна Сергеевна",
			AccountNumber: "40817810099910004313",
			Balance:       decimal.RequireFromString("75000.00"),
			Currency:      models.DefaultCurrency,
		},
		{
			ID:            3,
			Name:          "Сидоров Алексей Владимирович",
			AccountNumber: "40817810099910004314",
			Balance:       decimal.RequireFromString("25000.75"),
			Currency:      models.DefaultCurrency,
		},
	}
}

// LoadClients returns all clients in file order. A missing or malformed file
// degrades to an empty list rather than an error; callers treat that as an
// empty till.
func (s *Store) LoadClients() []models.Client {
	var clients []models.Client
	if err := readJSON(s.clientsFile, &clients); err != nil {
		return []models.Client{}
	}
	return clients
}

// SaveClients rewrites the whole client collection.
func (s *Store) SaveClients(clients []models.Client) error {
	return writeJSON(s.clientsFile, clients)
}

// GetClientByID does a linear lookup over the persisted collection.
func (s *Store) GetClientByID(id int) (models.Client, bool) {
	for _, client := range s.LoadClients() {
		if client.ID == id {
			return client, true
		}
	}
	return models.Client{}, false
}

// UpdateClientBalance sets a client's balance, rounded to two decimal places,
// and rewrites the collection. Unknown ids are a silent no-op.
func (s *Store) UpdateClientBalance(id int, newBalance decimal.Decimal) error {
	clients := s.LoadClients()
	for i := range clients {
		if clients[i].ID == id {
			clients[i].Balance = newBalance.Round(2)
			return s.SaveClients(clients)
		}
	}
	return nil
}

// LoadTransactions returns all recorded transactions, with the same tolerance
// for missing or malformed storage as LoadClients.
func (s *Store) LoadTransactions() []models.Transaction {
	var transactions []models.Transaction
	if err := readJSON(s.transactionsFile, &transactions); err != nil {
		return []models.Transaction{}
	}
	return transactions
}

// SaveTransaction appends one record and rewrites the collection. When the
// transaction carries no id, the next sequential id (count + 1) is assigned;
// ids therefore keep increasing across process restarts.
func (s *Store) SaveTransaction(tx models.Transaction) (models.Transaction, error) {
	transactions := s.LoadTransactions()
	if tx.ID == 0 {
		tx.ID = len(transactions) + 1
	}
	transactions = append(transactions, tx)
	if err := writeJSON(s.transactionsFile, transactions); err != nil {
		return models.Transaction{}, err
	}
	return tx, nil
}

func readJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(v)
}

// writeJSON replaces path atomically: encode to a temp file, then rename over
// the original.
func writeJSON(path string, v any) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

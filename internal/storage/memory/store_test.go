package memory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cashdesk/internal/models"
	"cashdesk/internal/storage/memory"
)

func TestLoadClientsReturnsCopies(t *testing.T) {
	store := memory.New(models.Client{ID: 1, Name: "A", Balance: decimal.NewFromInt(100)})

	clients := store.LoadClients()
	clients[0].Balance = decimal.NewFromInt(0)

	fresh, ok := store.GetClientByID(1)
	require.True(t, ok)
	assert.True(t, fresh.Balance.Equal(decimal.NewFromInt(100)), "mutating a returned slice must not leak into the store")
}

func TestUpdateClientBalanceRoundsAndIgnoresUnknown(t *testing.T) {
	store := memory.New(models.Client{ID: 1, Name: "A", Balance: decimal.NewFromInt(0)})

	require.NoError(t, store.UpdateClientBalance(1, decimal.RequireFromString("10.005")))
	client, ok := store.GetClientByID(1)
	require.True(t, ok)
	assert.True(t, client.Balance.Equal(decimal.RequireFromString("10.01")))

	require.NoError(t, store.UpdateClientBalance(99, decimal.NewFromInt(5)))
	assert.Len(t, store.LoadClients(), 1)
}

func TestSaveTransactionAssignsIDs(t *testing.T) {
	store := memory.New()

	first, err := store.SaveTransaction(models.Transaction{OperationType: models.OpDeposit, Amount: decimal.NewFromInt(1)})
	require.NoError(t, err)
	second, err := store.SaveTransaction(models.Transaction{OperationType: models.OpWithdrawal, Amount: decimal.NewFromInt(1)})
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

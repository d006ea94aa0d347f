package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cashdesk/internal/models"
	"cashdesk/internal/storage/memory"
)

const testTimestamp = "2024-05-01 12:30:00"

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestLedger(t *testing.T) (*Ledger, *memory.Store) {
	t.Helper()
	store := memory.New(
		models.Client{ID: 1, Name: "Иванов Иван Иванович", AccountNumber: "40817810099910004312", Balance: dec("15000.50"), Currency: "RUB"},
		models.Client{ID: 2, Name: "Петрова Анна Сергеевна", AccountNumber: "40817810099910004313", Balance: dec("75000.00"), Currency: "RUB"},
	)
	l := New(store)
	l.now = func() string { return testTimestamp }
	return l, store
}

func balance(t *testing.T, l *Ledger, id int) decimal.Decimal {
	t.Helper()
	client, ok := l.ClientByID(id)
	require.True(t, ok, "client %d", id)
	return client.Balance
}

func TestDeposit(t *testing.T) {
	l, _ := newTestLedger(t)

	tx, err := l.Deposit(1, dec("500"), "")
	require.NoError(t, err)

	assert.True(t, balance(t, l, 1).Equal(dec("15500.50")))
	assert.Equal(t, 1, tx.ID)
	assert.Equal(t, testTimestamp, tx.Timestamp)
	assert.Equal(t, models.OpDeposit, tx.OperationType)
	assert.True(t, tx.Amount.Equal(dec("500")))
	assert.Equal(t, "Иванов Иван Иванович", tx.ClientName)
	assert.Equal(t, "Пополнение счёта", tx.Description)
	assert.Nil(t, tx.TargetClient)

	require.Len(t, l.History(), 1)
}

func TestDepositCustomDescription(t *testing.T) {
	l, _ := newTestLedger(t)

	tx, err := l.Deposit(1, dec("10"), "взнос по договору")
	require.NoError(t, err)
	assert.Equal(t, "взнос по договору", tx.Description)
}

func TestDepositUnknownClient(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.Deposit(99, dec("500"), "")
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.Empty(t, l.History())
}

func TestDepositRounding(t *testing.T) {
	l, _ := newTestLedger(t)

	// 15000.50 + 0.005 rounds half away from zero to 15000.51.
	_, err := l.Deposit(1, dec("0.005"), "")
	require.NoError(t, err)
	assert.True(t, balance(t, l, 1).Equal(dec("15000.51")))
}

func TestWithdraw(t *testing.T) {
	l, _ := newTestLedger(t)

	tx, err := l.Withdraw(1, dec("1000.50"), "")
	require.NoError(t, err)

	assert.True(t, balance(t, l, 1).Equal(dec("14000.00")))
	assert.Equal(t, models.OpWithdrawal, tx.OperationType)
	assert.Equal(t, "Снятие наличных", tx.Description)
	assert.Nil(t, tx.TargetClient)
}

func TestWithdrawInsufficientFunds(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.Withdraw(1, dec("15000.51"), "")
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// Nothing was persisted.
	assert.True(t, balance(t, l, 1).Equal(dec("15000.50")))
	assert.Empty(t, l.History())
}

func TestWithdrawExactBalance(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.Withdraw(1, dec("15000.50"), "")
	require.NoError(t, err)
	assert.True(t, balance(t, l, 1).IsZero())
}

func TestWithdrawUnknownClient(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.Withdraw(99, dec("1"), "")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestTransfer(t *testing.T) {
	l, _ := newTestLedger(t)

	tx, err := l.Transfer(1, 2, dec("5000.50"), "")
	require.NoError(t, err)

	assert.True(t, balance(t, l, 1).Equal(dec("10000.00")))
	assert.True(t, balance(t, l, 2).Equal(dec("80000.50")))

	assert.Equal(t, models.OpTransfer, tx.OperationType)
	assert.Equal(t, "Иванов Иван Иванович", tx.ClientName)
	require.NotNil(t, tx.TargetClient)
	assert.Equal(t, "Петрова Анна Сергеевна", *tx.TargetClient)
	assert.Equal(t, "Перевод клиенту Петрова Анна Сергеевна", tx.Description)

	// Exactly one record for both sides of the transfer.
	require.Len(t, l.History(), 1)
}

func TestTransferToSelf(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.Transfer(1, 1, dec("1"), "")
	assert.ErrorIs(t, err, ErrSelfTransfer)
	assert.True(t, balance(t, l, 1).Equal(dec("15000.50")))
	assert.Empty(t, l.History())
}

func TestTransferUnknownClient(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.Transfer(1, 99, dec("1"), "")
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = l.Transfer(99, 1, dec("1"), "")
	assert.ErrorIs(t, err, ErrClientNotFound)

	assert.Empty(t, l.History())
}

func TestTransferInsufficientFunds(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.Transfer(1, 2, dec("15000.51"), "")
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	assert.True(t, balance(t, l, 1).Equal(dec("15000.50")))
	assert.True(t, balance(t, l, 2).Equal(dec("75000.00")))
	assert.Empty(t, l.History())
}

func TestTransactionIDsSequential(t *testing.T) {
	l, _ := newTestLedger(t)

	first, err := l.Deposit(1, dec("1"), "")
	require.NoError(t, err)
	second, err := l.Withdraw(1, dec("1"), "")
	require.NoError(t, err)
	third, err := l.Transfer(1, 2, dec("1"), "")
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 3, third.ID)
}

func TestClientsAndHistoryAreFreshReads(t *testing.T) {
	l, store := newTestLedger(t)

	before := l.Clients()
	_, err := l.Deposit(1, dec("100"), "")
	require.NoError(t, err)

	// The slice returned earlier is a snapshot; a re-query sees the mutation.
	assert.True(t, before[0].Balance.Equal(dec("15000.50")))
	assert.True(t, balance(t, l, 1).Equal(dec("15100.50")))

	stored := store.LoadTransactions()
	require.Len(t, stored, 1)
	assert.Equal(t, models.OpDeposit, stored[0].OperationType)
}

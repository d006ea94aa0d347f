package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Operation type labels are stored verbatim in transactions.json and must
// match the historical data format.
const (
	OpDeposit    = "Внесение средств"
	OpWithdrawal = "Снятие средств"
	OpTransfer   = "Перевод другому клиенту"
)

// Default descriptions applied when the operator leaves the field blank.
const (
	DescDeposit    = "Пополнение счёта"
	DescWithdrawal = "Снятие наличных"
)

// TransferDescription builds the default description for a transfer.
func TransferDescription(targetName string) string {
	return "Перевод клиенту " + targetName
}

// TimestampLayout is the wall-clock format of transaction timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// CurrentTimestamp returns the local time at second precision.
func CurrentTimestamp() string {
	return time.Now().Format(TimestampLayout)
}

// Transaction is an immutable record of one ledger mutation. ID is zero until
// the store assigns it. ClientName and TargetClient are snapshots of display
// names at the time of the operation, not live references: renaming a client
// does not rewrite history.
type Transaction struct {
	ID            int             `json:"id"`
	Timestamp     string          `json:"timestamp"`
	OperationType string          `json:"operation_type"`
	Amount        decimal.Decimal `json:"amount"`
	ClientName    string          `json:"client_name"`
	Description   string          `json:"description"`
	TargetClient  *string         `json:"target_client"`
}

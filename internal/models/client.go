package models

import "github.com/shopspring/decimal"

// DefaultCurrency is assigned to clients whose records do not carry a code.
const DefaultCurrency = "RUB"

// Client is an account holder serviced by the cash desk.
type Client struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	AccountNumber string          `json:"account_number"`
	Balance       decimal.Decimal `json:"balance"`
	Currency      string          `json:"currency"`
}

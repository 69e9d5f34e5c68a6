package models

import "github.com/shopspring/decimal"

type Transaction struct {
	ID              int             `json:"id"`
	UserID          int             `json:"user_id"`
	AccountID       int             `json:"account_id"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description,omitempty"`
	Category        string          `json:"category,omitempty"`
	TransactionType string          `json:"transaction_type"`
	Date            string          `json:"date"`
	CreatedAt       string          `json:"created_at,omitempty"`
}

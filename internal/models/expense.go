package models

import "github.com/shopspring/decimal"

type Expense struct {
	ID          int             `json:"id"`
	UserID      int             `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Date        string          `json:"date"`
	CreatedAt   string          `json:"created_at,omitempty"`
}

package models

import "github.com/shopspring/decimal"

type Income struct {
	ID          int             `json:"id"`
	UserID      int             `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	IncomeType  string          `json:"income_type"`
	Source      string          `json:"source"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
	CreatedAt   string          `json:"created_at,omitempty"`
}

package models

import "github.com/shopspring/decimal"

type Budget struct {
	ID        int             `json:"id"`
	UserID    int             `json:"user_id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Period    string          `json:"period"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	CreatedAt string          `json:"created_at,omitempty"`
}

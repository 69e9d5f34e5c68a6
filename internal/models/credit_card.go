package models

import "github.com/shopspring/decimal"

type CreditCard struct {
	ID              int             `json:"id"`
	UserID          int             `json:"user_id"`
	CardName        string          `json:"card_name"`
	CardType        string          `json:"card_type"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	AvailableCredit decimal.Decimal `json:"available_credit"`
	DueDate         string          `json:"due_date,omitempty"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	AnnualFee       decimal.Decimal `json:"annual_fee"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       string          `json:"created_at,omitempty"`
	UpdatedAt       string          `json:"updated_at,omitempty"`
}

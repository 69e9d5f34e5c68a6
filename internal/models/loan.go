package models

import "github.com/shopspring/decimal"

type Loan struct {
	ID             int             `json:"id"`
	UserID         int             `json:"user_id"`
	LoanType       string          `json:"loan_type"`
	Lender         string          `json:"lender"`
	OriginalAmount decimal.Decimal `json:"original_amount"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	LoanTerm       int             `json:"loan_term"`
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date"`
	Status         string          `json:"status"`
	CreatedAt      string          `json:"created_at,omitempty"`
	UpdatedAt      string          `json:"updated_at,omitempty"`
}

type LoanPayment struct {
	ID              int             `json:"id"`
	LoanID          int             `json:"loan_id"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentDate     string          `json:"payment_date"`
	PrincipalAmount decimal.Decimal `json:"principal_amount"`
	InterestAmount  decimal.Decimal `json:"interest_amount"`
	CreatedAt       string          `json:"created_at,omitempty"`
}

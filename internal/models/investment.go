package models

import "github.com/shopspring/decimal"

type Investment struct {
	ID             int              `json:"id"`
	UserID         int              `json:"user_id"`
	InvestmentType string           `json:"investment_type"`
	Name           string           `json:"name"`
	Symbol         string           `json:"symbol,omitempty"`
	Quantity       decimal.Decimal  `json:"quantity"`
	PurchasePrice  decimal.Decimal  `json:"purchase_price"`
	CurrentPrice   *decimal.Decimal `json:"current_price,omitempty"`
	PurchaseDate   string           `json:"purchase_date"`
	CreatedAt      string           `json:"created_at,omitempty"`
	UpdatedAt      string           `json:"updated_at,omitempty"`
}

// CurrentValue is quantity times the current price, falling back to the
// purchase price when no current price is recorded.
func (inv Investment) CurrentValue() decimal.Decimal {
	price := inv.PurchasePrice
	if inv.CurrentPrice != nil {
		price = *inv.CurrentPrice
	}
	return inv.Quantity.Mul(price)
}

package models

import "github.com/shopspring/decimal"

// DashboardStats is the headline figure block of the dashboard.
type DashboardStats struct {
	TotalBalance    decimal.Decimal `json:"total_balance"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	Investments     decimal.Decimal `json:"investments"`
	SavingsGoal     decimal.Decimal `json:"savings_goal"`
}

type RecentTransaction struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Type   string          `json:"type"`
	Time   string          `json:"time"`
}

type BudgetOverviewItem struct {
	Category   string          `json:"category"`
	Spent      decimal.Decimal `json:"spent"`
	Budget     decimal.Decimal `json:"budget"`
	Percentage float64         `json:"percentage"`
}

type InvestmentAllocationItem struct {
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}

type DashboardResponse struct {
	Stats                DashboardStats             `json:"stats"`
	RecentTransactions   []RecentTransaction        `json:"recent_transactions"`
	BudgetOverview       []BudgetOverviewItem       `json:"budget_overview"`
	InvestmentAllocation []InvestmentAllocationItem `json:"investment_allocation"`
}

type MonthlyTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

type FinancialStats struct {
	MonthlyIncome     []MonthlyTotal  `json:"monthly_income"`
	MonthlyExpenses   []MonthlyTotal  `json:"monthly_expenses"`
	ExpenseByCategory []CategoryTotal `json:"expense_by_category"`
}

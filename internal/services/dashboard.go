// Package services computes the dashboard facets as pure functions over row
// slices fetched by the handlers. Every facet defaults to zero or empty when
// the caller has no matching rows; none of them can fail.
package services

import (
	"sort"
	"time"

	"financify/internal/models"
	"financify/pkg/utils"

	"github.com/shopspring/decimal"
)

var savingsRate = decimal.NewFromFloat(0.2)

func startOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// TotalBalance sums the balances of active accounts.
func TotalBalance(accounts []models.Account) decimal.Decimal {
	total := decimal.Zero
	for _, account := range accounts {
		if account.IsActive {
			total = total.Add(account.Balance)
		}
	}
	return total
}

// MonthlyExpenseTotal sums expenses dated on or after the first of the
// current month.
func MonthlyExpenseTotal(expenses []models.Expense, now time.Time) decimal.Decimal {
	monthStart := startOfMonth(now)
	total := decimal.Zero
	for _, expense := range expenses {
		date, err := utils.ParseTime(expense.Date)
		if err != nil {
			continue
		}
		if !date.Before(monthStart) {
			total = total.Add(expense.Amount)
		}
	}
	return total
}

// TotalInvestmentValue sums current values across all investments.
func TotalInvestmentValue(investments []models.Investment) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range investments {
		total = total.Add(inv.CurrentValue())
	}
	return total
}

// SavingsGoal is 20% of the income received since the start of the current
// month, zero when there was none.
func SavingsGoal(income []models.Income, now time.Time) decimal.Decimal {
	monthStart := startOfMonth(now)
	total := decimal.Zero
	for _, inc := range income {
		date, err := utils.ParseTime(inc.Date)
		if err != nil {
			continue
		}
		if !date.Before(monthStart) {
			total = total.Add(inc.Amount)
		}
	}
	if total.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return total.Mul(savingsRate)
}

// RecentTransactions returns the most recent transactions as display rows,
// ordered by date descending with insertion order breaking ties.
func RecentTransactions(transactions []models.Transaction, limit int) []models.RecentTransaction {
	sorted := make([]models.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date > sorted[j].Date
		}
		return sorted[i].ID < sorted[j].ID
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	recent := []models.RecentTransaction{}
	for _, tx := range sorted {
		name := tx.Description
		if name == "" {
			name = "Transaction"
		}
		formatted := tx.Date
		if date, err := utils.ParseTime(tx.Date); err == nil {
			formatted = date.Format("2006-01-02 15:04")
		}
		recent = append(recent, models.RecentTransaction{
			Name:   name,
			Amount: tx.Amount,
			Type:   tx.TransactionType,
			Time:   formatted,
		})
	}
	return recent
}

// BudgetOverview reports spend against every budget whose window contains
// now. A zero budget amount yields a zero percentage, never an error.
func BudgetOverview(budgets []models.Budget, expenses []models.Expense, now time.Time) []models.BudgetOverviewItem {
	overview := []models.BudgetOverviewItem{}
	for _, budget := range budgets {
		start, err := utils.ParseTime(budget.StartDate)
		if err != nil {
			continue
		}
		end, err := utils.ParseTime(budget.EndDate)
		if err != nil {
			continue
		}
		if now.Before(start) || now.After(end) {
			continue
		}

		spent := decimal.Zero
		for _, expense := range expenses {
			if expense.Category != budget.Category {
				continue
			}
			date, err := utils.ParseTime(expense.Date)
			if err != nil {
				continue
			}
			if !date.Before(start) && !date.After(end) {
				spent = spent.Add(expense.Amount)
			}
		}

		percentage := 0.0
		if budget.Amount.IsPositive() {
			percentage = spent.Mul(decimal.NewFromInt(100)).Div(budget.Amount).InexactFloat64()
		}

		overview = append(overview, models.BudgetOverviewItem{
			Category:   budget.Category,
			Spent:      spent,
			Budget:     budget.Amount,
			Percentage: percentage,
		})
	}
	return overview
}

// InvestmentAllocation reports each investment's current value and its share
// of the total. All shares are zero when the total is zero.
func InvestmentAllocation(investments []models.Investment) []models.InvestmentAllocationItem {
	allocation := []models.InvestmentAllocationItem{}
	total := decimal.Zero
	for _, inv := range investments {
		value := inv.CurrentValue()
		total = total.Add(value)
		allocation = append(allocation, models.InvestmentAllocationItem{
			Type:   inv.InvestmentType,
			Amount: value,
		})
	}

	if total.IsPositive() {
		for i := range allocation {
			allocation[i].Percentage = allocation[i].Amount.Mul(decimal.NewFromInt(100)).Div(total).InexactFloat64()
		}
	}
	return allocation
}

// BuildSnapshot assembles the dashboard from independently computed facets.
func BuildSnapshot(
	accounts []models.Account,
	transactions []models.Transaction,
	income []models.Income,
	expenses []models.Expense,
	investments []models.Investment,
	budgets []models.Budget,
	now time.Time,
) models.DashboardResponse {
	return models.DashboardResponse{
		Stats: models.DashboardStats{
			TotalBalance:    TotalBalance(accounts),
			MonthlyExpenses: MonthlyExpenseTotal(expenses, now),
			Investments:     TotalInvestmentValue(investments),
			SavingsGoal:     SavingsGoal(income, now),
		},
		RecentTransactions:   RecentTransactions(transactions, 5),
		BudgetOverview:       BudgetOverview(budgets, expenses, now),
		InvestmentAllocation: InvestmentAllocation(investments),
	}
}

type datedAmount struct {
	date   string
	amount decimal.Decimal
}

// monthlyTotals groups amounts by calendar month ("YYYY-MM"), most recent
// first, keeping at most limit months. Silent months are absent.
func monthlyTotals(entries []datedAmount, limit int) []models.MonthlyTotal {
	byMonth := map[string]decimal.Decimal{}
	for _, entry := range entries {
		date, err := utils.ParseTime(entry.date)
		if err != nil {
			continue
		}
		month := date.Format("2006-01")
		byMonth[month] = byMonth[month].Add(entry.amount)
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	if len(months) > limit {
		months = months[:limit]
	}

	totals := []models.MonthlyTotal{}
	for _, month := range months {
		totals = append(totals, models.MonthlyTotal{Month: month, Total: byMonth[month]})
	}
	return totals
}

// ExpenseByCategory totals expenses per category over the trailing 30 days.
func ExpenseByCategory(expenses []models.Expense, now time.Time) []models.CategoryTotal {
	cutoff := now.AddDate(0, 0, -30)
	byCategory := map[string]decimal.Decimal{}
	for _, expense := range expenses {
		date, err := utils.ParseTime(expense.Date)
		if err != nil {
			continue
		}
		if date.Before(cutoff) {
			continue
		}
		byCategory[expense.Category] = byCategory[expense.Category].Add(expense.Amount)
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	totals := []models.CategoryTotal{}
	for _, category := range categories {
		totals = append(totals, models.CategoryTotal{Category: category, Total: byCategory[category]})
	}
	return totals
}

// BuildStats assembles the income/expense trends and the category breakdown.
func BuildStats(income []models.Income, expenses []models.Expense, now time.Time) models.FinancialStats {
	incomeEntries := make([]datedAmount, 0, len(income))
	for _, inc := range income {
		incomeEntries = append(incomeEntries, datedAmount{date: inc.Date, amount: inc.Amount})
	}
	expenseEntries := make([]datedAmount, 0, len(expenses))
	for _, expense := range expenses {
		expenseEntries = append(expenseEntries, datedAmount{date: expense.Date, amount: expense.Amount})
	}

	return models.FinancialStats{
		MonthlyIncome:     monthlyTotals(incomeEntries, 6),
		MonthlyExpenses:   monthlyTotals(expenseEntries, 6),
		ExpenseByCategory: ExpenseByCategory(expenses, now),
	}
}

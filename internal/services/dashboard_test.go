package services

import (
	"testing"
	"time"

	"financify/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTotalBalanceSkipsInactiveAccounts(t *testing.T) {
	accounts := []models.Account{
		{Name: "Main", Balance: dec("5000"), IsActive: true},
		{Name: "Savings", Balance: dec("1500"), IsActive: true},
		{Name: "Closed", Balance: dec("999"), IsActive: false},
	}

	assert.True(t, dec("6500").Equal(TotalBalance(accounts)))
}

func TestTotalBalanceEmpty(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(TotalBalance(nil)))
}

func TestMonthlyExpenseTotalOnlyCurrentMonth(t *testing.T) {
	expenses := []models.Expense{
		{Amount: dec("100"), Date: "2026-03-01 00:00:00"},
		{Amount: dec("50.25"), Date: "2026-03-14 09:30:00"},
		{Amount: dec("400"), Date: "2026-02-28 23:59:59"},
		{Amount: dec("10"), Date: "not-a-date"},
	}

	assert.True(t, dec("150.25").Equal(MonthlyExpenseTotal(expenses, testNow)))
}

func TestSavingsGoalIsTwentyPercentOfMonthlyIncome(t *testing.T) {
	income := []models.Income{
		{Amount: dec("3000"), Date: "2026-03-01 00:00:00"},
		{Amount: dec("2000"), Date: "2026-03-10 00:00:00"},
		{Amount: dec("9999"), Date: "2026-01-15 00:00:00"},
	}

	assert.True(t, dec("1000").Equal(SavingsGoal(income, testNow)))
}

func TestSavingsGoalZeroWithoutIncome(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(SavingsGoal(nil, testNow)))

	old := []models.Income{{Amount: dec("5000"), Date: "2025-12-01 00:00:00"}}
	assert.True(t, decimal.Zero.Equal(SavingsGoal(old, testNow)))
}

func TestTotalInvestmentValuePrefersCurrentPrice(t *testing.T) {
	current := dec("12")
	investments := []models.Investment{
		{Quantity: dec("10"), PurchasePrice: dec("5"), CurrentPrice: &current},
		{Quantity: dec("3"), PurchasePrice: dec("100")},
	}

	// 10*12 + 3*100
	assert.True(t, dec("420").Equal(TotalInvestmentValue(investments)))
}

func TestRecentTransactionsOrderAndLimit(t *testing.T) {
	transactions := []models.Transaction{
		{ID: 1, Amount: dec("10"), TransactionType: "expense", Description: "Groceries", Date: "2026-03-10 08:00:00"},
		{ID: 2, Amount: dec("20"), TransactionType: "income", Description: "", Date: "2026-03-14 08:00:00"},
		{ID: 3, Amount: dec("30"), TransactionType: "expense", Description: "Fuel", Date: "2026-03-14 08:00:00"},
		{ID: 4, Amount: dec("40"), TransactionType: "expense", Description: "Rent", Date: "2026-03-01 08:00:00"},
	}

	recent := RecentTransactions(transactions, 3)
	require.Len(t, recent, 3)

	// date desc, insertion order on equal dates
	assert.Equal(t, "Transaction", recent[0].Name)
	assert.Equal(t, "Fuel", recent[1].Name)
	assert.Equal(t, "Groceries", recent[2].Name)
	assert.Equal(t, "2026-03-14 08:00", recent[0].Time)
}

func TestRecentTransactionsEmpty(t *testing.T) {
	recent := RecentTransactions(nil, 5)
	assert.NotNil(t, recent)
	assert.Empty(t, recent)
}

func TestBudgetOverviewWindowAndPercentage(t *testing.T) {
	budgets := []models.Budget{
		{Category: "food", Amount: dec("500"), StartDate: "2026-03-01 00:00:00", EndDate: "2026-03-31 23:59:59"},
		{Category: "transport", Amount: dec("200"), StartDate: "2026-01-01 00:00:00", EndDate: "2026-01-31 23:59:59"},
	}
	expenses := []models.Expense{
		{Category: "food", Amount: dec("125"), Date: "2026-03-05 10:00:00"},
		{Category: "food", Amount: dec("125"), Date: "2026-03-12 10:00:00"},
		{Category: "food", Amount: dec("300"), Date: "2026-02-20 10:00:00"},
		{Category: "transport", Amount: dec("50"), Date: "2026-03-08 10:00:00"},
	}

	overview := BudgetOverview(budgets, expenses, testNow)
	require.Len(t, overview, 1, "expired budget windows are excluded")

	assert.Equal(t, "food", overview[0].Category)
	assert.True(t, dec("250").Equal(overview[0].Spent))
	assert.True(t, dec("500").Equal(overview[0].Budget))
	assert.InDelta(t, 50.0, overview[0].Percentage, 0.001)
}

func TestBudgetOverviewZeroAmountBudget(t *testing.T) {
	budgets := []models.Budget{
		{Category: "food", Amount: decimal.Zero, StartDate: "2026-03-01 00:00:00", EndDate: "2026-03-31 23:59:59"},
	}
	expenses := []models.Expense{
		{Category: "food", Amount: dec("80"), Date: "2026-03-10 10:00:00"},
	}

	overview := BudgetOverview(budgets, expenses, testNow)
	require.Len(t, overview, 1)
	assert.Equal(t, 0.0, overview[0].Percentage)
	assert.True(t, dec("80").Equal(overview[0].Spent))
}

func TestInvestmentAllocationPercentages(t *testing.T) {
	investments := []models.Investment{
		{InvestmentType: "stocks", Quantity: dec("10"), PurchasePrice: dec("30")},
		{InvestmentType: "crypto", Quantity: dec("1"), PurchasePrice: dec("100")},
	}

	allocation := InvestmentAllocation(investments)
	require.Len(t, allocation, 2)
	assert.InDelta(t, 75.0, allocation[0].Percentage, 0.001)
	assert.InDelta(t, 25.0, allocation[1].Percentage, 0.001)
}

func TestInvestmentAllocationZeroTotal(t *testing.T) {
	investments := []models.Investment{
		{InvestmentType: "stocks", Quantity: dec("5"), PurchasePrice: decimal.Zero},
	}

	allocation := InvestmentAllocation(investments)
	require.Len(t, allocation, 1)
	assert.Equal(t, 0.0, allocation[0].Percentage)
}

func TestBuildSnapshotEmptyUser(t *testing.T) {
	snapshot := BuildSnapshot(nil, nil, nil, nil, nil, nil, testNow)

	assert.True(t, decimal.Zero.Equal(snapshot.Stats.TotalBalance))
	assert.True(t, decimal.Zero.Equal(snapshot.Stats.MonthlyExpenses))
	assert.True(t, decimal.Zero.Equal(snapshot.Stats.Investments))
	assert.True(t, decimal.Zero.Equal(snapshot.Stats.SavingsGoal))
	assert.Empty(t, snapshot.RecentTransactions)
	assert.Empty(t, snapshot.BudgetOverview)
	assert.Empty(t, snapshot.InvestmentAllocation)
}

func TestBuildStatsMonthGroupingAndLimit(t *testing.T) {
	income := []models.Income{}
	for month := 1; month <= 8; month++ {
		income = append(income, models.Income{
			Amount: dec("100"),
			Date:   time.Date(2025, time.Month(month), 10, 0, 0, 0, 0, time.UTC).Format("2006-01-02 15:04:05"),
		})
	}
	income = append(income, models.Income{Amount: dec("50"), Date: "2025-08-20 00:00:00"})

	stats := BuildStats(income, nil, testNow)

	require.Len(t, stats.MonthlyIncome, 6, "keeps the six most recent months")
	assert.Equal(t, "2025-08", stats.MonthlyIncome[0].Month)
	assert.True(t, dec("150").Equal(stats.MonthlyIncome[0].Total))
	assert.Equal(t, "2025-03", stats.MonthlyIncome[5].Month)
	assert.Empty(t, stats.MonthlyExpenses)
}

func TestExpenseByCategoryThirtyDayWindow(t *testing.T) {
	expenses := []models.Expense{
		{Category: "food", Amount: dec("40"), Date: "2026-03-10 00:00:00"},
		{Category: "food", Amount: dec("60"), Date: "2026-02-20 00:00:00"},
		{Category: "transport", Amount: dec("25"), Date: "2026-03-01 00:00:00"},
		{Category: "shopping", Amount: dec("500"), Date: "2026-01-01 00:00:00"},
	}

	totals := ExpenseByCategory(expenses, testNow)
	require.Len(t, totals, 2, "expenses older than 30 days are excluded")

	assert.Equal(t, "food", totals[0].Category)
	assert.True(t, dec("100").Equal(totals[0].Total))
	assert.Equal(t, "transport", totals[1].Category)
	assert.True(t, dec("25").Equal(totals[1].Total))
}

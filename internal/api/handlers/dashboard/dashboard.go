package dashboard

import (
	"database/sql"
	"net/http"
	"time"

	"financify/internal/api/handlers"
	"financify/internal/models"
	"financify/internal/repositories/sqlconnect"
	"financify/internal/services"
	"financify/pkg/utils"

	"github.com/shopspring/decimal"
)

func fetchAccounts(db *sql.DB, userID int) ([]models.Account, error) {
	rows, err := db.Query(`
		SELECT id, user_id, name, account_type, balance, currency, is_active
		FROM accounts WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var account models.Account
		if err := rows.Scan(&account.ID, &account.UserID, &account.Name, &account.AccountType, &account.Balance, &account.Currency, &account.IsActive); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func fetchTransactions(db *sql.DB, userID int) ([]models.Transaction, error) {
	rows, err := db.Query(`
		SELECT id, user_id, account_id, amount, COALESCE(description, ''), COALESCE(category, ''), transaction_type, date
		FROM transactions WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.AccountID, &tx.Amount, &tx.Description, &tx.Category, &tx.TransactionType, &tx.Date); err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

func fetchIncome(db *sql.DB, userID int) ([]models.Income, error) {
	rows, err := db.Query(`
		SELECT id, user_id, amount, income_type, source, date
		FROM income WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	income := []models.Income{}
	for rows.Next() {
		var inc models.Income
		if err := rows.Scan(&inc.ID, &inc.UserID, &inc.Amount, &inc.IncomeType, &inc.Source, &inc.Date); err != nil {
			return nil, err
		}
		income = append(income, inc)
	}
	return income, rows.Err()
}

func fetchExpenses(db *sql.DB, userID int) ([]models.Expense, error) {
	rows, err := db.Query(`
		SELECT id, user_id, amount, category, COALESCE(description, ''), date
		FROM expenses WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var expense models.Expense
		if err := rows.Scan(&expense.ID, &expense.UserID, &expense.Amount, &expense.Category, &expense.Description, &expense.Date); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func fetchInvestments(db *sql.DB, userID int) ([]models.Investment, error) {
	rows, err := db.Query(`
		SELECT id, user_id, investment_type, name, COALESCE(symbol, ''), quantity, purchase_price, current_price, purchase_date
		FROM investments WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	investments := []models.Investment{}
	for rows.Next() {
		var inv models.Investment
		var current decimal.NullDecimal
		if err := rows.Scan(&inv.ID, &inv.UserID, &inv.InvestmentType, &inv.Name, &inv.Symbol, &inv.Quantity, &inv.PurchasePrice, &current, &inv.PurchaseDate); err != nil {
			return nil, err
		}
		if current.Valid {
			inv.CurrentPrice = &current.Decimal
		}
		investments = append(investments, inv)
	}
	return investments, rows.Err()
}

func fetchBudgets(db *sql.DB, userID int) ([]models.Budget, error) {
	rows, err := db.Query(`
		SELECT id, user_id, category, amount, period, start_date, end_date
		FROM budgets WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	budgets := []models.Budget{}
	for rows.Next() {
		var budget models.Budget
		if err := rows.Scan(&budget.ID, &budget.UserID, &budget.Category, &budget.Amount, &budget.Period, &budget.StartDate, &budget.EndDate); err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}

// FUNC TO BUILD THE DASHBOARD OVERVIEW
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	userID, ok := handlers.CallerID(r)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	accounts, err := fetchAccounts(db, userID)
	if err != nil {
		utils.Logger.Errorf("error fetching accounts: %v", err)
		utils.WriteError(w, "error building dashboard", http.StatusInternalServerError)
		return
	}
	transactions, err := fetchTransactions(db, userID)
	if err != nil {
		utils.Logger.Errorf("error fetching transactions: %v", err)
		utils.WriteError(w, "error building dashboard", http.StatusInternalServerError)
		return
	}
	income, err := fetchIncome(db, userID)
	if err != nil {
		utils.Logger.Errorf("error fetching income: %v", err)
		utils.WriteError(w, "error building dashboard", http.StatusInternalServerError)
		return
	}
	expenses, err := fetchExpenses(db, userID)
	if err != nil {
		utils.Logger.Errorf("error fetching expenses: %v", err)
		utils.WriteError(w, "error building dashboard", http.StatusInternalServerError)
		return
	}
	investments, err := fetchInvestments(db, userID)
	if err != nil {
		utils.Logger.Errorf("error fetching investments: %v", err)
		utils.WriteError(w, "error building dashboard", http.StatusInternalServerError)
		return
	}
	budgets, err := fetchBudgets(db, userID)
	if err != nil {
		utils.Logger.Errorf("error fetching budgets: %v", err)
		utils.WriteError(w, "error building dashboard", http.StatusInternalServerError)
		return
	}

	snapshot := services.BuildSnapshot(accounts, transactions, income, expenses, investments, budgets, time.Now())
	utils.WriteJSON(w, snapshot)
}

// FUNC TO BUILD THE FINANCIAL STATS
func GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	userID, ok := handlers.CallerID(r)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	income, err := fetchIncome(db, userID)
	if err != nil {
		utils.Logger.Errorf("error fetching income: %v", err)
		utils.WriteError(w, "error building stats", http.StatusInternalServerError)
		return
	}
	expenses, err := fetchExpenses(db, userID)
	if err != nil {
		utils.Logger.Errorf("error fetching expenses: %v", err)
		utils.WriteError(w, "error building stats", http.StatusInternalServerError)
		return
	}

	stats := services.BuildStats(income, expenses, time.Now())
	utils.WriteJSON(w, stats)
}

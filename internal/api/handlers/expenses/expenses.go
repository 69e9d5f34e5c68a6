package expenses

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"financify/internal/api/handlers"
	"financify/internal/models"
	"financify/internal/repositories/sqlconnect"
	"financify/pkg/utils"

	"github.com/shopspring/decimal"
)

const selectColumns = "id, user_id, amount, category, COALESCE(description, ''), date"

func scanExpense(scanner interface{ Scan(...any) error }, expense *models.Expense) error {
	return scanner.Scan(&expense.ID, &expense.UserID, &expense.Amount, &expense.Category, &expense.Description, &expense.Date)
}

// FUNC TO GET ALL EXPENSES FOR A USER
func GetAllExpensesHandler(w http.ResponseWriter, r *http.Request) {
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

	rows, err := db.Query("SELECT "+selectColumns+" FROM expenses WHERE user_id = ?", userID)
	if err != nil {
		utils.Logger.Errorf("error fetching expenses: %v", err)
		utils.WriteError(w, "error fetching expenses", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var expense models.Expense
		if err := scanExpense(rows, &expense); err != nil {
			utils.Logger.Errorf("error scanning expense: %v", err)
			utils.WriteError(w, "error fetching expenses", http.StatusInternalServerError)
			return
		}
		expenses = append(expenses, expense)
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"count":  len(expenses),
		"data":   expenses,
	})
}

// FUNC TO CREATE AN EXPENSE
func CreateExpenseHandler(w http.ResponseWriter, r *http.Request) {
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

	var expense models.Expense
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&expense); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := handlers.ValidateChoice("expense category", expense.Category, handlers.ExpenseCategories); err != nil {
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if expense.Amount.IsNegative() {
		utils.WriteError(w, "amount cannot be negative", http.StatusUnprocessableEntity)
		return
	}

	date, err := handlers.NormalizeDate(expense.Date)
	if err != nil {
		utils.WriteError(w, "invalid date", http.StatusUnprocessableEntity)
		return
	}
	expense.Date = date
	expense.UserID = userID
	expense.CreatedAt = utils.FormatTime(time.Now())

	res, err := db.Exec(`
		INSERT INTO expenses (user_id, amount, category, description, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		expense.UserID, expense.Amount, expense.Category, expense.Description, expense.Date, expense.CreatedAt)
	if err != nil {
		utils.Logger.Errorf("failed to insert expense: %v", err)
		utils.WriteError(w, "error creating expense", http.StatusInternalServerError)
		return
	}

	id, _ := res.LastInsertId()
	expense.ID = int(id)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"data":   expense,
	})
}

// FUNC TO GET ONE EXPENSE BY ID
func GetExpenseByIDHandler(w http.ResponseWriter, r *http.Request) {
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

	expenseID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid expense id", http.StatusUnprocessableEntity)
		return
	}

	var expense models.Expense
	row := db.QueryRow("SELECT "+selectColumns+" FROM expenses WHERE id = ? AND user_id = ?", expenseID, userID)
	if err := scanExpense(row, &expense); err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "expense not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("error fetching expense: %v", err)
		utils.WriteError(w, "error fetching expense", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   expense,
	})
}

// FUNC TO UPDATE AN EXPENSE (PARTIAL)
func UpdateExpenseHandler(w http.ResponseWriter, r *http.Request) {
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

	expenseID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid expense id", http.StatusUnprocessableEntity)
		return
	}

	type updateRequest struct {
		Amount      *decimal.Decimal `json:"amount"`
		Category    *string          `json:"category"`
		Description *string          `json:"description"`
		Date        *string          `json:"date"`
	}

	var req updateRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var expense models.Expense
	row := db.QueryRow("SELECT "+selectColumns+" FROM expenses WHERE id = ? AND user_id = ?", expenseID, userID)
	if err := scanExpense(row, &expense); err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "expense not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("error fetching expense: %v", err)
		utils.WriteError(w, "error updating expense", http.StatusInternalServerError)
		return
	}

	if req.Amount != nil {
		if req.Amount.IsNegative() {
			utils.WriteError(w, "amount cannot be negative", http.StatusUnprocessableEntity)
			return
		}
		expense.Amount = *req.Amount
	}
	if req.Category != nil {
		if err := handlers.ValidateChoice("expense category", *req.Category, handlers.ExpenseCategories); err != nil {
			utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		expense.Category = *req.Category
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Date != nil {
		date, err := handlers.NormalizeDate(*req.Date)
		if err != nil {
			utils.WriteError(w, "invalid date", http.StatusUnprocessableEntity)
			return
		}
		expense.Date = date
	}

	_, err = db.Exec(`
		UPDATE expenses SET amount = ?, category = ?, description = ?, date = ?
		WHERE id = ? AND user_id = ?`,
		expense.Amount, expense.Category, expense.Description, expense.Date, expenseID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to update expense: %v", err)
		utils.WriteError(w, "error updating expense", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   expense,
	})
}

// FUNC TO DELETE AN EXPENSE
func DeleteExpenseHandler(w http.ResponseWriter, r *http.Request) {
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

	expenseID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid expense id", http.StatusUnprocessableEntity)
		return
	}

	res, err := db.Exec("DELETE FROM expenses WHERE id = ? AND user_id = ?", expenseID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to delete expense: %v", err)
		utils.WriteError(w, "error deleting expense", http.StatusInternalServerError)
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		utils.WriteError(w, "expense not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status":  "success",
		"message": "expense deleted successfully",
	})
}

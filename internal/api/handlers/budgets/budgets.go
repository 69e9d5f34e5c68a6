package budgets

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

const selectColumns = "id, user_id, category, amount, period, start_date, end_date"

func scanBudget(scanner interface{ Scan(...any) error }, budget *models.Budget) error {
	return scanner.Scan(&budget.ID, &budget.UserID, &budget.Category, &budget.Amount, &budget.Period, &budget.StartDate, &budget.EndDate)
}

// FUNC TO GET ALL BUDGETS FOR A USER
func GetAllBudgetsHandler(w http.ResponseWriter, r *http.Request) {
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

	rows, err := db.Query("SELECT "+selectColumns+" FROM budgets WHERE user_id = ?", userID)
	if err != nil {
		utils.Logger.Errorf("error fetching budgets: %v", err)
		utils.WriteError(w, "error fetching budgets", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	budgets := []models.Budget{}
	for rows.Next() {
		var budget models.Budget
		if err := scanBudget(rows, &budget); err != nil {
			utils.Logger.Errorf("error scanning budget: %v", err)
			utils.WriteError(w, "error fetching budgets", http.StatusInternalServerError)
			return
		}
		budgets = append(budgets, budget)
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"count":  len(budgets),
		"data":   budgets,
	})
}

// FUNC TO CREATE A BUDGET
func CreateBudgetHandler(w http.ResponseWriter, r *http.Request) {
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

	var budget models.Budget
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&budget); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if budget.Period == "" {
		budget.Period = "monthly"
	}

	if err := handlers.ValidateChoice("budget category", budget.Category, handlers.ExpenseCategories); err != nil {
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err := handlers.ValidateChoice("budget period", budget.Period, handlers.BudgetPeriods); err != nil {
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if budget.Amount.IsNegative() {
		utils.WriteError(w, "amount cannot be negative", http.StatusUnprocessableEntity)
		return
	}

	startDate, err := handlers.NormalizeDate(budget.StartDate)
	if err != nil {
		utils.WriteError(w, "invalid start date", http.StatusUnprocessableEntity)
		return
	}
	endDate, err := handlers.NormalizeDate(budget.EndDate)
	if err != nil {
		utils.WriteError(w, "invalid end date", http.StatusUnprocessableEntity)
		return
	}
	if endDate < startDate {
		utils.WriteError(w, "end date cannot be before start date", http.StatusUnprocessableEntity)
		return
	}
	budget.StartDate = startDate
	budget.EndDate = endDate
	budget.UserID = userID
	budget.CreatedAt = utils.FormatTime(time.Now())

	res, err := db.Exec(`
		INSERT INTO budgets (user_id, category, amount, period, start_date, end_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		budget.UserID, budget.Category, budget.Amount, budget.Period, budget.StartDate, budget.EndDate, budget.CreatedAt)
	if err != nil {
		utils.Logger.Errorf("failed to insert budget: %v", err)
		utils.WriteError(w, "error creating budget", http.StatusInternalServerError)
		return
	}

	id, _ := res.LastInsertId()
	budget.ID = int(id)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"data":   budget,
	})
}

// FUNC TO GET ONE BUDGET BY ID
func GetBudgetByIDHandler(w http.ResponseWriter, r *http.Request) {
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

	budgetID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid budget id", http.StatusUnprocessableEntity)
		return
	}

	var budget models.Budget
	row := db.QueryRow("SELECT "+selectColumns+" FROM budgets WHERE id = ? AND user_id = ?", budgetID, userID)
	if err := scanBudget(row, &budget); err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "budget not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("error fetching budget: %v", err)
		utils.WriteError(w, "error fetching budget", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   budget,
	})
}

// FUNC TO UPDATE A BUDGET (PARTIAL)
func UpdateBudgetHandler(w http.ResponseWriter, r *http.Request) {
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

	budgetID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid budget id", http.StatusUnprocessableEntity)
		return
	}

	type updateRequest struct {
		Amount    *decimal.Decimal `json:"amount"`
		Period    *string          `json:"period"`
		StartDate *string          `json:"start_date"`
		EndDate   *string          `json:"end_date"`
	}

	var req updateRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var budget models.Budget
	row := db.QueryRow("SELECT "+selectColumns+" FROM budgets WHERE id = ? AND user_id = ?", budgetID, userID)
	if err := scanBudget(row, &budget); err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "budget not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("error fetching budget: %v", err)
		utils.WriteError(w, "error updating budget", http.StatusInternalServerError)
		return
	}

	if req.Amount != nil {
		if req.Amount.IsNegative() {
			utils.WriteError(w, "amount cannot be negative", http.StatusUnprocessableEntity)
			return
		}
		budget.Amount = *req.Amount
	}
	if req.Period != nil {
		if err := handlers.ValidateChoice("budget period", *req.Period, handlers.BudgetPeriods); err != nil {
			utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		budget.Period = *req.Period
	}
	if req.StartDate != nil {
		startDate, err := handlers.NormalizeDate(*req.StartDate)
		if err != nil {
			utils.WriteError(w, "invalid start date", http.StatusUnprocessableEntity)
			return
		}
		budget.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := handlers.NormalizeDate(*req.EndDate)
		if err != nil {
			utils.WriteError(w, "invalid end date", http.StatusUnprocessableEntity)
			return
		}
		budget.EndDate = endDate
	}
	if budget.EndDate < budget.StartDate {
		utils.WriteError(w, "end date cannot be before start date", http.StatusUnprocessableEntity)
		return
	}

	_, err = db.Exec(`
		UPDATE budgets SET amount = ?, period = ?, start_date = ?, end_date = ?
		WHERE id = ? AND user_id = ?`,
		budget.Amount, budget.Period, budget.StartDate, budget.EndDate, budgetID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to update budget: %v", err)
		utils.WriteError(w, "error updating budget", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   budget,
	})
}

// FUNC TO DELETE A BUDGET
func DeleteBudgetHandler(w http.ResponseWriter, r *http.Request) {
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

	budgetID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid budget id", http.StatusUnprocessableEntity)
		return
	}

	res, err := db.Exec("DELETE FROM budgets WHERE id = ? AND user_id = ?", budgetID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to delete budget: %v", err)
		utils.WriteError(w, "error deleting budget", http.StatusInternalServerError)
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		utils.WriteError(w, "budget not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status":  "success",
		"message": "budget deleted successfully",
	})
}

package income

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"financify/internal/api/handlers"
	"financify/internal/models"
	"financify/internal/repositories/sqlconnect"
	"financify/pkg/utils"

	"github.com/shopspring/decimal"
)

const selectColumns = "id, user_id, amount, income_type, source, date, COALESCE(description, '')"

func scanIncome(scanner interface{ Scan(...any) error }, inc *models.Income) error {
	return scanner.Scan(&inc.ID, &inc.UserID, &inc.Amount, &inc.IncomeType, &inc.Source, &inc.Date, &inc.Description)
}

// FUNC TO GET ALL INCOME FOR A USER
func GetAllIncomeHandler(w http.ResponseWriter, r *http.Request) {
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

	rows, err := db.Query("SELECT "+selectColumns+" FROM income WHERE user_id = ?", userID)
	if err != nil {
		utils.Logger.Errorf("error fetching income: %v", err)
		utils.WriteError(w, "error fetching income", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	incomeList := []models.Income{}
	for rows.Next() {
		var inc models.Income
		if err := scanIncome(rows, &inc); err != nil {
			utils.Logger.Errorf("error scanning income: %v", err)
			utils.WriteError(w, "error fetching income", http.StatusInternalServerError)
			return
		}
		incomeList = append(incomeList, inc)
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"count":  len(incomeList),
		"data":   incomeList,
	})
}

// FUNC TO CREATE AN INCOME RECORD
func CreateIncomeHandler(w http.ResponseWriter, r *http.Request) {
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

	var inc models.Income
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&inc); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	inc.Source = strings.TrimSpace(inc.Source)
	if inc.Source == "" {
		utils.WriteError(w, "source cannot be empty", http.StatusUnprocessableEntity)
		return
	}
	if err := handlers.ValidateChoice("income type", inc.IncomeType, handlers.IncomeTypes); err != nil {
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if inc.Amount.IsNegative() {
		utils.WriteError(w, "amount cannot be negative", http.StatusUnprocessableEntity)
		return
	}

	date, err := handlers.NormalizeDate(inc.Date)
	if err != nil {
		utils.WriteError(w, "invalid date", http.StatusUnprocessableEntity)
		return
	}
	inc.Date = date
	inc.UserID = userID
	inc.CreatedAt = utils.FormatTime(time.Now())

	res, err := db.Exec(`
		INSERT INTO income (user_id, amount, income_type, source, date, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inc.UserID, inc.Amount, inc.IncomeType, inc.Source, inc.Date, inc.Description, inc.CreatedAt)
	if err != nil {
		utils.Logger.Errorf("failed to insert income: %v", err)
		utils.WriteError(w, "error creating income", http.StatusInternalServerError)
		return
	}

	id, _ := res.LastInsertId()
	inc.ID = int(id)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"data":   inc,
	})
}

// FUNC TO GET ONE INCOME RECORD BY ID
func GetIncomeByIDHandler(w http.ResponseWriter, r *http.Request) {
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

	incomeID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid income id", http.StatusUnprocessableEntity)
		return
	}

	var inc models.Income
	row := db.QueryRow("SELECT "+selectColumns+" FROM income WHERE id = ? AND user_id = ?", incomeID, userID)
	if err := scanIncome(row, &inc); err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "income not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("error fetching income: %v", err)
		utils.WriteError(w, "error fetching income", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   inc,
	})
}

// FUNC TO UPDATE AN INCOME RECORD (PARTIAL)
func UpdateIncomeHandler(w http.ResponseWriter, r *http.Request) {
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

	incomeID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid income id", http.StatusUnprocessableEntity)
		return
	}

	type updateRequest struct {
		Amount      *decimal.Decimal `json:"amount"`
		IncomeType  *string          `json:"income_type"`
		Source      *string          `json:"source"`
		Date        *string          `json:"date"`
		Description *string          `json:"description"`
	}

	var req updateRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var inc models.Income
	row := db.QueryRow("SELECT "+selectColumns+" FROM income WHERE id = ? AND user_id = ?", incomeID, userID)
	if err := scanIncome(row, &inc); err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "income not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("error fetching income: %v", err)
		utils.WriteError(w, "error updating income", http.StatusInternalServerError)
		return
	}

	if req.Amount != nil {
		if req.Amount.IsNegative() {
			utils.WriteError(w, "amount cannot be negative", http.StatusUnprocessableEntity)
			return
		}
		inc.Amount = *req.Amount
	}
	if req.IncomeType != nil {
		if err := handlers.ValidateChoice("income type", *req.IncomeType, handlers.IncomeTypes); err != nil {
			utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		inc.IncomeType = *req.IncomeType
	}
	if req.Source != nil {
		source := strings.TrimSpace(*req.Source)
		if source == "" {
			utils.WriteError(w, "source cannot be empty", http.StatusUnprocessableEntity)
			return
		}
		inc.Source = source
	}
	if req.Date != nil {
		date, err := handlers.NormalizeDate(*req.Date)
		if err != nil {
			utils.WriteError(w, "invalid date", http.StatusUnprocessableEntity)
			return
		}
		inc.Date = date
	}
	if req.Description != nil {
		inc.Description = *req.Description
	}

	_, err = db.Exec(`
		UPDATE income SET amount = ?, income_type = ?, source = ?, date = ?, description = ?
		WHERE id = ? AND user_id = ?`,
		inc.Amount, inc.IncomeType, inc.Source, inc.Date, inc.Description, incomeID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to update income: %v", err)
		utils.WriteError(w, "error updating income", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   inc,
	})
}

// FUNC TO DELETE AN INCOME RECORD
func DeleteIncomeHandler(w http.ResponseWriter, r *http.Request) {
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

	incomeID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid income id", http.StatusUnprocessableEntity)
		return
	}

	res, err := db.Exec("DELETE FROM income WHERE id = ? AND user_id = ?", incomeID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to delete income: %v", err)
		utils.WriteError(w, "error deleting income", http.StatusInternalServerError)
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		utils.WriteError(w, "income not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status":  "success",
		"message": "income deleted successfully",
	})
}

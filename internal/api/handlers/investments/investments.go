package investments

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

const selectColumns = "id, user_id, investment_type, name, COALESCE(symbol, ''), quantity, purchase_price, current_price, purchase_date"

func scanInvestment(scanner interface{ Scan(...any) error }, inv *models.Investment) error {
	var current decimal.NullDecimal
	err := scanner.Scan(&inv.ID, &inv.UserID, &inv.InvestmentType, &inv.Name, &inv.Symbol, &inv.Quantity, &inv.PurchasePrice, &current, &inv.PurchaseDate)
	if err != nil {
		return err
	}
	if current.Valid {
		inv.CurrentPrice = &current.Decimal
	}
	return nil
}

// FUNC TO GET ALL INVESTMENTS FOR A USER
func GetAllInvestmentsHandler(w http.ResponseWriter, r *http.Request) {
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

	rows, err := db.Query("SELECT "+selectColumns+" FROM investments WHERE user_id = ?", userID)
	if err != nil {
		utils.Logger.Errorf("error fetching investments: %v", err)
		utils.WriteError(w, "error fetching investments", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	investments := []models.Investment{}
	for rows.Next() {
		var inv models.Investment
		if err := scanInvestment(rows, &inv); err != nil {
			utils.Logger.Errorf("error scanning investment: %v", err)
			utils.WriteError(w, "error fetching investments", http.StatusInternalServerError)
			return
		}
		investments = append(investments, inv)
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"count":  len(investments),
		"data":   investments,
	})
}

// FUNC TO CREATE AN INVESTMENT
func CreateInvestmentHandler(w http.ResponseWriter, r *http.Request) {
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

	var inv models.Investment
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&inv); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	inv.Name = strings.TrimSpace(inv.Name)
	if inv.Name == "" {
		utils.WriteError(w, "investment name cannot be empty", http.StatusUnprocessableEntity)
		return
	}
	if err := handlers.ValidateChoice("investment type", inv.InvestmentType, handlers.InvestmentTypes); err != nil {
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if !inv.Quantity.IsPositive() {
		utils.WriteError(w, "quantity must be greater than 0", http.StatusUnprocessableEntity)
		return
	}
	if inv.PurchasePrice.IsNegative() {
		utils.WriteError(w, "purchase price cannot be negative", http.StatusUnprocessableEntity)
		return
	}
	if inv.CurrentPrice != nil && inv.CurrentPrice.IsNegative() {
		utils.WriteError(w, "current price cannot be negative", http.StatusUnprocessableEntity)
		return
	}

	purchaseDate, err := handlers.NormalizeDate(inv.PurchaseDate)
	if err != nil {
		utils.WriteError(w, "invalid purchase date", http.StatusUnprocessableEntity)
		return
	}
	inv.PurchaseDate = purchaseDate
	inv.UserID = userID
	inv.CreatedAt = utils.FormatTime(time.Now())

	currentPrice := decimal.NullDecimal{}
	if inv.CurrentPrice != nil {
		currentPrice = decimal.NullDecimal{Decimal: *inv.CurrentPrice, Valid: true}
	}

	res, err := db.Exec(`
		INSERT INTO investments (user_id, investment_type, name, symbol, quantity, purchase_price, current_price, purchase_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.UserID, inv.InvestmentType, inv.Name, inv.Symbol, inv.Quantity, inv.PurchasePrice, currentPrice, inv.PurchaseDate, inv.CreatedAt)
	if err != nil {
		utils.Logger.Errorf("failed to insert investment: %v", err)
		utils.WriteError(w, "error creating investment", http.StatusInternalServerError)
		return
	}

	id, _ := res.LastInsertId()
	inv.ID = int(id)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"data":   inv,
	})
}

// FUNC TO GET ONE INVESTMENT BY ID
func GetInvestmentByIDHandler(w http.ResponseWriter, r *http.Request) {
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

	investmentID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid investment id", http.StatusUnprocessableEntity)
		return
	}

	var inv models.Investment
	row := db.QueryRow("SELECT "+selectColumns+" FROM investments WHERE id = ? AND user_id = ?", investmentID, userID)
	if err := scanInvestment(row, &inv); err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "investment not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("error fetching investment: %v", err)
		utils.WriteError(w, "error fetching investment", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   inv,
	})
}

// FUNC TO UPDATE AN INVESTMENT (PARTIAL)
func UpdateInvestmentHandler(w http.ResponseWriter, r *http.Request) {
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

	investmentID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid investment id", http.StatusUnprocessableEntity)
		return
	}

	type updateRequest struct {
		Name         *string          `json:"name"`
		Quantity     *decimal.Decimal `json:"quantity"`
		CurrentPrice *decimal.Decimal `json:"current_price"`
	}

	var req updateRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var inv models.Investment
	row := db.QueryRow("SELECT "+selectColumns+" FROM investments WHERE id = ? AND user_id = ?", investmentID, userID)
	if err := scanInvestment(row, &inv); err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "investment not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("error fetching investment: %v", err)
		utils.WriteError(w, "error updating investment", http.StatusInternalServerError)
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			utils.WriteError(w, "investment name cannot be empty", http.StatusUnprocessableEntity)
			return
		}
		inv.Name = name
	}
	if req.Quantity != nil {
		if !req.Quantity.IsPositive() {
			utils.WriteError(w, "quantity must be greater than 0", http.StatusUnprocessableEntity)
			return
		}
		inv.Quantity = *req.Quantity
	}
	if req.CurrentPrice != nil {
		if req.CurrentPrice.IsNegative() {
			utils.WriteError(w, "current price cannot be negative", http.StatusUnprocessableEntity)
			return
		}
		price := *req.CurrentPrice
		inv.CurrentPrice = &price
	}
	inv.UpdatedAt = utils.FormatTime(time.Now())

	currentPrice := decimal.NullDecimal{}
	if inv.CurrentPrice != nil {
		currentPrice = decimal.NullDecimal{Decimal: *inv.CurrentPrice, Valid: true}
	}

	_, err = db.Exec(`
		UPDATE investments SET name = ?, quantity = ?, current_price = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		inv.Name, inv.Quantity, currentPrice, inv.UpdatedAt, investmentID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to update investment: %v", err)
		utils.WriteError(w, "error updating investment", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   inv,
	})
}

// FUNC TO DELETE AN INVESTMENT
func DeleteInvestmentHandler(w http.ResponseWriter, r *http.Request) {
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

	investmentID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid investment id", http.StatusUnprocessableEntity)
		return
	}

	res, err := db.Exec("DELETE FROM investments WHERE id = ? AND user_id = ?", investmentID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to delete investment: %v", err)
		utils.WriteError(w, "error deleting investment", http.StatusInternalServerError)
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		utils.WriteError(w, "investment not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status":  "success",
		"message": "investment deleted successfully",
	})
}

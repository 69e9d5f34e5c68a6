package transactions

import (
	"context"
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

// FUNC TO GET ALL TRANSACTIONS FOR A USER
func GetAllTransactionsHandler(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	page, limit := utils.GetPaginationParams(r)
	offset := (page - 1) * limit

	query := `
		SELECT id, user_id, account_id, amount, COALESCE(description, ''), COALESCE(category, ''), transaction_type, date
		FROM transactions
		WHERE user_id = ?
	`
	query = utils.AddSorting(r, query)
	query += " LIMIT ? OFFSET ?"

	rows, err := db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		utils.Logger.Errorf("error fetching transactions: %v", err)
		utils.WriteError(w, "error fetching transactions", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var transaction models.Transaction
		err = rows.Scan(&transaction.ID, &transaction.UserID, &transaction.AccountID, &transaction.Amount, &transaction.Description, &transaction.Category, &transaction.TransactionType, &transaction.Date)
		if err != nil {
			utils.Logger.Errorf("error fetching data: %v", err)
			utils.WriteError(w, "error fetching transactions", http.StatusInternalServerError)
			return
		}
		transactions = append(transactions, transaction)
	}

	response := struct {
		Status   string               `json:"status"`
		Count    int                  `json:"count"`
		Page     int                  `json:"page"`
		PageSize int                  `json:"page_size"`
		Data     []models.Transaction `json:"data"`
	}{
		Status:   "success",
		Count:    len(transactions),
		Page:     page,
		PageSize: limit,
		Data:     transactions,
	}

	utils.WriteJSON(w, response)
}

// FUNC TO CREATE A TRANSACTION
func CreateTransactionHandler(w http.ResponseWriter, r *http.Request) {
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

	var transaction models.Transaction
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&transaction); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := handlers.ValidateChoice("transaction type", transaction.TransactionType, handlers.TransactionTypes); err != nil {
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	date, err := handlers.NormalizeDate(transaction.Date)
	if err != nil {
		utils.WriteError(w, "invalid date", http.StatusUnprocessableEntity)
		return
	}
	transaction.Date = date

	// the target account must belong to the caller
	var accountID int
	err = db.QueryRow("SELECT id FROM accounts WHERE id = ? AND user_id = ?", transaction.AccountID, userID).Scan(&accountID)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "account not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("error checking account: %v", err)
		utils.WriteError(w, "error creating transaction", http.StatusInternalServerError)
		return
	}

	transaction.UserID = userID
	transaction.CreatedAt = utils.FormatTime(time.Now())

	res, err := db.Exec(`
		INSERT INTO transactions (user_id, account_id, amount, description, category, transaction_type, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		transaction.UserID, transaction.AccountID, transaction.Amount, transaction.Description, transaction.Category, transaction.TransactionType, transaction.Date, transaction.CreatedAt)
	if err != nil {
		utils.Logger.Errorf("failed to insert transaction: %v", err)
		utils.WriteError(w, "error creating transaction", http.StatusInternalServerError)
		return
	}

	id, _ := res.LastInsertId()
	transaction.ID = int(id)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"data":   transaction,
	})
}

// FUNC TO GET ONE TRANSACTION BY ID
func GetTransactionByIDHandler(w http.ResponseWriter, r *http.Request) {
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

	transactionID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid transaction id", http.StatusUnprocessableEntity)
		return
	}

	var transaction models.Transaction
	err = db.QueryRow(`
		SELECT id, user_id, account_id, amount, COALESCE(description, ''), COALESCE(category, ''), transaction_type, date
		FROM transactions
		WHERE id = ? AND user_id = ?`, transactionID, userID).
		Scan(&transaction.ID, &transaction.UserID, &transaction.AccountID, &transaction.Amount, &transaction.Description, &transaction.Category, &transaction.TransactionType, &transaction.Date)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "transaction not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("error fetching transaction: %v", err)
		utils.WriteError(w, "error fetching transaction", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   transaction,
	})
}

// FUNC TO UPDATE A TRANSACTION (PARTIAL)
func UpdateTransactionHandler(w http.ResponseWriter, r *http.Request) {
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

	transactionID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid transaction id", http.StatusUnprocessableEntity)
		return
	}

	type updateRequest struct {
		Amount      *decimal.Decimal `json:"amount"`
		Description *string          `json:"description"`
		Category    *string          `json:"category"`
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

	var transaction models.Transaction
	err = db.QueryRow(`
		SELECT id, user_id, account_id, amount, COALESCE(description, ''), COALESCE(category, ''), transaction_type, date
		FROM transactions
		WHERE id = ? AND user_id = ?`, transactionID, userID).
		Scan(&transaction.ID, &transaction.UserID, &transaction.AccountID, &transaction.Amount, &transaction.Description, &transaction.Category, &transaction.TransactionType, &transaction.Date)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "transaction not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("error fetching transaction: %v", err)
		utils.WriteError(w, "error updating transaction", http.StatusInternalServerError)
		return
	}

	if req.Amount != nil {
		transaction.Amount = *req.Amount
	}
	if req.Description != nil {
		transaction.Description = *req.Description
	}
	if req.Category != nil {
		transaction.Category = *req.Category
	}
	if req.Date != nil {
		date, err := handlers.NormalizeDate(*req.Date)
		if err != nil {
			utils.WriteError(w, "invalid date", http.StatusUnprocessableEntity)
			return
		}
		transaction.Date = date
	}

	_, err = db.Exec(`
		UPDATE transactions SET amount = ?, description = ?, category = ?, date = ?
		WHERE id = ? AND user_id = ?`,
		transaction.Amount, transaction.Description, transaction.Category, transaction.Date, transactionID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to update transaction: %v", err)
		utils.WriteError(w, "error updating transaction", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   transaction,
	})
}

// FUNC TO DELETE A TRANSACTION
func DeleteTransactionHandler(w http.ResponseWriter, r *http.Request) {
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

	transactionID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid transaction id", http.StatusUnprocessableEntity)
		return
	}

	res, err := db.Exec("DELETE FROM transactions WHERE id = ? AND user_id = ?", transactionID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to delete transaction: %v", err)
		utils.WriteError(w, "error deleting transaction", http.StatusInternalServerError)
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		utils.WriteError(w, "transaction not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status":  "success",
		"message": "transaction deleted successfully",
	})
}

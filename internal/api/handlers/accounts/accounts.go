package accounts

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

// FUNC TO GET ALL ACCOUNTS FOR A USER
func GetAllAccountsHandler(w http.ResponseWriter, r *http.Request) {
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

	rows, err := db.Query(`
		SELECT id, user_id, name, account_type, balance, currency, is_active
		FROM accounts
		WHERE user_id = ?`, userID)
	if err != nil {
		utils.Logger.Errorf("error fetching accounts: %v", err)
		utils.WriteError(w, "error fetching accounts", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var account models.Account
		err = rows.Scan(&account.ID, &account.UserID, &account.Name, &account.AccountType, &account.Balance, &account.Currency, &account.IsActive)
		if err != nil {
			utils.Logger.Errorf("error scanning account: %v", err)
			utils.WriteError(w, "error fetching accounts", http.StatusInternalServerError)
			return
		}
		accounts = append(accounts, account)
	}

	response := struct {
		Status string           `json:"status"`
		Count  int              `json:"count"`
		Data   []models.Account `json:"data"`
	}{
		Status: "success",
		Count:  len(accounts),
		Data:   accounts,
	}

	utils.WriteJSON(w, response)
}

// FUNC TO CREATE AN ACCOUNT
func CreateAccountHandler(w http.ResponseWriter, r *http.Request) {
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

	var account models.Account
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&account); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	account.Name = strings.TrimSpace(account.Name)
	if account.Currency == "" {
		account.Currency = "USD"
	}

	if account.Name == "" {
		utils.WriteError(w, "account name cannot be empty", http.StatusUnprocessableEntity)
		return
	}
	if err := handlers.ValidateChoice("account type", account.AccountType, handlers.AccountTypes); err != nil {
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if account.Balance.IsNegative() {
		utils.WriteError(w, "balance cannot be negative", http.StatusUnprocessableEntity)
		return
	}
	if len(account.Currency) != 3 {
		utils.WriteError(w, "currency must be a 3-letter code", http.StatusUnprocessableEntity)
		return
	}

	account.UserID = userID
	account.IsActive = true
	account.CreatedAt = utils.FormatTime(time.Now())

	res, err := db.Exec(`
		INSERT INTO accounts (user_id, name, account_type, balance, currency, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		account.UserID, account.Name, account.AccountType, account.Balance, account.Currency, account.IsActive, account.CreatedAt)
	if err != nil {
		utils.Logger.Errorf("failed to insert account: %v", err)
		utils.WriteError(w, "error creating account", http.StatusInternalServerError)
		return
	}

	id, err := res.LastInsertId()
	if err != nil {
		utils.Logger.Errorf("failed to get last insert ID: %v", err)
		utils.WriteError(w, "error creating account", http.StatusInternalServerError)
		return
	}
	account.ID = int(id)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"data":   account,
	})
}

func scanAccount(row *sql.Row, account *models.Account) error {
	return row.Scan(&account.ID, &account.UserID, &account.Name, &account.AccountType, &account.Balance, &account.Currency, &account.IsActive)
}

// FUNC TO GET ONE ACCOUNT BY ID
func GetAccountByIDHandler(w http.ResponseWriter, r *http.Request) {
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

	accountID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid account id", http.StatusUnprocessableEntity)
		return
	}

	var account models.Account
	row := db.QueryRow(`
		SELECT id, user_id, name, account_type, balance, currency, is_active
		FROM accounts
		WHERE id = ? AND user_id = ?`, accountID, userID)
	if err := scanAccount(row, &account); err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "account not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("error fetching account: %v", err)
		utils.WriteError(w, "error fetching account", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   account,
	})
}

// FUNC TO UPDATE AN ACCOUNT (PARTIAL)
func UpdateAccountHandler(w http.ResponseWriter, r *http.Request) {
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

	accountID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid account id", http.StatusUnprocessableEntity)
		return
	}

	type updateRequest struct {
		Name     *string          `json:"name"`
		Balance  *decimal.Decimal `json:"balance"`
		IsActive *bool            `json:"is_active"`
	}

	var req updateRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var account models.Account
	row := db.QueryRow(`
		SELECT id, user_id, name, account_type, balance, currency, is_active
		FROM accounts
		WHERE id = ? AND user_id = ?`, accountID, userID)
	if err := scanAccount(row, &account); err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "account not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("error fetching account: %v", err)
		utils.WriteError(w, "error fetching account", http.StatusInternalServerError)
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			utils.WriteError(w, "account name cannot be empty", http.StatusUnprocessableEntity)
			return
		}
		account.Name = name
	}
	if req.Balance != nil {
		if req.Balance.IsNegative() {
			utils.WriteError(w, "balance cannot be negative", http.StatusUnprocessableEntity)
			return
		}
		account.Balance = *req.Balance
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.UpdatedAt = utils.FormatTime(time.Now())

	_, err = db.Exec(`
		UPDATE accounts SET name = ?, balance = ?, is_active = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		account.Name, account.Balance, account.IsActive, account.UpdatedAt, accountID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to update account: %v", err)
		utils.WriteError(w, "error updating account", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   account,
	})
}

// FUNC TO DELETE AN ACCOUNT
func DeleteAccountHandler(w http.ResponseWriter, r *http.Request) {
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

	accountID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid account id", http.StatusUnprocessableEntity)
		return
	}

	res, err := db.Exec("DELETE FROM accounts WHERE id = ? AND user_id = ?", accountID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to delete account: %v", err)
		utils.WriteError(w, "error deleting account", http.StatusInternalServerError)
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		utils.Logger.Errorf("failed to read rows affected: %v", err)
		utils.WriteError(w, "error deleting account", http.StatusInternalServerError)
		return
	}
	if affected == 0 {
		utils.WriteError(w, "account not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status":  "success",
		"message": "account deleted successfully",
	})
}

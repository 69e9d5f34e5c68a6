package creditcards

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

const selectColumns = "id, user_id, card_name, card_type, credit_limit, current_balance, available_credit, COALESCE(due_date, ''), interest_rate, annual_fee, is_active"

func scanCard(scanner interface{ Scan(...any) error }, card *models.CreditCard) error {
	return scanner.Scan(&card.ID, &card.UserID, &card.CardName, &card.CardType, &card.CreditLimit, &card.CurrentBalance, &card.AvailableCredit, &card.DueDate, &card.InterestRate, &card.AnnualFee, &card.IsActive)
}

// FUNC TO GET ALL CREDIT CARDS FOR A USER
func GetAllCreditCardsHandler(w http.ResponseWriter, r *http.Request) {
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

	rows, err := db.Query("SELECT "+selectColumns+" FROM credit_cards WHERE user_id = ?", userID)
	if err != nil {
		utils.Logger.Errorf("error fetching credit cards: %v", err)
		utils.WriteError(w, "error fetching credit cards", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	cards := []models.CreditCard{}
	for rows.Next() {
		var card models.CreditCard
		if err := scanCard(rows, &card); err != nil {
			utils.Logger.Errorf("error scanning credit card: %v", err)
			utils.WriteError(w, "error fetching credit cards", http.StatusInternalServerError)
			return
		}
		cards = append(cards, card)
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"count":  len(cards),
		"data":   cards,
	})
}

// FUNC TO CREATE A CREDIT CARD
func CreateCreditCardHandler(w http.ResponseWriter, r *http.Request) {
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

	// available_credit is shadowed by a pointer so an explicit zero from the
	// client is distinguishable from the field being omitted
	var req struct {
		models.CreditCard
		AvailableCredit *decimal.Decimal `json:"available_credit"`
	}
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	card := req.CreditCard
	card.CardName = strings.TrimSpace(card.CardName)
	if card.CardName == "" {
		utils.WriteError(w, "card name cannot be empty", http.StatusUnprocessableEntity)
		return
	}
	if card.CardType == "" {
		utils.WriteError(w, "card type cannot be empty", http.StatusUnprocessableEntity)
		return
	}
	if card.CreditLimit.IsNegative() || card.CurrentBalance.IsNegative() || card.InterestRate.IsNegative() || card.AnnualFee.IsNegative() {
		utils.WriteError(w, "card amounts cannot be negative", http.StatusUnprocessableEntity)
		return
	}

	if card.DueDate != "" {
		dueDate, err := handlers.NormalizeDate(card.DueDate)
		if err != nil {
			utils.WriteError(w, "invalid due date", http.StatusUnprocessableEntity)
			return
		}
		card.DueDate = dueDate
	}

	// unless the client supplies it, available credit is derived from the limit
	if req.AvailableCredit != nil {
		if req.AvailableCredit.IsNegative() {
			utils.WriteError(w, "card amounts cannot be negative", http.StatusUnprocessableEntity)
			return
		}
		card.AvailableCredit = *req.AvailableCredit
	} else {
		card.AvailableCredit = card.CreditLimit.Sub(card.CurrentBalance)
	}

	card.UserID = userID
	card.IsActive = true
	card.CreatedAt = utils.FormatTime(time.Now())

	dueDate := sql.NullString{String: card.DueDate, Valid: card.DueDate != ""}

	res, err := db.Exec(`
		INSERT INTO credit_cards (user_id, card_name, card_type, credit_limit, current_balance, available_credit, due_date, interest_rate, annual_fee, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		card.UserID, card.CardName, card.CardType, card.CreditLimit, card.CurrentBalance, card.AvailableCredit, dueDate, card.InterestRate, card.AnnualFee, card.IsActive, card.CreatedAt)
	if err != nil {
		utils.Logger.Errorf("failed to insert credit card: %v", err)
		utils.WriteError(w, "error creating credit card", http.StatusInternalServerError)
		return
	}

	id, _ := res.LastInsertId()
	card.ID = int(id)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"data":   card,
	})
}

// FUNC TO GET ONE CREDIT CARD BY ID
func GetCreditCardByIDHandler(w http.ResponseWriter, r *http.Request) {
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

	cardID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid credit card id", http.StatusUnprocessableEntity)
		return
	}

	var card models.CreditCard
	row := db.QueryRow("SELECT "+selectColumns+" FROM credit_cards WHERE id = ? AND user_id = ?", cardID, userID)
	if err := scanCard(row, &card); err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "credit card not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("error fetching credit card: %v", err)
		utils.WriteError(w, "error fetching credit card", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   card,
	})
}

// FUNC TO UPDATE A CREDIT CARD (PARTIAL)
func UpdateCreditCardHandler(w http.ResponseWriter, r *http.Request) {
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

	cardID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid credit card id", http.StatusUnprocessableEntity)
		return
	}

	type updateRequest struct {
		CardName       *string          `json:"card_name"`
		CreditLimit    *decimal.Decimal `json:"credit_limit"`
		CurrentBalance *decimal.Decimal `json:"current_balance"`
		DueDate        *string          `json:"due_date"`
		IsActive       *bool            `json:"is_active"`
	}

	var req updateRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var card models.CreditCard
	row := db.QueryRow("SELECT "+selectColumns+" FROM credit_cards WHERE id = ? AND user_id = ?", cardID, userID)
	if err := scanCard(row, &card); err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "credit card not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("error fetching credit card: %v", err)
		utils.WriteError(w, "error updating credit card", http.StatusInternalServerError)
		return
	}

	if req.CardName != nil {
		name := strings.TrimSpace(*req.CardName)
		if name == "" {
			utils.WriteError(w, "card name cannot be empty", http.StatusUnprocessableEntity)
			return
		}
		card.CardName = name
	}
	if req.CreditLimit != nil {
		if req.CreditLimit.IsNegative() {
			utils.WriteError(w, "credit limit cannot be negative", http.StatusUnprocessableEntity)
			return
		}
		card.CreditLimit = *req.CreditLimit
	}
	if req.CurrentBalance != nil {
		if req.CurrentBalance.IsNegative() {
			utils.WriteError(w, "current balance cannot be negative", http.StatusUnprocessableEntity)
			return
		}
		card.CurrentBalance = *req.CurrentBalance
	}
	if req.CreditLimit != nil || req.CurrentBalance != nil {
		card.AvailableCredit = card.CreditLimit.Sub(card.CurrentBalance)
	}
	if req.DueDate != nil {
		dueDate, err := handlers.NormalizeDate(*req.DueDate)
		if err != nil {
			utils.WriteError(w, "invalid due date", http.StatusUnprocessableEntity)
			return
		}
		card.DueDate = dueDate
	}
	if req.IsActive != nil {
		card.IsActive = *req.IsActive
	}
	card.UpdatedAt = utils.FormatTime(time.Now())

	dueDate := sql.NullString{String: card.DueDate, Valid: card.DueDate != ""}

	_, err = db.Exec(`
		UPDATE credit_cards SET card_name = ?, credit_limit = ?, current_balance = ?, available_credit = ?, due_date = ?, is_active = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		card.CardName, card.CreditLimit, card.CurrentBalance, card.AvailableCredit, dueDate, card.IsActive, card.UpdatedAt, cardID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to update credit card: %v", err)
		utils.WriteError(w, "error updating credit card", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   card,
	})
}

// FUNC TO DELETE A CREDIT CARD
func DeleteCreditCardHandler(w http.ResponseWriter, r *http.Request) {
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

	cardID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid credit card id", http.StatusUnprocessableEntity)
		return
	}

	res, err := db.Exec("DELETE FROM credit_cards WHERE id = ? AND user_id = ?", cardID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to delete credit card: %v", err)
		utils.WriteError(w, "error deleting credit card", http.StatusInternalServerError)
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		utils.WriteError(w, "credit card not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status":  "success",
		"message": "credit card deleted successfully",
	})
}

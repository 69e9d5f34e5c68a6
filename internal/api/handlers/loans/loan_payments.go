package loans

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
)

// resolveLoan checks that the loan exists and belongs to the caller. The
// compound lookup keeps foreign loans indistinguishable from missing ones.
func resolveLoan(db *sql.DB, loanID, userID int) (bool, error) {
	var id int
	err := db.QueryRow("SELECT id FROM loans WHERE id = ? AND user_id = ?", loanID, userID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FUNC TO GET ALL PAYMENTS FOR A LOAN
func GetLoanPaymentsHandler(w http.ResponseWriter, r *http.Request) {
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

	loanID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid loan id", http.StatusUnprocessableEntity)
		return
	}

	owned, err := resolveLoan(db, loanID, userID)
	if err != nil {
		utils.Logger.Errorf("error checking loan: %v", err)
		utils.WriteError(w, "error fetching loan payments", http.StatusInternalServerError)
		return
	}
	if !owned {
		utils.WriteError(w, "loan not found", http.StatusNotFound)
		return
	}

	rows, err := db.Query(`
		SELECT id, loan_id, amount, payment_date, principal_amount, interest_amount
		FROM loan_payments
		WHERE loan_id = ?`, loanID)
	if err != nil {
		utils.Logger.Errorf("error fetching loan payments: %v", err)
		utils.WriteError(w, "error fetching loan payments", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	payments := []models.LoanPayment{}
	for rows.Next() {
		var payment models.LoanPayment
		err = rows.Scan(&payment.ID, &payment.LoanID, &payment.Amount, &payment.PaymentDate, &payment.PrincipalAmount, &payment.InterestAmount)
		if err != nil {
			utils.Logger.Errorf("error scanning loan payment: %v", err)
			utils.WriteError(w, "error fetching loan payments", http.StatusInternalServerError)
			return
		}
		payments = append(payments, payment)
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"count":  len(payments),
		"data":   payments,
	})
}

// FUNC TO RECORD A LOAN PAYMENT
func CreateLoanPaymentHandler(w http.ResponseWriter, r *http.Request) {
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

	loanID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid loan id", http.StatusUnprocessableEntity)
		return
	}

	owned, err := resolveLoan(db, loanID, userID)
	if err != nil {
		utils.Logger.Errorf("error checking loan: %v", err)
		utils.WriteError(w, "error recording payment", http.StatusInternalServerError)
		return
	}
	if !owned {
		utils.WriteError(w, "loan not found", http.StatusNotFound)
		return
	}

	var payment models.LoanPayment
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payment); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if payment.Amount.IsNegative() || payment.PrincipalAmount.IsNegative() || payment.InterestAmount.IsNegative() {
		utils.WriteError(w, "payment amounts cannot be negative", http.StatusUnprocessableEntity)
		return
	}

	paymentDate, err := handlers.NormalizeDate(payment.PaymentDate)
	if err != nil {
		utils.WriteError(w, "invalid payment date", http.StatusUnprocessableEntity)
		return
	}
	payment.PaymentDate = paymentDate
	payment.LoanID = loanID
	payment.CreatedAt = utils.FormatTime(time.Now())

	res, err := db.Exec(`
		INSERT INTO loan_payments (loan_id, amount, payment_date, principal_amount, interest_amount, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		payment.LoanID, payment.Amount, payment.PaymentDate, payment.PrincipalAmount, payment.InterestAmount, payment.CreatedAt)
	if err != nil {
		utils.Logger.Errorf("failed to insert loan payment: %v", err)
		utils.WriteError(w, "error recording payment", http.StatusInternalServerError)
		return
	}

	id, _ := res.LastInsertId()
	payment.ID = int(id)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"data":   payment,
	})
}

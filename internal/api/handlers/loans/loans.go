package loans

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

const selectColumns = "id, user_id, loan_type, lender, original_amount, current_balance, interest_rate, monthly_payment, loan_term, start_date, end_date, status"

func scanLoan(scanner interface{ Scan(...any) error }, loan *models.Loan) error {
	return scanner.Scan(&loan.ID, &loan.UserID, &loan.LoanType, &loan.Lender, &loan.OriginalAmount, &loan.CurrentBalance, &loan.InterestRate, &loan.MonthlyPayment, &loan.LoanTerm, &loan.StartDate, &loan.EndDate, &loan.Status)
}

// FUNC TO GET ALL LOANS FOR A USER
func GetAllLoansHandler(w http.ResponseWriter, r *http.Request) {
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

	rows, err := db.Query("SELECT "+selectColumns+" FROM loans WHERE user_id = ?", userID)
	if err != nil {
		utils.Logger.Errorf("error fetching loans: %v", err)
		utils.WriteError(w, "error fetching loans", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	loans := []models.Loan{}
	for rows.Next() {
		var loan models.Loan
		if err := scanLoan(rows, &loan); err != nil {
			utils.Logger.Errorf("error scanning loan: %v", err)
			utils.WriteError(w, "error fetching loans", http.StatusInternalServerError)
			return
		}
		loans = append(loans, loan)
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"count":  len(loans),
		"data":   loans,
	})
}

// FUNC TO CREATE A LOAN
func CreateLoanHandler(w http.ResponseWriter, r *http.Request) {
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

	var loan models.Loan
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&loan); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	loan.Lender = strings.TrimSpace(loan.Lender)
	if loan.Status == "" {
		loan.Status = "active"
	}

	if loan.Lender == "" {
		utils.WriteError(w, "lender cannot be empty", http.StatusUnprocessableEntity)
		return
	}
	if err := handlers.ValidateChoice("loan type", loan.LoanType, handlers.LoanTypes); err != nil {
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err := handlers.ValidateChoice("loan status", loan.Status, handlers.LoanStatuses); err != nil {
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if loan.OriginalAmount.IsNegative() || loan.CurrentBalance.IsNegative() || loan.InterestRate.IsNegative() || loan.MonthlyPayment.IsNegative() {
		utils.WriteError(w, "loan amounts cannot be negative", http.StatusUnprocessableEntity)
		return
	}
	if loan.LoanTerm <= 0 {
		utils.WriteError(w, "loan term must be a positive number of months", http.StatusUnprocessableEntity)
		return
	}

	startDate, err := handlers.NormalizeDate(loan.StartDate)
	if err != nil {
		utils.WriteError(w, "invalid start date", http.StatusUnprocessableEntity)
		return
	}
	endDate, err := handlers.NormalizeDate(loan.EndDate)
	if err != nil {
		utils.WriteError(w, "invalid end date", http.StatusUnprocessableEntity)
		return
	}
	loan.StartDate = startDate
	loan.EndDate = endDate
	loan.UserID = userID
	loan.CreatedAt = utils.FormatTime(time.Now())

	res, err := db.Exec(`
		INSERT INTO loans (user_id, loan_type, lender, original_amount, current_balance, interest_rate, monthly_payment, loan_term, start_date, end_date, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		loan.UserID, loan.LoanType, loan.Lender, loan.OriginalAmount, loan.CurrentBalance, loan.InterestRate, loan.MonthlyPayment, loan.LoanTerm, loan.StartDate, loan.EndDate, loan.Status, loan.CreatedAt)
	if err != nil {
		utils.Logger.Errorf("failed to insert loan: %v", err)
		utils.WriteError(w, "error creating loan", http.StatusInternalServerError)
		return
	}

	id, _ := res.LastInsertId()
	loan.ID = int(id)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"data":   loan,
	})
}

// FUNC TO GET ONE LOAN BY ID
func GetLoanByIDHandler(w http.ResponseWriter, r *http.Request) {
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

	var loan models.Loan
	row := db.QueryRow("SELECT "+selectColumns+" FROM loans WHERE id = ? AND user_id = ?", loanID, userID)
	if err := scanLoan(row, &loan); err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "loan not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("error fetching loan: %v", err)
		utils.WriteError(w, "error fetching loan", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   loan,
	})
}

// FUNC TO UPDATE A LOAN (PARTIAL)
func UpdateLoanHandler(w http.ResponseWriter, r *http.Request) {
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

	type updateRequest struct {
		CurrentBalance *decimal.Decimal `json:"current_balance"`
		MonthlyPayment *decimal.Decimal `json:"monthly_payment"`
		Status         *string          `json:"status"`
	}

	var req updateRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var loan models.Loan
	row := db.QueryRow("SELECT "+selectColumns+" FROM loans WHERE id = ? AND user_id = ?", loanID, userID)
	if err := scanLoan(row, &loan); err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "loan not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("error fetching loan: %v", err)
		utils.WriteError(w, "error updating loan", http.StatusInternalServerError)
		return
	}

	if req.CurrentBalance != nil {
		if req.CurrentBalance.IsNegative() {
			utils.WriteError(w, "current balance cannot be negative", http.StatusUnprocessableEntity)
			return
		}
		loan.CurrentBalance = *req.CurrentBalance
	}
	if req.MonthlyPayment != nil {
		if req.MonthlyPayment.IsNegative() {
			utils.WriteError(w, "monthly payment cannot be negative", http.StatusUnprocessableEntity)
			return
		}
		loan.MonthlyPayment = *req.MonthlyPayment
	}
	if req.Status != nil {
		if err := handlers.ValidateChoice("loan status", *req.Status, handlers.LoanStatuses); err != nil {
			utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		loan.Status = *req.Status
	}
	loan.UpdatedAt = utils.FormatTime(time.Now())

	_, err = db.Exec(`
		UPDATE loans SET current_balance = ?, monthly_payment = ?, status = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		loan.CurrentBalance, loan.MonthlyPayment, loan.Status, loan.UpdatedAt, loanID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to update loan: %v", err)
		utils.WriteError(w, "error updating loan", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   loan,
	})
}

// FUNC TO DELETE A LOAN
func DeleteLoanHandler(w http.ResponseWriter, r *http.Request) {
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

	res, err := db.Exec("DELETE FROM loans WHERE id = ? AND user_id = ?", loanID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to delete loan: %v", err)
		utils.WriteError(w, "error deleting loan", http.StatusInternalServerError)
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		utils.WriteError(w, "loan not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status":  "success",
		"message": "loan deleted successfully",
	})
}

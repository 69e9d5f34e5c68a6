package handlers

import (
	"fmt"
	"net/http"

	"financify/pkg/utils"
)

// CallerID extracts the authenticated user's id set by the JWT middleware.
func CallerID(r *http.Request) (int, bool) {
	userID, ok := r.Context().Value(utils.ContextKey("userId")).(int)
	return userID, ok
}

var AccountTypes = map[string]bool{
	"savings":    true,
	"checking":   true,
	"investment": true,
	"credit":     true,
}

var TransactionTypes = map[string]bool{
	"income":   true,
	"expense":  true,
	"transfer": true,
}

var IncomeTypes = map[string]bool{
	"salary":   true,
	"rental":   true,
	"bonus":    true,
	"dividend": true,
	"interest": true,
	"other":    true,
}

var ExpenseCategories = map[string]bool{
	"food":         true,
	"transport":    true,
	"rental":       true,
	"insurance":    true,
	"utilities":    true,
	"vehicle":      true,
	"shopping":     true,
	"subscription": true,
	"other":        true,
}

var LoanTypes = map[string]bool{
	"housing":   true,
	"vehicle":   true,
	"education": true,
	"personal":  true,
}

var LoanStatuses = map[string]bool{
	"active":    true,
	"paid_off":  true,
	"defaulted": true,
}

var InvestmentTypes = map[string]bool{
	"stocks":      true,
	"bonds":       true,
	"crypto":      true,
	"etf":         true,
	"mutual_fund": true,
	"real_estate": true,
}

var BudgetPeriods = map[string]bool{
	"monthly": true,
	"yearly":  true,
}

func ValidateChoice(field, value string, valid map[string]bool) error {
	if !valid[value] {
		return fmt.Errorf("invalid %s %q", field, value)
	}
	return nil
}

// NormalizeDate parses a client-supplied datetime and rewrites it into the
// storage layout.
func NormalizeDate(value string) (string, error) {
	t, err := utils.ParseTime(value)
	if err != nil {
		return "", err
	}
	return utils.FormatTime(t), nil
}

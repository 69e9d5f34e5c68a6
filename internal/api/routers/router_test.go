package routers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	mw "financify/internal/api/middlewares"
	"financify/internal/models"
	"financify/internal/repositories/sqlconnect"
	"financify/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// APITestSuite runs the full router stack against an in-memory database, the
// same middleware chain the server wires up in main.
type APITestSuite struct {
	suite.Suite
	server *httptest.Server
	db     *sql.DB
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) SetupTest() {
	s.T().Setenv("JWT_SECRET", "router-test-secret")
	s.T().Setenv("ALLOWED_ORIGINS", "https://app.example.com")

	db, err := sqlconnect.Open("sqlite", ":memory:")
	require.NoError(s.T(), err, "failed to open test database")
	s.db = db
	sqlconnect.DB = db

	jwtMiddleware := mw.MiddlewaresExcludePaths(mw.JWTMiddleware, "/", "/health", "/auth/register", "/auth/token")
	s.server = httptest.NewServer(mw.Cors(jwtMiddleware(mw.SecurityHeaders(MainRouter()))))
}

func (s *APITestSuite) TearDownTest() {
	s.server.Close()
	sqlconnect.DB = nil
	s.db.Close()
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
}

func (s *APITestSuite) do(method, path, token string, body any) *http.Response {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	require.NoError(s.T(), err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.server.Client().Do(req)
	require.NoError(s.T(), err)
	return resp
}

func (s *APITestSuite) decode(resp *http.Response, target any) envelope {
	defer resp.Body.Close()
	var env envelope
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&env))
	if target != nil && env.Data != nil {
		require.NoError(s.T(), json.Unmarshal(env.Data, target))
	}
	return env
}

func (s *APITestSuite) register(username string) {
	resp := s.do("POST", "/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "pass-" + username,
	})
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode, "registration failed for %s", username)
}

func (s *APITestSuite) login(username string) string {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", "pass-"+username)

	resp, err := s.server.Client().Post(
		s.server.URL+"/auth/token",
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusOK, resp.StatusCode, "login failed for %s", username)

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(s.T(), "bearer", body.TokenType)
	require.NotEmpty(s.T(), body.AccessToken)
	return body.AccessToken
}

func (s *APITestSuite) signup(username string) string {
	s.register(username)
	return s.login(username)
}

func (s *APITestSuite) createAccount(token, name, balance string) models.Account {
	resp := s.do("POST", "/accounts", token, map[string]any{
		"name":         name,
		"account_type": "checking",
		"balance":      balance,
		"currency":     "USD",
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	var account models.Account
	s.decode(resp, &account)
	require.NotZero(s.T(), account.ID)
	return account
}

func (s *APITestSuite) TestRootAndHealthAreOpen() {
	resp, err := s.server.Client().Get(s.server.URL + "/")
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	assert.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var banner map[string]string
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&banner))
	assert.Equal(s.T(), "Welcome to Financify API", banner["message"])
	assert.NotEmpty(s.T(), banner["version"])

	resp, err = s.server.Client().Get(s.server.URL + "/health")
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	assert.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var health map[string]string
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(s.T(), "healthy", health["status"])
}

func (s *APITestSuite) TestRegisterConflicts() {
	s.register("alice")

	// same username, different email
	resp := s.do("POST", "/auth/register", "", map[string]string{
		"username": "alice",
		"email":    "different@example.com",
		"password": "whatever",
	})
	env := s.decode(resp, nil)
	assert.Equal(s.T(), http.StatusConflict, resp.StatusCode)
	assert.Equal(s.T(), "username already registered", env.Message)

	// different username, same email
	resp = s.do("POST", "/auth/register", "", map[string]string{
		"username": "bob",
		"email":    "alice@example.com",
		"password": "whatever",
	})
	env = s.decode(resp, nil)
	assert.Equal(s.T(), http.StatusConflict, resp.StatusCode)
	assert.Equal(s.T(), "email already registered", env.Message)
}

func (s *APITestSuite) TestRegisterValidation() {
	resp := s.do("POST", "/auth/register", "", map[string]string{
		"username": "   ",
		"email":    "x@example.com",
		"password": "pw",
	})
	resp.Body.Close()
	assert.Equal(s.T(), http.StatusUnprocessableEntity, resp.StatusCode)

	resp = s.do("POST", "/auth/register", "", map[string]string{
		"username": "carol",
		"email":    "carol@example.com",
		"password": "pw",
		"role":     "admin",
	})
	resp.Body.Close()
	assert.Equal(s.T(), http.StatusBadRequest, resp.StatusCode, "unknown fields are rejected")
}

func (s *APITestSuite) TestLoginWrongPassword() {
	s.register("alice")

	form := url.Values{}
	form.Set("username", "alice")
	form.Set("password", "not-the-password")

	resp, err := s.server.Client().Post(
		s.server.URL+"/auth/token",
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	assert.Equal(s.T(), http.StatusUnauthorized, resp.StatusCode)
}

func (s *APITestSuite) TestMe() {
	token := s.signup("alice")

	resp := s.do("GET", "/auth/me", token, nil)
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&user))
	assert.Equal(s.T(), "alice", user.Username)
	assert.Equal(s.T(), "alice@example.com", user.Email)
	assert.Empty(s.T(), user.Password)
}

func (s *APITestSuite) TestProtectedRoutesRequireToken() {
	for _, path := range []string{"/accounts", "/dashboard", "/transactions", "/budgets"} {
		resp := s.do("GET", path, "", nil)
		resp.Body.Close()
		assert.Equal(s.T(), http.StatusUnauthorized, resp.StatusCode, "%s without token", path)

		resp = s.do("GET", path, "garbage.token.here", nil)
		resp.Body.Close()
		assert.Equal(s.T(), http.StatusUnauthorized, resp.StatusCode, "%s with invalid token", path)
	}
}

func (s *APITestSuite) TestAccountLifecycle() {
	token := s.signup("alice")

	first := s.createAccount(token, "Main Checking", "5000")
	second := s.createAccount(token, "Savings", "1500")

	resp := s.do("GET", "/accounts", token, nil)
	var accounts []models.Account
	env := s.decode(resp, &accounts)
	assert.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Equal(s.T(), 2, env.Count)
	require.Len(s.T(), accounts, 2)

	s.assertTotalBalance(token, "6500")

	resp = s.do("PUT", fmt.Sprintf("/accounts/%d", first.ID), token, map[string]any{"balance": "5500"})
	var updated models.Account
	s.decode(resp, &updated)
	assert.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.True(s.T(), decimal.RequireFromString("5500").Equal(updated.Balance))

	s.assertTotalBalance(token, "7000")

	resp = s.do("DELETE", fmt.Sprintf("/accounts/%d", second.ID), token, nil)
	resp.Body.Close()
	assert.Equal(s.T(), http.StatusOK, resp.StatusCode)

	resp = s.do("GET", fmt.Sprintf("/accounts/%d", second.ID), token, nil)
	resp.Body.Close()
	assert.Equal(s.T(), http.StatusNotFound, resp.StatusCode)

	s.assertTotalBalance(token, "5500")
}

func (s *APITestSuite) assertTotalBalance(token, want string) {
	s.T().Helper()
	resp := s.do("GET", "/dashboard", token, nil)
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var dashboard models.DashboardResponse
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&dashboard))
	assert.True(s.T(), decimal.RequireFromString(want).Equal(dashboard.Stats.TotalBalance),
		"total_balance = %s, want %s", dashboard.Stats.TotalBalance, want)
}

func (s *APITestSuite) TestInactiveAccountExcludedFromBalance() {
	token := s.signup("alice")

	s.createAccount(token, "Active", "1000")
	idle := s.createAccount(token, "Idle", "800")

	resp := s.do("PUT", fmt.Sprintf("/accounts/%d", idle.ID), token, map[string]any{"is_active": false})
	resp.Body.Close()
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	s.assertTotalBalance(token, "1000")
}

func (s *APITestSuite) TestAccountValidation() {
	token := s.signup("alice")

	resp := s.do("POST", "/accounts", token, map[string]any{
		"name": "Bad", "account_type": "offshore", "balance": "10", "currency": "USD",
	})
	resp.Body.Close()
	assert.Equal(s.T(), http.StatusUnprocessableEntity, resp.StatusCode)

	resp = s.do("POST", "/accounts", token, map[string]any{
		"name": "Bad", "account_type": "checking", "balance": "-10", "currency": "USD",
	})
	resp.Body.Close()
	assert.Equal(s.T(), http.StatusUnprocessableEntity, resp.StatusCode)

	resp = s.do("POST", "/accounts", token, map[string]any{
		"name": "Bad", "account_type": "checking", "balance": "10", "currency": "DOLLARS",
	})
	resp.Body.Close()
	assert.Equal(s.T(), http.StatusUnprocessableEntity, resp.StatusCode)
}

func (s *APITestSuite) TestOwnershipIsolation() {
	aliceToken := s.signup("alice")
	bobToken := s.signup("bob")

	account := s.createAccount(aliceToken, "Alice Checking", "1000")
	path := fmt.Sprintf("/accounts/%d", account.ID)

	resp := s.do("GET", path, bobToken, nil)
	resp.Body.Close()
	assert.Equal(s.T(), http.StatusNotFound, resp.StatusCode)

	resp = s.do("PUT", path, bobToken, map[string]any{"balance": "0"})
	resp.Body.Close()
	assert.Equal(s.T(), http.StatusNotFound, resp.StatusCode)

	resp = s.do("DELETE", path, bobToken, nil)
	resp.Body.Close()
	assert.Equal(s.T(), http.StatusNotFound, resp.StatusCode)

	// and the account is untouched
	resp = s.do("GET", path, aliceToken, nil)
	resp.Body.Close()
	assert.Equal(s.T(), http.StatusOK, resp.StatusCode)

	resp = s.do("GET", "/accounts", bobToken, nil)
	env := s.decode(resp, nil)
	assert.Equal(s.T(), 0, env.Count)
}

func (s *APITestSuite) TestTransactionRequiresOwnAccount() {
	aliceToken := s.signup("alice")
	bobToken := s.signup("bob")

	account := s.createAccount(aliceToken, "Alice Checking", "1000")

	body := map[string]any{
		"account_id":       account.ID,
		"amount":           "25",
		"transaction_type": "expense",
		"date":             utils.FormatTime(time.Now()),
	}

	resp := s.do("POST", "/transactions", bobToken, body)
	resp.Body.Close()
	assert.Equal(s.T(), http.StatusNotFound, resp.StatusCode, "foreign accounts look nonexistent")

	resp = s.do("POST", "/transactions", aliceToken, body)
	resp.Body.Close()
	assert.Equal(s.T(), http.StatusCreated, resp.StatusCode)
}

func (s *APITestSuite) TestDashboardEmptyUser() {
	token := s.signup("alice")

	resp := s.do("GET", "/dashboard", token, nil)
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var dashboard models.DashboardResponse
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&dashboard))

	assert.True(s.T(), dashboard.Stats.TotalBalance.IsZero())
	assert.True(s.T(), dashboard.Stats.MonthlyExpenses.IsZero())
	assert.True(s.T(), dashboard.Stats.Investments.IsZero())
	assert.True(s.T(), dashboard.Stats.SavingsGoal.IsZero())
	assert.NotNil(s.T(), dashboard.RecentTransactions)
	assert.Empty(s.T(), dashboard.RecentTransactions)
	assert.Empty(s.T(), dashboard.BudgetOverview)
	assert.Empty(s.T(), dashboard.InvestmentAllocation)
}

func (s *APITestSuite) TestDashboardFacets() {
	token := s.signup("alice")
	now := time.Now()

	s.createAccount(token, "Main", "2000")

	resp := s.do("POST", "/income", token, map[string]any{
		"amount":      "3000",
		"income_type": "salary",
		"source":      "Acme Corp",
		"date":        utils.FormatTime(now),
	})
	resp.Body.Close()
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	resp = s.do("POST", "/expenses", token, map[string]any{
		"amount":   "250",
		"category": "food",
		"date":     utils.FormatTime(now),
	})
	resp.Body.Close()
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	resp = s.do("POST", "/budgets", token, map[string]any{
		"category":   "food",
		"amount":     "500",
		"start_date": utils.FormatTime(now.AddDate(0, 0, -1)),
		"end_date":   utils.FormatTime(now.AddDate(0, 0, 28)),
	})
	resp.Body.Close()
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	resp = s.do("POST", "/investments", token, map[string]any{
		"investment_type": "stocks",
		"name":            "Index Fund",
		"quantity":        "10",
		"purchase_price":  "50",
		"purchase_date":   utils.FormatTime(now),
	})
	resp.Body.Close()
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	resp = s.do("GET", "/dashboard", token, nil)
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var dashboard models.DashboardResponse
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&dashboard))

	assert.True(s.T(), decimal.RequireFromString("2000").Equal(dashboard.Stats.TotalBalance))
	assert.True(s.T(), decimal.RequireFromString("250").Equal(dashboard.Stats.MonthlyExpenses))
	assert.True(s.T(), decimal.RequireFromString("500").Equal(dashboard.Stats.Investments))
	assert.True(s.T(), decimal.RequireFromString("600").Equal(dashboard.Stats.SavingsGoal), "20%% of monthly income")

	require.Len(s.T(), dashboard.BudgetOverview, 1)
	assert.Equal(s.T(), "food", dashboard.BudgetOverview[0].Category)
	assert.InDelta(s.T(), 50.0, dashboard.BudgetOverview[0].Percentage, 0.001)

	require.Len(s.T(), dashboard.InvestmentAllocation, 1)
	assert.InDelta(s.T(), 100.0, dashboard.InvestmentAllocation[0].Percentage, 0.001)
}

func (s *APITestSuite) TestStats() {
	token := s.signup("alice")
	now := time.Now()

	resp := s.do("POST", "/income", token, map[string]any{
		"amount":      "3000",
		"income_type": "salary",
		"source":      "Acme Corp",
		"date":        utils.FormatTime(now),
	})
	resp.Body.Close()
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	resp = s.do("POST", "/expenses", token, map[string]any{
		"amount":   "120",
		"category": "transport",
		"date":     utils.FormatTime(now),
	})
	resp.Body.Close()
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	resp = s.do("GET", "/dashboard/stats", token, nil)
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var stats models.FinancialStats
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&stats))

	require.Len(s.T(), stats.MonthlyIncome, 1)
	assert.Equal(s.T(), now.Format("2006-01"), stats.MonthlyIncome[0].Month)
	assert.True(s.T(), decimal.RequireFromString("3000").Equal(stats.MonthlyIncome[0].Total))

	require.Len(s.T(), stats.MonthlyExpenses, 1)
	require.Len(s.T(), stats.ExpenseByCategory, 1)
	assert.Equal(s.T(), "transport", stats.ExpenseByCategory[0].Category)
}

func (s *APITestSuite) TestBudgetValidation() {
	token := s.signup("alice")
	now := time.Now()

	resp := s.do("POST", "/budgets", token, map[string]any{
		"category":   "yachts",
		"amount":     "100",
		"start_date": utils.FormatTime(now),
		"end_date":   utils.FormatTime(now.AddDate(0, 1, 0)),
	})
	resp.Body.Close()
	assert.Equal(s.T(), http.StatusUnprocessableEntity, resp.StatusCode)

	resp = s.do("POST", "/budgets", token, map[string]any{
		"category":   "food",
		"amount":     "100",
		"start_date": utils.FormatTime(now),
		"end_date":   utils.FormatTime(now.AddDate(0, -1, 0)),
	})
	resp.Body.Close()
	assert.Equal(s.T(), http.StatusUnprocessableEntity, resp.StatusCode, "end before start")

	resp = s.do("POST", "/budgets", token, map[string]any{
		"category":   "food",
		"amount":     "100",
		"period":     "weekly",
		"start_date": utils.FormatTime(now),
		"end_date":   utils.FormatTime(now.AddDate(0, 1, 0)),
	})
	resp.Body.Close()
	assert.Equal(s.T(), http.StatusUnprocessableEntity, resp.StatusCode, "unknown period")
}

func (s *APITestSuite) TestLoanPayments() {
	token := s.signup("alice")
	now := time.Now()

	resp := s.do("POST", "/loans", token, map[string]any{
		"loan_type":       "vehicle",
		"lender":          "AutoBank",
		"original_amount": "20000",
		"current_balance": "18000",
		"interest_rate":   "4.5",
		"monthly_payment": "350",
		"loan_term":       60,
		"start_date":      utils.FormatTime(now.AddDate(-1, 0, 0)),
		"end_date":        utils.FormatTime(now.AddDate(4, 0, 0)),
	})
	var loan models.Loan
	s.decode(resp, &loan)
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)
	assert.Equal(s.T(), "active", loan.Status)

	resp = s.do("POST", fmt.Sprintf("/loans/%d/payments", loan.ID), token, map[string]any{
		"amount":           "350",
		"payment_date":     utils.FormatTime(now),
		"principal_amount": "280",
		"interest_amount":  "70",
	})
	resp.Body.Close()
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	resp = s.do("GET", fmt.Sprintf("/loans/%d/payments", loan.ID), token, nil)
	var payments []models.LoanPayment
	env := s.decode(resp, &payments)
	assert.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Equal(s.T(), 1, env.Count)
	require.Len(s.T(), payments, 1)
	assert.True(s.T(), decimal.RequireFromString("350").Equal(payments[0].Amount))

	// recording a payment does not touch the loan balance
	resp = s.do("GET", fmt.Sprintf("/loans/%d", loan.ID), token, nil)
	var fetched models.Loan
	s.decode(resp, &fetched)
	assert.True(s.T(), decimal.RequireFromString("18000").Equal(fetched.CurrentBalance))

	// other users cannot see the loan or its payments
	bobToken := s.signup("bob")
	resp = s.do("GET", fmt.Sprintf("/loans/%d/payments", loan.ID), bobToken, nil)
	resp.Body.Close()
	assert.Equal(s.T(), http.StatusNotFound, resp.StatusCode)
}

func (s *APITestSuite) TestCreditCardAvailableCredit() {
	token := s.signup("alice")

	resp := s.do("POST", "/credit-cards", token, map[string]any{
		"card_name":       "Rewards Card",
		"card_type":       "visa",
		"credit_limit":    "5000",
		"current_balance": "1200",
	})
	var card models.CreditCard
	s.decode(resp, &card)
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)
	assert.True(s.T(), decimal.RequireFromString("3800").Equal(card.AvailableCredit),
		"available credit defaults to limit minus balance")

	// an explicit zero is a frozen card, not an omitted field
	resp = s.do("POST", "/credit-cards", token, map[string]any{
		"card_name":        "Frozen Card",
		"card_type":        "mastercard",
		"credit_limit":     "5000",
		"current_balance":  "1200",
		"available_credit": "0",
	})
	var frozen models.CreditCard
	s.decode(resp, &frozen)
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)
	assert.True(s.T(), frozen.AvailableCredit.IsZero(),
		"client-supplied zero must not be recomputed")
}

func (s *APITestSuite) TestCorsPreflightOnProtectedRoute() {
	req, err := http.NewRequest("OPTIONS", s.server.URL+"/accounts", nil)
	require.NoError(s.T(), err)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")

	// no Authorization header: browsers never send one on a preflight
	resp, err := s.server.Client().Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	assert.Equal(s.T(), http.StatusNoContent, resp.StatusCode)
	assert.Equal(s.T(), "https://app.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(s.T(), resp.Header.Get("Access-Control-Allow-Headers"), "Authorization")
}

func (s *APITestSuite) TestCorsHeadersOnAuthenticatedResponse() {
	token := s.signup("alice")

	req, err := http.NewRequest("GET", s.server.URL+"/accounts", nil)
	require.NoError(s.T(), err)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.server.Client().Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	assert.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Equal(s.T(), "https://app.example.com", resp.Header.Get("Access-Control-Allow-Origin"))

	// unlisted origins get no CORS grant
	req, err = http.NewRequest("GET", s.server.URL+"/accounts", nil)
	require.NoError(s.T(), err)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err = s.server.Client().Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	assert.Empty(s.T(), resp.Header.Get("Access-Control-Allow-Origin"))
}

func (s *APITestSuite) TestMethodNotMatched() {
	token := s.signup("alice")

	req, err := http.NewRequest("PATCH", s.server.URL+"/accounts/1", strings.NewReader("{}"))
	require.NoError(s.T(), err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.server.Client().Do(req)
	require.NoError(s.T(), err)
	resp.Body.Close()
	assert.Equal(s.T(), http.StatusMethodNotAllowed, resp.StatusCode)
}

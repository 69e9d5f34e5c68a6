package auth

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"

	"financify/internal/models"
	"financify/internal/repositories/sqlconnect"
	"financify/pkg/utils"
)

// FUNC TO REGISTER USERS
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var newUser models.User
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&newUser); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	newUser.Username = strings.ToLower(strings.TrimSpace(newUser.Username))
	newUser.Email = strings.ToLower(strings.TrimSpace(newUser.Email))

	if newUser.Username == "" || newUser.Email == "" || newUser.Password == "" {
		utils.WriteError(w, "username, email and password are required", http.StatusUnprocessableEntity)
		return
	}

	// username checked before email so the conflict message is stable
	var existingID int
	err := db.QueryRow("SELECT id FROM users WHERE username = ?", newUser.Username).Scan(&existingID)
	if err == nil {
		utils.WriteError(w, "username already registered", http.StatusConflict)
		return
	}
	if err != sql.ErrNoRows {
		utils.Logger.Errorf("failed to check username: %v", err)
		utils.WriteError(w, "error signing up", http.StatusInternalServerError)
		return
	}

	err = db.QueryRow("SELECT id FROM users WHERE email = ?", newUser.Email).Scan(&existingID)
	if err == nil {
		utils.WriteError(w, "email already registered", http.StatusConflict)
		return
	}
	if err != sql.ErrNoRows {
		utils.Logger.Errorf("failed to check email: %v", err)
		utils.WriteError(w, "error signing up", http.StatusInternalServerError)
		return
	}

	hashedPwd, err := utils.HashPassword(newUser.Password)
	if err != nil {
		utils.WriteError(w, "error hashing password", http.StatusInternalServerError)
		return
	}

	res, err := db.Exec("INSERT INTO users (username, email, password) VALUES (?, ?, ?)", newUser.Username, newUser.Email, hashedPwd)
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			utils.WriteError(w, "username or email already registered", http.StatusConflict)
			return
		}
		utils.Logger.Errorf("failed to insert user: %v", err)
		utils.WriteError(w, "error signing up", http.StatusInternalServerError)
		return
	}

	id, err := res.LastInsertId()
	if err != nil {
		utils.Logger.Errorf("failed to get last insert ID: %v", err)
		utils.WriteError(w, "error signing up", http.StatusInternalServerError)
		return
	}

	go func(email, username string) {
		if err := utils.SendWelcomeEmail(email, username); err != nil {
			utils.Logger.Errorf("failed to send welcome email to %s: %v", email, err)
		}
	}(newUser.Email, newUser.Username)

	newUser.ID = int(id)
	newUser.Password = ""

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"data":   newUser,
	})
}

// FUNC TO LOGIN AND ISSUE A BEARER TOKEN
func TokenHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		utils.WriteError(w, "invalid form body", http.StatusBadRequest)
		return
	}

	username := strings.ToLower(strings.TrimSpace(r.PostFormValue("username")))
	password := r.PostFormValue("password")

	if username == "" || password == "" {
		utils.WriteError(w, "username and password are required", http.StatusUnprocessableEntity)
		return
	}

	user := &models.User{}
	err := db.QueryRow("SELECT id, username, email, password FROM users WHERE username = ?", username).
		Scan(&user.ID, &user.Username, &user.Email, &user.Password)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "incorrect username or password", http.StatusUnauthorized)
			return
		}
		utils.Logger.Errorf("database query error: %v", err)
		utils.WriteError(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := utils.VerifyPassword(password, user.Password); err != nil {
		utils.WriteError(w, "incorrect username or password", http.StatusUnauthorized)
		return
	}

	tokenString, err := utils.SignToken(user.ID, user.Username)
	if err != nil {
		utils.Logger.Error("could not create login token")
		utils.WriteError(w, "error signing in", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"access_token": tokenString,
		"token_type":   "bearer",
	})
}

// FUNC TO RETURN THE AUTHENTICATED USER
func MeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(utils.ContextKey("userId")).(int)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	username, _ := r.Context().Value(utils.ContextKey("username")).(string)
	email, _ := r.Context().Value(utils.ContextKey("email")).(string)

	utils.WriteJSON(w, models.User{
		ID:       userID,
		Username: username,
		Email:    email,
	})
}

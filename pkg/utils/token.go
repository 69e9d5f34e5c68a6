package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenMinutes = 30

func tokenLifetime() time.Duration {
	mins, err := strconv.Atoi(os.Getenv("JWT_EXPIRES_MINUTES"))
	if err != nil || mins <= 0 {
		mins = defaultTokenMinutes
	}
	return time.Duration(mins) * time.Minute
}

// SignToken issues an HS256 bearer token with the username as subject.
func SignToken(userID int, username string) (string, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}

	claims := jwt.MapClaims{
		"sub": username,
		"uid": userID,
		"exp": time.Now().Add(tokenLifetime()).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// VerifyToken parses and validates a bearer token and returns its subject.
func VerifyToken(tokenString string) (string, error) {
	jwtSecret := os.Getenv("JWT_SECRET")

	parsedToken, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	if !parsedToken.Valid {
		return "", errors.New("invalid login token")
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid login token")
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", errors.New("token has no subject")
	}

	return subject, nil
}

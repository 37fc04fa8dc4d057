package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"rentify/internal/models"
)

// GenerateToken issues a signed JWT carrying the user id and role.
func GenerateToken(userID uint, email string, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    string(role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET_KEY")))
}

package main

import (
	"errors"
	"strings"
	"time"

	"sparksite/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrUsernameTaken is returned when provisioning an admin whose username
// already exists.
var ErrUsernameTaken = errors.New("username already exists")

const tokenTTL = 24 * time.Hour

// CreateAdmin provisions an administrator identity. The plaintext is never
// stored; only the bcrypt digest is persisted.
func CreateAdmin(username, password string) (uint, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return 0, errors.New("username required")
	}
	if len(password) < 6 {
		return 0, errors.New("password too short (min 6)")
	}
	var existing models.AdminUser
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		return 0, ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	user := models.AdminUser{Username: username, PasswordHash: hash}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueConstraintError(err) { // race after the initial check
			return 0, ErrUsernameTaken
		}
		return 0, err
	}
	return user.ID, nil
}

// ValidatePassword reports whether the credentials match a stored identity.
// Unknown usernames, digest mismatches and lookup failures all collapse to
// false: the caller never learns which one happened.
func ValidatePassword(username, password string) bool {
	var user models.AdminUser
	if err := db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) == nil
}

func getAdminByUsername(username string) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// issueToken signs a 24h bearer token carrying the admin's id and username.
// There is no server-side session record; validity is signature plus expiry.
func issueToken(user *models.AdminUser) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	})
	return token.SignedString(jwtSecret)
}

// parseToken verifies signature and expiry and returns the embedded identity.
func parseToken(tokenString string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.New("invalid claims")
	}
	idVal, _ := claims["id"].(float64)
	username, _ := claims["username"].(string)
	return uint(idVal), username, nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "UNIQUE constraint") || strings.Contains(s, "unique constraint")
}

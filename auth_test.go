package main

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestCreateAdminAndValidate(t *testing.T) {
	id, err := CreateAdmin("alice", "s3cretpw")
	require.NoError(t, err)
	require.NotZero(t, id)

	require.True(t, ValidatePassword("alice", "s3cretpw"))
	require.False(t, ValidatePassword("alice", "wrongpw1"))
	require.False(t, ValidatePassword("nobody", "s3cretpw"))
}

func TestCreateAdminDuplicate(t *testing.T) {
	_, err := CreateAdmin("bob", "s3cretpw")
	require.NoError(t, err)

	_, err = CreateAdmin("bob", "otherpw99")
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestCreateAdminRejectsWeakInput(t *testing.T) {
	_, err := CreateAdmin("", "s3cretpw")
	require.Error(t, err)

	_, err = CreateAdmin("carol", "short")
	require.Error(t, err)
	require.False(t, ValidatePassword("carol", "short"))
}

func TestTokenRoundTrip(t *testing.T) {
	user, err := getAdminByUsername("admin")
	require.NoError(t, err)

	token, err := issueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, username, err := parseToken(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, id)
	require.Equal(t, "admin", username)
}

func TestTokenExpiry(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       uint(1),
		"username": "admin",
		"exp":      time.Now().Add(-time.Minute).Unix(),
	})
	tokenString, err := expired.SignedString(jwtSecret)
	require.NoError(t, err)

	_, _, err = parseToken(tokenString)
	require.Error(t, err)
}

func TestTokenWrongKeyAndGarbage(t *testing.T) {
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       uint(1),
		"username": "admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := forged.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, _, err = parseToken(tokenString)
	require.Error(t, err)

	_, _, err = parseToken("not.a.token")
	require.Error(t, err)
}

package userservice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenSignAndParse(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	user := &User{ID: 42, Username: "mluukkai"}

	token, err := tm.Sign(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "mluukkai", claims.Username)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenParseFailures(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	user := &User{ID: 42, Username: "mluukkai"}

	valid, err := tm.Sign(user)
	assert.NoError(t, err)

	expiredManager := NewTokenManager("test-secret", -time.Minute)
	expired, err := expiredManager.Sign(user)
	assert.NoError(t, err)

	otherSecret := NewTokenManager("other-secret", time.Hour)
	foreign, err := otherSecret.Sign(user)
	assert.NoError(t, err)

	testCases := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not.a.token"},
		{name: "empty", token: ""},
		{name: "expired", token: expired},
		{name: "wrong secret", token: foreign},
		{name: "tampered", token: valid + "x"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tm.Parse(tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/config"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/dto"
	"github.com/Hamza-ali05/Inventor-desktop-application-with-.exe-installer/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture() AuthService {
	cfg := &config.Config{
		AdminUsername:      "admin",
		AdminPassword:      "admin123",
		JWTSecret:          "test-secret",
		JWTExpirationHours: 24,
	}
	svc := NewAuthService(cfg).(*authService)
	svc.now = func() time.Time { return time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc := newAuthFixture()

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	claims := &middleware.JWTClaims{}
	token, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithTimeFunc(func() time.Time {
		return time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	}))
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "2026-08-30T09:00:00Z", resp.ExpiresAt)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthFixture()

	cases := []dto.LoginRequest{
		{Username: "admin", Password: "wrong"},
		{Username: "wrong", Password: "admin123"},
		{Username: "", Password: ""},
	}
	for _, req := range cases {
		resp, err := svc.Login(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, resp)
	}
}

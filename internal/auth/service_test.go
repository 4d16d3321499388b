package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cineverse/internal/shared/config"
	"cineverse/internal/users"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			JWTExpiresIn:     15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
		Auth: config.AuthConfig{
			AdminEmail:    "admin@admin.com",
			AdminPassword: "admin123",
		},
	}
}

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewRepository(), testConfig())
	assert.NoError(t, err)
	return svc
}

func TestDemoLoginCreatesUserAndIssuesToken(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Login(context.Background(), &LoginRequest{Name: "Priya", Email: "priya@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, "Priya", resp.User.Name)
	assert.Equal(t, string(users.RoleUser), resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	claims, err := svc.ValidateToken(resp.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, string(users.RoleUser), claims.Role)
}

func TestDemoLoginIsIdempotentPerEmail(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Login(context.Background(), &LoginRequest{Name: "Priya", Email: "priya@example.com"})
	assert.NoError(t, err)

	second, err := svc.Login(context.Background(), &LoginRequest{Name: "Priya Again", Email: "PRIYA@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID)
}

func TestDemoLoginRejectsAdminEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), &LoginRequest{Name: "Mallory", Email: "admin@admin.com"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminLogin(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"valid credentials", "admin@admin.com", "admin123", nil},
		{"wrong password", "admin@admin.com", "wrong", ErrInvalidCredentials},
		{"unknown email", "nobody@admin.com", "admin123", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.AdminLogin(context.Background(), &AdminLoginRequest{Email: tt.email, Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, string(users.RoleAdmin), resp.User.Role)

			claims, err := svc.ValidateToken(resp.AccessToken)
			assert.NoError(t, err)
			assert.Equal(t, string(users.RoleAdmin), claims.Role)
		})
	}
}

func TestAdminLoginRejectsDemoUser(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), &LoginRequest{Name: "Priya", Email: "priya@example.com"})
	assert.NoError(t, err)

	_, err = svc.AdminLogin(context.Background(), &AdminLoginRequest{Email: "priya@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Login(context.Background(), &LoginRequest{Name: "Priya", Email: "priya@example.com"})
	assert.NoError(t, err)

	pair, err := svc.RefreshToken(context.Background(), resp.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	// An access token is not accepted on the refresh path.
	_, err = svc.RefreshToken(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

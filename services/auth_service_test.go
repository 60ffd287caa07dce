package services

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akinalp/teenspace/database"
	"github.com/akinalp/teenspace/models"
	"github.com/akinalp/teenspace/pkg"
	"github.com/akinalp/teenspace/repository"
)

func newTestUserRepo(t *testing.T) repository.UserRepository {
	t.Helper()

	migrationsFS, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	require.NoError(t, err)

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), migrationsFS)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return repository.NewSQLiteUserRepo(db.Conn)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newTestUserRepo(t), "test-secret", 120)
	ctx := context.Background()

	user, err := svc.Register(ctx, &models.CreateUserRequest{
		Username: "zeynep",
		Password: "pw1",
		Email:    "zeynep@example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	// Hash düz şifre DEĞİL
	require.NotEqual(t, "pw1", user.PasswordHash)

	result, err := svc.Login(ctx, &models.LoginRequest{Username: "zeynep", Password: "pw1"})
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)
	require.Equal(t, user.ID, result.User.ID)
	// Login yanıtı hash sızdırmaz
	require.Empty(t, result.User.PasswordHash)

	// Dönen token doğrulanabilir olmalı
	claims, err := svc.ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, "zeynep", claims.Username)
}

func TestAuthService_LoginInvalidCredentials(t *testing.T) {
	svc := NewAuthService(newTestUserRepo(t), "test-secret", 120)
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.CreateUserRequest{
		Username: "can", Password: "correct", Email: "can@example.com",
	})
	require.NoError(t, err)

	// Yanlış şifre ve olmayan kullanıcı aynı sentinel ile reddedilir
	_, err = svc.Login(ctx, &models.LoginRequest{Username: "can", Password: "wrong"})
	require.ErrorIs(t, err, pkg.ErrUnauthorized)

	_, err = svc.Login(ctx, &models.LoginRequest{Username: "ghost", Password: "whatever"})
	require.ErrorIs(t, err, pkg.ErrUnauthorized)
}

func TestAuthService_DuplicateUsername(t *testing.T) {
	svc := NewAuthService(newTestUserRepo(t), "test-secret", 120)
	ctx := context.Background()

	req := &models.CreateUserRequest{Username: "dup", Password: "pw", Email: "a@b.c"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, &models.CreateUserRequest{Username: "dup", Password: "pw", Email: "x@y.z"})
	require.ErrorIs(t, err, pkg.ErrAlreadyExists)
}

func TestAuthService_ExpiredToken(t *testing.T) {
	repo := newTestUserRepo(t)
	// Negatif TTL — üretilen token baştan süresi dolmuş
	expired := NewAuthService(repo, "test-secret", -1)

	token, err := expired.GenerateToken(&models.User{ID: "u1", Username: "old"})
	require.NoError(t, err)

	_, err = expired.ValidateAccessToken(token)
	require.ErrorIs(t, err, pkg.ErrUnauthorized)
	require.Contains(t, err.Error(), "token has expired")
}

func TestAuthService_TamperedToken(t *testing.T) {
	svc := NewAuthService(newTestUserRepo(t), "test-secret", 120)

	token, err := svc.GenerateToken(&models.User{ID: "u1", Username: "x"})
	require.NoError(t, err)

	// Farklı secret ile imzalanmış gibi davran — doğrulama reddetmeli
	other := NewAuthService(newTestUserRepo(t), "another-secret", 120)
	_, err = other.ValidateAccessToken(token)
	require.ErrorIs(t, err, pkg.ErrUnauthorized)
	require.Contains(t, err.Error(), "invalid token")

	_, err = svc.ValidateAccessToken("not-a-jwt")
	require.ErrorIs(t, err, pkg.ErrUnauthorized)
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"calsync/config"
	"calsync/internal/domain/repository"
	"calsync/internal/domain/service"
	"calsync/internal/infra/auth"
	"calsync/internal/infra/persistence/gormstore"
	"calsync/internal/infra/persistence/gormstore/gormstoretest"
	"calsync/internal/infra/vault"
	mockRepo "calsync/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

type sqliteStack struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	tokens    service.TokenService
}

// newSQLiteStack wires real repositories and a jwt service over an in-memory database.
func newSQLiteStack(t *testing.T) sqliteStack {
	t.Helper()

	db := gormstoretest.NewDB(t)

	cfg := &config.Config{
		Session: &config.SessionConfig{AccessTTL: 15 * time.Minute, RefreshTTL: time.Hour},
	}
	cfg.SecretKey.Access = "impl_test_access_secret_key_long_enough"
	cfg.SecretKey.Refresh = "impl_test_refresh_secret_key_long_enough"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return sqliteStack{
		txManager: gormstore.NewTransactionManager(db, vault.Plaintext()),
		userRepo:  gormstore.NewUserRepository(db, vault.Plaintext()),
		tokens:    tokens,
	}
}

// expectTx makes txManager run the callback against userRepo and return its error.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, userRepo *mockRepo.MockUserRepository) *mockRepo.MockTransactionManager_Execute_Call {
	t.Helper()

	return txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(userRepo)

			return fn(factory)
		})
}

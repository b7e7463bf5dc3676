package impl

import (
	"context"
	"testing"

	"calsync/internal/domain/entity"
	domainerrors "calsync/internal/domain/errors"
	"calsync/internal/domain/repository"
	"calsync/internal/domain/service"
	"calsync/internal/errors"
	mockRepo "calsync/internal/mocks/repository"
	mockSvc "calsync/internal/mocks/service"
	"calsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSQLiteIdentityService(t *testing.T) (usecase.IdentityUsecase, repository.TransactionManager, service.TokenService) {
	t.Helper()

	stack := newSQLiteStack(t)

	return NewIdentityService(IdentityServiceParams{
		TxManager:    stack.txManager,
		TokenService: stack.tokens,
		Logger:       newDiscardLogger(),
	}), stack.txManager, stack.tokens
}

func findByEmail(t *testing.T, txManager repository.TransactionManager, email string) (*entity.User, error) {
	t.Helper()

	var user *entity.User
	err := txManager.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByEmail(context.Background(), email)
		user = found

		return err
	})

	return user, err
}

func TestIdentityService_MicrosoftLogin_CreatesUser(t *testing.T) {
	svc, txManager, tokens := newSQLiteIdentityService(t)
	ctx := context.Background()

	out, err := svc.LinkMicrosoftProfile(ctx, &usecase.MicrosoftProfileInput{
		Mail:         "a@x.com",
		Name:         "A",
		ID:           "ms1",
		AccessToken:  "t1",
		RefreshToken: "r1",
	})
	require.NoError(t, err)
	require.NotNil(t, out.User)
	assert.NotEqual(t, uuid.Nil, out.User.ID)

	claims, err := tokens.ValidateToken(out.AccessToken, service.TokenTypeAccess)
	require.NoError(t, err)
	subject, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, subject)

	_, err = tokens.ValidateToken(out.RefreshToken, service.TokenTypeRefresh)
	require.NoError(t, err)

	stored, err := findByEmail(t, txManager, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "A", stored.Name)
	assert.Equal(t, "t1", stored.MicrosoftAccessToken)
	assert.Equal(t, "r1", stored.MicrosoftRefreshToken)
	require.NotNil(t, stored.MicrosoftID)
	assert.Equal(t, "ms1", *stored.MicrosoftID)
}

func TestIdentityService_MicrosoftLogin_UpdatesExistingUser(t *testing.T) {
	svc, txManager, _ := newSQLiteIdentityService(t)
	ctx := context.Background()

	first, err := svc.LinkMicrosoftProfile(ctx, &usecase.MicrosoftProfileInput{
		Mail: "a@x.com", Name: "A", ID: "ms1", AccessToken: "t1", RefreshToken: "r1",
	})
	require.NoError(t, err)

	second, err := svc.LinkMicrosoftProfile(ctx, &usecase.MicrosoftProfileInput{
		Mail: "a@x.com", Name: "A2", ID: "ms-other", AccessToken: "t2", RefreshToken: "r2",
	})
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID)

	stored, err := findByEmail(t, txManager, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, stored.ID)
	assert.Equal(t, "A2", stored.Name)
	assert.Equal(t, "t2", stored.MicrosoftAccessToken)
	assert.Equal(t, "r2", stored.MicrosoftRefreshToken)
	require.NotNil(t, stored.MicrosoftID)
	assert.Equal(t, "ms1", *stored.MicrosoftID)
}

func TestIdentityService_MicrosoftThenGoogle_SameRecord(t *testing.T) {
	svc, txManager, _ := newSQLiteIdentityService(t)
	ctx := context.Background()

	msOut, err := svc.LinkMicrosoftProfile(ctx, &usecase.MicrosoftProfileInput{
		Mail: "b@x.com", Name: "B", ID: "ms2", AccessToken: "t1", RefreshToken: "r1",
	})
	require.NoError(t, err)

	gOut, err := svc.LinkGoogleProfile(ctx, &usecase.GoogleProfileInput{
		Email: "b@x.com", Name: "Bee", Picture: "https://img/b.png", AccessToken: "g1",
	})
	require.NoError(t, err)
	assert.Equal(t, msOut.User.ID, gOut.User.ID)

	stored, err := findByEmail(t, txManager, "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Bee", stored.Name)
	assert.Equal(t, "g1", stored.GoogleAuthToken)
	require.NotNil(t, stored.ProfilePicture)
	assert.Equal(t, "https://img/b.png", *stored.ProfilePicture)
	// Microsoft fields survive a Google login.
	assert.Equal(t, "r1", stored.MicrosoftRefreshToken)
	require.NotNil(t, stored.MicrosoftID)
	assert.Equal(t, "ms2", *stored.MicrosoftID)
}

func TestIdentityService_EmailCaseDiffers_SameRecord(t *testing.T) {
	svc, txManager, _ := newSQLiteIdentityService(t)
	ctx := context.Background()

	msOut, err := svc.LinkMicrosoftProfile(ctx, &usecase.MicrosoftProfileInput{
		Mail: "John.Doe@X.com", Name: "John", ID: "ms3", AccessToken: "t1", RefreshToken: "r1",
	})
	require.NoError(t, err)

	gOut, err := svc.LinkGoogleProfile(ctx, &usecase.GoogleProfileInput{
		Email: "john.doe@x.com", Name: "John", AccessToken: "g1",
	})
	require.NoError(t, err)
	assert.Equal(t, msOut.User.ID, gOut.User.ID)

	stored, err := findByEmail(t, txManager, "john.doe@x.com")
	require.NoError(t, err)
	assert.Equal(t, "john.doe@x.com", stored.Email)
	assert.Equal(t, "g1", stored.GoogleAuthToken)
	assert.Equal(t, "r1", stored.MicrosoftRefreshToken)
}

func TestIdentityService_MissingEmail_PersistsNothing(t *testing.T) {
	svc, txManager, _ := newSQLiteIdentityService(t)
	ctx := context.Background()

	_, err := svc.LinkMicrosoftProfile(ctx, &usecase.MicrosoftProfileInput{Name: "Nobody", ID: "ms3", AccessToken: "t"})
	require.ErrorIs(t, err, domainerrors.ErrEmailRequired)

	_, err = svc.LinkGoogleProfile(ctx, &usecase.GoogleProfileInput{Email: "   ", Name: "Nobody"})
	require.ErrorIs(t, err, domainerrors.ErrEmailRequired)

	_, err = findByEmail(t, txManager, "")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestIdentityService_NilInput(t *testing.T) {
	svc := NewIdentityService(IdentityServiceParams{Logger: newDiscardLogger()})

	_, err := svc.LinkMicrosoftProfile(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrEmailRequired)

	_, err = svc.LinkGoogleProfile(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrEmailRequired)
}

func TestIdentityService_ConcurrentCreate_RetriesAsUpdate(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	svc := NewIdentityService(IdentityServiceParams{
		TxManager:    txManager,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "c@x.com", Name: "Old"}

	expectTx(t, txManager, userRepo).Times(2)

	userRepo.EXPECT().FindByEmail(mock.Anything, "c@x.com").Return(nil, domainerrors.ErrUserNotFound).Once()
	userRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email taken")).Once()
	userRepo.EXPECT().FindByEmail(mock.Anything, "c@x.com").Return(existing, nil).Once()
	userRepo.EXPECT().Update(mock.Anything, existing).Return(nil).Once()
	tokenService.EXPECT().GenerateTokens(existing.ID).Return("access", "refresh", nil)

	out, err := svc.LinkMicrosoftProfile(ctx, &usecase.MicrosoftProfileInput{
		Mail: "c@x.com", Name: "New", ID: "ms4", AccessToken: "t", RefreshToken: "r",
	})
	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, existing.ID, out.User.ID)
	assert.Equal(t, "New", out.User.Name)
	require.NotNil(t, out.User.MicrosoftID)
	assert.Equal(t, "ms4", *out.User.MicrosoftID)
}

func TestIdentityService_RepositoryFailure(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewIdentityService(IdentityServiceParams{
		TxManager:    txManager,
		TokenService: mockSvc.NewMockTokenService(t),
		Logger:       newDiscardLogger(),
	})

	dbErr := errors.New("connection reset")
	expectTx(t, txManager, userRepo)
	userRepo.EXPECT().FindByEmail(mock.Anything, "d@x.com").Return(nil, dbErr)

	_, err := svc.LinkGoogleProfile(context.Background(), &usecase.GoogleProfileInput{Email: "d@x.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestIdentityService_TokenFailure(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	svc := NewIdentityService(IdentityServiceParams{
		TxManager:    txManager,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	expectTx(t, txManager, userRepo)
	userRepo.EXPECT().FindByEmail(mock.Anything, "e@x.com").Return(nil, domainerrors.ErrUserNotFound)
	userRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { user.ID = uuid.New() }).
		Return(nil)
	tokenService.EXPECT().GenerateTokens(mock.AnythingOfType("uuid.UUID")).Return("", "", errors.New("signing failed"))

	_, err := svc.LinkMicrosoftProfile(context.Background(), &usecase.MicrosoftProfileInput{Mail: "e@x.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate session tokens")
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"blog-service/app/domain"
	mock_port "blog-service/app/mocks"
	"blog-service/app/utils/logger"
	"blog-service/app/utils/retry"
)

func newTestAccountUseCase(t *testing.T, gateway *mock_port.MockCredentialGateway, profileRepo *mock_port.MockProfileRepository) *AccountUseCase {
	t.Helper()

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	policy := retry.Policy{MaxAttempts: 3, Delay: 0}
	return NewAccountUseCase(gateway, profileRepo, policy, testLogger)
}

func testIdentity() *domain.Identity {
	return &domain.Identity{
		ID:        "ident-123",
		Email:     "alice@example.com",
		CreatedAt: time.Now(),
	}
}

func TestAccountUseCase_Register_UsernameValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
	}{
		{"too short", "ab"},
		{"empty", ""},
		{"uppercase letters", "Alice"},
		{"illegal characters", "alice!"},
		{"contains spaces", "alice blog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No expectations: an invalid username must not reach either store
			gateway := mock_port.NewMockCredentialGateway(ctrl)
			profileRepo := mock_port.NewMockProfileRepository(ctrl)

			uc := newTestAccountUseCase(t, gateway, profileRepo)

			identity, err := uc.Register(context.Background(), "alice@example.com", "secret-password", tt.username)

			assert.Nil(t, identity)
			assert.Equal(t, domain.KindInvalidUsername, domain.AccountErrorKindOf(err))
		})
	}
}

func TestAccountUseCase_Register_UsernamePreCheck(t *testing.T) {
	t.Run("username already taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := mock_port.NewMockCredentialGateway(ctrl)
		profileRepo := mock_port.NewMockProfileRepository(ctrl)

		existing := &domain.Profile{ID: "other", Username: "alice_blog"}
		profileRepo.EXPECT().
			FindByUsername(gomock.Any(), "alice_blog").
			Return(existing, nil)

		uc := newTestAccountUseCase(t, gateway, profileRepo)

		identity, err := uc.Register(context.Background(), "alice@example.com", "secret-password", "alice_blog")

		assert.Nil(t, identity)
		assert.Equal(t, domain.KindUsernameTaken, domain.AccountErrorKindOf(err))
	})

	t.Run("store unavailable during pre-check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := mock_port.NewMockCredentialGateway(ctrl)
		profileRepo := mock_port.NewMockProfileRepository(ctrl)

		profileRepo.EXPECT().
			FindByUsername(gomock.Any(), "alice_blog").
			Return(nil, errors.New("connection refused"))

		uc := newTestAccountUseCase(t, gateway, profileRepo)

		identity, err := uc.Register(context.Background(), "alice@example.com", "secret-password", "alice_blog")

		assert.Nil(t, identity)
		assert.Equal(t, domain.KindStoreUnavailable, domain.AccountErrorKindOf(err))
	})
}

func TestAccountUseCase_Register_IdentityCreation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock_port.NewMockCredentialGateway(ctrl)
	profileRepo := mock_port.NewMockProfileRepository(ctrl)

	profileRepo.EXPECT().
		FindByUsername(gomock.Any(), "alice_blog").
		Return(nil, domain.ErrProfileNotFound)
	gateway.EXPECT().
		CreateIdentity(gomock.Any(), "alice@example.com", "secret-password", "alice_blog").
		Return(nil, errors.New("an account with that email exists already"))

	uc := newTestAccountUseCase(t, gateway, profileRepo)

	identity, err := uc.Register(context.Background(), "alice@example.com", "secret-password", "alice_blog")

	assert.Nil(t, identity)
	assert.Equal(t, domain.KindIdentityCreationFailed, domain.AccountErrorKindOf(err))
	assert.Contains(t, err.Error(), "exists already")
}

func TestAccountUseCase_Register_ProfileInsert(t *testing.T) {
	t.Run("succeeds on first attempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := mock_port.NewMockCredentialGateway(ctrl)
		profileRepo := mock_port.NewMockProfileRepository(ctrl)

		profileRepo.EXPECT().
			FindByUsername(gomock.Any(), "alice_blog").
			Return(nil, domain.ErrProfileNotFound)
		gateway.EXPECT().
			CreateIdentity(gomock.Any(), "alice@example.com", "secret-password", "alice_blog").
			Return(testIdentity(), nil)
		profileRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, profile *domain.Profile) error {
				assert.Equal(t, "ident-123", profile.ID)
				assert.Equal(t, "alice_blog", profile.Username)
				return nil
			})

		uc := newTestAccountUseCase(t, gateway, profileRepo)

		identity, err := uc.Register(context.Background(), "alice@example.com", "secret-password", "alice_blog")

		require.NoError(t, err)
		assert.Equal(t, "ident-123", identity.ID)
	})

	t.Run("transient failures are retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := mock_port.NewMockCredentialGateway(ctrl)
		profileRepo := mock_port.NewMockProfileRepository(ctrl)

		profileRepo.EXPECT().
			FindByUsername(gomock.Any(), "alice_blog").
			Return(nil, domain.ErrProfileNotFound)
		gateway.EXPECT().
			CreateIdentity(gomock.Any(), "alice@example.com", "secret-password", "alice_blog").
			Return(testIdentity(), nil)

		gomock.InOrder(
			profileRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("deadlock detected")),
			profileRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("deadlock detected")),
			profileRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil),
		)

		uc := newTestAccountUseCase(t, gateway, profileRepo)

		identity, err := uc.Register(context.Background(), "alice@example.com", "secret-password", "alice_blog")

		require.NoError(t, err)
		assert.Equal(t, "ident-123", identity.ID)
	})

	t.Run("exhausted retries roll back the session exactly once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := mock_port.NewMockCredentialGateway(ctrl)
		profileRepo := mock_port.NewMockProfileRepository(ctrl)

		profileRepo.EXPECT().
			FindByUsername(gomock.Any(), "alice_blog").
			Return(nil, domain.ErrProfileNotFound)
		gateway.EXPECT().
			CreateIdentity(gomock.Any(), "alice@example.com", "secret-password", "alice_blog").
			Return(testIdentity(), nil)
		profileRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("disk full")).
			Times(3)
		gateway.EXPECT().
			SignOut(gomock.Any()).
			Return(nil).
			Times(1)

		uc := newTestAccountUseCase(t, gateway, profileRepo)

		identity, err := uc.Register(context.Background(), "alice@example.com", "secret-password", "alice_blog")

		assert.Nil(t, identity)
		assert.Equal(t, domain.KindProfileCreationFailed, domain.AccountErrorKindOf(err))
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("rollback sign-out failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := mock_port.NewMockCredentialGateway(ctrl)
		profileRepo := mock_port.NewMockProfileRepository(ctrl)

		profileRepo.EXPECT().
			FindByUsername(gomock.Any(), "alice_blog").
			Return(nil, domain.ErrProfileNotFound)
		gateway.EXPECT().
			CreateIdentity(gomock.Any(), "alice@example.com", "secret-password", "alice_blog").
			Return(testIdentity(), nil)
		profileRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("disk full")).
			Times(3)
		gateway.EXPECT().
			SignOut(gomock.Any()).
			Return(errors.New("kratos unreachable"))

		uc := newTestAccountUseCase(t, gateway, profileRepo)

		_, err := uc.Register(context.Background(), "alice@example.com", "secret-password", "alice_blog")

		// The reported failure stays the insert failure, not the rollback's
		assert.Equal(t, domain.KindProfileCreationFailed, domain.AccountErrorKindOf(err))
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("constraint violation surfaces as username taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := mock_port.NewMockCredentialGateway(ctrl)
		profileRepo := mock_port.NewMockProfileRepository(ctrl)

		profileRepo.EXPECT().
			FindByUsername(gomock.Any(), "alice_blog").
			Return(nil, domain.ErrProfileNotFound)
		gateway.EXPECT().
			CreateIdentity(gomock.Any(), "alice@example.com", "secret-password", "alice_blog").
			Return(testIdentity(), nil)
		profileRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(domain.ErrUsernameTaken).
			Times(3)
		gateway.EXPECT().SignOut(gomock.Any()).Return(nil)

		uc := newTestAccountUseCase(t, gateway, profileRepo)

		_, err := uc.Register(context.Background(), "alice@example.com", "secret-password", "alice_blog")

		assert.Equal(t, domain.KindUsernameTaken, domain.AccountErrorKindOf(err))
	})
}

func TestAccountUseCase_Register_RetrySpacing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock_port.NewMockCredentialGateway(ctrl)
	profileRepo := mock_port.NewMockProfileRepository(ctrl)

	profileRepo.EXPECT().
		FindByUsername(gomock.Any(), "alice_blog").
		Return(nil, domain.ErrProfileNotFound)
	gateway.EXPECT().
		CreateIdentity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(testIdentity(), nil)

	var attempts []time.Time
	profileRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *domain.Profile) error {
			attempts = append(attempts, time.Now())
			return errors.New("still down")
		}).
		Times(3)
	gateway.EXPECT().SignOut(gomock.Any()).Return(nil)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	policy := retry.Policy{MaxAttempts: 3, Delay: 30 * time.Millisecond}
	uc := NewAccountUseCase(gateway, profileRepo, policy, testLogger)

	_, err = uc.Register(context.Background(), "alice@example.com", "secret-password", "alice_blog")

	assert.Equal(t, domain.KindProfileCreationFailed, domain.AccountErrorKindOf(err))
	require.Len(t, attempts, 3)
	assert.GreaterOrEqual(t, attempts[1].Sub(attempts[0]), 25*time.Millisecond)
	assert.GreaterOrEqual(t, attempts[2].Sub(attempts[1]), 25*time.Millisecond)
}

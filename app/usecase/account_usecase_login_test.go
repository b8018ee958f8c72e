package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"blog-service/app/domain"
	mock_port "blog-service/app/mocks"
)

func TestAccountUseCase_Login(t *testing.T) {
	t.Run("successful login with verified profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := mock_port.NewMockCredentialGateway(ctrl)
		profileRepo := mock_port.NewMockProfileRepository(ctrl)

		gateway.EXPECT().
			Authenticate(gomock.Any(), "alice@example.com", "secret-password").
			Return(testIdentity(), nil)
		profileRepo.EXPECT().
			FindByID(gomock.Any(), "ident-123").
			Return(&domain.Profile{ID: "ident-123", Username: "alice_blog"}, nil)

		uc := newTestAccountUseCase(t, gateway, profileRepo)

		identity, err := uc.Login(context.Background(), "alice@example.com", "secret-password")

		require.NoError(t, err)
		assert.Equal(t, "ident-123", identity.ID)
	})

	t.Run("authentication failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := mock_port.NewMockCredentialGateway(ctrl)
		profileRepo := mock_port.NewMockProfileRepository(ctrl)

		gateway.EXPECT().
			Authenticate(gomock.Any(), "alice@example.com", "wrong").
			Return(nil, domain.ErrInvalidCredentials)

		uc := newTestAccountUseCase(t, gateway, profileRepo)

		identity, err := uc.Login(context.Background(), "alice@example.com", "wrong")

		assert.Nil(t, identity)
		assert.Equal(t, domain.KindAuthenticationFailed, domain.AccountErrorKindOf(err))
	})

	t.Run("provider returns no identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := mock_port.NewMockCredentialGateway(ctrl)
		profileRepo := mock_port.NewMockProfileRepository(ctrl)

		gateway.EXPECT().
			Authenticate(gomock.Any(), "alice@example.com", "secret-password").
			Return(nil, nil)

		uc := newTestAccountUseCase(t, gateway, profileRepo)

		identity, err := uc.Login(context.Background(), "alice@example.com", "secret-password")

		assert.Nil(t, identity)
		assert.Equal(t, domain.KindAuthenticationFailed, domain.AccountErrorKindOf(err))
		assert.Contains(t, err.Error(), "no user returned")
	})

	t.Run("missing profile tears down the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := mock_port.NewMockCredentialGateway(ctrl)
		profileRepo := mock_port.NewMockProfileRepository(ctrl)

		gateway.EXPECT().
			Authenticate(gomock.Any(), "alice@example.com", "secret-password").
			Return(testIdentity(), nil)
		profileRepo.EXPECT().
			FindByID(gomock.Any(), "ident-123").
			Return(nil, domain.ErrProfileNotFound)
		gateway.EXPECT().
			SignOut(gomock.Any()).
			Return(nil).
			Times(1)

		uc := newTestAccountUseCase(t, gateway, profileRepo)

		identity, err := uc.Login(context.Background(), "alice@example.com", "secret-password")

		assert.Nil(t, identity)
		assert.Equal(t, domain.KindProfileMissing, domain.AccountErrorKindOf(err))
	})

	t.Run("profile store error also fails verification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := mock_port.NewMockCredentialGateway(ctrl)
		profileRepo := mock_port.NewMockProfileRepository(ctrl)

		gateway.EXPECT().
			Authenticate(gomock.Any(), "alice@example.com", "secret-password").
			Return(testIdentity(), nil)
		profileRepo.EXPECT().
			FindByID(gomock.Any(), "ident-123").
			Return(nil, errors.New("connection refused"))
		gateway.EXPECT().SignOut(gomock.Any()).Return(nil)

		uc := newTestAccountUseCase(t, gateway, profileRepo)

		identity, err := uc.Login(context.Background(), "alice@example.com", "secret-password")

		assert.Nil(t, identity)
		assert.Equal(t, domain.KindProfileMissing, domain.AccountErrorKindOf(err))
	})

	t.Run("verification sign-out failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := mock_port.NewMockCredentialGateway(ctrl)
		profileRepo := mock_port.NewMockProfileRepository(ctrl)

		gateway.EXPECT().
			Authenticate(gomock.Any(), "alice@example.com", "secret-password").
			Return(testIdentity(), nil)
		profileRepo.EXPECT().
			FindByID(gomock.Any(), "ident-123").
			Return(nil, domain.ErrProfileNotFound)
		gateway.EXPECT().
			SignOut(gomock.Any()).
			Return(errors.New("kratos unreachable"))

		uc := newTestAccountUseCase(t, gateway, profileRepo)

		_, err := uc.Login(context.Background(), "alice@example.com", "secret-password")

		assert.Equal(t, domain.KindProfileMissing, domain.AccountErrorKindOf(err))
	})
}

func TestAccountUseCase_SignOut(t *testing.T) {
	t.Run("successful sign-out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := mock_port.NewMockCredentialGateway(ctrl)
		profileRepo := mock_port.NewMockProfileRepository(ctrl)

		gateway.EXPECT().SignOut(gomock.Any()).Return(nil)

		uc := newTestAccountUseCase(t, gateway, profileRepo)

		assert.NoError(t, uc.SignOut(context.Background()))
	})

	t.Run("gateway failure becomes a typed error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := mock_port.NewMockCredentialGateway(ctrl)
		profileRepo := mock_port.NewMockProfileRepository(ctrl)

		gateway.EXPECT().SignOut(gomock.Any()).Return(errors.New("kratos unreachable"))

		uc := newTestAccountUseCase(t, gateway, profileRepo)

		err := uc.SignOut(context.Background())

		assert.Equal(t, domain.KindSignOutFailed, domain.AccountErrorKindOf(err))
	})
}

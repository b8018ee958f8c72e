package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"blog-service/app/domain"
	mock_port "blog-service/app/mocks"
	"blog-service/app/port"
	"blog-service/app/utils/logger"
)

func newTestSessionObserver(t *testing.T, gateway *mock_port.MockCredentialGateway) *SessionObserver {
	t.Helper()

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	return NewSessionObserver(gateway, testLogger)
}

func validSession() *domain.Session {
	return &domain.Session{
		ID:       "sess-1",
		Active:   true,
		Identity: testIdentity(),
	}
}

func TestSessionObserver_Start(t *testing.T) {
	t.Run("publishes ready with the current identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := mock_port.NewMockCredentialGateway(ctrl)
		gateway.EXPECT().OnSessionChange(gomock.Any()).Return(mock_port.NewMockSubscription(ctrl))
		gateway.EXPECT().CurrentSession(gomock.Any()).Return(validSession(), nil)

		observer := newTestSessionObserver(t, gateway)

		assert.False(t, observer.Current().Ready)

		observer.Start(context.Background())

		state := observer.Current()
		assert.True(t, state.Ready)
		require.NotNil(t, state.Identity)
		assert.Equal(t, "ident-123", state.Identity.ID)
	})

	t.Run("no session resolves to signed out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := mock_port.NewMockCredentialGateway(ctrl)
		gateway.EXPECT().OnSessionChange(gomock.Any()).Return(mock_port.NewMockSubscription(ctrl))
		gateway.EXPECT().CurrentSession(gomock.Any()).Return(nil, nil)

		observer := newTestSessionObserver(t, gateway)
		observer.Start(context.Background())

		state := observer.Current()
		assert.True(t, state.Ready)
		assert.Nil(t, state.Identity)
	})

	t.Run("gateway error still resolves readiness", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := mock_port.NewMockCredentialGateway(ctrl)
		gateway.EXPECT().OnSessionChange(gomock.Any()).Return(mock_port.NewMockSubscription(ctrl))
		gateway.EXPECT().CurrentSession(gomock.Any()).Return(nil, assert.AnError)

		observer := newTestSessionObserver(t, gateway)
		observer.Start(context.Background())

		state := observer.Current()
		assert.True(t, state.Ready)
		assert.Nil(t, state.Identity)
	})

	t.Run("change during the initial fetch wins over the fetch result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := mock_port.NewMockCredentialGateway(ctrl)

		var gatewayCallback func(*domain.Session)
		gateway.EXPECT().
			OnSessionChange(gomock.Any()).
			DoAndReturn(func(fn func(*domain.Session)) port.Subscription {
				gatewayCallback = fn
				return mock_port.NewMockSubscription(ctrl)
			})
		// A sign-in lands while the initial fetch is still in flight; the
		// stale fetch result must not overwrite it.
		gateway.EXPECT().
			CurrentSession(gomock.Any()).
			DoAndReturn(func(context.Context) (*domain.Session, error) {
				gatewayCallback(validSession())
				return nil, nil
			})

		observer := newTestSessionObserver(t, gateway)
		observer.Start(context.Background())

		state := observer.Current()
		assert.True(t, state.Ready)
		require.NotNil(t, state.Identity)
		assert.Equal(t, "ident-123", state.Identity.ID)
	})

	t.Run("start is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := mock_port.NewMockCredentialGateway(ctrl)
		gateway.EXPECT().OnSessionChange(gomock.Any()).Return(mock_port.NewMockSubscription(ctrl)).Times(1)
		gateway.EXPECT().CurrentSession(gomock.Any()).Return(nil, nil).Times(1)

		observer := newTestSessionObserver(t, gateway)
		observer.Start(context.Background())
		observer.Start(context.Background())
	})
}

func TestSessionObserver_FollowsGatewayChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock_port.NewMockCredentialGateway(ctrl)

	var gatewayCallback func(*domain.Session)
	gateway.EXPECT().
		OnSessionChange(gomock.Any()).
		DoAndReturn(func(fn func(*domain.Session)) port.Subscription {
			gatewayCallback = fn
			return mock_port.NewMockSubscription(ctrl)
		})
	gateway.EXPECT().CurrentSession(gomock.Any()).Return(nil, nil)

	observer := newTestSessionObserver(t, gateway)
	observer.Start(context.Background())
	require.NotNil(t, gatewayCallback)

	var published []port.SessionState
	sub := observer.Subscribe(func(state port.SessionState) {
		published = append(published, state)
	})
	defer sub.Unsubscribe()

	// Sign-in
	gatewayCallback(validSession())
	// Sign-out
	gatewayCallback(nil)

	require.Len(t, published, 2)
	require.NotNil(t, published[0].Identity)
	assert.Equal(t, "ident-123", published[0].Identity.ID)
	assert.Nil(t, published[1].Identity)
	assert.True(t, published[1].Ready)

	assert.Nil(t, observer.Current().Identity)
}

func TestSessionObserver_Unsubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock_port.NewMockCredentialGateway(ctrl)

	var gatewayCallback func(*domain.Session)
	gateway.EXPECT().
		OnSessionChange(gomock.Any()).
		DoAndReturn(func(fn func(*domain.Session)) port.Subscription {
			gatewayCallback = fn
			return mock_port.NewMockSubscription(ctrl)
		})
	gateway.EXPECT().CurrentSession(gomock.Any()).Return(nil, nil)

	observer := newTestSessionObserver(t, gateway)
	observer.Start(context.Background())

	calls := 0
	sub := observer.Subscribe(func(port.SessionState) { calls++ })
	sub.Unsubscribe()

	gatewayCallback(validSession())

	assert.Zero(t, calls)
}

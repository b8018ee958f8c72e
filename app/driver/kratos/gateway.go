package kratos

import (
	"context"
	"log/slog"
	"sync"
	"time"

	kratosclient "github.com/ory/kratos-client-go"

	"blog-service/app/domain"
	"blog-service/app/port"
)

// Gateway implements port.CredentialGateway on top of Kratos native
// self-service flows. The ambient session token lives on the gateway handle;
// the composition root owns the handle and its watcher goroutine.
type Gateway struct {
	client *Client
	logger *slog.Logger

	mu           sync.RWMutex
	sessionToken string
	session      *domain.Session

	subMu       sync.Mutex
	subscribers map[uint64]func(*domain.Session)
	nextSubID   uint64
}

// NewGateway creates a credential gateway backed by the given Kratos client
func NewGateway(client *Client, logger *slog.Logger) *Gateway {
	return &Gateway{
		client:      client,
		logger:      logger.With("component", "credential_gateway"),
		subscribers: make(map[uint64]func(*domain.Session)),
	}
}

// CreateIdentity registers a new identity through the native registration
// flow. On success Kratos issues a session, which becomes the ambient one.
func (g *Gateway) CreateIdentity(ctx context.Context, email, password, username string) (*domain.Identity, error) {
	flow, httpResp, err := g.client.PublicAPI().FrontendAPI.CreateNativeRegistrationFlow(ctx).Execute()
	if err != nil {
		return nil, g.transformError(err, httpResp, "create registration flow")
	}

	method := kratosclient.UpdateRegistrationFlowWithPasswordMethod{
		Method:   "password",
		Password: password,
		Traits: map[string]interface{}{
			"email":    email,
			"username": username,
		},
	}

	result, httpResp, err := g.client.PublicAPI().FrontendAPI.
		UpdateRegistrationFlow(ctx).
		Flow(flow.Id).
		UpdateRegistrationFlowBody(kratosclient.UpdateRegistrationFlowWithPasswordMethodAsUpdateRegistrationFlowBody(&method)).
		Execute()
	if err != nil {
		return nil, g.transformError(err, httpResp, "submit registration flow")
	}

	identity := identityFromKratos(&result.Identity)

	if result.Session != nil {
		session := sessionFromKratos(result.Session)
		if session.Identity == nil {
			session.Identity = identity
		}
		g.adoptSession(result.GetSessionToken(), session)
	}

	g.logger.Info("identity created", "identity_id", identity.ID)
	return identity, nil
}

// Authenticate performs a native password login and adopts the resulting
// session as the ambient one.
func (g *Gateway) Authenticate(ctx context.Context, email, password string) (*domain.Identity, error) {
	flow, httpResp, err := g.client.PublicAPI().FrontendAPI.CreateNativeLoginFlow(ctx).Execute()
	if err != nil {
		return nil, g.transformError(err, httpResp, "create login flow")
	}

	method := kratosclient.UpdateLoginFlowWithPasswordMethod{
		Method:     "password",
		Identifier: email,
		Password:   password,
	}

	result, httpResp, err := g.client.PublicAPI().FrontendAPI.
		UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(kratosclient.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(&method)).
		Execute()
	if err != nil {
		return nil, g.transformError(err, httpResp, "submit login flow")
	}

	session := sessionFromKratos(&result.Session)
	if session.Identity == nil {
		// A session with no identity is unusable; holding its token would
		// leave an orphan ambient session behind a failed login.
		g.dropSession()
		return nil, nil
	}
	g.adoptSession(result.GetSessionToken(), session)

	g.logger.Info("identity authenticated", "identity_id", session.Identity.ID)
	return session.Identity, nil
}

// CurrentSession returns the ambient session after revalidating it with
// Kratos. Returns (nil, nil) when no session is held or it has expired.
func (g *Gateway) CurrentSession(ctx context.Context) (*domain.Session, error) {
	g.mu.RLock()
	token := g.sessionToken
	g.mu.RUnlock()

	if token == "" {
		return nil, nil
	}

	kratosSession, httpResp, err := g.client.PublicAPI().FrontendAPI.
		ToSession(ctx).
		XSessionToken(token).
		Execute()
	if err != nil {
		if isSessionGone(httpResp) {
			g.logger.Info("ambient session expired")
			g.dropSession()
			return nil, nil
		}
		return nil, g.transformError(err, httpResp, "check session")
	}

	session := sessionFromKratos(kratosSession)
	if !session.IsValid() {
		g.dropSession()
		return nil, nil
	}

	g.mu.Lock()
	g.session = session
	g.mu.Unlock()

	return session, nil
}

// SignOut revokes the ambient session with Kratos. Idempotent: without a
// session it returns nil immediately.
func (g *Gateway) SignOut(ctx context.Context) error {
	g.mu.RLock()
	token := g.sessionToken
	g.mu.RUnlock()

	if token == "" {
		return nil
	}

	httpResp, err := g.client.PublicAPI().FrontendAPI.
		PerformNativeLogout(ctx).
		PerformNativeLogoutBody(kratosclient.PerformNativeLogoutBody{SessionToken: token}).
		Execute()
	if err != nil && !isSessionGone(httpResp) {
		return g.transformError(err, httpResp, "logout")
	}

	g.dropSession()
	g.logger.Info("signed out")
	return nil
}

// OnSessionChange registers fn to be called whenever the ambient session
// changes. fn receives nil on sign-out or expiry.
func (g *Gateway) OnSessionChange(fn func(*domain.Session)) port.Subscription {
	g.subMu.Lock()
	defer g.subMu.Unlock()

	id := g.nextSubID
	g.nextSubID++
	g.subscribers[id] = fn

	return &subscription{gateway: g, id: id}
}

// Watch polls Kratos so expiry is noticed without a user action. Blocks
// until ctx is cancelled.
func (g *Gateway) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.mu.RLock()
			held := g.sessionToken != ""
			g.mu.RUnlock()
			if !held {
				continue
			}
			if _, err := g.CurrentSession(ctx); err != nil {
				g.logger.Warn("session refresh check failed", "error", err)
			}
		}
	}
}

// adoptSession replaces the ambient session and notifies subscribers
func (g *Gateway) adoptSession(token string, session *domain.Session) {
	g.mu.Lock()
	g.sessionToken = token
	g.session = session
	g.mu.Unlock()

	g.notify(session)
}

// dropSession clears the ambient session and notifies subscribers
func (g *Gateway) dropSession() {
	g.mu.Lock()
	hadSession := g.sessionToken != "" || g.session != nil
	g.sessionToken = ""
	g.session = nil
	g.mu.Unlock()

	if hadSession {
		g.notify(nil)
	}
}

func (g *Gateway) notify(session *domain.Session) {
	g.subMu.Lock()
	fns := make([]func(*domain.Session), 0, len(g.subscribers))
	for _, fn := range g.subscribers {
		fns = append(fns, fn)
	}
	g.subMu.Unlock()

	for _, fn := range fns {
		fn(session)
	}
}

type subscription struct {
	gateway *Gateway
	id      uint64
	once    sync.Once
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.gateway.subMu.Lock()
		delete(s.gateway.subscribers, s.id)
		s.gateway.subMu.Unlock()
	})
}

// sessionFromKratos maps a Kratos session to the domain model
func sessionFromKratos(kratosSession *kratosclient.Session) *domain.Session {
	session := &domain.Session{
		ID:     kratosSession.Id,
		Active: kratosSession.GetActive(),
	}

	if kratosSession.ExpiresAt != nil {
		session.ExpiresAt = *kratosSession.ExpiresAt
	}
	if kratosSession.AuthenticatedAt != nil {
		session.AuthenticatedAt = *kratosSession.AuthenticatedAt
	}

	if kratosSession.Identity != nil {
		session.Identity = identityFromKratos(kratosSession.Identity)
	}

	return session
}

// identityFromKratos maps a Kratos identity to the domain model
func identityFromKratos(kratosIdentity *kratosclient.Identity) *domain.Identity {
	identity := &domain.Identity{
		ID: kratosIdentity.Id,
	}

	if traits, ok := kratosIdentity.GetTraits().(map[string]interface{}); ok {
		if email, ok := traits["email"].(string); ok {
			identity.Email = email
		}
	}

	if createdAt := kratosIdentity.GetCreatedAt(); !createdAt.IsZero() {
		identity.CreatedAt = createdAt
	}

	return identity
}

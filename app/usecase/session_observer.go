package usecase

import (
	"context"
	"log/slog"
	"sync"

	"blog-service/app/domain"
	"blog-service/app/port"
)

// SessionObserver implements port.SessionPublisher. It tracks the ambient
// session through the credential gateway and republishes it as identity
// state. Subscribers see every change plus the initial not-ready to ready
// transition.
type SessionObserver struct {
	gateway port.CredentialGateway
	logger  *slog.Logger

	mu    sync.RWMutex
	state port.SessionState

	subMu       sync.Mutex
	subscribers map[uint64]func(port.SessionState)
	nextSubID   uint64

	gatewaySub port.Subscription
	startOnce  sync.Once
}

// NewSessionObserver creates a new SessionObserver
func NewSessionObserver(gateway port.CredentialGateway, logger *slog.Logger) *SessionObserver {
	return &SessionObserver{
		gateway:     gateway,
		logger:      logger.With("component", "session_observer"),
		subscribers: make(map[uint64]func(port.SessionState)),
	}
}

// Start resolves the current session once and begins following gateway
// session changes. Until Start completes, Current reports a not-ready state.
func (o *SessionObserver) Start(ctx context.Context) {
	o.startOnce.Do(func() {
		// Follow changes first so nothing between the initial fetch and the
		// subscription gets lost.
		o.gatewaySub = o.gateway.OnSessionChange(func(session *domain.Session) {
			state := port.SessionState{Ready: true}
			if session.IsValid() {
				state.Identity = session.Identity
			}
			o.publish(state)
		})

		session, err := o.gateway.CurrentSession(ctx)
		if err != nil {
			// An unreachable provider still resolves the initial state: the
			// caller is treated as signed out until a change says otherwise.
			o.logger.Warn("initial session fetch failed", "error", err)
		}

		state := port.SessionState{Ready: true}
		if session.IsValid() {
			state.Identity = session.Identity
		}
		o.publishInitial(state)
	})
}

// Stop releases the gateway subscription
func (o *SessionObserver) Stop() {
	if o.gatewaySub != nil {
		o.gatewaySub.Unsubscribe()
	}
}

// Current returns the last published state
func (o *SessionObserver) Current() port.SessionState {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state
}

// Subscribe registers fn for every subsequent state change
func (o *SessionObserver) Subscribe(fn func(port.SessionState)) port.Subscription {
	o.subMu.Lock()
	defer o.subMu.Unlock()

	id := o.nextSubID
	o.nextSubID++
	o.subscribers[id] = fn

	return &observerSubscription{observer: o, id: id}
}

func (o *SessionObserver) publish(state port.SessionState) {
	o.mu.Lock()
	o.state = state
	o.mu.Unlock()

	o.fanOut(state)
}

// publishInitial records the startup state unless a gateway notification
// arrived first while the initial fetch was in flight; the notification is
// fresher and wins.
func (o *SessionObserver) publishInitial(state port.SessionState) {
	o.mu.Lock()
	if o.state.Ready {
		o.mu.Unlock()
		return
	}
	o.state = state
	o.mu.Unlock()

	o.fanOut(state)
}

func (o *SessionObserver) fanOut(state port.SessionState) {
	o.subMu.Lock()
	fns := make([]func(port.SessionState), 0, len(o.subscribers))
	for _, fn := range o.subscribers {
		fns = append(fns, fn)
	}
	o.subMu.Unlock()

	for _, fn := range fns {
		fn(state)
	}

	o.logger.Debug("session state published",
		"ready", state.Ready,
		"signed_in", state.Identity != nil)
}

type observerSubscription struct {
	observer *SessionObserver
	id       uint64
	once     sync.Once
}

func (s *observerSubscription) Unsubscribe() {
	s.once.Do(func() {
		s.observer.subMu.Lock()
		delete(s.observer.subscribers, s.id)
		s.observer.subMu.Unlock()
	})
}

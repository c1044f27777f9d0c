package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-desk/internal/config"
	"github.com/spec-kit/support-desk/internal/domain"
	"github.com/spec-kit/support-desk/internal/events"
	"github.com/spec-kit/support-desk/internal/observability"
	"github.com/spec-kit/support-desk/internal/repository"
	"github.com/spec-kit/support-desk/internal/seed"
	"github.com/spec-kit/support-desk/internal/session"
	"github.com/spec-kit/support-desk/internal/simulate"
)

// eventRecorder collects every published event for assertions.
type eventRecorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *eventRecorder) record(_ context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *eventRecorder) ofType(t events.EventType) []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []events.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// fixture wires the full service layer over zero-delay latency and freshly
// seeded stores.
type fixture struct {
	sessions  *session.Session
	auth      *AuthService
	customers *CustomerService
	tickets   *TicketService
	comments  *CommentService
	reset     *ResetService
	recorder  *eventRecorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	sessions, err := session.New(seed.Users(), 0)
	require.NoError(t, err)

	recorder := &eventRecorder{}
	dispatcher := events.NewInMemoryDispatcher()
	for _, eventType := range events.All() {
		dispatcher.Subscribe(eventType, recorder.record)
	}

	metrics := observability.NewMetrics()
	latency := simulate.None()

	customerRepo := repository.NewCustomerRepository()
	ticketRepo := repository.NewTicketRepository(sessions)
	commentRepo := repository.NewCommentRepository(sessions)

	reset := NewResetService(customerRepo, ticketRepo, commentRepo, dispatcher)
	reset.ResetAllData()

	authCfg := config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 15, BcryptCost: 0}

	return &fixture{
		sessions: sessions,
		auth:     NewAuthService(authCfg, sessions, latency),
		customers: NewCustomerService(CustomerDependencies{
			CustomerRepo: customerRepo,
			Sessions:     sessions,
			Latency:      latency,
			Dispatcher:   dispatcher,
			Metrics:      metrics,
		}),
		tickets: NewTicketService(TicketDependencies{
			TicketRepo: ticketRepo,
			Sessions:   sessions,
			Latency:    latency,
			Dispatcher: dispatcher,
			Metrics:    metrics,
		}),
		comments: NewCommentService(CommentDependencies{
			CommentRepo: commentRepo,
			Sessions:    sessions,
			Latency:     latency,
			Dispatcher:  dispatcher,
			Metrics:     metrics,
		}),
		reset:    reset,
		recorder: recorder,
	}
}

func (f *fixture) loginAs(t *testing.T, username string) {
	t.Helper()
	switch username {
	case "admin":
		f.sessions.SetCurrentUser(domain.LoggedInUser{Username: "admin", Role: domain.RoleAdmin})
	case "agent":
		f.sessions.SetCurrentUser(domain.LoggedInUser{Username: "agent", Role: domain.RoleAgent})
	default:
		t.Fatalf("unknown seed user %q", username)
	}
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func await[T any](t *testing.T, c *simulate.Completion[T]) (T, error) {
	t.Helper()
	return c.Wait(waitCtx(t))
}

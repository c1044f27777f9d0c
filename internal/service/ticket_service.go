package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/support-desk/internal/domain"
	"github.com/spec-kit/support-desk/internal/events"
	"github.com/spec-kit/support-desk/internal/observability"
	"github.com/spec-kit/support-desk/internal/repository"
	"github.com/spec-kit/support-desk/internal/session"
	"github.com/spec-kit/support-desk/internal/simulate"
	apperrors "github.com/spec-kit/support-desk/pkg/util/errorutil"
)

// TicketService fronts the role-scoped ticket store.
type TicketService struct {
	tickets    repository.TicketRepository
	sessions   session.Provider
	latency    *simulate.Latency
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Sessions   session.Provider
	Latency    *simulate.Latency
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		sessions:   deps.Sessions,
		latency:    deps.Latency,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
	}
}

// ResetData re-seeds the store immediately, outside the delay wrapper.
func (s *TicketService) ResetData() {
	s.tickets.ResetData()
}

// GetTickets lists one filtered, sorted, role-scoped page.
func (s *TicketService) GetTickets(page, pageSize int, filter repository.TicketFilter, sortField domain.SortField, direction domain.SortDirection) *simulate.Completion[repository.TicketPage] {
	s.metrics.RecordOperation("ticket.list", "ok")
	return simulate.Resolve(s.latency, s.tickets.List(page, pageSize, filter, sortField, direction))
}

// GetTicketByID resolves with nil when the ticket is absent or outside the
// agent's scope; the two cases are indistinguishable on purpose.
func (s *TicketService) GetTicketByID(id string) *simulate.Completion[*domain.Ticket] {
	s.metrics.RecordOperation("ticket.get", "ok")
	return simulate.Resolve(s.latency, s.tickets.GetByID(id))
}

// GetTicketsByCustomerID lists the customer's tickets, role-scoped.
func (s *TicketService) GetTicketsByCustomerID(customerID string) *simulate.Completion[[]domain.Ticket] {
	s.metrics.RecordOperation("ticket.list_by_customer", "ok")
	return simulate.Resolve(s.latency, s.tickets.ListByCustomer(customerID))
}

// GetRecentTickets returns the most recently updated visible tickets.
func (s *TicketService) GetRecentTickets(limit int) *simulate.Completion[[]domain.Ticket] {
	s.metrics.RecordOperation("ticket.recent", "ok")
	return simulate.Resolve(s.latency, s.tickets.Recent(limit))
}

// GetTicketStats summarizes the visible collection.
func (s *TicketService) GetTicketStats() *simulate.Completion[domain.TicketStats] {
	s.metrics.RecordOperation("ticket.stats", "ok")
	return simulate.Resolve(s.latency, s.tickets.Stats())
}

// CreateTicket appends a new ticket with status forced to Open.
func (s *TicketService) CreateTicket(input domain.TicketInput) *simulate.Completion[domain.Ticket] {
	ticket, err := s.tickets.Create(input)
	if err != nil {
		return s.reject("ticket.create", err)
	}
	s.publish(events.EventTicketCreated, ticket.ID, events.TicketChangedPayload{
		Title: ticket.Title, Status: ticket.Status, Priority: ticket.Priority,
	})
	s.metrics.RecordOperation("ticket.create", "ok")
	return simulate.Resolve(s.latency, ticket)
}

// UpdateTicket merges partial fields and refreshes updatedAt.
func (s *TicketService) UpdateTicket(id string, input domain.TicketInput) *simulate.Completion[domain.Ticket] {
	ticket, err := s.tickets.Update(id, input)
	if err != nil {
		return s.reject("ticket.update", err)
	}
	s.publish(events.EventTicketUpdated, ticket.ID, events.TicketChangedPayload{
		Title: ticket.Title, Status: ticket.Status, Priority: ticket.Priority,
	})
	s.metrics.RecordOperation("ticket.update", "ok")
	return simulate.Resolve(s.latency, ticket)
}

// DeleteTicket removes a ticket. Admin only; the sentinel id always rejects.
func (s *TicketService) DeleteTicket(id string) *simulate.Completion[bool] {
	if err := s.tickets.Delete(id); err != nil {
		s.metrics.RecordOperation("ticket.delete", apperrors.ToDomainError(err).Code)
		return simulate.Reject[bool](s.latency, err)
	}
	s.publish(events.EventTicketDeleted, id, nil)
	s.metrics.RecordOperation("ticket.delete", "ok")
	return simulate.Resolve(s.latency, true)
}

func (s *TicketService) reject(op string, err error) *simulate.Completion[domain.Ticket] {
	s.metrics.RecordOperation(op, apperrors.ToDomainError(err).Code)
	return simulate.Reject[domain.Ticket](s.latency, err)
}

func (s *TicketService) publish(eventType events.EventType, entityID string, payload any) {
	if s.dispatcher == nil {
		return
	}
	actor := ""
	if user := s.sessions.CurrentUser(); user != nil {
		actor = user.Username
	}
	_ = s.dispatcher.Publish(context.Background(), events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		EntityID:  entityID,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/support-desk/internal/events"
	"github.com/spec-kit/support-desk/internal/repository"
)

// ResetService restores every store to its seed state. Invoked once at
// startup so runs start deterministic, and exposed to admins for repeatable
// test sessions. The seed datasets are independently self-consistent, so
// order does not matter.
type ResetService struct {
	customers  repository.CustomerRepository
	tickets    repository.TicketRepository
	comments   repository.CommentRepository
	dispatcher events.Dispatcher
}

// NewResetService constructs the coordinator.
func NewResetService(customers repository.CustomerRepository, tickets repository.TicketRepository, comments repository.CommentRepository, dispatcher events.Dispatcher) *ResetService {
	return &ResetService{
		customers:  customers,
		tickets:    tickets,
		comments:   comments,
		dispatcher: dispatcher,
	}
}

// ResetAllData re-seeds all repositories.
func (s *ResetService) ResetAllData() {
	s.customers.ResetData()
	s.tickets.ResetData()
	s.comments.ResetData()
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(context.Background(), events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventDataReset,
			Timestamp: time.Now(),
		})
	}
}

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

// CommentService fronts the comment store.
type CommentService struct {
	comments   repository.CommentRepository
	sessions   session.Provider
	latency    *simulate.Latency
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
}

// CommentDependencies bundles collaborators for the comment service.
type CommentDependencies struct {
	CommentRepo repository.CommentRepository
	Sessions    session.Provider
	Latency     *simulate.Latency
	Dispatcher  events.Dispatcher
	Metrics     *observability.Metrics
}

// NewCommentService constructs the service.
func NewCommentService(deps CommentDependencies) *CommentService {
	return &CommentService{
		comments:   deps.CommentRepo,
		sessions:   deps.Sessions,
		latency:    deps.Latency,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
	}
}

// ResetData re-seeds the store immediately, outside the delay wrapper.
func (s *CommentService) ResetData() {
	s.comments.ResetData()
}

// GetCommentsByTicketID returns the thread in chronological order.
func (s *CommentService) GetCommentsByTicketID(ticketID string) *simulate.Completion[[]domain.Comment] {
	s.metrics.RecordOperation("comment.list", "ok")
	return simulate.Resolve(s.latency, s.comments.ListByTicket(ticketID))
}

// AddComment appends a comment authored by the current identity.
func (s *CommentService) AddComment(ticketID string, input domain.CommentInput) *simulate.Completion[domain.Comment] {
	comment, err := s.comments.Add(ticketID, input)
	if err != nil {
		s.metrics.RecordOperation("comment.add", apperrors.ToDomainError(err).Code)
		return simulate.Reject[domain.Comment](s.latency, err)
	}
	preview := comment.Message
	if len(preview) > 120 {
		preview = preview[:117] + "..."
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(context.Background(), events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventCommentAdded,
			EntityID:  comment.ID,
			Actor:     comment.AuthorUsername,
			Timestamp: time.Now(),
			Payload: events.CommentAddedPayload{
				TicketID:       comment.TicketID,
				AuthorUsername: comment.AuthorUsername,
				MessagePreview: preview,
			},
		})
	}
	s.metrics.RecordOperation("comment.add", "ok")
	return simulate.Resolve(s.latency, comment)
}

package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/spec-kit/support-desk/internal/domain"
	"github.com/spec-kit/support-desk/internal/seed"
	"github.com/spec-kit/support-desk/internal/session"
	apperrors "github.com/spec-kit/support-desk/pkg/util/errorutil"
)

// commentCounterSeed is where the monotonic id counter restarts on every
// reset; seed data occupies CMT-001 through CMT-205.
const commentCounterSeed = 206

// CommentRepository owns the comment collection. Reads carry no role check
// of their own: visibility rides on the caller having resolved the ticket
// first, which is where scoping is enforced.
type CommentRepository interface {
	ResetData()
	ListByTicket(ticketID string) []domain.Comment
	Add(ticketID string, input domain.CommentInput) (domain.Comment, error)
}

type commentRepository struct {
	sessions session.Provider

	mu       sync.Mutex
	comments []domain.Comment
	nextID   int
}

// NewCommentRepository instantiates the store.
func NewCommentRepository(sessions session.Provider) CommentRepository {
	return &commentRepository{sessions: sessions, nextID: commentCounterSeed}
}

// ResetData replaces the collection with a fresh copy of the seed dataset
// and rewinds the id counter.
func (r *commentRepository) ResetData() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.comments = seed.Comments()
	r.nextID = commentCounterSeed
}

// ListByTicket returns the thread in chronological order.
func (r *commentRepository) ListByTicket(ticketID string) []domain.Comment {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Comment{}
	for _, c := range r.comments {
		if c.TicketID == ticketID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Add appends a comment authored by the current session identity.
func (r *commentRepository) Add(ticketID string, input domain.CommentInput) (domain.Comment, error) {
	user := r.sessions.CurrentUser()
	if user == nil {
		return domain.Comment{}, apperrors.NewUnauthenticated("you must be logged in to add a comment")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	comment := domain.Comment{
		ID:             fmt.Sprintf("CMT-%03d", r.nextID),
		TicketID:       ticketID,
		AuthorUsername: user.Username,
		Message:        input.Message,
		CreatedAt:      time.Now(),
	}
	r.nextID++
	r.comments = append(r.comments, comment)
	return comment, nil
}

package repository

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spec-kit/support-desk/internal/domain"
	"github.com/spec-kit/support-desk/internal/seed"
	"github.com/spec-kit/support-desk/internal/session"
	apperrors "github.com/spec-kit/support-desk/pkg/util/errorutil"
)

const (
	// ticketCounterSeed is where the monotonic id counter restarts on every
	// reset; seed data occupies TKT-001 through TKT-105.
	ticketCounterSeed = 106

	// SlaLockedTicketID deterministically fails deletion. Reserved for
	// automated tests.
	SlaLockedTicketID = "TKT-001"

	// CreateFailMarker anywhere in a new ticket's title deterministically
	// fails creation. Reserved for automated tests.
	CreateFailMarker = "FAIL_CREATE"
)

// AssignedToMe and AssignedToAll are special values for the assignedTo
// filter: "me" resolves to the session username, "all" disables the filter.
const (
	AssignedToMe  = "me"
	AssignedToAll = "all"
)

// TicketFilter captures ticket list parameters. All fields are optional and
// combine with AND.
type TicketFilter struct {
	Search     string
	Status     string
	Priority   string
	AssignedTo string
	CustomerID string
}

// TicketPage is one page of tickets plus the post-filter, pre-pagination total.
type TicketPage struct {
	Tickets []domain.Ticket
	Total   int
}

// TicketRepository owns the ticket collection. Every read is role-scoped:
// agents only ever see tickets assigned to them, admins see everything.
type TicketRepository interface {
	ResetData()
	List(page, pageSize int, filter TicketFilter, sortField domain.SortField, direction domain.SortDirection) TicketPage
	GetByID(id string) *domain.Ticket
	ListByCustomer(customerID string) []domain.Ticket
	Recent(limit int) []domain.Ticket
	Stats() domain.TicketStats
	Create(input domain.TicketInput) (domain.Ticket, error)
	Update(id string, input domain.TicketInput) (domain.Ticket, error)
	Delete(id string) error
}

type ticketRepository struct {
	sessions session.Provider

	mu      sync.Mutex
	tickets []domain.Ticket
	nextID  int
}

// NewTicketRepository instantiates the store with an injected session
// provider for role scoping.
func NewTicketRepository(sessions session.Provider) TicketRepository {
	return &ticketRepository{sessions: sessions, nextID: ticketCounterSeed}
}

// ResetData replaces the collection with a fresh copy of the seed dataset
// and rewinds the id counter.
func (r *ticketRepository) ResetData() {
	tickets := seed.Tickets()
	for i := range tickets {
		tickets[i] = tickets[i].Clone()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets = tickets
	r.nextID = ticketCounterSeed
}

// scoped returns the tickets visible to the current session. Must be called
// with the lock held.
func (r *ticketRepository) scoped() []domain.Ticket {
	user := r.sessions.CurrentUser()
	visible := make([]domain.Ticket, 0, len(r.tickets))
	for _, t := range r.tickets {
		if user != nil && user.IsAgent() && t.AssignedToUsername != user.Username {
			continue
		}
		visible = append(visible, t)
	}
	return visible
}

func (r *ticketRepository) List(page, pageSize int, filter TicketFilter, sortField domain.SortField, direction domain.SortDirection) TicketPage {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.sessions.CurrentUser()
	filtered := make([]domain.Ticket, 0, len(r.tickets))
	search := strings.ToLower(filter.Search)
	for _, t := range r.scoped() {
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) &&
			!strings.Contains(strings.ToLower(t.ID), search) {
			continue
		}
		if filter.Status != "" && string(t.Status) != filter.Status {
			continue
		}
		if filter.Priority != "" && string(t.Priority) != filter.Priority {
			continue
		}
		if filter.AssignedTo != "" && filter.AssignedTo != AssignedToAll {
			want := filter.AssignedTo
			if want == AssignedToMe {
				if user == nil {
					continue
				}
				want = user.Username
			}
			if t.AssignedToUsername != want {
				continue
			}
		}
		if filter.CustomerID != "" && t.CustomerID != filter.CustomerID {
			continue
		}
		filtered = append(filtered, t)
	}

	sortTickets(filtered, sortField, direction)

	items := paginate(filtered, page, pageSize)
	for i := range items {
		items[i] = items[i].Clone()
	}
	return TicketPage{Tickets: items, Total: len(filtered)}
}

func sortTickets(tickets []domain.Ticket, field domain.SortField, direction domain.SortDirection) {
	less := func(a, b domain.Ticket) int {
		switch field {
		case domain.SortByCreatedAt:
			return a.CreatedAt.Compare(b.CreatedAt)
		case domain.SortByPriority:
			return a.Priority.Rank() - b.Priority.Rank()
		case domain.SortByStatus:
			return strings.Compare(string(a.Status), string(b.Status))
		case domain.SortByTitle:
			return strings.Compare(a.Title, b.Title)
		default: // updatedAt
			return a.UpdatedAt.Compare(b.UpdatedAt)
		}
	}
	sort.SliceStable(tickets, func(i, j int) bool {
		cmp := less(tickets[i], tickets[j])
		if direction == domain.SortAsc {
			return cmp < 0
		}
		return cmp > 0
	})
}

// GetByID hides tickets outside an agent's scope: the caller cannot tell a
// denied ticket from a missing one.
func (r *ticketRepository) GetByID(id string) *domain.Ticket {
	r.mu.Lock()
	defer r.mu.Unlock()
	user := r.sessions.CurrentUser()
	for _, t := range r.tickets {
		if t.ID != id {
			continue
		}
		if user != nil && user.IsAgent() && t.AssignedToUsername != user.Username {
			return nil
		}
		out := t.Clone()
		return &out
	}
	return nil
}

func (r *ticketRepository) ListByCustomer(customerID string) []domain.Ticket {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Ticket{}
	for _, t := range r.scoped() {
		if t.CustomerID == customerID {
			out = append(out, t.Clone())
		}
	}
	return out
}

func (r *ticketRepository) Recent(limit int) []domain.Ticket {
	r.mu.Lock()
	defer r.mu.Unlock()
	visible := r.scoped()
	sortTickets(visible, domain.SortByUpdatedAt, domain.SortDesc)
	if limit > 0 && limit < len(visible) {
		visible = visible[:limit]
	}
	out := make([]domain.Ticket, 0, len(visible))
	for _, t := range visible {
		out = append(out, t.Clone())
	}
	return out
}

func (r *ticketRepository) Stats() domain.TicketStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	user := r.sessions.CurrentUser()
	stats := domain.TicketStats{}
	for _, t := range r.scoped() {
		stats.Total++
		if t.Status == domain.TicketStatusOpen {
			stats.Open++
		}
		if user != nil && t.AssignedToUsername == user.Username {
			stats.AssignedToMe++
		}
	}
	return stats
}

// Create assigns the next monotonic id and forces status Open regardless of
// input. createdAt and updatedAt start equal.
func (r *ticketRepository) Create(input domain.TicketInput) (domain.Ticket, error) {
	title := ""
	if input.Title != nil {
		title = *input.Title
	}
	if strings.Contains(title, CreateFailMarker) {
		return domain.Ticket{}, apperrors.NewSimulatedFault(
			"Failed to create ticket: The ticket system is currently experiencing issues. Please try again later.",
			http.StatusServiceUnavailable,
		)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	ticket := domain.Ticket{
		ID:        fmt.Sprintf("TKT-%03d", r.nextID),
		Title:     title,
		Status:    domain.TicketStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
		Tags:      append([]string(nil), input.Tags...),
	}
	r.nextID++
	if input.Description != nil {
		ticket.Description = *input.Description
	}
	if input.Priority != nil {
		ticket.Priority = *input.Priority
	}
	if input.CustomerID != nil {
		ticket.CustomerID = *input.CustomerID
	}
	if input.AssignedToUsername != nil {
		ticket.AssignedToUsername = *input.AssignedToUsername
	}

	r.tickets = append(r.tickets, ticket.Clone())
	return ticket, nil
}

func (r *ticketRepository) Update(id string, input domain.TicketInput) (domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tickets {
		if r.tickets[i].ID != id {
			continue
		}
		user := r.sessions.CurrentUser()
		if user != nil && user.IsAgent() && r.tickets[i].AssignedToUsername != user.Username {
			return domain.Ticket{}, apperrors.NewForbidden("you do not have permission to edit this ticket")
		}

		t := &r.tickets[i]
		if input.Title != nil {
			t.Title = *input.Title
		}
		if input.Description != nil {
			t.Description = *input.Description
		}
		if input.Status != nil {
			t.Status = *input.Status
		}
		if input.Priority != nil {
			t.Priority = *input.Priority
		}
		if input.CustomerID != nil {
			t.CustomerID = *input.CustomerID
		}
		if input.AssignedToUsername != nil {
			t.AssignedToUsername = *input.AssignedToUsername
		}
		if input.Tags != nil {
			t.Tags = append([]string(nil), input.Tags...)
		}
		t.UpdatedAt = time.Now()
		return t.Clone(), nil
	}
	return domain.Ticket{}, apperrors.NewNotFound("ticket", map[string]any{"id": id})
}

func (r *ticketRepository) Delete(id string) error {
	user := r.sessions.CurrentUser()
	if user == nil || !user.IsAdmin() {
		return apperrors.NewForbidden("only administrators can delete tickets")
	}
	if id == SlaLockedTicketID {
		return apperrors.NewSimulatedFault(
			"Cannot delete ticket: This ticket is linked to an active SLA agreement and cannot be removed. Please contact your administrator.",
			http.StatusConflict,
		)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tickets {
		if r.tickets[i].ID == id {
			r.tickets = append(r.tickets[:i], r.tickets[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFound("ticket", map[string]any{"id": id})
}

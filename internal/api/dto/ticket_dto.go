package dto

import "github.com/spec-kit/support-desk/internal/domain"

// CreateTicketRequest payload. Status is absent on purpose: new tickets
// always start Open.
type CreateTicketRequest struct {
	Title              string                `json:"title"`
	Description        string                `json:"description"`
	Priority           domain.TicketPriority `json:"priority"`
	CustomerID         string                `json:"customerId"`
	AssignedToUsername string                `json:"assignedToUsername"`
	Tags               []string              `json:"tags"`
}

// Input converts the request into the repository's partial-input form.
func (r CreateTicketRequest) Input() domain.TicketInput {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.TicketInput{
		Title:              &r.Title,
		Description:        &r.Description,
		Priority:           &r.Priority,
		CustomerID:         &r.CustomerID,
		AssignedToUsername: &r.AssignedToUsername,
		Tags:               tags,
	}
}

// TicketListResponse is one page of tickets.
type TicketListResponse struct {
	Tickets []domain.Ticket `json:"tickets"`
	Total   int             `json:"total"`
}

// CreateCommentRequest payload.
type CreateCommentRequest struct {
	Message string `json:"message"`
}

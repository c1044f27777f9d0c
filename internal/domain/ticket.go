package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "Open"
	TicketStatusInProgress TicketStatus = "In Progress"
	TicketStatusResolved   TicketStatus = "Resolved"
	TicketStatusClosed     TicketStatus = "Closed"
)

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "Low"
	TicketPriorityMedium   TicketPriority = "Medium"
	TicketPriorityHigh     TicketPriority = "High"
	TicketPriorityCritical TicketPriority = "Critical"
)

// priorityRank orders priorities for sorting. Critical outranks High
// regardless of the lexicographic order of the labels.
var priorityRank = map[TicketPriority]int{
	TicketPriorityCritical: 4,
	TicketPriorityHigh:     3,
	TicketPriorityMedium:   2,
	TicketPriorityLow:      1,
}

// Rank returns the numeric sort weight of a priority.
func (p TicketPriority) Rank() int {
	return priorityRank[p]
}

// Ticket is the aggregate for support requests.
type Ticket struct {
	ID                 string         `json:"id"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Status             TicketStatus   `json:"status"`
	Priority           TicketPriority `json:"priority"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	CustomerID         string         `json:"customerId"`
	AssignedToUsername string         `json:"assignedToUsername"`
	Tags               []string       `json:"tags"`
}

// Clone returns a copy with its own tags slice, so callers never share
// mutable state with the store.
func (t Ticket) Clone() Ticket {
	out := t
	out.Tags = append([]string(nil), t.Tags...)
	return out
}

// TicketInput carries ticket form fields for create and update.
type TicketInput struct {
	Title              *string         `json:"title"`
	Description        *string         `json:"description"`
	Status             *TicketStatus   `json:"status"`
	Priority           *TicketPriority `json:"priority"`
	CustomerID         *string         `json:"customerId"`
	AssignedToUsername *string         `json:"assignedToUsername"`
	Tags               []string        `json:"tags"`
}

// SortField enumerates ticket sort keys.
type SortField string

const (
	SortByUpdatedAt SortField = "updatedAt"
	SortByCreatedAt SortField = "createdAt"
	SortByPriority  SortField = "priority"
	SortByStatus    SortField = "status"
	SortByTitle     SortField = "title"
)

// SortDirection enumerates sort orders.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// TicketStats summarizes the role-scoped collection for the dashboard.
type TicketStats struct {
	Open         int `json:"open"`
	AssignedToMe int `json:"assignedToMe"`
	Total        int `json:"total"`
}

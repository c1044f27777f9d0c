package events

import (
	"time"

	"github.com/spec-kit/support-desk/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated   EventType = "ticket_created"
	EventTicketUpdated   EventType = "ticket_updated"
	EventTicketDeleted   EventType = "ticket_deleted"
	EventCustomerCreated EventType = "customer_created"
	EventCustomerUpdated EventType = "customer_updated"
	EventCustomerDeleted EventType = "customer_deleted"
	EventCommentAdded    EventType = "comment_added"
	EventDataReset       EventType = "data_reset"
)

// All lists every event type, for subscribers that want the full stream.
func All() []EventType {
	return []EventType{
		EventTicketCreated, EventTicketUpdated, EventTicketDeleted,
		EventCustomerCreated, EventCustomerUpdated, EventCustomerDeleted,
		EventCommentAdded, EventDataReset,
	}
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	Actor     string      `json:"actor,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketChangedPayload payload for ticket lifecycle events.
type TicketChangedPayload struct {
	Title    string                `json:"title,omitempty"`
	Status   domain.TicketStatus   `json:"status,omitempty"`
	Priority domain.TicketPriority `json:"priority,omitempty"`
}

// CustomerChangedPayload payload for customer lifecycle events.
type CustomerChangedPayload struct {
	Name     string          `json:"name,omitempty"`
	Company  string          `json:"company,omitempty"`
	SlaLevel domain.SlaLevel `json:"sla_level,omitempty"`
}

// CommentAddedPayload payload.
type CommentAddedPayload struct {
	TicketID       string `json:"ticket_id"`
	AuthorUsername string `json:"author_username"`
	MessagePreview string `json:"message_preview"`
}

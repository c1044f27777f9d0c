package domain

import "time"

// Comment is a thread entry on a ticket. Comments for a deleted ticket are
// left orphaned; there is no cascade delete.
type Comment struct {
	ID             string    `json:"id"`
	TicketID       string    `json:"ticketId"`
	AuthorUsername string    `json:"authorUsername"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CommentInput carries the comment form payload.
type CommentInput struct {
	Message string `json:"message"`
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-desk/internal/api/dto"
	"github.com/spec-kit/support-desk/internal/domain"
	"github.com/spec-kit/support-desk/internal/repository"
	"github.com/spec-kit/support-desk/internal/service"
	apperrors "github.com/spec-kit/support-desk/pkg/util/errorutil"
)

// TicketsHandler exposes ticket and comment-thread endpoints.
type TicketsHandler struct {
	tickets  *service.TicketService
	comments *service.CommentService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService, commentService *service.CommentService) *TicketsHandler {
	return &TicketsHandler{tickets: ticketService, comments: commentService}
}

// List handles GET /tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	filter := repository.TicketFilter{
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		AssignedTo: c.Query("assigned_to"),
		CustomerID: c.Query("customer_id"),
	}
	sortField := domain.SortField(c.Query("sort", string(domain.SortByUpdatedAt)))
	direction := domain.SortDirection(c.Query("direction", string(domain.SortDesc)))

	page, err := h.tickets.GetTickets(c.QueryInt("page", 1), c.QueryInt("page_size", 10), filter, sortField, direction).Wait(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TicketListResponse{
		Tickets: page.Tickets,
		Total:   page.Total,
	}})
}

// Recent handles GET /tickets/recent.
func (h *TicketsHandler) Recent(c *fiber.Ctx) error {
	tickets, err := h.tickets.GetRecentTickets(c.QueryInt("limit", 5)).Wait(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": tickets})
}

// Stats handles GET /tickets/stats.
func (h *TicketsHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.tickets.GetTicketStats().Wait(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}

// Get handles GET /tickets/:id. An agent asking for an unassigned ticket
// gets the same 404 as for a missing one.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	ticket, err := h.tickets.GetTicketByID(c.Params("id")).Wait(c.UserContext())
	if err != nil {
		return err
	}
	if ticket == nil {
		return apperrors.NewNotFound("ticket", map[string]any{"id": c.Params("id")})
	}
	return c.JSON(fiber.Map{"data": ticket})
}

// Create handles POST /tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" {
		return apperrors.NewValidationError("title required", nil)
	}

	ticket, err := h.tickets.CreateTicket(req.Input()).Wait(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": ticket})
}

// Update handles PUT /tickets/:id with partial fields.
func (h *TicketsHandler) Update(c *fiber.Ctx) error {
	var input domain.TicketInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.tickets.UpdateTicket(c.Params("id"), input).Wait(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticket})
}

// Delete handles DELETE /tickets/:id.
func (h *TicketsHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.tickets.DeleteTicket(c.Params("id")).Wait(c.UserContext()); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Comments handles GET /tickets/:id/comments.
func (h *TicketsHandler) Comments(c *fiber.Ctx) error {
	comments, err := h.comments.GetCommentsByTicketID(c.Params("id")).Wait(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": comments})
}

// AddComment handles POST /tickets/:id/comments.
func (h *TicketsHandler) AddComment(c *fiber.Ctx) error {
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Message == "" {
		return apperrors.NewValidationError("message required", nil)
	}

	comment, err := h.comments.AddComment(c.Params("id"), domain.CommentInput{Message: req.Message}).Wait(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": comment})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-desk/internal/api/dto"
	"github.com/spec-kit/support-desk/internal/domain"
	"github.com/spec-kit/support-desk/internal/repository"
	"github.com/spec-kit/support-desk/internal/service"
	apperrors "github.com/spec-kit/support-desk/pkg/util/errorutil"
)

// CustomersHandler exposes the customer endpoints.
type CustomersHandler struct {
	customers *service.CustomerService
	tickets   *service.TicketService
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(customerService *service.CustomerService, ticketService *service.TicketService) *CustomersHandler {
	return &CustomersHandler{customers: customerService, tickets: ticketService}
}

// List handles GET /customers.
func (h *CustomersHandler) List(c *fiber.Ctx) error {
	filter := repository.CustomerFilter{
		Search:   c.Query("search"),
		SlaLevel: c.Query("sla_level"),
	}
	if raw := c.Query("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return apperrors.NewValidationError("is_active must be a boolean", nil)
		}
		filter.IsActive = &active
	}

	page, err := h.customers.GetCustomers(c.QueryInt("page", 1), c.QueryInt("page_size", 10), filter).Wait(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.CustomerListResponse{
		Customers: page.Customers,
		Total:     page.Total,
	}})
}

// ListAll handles GET /customers/all.
func (h *CustomersHandler) ListAll(c *fiber.Ctx) error {
	customers, err := h.customers.GetAllCustomers().Wait(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": customers})
}

// Get handles GET /customers/:id. Absence surfaces as 404 at the transport
// even though the service resolves it as a nil result.
func (h *CustomersHandler) Get(c *fiber.Ctx) error {
	customer, err := h.customers.GetCustomerByID(c.Params("id")).Wait(c.UserContext())
	if err != nil {
		return err
	}
	if customer == nil {
		return apperrors.NewNotFound("customer", map[string]any{"id": c.Params("id")})
	}
	return c.JSON(fiber.Map{"data": customer})
}

// Tickets handles GET /customers/:id/tickets.
func (h *CustomersHandler) Tickets(c *fiber.Ctx) error {
	tickets, err := h.tickets.GetTicketsByCustomerID(c.Params("id")).Wait(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": tickets})
}

// Create handles POST /customers. Admin-only via route guard.
func (h *CustomersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || req.Company == "" || req.SlaLevel == "" {
		return apperrors.NewValidationError("name, email, company and slaLevel required", nil)
	}

	customer, err := h.customers.CreateCustomer(req.Input()).Wait(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": customer})
}

// Update handles PUT /customers/:id with partial fields.
func (h *CustomersHandler) Update(c *fiber.Ctx) error {
	var input domain.CustomerInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	customer, err := h.customers.UpdateCustomer(c.Params("id"), input).Wait(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": customer})
}

// Delete handles DELETE /customers/:id. Admin-only via route guard.
func (h *CustomersHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.customers.DeleteCustomer(c.Params("id")).Wait(c.UserContext()); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

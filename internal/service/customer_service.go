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

// CustomerService fronts the customer store. Mutations apply to the store
// synchronously at call time; the returned completion only delays when the
// caller hears about it.
type CustomerService struct {
	customers  repository.CustomerRepository
	sessions   session.Provider
	latency    *simulate.Latency
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
}

// CustomerDependencies bundles collaborators for the customer service.
type CustomerDependencies struct {
	CustomerRepo repository.CustomerRepository
	Sessions     session.Provider
	Latency      *simulate.Latency
	Dispatcher   events.Dispatcher
	Metrics      *observability.Metrics
}

// NewCustomerService constructs the service.
func NewCustomerService(deps CustomerDependencies) *CustomerService {
	return &CustomerService{
		customers:  deps.CustomerRepo,
		sessions:   deps.Sessions,
		latency:    deps.Latency,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
	}
}

// ResetData re-seeds the store immediately, outside the delay wrapper.
func (s *CustomerService) ResetData() {
	s.customers.ResetData()
}

// GetCustomers lists one filtered page.
func (s *CustomerService) GetCustomers(page, pageSize int, filter repository.CustomerFilter) *simulate.Completion[repository.CustomerPage] {
	s.metrics.RecordOperation("customer.list", "ok")
	return simulate.Resolve(s.latency, s.customers.List(page, pageSize, filter))
}

// GetAllCustomers returns the full collection in seed order.
func (s *CustomerService) GetAllCustomers() *simulate.Completion[[]domain.Customer] {
	s.metrics.RecordOperation("customer.list_all", "ok")
	return simulate.Resolve(s.latency, s.customers.ListAll())
}

// GetCustomerByID resolves with nil when the customer is absent; absence is
// not a failure.
func (s *CustomerService) GetCustomerByID(id string) *simulate.Completion[*domain.Customer] {
	s.metrics.RecordOperation("customer.get", "ok")
	return simulate.Resolve(s.latency, s.customers.GetByID(id))
}

// CreateCustomer appends a new customer. The admin-only rule lives in the
// HTTP route guards, as it did in the desk client's routing.
func (s *CustomerService) CreateCustomer(input domain.CustomerInput) *simulate.Completion[domain.Customer] {
	customer, err := s.customers.Create(input)
	if err != nil {
		return s.reject("customer.create", err)
	}
	s.publish(events.EventCustomerCreated, customer.ID, events.CustomerChangedPayload{
		Name: customer.Name, Company: customer.Company, SlaLevel: customer.SlaLevel,
	})
	s.metrics.RecordOperation("customer.create", "ok")
	return simulate.Resolve(s.latency, customer)
}

// UpdateCustomer merges partial fields into an existing record.
func (s *CustomerService) UpdateCustomer(id string, input domain.CustomerInput) *simulate.Completion[domain.Customer] {
	customer, err := s.customers.Update(id, input)
	if err != nil {
		return s.reject("customer.update", err)
	}
	s.publish(events.EventCustomerUpdated, customer.ID, events.CustomerChangedPayload{
		Name: customer.Name, Company: customer.Company, SlaLevel: customer.SlaLevel,
	})
	s.metrics.RecordOperation("customer.update", "ok")
	return simulate.Resolve(s.latency, customer)
}

// DeleteCustomer removes a record. The sentinel id rejects before any
// lookup, whether or not it exists in the collection.
func (s *CustomerService) DeleteCustomer(id string) *simulate.Completion[bool] {
	if err := s.customers.Delete(id); err != nil {
		return s.reject2("customer.delete", err)
	}
	s.publish(events.EventCustomerDeleted, id, nil)
	s.metrics.RecordOperation("customer.delete", "ok")
	return simulate.Resolve(s.latency, true)
}

func (s *CustomerService) reject(op string, err error) *simulate.Completion[domain.Customer] {
	s.metrics.RecordOperation(op, apperrors.ToDomainError(err).Code)
	return simulate.Reject[domain.Customer](s.latency, err)
}

func (s *CustomerService) reject2(op string, err error) *simulate.Completion[bool] {
	s.metrics.RecordOperation(op, apperrors.ToDomainError(err).Code)
	return simulate.Reject[bool](s.latency, err)
}

func (s *CustomerService) publish(eventType events.EventType, entityID string, payload any) {
	if s.dispatcher == nil {
		return
	}
	actor := ""
	if user := s.sessions.CurrentUser(); user != nil {
		actor = user.Username
	}
	_ = s.dispatcher.Publish(context.Background(), events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		EntityID:  entityID,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

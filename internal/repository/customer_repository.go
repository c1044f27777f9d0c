package repository

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/spec-kit/support-desk/internal/domain"
	"github.com/spec-kit/support-desk/internal/seed"
	apperrors "github.com/spec-kit/support-desk/pkg/util/errorutil"
)

// CustomerErrorID deterministically fails deletion, whether or not the id
// exists. Reserved for automated tests; no real customer uses it.
const CustomerErrorID = "CUST-ERROR"

// CustomerFilter captures customer list parameters.
type CustomerFilter struct {
	Search   string
	SlaLevel string
	IsActive *bool
}

// CustomerPage is one page of customers plus the pre-pagination total.
type CustomerPage struct {
	Customers []domain.Customer
	Total     int
}

// CustomerRepository owns the customer collection.
type CustomerRepository interface {
	ResetData()
	List(page, pageSize int, filter CustomerFilter) CustomerPage
	ListAll() []domain.Customer
	GetByID(id string) *domain.Customer
	Create(input domain.CustomerInput) (domain.Customer, error)
	Update(id string, input domain.CustomerInput) (domain.Customer, error)
	Delete(id string) error
}

type customerRepository struct {
	mu        sync.Mutex
	customers []domain.Customer
}

// NewCustomerRepository instantiates an empty store; callers seed it through
// ResetData before use.
func NewCustomerRepository() CustomerRepository {
	return &customerRepository{}
}

// ResetData replaces the collection with a fresh copy of the seed dataset.
func (r *customerRepository) ResetData() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers = seed.Customers()
}

func (r *customerRepository) List(page, pageSize int, filter CustomerFilter) CustomerPage {
	r.mu.Lock()
	defer r.mu.Unlock()

	filtered := make([]domain.Customer, 0, len(r.customers))
	search := strings.ToLower(filter.Search)
	for _, c := range r.customers {
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Email), search) &&
			!strings.Contains(strings.ToLower(c.Company), search) {
			continue
		}
		if filter.SlaLevel != "" && string(c.SlaLevel) != filter.SlaLevel {
			continue
		}
		if filter.IsActive != nil && c.IsActive != *filter.IsActive {
			continue
		}
		filtered = append(filtered, c)
	}

	return CustomerPage{
		Customers: paginate(filtered, page, pageSize),
		Total:     len(filtered),
	}
}

func (r *customerRepository) ListAll() []domain.Customer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Customer{}, r.customers...)
}

// GetByID returns a copy, or nil when absent. Absence is not an error here;
// callers that need a failure wrap it themselves.
func (r *customerRepository) GetByID(id string) *domain.Customer {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.customers {
		if c.ID == id {
			out := c
			return &out
		}
	}
	return nil
}

// Create assigns ids from the current collection length. The scheme can
// reuse an id after a deletion; it is kept because the documented dataset
// and its tests depend on it.
func (r *customerRepository) Create(input domain.CustomerInput) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	customer := domain.Customer{
		ID: fmt.Sprintf("CUST-%03d", len(r.customers)+1),
	}
	applyCustomerInput(&customer, input)
	r.customers = append(r.customers, customer)
	return customer, nil
}

func (r *customerRepository) Update(id string, input domain.CustomerInput) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.customers {
		if r.customers[i].ID == id {
			applyCustomerInput(&r.customers[i], input)
			return r.customers[i], nil
		}
	}
	return domain.Customer{}, apperrors.NewNotFound("customer", map[string]any{"id": id})
}

func (r *customerRepository) Delete(id string) error {
	if id == CustomerErrorID {
		return apperrors.NewSimulatedFault(
			"Cannot delete customer: This customer has active contracts and cannot be removed. Please contact support for assistance.",
			http.StatusConflict,
		)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.customers {
		if r.customers[i].ID == id {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFound("customer", map[string]any{"id": id})
}

func applyCustomerInput(c *domain.Customer, input domain.CustomerInput) {
	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Email != nil {
		c.Email = *input.Email
	}
	if input.Company != nil {
		c.Company = *input.Company
	}
	if input.SlaLevel != nil {
		c.SlaLevel = *input.SlaLevel
	}
	if input.IsActive != nil {
		c.IsActive = *input.IsActive
	}
}

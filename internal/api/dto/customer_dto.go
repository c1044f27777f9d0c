package dto

import "github.com/spec-kit/support-desk/internal/domain"

// CreateCustomerRequest payload. All fields are required on create.
type CreateCustomerRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Company  string          `json:"company"`
	SlaLevel domain.SlaLevel `json:"slaLevel"`
	IsActive bool            `json:"isActive"`
}

// Input converts the request into the repository's partial-input form.
func (r CreateCustomerRequest) Input() domain.CustomerInput {
	return domain.CustomerInput{
		Name:     &r.Name,
		Email:    &r.Email,
		Company:  &r.Company,
		SlaLevel: &r.SlaLevel,
		IsActive: &r.IsActive,
	}
}

// CustomerListResponse is one page of customers.
type CustomerListResponse struct {
	Customers []domain.Customer `json:"customers"`
	Total     int               `json:"total"`
}

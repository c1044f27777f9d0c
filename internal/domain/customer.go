package domain

// SlaLevel enumerates customer service tiers.
type SlaLevel string

const (
	SlaGold   SlaLevel = "Gold"
	SlaSilver SlaLevel = "Silver"
	SlaBronze SlaLevel = "Bronze"
)

// Customer is an account the desk supports.
type Customer struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Company  string   `json:"company"`
	SlaLevel SlaLevel `json:"slaLevel"`
	IsActive bool     `json:"isActive"`
}

// CustomerInput carries customer form fields for create and update.
type CustomerInput struct {
	Name     *string   `json:"name"`
	Email    *string   `json:"email"`
	Company  *string   `json:"company"`
	SlaLevel *SlaLevel `json:"slaLevel"`
	IsActive *bool     `json:"isActive"`
}

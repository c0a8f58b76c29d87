// internal/transport/dto/client_dto.go
package dto

// --- Client Request DTOs ---

// CreateClientRequest defines the structure for registering a new client.
type CreateClientRequest struct {
	Company string `json:"company" validate:"required"`
	Name    string `json:"contact_name" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required,len=2,alpha"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Actor   string `json:"-"` // Set internally by handler from auth context
}

// UpdateClientRequest defines the structure for editing a client. Only
// non-nil fields are applied.
type UpdateClientRequest struct {
	ID      string  `json:"-"`
	Company *string `json:"company,omitempty" validate:"omitempty,min=1"`
	Name    *string `json:"contact_name,omitempty" validate:"omitempty,min=1"`
	City    *string `json:"city,omitempty" validate:"omitempty,min=1"`
	State   *string `json:"state,omitempty" validate:"omitempty,len=2,alpha"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,min=1"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Actor   string  `json:"-"`
}

// ListClientsRequest defines the query filters for the client listing.
type ListClientsRequest struct {
	Company string `form:"company"` // substring match, case-insensitive
}

// ClientResponse defines the standard client data returned to the API consumer.
type ClientResponse struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Company string `json:"company"`
	Name    string `json:"contact_name"`
	City    string `json:"city"`
	State   string `json:"state"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

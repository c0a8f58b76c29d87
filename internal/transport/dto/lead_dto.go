// internal/transport/dto/lead_dto.go
package dto

// --- Lead Request DTOs ---

// CreateLeadRequest defines the structure for registering a sales lead.
// Status is not accepted; every lead starts at "Prospect".
type CreateLeadRequest struct {
	Company string `json:"company" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required,len=2,alpha"`
	Name    string `json:"contact_name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Product string `json:"product" validate:"required"`
	Channel string `json:"channel" validate:"required"`
	Actor   string `json:"-"`
}

// UpdateLeadRequest defines the structure for editing a lead. Direct
// status edits to any canonical stage are allowed here; single-step moves
// go through MoveStageRequest instead.
type UpdateLeadRequest struct {
	ID      string  `json:"-"`
	Company *string `json:"company,omitempty" validate:"omitempty,min=1"`
	City    *string `json:"city,omitempty" validate:"omitempty,min=1"`
	State   *string `json:"state,omitempty" validate:"omitempty,len=2,alpha"`
	Name    *string `json:"contact_name,omitempty" validate:"omitempty,min=1"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,min=1"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Product *string `json:"product,omitempty" validate:"omitempty,min=1"`
	Channel *string `json:"channel,omitempty" validate:"omitempty,min=1"`
	Status  *string `json:"status,omitempty" validate:"omitempty,min=1"`
	Actor   string  `json:"-"`
}

// MoveStageRequest moves a lead one position through the funnel.
type MoveStageRequest struct {
	ID        string `json:"-"`
	Direction string `json:"direction" validate:"required,oneof=forward backward"`
	Actor     string `json:"-"`
}

// ListLeadsRequest defines the query filters for the lead listing.
type ListLeadsRequest struct {
	Status string `form:"status"`
}

// LeadResponse defines the standard lead data returned to the API consumer.
type LeadResponse struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Company string `json:"company"`
	City    string `json:"city"`
	State   string `json:"state"`
	Name    string `json:"contact_name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Product string `json:"product"`
	Channel string `json:"channel"`
	Status  string `json:"status"`
}

// FunnelColumn is one stage of the Kanban view with its leads.
type FunnelColumn struct {
	Stage string         `json:"stage"`
	Leads []LeadResponse `json:"leads"`
}

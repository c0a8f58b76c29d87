// internal/transport/dto/audit_dto.go
package dto

// ListAuditRequest defines the optional client-side filters for the log
// screen. The log itself is always loaded in full.
type ListAuditRequest struct {
	Tab    string `form:"tab"`
	Action string `form:"action"`
}

// AuditEntryResponse is one action-log row returned to the API consumer.
type AuditEntryResponse struct {
	Timestamp string `json:"timestamp"`
	Actor     string `json:"actor"`
	Tab       string `json:"tab"`
	Action    string `json:"action"`
	ItemID    string `json:"item_id,omitempty"`
	Field     string `json:"field,omitempty"`
	OldValue  string `json:"old_value,omitempty"`
	NewValue  string `json:"new_value,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

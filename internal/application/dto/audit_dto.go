package dto

import "time"

// AuditLogResponse is one audit trail entry as the API returns it.
type AuditLogResponse struct {
	ID        int64     `json:"id"`
	UserID    *int64    `json:"user_id,omitempty"`
	UserName  *string   `json:"user_name,omitempty"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  *int64    `json:"entity_id,omitempty"`
	OldValue  *string   `json:"old_value,omitempty"`
	NewValue  *string   `json:"new_value,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

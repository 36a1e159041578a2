package entity

import "time"

// Audit actions.
const (
	AuditActionCreate      = "CREATE"
	AuditActionUpdate      = "UPDATE"
	AuditActionDelete      = "DELETE"
	AuditActionArchive     = "ARCHIVE"
	AuditActionUnarchive   = "UNARCHIVE"
	AuditActionAdjustStock = "ADJUST_STOCK"
	AuditActionLogin       = "LOGIN"
)

// Audited entity kinds.
const (
	AuditEntityOrder   = "ORDER"
	AuditEntityProduct = "PRODUCT"
	AuditEntityExpense = "EXPENSE"
	AuditEntityUser    = "USER"
)

// AuditLog is an append-only trail entry. Old/new values are opaque
// JSON snapshots; entries are never mutated or deleted.
type AuditLog struct {
	ID        int64
	UserID    *int64 // nullable: system actions or deleted users
	Action    string
	Entity    string
	EntityID  *int64
	OldValue  *string // JSON snapshot before the mutation
	NewValue  *string // JSON snapshot after the mutation
	Timestamp time.Time
}

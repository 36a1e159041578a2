package repository

import (
	"time"

	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
)

// AuditLogRecord is a log entry with the actor's name expanded.
type AuditLogRecord struct {
	entity.AuditLog
	UserName *string
}

// AuditLogRepository is the persistence port for the audit trail
// (append-only; no update or delete).
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	List(from, to *time.Time, limit int) ([]*AuditLogRecord, error)
}

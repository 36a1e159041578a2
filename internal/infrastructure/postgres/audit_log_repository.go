package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implements AuditLogRepository on PostgreSQL. The trail
// is append-only: no update, no delete.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository builds the persistence adapter for the audit trail.
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create appends one entry.
func (r *AuditLogRepo) Create(log *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (user_id, action, entity, entity_id, old_value, new_value, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING id, timestamp`
	err := r.q.QueryRow(context.Background(), query,
		log.UserID, log.Action, log.Entity, log.EntityID, log.OldValue, log.NewValue,
	).Scan(&log.ID, &log.Timestamp)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// List returns entries in the time range, newest first, with the
// actor's name joined (nil for system entries or deleted users).
func (r *AuditLogRepo) List(from, to *time.Time, limit int) ([]*repository.AuditLogRecord, error) {
	query := `
		SELECT al.id, al.user_id, al.action, al.entity, al.entity_id, al.old_value, al.new_value, al.timestamp,
		       u.name
		FROM audit_logs al
		LEFT JOIN users u ON u.id = al.user_id
		WHERE 1=1`
	args := []any{}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(` AND al.timestamp >= $%d`, len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(` AND al.timestamp < $%d`, len(args))
	}
	query += ` ORDER BY al.timestamp DESC`
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var out []*repository.AuditLogRecord
	for rows.Next() {
		var rec repository.AuditLogRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Action, &rec.Entity, &rec.EntityID,
			&rec.OldValue, &rec.NewValue, &rec.Timestamp, &rec.UserName,
		); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

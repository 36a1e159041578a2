package audit

import (
	"context"
	"time"

	"github.com/lintangrafi/POS-Kygoo/internal/application/dto"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
)

// UseCase reads the audit trail.
type UseCase struct {
	repo repository.AuditLogRepository
}

// NewUseCase builds the audit read use case.
func NewUseCase(repo repository.AuditLogRepository) *UseCase {
	return &UseCase{repo: repo}
}

// List returns entries in the time range, newest first.
func (uc *UseCase) List(ctx context.Context, from, to *time.Time, limit int) ([]dto.AuditLogResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	records, err := uc.repo.List(from, to, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditLogResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.AuditLogResponse{
			ID:        r.ID,
			UserID:    r.UserID,
			UserName:  r.UserName,
			Action:    r.Action,
			Entity:    r.Entity,
			EntityID:  r.EntityID,
			OldValue:  r.OldValue,
			NewValue:  r.NewValue,
			Timestamp: r.Timestamp,
		})
	}
	return out, nil
}

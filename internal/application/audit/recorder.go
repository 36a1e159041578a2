package audit

import (
	"encoding/json"

	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
	"github.com/lintangrafi/POS-Kygoo/pkg/logger"
)

// Recorder appends entries to the audit trail. Writes are best effort:
// a failed insert is logged and never surfaced to the caller, and the
// triggering mutation is not rolled back.
type Recorder struct {
	repo repository.AuditLogRepository
	log  *logger.Logger
}

// NewRecorder builds the recorder.
func NewRecorder(repo repository.AuditLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record appends one entry. oldValue/newValue are serialized to JSON;
// pass nil to leave the column empty.
func (r *Recorder) Record(userID int64, action, entityKind string, entityID int64, oldValue, newValue any) {
	entry := &entity.AuditLog{
		UserID:   &userID,
		Action:   action,
		Entity:   entityKind,
		EntityID: &entityID,
		OldValue: toJSON(oldValue),
		NewValue: toJSON(newValue),
	}
	if err := r.repo.Create(entry); err != nil {
		r.log.Error().Err(err).
			Str("action", action).
			Str("entity", entityKind).
			Int64("entity_id", entityID).
			Msg("audit log write failed")
	}
}

func toJSON(v any) *string {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}

package inventory

import (
	"context"
	"fmt"

	"github.com/lintangrafi/POS-Kygoo/internal/application/audit"
	"github.com/lintangrafi/POS-Kygoo/internal/application/dto"
	"github.com/lintangrafi/POS-Kygoo/internal/domain"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
	"github.com/lintangrafi/POS-Kygoo/pkg/validation"
)

// UseCase maintains the stock adjustment ledger. Every manual stock
// change goes through here; the ledger row and the product stock update
// commit in the same transaction.
type UseCase struct {
	txRunner TxRunner
	adjRepo  repository.StockAdjustmentRepository
	auditor  *audit.Recorder
}

// NewUseCase builds the inventory use case.
func NewUseCase(txRunner TxRunner, adjRepo repository.StockAdjustmentRepository, auditor *audit.Recorder) *UseCase {
	return &UseCase{txRunner: txRunner, adjRepo: adjRepo, auditor: auditor}
}

// Adjust applies one manual stock change. req.Change is always the
// positive magnitude; the stored delta is negated for OUT. Stock is not
// clamped at zero, a correction may drive it negative.
func (uc *UseCase) Adjust(ctx context.Context, userID int64, role string, req dto.AdjustStockRequest) (*dto.StockAdjustmentResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, domain.ErrInvalidInput
	}
	delta := req.Change
	if req.Type == entity.AdjustmentTypeOut {
		delta = -req.Change
	}

	adj := &entity.StockAdjustment{
		ProductID: req.ProductID,
		UserID:    userID,
		Change:    delta,
		Type:      req.Type,
		Reason:    req.Reason,
		Reference: req.Reference,
	}
	var stockBefore, stockAfter int
	err := uc.txRunner.RunAdjustment(ctx, func(products repository.ProductRepository, adjustments repository.StockAdjustmentRepository) error {
		product, err := products.GetForUpdate(req.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("product %d: %w", req.ProductID, domain.ErrNotFound)
		}
		stockBefore = product.Stock
		stockAfter = product.Stock + delta
		if err := products.UpdateStock(product.ID, stockAfter); err != nil {
			return err
		}
		return adjustments.Create(adj)
	})
	if err != nil {
		return nil, err
	}

	uc.auditor.Record(userID, entity.AuditActionAdjustStock, entity.AuditEntityProduct, req.ProductID,
		map[string]any{"stock": stockBefore},
		map[string]any{
			"stockBefore":     stockBefore,
			"stockAfter":      stockAfter,
			"adjustmentId":    adj.ID,
			"change":          delta,
			"type":            req.Type,
			"reason":          req.Reason,
			"reference":       req.Reference,
			"performedByRole": role,
		})

	record, err := uc.adjRepo.GetRecord(adj.ID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	resp := toResponse(record)
	return &resp, nil
}

// List pages the ledger, newest first, with product/user names expanded.
func (uc *UseCase) List(ctx context.Context, req dto.ListAdjustmentsRequest) (*dto.ListAdjustmentsResponse, error) {
	req.DefaultPage()
	f := repository.StockAdjustmentFilter{
		ProductID: req.ProductID,
		From:      req.From,
		To:        req.To,
		Limit:     req.Limit,
		Offset:    req.Offset(),
	}
	records, err := uc.adjRepo.List(f)
	if err != nil {
		return nil, err
	}
	total, err := uc.adjRepo.Count(f)
	if err != nil {
		return nil, err
	}
	resp := &dto.ListAdjustmentsResponse{
		Data:  make([]dto.StockAdjustmentResponse, 0, len(records)),
		Total: total,
	}
	for _, r := range records {
		resp.Data = append(resp.Data, toResponse(r))
	}
	return resp, nil
}

func toResponse(r *repository.StockAdjustmentRecord) dto.StockAdjustmentResponse {
	return dto.StockAdjustmentResponse{
		ID:          r.ID,
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		UserID:      r.UserID,
		UserName:    r.UserName,
		Change:      r.Change,
		Type:        r.Type,
		Reason:      r.Reason,
		Reference:   r.Reference,
		CreatedAt:   r.CreatedAt,
	}
}

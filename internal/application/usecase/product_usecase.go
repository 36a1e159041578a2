package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/lintangrafi/POS-Kygoo/internal/application/audit"
	"github.com/lintangrafi/POS-Kygoo/internal/application/dto"
	"github.com/lintangrafi/POS-Kygoo/internal/domain"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/entity"
	"github.com/lintangrafi/POS-Kygoo/internal/domain/repository"
	"github.com/lintangrafi/POS-Kygoo/pkg/validation"
)

// ProductUseCase covers product CRUD, menu flags and archiving. Stock
// is never written here; it only moves through checkout and the
// adjustment ledger.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	orderRepo    repository.OrderRepository
	adjRepo      repository.StockAdjustmentRepository
	auditor      *audit.Recorder
}

// NewProductUseCase builds the use case.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	orderRepo repository.OrderRepository,
	adjRepo repository.StockAdjustmentRepository,
	auditor *audit.Recorder,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		orderRepo:    orderRepo,
		adjRepo:      adjRepo,
		auditor:      auditor,
	}
}

// Create registers a new product.
func (uc *ProductUseCase) Create(ctx context.Context, userID int64, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.CostPrice.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		CategoryID: in.CategoryID,
		SKU:        in.SKU,
		Name:       in.Name,
		Price:      in.Price,
		CostPrice:  in.CostPrice,
		Stock:      in.Stock,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if in.IsMenuItem != nil {
		product.IsMenuItem = *in.IsMenuItem
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	uc.auditor.Record(userID, entity.AuditActionCreate, entity.AuditEntityProduct, product.ID, nil, toProductResponse(product))
	return toProductResponse(product), nil
}

// GetByID returns one product or ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update applies a partial update; nil fields keep their value.
func (uc *ProductUseCase) Update(ctx context.Context, userID, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	before := *toProductResponse(product)
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrInvalidInput
		}
		product.CategoryID = *in.CategoryID
	}
	if in.SKU != nil {
		product.SKU = in.SKU
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.CostPrice = *in.CostPrice
	}
	if in.IsMenuItem != nil {
		product.IsMenuItem = *in.IsMenuItem
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	uc.auditor.Record(userID, entity.AuditActionUpdate, entity.AuditEntityProduct, product.ID, before, toProductResponse(product))
	return toProductResponse(product), nil
}

// List returns products matching the filter.
func (uc *ProductUseCase) List(ctx context.Context, f repository.ProductFilter) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List(f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// ListCategories returns categories deduplicated by normalized name,
// keeping the first (lowest id) of each duplicate group.
func (uc *ProductUseCase) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(categories))
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		key := strings.ToLower(strings.TrimSpace(c.Name))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name, Type: c.Type})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetPosMenu returns what the register screen needs: deduplicated
// categories plus active menu products.
func (uc *ProductUseCase) GetPosMenu(ctx context.Context) (*dto.PosMenuResponse, error) {
	categories, err := uc.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	menuOnly := true
	products, err := uc.List(ctx, repository.ProductFilter{IsMenuItem: &menuOnly})
	if err != nil {
		return nil, err
	}
	return &dto.PosMenuResponse{Categories: categories, Products: products}, nil
}

// ToggleMenuItem flips whether the product shows on the register screen.
func (uc *ProductUseCase) ToggleMenuItem(ctx context.Context, userID, id int64, isMenuItem bool) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	before := *toProductResponse(product)
	if err := uc.productRepo.SetMenuItem(id, isMenuItem); err != nil {
		return nil, err
	}
	product.IsMenuItem = isMenuItem
	uc.auditor.Record(userID, entity.AuditActionUpdate, entity.AuditEntityProduct, id, before, toProductResponse(product))
	return toProductResponse(product), nil
}

// Archive hides the product from listings. Always succeeds for an
// existing product, referenced or not; history stays intact.
func (uc *ProductUseCase) Archive(ctx context.Context, userID, id int64) error {
	return uc.setArchived(userID, id, true, entity.AuditActionArchive)
}

// Unarchive restores an archived product.
func (uc *ProductUseCase) Unarchive(ctx context.Context, userID, id int64) error {
	return uc.setArchived(userID, id, false, entity.AuditActionUnarchive)
}

func (uc *ProductUseCase) setArchived(userID, id int64, archived bool, action string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	before := *toProductResponse(product)
	if err := uc.productRepo.SetArchived(id, archived); err != nil {
		return err
	}
	product.IsArchived = archived
	uc.auditor.Record(userID, action, entity.AuditEntityProduct, id, before, toProductResponse(product))
	return nil
}

// Delete hard-deletes a product. Blocked with ErrProductInUse while any
// order item or stock adjustment references it; archive instead.
func (uc *ProductUseCase) Delete(ctx context.Context, userID, id int64) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	sold, err := uc.orderRepo.ExistsItemForProduct(id)
	if err != nil {
		return err
	}
	if sold {
		return domain.ErrProductInUse
	}
	adjusted, err := uc.adjRepo.ExistsForProduct(id)
	if err != nil {
		return err
	}
	if adjusted {
		return domain.ErrProductInUse
	}
	if err := uc.productRepo.Delete(id); err != nil {
		return err
	}
	uc.auditor.Record(userID, entity.AuditActionDelete, entity.AuditEntityProduct, id, toProductResponse(product), nil)
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:         p.ID,
		CategoryID: p.CategoryID,
		SKU:        p.SKU,
		Name:       p.Name,
		Price:      p.Price,
		CostPrice:  p.CostPrice,
		Stock:      p.Stock,
		IsMenuItem: p.IsMenuItem,
		IsArchived: p.IsArchived,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

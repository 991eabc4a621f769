package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mohazard555/sampro-api/internal/application/dto"
	"github.com/mohazard555/sampro-api/internal/domain"
	"github.com/mohazard555/sampro-api/internal/domain/entity"
	"github.com/mohazard555/sampro-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. La cantidad en ficha es un
// dato declarado; la cantidad real se deriva del libro de movimientos en el
// motor de valoración.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto nuevo. El código debe ser único.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.MinQuantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Unit == "" {
		in.Unit = "unidad"
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Code:         in.Code,
		Name:         in.Name,
		Description:  in.Description,
		Unit:         in.Unit,
		CostPrice:    in.CostPrice,
		SellingPrice: in.SellingPrice,
		Quantity:     in.Quantity,
		MinQuantity:  in.MinQuantity,
		WarehouseID:  in.WarehouseID,
		Category:     in.Category,
		Barcode:      in.Barcode,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.MinQuantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Code != "" {
		product.Code = in.Code
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	product.Description = in.Description
	if in.Unit != "" {
		product.Unit = in.Unit
	}
	product.CostPrice = in.CostPrice
	product.SellingPrice = in.SellingPrice
	product.Quantity = in.Quantity
	product.MinQuantity = in.MinQuantity
	if in.WarehouseID != "" {
		product.WarehouseID = in.WarehouseID
	}
	product.Category = in.Category
	product.Barcode = in.Barcode
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete desactiva un producto (borrado lógico, el libro se conserva).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Deactivate(ctx, id)
}

// List lista productos con búsqueda por nombre o código y paginación.
func (uc *ProductUseCase) List(ctx context.Context, search string, page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.List(ctx, search, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		Description:  p.Description,
		Unit:         p.Unit,
		CostPrice:    p.CostPrice,
		SellingPrice: p.SellingPrice,
		Quantity:     p.Quantity,
		MinQuantity:  p.MinQuantity,
		WarehouseID:  p.WarehouseID,
		Category:     p.Category,
		Barcode:      p.Barcode,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

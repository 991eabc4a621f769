package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mohazard555/sampro-api/internal/application/dto"
	"github.com/mohazard555/sampro-api/internal/domain"
	"github.com/mohazard555/sampro-api/internal/domain/entity"
	"github.com/mohazard555/sampro-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create registra un proveedor nuevo.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Currency == "" {
		in.Currency = "SYP"
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Phone:          in.Phone,
		Email:          in.Email,
		Address:        in.Address,
		TaxNumber:      in.TaxNumber,
		CurrentBalance: decimal.Zero,
		Currency:       in.Currency,
		Notes:          in.Notes,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Update actualiza los datos de contacto del proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		supplier.Name = in.Name
	}
	supplier.Phone = in.Phone
	supplier.Email = in.Email
	supplier.Address = in.Address
	supplier.TaxNumber = in.TaxNumber
	if in.Currency != "" {
		supplier.Currency = in.Currency
	}
	supplier.Notes = in.Notes
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete desactiva un proveedor. Si tiene facturas vinculadas se rechaza.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	linked, err := uc.repo.HasInvoices(ctx, id)
	if err != nil {
		return err
	}
	if linked {
		return domain.ErrHasLinkedInvoices
	}
	return uc.repo.Deactivate(ctx, id)
}

// List lista proveedores con búsqueda por nombre y paginación.
func (uc *SupplierUseCase) List(ctx context.Context, search string, page dto.PageRequest) ([]*dto.SupplierResponse, error) {
	page.DefaultPage()
	suppliers, err := uc.repo.List(ctx, search, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:             s.ID,
		Name:           s.Name,
		Phone:          s.Phone,
		Email:          s.Email,
		Address:        s.Address,
		TaxNumber:      s.TaxNumber,
		CurrentBalance: s.CurrentBalance,
		Currency:       s.Currency,
		Notes:          s.Notes,
		IsActive:       s.IsActive,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mohazard555/sampro-api/internal/domain"
	"github.com/mohazard555/sampro-api/internal/domain/entity"
	"github.com/mohazard555/sampro-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso de almacenes.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// CreateWarehouseInput datos para crear un almacén.
type CreateWarehouseInput struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Manager  string `json:"manager"`
	Phone    string `json:"phone"`
}

// Create crea un almacén nuevo.
func (uc *WarehouseUseCase) Create(ctx context.Context, in CreateWarehouseInput) (*entity.Warehouse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Location:  in.Location,
		Manager:   in.Manager,
		Phone:     in.Phone,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// GetByID obtiene un almacén por ID.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	return uc.repo.GetByID(ctx, id)
}

// List lista los almacenes activos.
func (uc *WarehouseUseCase) List(ctx context.Context) ([]*entity.Warehouse, error) {
	return uc.repo.List(ctx)
}

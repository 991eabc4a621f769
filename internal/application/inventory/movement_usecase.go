package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mohazard555/sampro-api/internal/application/dto"
	"github.com/mohazard555/sampro-api/internal/domain"
	"github.com/mohazard555/sampro-api/internal/domain/entity"
	"github.com/mohazard555/sampro-api/internal/domain/repository"
	"github.com/mohazard555/sampro-api/internal/domain/valuation"
)

// MovementUseCase registra movimientos en el libro de inventario. El libro es
// append-only: los movimientos no se editan ni se borran.
type MovementUseCase struct {
	movementRepo repository.InventoryMovementRepository
	productRepo  repository.ProductRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	movementRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
) *MovementUseCase {
	return &MovementUseCase{movementRepo: movementRepo, productRepo: productRepo}
}

// Register valida y persiste un movimiento. El tipo debe pertenecer a la
// enumeración conocida; el producto debe existir. En adjustment se admite
// cantidad negativa, en el resto se exige magnitud positiva.
func (uc *MovementUseCase) Register(ctx context.Context, createdBy string, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if !valuation.KnownMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductID == "" || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.MovementTypeAdjustment && !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.Type == entity.MovementTypeAdjustment && in.Quantity.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.productRepo.GetByID(ctx, in.ProductID); err != nil {
		return nil, err
	}

	date := time.Now()
	if in.Date != "" {
		parsed, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}

	movement := &entity.InventoryMovement{
		ID:            uuid.New().String(),
		Type:          in.Type,
		Date:          date,
		ProductID:     in.ProductID,
		WarehouseID:   in.WarehouseID,
		ToWarehouseID: in.ToWarehouseID,
		Quantity:      in.Quantity,
		UnitCost:      in.UnitCost,
		TotalCost:     in.UnitCost.Mul(in.Quantity.Abs()),
		ReferenceType: in.ReferenceType,
		ReferenceID:   in.ReferenceID,
		Notes:         in.Notes,
		CreatedBy:     createdBy,
		CreatedAt:     time.Now(),
	}
	if err := uc.movementRepo.Create(ctx, movement); err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

// History devuelve el libro completo del par (producto, almacén).
func (uc *MovementUseCase) History(ctx context.Context, productID, warehouseID string) ([]*dto.MovementResponse, error) {
	movements, err := uc.movementRepo.ListForProductWarehouse(ctx, productID, warehouseID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

func toMovementResponse(m *entity.InventoryMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:            m.ID,
		Type:          m.Type,
		Date:          m.Date.Format("2006-01-02"),
		ProductID:     m.ProductID,
		WarehouseID:   m.WarehouseID,
		ToWarehouseID: m.ToWarehouseID,
		Quantity:      m.Quantity,
		UnitCost:      m.UnitCost,
		TotalCost:     m.TotalCost,
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		Notes:         m.Notes,
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
	}
}

package postgres

import (
	"context"
	"fmt"

	"github.com/mohazard555/sampro-api/internal/domain/entity"
	"github.com/mohazard555/sampro-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

const movementColumns = `id, movement_type, movement_date, product_id, warehouse_id,
	to_warehouse_id, quantity, unit_cost, total_cost, reference_type, reference_id,
	notes, created_by, created_at`

// InventoryMovementRepo implementación del libro de movimientos sobre PostgreSQL.
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste un movimiento. El libro es append-only: no hay Update/Delete.
func (r *InventoryMovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	query := `
		INSERT INTO inventory_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Type, m.Date, m.ProductID, m.WarehouseID, nullIfEmpty(m.ToWarehouseID),
		m.Quantity, m.UnitCost, m.TotalCost, nullIfEmpty(m.ReferenceType),
		nullIfEmpty(m.ReferenceID), m.Notes, nullIfEmpty(m.CreatedBy), m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListForProductWarehouse devuelve el libro completo del par (producto, almacén).
// Incluye los transfers legados cuyo destino es el almacén consultado: para
// ellos warehouse_id apunta al origen, así que el filtro por warehouse_id solo
// los perdería. El orden movement_date DESC, id DESC da un desempate estable
// cuando varias fechas coinciden.
func (r *InventoryMovementRepo) ListForProductWarehouse(ctx context.Context, productID, warehouseID string) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM inventory_movements
		WHERE product_id = $1
		  AND (warehouse_id = $2 OR to_warehouse_id = $2)
		ORDER BY movement_date DESC, id DESC`
	rows, err := r.q.Query(ctx, query, productID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var out []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		var toWarehouse, refType, refID, createdBy *string
		if err := rows.Scan(
			&m.ID, &m.Type, &m.Date, &m.ProductID, &m.WarehouseID, &toWarehouse,
			&m.Quantity, &m.UnitCost, &m.TotalCost, &refType, &refID,
			&m.Notes, &createdBy, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.ToWarehouseID = deref(toWarehouse)
		m.ReferenceType = deref(refType)
		m.ReferenceID = deref(refID)
		m.CreatedBy = deref(createdBy)
		out = append(out, &m)
	}
	return out, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Package valuation implementa el motor de valoración de inventario: reconstruye
// la cantidad actual de un producto desde su libro de movimientos, clasifica la
// severidad del faltante y estima reposición y tendencia de consumo.
//
// El motor es puro y sin estado: no hace I/O y es seguro de invocar en
// paralelo para productos distintos.
package valuation

import "github.com/mohazard555/sampro-api/internal/domain/entity"

// direction es la regla de signo de un tipo de movimiento sobre el stock.
type direction int

const (
	directionUnknown direction = iota
	directionIn                // suma |cantidad|
	directionOut               // resta |cantidad|
	directionSigned            // ajuste: conserva el signo de la cantidad
	directionLegacy            // transfer legado: depende del almacén del producto
)

// movementDirections es la tabla cerrada tipo → regla. Añadir un tipo de
// movimiento exige tocar esta tabla de forma explícita.
var movementDirections = map[string]direction{
	entity.MovementTypeIn:             directionIn,
	entity.MovementTypePurchase:       directionIn,
	entity.MovementTypeReturnSale:     directionIn,
	entity.MovementTypeTransferIn:     directionIn,
	entity.MovementTypeOut:            directionOut,
	entity.MovementTypeSale:           directionOut,
	entity.MovementTypeReturnPurchase: directionOut,
	entity.MovementTypeTransferOut:    directionOut,
	entity.MovementTypeDamage:         directionOut,
	entity.MovementTypeAdjustment:     directionSigned,
	entity.MovementTypeTransfer:       directionLegacy,
}

// directionFor devuelve la regla para un tipo; directionUnknown si el tipo
// no pertenece a la enumeración (dato corrupto o versión vieja del esquema).
func directionFor(movementType string) direction {
	return movementDirections[movementType]
}

// KnownMovementType indica si el tipo pertenece a la enumeración cerrada.
// La capa de registro lo usa para rechazar tipos desconocidos en el origen.
func KnownMovementType(movementType string) bool {
	return movementDirections[movementType] != directionUnknown
}

// isConsumption indica si el movimiento cuenta para la velocidad de consumo.
// Solo salidas directas y ventas; devoluciones, mermas y traslados no son
// demanda real.
func isConsumption(movementType string) bool {
	return movementType == entity.MovementTypeOut || movementType == entity.MovementTypeSale
}

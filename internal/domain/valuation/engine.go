package valuation

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mohazard555/sampro-api/internal/domain/entity"
)

// Umbrales de severidad como fracción del mínimo, y factor de stock seguro.
var (
	ratioVeryLow  = decimal.NewFromFloat(0.2)
	ratioCritical = decimal.NewFromFloat(0.5)
	ratioMedium   = decimal.NewFromFloat(0.8)
	safeFactor    = decimal.NewFromFloat(1.5)
	hundred       = decimal.NewFromInt(100)
)

// Niveles de urgencia y colores asociados para el dashboard.
const (
	UrgencyCritical = "critical"
	UrgencyHigh     = "high"
	UrgencyMedium   = "medium"
	UrgencyLow      = "low"

	ColorDanger  = "danger"
	ColorWarning = "warning"
	ColorInfo    = "info"
)

// Reconciliation es el resultado de reconstruir la cantidad desde el libro.
// Current aplica la política max(registrada, calculada): nunca sub-reporta
// stock ante un libro incompleto, a costa de poder ocultar agotamiento real
// si la ficha quedó inflada. Ambos valores se exponen para detectar deriva.
type Reconciliation struct {
	Calculated   decimal.Decimal // flujo neto del libro, recortado a >= 0
	Registered   decimal.Decimal // cantidad en ficha (puede estar desfasada)
	Current      decimal.Decimal // max(Registered, Calculated)
	TotalIn      decimal.Decimal
	TotalOut     decimal.Decimal
	UnknownTypes []string // tipos fuera de la enumeración, para log de calidad de datos
}

// Reconcile recorre el libro de movimientos del par (producto, almacén) y
// deriva la cantidad calculada según la tabla de reglas:
//
//	in, purchase, return_sale, transfer_in   → +|q|   (entrada)
//	out, sale, return_purchase, transfer_out,
//	damage                                   → -|q|   (salida)
//	adjustment                               → +q     (conserva signo)
//	transfer (legado)                        → salida si el almacén del movimiento
//	                                           es el del producto; entrada si
//	                                           to_warehouse_id es el del producto;
//	                                           sin efecto en otro caso
//
// Tipos desconocidos no afectan la cantidad y se reportan en UnknownTypes.
func Reconcile(product *entity.Product, movements []*entity.InventoryMovement) Reconciliation {
	rec := Reconciliation{
		Calculated: decimal.Zero,
		Registered: product.Quantity,
		TotalIn:    decimal.Zero,
		TotalOut:   decimal.Zero,
	}

	for _, m := range movements {
		qty := m.Quantity
		switch directionFor(m.Type) {
		case directionIn:
			rec.TotalIn = rec.TotalIn.Add(qty.Abs())
			rec.Calculated = rec.Calculated.Add(qty.Abs())
		case directionOut:
			rec.TotalOut = rec.TotalOut.Add(qty.Abs())
			rec.Calculated = rec.Calculated.Sub(qty.Abs())
		case directionSigned:
			if qty.Sign() >= 0 {
				rec.TotalIn = rec.TotalIn.Add(qty)
			} else {
				rec.TotalOut = rec.TotalOut.Add(qty.Abs())
			}
			rec.Calculated = rec.Calculated.Add(qty)
		case directionLegacy:
			switch {
			case m.WarehouseID == product.WarehouseID:
				rec.TotalOut = rec.TotalOut.Add(qty.Abs())
				rec.Calculated = rec.Calculated.Sub(qty.Abs())
			case m.ToWarehouseID != "" && m.ToWarehouseID == product.WarehouseID:
				rec.TotalIn = rec.TotalIn.Add(qty.Abs())
				rec.Calculated = rec.Calculated.Add(qty.Abs())
			}
		default:
			rec.UnknownTypes = append(rec.UnknownTypes, m.Type)
		}
	}

	// El stock nunca se reporta negativo
	if rec.Calculated.IsNegative() {
		rec.Calculated = decimal.Zero
	}

	rec.Current = rec.Calculated
	if rec.Registered.GreaterThan(rec.Calculated) {
		rec.Current = rec.Registered
	}
	return rec
}

// Severity es la clasificación discreta del faltante.
type Severity struct {
	Level      string
	Text       string
	Color      string
	Priority   int // 1 = más urgente
	OutOfStock bool
	VeryLow    bool // bajo el 20% del mínimo
	Critical   bool // bajo el 50% del mínimo
}

// Classify evalúa los umbrales en orden de precedencia (gana el primero).
// Devuelve false si el producto está sobre el mínimo (no entra al reporte).
// minQuantity debe ser > 0; el caller excluye productos sin umbral.
func Classify(current, minQuantity decimal.Decimal) (Severity, bool) {
	if current.GreaterThan(minQuantity) {
		return Severity{}, false
	}

	s := Severity{
		OutOfStock: current.LessThanOrEqual(decimal.Zero),
		VeryLow:    current.LessThanOrEqual(minQuantity.Mul(ratioVeryLow)),
		Critical:   current.LessThanOrEqual(minQuantity.Mul(ratioCritical)),
	}

	switch {
	case s.OutOfStock:
		s.Level, s.Text, s.Color, s.Priority = UrgencyCritical, "Agotado", ColorDanger, 1
	case s.VeryLow:
		s.Level, s.Text, s.Color, s.Priority = UrgencyCritical, "Muy crítico - menos del 20%", ColorDanger, 2
	case s.Critical:
		s.Level, s.Text, s.Color, s.Priority = UrgencyHigh, "Crítico - menos del 50%", ColorDanger, 3
	case current.LessThanOrEqual(minQuantity.Mul(ratioMedium)):
		s.Level, s.Text, s.Color, s.Priority = UrgencyMedium, "Bajo - menos del 80%", ColorWarning, 4
	default:
		s.Level, s.Text, s.Color, s.Priority = UrgencyLow, "Advertencia - en el mínimo", ColorInfo, 5
	}
	return s, true
}

// Replenishment es el requerimiento estimado para volver al nivel seguro.
type Replenishment struct {
	SafeQuantity     decimal.Decimal // 1.5 × mínimo
	RequiredQuantity decimal.Decimal // max(0, seguro - actual)
	EstimatedCost    decimal.Decimal // requerido × costo unitario
}

// Replenish calcula la cantidad a pedir y su costo estimado.
// costPrice ausente se trata como cero.
func Replenish(current, minQuantity, costPrice decimal.Decimal) Replenishment {
	safe := minQuantity.Mul(safeFactor)
	required := safe.Sub(current)
	if required.IsNegative() {
		required = decimal.Zero
	}
	return Replenishment{
		SafeQuantity:     safe,
		RequiredQuantity: required,
		EstimatedCost:    required.Mul(costPrice),
	}
}

// Consumption es la estimación de tendencia de consumo.
type Consumption struct {
	Rate                  decimal.Decimal // unidades/día, redondeada a 2 decimales
	DaysRemaining         *int64          // nil si no hay tasa de consumo
	LastMovementDate      *time.Time
	DaysSinceLastMovement *int64
	TotalMovements        int
}

// EstimateConsumption deriva la velocidad de consumo del libro completo.
// Solo cuentan salidas directas y ventas (out, sale); el rango de días se
// toma entre el movimiento más antiguo y el más reciente de la lista
// completa, sin asumir un orden de entrada.
func EstimateConsumption(movements []*entity.InventoryMovement, current decimal.Decimal, today time.Time) Consumption {
	c := Consumption{Rate: decimal.Zero, TotalMovements: len(movements)}
	if len(movements) == 0 {
		return c
	}

	oldest, newest := movements[0].Date, movements[0].Date
	for _, m := range movements[1:] {
		if m.Date.Before(oldest) {
			oldest = m.Date
		}
		if m.Date.After(newest) {
			newest = m.Date
		}
	}
	last := newest
	c.LastMovementDate = &last
	since := daysBetween(newest, today)
	c.DaysSinceLastMovement = &since

	// Tendencia solo con al menos dos movimientos
	if len(movements) < 2 {
		return c
	}

	totalOut := decimal.Zero
	for _, m := range movements {
		if isConsumption(m.Type) {
			totalOut = totalOut.Add(m.Quantity)
		}
	}

	daysRange := daysBetween(oldest, newest)
	if daysRange <= 0 {
		return c
	}

	rate := totalOut.Div(decimal.NewFromInt(daysRange))
	c.Rate = rate.Round(2)
	if rate.IsPositive() {
		remaining := current.Div(rate).IntPart() // floor
		c.DaysRemaining = &remaining
	}
	return c
}

// daysBetween devuelve días calendario entre dos instantes (fechas truncadas).
func daysBetween(from, to time.Time) int64 {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	days := int64(t.Sub(f).Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}

// Result es el registro derivado de un producto bajo el umbral. Efímero:
// se construye por llamada y no se persiste.
type Result struct {
	Product        *entity.Product
	Reconciliation Reconciliation
	Severity       Severity
	Replenishment  Replenishment
	Consumption    Consumption

	Shortage           decimal.Decimal
	ShortagePercentage decimal.Decimal // [0, 100], 1 decimal
}

// Evaluation agrupa la reconciliación (siempre calculada) y el resultado de
// faltante (nil si el producto está sobre el umbral).
type Evaluation struct {
	Reconciliation Reconciliation
	Result         *Result
}

// Evaluate procesa un producto contra su libro de movimientos.
// Devuelve nil si el producto no tiene umbral definido (MinQuantity <= 0):
// esos productos se excluyen por completo de la evaluación.
func Evaluate(product *entity.Product, movements []*entity.InventoryMovement, today time.Time) *Evaluation {
	if !product.MinQuantity.IsPositive() {
		return nil
	}

	rec := Reconcile(product, movements)
	ev := &Evaluation{Reconciliation: rec}

	severity, low := Classify(rec.Current, product.MinQuantity)
	if !low {
		return ev
	}

	shortage := product.MinQuantity.Sub(rec.Current)
	if shortage.IsNegative() {
		shortage = decimal.Zero
	}
	pct := decimal.Zero
	if product.MinQuantity.IsPositive() {
		pct = shortage.Div(product.MinQuantity).Mul(hundred).Round(1)
	}

	ev.Result = &Result{
		Product:            product,
		Reconciliation:     rec,
		Severity:           severity,
		Replenishment:      Replenish(rec.Current, product.MinQuantity, product.CostPrice),
		Consumption:        EstimateConsumption(movements, rec.Current, today),
		Shortage:           shortage,
		ShortagePercentage: pct,
	}
	return ev
}

// SortResults ordena el reporte: prioridad ascendente (1 primero), luego
// porcentaje de faltante descendente. Es el orden global único del sistema.
func SortResults(results []*Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Severity.Priority != b.Severity.Priority {
			return a.Severity.Priority < b.Severity.Priority
		}
		return a.ShortagePercentage.GreaterThan(b.ShortagePercentage)
	})
}

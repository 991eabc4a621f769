package valuation_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohazard555/sampro-api/internal/domain/entity"
	"github.com/mohazard555/sampro-api/internal/domain/valuation"
)

var testToday = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func qty(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func testProduct(min, stored float64) *entity.Product {
	return &entity.Product{
		ID:          "prod-1",
		Code:        "P-001",
		Name:        "Tornillo 5mm",
		Unit:        "unidad",
		CostPrice:   qty(10),
		Quantity:    qty(stored),
		MinQuantity: qty(min),
		WarehouseID: "wh-1",
		IsActive:    true,
	}
}

func mov(typ string, quantity float64, daysAgo int) *entity.InventoryMovement {
	return &entity.InventoryMovement{
		Type:        typ,
		Quantity:    qty(quantity),
		Date:        testToday.AddDate(0, 0, -daysAgo),
		ProductID:   "prod-1",
		WarehouseID: "wh-1",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Reconciliación
// ──────────────────────────────────────────────────────────────────────────────

func TestReconcile_EntradasYSalidas(t *testing.T) {
	p := testProduct(100, 0)
	movs := []*entity.InventoryMovement{
		mov(entity.MovementTypeIn, 50, 10),
		mov(entity.MovementTypePurchase, 30, 8),
		mov(entity.MovementTypeSale, 25, 5),
		mov(entity.MovementTypeDamage, 5, 2),
	}

	rec := valuation.Reconcile(p, movs)

	assert.True(t, rec.Calculated.Equal(qty(50)), "calculada = 50+30-25-5")
	assert.True(t, rec.TotalIn.Equal(qty(80)), "entradas totales")
	assert.True(t, rec.TotalOut.Equal(qty(30)), "salidas totales")
}

func TestReconcile_CantidadesNegativasSeTratanComoMagnitud(t *testing.T) {
	// Salidas registradas con cantidad negativa no deben sumar dos veces
	p := testProduct(100, 0)
	movs := []*entity.InventoryMovement{
		mov(entity.MovementTypeIn, 50, 3),
		mov(entity.MovementTypeOut, -40, 1), // magnitud 40
	}

	rec := valuation.Reconcile(p, movs)
	assert.True(t, rec.Calculated.Equal(qty(10)), "50 - |−40| = 10")
	assert.True(t, rec.TotalOut.Equal(qty(40)))
}

func TestReconcile_AjusteConservaElSigno(t *testing.T) {
	p := testProduct(100, 0)

	positivo := valuation.Reconcile(p, []*entity.InventoryMovement{
		mov(entity.MovementTypeAdjustment, 15, 1),
	})
	assert.True(t, positivo.Calculated.Equal(qty(15)))
	assert.True(t, positivo.TotalIn.Equal(qty(15)))

	// Escenario D: ajuste -20 partiendo de cero → calculada recortada a 0
	negativo := valuation.Reconcile(p, []*entity.InventoryMovement{
		mov(entity.MovementTypeAdjustment, -20, 1),
	})
	assert.True(t, negativo.Calculated.IsZero(), "el stock nunca se reporta negativo")
	assert.True(t, negativo.TotalOut.Equal(qty(20)), "el ajuste negativo cuenta como salida")
}

func TestReconcile_TransferLegado(t *testing.T) {
	p := testProduct(100, 0)

	// Mismo almacén del producto → salida
	saliente := mov(entity.MovementTypeTransfer, 10, 1)
	rec := valuation.Reconcile(p, []*entity.InventoryMovement{
		mov(entity.MovementTypeIn, 30, 5),
		saliente,
	})
	assert.True(t, rec.Calculated.Equal(qty(20)), "transfer desde el almacén del producto resta")

	// to_warehouse_id apunta al almacén del producto → entrada
	entrante := mov(entity.MovementTypeTransfer, 10, 1)
	entrante.WarehouseID = "wh-otro"
	entrante.ToWarehouseID = "wh-1"
	rec = valuation.Reconcile(p, []*entity.InventoryMovement{entrante})
	assert.True(t, rec.Calculated.Equal(qty(10)), "transfer hacia el almacén del producto suma")

	// Ningún almacén coincide → sin efecto
	ajeno := mov(entity.MovementTypeTransfer, 10, 1)
	ajeno.WarehouseID = "wh-a"
	ajeno.ToWarehouseID = "wh-b"
	rec = valuation.Reconcile(p, []*entity.InventoryMovement{ajeno})
	assert.True(t, rec.Calculated.IsZero(), "transfer ajeno no afecta la cantidad")
}

func TestReconcile_TipoDesconocidoSeIgnoraYReporta(t *testing.T) {
	p := testProduct(100, 0)
	rec := valuation.Reconcile(p, []*entity.InventoryMovement{
		mov(entity.MovementTypeIn, 30, 2),
		mov("teleport", 99, 1),
	})

	assert.True(t, rec.Calculated.Equal(qty(30)), "el tipo desconocido no aporta cantidad")
	assert.Equal(t, []string{"teleport"}, rec.UnknownTypes)
}

func TestReconcile_PoliticaMaxDeAmbas(t *testing.T) {
	// Ficha mayor que el libro: gana la ficha (libro posiblemente incompleto)
	p := testProduct(100, 80)
	rec := valuation.Reconcile(p, []*entity.InventoryMovement{
		mov(entity.MovementTypeIn, 30, 1),
	})
	assert.True(t, rec.Current.Equal(qty(80)), "current = max(registrada, calculada)")
	assert.True(t, rec.Calculated.Equal(qty(30)), "ambos valores quedan expuestos para detectar deriva")

	// Libro mayor que la ficha: gana el libro
	p = testProduct(100, 10)
	rec = valuation.Reconcile(p, []*entity.InventoryMovement{
		mov(entity.MovementTypeIn, 60, 1),
	})
	assert.True(t, rec.Current.Equal(qty(60)))

	// Ficha negativa (dato corrupto): nunca baja el current bajo la calculada
	p = testProduct(100, -5)
	rec = valuation.Reconcile(p, nil)
	assert.True(t, rec.Current.IsZero(), "ficha negativa tolerada, current >= 0")
}

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación de severidad
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_Niveles(t *testing.T) {
	min := qty(100)

	cases := []struct {
		name     string
		current  float64
		level    string
		priority int
	}{
		{"agotado", 0, valuation.UrgencyCritical, 1},
		{"muy critico 20%", 20, valuation.UrgencyCritical, 2},
		{"critico 50%", 50, valuation.UrgencyHigh, 3},
		{"bajo 80%", 80, valuation.UrgencyMedium, 4},
		{"en el minimo", 100, valuation.UrgencyLow, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, low := valuation.Classify(qty(tc.current), min)
			require.True(t, low)
			assert.Equal(t, tc.level, s.Level)
			assert.Equal(t, tc.priority, s.Priority)
		})
	}
}

func TestClassify_SobreElMinimoQuedaFuera(t *testing.T) {
	_, low := valuation.Classify(qty(101), qty(100))
	assert.False(t, low, "sobre el mínimo no es faltante")
}

func TestClassify_PrioridadCreceAlBajarSeveridad(t *testing.T) {
	// Los niveles son mutuamente excluyentes y la prioridad es estrictamente
	// creciente al disminuir la severidad.
	min := qty(100)
	prev := 0
	for _, current := range []float64{-5, 0, 1, 20, 21, 50, 51, 80, 81, 100} {
		s, low := valuation.Classify(qty(current), min)
		require.True(t, low)
		assert.GreaterOrEqual(t, s.Priority, prev, "current=%v", current)
		prev = s.Priority
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Reposición y consumo
// ──────────────────────────────────────────────────────────────────────────────

func TestReplenish_NivelSeguro(t *testing.T) {
	r := valuation.Replenish(qty(0), qty(50), qty(12))

	assert.True(t, r.SafeQuantity.Equal(qty(75)), "seguro = 1.5 × 50")
	assert.True(t, r.RequiredQuantity.Equal(qty(75)))
	assert.True(t, r.EstimatedCost.Equal(qty(900)), "75 × 12")
}

func TestReplenish_SobreElNivelSeguroNoPideNada(t *testing.T) {
	r := valuation.Replenish(qty(200), qty(50), qty(12))
	assert.True(t, r.RequiredQuantity.IsZero())
	assert.True(t, r.EstimatedCost.IsZero())
}

func TestEstimateConsumption_EscenarioE(t *testing.T) {
	// Dos salidas de 10 en un rango de 5 días → 4.0 unidades/día;
	// con 20 unidades actuales quedan 5 días.
	movs := []*entity.InventoryMovement{
		mov(entity.MovementTypeOut, 10, 5),
		mov(entity.MovementTypeOut, 10, 0),
	}

	c := valuation.EstimateConsumption(movs, qty(20), testToday)

	assert.True(t, c.Rate.Equal(qty(4)), "20 unidades / 5 días")
	require.NotNil(t, c.DaysRemaining)
	assert.Equal(t, int64(5), *c.DaysRemaining)
}

func TestEstimateConsumption_IndependienteDelOrden(t *testing.T) {
	asc := []*entity.InventoryMovement{
		mov(entity.MovementTypeOut, 10, 5),
		mov(entity.MovementTypeOut, 10, 0),
	}
	desc := []*entity.InventoryMovement{asc[1], asc[0]}

	cAsc := valuation.EstimateConsumption(asc, qty(20), testToday)
	cDesc := valuation.EstimateConsumption(desc, qty(20), testToday)

	assert.True(t, cAsc.Rate.Equal(cDesc.Rate), "el rango de fechas no depende del orden de la lista")
}

func TestEstimateConsumption_SoloSalidasDirectasYVentas(t *testing.T) {
	// Las mermas y traslados no cuentan para la velocidad de consumo
	movs := []*entity.InventoryMovement{
		mov(entity.MovementTypeDamage, 100, 10),
		mov(entity.MovementTypeTransferOut, 100, 8),
		mov(entity.MovementTypeSale, 10, 5),
		mov(entity.MovementTypeOut, 10, 0),
	}

	c := valuation.EstimateConsumption(movs, qty(20), testToday)
	assert.True(t, c.Rate.Equal(qty(2)), "solo out y sale: 20 / 10 días")
}

func TestEstimateConsumption_CasosDegenerados(t *testing.T) {
	// Sin movimientos: sin tasa ni fecha
	c := valuation.EstimateConsumption(nil, qty(20), testToday)
	assert.True(t, c.Rate.IsZero())
	assert.Nil(t, c.DaysRemaining)
	assert.Nil(t, c.LastMovementDate)

	// Un solo movimiento: hay última fecha pero no tendencia
	c = valuation.EstimateConsumption([]*entity.InventoryMovement{
		mov(entity.MovementTypeOut, 10, 3),
	}, qty(20), testToday)
	assert.True(t, c.Rate.IsZero())
	require.NotNil(t, c.DaysSinceLastMovement)
	assert.Equal(t, int64(3), *c.DaysSinceLastMovement)

	// Dos movimientos el mismo día: rango cero, división protegida
	c = valuation.EstimateConsumption([]*entity.InventoryMovement{
		mov(entity.MovementTypeOut, 10, 1),
		mov(entity.MovementTypeOut, 10, 1),
	}, qty(20), testToday)
	assert.True(t, c.Rate.IsZero(), "rango de días cero no divide")
	assert.Nil(t, c.DaysRemaining)
}

// ──────────────────────────────────────────────────────────────────────────────
// Evaluate: escenarios completos
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_SinUmbralSeExcluye(t *testing.T) {
	p := testProduct(0, 50)
	assert.Nil(t, valuation.Evaluate(p, nil, testToday), "min_quantity <= 0 no se evalúa")

	p.MinQuantity = qty(-10)
	assert.Nil(t, valuation.Evaluate(p, nil, testToday))
}

func TestEvaluate_EscenarioA_StockSuficiente(t *testing.T) {
	// min=100, entrada de 150, ficha en 0 → current=150, no es faltante
	p := testProduct(100, 0)
	ev := valuation.Evaluate(p, []*entity.InventoryMovement{
		mov(entity.MovementTypeIn, 150, 2),
	}, testToday)

	require.NotNil(t, ev)
	assert.True(t, ev.Reconciliation.Calculated.Equal(qty(150)))
	assert.True(t, ev.Reconciliation.Current.Equal(qty(150)))
	assert.Nil(t, ev.Result, "sobre el umbral queda fuera del reporte")
}

func TestEvaluate_EscenarioB_MuyCritico(t *testing.T) {
	// min=100, +50 −40, ficha 0 → current=10, crítico (<20%), faltante 90%
	p := testProduct(100, 0)
	ev := valuation.Evaluate(p, []*entity.InventoryMovement{
		mov(entity.MovementTypeIn, 50, 6),
		mov(entity.MovementTypeOut, 40, 1),
	}, testToday)

	require.NotNil(t, ev)
	require.NotNil(t, ev.Result)
	r := ev.Result
	assert.True(t, r.Reconciliation.Current.Equal(qty(10)))
	assert.Equal(t, valuation.UrgencyCritical, r.Severity.Level)
	assert.Equal(t, 2, r.Severity.Priority)
	assert.True(t, r.Shortage.Equal(qty(90)))
	assert.True(t, r.ShortagePercentage.Equal(qty(90)), "faltante del 90 por ciento")
}

func TestEvaluate_EscenarioC_Agotado(t *testing.T) {
	// min=50, sin movimientos, ficha 0 → agotado, pedido = 75 (1.5×50)
	p := testProduct(50, 0)
	p.CostPrice = qty(8)
	ev := valuation.Evaluate(p, nil, testToday)

	require.NotNil(t, ev)
	require.NotNil(t, ev.Result)
	r := ev.Result
	assert.Equal(t, 1, r.Severity.Priority)
	assert.True(t, r.Severity.OutOfStock)
	assert.True(t, r.Replenishment.RequiredQuantity.Equal(qty(75)))
	assert.True(t, r.Replenishment.EstimatedCost.Equal(qty(600)))
	assert.True(t, r.ShortagePercentage.Equal(qty(100)))
}

func TestEvaluate_Idempotente(t *testing.T) {
	p := testProduct(100, 5)
	movs := []*entity.InventoryMovement{
		mov(entity.MovementTypeIn, 50, 9),
		mov(entity.MovementTypeSale, 45, 3),
	}

	ev1 := valuation.Evaluate(p, movs, testToday)
	ev2 := valuation.Evaluate(p, movs, testToday)

	require.NotNil(t, ev1)
	require.NotNil(t, ev2)
	assert.Equal(t, ev1, ev2, "mismo input → mismo output")
}

func TestEvaluate_PorcentajeDeFaltanteAcotado(t *testing.T) {
	// Con current >= 0 el faltante nunca excede el mínimo: pct en [0, 100]
	for _, stored := range []float64{0, 1, 25, 99, 100} {
		p := testProduct(100, stored)
		ev := valuation.Evaluate(p, nil, testToday)
		require.NotNil(t, ev)
		require.NotNil(t, ev.Result)
		pct := ev.Result.ShortagePercentage
		assert.True(t, pct.GreaterThanOrEqual(decimal.Zero), "stored=%v", stored)
		assert.True(t, pct.LessThanOrEqual(qty(100)), "stored=%v", stored)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ordenamiento global
// ──────────────────────────────────────────────────────────────────────────────

func TestSortResults_PrioridadLuegoFaltante(t *testing.T) {
	mk := func(priority int, pct float64) *valuation.Result {
		return &valuation.Result{
			Severity:           valuation.Severity{Priority: priority},
			ShortagePercentage: qty(pct),
		}
	}
	results := []*valuation.Result{
		mk(3, 60), mk(1, 100), mk(2, 85), mk(2, 95), mk(5, 5),
	}

	valuation.SortResults(results)

	want := []struct {
		priority int
		pct      float64
	}{
		{1, 100}, {2, 95}, {2, 85}, {3, 60}, {5, 5},
	}
	for i, w := range want {
		assert.Equal(t, w.priority, results[i].Severity.Priority, "posición %d", i)
		assert.True(t, results[i].ShortagePercentage.Equal(qty(w.pct)), "posición %d", i)
	}
}

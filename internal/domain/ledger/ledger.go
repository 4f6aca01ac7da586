// Package ledger contiene las reglas puras del ledger de inventario:
// derivación de stock disponible y bucketing mensual de los resúmenes
// financieros. Sin dependencias de persistencia para poder testear aislado.
package ledger

import "time"

// LowStockThreshold unidades restantes por debajo de las cuales una fila
// del ledger se considera en riesgo de quiebre de stock.
const LowStockThreshold = 5

// Remaining deriva el stock disponible clampeado a cero. El clamp existe
// porque filas históricas pueden tener sold > received si la entrada de
// mercancía se registró después de las ventas.
func Remaining(received, sold int) int {
	if remaining := received - sold; remaining > 0 {
		return remaining
	}
	return 0
}

// MonthOf trunca t al primer día de su mes a las 00:00, en la zona de t.
// Es la clave de fila de ShopFinancialSummary; recibir el instante como
// argumento (en lugar de leer el reloj adentro) permite inyectarlo en tests.
func MonthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthRange devuelve [inicio, fin) del mes que contiene t.
func MonthRange(t time.Time) (start, end time.Time) {
	start = MonthOf(t)
	return start, start.AddDate(0, 1, 0)
}

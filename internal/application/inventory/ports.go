package inventory

import (
	"context"
	"time"

	"github.com/jfcastano/optica-distri/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que contadores del ledger, journal
// y resumen financiero commiteen juntos o se reviertan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.ShopInventoryRepository,
		txRepo repository.InventoryTransactionRepository,
		summaryRepo repository.FinancialSummaryRepository,
	) error) error
}

// Clock inyecta el instante actual; nil en producción usa time.Now.
// Permite testear el bucketing mensual sin leer el reloj del sistema.
type Clock func() time.Time

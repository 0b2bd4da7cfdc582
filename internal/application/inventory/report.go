package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/hardware-store/internal/domain/entity"
)

// SalesReport resumen de ventas listo para exportar.
type SalesReport struct {
	StoreName    string
	GeneratedAt  time.Time
	Transactions []*entity.Transaction
	UnitsSold    int
	Revenue      decimal.Decimal
}

// SalesReportGenerator genera la representación del reporte (PDF).
type SalesReportGenerator interface {
	GenerateSalesReport(ctx context.Context, report *SalesReport) ([]byte, error)
}

// SalesReport arma el resumen de todas las transacciones registradas hasta ahora.
func (s *Store) SalesReport(storeName string) *SalesReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := &SalesReport{
		StoreName:    storeName,
		GeneratedAt:  s.now(),
		Transactions: make([]*entity.Transaction, 0, len(s.transactions)),
		Revenue:      decimal.Zero,
	}
	for _, t := range s.transactions {
		tx := *t
		r.Transactions = append(r.Transactions, &tx)
		r.UnitsSold += t.QuantitySold
		r.Revenue = r.Revenue.Add(t.Total())
	}
	return r
}

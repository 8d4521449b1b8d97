package usecase

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/facturapro/facturapro-api/internal/application/dto"
	"github.com/facturapro/facturapro-api/internal/domain/entity"
	"github.com/facturapro/facturapro-api/internal/domain/repository"
)

// DashboardUseCase métricas del panel principal, calculadas sobre las
// colecciones en cada consulta.
type DashboardUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// Summary calcula las métricas del panel: total facturado (todas las
// facturas, sin importar estado), conteos por estado y facturación por mes.
func (uc *DashboardUseCase) Summary() (*dto.DashboardSummary, error) {
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	customers, err := uc.customerRepo.List()
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummary{
		TotalInvoiced: decimal.Zero,
		InvoiceCount:  len(invoices),
		CustomerCount: len(customers),
		ProductCount:  len(products),
	}
	byMonth := map[string]decimal.Decimal{}
	for _, inv := range invoices {
		summary.TotalInvoiced = summary.TotalInvoiced.Add(inv.Total)
		switch inv.Status {
		case entity.StatusPending:
			summary.PendingCount++
		case entity.StatusPaid:
			summary.PaidCount++
		case entity.StatusCancelled:
			summary.CancelledCount++
		}
		month := inv.Date.Format("2006-01")
		byMonth[month] = byMonth[month].Add(inv.Total)
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)
	summary.RevenueByMonth = make([]dto.MonthRevenue, 0, len(months))
	for _, month := range months {
		summary.RevenueByMonth = append(summary.RevenueByMonth, dto.MonthRevenue{
			Month: month,
			Total: byMonth[month],
		})
	}
	return summary, nil
}

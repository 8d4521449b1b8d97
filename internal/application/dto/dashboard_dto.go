package dto

import "github.com/shopspring/decimal"

// DashboardSummary métricas del panel principal.
type DashboardSummary struct {
	TotalInvoiced  decimal.Decimal `json:"total_invoiced"`
	InvoiceCount   int             `json:"invoice_count"`
	PendingCount   int             `json:"pending_count"`
	PaidCount      int             `json:"paid_count"`
	CancelledCount int             `json:"cancelled_count"`
	CustomerCount  int             `json:"customer_count"`
	ProductCount   int             `json:"product_count"`
	RevenueByMonth []MonthRevenue  `json:"revenue_by_month"`
}

// MonthRevenue total facturado en un mes (YYYY-MM), ordenado ascendente.
type MonthRevenue struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

package export_test

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturapro/facturapro-api/internal/domain/entity"
	"github.com/facturapro/facturapro-api/internal/infrastructure/export"
)

func TestExportInvoiceXML(t *testing.T) {
	inv := &entity.Invoice{
		ID:     "inv-1",
		Number: "FAC-20250601-001",
		Date:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Status: entity.StatusPending,
		Customer: entity.Customer{
			Name:  "Tecnología Avanzada SL",
			TaxID: "B12345678",
		},
		Lines: []entity.InvoiceLine{
			{
				Product:   entity.Product{Code: "SERV-001", Name: "Diseño Web Profesional"},
				Quantity:  1,
				UnitPrice: decimal.NewFromInt(1500),
				Subtotal:  decimal.NewFromInt(1500),
			},
		},
		Subtotal: decimal.NewFromInt(1500),
		TaxTotal: decimal.NewFromInt(240),
		Total:    decimal.NewFromInt(1740),
	}
	settings := &entity.Settings{
		BusinessName: "FacturaPro S.L.",
		TaxID:        "B00000000",
		Currency:     "EUR",
		TaxRate:      decimal.NewFromInt(16),
	}

	out, err := export.NewXMLBuilder().ExportInvoiceXML(inv, settings)
	require.NoError(t, err)

	got := string(out)
	assert.Contains(t, got, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, got, "<Numero>FAC-20250601-001</Numero>")
	assert.Contains(t, got, "<Cantidad>1</Cantidad>")
	assert.Contains(t, got, "<Total>1740.00</Total>")

	// El documento debe ser XML bien formado y reversible.
	var parsed struct {
		Number string `xml:"Numero"`
		Totals struct {
			Total string `xml:"Total"`
		} `xml:"Totales"`
	}
	require.NoError(t, xml.Unmarshal(out, &parsed))
	assert.Equal(t, inv.Number, parsed.Number)
	assert.Equal(t, "1740.00", parsed.Totals.Total)
}

func TestExportInvoiceXML_EntradaNula(t *testing.T) {
	_, err := export.NewXMLBuilder().ExportInvoiceXML(nil, nil)
	assert.Error(t, err)
}

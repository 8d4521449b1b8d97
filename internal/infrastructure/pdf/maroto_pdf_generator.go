// Package pdf implementa la representación imprimible de una factura con
// Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio + NIF  │  N° Factura + Fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMISOR: Dirección / Tel / Email                            │
//	│  CLIENTE: Nombre + NIF + contacto                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Subtotal              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IVA / TOTAL                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/facturapro/facturapro-api/internal/domain/entity"
	"github.com/facturapro/facturapro-api/pkg/moneyfmt"
)

var (
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(inv *entity.Invoice, settings *entity.Settings) ([]byte, error) {
	if inv == nil || settings == nil {
		return nil, fmt.Errorf("pdf: faltan factura o configuración")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+inv.Number, true).
		WithAuthor(settings.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(inv, settings))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(issuerRow(settings))
	m.AddRows(customerRow(&inv.Customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(inv, settings.Currency) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(inv, settings)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(inv *entity.Invoice, settings *entity.Settings) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(settings.BusinessName, props.Text{Size: 14, Style: fontstyle.Bold, Color: colorPrimary}),
			text.New("NIF: "+settings.TaxID, props.Text{Top: 7, Size: 8, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Factura "+inv.Number, props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right}),
			text.New("Fecha: "+inv.Date.Format("02/01/2006"), props.Text{Top: 6, Size: 8, Align: align.Right, Color: colorGray}),
			text.New("Estado: "+inv.Status, props.Text{Top: 10, Size: 8, Align: align.Right, Color: colorGray}),
		),
	)
}

func issuerRow(settings *entity.Settings) core.Row {
	address := fmt.Sprintf("%s, %s %s (%s)", settings.Address, settings.PostalCode, settings.City, settings.Country)
	contact := fmt.Sprintf("Tel: %s · %s · %s", settings.Phone, settings.Email, settings.Website)
	return row.New(10).Add(
		col.New(12).Add(
			text.New(address, props.Text{Size: 8, Color: colorGray}),
			text.New(contact, props.Text{Top: 4, Size: 8, Color: colorGray}),
		),
	)
}

func customerRow(customer *entity.Customer) core.Row {
	detail := customer.Name
	if customer.TaxID != "" {
		detail += " · NIF " + customer.TaxID
	}
	address := fmt.Sprintf("%s, %s %s", customer.Address, customer.PostalCode, customer.City)
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Cliente", props.Text{Size: 8, Style: fontstyle.Bold, Color: colorPrimary}),
			text.New(detail, props.Text{Top: 4, Size: 9}),
			text.New(address, props.Text{Top: 8, Size: 8, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	style := props.Text{Size: 8, Style: fontstyle.Bold}
	rightStyle := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
	return row.New(6).Add(
		text.NewCol(1, "Cant.", style),
		text.NewCol(6, "Descripción", style),
		text.NewCol(2, "P. Unit.", rightStyle),
		text.NewCol(3, "Subtotal", rightStyle),
	)
}

func tableLineRows(inv *entity.Invoice, currency string) []core.Row {
	rows := make([]core.Row, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		rows = append(rows, row.New(5).Add(
			text.NewCol(1, fmt.Sprintf("%d", l.Quantity), props.Text{Size: 8}),
			text.NewCol(6, l.Product.Name, props.Text{Size: 8}),
			text.NewCol(2, moneyfmt.Format(l.UnitPrice, currency), props.Text{Size: 8, Align: align.Right}),
			text.NewCol(3, moneyfmt.Format(l.Subtotal, currency), props.Text{Size: 8, Align: align.Right}),
		))
	}
	return rows
}

func totalsRows(inv *entity.Invoice, settings *entity.Settings) []core.Row {
	currency := settings.Currency
	taxLabel := fmt.Sprintf("IVA (%s%%)", settings.TaxRate.StringFixed(0))
	return []core.Row{
		row.New(5).Add(
			col.New(9),
			text.NewCol(3, "Subtotal: "+moneyfmt.Format(inv.Subtotal, currency), props.Text{Size: 9, Align: align.Right}),
		),
		row.New(5).Add(
			col.New(9),
			text.NewCol(3, taxLabel+": "+moneyfmt.Format(inv.TaxTotal, currency), props.Text{Size: 9, Align: align.Right}),
		),
		row.New(7).Add(
			col.New(9),
			text.NewCol(3, "TOTAL: "+moneyfmt.Format(inv.Total, currency), props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary}),
		),
	}
}

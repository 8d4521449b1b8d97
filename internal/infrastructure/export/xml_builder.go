// Package export serializa facturas a un XML plano de intercambio. No es
// UBL ni lleva firma: es el formato de exportación/copia de seguridad de la
// aplicación.
package export

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/facturapro/facturapro-api/internal/domain/entity"
)

// XMLBuilder implementa billing.InvoiceXMLExporter con encoding/xml.
type XMLBuilder struct{}

// NewXMLBuilder construye el exportador.
func NewXMLBuilder() *XMLBuilder { return &XMLBuilder{} }

type xmlInvoice struct {
	XMLName  xml.Name    `xml:"Factura"`
	Number   string      `xml:"Numero"`
	Date     string      `xml:"Fecha"`
	Status   string      `xml:"Estado"`
	Issuer   xmlIssuer   `xml:"Emisor"`
	Customer xmlCustomer `xml:"Cliente"`
	Lines    []xmlLine   `xml:"Lineas>Linea"`
	Totals   xmlTotals   `xml:"Totales"`
}

type xmlIssuer struct {
	Name    string `xml:"Nombre"`
	TaxID   string `xml:"NIF"`
	Address string `xml:"Direccion,omitempty"`
	City    string `xml:"Ciudad,omitempty"`
	Email   string `xml:"Email,omitempty"`
}

type xmlCustomer struct {
	Name    string `xml:"Nombre"`
	TaxID   string `xml:"NIF,omitempty"`
	Address string `xml:"Direccion,omitempty"`
	City    string `xml:"Ciudad,omitempty"`
	Email   string `xml:"Email,omitempty"`
}

type xmlLine struct {
	ProductCode string `xml:"Codigo"`
	Description string `xml:"Descripcion"`
	Quantity    int64  `xml:"Cantidad"`
	UnitPrice   string `xml:"PrecioUnitario"`
	Subtotal    string `xml:"Subtotal"`
}

type xmlTotals struct {
	Currency string `xml:"Moneda"`
	Subtotal string `xml:"Subtotal"`
	TaxRate  string `xml:"TipoIVA"`
	TaxTotal string `xml:"IVA"`
	Total    string `xml:"Total"`
}

// ExportInvoiceXML genera el documento XML de la factura con importes a dos
// decimales.
func (b *XMLBuilder) ExportInvoiceXML(inv *entity.Invoice, settings *entity.Settings) ([]byte, error) {
	if inv == nil || settings == nil {
		return nil, fmt.Errorf("export: faltan factura o configuración")
	}
	doc := xmlInvoice{
		Number: inv.Number,
		Date:   inv.Date.Format("2006-01-02"),
		Status: inv.Status,
		Issuer: xmlIssuer{
			Name:    settings.BusinessName,
			TaxID:   settings.TaxID,
			Address: settings.Address,
			City:    settings.City,
			Email:   settings.Email,
		},
		Customer: xmlCustomer{
			Name:    inv.Customer.Name,
			TaxID:   inv.Customer.TaxID,
			Address: inv.Customer.Address,
			City:    inv.Customer.City,
			Email:   inv.Customer.Email,
		},
		Totals: xmlTotals{
			Currency: settings.Currency,
			Subtotal: inv.Subtotal.StringFixed(2),
			TaxRate:  settings.TaxRate.StringFixed(2),
			TaxTotal: inv.TaxTotal.StringFixed(2),
			Total:    inv.Total.StringFixed(2),
		},
	}
	for _, l := range inv.Lines {
		doc.Lines = append(doc.Lines, xmlLine{
			ProductCode: l.Product.Code,
			Description: l.Product.Name,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice.StringFixed(2),
			Subtotal:    l.Subtotal.StringFixed(2),
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("serializar XML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

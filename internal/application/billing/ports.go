package billing

import "github.com/facturapro/facturapro-api/internal/domain/entity"

// InvoicePDFGenerator renderiza la representación imprimible de una factura.
// La factura lleva embebidas las copias de cliente y productos, así que solo
// hace falta el perfil de negocio para el emisor.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(inv *entity.Invoice, settings *entity.Settings) ([]byte, error)
}

// InvoiceXMLExporter serializa una factura a XML plano para exportación.
type InvoiceXMLExporter interface {
	ExportInvoiceXML(inv *entity.Invoice, settings *entity.Settings) ([]byte, error)
}

package billing

import (
	"strings"
	"time"

	"github.com/facturapro/facturapro-api/internal/application/dto"
	"github.com/facturapro/facturapro-api/internal/domain"
	domainbilling "github.com/facturapro/facturapro-api/internal/domain/billing"
	"github.com/facturapro/facturapro-api/internal/domain/entity"
	"github.com/facturapro/facturapro-api/internal/domain/repository"
	"github.com/facturapro/facturapro-api/pkg/idgen"
)

// InvoiceUseCase casos de uso de facturas: creación vía el motor de totales,
// consulta con filtros, cambio de estado, borrado y exportación.
type InvoiceUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
	pdf          InvoicePDFGenerator
	xml          InvoiceXMLExporter
	ids          idgen.Generator
	numberPrefix string
	now          func() time.Time
}

// NewInvoiceUseCase construye el caso de uso. now permite inyectar el reloj
// en tests; nil usa time.Now.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	settingsRepo repository.SettingsRepository,
	pdf InvoicePDFGenerator,
	xml InvoiceXMLExporter,
	ids idgen.Generator,
	numberPrefix string,
	now func() time.Time,
) *InvoiceUseCase {
	if now == nil {
		now = time.Now
	}
	if numberPrefix == "" {
		numberPrefix = "FAC"
	}
	return &InvoiceUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		settingsRepo: settingsRepo,
		pdf:          pdf,
		xml:          xml,
		ids:          ids,
		numberPrefix: numberPrefix,
		now:          now,
	}
}

// Create construye la factura con el motor de totales y la persiste. El IVA
// aplicado es la tasa por defecto del perfil de negocio. Valida cliente y
// líneas antes de cualquier efecto; en caso de error no persiste nada.
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	draft := domainbilling.NewDraft(settings.TaxRate, uc.ids.NewID)
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		line := draft.AddLine(product)
		draft.SetQuantity(line.ID, item.Quantity)
	}

	if err := draft.ValidateForSave(in.CustomerID); err != nil {
		return nil, err
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	now := uc.now()
	date := now
	if in.Date != "" {
		parsed, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}

	existing, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	numbers := make([]string, 0, len(existing))
	for _, inv := range existing {
		numbers = append(numbers, inv.Number)
	}
	number := domainbilling.GenerateNumber(uc.numberPrefix, date, numbers)

	inv, err := draft.Commit(uc.ids.NewID(), number, date, customer, now)
	if err != nil {
		return nil, err
	}
	if err := uc.invoiceRepo.Create(inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// GetByID obtiene una factura con su detalle completo.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(inv), nil
}

// List lista facturas con filtro de texto (número o nombre de cliente, sin
// distinguir mayúsculas) y de estado ("" o "todos" = todos).
func (uc *InvoiceUseCase) List(status, search string) ([]*dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	search = strings.ToLower(search)
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		inv := &invoices[i]
		if status != "" && status != "todos" && inv.Status != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(inv.Number), search) &&
			!strings.Contains(strings.ToLower(inv.Customer.Name), search) {
			continue
		}
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// SetStatus cambia el estado de una factura. Cualquier estado es alcanzable
// desde cualquier otro; solo se valida que el destino sea conocido.
func (uc *InvoiceUseCase) SetStatus(id, status string) (*dto.InvoiceResponse, error) {
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.invoiceRepo.SetStatus(id, status); err != nil {
		return nil, err
	}
	inv.Status = status
	return toInvoiceResponse(inv), nil
}

// Delete elimina una factura por ID. ID inexistente es un no-op del almacén.
func (uc *InvoiceUseCase) Delete(id string) error {
	return uc.invoiceRepo.Delete(id)
}

// RenderPDF genera la representación imprimible de una factura guardada.
func (uc *InvoiceUseCase) RenderPDF(id string) ([]byte, error) {
	inv, settings, err := uc.invoiceWithSettings(id)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateInvoicePDF(inv, settings)
}

// RenderXML exporta una factura guardada como XML plano.
func (uc *InvoiceUseCase) RenderXML(id string) ([]byte, error) {
	inv, settings, err := uc.invoiceWithSettings(id)
	if err != nil {
		return nil, err
	}
	return uc.xml.ExportInvoiceXML(inv, settings)
}

func (uc *InvoiceUseCase) invoiceWithSettings(id string) (*entity.Invoice, *entity.Settings, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if inv == nil {
		return nil, nil, domain.ErrNotFound
	}
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, nil, err
	}
	return inv, settings, nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:           inv.ID,
		Number:       inv.Number,
		Date:         inv.Date.Format("2006-01-02"),
		CustomerID:   inv.CustomerID,
		CustomerName: inv.Customer.Name,
		Lines:        make([]dto.InvoiceLineResponse, 0, len(inv.Lines)),
		Subtotal:     inv.Subtotal,
		TaxTotal:     inv.TaxTotal,
		Total:        inv.Total,
		Status:       inv.Status,
		CreatedAt:    inv.CreatedAt.Format(time.RFC3339),
	}
	for _, line := range inv.Lines {
		resp.Lines = append(resp.Lines, dto.InvoiceLineResponse{
			ID:          line.ID,
			ProductID:   line.ProductID,
			ProductName: line.Product.Name,
			ProductCode: line.Product.Code,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Subtotal,
		})
	}
	return resp
}

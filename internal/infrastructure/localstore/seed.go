package localstore

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/facturapro/facturapro-api/internal/domain/entity"
)

// Credenciales del usuario local sembrado.
const (
	SeedUserEmail    = "demo@facturapro.com"
	SeedUserPassword = "demo123"
)

// Seed agrupa el dataset inicial de demostración, usado cuando una clave del
// almacén no existe o está corrupta.
type Seed struct {
	Customers []entity.Customer
	Products  []entity.Product
	Invoices  []entity.Invoice
	Settings  entity.Settings
	User      entity.User
}

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// SeedData construye el dataset de demostración. Las facturas sembradas
// incluyen las copias desnormalizadas de cliente y producto, igual que las
// generadas por el motor.
func SeedData() Seed {
	customers := []entity.Customer{
		{
			ID:         "1",
			Name:       "Empresa Innovadora S.L.",
			TaxID:      "B12345678",
			Email:      "contacto@empresainnovadora.com",
			Phone:      "912345678",
			Address:    "Calle Gran Vía 123",
			City:       "Madrid",
			PostalCode: "28001",
			Country:    "España",
			Notes:      "Cliente importante, ofrecer descuentos en próximas compras.",
		},
		{
			ID:         "2",
			Name:       "Comercial del Sur S.A.",
			TaxID:      "A87654321",
			Email:      "info@comercialdelsur.com",
			Phone:      "954123456",
			Address:    "Avenida de la Constitución 45",
			City:       "Sevilla",
			PostalCode: "41001",
			Country:    "España",
		},
		{
			ID:         "3",
			Name:       "Tecnología Avanzada SL",
			TaxID:      "B98765432",
			Email:      "contacto@tecnologiaavanzada.com",
			Phone:      "932223344",
			Address:    "Paseo de Gracia 78",
			City:       "Barcelona",
			PostalCode: "08008",
			Country:    "España",
			Notes:      "Interesados en servicios de desarrollo web.",
		},
	}

	products := []entity.Product{
		{
			ID:          "1",
			Code:        "DWP-001",
			Name:        "Diseño Web Profesional",
			Description: "Diseño completo de sitio web responsive con hasta 5 páginas",
			Price:       dec(1500),
			TaxRate:     dec(16),
		},
		{
			ID:          "2",
			Code:        "DAM-002",
			Name:        "Desarrollo de Aplicación Móvil",
			Description: "Desarrollo de aplicación para iOS y Android",
			Price:       dec(3000),
			TaxRate:     dec(16),
		},
		{
			ID:          "3",
			Code:        "SEO-003",
			Name:        "Consultoría SEO",
			Description: "Análisis completo y optimización SEO de sitio web",
			Price:       dec(750),
			TaxRate:     dec(16),
		},
		{
			ID:          "4",
			Code:        "MWM-004",
			Name:        "Mantenimiento Web Mensual",
			Description: "Servicio mensual de mantenimiento y actualización web",
			Price:       dec(300),
			TaxRate:     dec(16),
		},
	}

	invoices := []entity.Invoice{
		{
			ID:         "1",
			Number:     "FAC-20250110-001",
			Date:       time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			CustomerID: "1",
			Customer:   customers[0],
			Lines: []entity.InvoiceLine{
				{ID: "1", ProductID: "1", Product: products[0], Quantity: 1, UnitPrice: dec(1500), Subtotal: dec(1500)},
				{ID: "2", ProductID: "3", Product: products[2], Quantity: 1, UnitPrice: dec(750), Subtotal: dec(750)},
			},
			Subtotal:  dec(2250),
			TaxTotal:  dec(360),
			Total:     dec(2610),
			Status:    entity.StatusPaid,
			CreatedAt: time.Date(2025, 1, 10, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:         "2",
			Number:     "FAC-20250115-002",
			Date:       time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			CustomerID: "2",
			Customer:   customers[1],
			Lines: []entity.InvoiceLine{
				{ID: "1", ProductID: "2", Product: products[1], Quantity: 1, UnitPrice: dec(3000), Subtotal: dec(3000)},
			},
			Subtotal:  dec(3000),
			TaxTotal:  dec(480),
			Total:     dec(3480),
			Status:    entity.StatusPending,
			CreatedAt: time.Date(2025, 1, 15, 14, 20, 0, 0, time.UTC),
		},
		{
			ID:         "3",
			Number:     "FAC-20250120-003",
			Date:       time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
			CustomerID: "3",
			Customer:   customers[2],
			Lines: []entity.InvoiceLine{
				{ID: "1", ProductID: "1", Product: products[0], Quantity: 1, UnitPrice: dec(1500), Subtotal: dec(1500)},
				{ID: "2", ProductID: "4", Product: products[3], Quantity: 3, UnitPrice: dec(300), Subtotal: dec(900)},
			},
			Subtotal:  dec(2400),
			TaxTotal:  dec(384),
			Total:     dec(2784),
			Status:    entity.StatusPending,
			CreatedAt: time.Date(2025, 1, 20, 9, 15, 0, 0, time.UTC),
		},
	}

	settings := entity.Settings{
		BusinessName: "FacturaPro S.L.",
		TaxID:        "B12345678",
		Address:      "Calle Ejemplo 123",
		PostalCode:   "28001",
		City:         "Madrid",
		Country:      "España",
		Phone:        "910000000",
		Email:        "contacto@facturapro.com",
		Website:      "www.facturapro.com",
		Currency:     "EUR",
		TaxRate:      dec(16),
		LogoURL:      "https://via.placeholder.com/150x50?text=FacturaPro",
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(SeedUserPassword), bcrypt.DefaultCost)
	user := entity.User{
		ID:           "1",
		Name:         "Usuario Demo",
		Email:        SeedUserEmail,
		PasswordHash: string(hash),
	}

	return Seed{
		Customers: customers,
		Products:  products,
		Invoices:  invoices,
		Settings:  settings,
		User:      user,
	}
}

package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturapro/facturapro-api/internal/application/auth"
	"github.com/facturapro/facturapro-api/internal/application/billing"
	"github.com/facturapro/facturapro-api/internal/application/usecase"
	"github.com/facturapro/facturapro-api/internal/infrastructure/export"
	"github.com/facturapro/facturapro-api/internal/infrastructure/localstore"
	apphttp "github.com/facturapro/facturapro-api/internal/interfaces/http"
	"github.com/facturapro/facturapro-api/pkg/idgen"
	"github.com/facturapro/facturapro-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// newTestAPI levanta la API completa sobre un almacén sembrado en un
// directorio temporal, sin generador de PDF.
func newTestAPI(t *testing.T) *fiber.App {
	t.Helper()
	store, err := localstore.Open(t.TempDir(), logger.New(logger.Config{Env: "production", Level: "error"}))
	require.NoError(t, err)

	customerRepo := localstore.NewCustomerRepository(store)
	productRepo := localstore.NewProductRepository(store)
	invoiceRepo := localstore.NewInvoiceRepository(store)
	settingsRepo := localstore.NewSettingsRepository(store)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(localstore.NewUserRepository(store), auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		}),
		CustomerUC:  billing.NewCustomerUseCase(customerRepo, idgen.NewUUID()),
		InvoiceUC:   billing.NewInvoiceUseCase(invoiceRepo, customerRepo, productRepo, settingsRepo, nil, export.NewXMLBuilder(), idgen.NewUUID(), "FAC", nil),
		ProductUC:   usecase.NewProductUseCase(productRepo, idgen.NewUUID()),
		SettingsUC:  usecase.NewSettingsUseCase(settingsRepo),
		DashboardUC: usecase.NewDashboardUseCase(invoiceRepo, customerRepo, productRepo),
		JWTSecret:   testJWTSecret,
	})
	return app
}

// login hace POST /api/auth/login con las credenciales sembradas y devuelve
// el header Authorization listo para usar.
func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{
		"email":    localstore.SeedUserEmail,
		"password": localstore.SeedUserPassword,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "el login sembrado debe funcionar")

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return "Bearer " + out.Token
}

func do(t *testing.T, app *fiber.App, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesIncorrectas_Retorna401(t *testing.T) {
	app := newTestAPI(t)

	resp := do(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    localstore.SeedUserEmail,
		"password": "contraseña-incorrecta",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRutasProtegidas_SinToken_Retorna401(t *testing.T) {
	app := newTestAPI(t)

	for _, path := range []string{"/api/invoices", "/api/customers", "/api/products", "/api/settings", "/api/dashboard/summary"} {
		resp := do(t, app, http.MethodGet, path, "", nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestAuthMe_DevuelveClaims(t *testing.T) {
	app := newTestAPI(t)
	token := login(t, app)

	resp := do(t, app, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := decode[map[string]string](t, resp)
	assert.Equal(t, localstore.SeedUserEmail, me["email"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoices_ListadoSembrado(t *testing.T) {
	app := newTestAPI(t)
	token := login(t, app)

	resp := do(t, app, http.MethodGet, "/api/invoices", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	invoices := decode[[]map[string]any](t, resp)
	assert.Len(t, invoices, 3)
}

func TestInvoices_CrearYDescargarXML(t *testing.T) {
	app := newTestAPI(t)
	token := login(t, app)

	resp := do(t, app, http.MethodPost, "/api/invoices", token, map[string]any{
		"customer_id": "1",
		"items": []map[string]any{
			{"product_id": "1", "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[map[string]any](t, resp)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "pendiente", created["status"])

	xmlResp := do(t, app, http.MethodGet, "/api/invoices/"+id+"/xml", token, nil)
	defer xmlResp.Body.Close()
	require.Equal(t, http.StatusOK, xmlResp.StatusCode)
	assert.Equal(t, "application/xml", xmlResp.Header.Get("Content-Type"))
	raw, err := io.ReadAll(xmlResp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<Factura>")
}

func TestInvoices_CrearSinLineas_Retorna400(t *testing.T) {
	app := newTestAPI(t)
	token := login(t, app)

	resp := do(t, app, http.MethodPost, "/api/invoices", token, map[string]any{
		"customer_id": "1",
		"items":       []map[string]any{},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInvoices_CambiarEstado(t *testing.T) {
	app := newTestAPI(t)
	token := login(t, app)

	resp := do(t, app, http.MethodPatch, "/api/invoices/2/status", token, map[string]string{"status": "pagada"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[map[string]any](t, resp)
	assert.Equal(t, "pagada", updated["status"])

	bad := do(t, app, http.MethodPatch, "/api/invoices/2/status", token, map[string]string{"status": "archivada"})
	bad.Body.Close()
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
}

func TestInvoices_InexistenteRetorna404(t *testing.T) {
	app := newTestAPI(t)
	token := login(t, app)

	resp := do(t, app, http.MethodGet, "/api/invoices/no-existe", token, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes, catálogo, configuración y panel
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomers_CicloCompleto(t *testing.T) {
	app := newTestAPI(t)
	token := login(t, app)

	created := decode[map[string]any](t, do(t, app, http.MethodPost, "/api/customers", token, map[string]string{
		"name":   "Nuevo Cliente SA",
		"tax_id": "A99999999",
	}))
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	updated := decode[map[string]any](t, do(t, app, http.MethodPut, "/api/customers/"+id, token, map[string]string{
		"name": "Nuevo Cliente Renombrado SA",
	}))
	assert.Equal(t, "Nuevo Cliente Renombrado SA", updated["name"])

	del := do(t, app, http.MethodDelete, "/api/customers/"+id, token, nil)
	del.Body.Close()
	assert.Equal(t, http.StatusNoContent, del.StatusCode)

	missing := do(t, app, http.MethodGet, "/api/customers/"+id, token, nil)
	missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestProducts_ValidacionDeAlta(t *testing.T) {
	app := newTestAPI(t)
	token := login(t, app)

	resp := do(t, app, http.MethodPost, "/api/products", token, map[string]any{
		"name": "Sin código",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSettings_GetYUpdate(t *testing.T) {
	app := newTestAPI(t)
	token := login(t, app)

	settings := decode[map[string]any](t, do(t, app, http.MethodGet, "/api/settings", token, nil))
	assert.Equal(t, "FacturaPro S.L.", settings["business_name"])

	settings["business_name"] = "Mi Negocio SL"
	updated := decode[map[string]any](t, do(t, app, http.MethodPut, "/api/settings", token, settings))
	assert.Equal(t, "Mi Negocio SL", updated["business_name"])
}

func TestDashboard_Summary(t *testing.T) {
	app := newTestAPI(t)
	token := login(t, app)

	summary := decode[map[string]any](t, do(t, app, http.MethodGet, "/api/dashboard/summary", token, nil))
	assert.EqualValues(t, 3, summary["invoice_count"])
	assert.EqualValues(t, 3, summary["customer_count"])
	assert.EqualValues(t, 4, summary["product_count"])
}

package billing_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturapro/facturapro-api/internal/domain"
	"github.com/facturapro/facturapro-api/internal/domain/billing"
	"github.com/facturapro/facturapro-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// seqID genera IDs deterministas L1, L2, ... para poder referenciar líneas.
func seqID() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("L%d", n)
	}
}

func producto(id, name string, price int64) *entity.Product {
	return &entity.Product{
		ID:      id,
		Code:    "P-" + id,
		Name:    name,
		Price:   decimal.NewFromInt(price),
		TaxRate: decimal.NewFromInt(16),
	}
}

func newDraft16() *billing.Draft {
	// Tasa como porcentaje (16): el borrador la normaliza a 0.16.
	return billing.NewDraft(decimal.NewFromInt(16), seqID())
}

// assertInvariantes verifica tras cada operación que subtotal == Σ líneas y
// total == subtotal + IVA.
func assertInvariantes(t *testing.T, d *billing.Draft) {
	t.Helper()
	sum := decimal.Zero
	for _, line := range d.Lines() {
		assert.True(t, line.Subtotal.Equal(line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity))),
			"subtotal de línea debe ser cantidad × precio unitario")
		sum = sum.Add(line.Subtotal)
	}
	assert.True(t, d.Subtotal().Equal(sum), "subtotal debe ser la suma de los subtotales de línea")
	assert.True(t, d.Total().Equal(d.Subtotal().Add(d.TaxTotal())), "total debe ser subtotal + IVA")
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregados
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: producto de 1500 con IVA 16% → 1500 / 240 / 1740.
func TestDraft_UnaLinea_Totales(t *testing.T) {
	d := newDraft16()
	line := d.AddLine(producto("1", "Diseño Web Profesional", 1500))
	require.NotNil(t, line)

	assert.True(t, d.Subtotal().Equal(decimal.NewFromInt(1500)))
	assert.True(t, d.TaxTotal().Equal(decimal.NewFromInt(240)))
	assert.True(t, d.Total().Equal(decimal.NewFromInt(1740)))
	assertInvariantes(t, d)
}

// Escenario de la factura FAC-20250120-003 del dataset de demostración:
// 1×1500 + 3×300 → subtotal 2400, IVA 384, total 2784.
func TestDraft_DosLineas_Totales(t *testing.T) {
	d := newDraft16()
	d.AddLine(producto("1", "Diseño Web Profesional", 1500))
	line := d.AddLine(producto("4", "Mantenimiento Web Mensual", 300))
	require.NotNil(t, line)
	d.SetQuantity(line.ID, 3)

	assert.True(t, d.Subtotal().Equal(decimal.NewFromInt(2400)))
	assert.True(t, d.TaxTotal().Equal(decimal.NewFromInt(384)))
	assert.True(t, d.Total().Equal(decimal.NewFromInt(2784)))
	assertInvariantes(t, d)
}

// Los invariantes se mantienen tras cualquier secuencia de operaciones
// (recomputación idempotente, sin deriva).
func TestDraft_SecuenciaDeOperaciones_SinDeriva(t *testing.T) {
	d := newDraft16()
	p1 := producto("1", "Diseño Web", 1500)
	p3 := producto("3", "Consultoría SEO", 750)

	l1 := d.AddLine(p1)
	assertInvariantes(t, d)
	l2 := d.AddLine(p3)
	assertInvariantes(t, d)
	d.SetQuantity(l1.ID, 5)
	assertInvariantes(t, d)
	d.SetProduct(l1.ID, p3)
	assertInvariantes(t, d)
	d.RemoveLine(l2.ID)
	assertInvariantes(t, d)
	d.SetQuantity(l1.ID, 2)
	assertInvariantes(t, d)

	// 2 × 750 = 1500; IVA 240; total 1740
	assert.True(t, d.Subtotal().Equal(decimal.NewFromInt(1500)))
	assert.True(t, d.Total().Equal(decimal.NewFromInt(1740)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos borde de mutación
// ──────────────────────────────────────────────────────────────────────────────

// AddLine sin producto disponible (catálogo vacío) es un no-op.
func TestDraft_AddLine_SinProductos_NoOp(t *testing.T) {
	d := newDraft16()
	line := d.AddLine(nil)

	assert.Nil(t, line)
	assert.Empty(t, d.Lines())
	assert.True(t, d.Total().IsZero())
}

// Cantidades 0 y -1 se rechazan sin modificar el estado.
func TestDraft_SetQuantity_MenorQueUno_NoOp(t *testing.T) {
	d := newDraft16()
	line := d.AddLine(producto("1", "Diseño Web", 1500))
	require.NotNil(t, line)

	d.SetQuantity(line.ID, 0)
	assert.EqualValues(t, 1, d.Lines()[0].Quantity, "cantidad 0 no debe aplicarse")
	assert.True(t, d.Subtotal().Equal(decimal.NewFromInt(1500)))

	d.SetQuantity(line.ID, -1)
	assert.EqualValues(t, 1, d.Lines()[0].Quantity, "cantidad negativa no debe aplicarse")
	assert.True(t, d.Subtotal().Equal(decimal.NewFromInt(1500)))
}

// SetProduct a un producto de 750 con cantidad 1 recalcula la línea a 750 y
// los agregados en consecuencia.
func TestDraft_SetProduct_RecalculaLineaYAgregados(t *testing.T) {
	d := newDraft16()
	line := d.AddLine(producto("1", "Diseño Web", 1500))
	require.NotNil(t, line)

	d.SetProduct(line.ID, producto("3", "Consultoría SEO", 750))

	got := d.Lines()[0]
	assert.Equal(t, "3", got.ProductID)
	assert.Equal(t, "Consultoría SEO", got.Product.Name)
	assert.True(t, got.UnitPrice.Equal(decimal.NewFromInt(750)))
	assert.True(t, got.Subtotal.Equal(decimal.NewFromInt(750)))
	assert.True(t, d.Subtotal().Equal(decimal.NewFromInt(750)))
	assert.True(t, d.Total().Equal(decimal.NewFromInt(870)))
	assertInvariantes(t, d)
}

// SetProduct con producto inexistente (nil) no modifica la línea.
func TestDraft_SetProduct_ProductoInexistente_NoOp(t *testing.T) {
	d := newDraft16()
	line := d.AddLine(producto("1", "Diseño Web", 1500))
	require.NotNil(t, line)

	d.SetProduct(line.ID, nil)

	assert.Equal(t, "1", d.Lines()[0].ProductID)
	assert.True(t, d.Subtotal().Equal(decimal.NewFromInt(1500)))
}

func TestDraft_RemoveLine_RecalculaAgregados(t *testing.T) {
	d := newDraft16()
	l1 := d.AddLine(producto("1", "Diseño Web", 1500))
	l2 := d.AddLine(producto("3", "Consultoría SEO", 750))
	require.NotNil(t, l1)
	require.NotNil(t, l2)

	d.RemoveLine(l1.ID)

	require.Len(t, d.Lines(), 1)
	assert.True(t, d.Subtotal().Equal(decimal.NewFromInt(750)))
	assertInvariantes(t, d)

	// ID desconocido: no-op
	d.RemoveLine("no-existe")
	assert.Len(t, d.Lines(), 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Commit
// ──────────────────────────────────────────────────────────────────────────────

func TestDraft_Commit_SinCliente_ErrValidation(t *testing.T) {
	d := newDraft16()
	d.AddLine(producto("1", "Diseño Web", 1500))

	inv, err := d.Commit("inv-1", "FAC-20250601-001", time.Now(), nil, time.Now())

	assert.Nil(t, inv)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDraft_Commit_SinLineas_ErrValidation(t *testing.T) {
	d := newDraft16()
	cliente := &entity.Customer{ID: "c1", Name: "Empresa Innovadora S.L."}

	inv, err := d.Commit("inv-1", "FAC-20250601-001", time.Now(), cliente, time.Now())

	assert.Nil(t, inv)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// Un commit válido produce una factura pendiente que cumple todos los
// invariantes y conserva las copias desnormalizadas.
func TestDraft_Commit_Valido(t *testing.T) {
	d := newDraft16()
	d.AddLine(producto("1", "Diseño Web", 1500))
	cliente := &entity.Customer{ID: "c1", Name: "Empresa Innovadora S.L.", TaxID: "B12345678"}
	fecha := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	ahora := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)

	inv, err := d.Commit("inv-1", "FAC-20250601-001", fecha, cliente, ahora)

	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, entity.StatusPending, inv.Status)
	assert.Equal(t, "c1", inv.CustomerID)
	assert.Equal(t, "Empresa Innovadora S.L.", inv.Customer.Name)
	assert.Equal(t, ahora, inv.CreatedAt)
	require.Len(t, inv.Lines, 1)
	assert.True(t, inv.Subtotal.Equal(decimal.NewFromInt(1500)))
	assert.True(t, inv.TaxTotal.Equal(decimal.NewFromInt(240)))
	assert.True(t, inv.Total.Equal(inv.Subtotal.Add(inv.TaxTotal)))
}

// ──────────────────────────────────────────────────────────────────────────────
// NormalizeRate
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeRate(t *testing.T) {
	// Porcentaje → fracción
	assert.True(t, billing.NormalizeRate(decimal.NewFromInt(16)).Equal(decimal.RequireFromString("0.16")))
	// Fracción se deja igual
	assert.True(t, billing.NormalizeRate(decimal.RequireFromString("0.16")).Equal(decimal.RequireFromString("0.16")))
	// Cero
	assert.True(t, billing.NormalizeRate(decimal.Zero).IsZero())
}

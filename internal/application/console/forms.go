package console

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// parseLeadingInt interpreta un entero en base 10 al estilo de los campos numéricos del
// navegador: ignora espacios iniciales, acepta un signo y toma los dígitos iniciales
// ("12abc" → 12). Sin dígitos, o fuera de rango, devuelve ok=false.
func parseLeadingInt(raw string) (int, bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// optionalInt devuelve nil cuando el texto no es numérico (se envía null al API).
func optionalInt(raw string) *int {
	n, ok := parseLeadingInt(raw)
	if !ok {
		return nil
	}
	return &n
}

// intOrZero devuelve 0 cuando el texto no es numérico.
func intOrZero(raw string) int {
	n, _ := parseLeadingInt(raw)
	return n
}

// NormalizeProductForm convierte el formulario de producto en el body del API.
func NormalizeProductForm(f dto.ProductForm) dto.ProductPayload {
	return dto.ProductPayload{
		SKU:                 f.SKU,
		CantidadInicial:     optionalInt(f.Cantidad),
		UbicacionAlmacen:    f.Ubicacion,
		CantidadMinimaStock: intOrZero(f.Minimo),
		ProductoBaseSku:     f.Base,
		Talla:               f.Talla,
		Color:               f.Color,
		Estado:              f.Estado,
	}
}

// ProductFormFrom pre-llena el modal de edición con un producto del API.
// Enviar el formulario sin cambios reproduce los mismos valores.
func ProductFormFrom(p entity.Product) dto.ProductForm {
	return dto.ProductForm{
		SKU:       p.SKU,
		Cantidad:  strconv.Itoa(p.CantidadDisponible),
		Ubicacion: p.UbicacionAlmacen,
		Minimo:    strconv.Itoa(p.CantidadMinimaStock),
		Base:      p.ProductoBaseSku,
		Talla:     p.Talla,
		Color:     p.Color,
		Estado:    string(p.Estado.OrDefault()),
	}
}

// NormalizeStockUpdateForm body de PUT /productos/stock.
func NormalizeStockUpdateForm(f dto.StockUpdateForm) dto.StockUpdatePayload {
	return dto.StockUpdatePayload{
		SKU:               f.SKU,
		Cantidad:          optionalInt(f.Cantidad),
		TipoMovimiento:    f.Tipo,
		ReferenciaExterna: f.Referencia,
		Motivo:            f.Motivo,
	}
}

// NormalizeManualAdjustmentForm body de POST /productos/stock/ajuste-manual.
func NormalizeManualAdjustmentForm(f dto.ManualAdjustmentForm) dto.ManualAdjustmentPayload {
	return dto.ManualAdjustmentPayload{
		SKU:            f.SKU,
		Cantidad:       optionalInt(f.Cantidad),
		TipoMovimiento: f.Tipo,
		Motivo:         f.Motivo,
	}
}

// NormalizeAlertForm body de POST/PUT /umbrales. El select envía "true"/"false";
// cualquier otro valor es false.
func NormalizeAlertForm(f dto.AlertForm) dto.AlertPayload {
	return dto.AlertPayload{
		SKU:            f.SKU,
		TipoAlerta:     f.Tipo,
		UmbralCantidad: optionalInt(f.Umbral),
		Activo:         f.Activo == "true",
	}
}

// AlertFormFrom pre-llena el modal de edición de umbral.
func AlertFormFrom(a entity.AlertThreshold) dto.AlertForm {
	return dto.AlertForm{
		SKU:    a.SKU,
		Tipo:   string(a.TipoAlerta),
		Umbral: strconv.Itoa(a.UmbralCantidad),
		Activo: strconv.FormatBool(a.Activo),
	}
}

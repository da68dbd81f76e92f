package console

import (
	"strings"

	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// FilterProducts devuelve los productos cuyo SKU contiene term (sin distinguir mayúsculas)
// y, si estado no es vacío, cuyo estado es exactamente estado. No modifica list.
func FilterProducts(list []entity.Product, term, estado string) []entity.Product {
	needle := strings.ToLower(term)
	out := make([]entity.Product, 0, len(list))
	for _, p := range list {
		if !strings.Contains(strings.ToLower(p.SKU), needle) {
			continue
		}
		if estado != "" && string(p.Estado) != estado {
			continue
		}
		out = append(out, p)
	}
	return out
}

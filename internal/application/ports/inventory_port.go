package ports

import (
	"context"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// InventoryGateway define el puerto de salida hacia el API REST de inventario.
// La lógica de negocio (aritmética de stock, evaluación de alertas, registro de
// movimientos) vive detrás de este contrato, no en la consola.
// Todo error devuelto debe tratarse como "la operación no ocurrió"; cumple
// errors.Is(err, domain.ErrRequestFailed).
type InventoryGateway interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	GetProduct(ctx context.Context, sku string) (*entity.Product, error)
	CreateProduct(ctx context.Context, in dto.ProductPayload) error
	UpdateProduct(ctx context.Context, sku string, in dto.ProductPayload) error
	DeleteProduct(ctx context.Context, sku string) error

	UpdateStock(ctx context.Context, in dto.StockUpdatePayload) error
	ManualAdjustment(ctx context.Context, in dto.ManualAdjustmentPayload) error
	LowStock(ctx context.Context, umbral int) ([]entity.Product, error)
	ExcessStock(ctx context.Context, umbral int) ([]entity.Product, error)

	ListMovements(ctx context.Context, sku string) ([]entity.Movement, error)

	ListAlerts(ctx context.Context) ([]entity.AlertThreshold, error)
	GetAlert(ctx context.Context, sku string) (*entity.AlertThreshold, error)
	CreateAlert(ctx context.Context, in dto.AlertPayload) error
	UpdateAlert(ctx context.Context, sku string, in dto.AlertPayload) error
	DeleteAlert(ctx context.Context, sku string) error
}

// StockReportGenerator genera la versión imprimible de una consulta de stock.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, report dto.QueryResultView) ([]byte, error)
}

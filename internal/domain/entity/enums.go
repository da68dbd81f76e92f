package entity

// EstadoStock estado de un producto en inventario. El backend puede devolver otros valores;
// se conservan tal cual.
type EstadoStock string

const (
	EstadoDisponible    EstadoStock = "DISPONIBLE"
	EstadoReservado     EstadoStock = "RESERVADO"
	EstadoEnTransito    EstadoStock = "EN_TRANSITO"
	EstadoVendido       EstadoStock = "VENDIDO"
	EstadoDadoDeBaja    EstadoStock = "DADO_DE_BAJA"
	EstadoDescontinuado EstadoStock = "DESCONTINUADO"
)

// EstadosStock lista en el orden del selector de filtro.
var EstadosStock = []EstadoStock{
	EstadoDisponible, EstadoReservado, EstadoEnTransito,
	EstadoVendido, EstadoDadoDeBaja, EstadoDescontinuado,
}

// OrDefault devuelve DISPONIBLE si el estado vino vacío.
func (e EstadoStock) OrDefault() EstadoStock {
	if e == "" {
		return EstadoDisponible
	}
	return e
}

// TipoMovimiento tipo de movimiento de stock.
type TipoMovimiento string

const (
	MovimientoEntrada             TipoMovimiento = "ENTRADA"
	MovimientoSalida              TipoMovimiento = "SALIDA"
	MovimientoAjuste              TipoMovimiento = "AJUSTE"
	MovimientoReserva             TipoMovimiento = "RESERVA"
	MovimientoLiberacion          TipoMovimiento = "LIBERACION"
	MovimientoDevolucionCliente   TipoMovimiento = "DEVOLUCION_CLIENTE"
	MovimientoDevolucionProveedor TipoMovimiento = "DEVOLUCION_PROVEEDOR"
	MovimientoAjusteNegativo      TipoMovimiento = "AJUSTE_NEGATIVO"
)

// TiposMovimiento opciones del formulario de actualización de stock.
var TiposMovimiento = []TipoMovimiento{
	MovimientoEntrada, MovimientoSalida, MovimientoAjuste, MovimientoReserva,
	MovimientoLiberacion, MovimientoDevolucionCliente, MovimientoDevolucionProveedor,
	MovimientoAjusteNegativo,
}

// TipoAlerta tipo de umbral de alerta.
type TipoAlerta string

const (
	AlertaBajoStock     TipoAlerta = "BAJO_STOCK"
	AlertaExcesoStock   TipoAlerta = "EXCESO_STOCK"
	AlertaSinMovimiento TipoAlerta = "SIN_MOVIMIENTO"
)

// TiposAlerta opciones del formulario de alertas.
var TiposAlerta = []TipoAlerta{AlertaBajoStock, AlertaExcesoStock, AlertaSinMovimiento}

package dto

import "github.com/shopspring/decimal"

// ReportRequest parámetros del reporte de ventas. Las fechas llegan como
// strings YYYY-MM-DD en los query params `inicio` y `fin`; GenerarReporte
// solicita la sección extendida (rankings top-5).
type ReportRequest struct {
	Inicio         string `query:"inicio"`
	Fin            string `query:"fin"`
	GenerarReporte bool   `query:"generar_reporte"`
}

// TopCustomerDTO cliente frecuente del período.
type TopCustomerDTO struct {
	NombreCompleto string          `json:"nombre_completo"`
	TotalCompras   int             `json:"total_compras"`
	TotalGastado   decimal.Decimal `json:"total_gastado"`
}

// TopProductDTO producto más vendido del período (por unidades).
type TopProductDTO struct {
	Producto      string `json:"producto"`
	CantidadTotal int    `json:"cantidad_total"`
}

// ReportDTO respuesta del reporte de ventas de un rango de fechas.
// Los nombres JSON conservan el vocabulario del negocio (es-CO).
type ReportDTO struct {
	FechaInicio    string          `json:"fecha_inicio"` // YYYY-MM-DD
	FechaFin       string          `json:"fecha_fin"`    // YYYY-MM-DD
	EsPeriodo      bool            `json:"es_periodo"`   // true si abarca más de un día
	TotalVentas    decimal.Decimal `json:"total_ventas"`
	CantidadVentas int             `json:"cantidad_ventas"`
	PromedioVenta  decimal.Decimal `json:"promedio_venta"` // 0 si no hay ventas

	// Sección extendida: solo si se solicitó, hay ventas y el rol lo permite.
	ReporteGenerado    bool             `json:"reporte_generado"`
	ClientesFrecuentes []TopCustomerDTO `json:"clientes_frecuentes,omitempty"`
	TopProductos       []TopProductDTO  `json:"top_productos,omitempty"`
}

// DashboardDTO resumen del panel principal: conteos globales y ventas de hoy.
type DashboardDTO struct {
	TotalProductos   int             `json:"total_productos"`
	TotalCategorias  int             `json:"total_categorias"`
	TotalProveedores int             `json:"total_proveedores"`
	TotalClientes    int             `json:"total_clientes"`
	VentasHoy        decimal.Decimal `json:"ventas_hoy"`
}

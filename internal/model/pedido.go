package model

import (
	"database/sql/driver"
	"time"

	"github.com/shopspring/decimal"
)

// Estados por los que transita un pedido.
const (
	EstadoProcesando = "procesando"
	EstadoCocinando  = "cocinando"
	EstadoEmpacando  = "empacando"
	EstadoEnviando   = "enviando"
	EstadoRecibido   = "recibido"
)

// LineaProducto is one product line of an order.
type LineaProducto struct {
	Nombre   string `json:"nombre"`
	Cantidad int    `json:"cantidad"`
}

// LineasProducto is stored as a JSONB array.
type LineasProducto []LineaProducto

func (l LineasProducto) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *LineasProducto) Scan(src any) error          { return jsonbScan(l, src) }

// LineaCombo is one combo line of an order.
type LineaCombo struct {
	ComboID  string `json:"combo_id"`
	Cantidad int    `json:"cantidad"`
}

// LineasCombo is stored as a JSONB array.
type LineasCombo []LineaCombo

func (l LineasCombo) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *LineasCombo) Scan(src any) error          { return jsonbScan(l, src) }

// EmpleadoSnapshot is the employee annotation captured inside a state record.
// On update it is resolved server-side from the employee directory; callers
// only send the dni.
type EmpleadoSnapshot struct {
	DNI              string           `json:"dni"`
	NombreCompleto   string           `json:"nombre_completo,omitempty"`
	Rol              string           `json:"rol,omitempty"`
	CalificacionProm *decimal.Decimal `json:"calificacion_prom,omitempty"`
}

// RegistroEstado is one timestamped window of the order's state history.
type RegistroEstado struct {
	Estado     string            `json:"estado"`
	HoraInicio time.Time         `json:"hora_inicio"`
	HoraFin    time.Time         `json:"hora_fin"`
	Activo     bool              `json:"activo"`
	Empleado   *EmpleadoSnapshot `json:"empleado"`
}

// HistorialEstados is stored as a JSONB array. An order always carries at
// least one record.
type HistorialEstados []RegistroEstado

func (h HistorialEstados) Value() (driver.Value, error) { return jsonbValue(h) }
func (h *HistorialEstados) Scan(src any) error          { return jsonbScan(h, src) }

// Pedido is a customer order, keyed by (local_id, pedido_id). The JSON tags
// are the persisted/wire shape: {local_id, pedido_id, usuario_correo,
// productos[], combos[], costo, direccion, fecha_entrega_aproximada, estado,
// historial_estados[]}.
type Pedido struct {
	LocalID                string           `gorm:"primaryKey;column:local_id" json:"local_id"`
	PedidoID               string           `gorm:"primaryKey;column:pedido_id" json:"pedido_id"`
	UsuarioCorreo          string           `gorm:"not null;index" json:"usuario_correo"`
	Productos              LineasProducto   `gorm:"type:jsonb" json:"productos,omitempty"`
	Combos                 LineasCombo      `gorm:"type:jsonb" json:"combos,omitempty"`
	Costo                  decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"costo"`
	Direccion              string           `gorm:"not null" json:"direccion"`
	FechaEntregaAproximada *time.Time       `json:"fecha_entrega_aproximada"`
	Estado                 string           `gorm:"not null" json:"estado"`
	HistorialEstados       HistorialEstados `gorm:"type:jsonb;not null" json:"historial_estados"`
}

func (Pedido) TableName() string { return "pedidos" }

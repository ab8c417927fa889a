package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LineaProductoRequest struct {
	Nombre   string `json:"nombre"   validate:"required,min=1"`
	Cantidad int    `json:"cantidad" validate:"required,min=1"`
}

type LineaComboRequest struct {
	ComboID  string `json:"combo_id" validate:"required,min=1"`
	Cantidad int    `json:"cantidad" validate:"required,min=1"`
}

// EmpleadoSnapshotRequest is accepted inside a state record on creation only;
// there the caller may supply the full snapshot.
type EmpleadoSnapshotRequest struct {
	DNI              string           `json:"dni"              validate:"required"`
	NombreCompleto   string           `json:"nombre_completo"  validate:"required"`
	Rol              string           `json:"rol"              validate:"required,oneof=cocinero despachador repartidor"`
	CalificacionProm *decimal.Decimal `json:"calificacion_prom" validate:"omitempty,min=0,max=5"`
}

type RegistroEstadoRequest struct {
	Estado     string                   `json:"estado"      validate:"required,oneof=procesando cocinando empacando enviando recibido"`
	HoraInicio time.Time                `json:"hora_inicio" validate:"required"`
	HoraFin    time.Time                `json:"hora_fin"    validate:"required"`
	Activo     *bool                    `json:"activo"      validate:"required"`
	Empleado   *EmpleadoSnapshotRequest `json:"empleado"    validate:"omitempty"`
}

// CrearPedidoRequest carries no identifiers: pedido_id is always minted by
// the server. estado / historial_estados are optional; when absent the order
// starts in "procesando" with a single active window.
type CrearPedidoRequest struct {
	LocalID                string                  `json:"local_id"        validate:"required"`
	UsuarioCorreo          string                  `json:"usuario_correo"  validate:"required,email"`
	Productos              []LineaProductoRequest  `json:"productos"       validate:"required_without=Combos,omitempty,min=1,dive"`
	Combos                 []LineaComboRequest     `json:"combos"          validate:"required_without=Productos,omitempty,min=1,dive"`
	Costo                  decimal.Decimal         `json:"costo"           validate:"min=0"`
	Direccion              string                  `json:"direccion"       validate:"required"`
	FechaEntregaAproximada *time.Time              `json:"fecha_entrega_aproximada"`
	Estado                 *string                 `json:"estado"            validate:"omitempty,oneof=procesando cocinando empacando enviando recibido"`
	HistorialEstados       []RegistroEstadoRequest `json:"historial_estados" validate:"omitempty,min=1,dive"`
}

// EmpleadoRefRequest is the only employee shape accepted on update: a bare
// dni. The engine resolves the rest from the employee directory, so callers
// cannot forge names, roles or ratings.
type EmpleadoRefRequest struct {
	DNI string `json:"dni" validate:"required"`
}

type RegistroEstadoUpdateRequest struct {
	Estado     string              `json:"estado"      validate:"required,oneof=procesando cocinando empacando enviando recibido"`
	HoraInicio time.Time           `json:"hora_inicio" validate:"required"`
	HoraFin    time.Time           `json:"hora_fin"    validate:"required"`
	Activo     *bool               `json:"activo"      validate:"required"`
	Empleado   *EmpleadoRefRequest `json:"empleado"    validate:"omitempty"`
}

// ActualizarPedidoRequest is a sparse patch. Keys travel in the body; the
// stored usuario_correo can never be changed. Nil fields are left untouched;
// present arrays replace the stored ones wholesale.
type ActualizarPedidoRequest struct {
	LocalID                string                        `json:"local_id"`
	PedidoID               string                        `json:"pedido_id"`
	Productos              []LineaProductoRequest        `json:"productos"         validate:"omitempty,min=1,dive"`
	Combos                 []LineaComboRequest           `json:"combos"            validate:"omitempty,min=1,dive"`
	Costo                  *decimal.Decimal              `json:"costo"             validate:"omitempty,min=0"`
	Direccion              *string                       `json:"direccion"         validate:"omitempty,min=1"`
	FechaEntregaAproximada *time.Time                    `json:"fecha_entrega_aproximada"`
	Estado                 *string                       `json:"estado"            validate:"omitempty,oneof=procesando cocinando empacando enviando recibido"`
	HistorialEstados       []RegistroEstadoUpdateRequest `json:"historial_estados" validate:"omitempty,min=1,dive"`
}

// TieneCambios reports whether at least one updatable field was provided.
func (r *ActualizarPedidoRequest) TieneCambios() bool {
	return r.Productos != nil ||
		r.Combos != nil ||
		r.Costo != nil ||
		r.Direccion != nil ||
		r.FechaEntregaAproximada != nil ||
		r.Estado != nil ||
		r.HistorialEstados != nil
}

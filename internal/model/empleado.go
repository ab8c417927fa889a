package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Roles de empleado.
const (
	RolCocinero    = "cocinero"
	RolDespachador = "despachador"
	RolRepartidor  = "repartidor"
)

// Empleado is a location employee, keyed by (local_id, dni).
type Empleado struct {
	LocalID          string          `gorm:"primaryKey;column:local_id" json:"local_id"`
	DNI              string          `gorm:"primaryKey;column:dni" json:"dni"`
	Nombre           string          `gorm:"not null" json:"nombre"`
	Apellido         string          `gorm:"not null" json:"apellido"`
	Rol              string          `gorm:"not null" json:"rol"`
	CalificacionProm decimal.Decimal `gorm:"type:decimal(3,2);not null;default:0" json:"calificacion_prom"`
}

func (Empleado) TableName() string { return "empleados" }

// Snapshot builds the state-record annotation for this employee. The role is
// lower-cased so callers always see the canonical enum value.
func (e *Empleado) Snapshot() *EmpleadoSnapshot {
	calif := e.CalificacionProm
	return &EmpleadoSnapshot{
		DNI:              e.DNI,
		NombreCompleto:   strings.TrimSpace(e.Nombre + " " + e.Apellido),
		Rol:              strings.ToLower(e.Rol),
		CalificacionProm: &calif,
	}
}

package model

import (
	"database/sql/driver"
)

// NombresProductos is the list of product names bundled by a combo, stored as
// a JSONB array.
type NombresProductos []string

func (n NombresProductos) Value() (driver.Value, error) { return jsonbValue(n) }
func (n *NombresProductos) Scan(src any) error          { return jsonbScan(n, src) }

// Combo is a named bundle of products sold as a unit, keyed by
// (local_id, combo_id).
type Combo struct {
	LocalID          string           `gorm:"primaryKey;column:local_id" json:"local_id"`
	ComboID          string           `gorm:"primaryKey;column:combo_id" json:"combo_id"`
	Nombre           string           `gorm:"not null" json:"nombre"`
	ProductosNombres NombresProductos `gorm:"type:jsonb;not null" json:"productos_nombres"`
	Descripcion      *string          `json:"descripcion,omitempty"`
}

func (Combo) TableName() string { return "combos" }

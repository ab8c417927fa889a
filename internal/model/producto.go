package model

import (
	"github.com/shopspring/decimal"
)

// Categorías del menú.
var Categorias = []string{
	"Arroces",
	"Tallarines",
	"Pollo al wok",
	"Carne de res",
	"Cerdo",
	"Mariscos",
	"Entradas",
	"Guarniciones",
	"Sopas",
	"Combos",
	"Bebidas",
	"Postres",
}

// Producto is a menu product, keyed by (local_id, nombre). Stock is advisory:
// order creation checks it but never decrements it.
type Producto struct {
	LocalID     string          `gorm:"primaryKey;column:local_id" json:"local_id"`
	Nombre      string          `gorm:"primaryKey" json:"nombre"`
	Precio      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"precio"`
	Descripcion *string         `json:"descripcion,omitempty"`
	Categoria   string          `gorm:"not null" json:"categoria"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
}

func (Producto) TableName() string { return "productos" }

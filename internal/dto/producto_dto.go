package dto

import "github.com/shopspring/decimal"

type CrearProductoRequest struct {
	LocalID     string          `json:"local_id"    validate:"required"`
	Nombre      string          `json:"nombre"      validate:"required,min=1"`
	Precio      decimal.Decimal `json:"precio"      validate:"min=0"`
	Descripcion *string         `json:"descripcion"`
	Categoria   string          `json:"categoria"   validate:"required,oneof=Arroces Tallarines 'Pollo al wok' 'Carne de res' Cerdo Mariscos Entradas Guarniciones Sopas Combos Bebidas Postres"`
	Stock       int             `json:"stock"       validate:"min=0"`
}

type ActualizarProductoRequest struct {
	LocalID     string           `json:"local_id"`
	Nombre      string           `json:"nombre"`
	Precio      *decimal.Decimal `json:"precio"      validate:"omitempty,min=0"`
	Descripcion *string          `json:"descripcion"`
	Categoria   *string          `json:"categoria"   validate:"omitempty,oneof=Arroces Tallarines 'Pollo al wok' 'Carne de res' Cerdo Mariscos Entradas Guarniciones Sopas Combos Bebidas Postres"`
	Stock       *int             `json:"stock"       validate:"omitempty,min=0"`
}

func (r *ActualizarProductoRequest) TieneCambios() bool {
	return r.Precio != nil || r.Descripcion != nil || r.Categoria != nil || r.Stock != nil
}

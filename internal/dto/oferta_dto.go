package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearOfertaRequest requires at least one discount target: a product name or
// a combo id.
type CrearOfertaRequest struct {
	LocalID             string          `json:"local_id"             validate:"required"`
	OfertaID            string          `json:"oferta_id"            validate:"required"`
	ProductoNombre      *string         `json:"producto_nombre"      validate:"required_without=ComboID,omitempty,min=1"`
	ComboID             *string         `json:"combo_id"             validate:"required_without=ProductoNombre,omitempty,min=1"`
	FechaInicio         time.Time       `json:"fecha_inicio"         validate:"required"`
	FechaLimite         time.Time       `json:"fecha_limite"         validate:"required"`
	PorcentajeDescuento decimal.Decimal `json:"porcentaje_descuento" validate:"min=0,max=100"`
}

type ActualizarOfertaRequest struct {
	LocalID             string           `json:"local_id"`
	OfertaID            string           `json:"oferta_id"`
	ProductoNombre      *string          `json:"producto_nombre"      validate:"omitempty,min=1"`
	ComboID             *string          `json:"combo_id"             validate:"omitempty,min=1"`
	FechaInicio         *time.Time       `json:"fecha_inicio"`
	FechaLimite         *time.Time       `json:"fecha_limite"`
	PorcentajeDescuento *decimal.Decimal `json:"porcentaje_descuento" validate:"omitempty,min=0,max=100"`
}

func (r *ActualizarOfertaRequest) TieneCambios() bool {
	return r.ProductoNombre != nil || r.ComboID != nil ||
		r.FechaInicio != nil || r.FechaLimite != nil || r.PorcentajeDescuento != nil
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Oferta is a time-boxed discount over a product or a combo, keyed by
// (local_id, oferta_id). Exactly one of ProductoNombre / ComboID is expected.
type Oferta struct {
	LocalID             string          `gorm:"primaryKey;column:local_id" json:"local_id"`
	OfertaID            string          `gorm:"primaryKey;column:oferta_id" json:"oferta_id"`
	ProductoNombre      *string         `json:"producto_nombre,omitempty"`
	ComboID             *string         `json:"combo_id,omitempty"`
	FechaInicio         time.Time       `gorm:"not null" json:"fecha_inicio"`
	FechaLimite         time.Time       `gorm:"not null" json:"fecha_limite"`
	PorcentajeDescuento decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"porcentaje_descuento"`
}

func (Oferta) TableName() string { return "ofertas" }

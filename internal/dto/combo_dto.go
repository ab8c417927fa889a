package dto

type CrearComboRequest struct {
	LocalID          string   `json:"local_id"          validate:"required"`
	Nombre           string   `json:"nombre"            validate:"required,min=1"`
	ProductosNombres []string `json:"productos_nombres" validate:"required,min=1,dive,min=1"`
	Descripcion      *string  `json:"descripcion"`
}

type ActualizarComboRequest struct {
	LocalID          string   `json:"local_id"`
	ComboID          string   `json:"combo_id"`
	Nombre           *string  `json:"nombre"            validate:"omitempty,min=1"`
	ProductosNombres []string `json:"productos_nombres" validate:"omitempty,min=1,dive,min=1"`
	Descripcion      *string  `json:"descripcion"`
}

func (r *ActualizarComboRequest) TieneCambios() bool {
	return r.Nombre != nil || r.ProductosNombres != nil || r.Descripcion != nil
}

package dto

// MensajeResponse is the success envelope: {"message": ..., "data"?: ...}.
type MensajeResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ListaResponse is the envelope for location-scoped listings.
type ListaResponse struct {
	Data  any `json:"data"`
	Count int `json:"count"`
}

package model

// Usuario is a customer, keyed by email. The four payment-profile fields must
// all be populated before the user can place orders.
type Usuario struct {
	Correo           string `gorm:"primaryKey;column:correo" json:"correo"`
	Nombre           string `json:"nombre"`
	NumeroTarjeta    string `json:"numero_tarjeta"`
	CVV              string `gorm:"column:cvv" json:"cvv"`
	FechaExpiracion  string `json:"fecha_expiracion"`
	DireccionEntrega string `json:"direccion_entrega"`
}

func (Usuario) TableName() string { return "usuarios" }

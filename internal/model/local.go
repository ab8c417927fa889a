package model

// Local is a physical outlet. Orders, products, combos, offers and employees
// are all scoped by its id; order flows only check that it exists.
type Local struct {
	LocalID   string `gorm:"primaryKey;column:local_id" json:"local_id"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
}

func (Local) TableName() string { return "locales" }

package repository

import (
	"context"

	"github.com/FabricioLanche/Chinawok-Pedidos/internal/model"

	"gorm.io/gorm"
)

// EmpleadoRepository exposes the keyed-get contract over the employee
// directory, keyed by (local_id, dni).
type EmpleadoRepository interface {
	GetOne(ctx context.Context, localID, dni string) (*model.Empleado, error)
}

type empleadoRepo struct{ db *gorm.DB }

func NewEmpleadoRepository(db *gorm.DB) EmpleadoRepository { return &empleadoRepo{db: db} }

func (r *empleadoRepo) GetOne(ctx context.Context, localID, dni string) (*model.Empleado, error) {
	var e model.Empleado
	err := r.db.WithContext(ctx).
		Where("local_id = ? AND dni = ?", localID, dni).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

package repository

import (
	"context"

	"github.com/FabricioLanche/Chinawok-Pedidos/internal/model"

	"gorm.io/gorm"
)

// ProductoRepository is the gateway for menu products, keyed by
// (local_id, nombre).
type ProductoRepository interface {
	GetOne(ctx context.Context, localID, nombre string) (*model.Producto, error)
	PutOne(ctx context.Context, p *model.Producto) error
	UpdateFields(ctx context.Context, localID, nombre string, campos map[string]any) (*model.Producto, error)
	QueryByLocal(ctx context.Context, localID string) ([]model.Producto, error)
	Delete(ctx context.Context, localID, nombre string) error
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) GetOne(ctx context.Context, localID, nombre string) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).
		Where("local_id = ? AND nombre = ?", localID, nombre).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) PutOne(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) UpdateFields(ctx context.Context, localID, nombre string, campos map[string]any) (*model.Producto, error) {
	err := r.db.WithContext(ctx).
		Model(&model.Producto{}).
		Where("local_id = ? AND nombre = ?", localID, nombre).
		Updates(campos).Error
	if err != nil {
		return nil, err
	}
	return r.GetOne(ctx, localID, nombre)
}

func (r *productoRepo) QueryByLocal(ctx context.Context, localID string) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Where("local_id = ?", localID).
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Delete(ctx context.Context, localID, nombre string) error {
	return r.db.WithContext(ctx).
		Where("local_id = ? AND nombre = ?", localID, nombre).
		Delete(&model.Producto{}).Error
}

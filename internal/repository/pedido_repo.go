package repository

import (
	"context"

	"github.com/FabricioLanche/Chinawok-Pedidos/internal/model"

	"gorm.io/gorm"
)

// PedidoRepository is the persistence gateway for orders, keyed by the
// composite (local_id, pedido_id). Services depend on this interface, not on
// the concrete GORM implementation, enabling clean unit testing via stubs.
type PedidoRepository interface {
	GetOne(ctx context.Context, localID, pedidoID string) (*model.Pedido, error)
	PutOne(ctx context.Context, p *model.Pedido) error
	// UpdateFields replaces the named top-level attributes only and returns
	// the new item. Nested structures inside a named attribute are replaced
	// wholesale.
	UpdateFields(ctx context.Context, localID, pedidoID string, campos map[string]any) (*model.Pedido, error)
	QueryByLocal(ctx context.Context, localID string) ([]model.Pedido, error)
	Delete(ctx context.Context, localID, pedidoID string) error
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) GetOne(ctx context.Context, localID, pedidoID string) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).
		Where("local_id = ? AND pedido_id = ?", localID, pedidoID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pedidoRepo) PutOne(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *pedidoRepo) UpdateFields(ctx context.Context, localID, pedidoID string, campos map[string]any) (*model.Pedido, error) {
	err := r.db.WithContext(ctx).
		Model(&model.Pedido{}).
		Where("local_id = ? AND pedido_id = ?", localID, pedidoID).
		Updates(campos).Error
	if err != nil {
		return nil, err
	}
	return r.GetOne(ctx, localID, pedidoID)
}

func (r *pedidoRepo) QueryByLocal(ctx context.Context, localID string) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Where("local_id = ?", localID).
		Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) Delete(ctx context.Context, localID, pedidoID string) error {
	return r.db.WithContext(ctx).
		Where("local_id = ? AND pedido_id = ?", localID, pedidoID).
		Delete(&model.Pedido{}).Error
}

package repository

import (
	"context"

	"github.com/FabricioLanche/Chinawok-Pedidos/internal/model"

	"gorm.io/gorm"
)

// OfertaRepository is the gateway for offers, keyed by (local_id, oferta_id).
type OfertaRepository interface {
	GetOne(ctx context.Context, localID, ofertaID string) (*model.Oferta, error)
	PutOne(ctx context.Context, o *model.Oferta) error
	UpdateFields(ctx context.Context, localID, ofertaID string, campos map[string]any) (*model.Oferta, error)
	QueryByLocal(ctx context.Context, localID string) ([]model.Oferta, error)
	Delete(ctx context.Context, localID, ofertaID string) error
}

type ofertaRepo struct{ db *gorm.DB }

func NewOfertaRepository(db *gorm.DB) OfertaRepository { return &ofertaRepo{db: db} }

func (r *ofertaRepo) GetOne(ctx context.Context, localID, ofertaID string) (*model.Oferta, error) {
	var o model.Oferta
	err := r.db.WithContext(ctx).
		Where("local_id = ? AND oferta_id = ?", localID, ofertaID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *ofertaRepo) PutOne(ctx context.Context, o *model.Oferta) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *ofertaRepo) UpdateFields(ctx context.Context, localID, ofertaID string, campos map[string]any) (*model.Oferta, error) {
	err := r.db.WithContext(ctx).
		Model(&model.Oferta{}).
		Where("local_id = ? AND oferta_id = ?", localID, ofertaID).
		Updates(campos).Error
	if err != nil {
		return nil, err
	}
	return r.GetOne(ctx, localID, ofertaID)
}

func (r *ofertaRepo) QueryByLocal(ctx context.Context, localID string) ([]model.Oferta, error) {
	var ofertas []model.Oferta
	err := r.db.WithContext(ctx).
		Where("local_id = ?", localID).
		Find(&ofertas).Error
	return ofertas, err
}

func (r *ofertaRepo) Delete(ctx context.Context, localID, ofertaID string) error {
	return r.db.WithContext(ctx).
		Where("local_id = ? AND oferta_id = ?", localID, ofertaID).
		Delete(&model.Oferta{}).Error
}

package repository

import (
	"context"

	"github.com/FabricioLanche/Chinawok-Pedidos/internal/model"

	"gorm.io/gorm"
)

// ComboRepository is the gateway for combos, keyed by (local_id, combo_id).
type ComboRepository interface {
	GetOne(ctx context.Context, localID, comboID string) (*model.Combo, error)
	PutOne(ctx context.Context, c *model.Combo) error
	UpdateFields(ctx context.Context, localID, comboID string, campos map[string]any) (*model.Combo, error)
	QueryByLocal(ctx context.Context, localID string) ([]model.Combo, error)
	Delete(ctx context.Context, localID, comboID string) error
}

type comboRepo struct{ db *gorm.DB }

func NewComboRepository(db *gorm.DB) ComboRepository { return &comboRepo{db: db} }

func (r *comboRepo) GetOne(ctx context.Context, localID, comboID string) (*model.Combo, error) {
	var c model.Combo
	err := r.db.WithContext(ctx).
		Where("local_id = ? AND combo_id = ?", localID, comboID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *comboRepo) PutOne(ctx context.Context, c *model.Combo) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *comboRepo) UpdateFields(ctx context.Context, localID, comboID string, campos map[string]any) (*model.Combo, error) {
	err := r.db.WithContext(ctx).
		Model(&model.Combo{}).
		Where("local_id = ? AND combo_id = ?", localID, comboID).
		Updates(campos).Error
	if err != nil {
		return nil, err
	}
	return r.GetOne(ctx, localID, comboID)
}

func (r *comboRepo) QueryByLocal(ctx context.Context, localID string) ([]model.Combo, error) {
	var combos []model.Combo
	err := r.db.WithContext(ctx).
		Where("local_id = ?", localID).
		Find(&combos).Error
	return combos, err
}

func (r *comboRepo) Delete(ctx context.Context, localID, comboID string) error {
	return r.db.WithContext(ctx).
		Where("local_id = ? AND combo_id = ?", localID, comboID).
		Delete(&model.Combo{}).Error
}

package repository

import (
	"context"

	"github.com/FabricioLanche/Chinawok-Pedidos/internal/model"

	"gorm.io/gorm"
)

// LocalRepository exposes the keyed-get contract over the location store.
// Order flows only ever existence-check locations.
type LocalRepository interface {
	GetOne(ctx context.Context, localID string) (*model.Local, error)
}

type localRepo struct{ db *gorm.DB }

func NewLocalRepository(db *gorm.DB) LocalRepository { return &localRepo{db: db} }

func (r *localRepo) GetOne(ctx context.Context, localID string) (*model.Local, error) {
	var l model.Local
	err := r.db.WithContext(ctx).Where("local_id = ?", localID).First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

package repository

import (
	"context"

	"nomina/internal/model"

	"gorm.io/gorm"
)

type ObraRepository interface {
	Create(ctx context.Context, o *model.Obra) error
	FindByID(ctx context.Context, id uint) (*model.Obra, error)
	List(ctx context.Context) ([]model.Obra, error)
	Update(ctx context.Context, o *model.Obra) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type obraRepo struct{ db *gorm.DB }

func NewObraRepository(db *gorm.DB) ObraRepository { return &obraRepo{db: db} }

func (r *obraRepo) Create(ctx context.Context, o *model.Obra) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *obraRepo) FindByID(ctx context.Context, id uint) (*model.Obra, error) {
	var o model.Obra
	err := r.db.WithContext(ctx).First(&o, id).Error
	return &o, err
}

func (r *obraRepo) List(ctx context.Context) ([]model.Obra, error) {
	var obras []model.Obra
	err := r.db.WithContext(ctx).Find(&obras).Error
	return obras, err
}

func (r *obraRepo) Update(ctx context.Context, o *model.Obra) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *obraRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&model.Obra{}, id).Error
	})
}

func (r *obraRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Obra{}).Count(&n).Error
	return n, err
}

package repository

import (
	"context"

	"nomina/internal/model"

	"gorm.io/gorm"
)

type IngresoEgresoRepository interface {
	Create(ctx context.Context, r *model.IngresoEgreso) error
	FindByID(ctx context.Context, id uint) (*model.IngresoEgreso, error)
	List(ctx context.Context, filter RegistroFilter) ([]model.IngresoEgreso, error)
	Update(ctx context.Context, r *model.IngresoEgreso) error
	Delete(ctx context.Context, id uint) error
}

type ingresoEgresoRepo struct{ db *gorm.DB }

func NewIngresoEgresoRepository(db *gorm.DB) IngresoEgresoRepository {
	return &ingresoEgresoRepo{db: db}
}

func (r *ingresoEgresoRepo) Create(ctx context.Context, reg *model.IngresoEgreso) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *ingresoEgresoRepo) FindByID(ctx context.Context, id uint) (*model.IngresoEgreso, error) {
	var reg model.IngresoEgreso
	err := r.db.WithContext(ctx).
		Preload("Personal").Preload("Obra").
		First(&reg, id).Error
	return &reg, err
}

func (r *ingresoEgresoRepo) List(ctx context.Context, filter RegistroFilter) ([]model.IngresoEgreso, error) {
	var registros []model.IngresoEgreso
	q := filter.apply(r.db.WithContext(ctx).Preload("Personal").Preload("Obra"))
	err := q.Find(&registros).Error
	return registros, err
}

func (r *ingresoEgresoRepo) Update(ctx context.Context, reg *model.IngresoEgreso) error {
	return r.db.WithContext(ctx).Omit("Personal", "Obra").Save(reg).Error
}

func (r *ingresoEgresoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.IngresoEgreso{}, id).Error
}

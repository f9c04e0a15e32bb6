package repository

import (
	"context"

	"nomina/internal/model"

	"gorm.io/gorm"
)

type AsignacionRepository interface {
	Create(ctx context.Context, a *model.Asignacion) error
	FindByID(ctx context.Context, id uint) (*model.Asignacion, error)
	List(ctx context.Context) ([]model.Asignacion, error)
	Update(ctx context.Context, a *model.Asignacion) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type asignacionRepo struct{ db *gorm.DB }

func NewAsignacionRepository(db *gorm.DB) AsignacionRepository { return &asignacionRepo{db: db} }

func (r *asignacionRepo) Create(ctx context.Context, a *model.Asignacion) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *asignacionRepo) FindByID(ctx context.Context, id uint) (*model.Asignacion, error) {
	var a model.Asignacion
	err := r.db.WithContext(ctx).
		Preload("Personal").Preload("Obra").
		First(&a, id).Error
	return &a, err
}

func (r *asignacionRepo) List(ctx context.Context) ([]model.Asignacion, error) {
	var asignaciones []model.Asignacion
	err := r.db.WithContext(ctx).
		Preload("Personal").Preload("Obra").
		Find(&asignaciones).Error
	return asignaciones, err
}

func (r *asignacionRepo) Update(ctx context.Context, a *model.Asignacion) error {
	// Save would also persist the preloaded relations; restrict to own columns.
	return r.db.WithContext(ctx).Omit("Personal", "Obra").Save(a).Error
}

func (r *asignacionRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Asignacion{}, id).Error
}

func (r *asignacionRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Asignacion{}).Count(&n).Error
	return n, err
}

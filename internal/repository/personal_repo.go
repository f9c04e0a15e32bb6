package repository

import (
	"context"

	"nomina/internal/model"

	"gorm.io/gorm"
)

type PersonalRepository interface {
	Create(ctx context.Context, p *model.Personal) error
	FindByID(ctx context.Context, id uint) (*model.Personal, error)
	List(ctx context.Context) ([]model.Personal, error)
	Update(ctx context.Context, p *model.Personal) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type personalRepo struct{ db *gorm.DB }

func NewPersonalRepository(db *gorm.DB) PersonalRepository { return &personalRepo{db: db} }

func (r *personalRepo) Create(ctx context.Context, p *model.Personal) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *personalRepo) FindByID(ctx context.Context, id uint) (*model.Personal, error) {
	var p model.Personal
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *personalRepo) List(ctx context.Context) ([]model.Personal, error) {
	var personal []model.Personal
	err := r.db.WithContext(ctx).Find(&personal).Error
	return personal, err
}

func (r *personalRepo) Update(ctx context.Context, p *model.Personal) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete removes the row inside a transaction; dependent asignaciones,
// presentismo and ingresos_egresos rows go with it (ON DELETE CASCADE).
func (r *personalRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&model.Personal{}, id).Error
	})
}

func (r *personalRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Personal{}).Count(&n).Error
	return n, err
}

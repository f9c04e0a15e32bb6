package repository

import (
	"context"

	"nomina/internal/model"

	"gorm.io/gorm"
)

// RegistroFilter narrows Presentismo / IngresoEgreso listings.
// ObraID is an equality filter; the fecha range is inclusive and only
// applied when both bounds are present.
type RegistroFilter struct {
	ObraID      *uint
	FechaInicio string
	FechaFin    string
}

func (f RegistroFilter) apply(q *gorm.DB) *gorm.DB {
	if f.ObraID != nil {
		q = q.Where("obra_id = ?", *f.ObraID)
	}
	if f.FechaInicio != "" && f.FechaFin != "" {
		q = q.Where("fecha BETWEEN ? AND ?", f.FechaInicio, f.FechaFin)
	}
	return q
}

type PresentismoRepository interface {
	Create(ctx context.Context, p *model.Presentismo) error
	FindByID(ctx context.Context, id uint) (*model.Presentismo, error)
	List(ctx context.Context, filter RegistroFilter) ([]model.Presentismo, error)
	Update(ctx context.Context, p *model.Presentismo) error
	Delete(ctx context.Context, id uint) error
}

type presentismoRepo struct{ db *gorm.DB }

func NewPresentismoRepository(db *gorm.DB) PresentismoRepository { return &presentismoRepo{db: db} }

func (r *presentismoRepo) Create(ctx context.Context, p *model.Presentismo) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *presentismoRepo) FindByID(ctx context.Context, id uint) (*model.Presentismo, error) {
	var p model.Presentismo
	err := r.db.WithContext(ctx).
		Preload("Personal").Preload("Obra").
		First(&p, id).Error
	return &p, err
}

func (r *presentismoRepo) List(ctx context.Context, filter RegistroFilter) ([]model.Presentismo, error) {
	var registros []model.Presentismo
	q := filter.apply(r.db.WithContext(ctx).Preload("Personal").Preload("Obra"))
	err := q.Find(&registros).Error
	return registros, err
}

func (r *presentismoRepo) Update(ctx context.Context, p *model.Presentismo) error {
	return r.db.WithContext(ctx).Omit("Personal", "Obra").Save(p).Error
}

func (r *presentismoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Presentismo{}, id).Error
}

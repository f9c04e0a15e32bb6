package service

import (
	"context"

	"nomina/internal/dto"
	"nomina/internal/model"
	"nomina/internal/repository"
)

type PresentismoService interface {
	Crear(ctx context.Context, req dto.CrearPresentismoRequest) (uint, error)
	Obtener(ctx context.Context, id uint) (*dto.PresentismoResponse, error)
	Listar(ctx context.Context, filter repository.RegistroFilter) ([]dto.PresentismoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarPresentismoRequest) error
	Eliminar(ctx context.Context, id uint) error
}

type presentismoService struct {
	repo repository.PresentismoRepository
}

func NewPresentismoService(repo repository.PresentismoRepository) PresentismoService {
	return &presentismoService{repo: repo}
}

func mapPresentismo(p model.Presentismo) dto.PresentismoResponse {
	resp := dto.PresentismoResponse{
		ID:          p.ID,
		PersonalID:  p.PersonalID,
		ObraID:      p.ObraID,
		Fecha:       p.Fecha,
		Tipo:        p.Tipo,
		Descripcion: p.Descripcion,
		Notas:       p.Notas,
	}
	if p.Personal != nil {
		resp.PersonalNombre = p.Personal.Nombre
		resp.PersonalApellido = p.Personal.Apellido
	}
	if p.Obra != nil {
		resp.ObraNombre = p.Obra.Nombre
	}
	return resp
}

// Crear fails with ErrDuplicado when a record for the same
// (personal, obra, fecha) already exists — the unique index enforces it.
func (s *presentismoService) Crear(ctx context.Context, req dto.CrearPresentismoRequest) (uint, error) {
	p := &model.Presentismo{
		PersonalID:  req.PersonalID,
		ObraID:      req.ObraID,
		Fecha:       req.Fecha,
		Tipo:        req.Tipo,
		Descripcion: req.Descripcion,
		Notas:       req.Notas,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return 0, traducir(err)
	}
	return p.ID, nil
}

func (s *presentismoService) Obtener(ctx context.Context, id uint) (*dto.PresentismoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traducir(err)
	}
	resp := mapPresentismo(*p)
	return &resp, nil
}

func (s *presentismoService) Listar(ctx context.Context, filter repository.RegistroFilter) ([]dto.PresentismoResponse, error) {
	registros, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PresentismoResponse, 0, len(registros))
	for _, p := range registros {
		result = append(result, mapPresentismo(p))
	}
	return result, nil
}

// Actualizar only touches the category fields; the (personal, obra, fecha)
// key of an attendance record is immutable once created.
func (s *presentismoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarPresentismoRequest) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return traducir(err)
	}

	if req.Tipo != nil {
		p.Tipo = *req.Tipo
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.Notas != nil {
		p.Notas = req.Notas
	}

	return traducir(s.repo.Update(ctx, p))
}

func (s *presentismoService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return traducir(err)
	}
	return traducir(s.repo.Delete(ctx, id))
}

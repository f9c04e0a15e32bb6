package service

import (
	"context"

	"nomina/internal/dto"
	"nomina/internal/model"
	"nomina/internal/repository"
)

type IngresoEgresoService interface {
	Crear(ctx context.Context, req dto.CrearIngresoEgresoRequest) (uint, error)
	Obtener(ctx context.Context, id uint) (*dto.IngresoEgresoResponse, error)
	Listar(ctx context.Context, filter repository.RegistroFilter) ([]dto.IngresoEgresoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarIngresoEgresoRequest) error
	Eliminar(ctx context.Context, id uint) error
}

type ingresoEgresoService struct {
	repo repository.IngresoEgresoRepository
}

func NewIngresoEgresoService(repo repository.IngresoEgresoRepository) IngresoEgresoService {
	return &ingresoEgresoService{repo: repo}
}

func mapIngresoEgreso(r model.IngresoEgreso) dto.IngresoEgresoResponse {
	resp := dto.IngresoEgresoResponse{
		ID:              r.ID,
		PersonalID:      r.PersonalID,
		ObraID:          r.ObraID,
		Fecha:           r.Fecha,
		HoraIngreso:     r.HoraIngreso,
		HoraEgreso:      r.HoraEgreso,
		HorasTrabajadas: r.HorasTrabajadas,
		Notas:           r.Notas,
	}
	if r.Personal != nil {
		resp.PersonalNombre = r.Personal.Nombre
		resp.PersonalApellido = r.Personal.Apellido
	}
	if r.Obra != nil {
		resp.ObraNombre = r.Obra.Nombre
	}
	return resp
}

func (s *ingresoEgresoService) Crear(ctx context.Context, req dto.CrearIngresoEgresoRequest) (uint, error) {
	reg := &model.IngresoEgreso{
		PersonalID:      req.PersonalID,
		ObraID:          req.ObraID,
		Fecha:           req.Fecha,
		HoraIngreso:     req.HoraIngreso,
		HoraEgreso:      req.HoraEgreso,
		HorasTrabajadas: req.HorasTrabajadas,
		Notas:           req.Notas,
	}
	if err := s.repo.Create(ctx, reg); err != nil {
		return 0, traducir(err)
	}
	return reg.ID, nil
}

func (s *ingresoEgresoService) Obtener(ctx context.Context, id uint) (*dto.IngresoEgresoResponse, error) {
	reg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traducir(err)
	}
	resp := mapIngresoEgreso(*reg)
	return &resp, nil
}

func (s *ingresoEgresoService) Listar(ctx context.Context, filter repository.RegistroFilter) ([]dto.IngresoEgresoResponse, error) {
	registros, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := make([]dto.IngresoEgresoResponse, 0, len(registros))
	for _, r := range registros {
		result = append(result, mapIngresoEgreso(r))
	}
	return result, nil
}

func (s *ingresoEgresoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarIngresoEgresoRequest) error {
	reg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return traducir(err)
	}

	if req.HoraIngreso != nil {
		reg.HoraIngreso = req.HoraIngreso
	}
	if req.HoraEgreso != nil {
		reg.HoraEgreso = req.HoraEgreso
	}
	if req.HorasTrabajadas != nil {
		reg.HorasTrabajadas = req.HorasTrabajadas
	}
	if req.Notas != nil {
		reg.Notas = req.Notas
	}

	return traducir(s.repo.Update(ctx, reg))
}

func (s *ingresoEgresoService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return traducir(err)
	}
	return traducir(s.repo.Delete(ctx, id))
}

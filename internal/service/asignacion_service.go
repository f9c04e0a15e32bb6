package service

import (
	"context"

	"nomina/internal/dto"
	"nomina/internal/model"
	"nomina/internal/repository"
)

type AsignacionService interface {
	Crear(ctx context.Context, req dto.CrearAsignacionRequest) (uint, error)
	Obtener(ctx context.Context, id uint) (*dto.AsignacionResponse, error)
	Listar(ctx context.Context) ([]dto.AsignacionResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarAsignacionRequest) error
	Eliminar(ctx context.Context, id uint) error
}

type asignacionService struct {
	repo repository.AsignacionRepository
}

func NewAsignacionService(repo repository.AsignacionRepository) AsignacionService {
	return &asignacionService{repo: repo}
}

func mapAsignacion(a model.Asignacion) dto.AsignacionResponse {
	resp := dto.AsignacionResponse{
		ID:              a.ID,
		PersonalID:      a.PersonalID,
		ObraID:          a.ObraID,
		FechaAsignacion: a.FechaAsignacion,
		FechaFin:        a.FechaFin,
		Puesto:          a.Puesto,
		SalarioDiario:   a.SalarioDiario,
		Estado:          a.Estado,
	}
	if a.Personal != nil {
		resp.PersonalNombre = a.Personal.Nombre
		resp.PersonalApellido = a.Personal.Apellido
	}
	if a.Obra != nil {
		resp.ObraNombre = a.Obra.Nombre
	}
	return resp
}

// Crear persists the assignment without pre-checking the referenced rows;
// a bad personal_id/obra_id surfaces as an FK violation at commit time.
func (s *asignacionService) Crear(ctx context.Context, req dto.CrearAsignacionRequest) (uint, error) {
	a := &model.Asignacion{
		PersonalID:      req.PersonalID,
		ObraID:          req.ObraID,
		FechaAsignacion: req.FechaAsignacion,
		FechaFin:        req.FechaFin,
		Puesto:          req.Puesto,
		SalarioDiario:   req.SalarioDiario,
		Estado:          "activa",
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return 0, traducir(err)
	}
	return a.ID, nil
}

func (s *asignacionService) Obtener(ctx context.Context, id uint) (*dto.AsignacionResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traducir(err)
	}
	resp := mapAsignacion(*a)
	return &resp, nil
}

func (s *asignacionService) Listar(ctx context.Context) ([]dto.AsignacionResponse, error) {
	asignaciones, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.AsignacionResponse, 0, len(asignaciones))
	for _, a := range asignaciones {
		result = append(result, mapAsignacion(a))
	}
	return result, nil
}

func (s *asignacionService) Actualizar(ctx context.Context, id uint, req dto.ActualizarAsignacionRequest) error {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return traducir(err)
	}

	if req.PersonalID != nil {
		a.PersonalID = *req.PersonalID
	}
	if req.ObraID != nil {
		a.ObraID = *req.ObraID
	}
	if req.FechaAsignacion != nil {
		a.FechaAsignacion = *req.FechaAsignacion
	}
	if req.FechaFin != nil {
		a.FechaFin = req.FechaFin
	}
	if req.Puesto != nil {
		a.Puesto = req.Puesto
	}
	if req.SalarioDiario != nil {
		a.SalarioDiario = req.SalarioDiario
	}
	if req.Estado != nil {
		a.Estado = *req.Estado
	}

	return traducir(s.repo.Update(ctx, a))
}

func (s *asignacionService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return traducir(err)
	}
	return traducir(s.repo.Delete(ctx, id))
}

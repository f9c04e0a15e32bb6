package service

import (
	"context"

	"nomina/internal/dto"
	"nomina/internal/model"
	"nomina/internal/repository"
)

type ObraService interface {
	Crear(ctx context.Context, req dto.CrearObraRequest) (uint, error)
	Obtener(ctx context.Context, id uint) (*dto.ObraResponse, error)
	Listar(ctx context.Context) ([]dto.ObraResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarObraRequest) error
	Eliminar(ctx context.Context, id uint) error
}

type obraService struct {
	repo repository.ObraRepository
}

func NewObraService(repo repository.ObraRepository) ObraService {
	return &obraService{repo: repo}
}

func mapObra(o model.Obra) dto.ObraResponse {
	return dto.ObraResponse{
		ID:               o.ID,
		Nombre:           o.Nombre,
		Descripcion:      o.Descripcion,
		Ubicacion:        o.Ubicacion,
		FechaInicio:      o.FechaInicio,
		FechaFinEstimada: o.FechaFinEstimada,
		Estado:           o.Estado,
		Responsable:      o.Responsable,
	}
}

func (s *obraService) Crear(ctx context.Context, req dto.CrearObraRequest) (uint, error) {
	o := &model.Obra{
		Nombre:           req.Nombre,
		Descripcion:      req.Descripcion,
		Ubicacion:        req.Ubicacion,
		FechaInicio:      req.FechaInicio,
		FechaFinEstimada: req.FechaFinEstimada,
		Estado:           "activa",
		Responsable:      req.Responsable,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return 0, traducir(err)
	}
	return o.ID, nil
}

func (s *obraService) Obtener(ctx context.Context, id uint) (*dto.ObraResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traducir(err)
	}
	resp := mapObra(*o)
	return &resp, nil
}

func (s *obraService) Listar(ctx context.Context) ([]dto.ObraResponse, error) {
	obras, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ObraResponse, 0, len(obras))
	for _, o := range obras {
		result = append(result, mapObra(o))
	}
	return result, nil
}

func (s *obraService) Actualizar(ctx context.Context, id uint, req dto.ActualizarObraRequest) error {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return traducir(err)
	}

	if req.Nombre != nil {
		o.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		o.Descripcion = req.Descripcion
	}
	if req.Ubicacion != nil {
		o.Ubicacion = req.Ubicacion
	}
	if req.FechaInicio != nil {
		o.FechaInicio = req.FechaInicio
	}
	if req.FechaFinEstimada != nil {
		o.FechaFinEstimada = req.FechaFinEstimada
	}
	if req.Responsable != nil {
		o.Responsable = req.Responsable
	}
	if req.Estado != nil {
		o.Estado = *req.Estado
	}

	return traducir(s.repo.Update(ctx, o))
}

func (s *obraService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return traducir(err)
	}
	return traducir(s.repo.Delete(ctx, id))
}

package service

import (
	"context"
	"errors"

	"nomina/internal/dto"
	"nomina/internal/model"
	"nomina/internal/repository"
)

// PersonalService offers CRUD over workers.
type PersonalService interface {
	Crear(ctx context.Context, req dto.CrearPersonalRequest) (uint, error)
	Obtener(ctx context.Context, id uint) (*dto.PersonalResponse, error)
	Listar(ctx context.Context) ([]dto.PersonalResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarPersonalRequest) error
	Eliminar(ctx context.Context, id uint) error
}

type personalService struct {
	repo repository.PersonalRepository
}

func NewPersonalService(repo repository.PersonalRepository) PersonalService {
	return &personalService{repo: repo}
}

func mapPersonal(p model.Personal) dto.PersonalResponse {
	return dto.PersonalResponse{
		ID:              p.ID,
		Nombre:          p.Nombre,
		Apellido:        p.Apellido,
		Email:           p.Email,
		Telefono:        p.Telefono,
		DNI:             p.DNI,
		FechaNacimiento: p.FechaNacimiento,
		Domicilio:       p.Domicilio,
		Ciudad:          p.Ciudad,
		Provincia:       p.Provincia,
		CodigoPostal:    p.CodigoPostal,
		Estado:          p.Estado,
		FechaIngreso:    p.FechaIngreso,
	}
}

func (s *personalService) Crear(ctx context.Context, req dto.CrearPersonalRequest) (uint, error) {
	p := &model.Personal{
		Nombre:          req.Nombre,
		Apellido:        req.Apellido,
		Email:           req.Email,
		Telefono:        req.Telefono,
		DNI:             req.DNI,
		FechaNacimiento: req.FechaNacimiento,
		Domicilio:       req.Domicilio,
		Ciudad:          req.Ciudad,
		Provincia:       req.Provincia,
		CodigoPostal:    req.CodigoPostal,
		Estado:          "activo",
		FechaIngreso:    req.FechaIngreso,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		// The only unique column on personal is the DNI.
		if errors.Is(traducir(err), ErrDuplicado) {
			return 0, ErrDNIRegistrado
		}
		return 0, traducir(err)
	}
	return p.ID, nil
}

func (s *personalService) Obtener(ctx context.Context, id uint) (*dto.PersonalResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traducir(err)
	}
	resp := mapPersonal(*p)
	return &resp, nil
}

func (s *personalService) Listar(ctx context.Context) ([]dto.PersonalResponse, error) {
	personal, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PersonalResponse, 0, len(personal))
	for _, p := range personal {
		result = append(result, mapPersonal(p))
	}
	return result, nil
}

// Actualizar merges: nil request fields keep the stored value, present
// fields overwrite it (an empty value clears).
func (s *personalService) Actualizar(ctx context.Context, id uint, req dto.ActualizarPersonalRequest) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return traducir(err)
	}

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Apellido != nil {
		p.Apellido = *req.Apellido
	}
	if req.Email != nil {
		p.Email = req.Email
	}
	if req.Telefono != nil {
		p.Telefono = req.Telefono
	}
	if req.DNI != nil {
		p.DNI = req.DNI
	}
	if req.FechaNacimiento != nil {
		p.FechaNacimiento = req.FechaNacimiento
	}
	if req.Domicilio != nil {
		p.Domicilio = req.Domicilio
	}
	if req.Ciudad != nil {
		p.Ciudad = req.Ciudad
	}
	if req.Provincia != nil {
		p.Provincia = req.Provincia
	}
	if req.CodigoPostal != nil {
		p.CodigoPostal = req.CodigoPostal
	}
	if req.FechaIngreso != nil {
		p.FechaIngreso = req.FechaIngreso
	}
	if req.Estado != nil {
		p.Estado = *req.Estado
	}

	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(traducir(err), ErrDuplicado) {
			return ErrDNIRegistrado
		}
		return traducir(err)
	}
	return nil
}

func (s *personalService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return traducir(err)
	}
	return traducir(s.repo.Delete(ctx, id))
}

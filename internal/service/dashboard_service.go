package service

import (
	"context"

	"nomina/internal/dto"
	"nomina/internal/repository"
)

// DashboardService aggregates the count totals for the landing page.
type DashboardService interface {
	Totales(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	personal     repository.PersonalRepository
	obras        repository.ObraRepository
	asignaciones repository.AsignacionRepository
}

func NewDashboardService(personal repository.PersonalRepository, obras repository.ObraRepository, asignaciones repository.AsignacionRepository) DashboardService {
	return &dashboardService{personal: personal, obras: obras, asignaciones: asignaciones}
}

func (s *dashboardService) Totales(ctx context.Context) (*dto.DashboardResponse, error) {
	totalPersonal, err := s.personal.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalObras, err := s.obras.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalAsignaciones, err := s.asignaciones.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		TotalPersonal:     totalPersonal,
		TotalObras:        totalObras,
		TotalAsignaciones: totalAsignaciones,
	}, nil
}

package service

import (
	"context"
	"errors"

	"nomina/internal/dto"
	"nomina/internal/model"
	"nomina/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UsuarioService covers admin user management. The actor is the
// authenticated admin issuing the call; operations against the actor's own
// row (role change, deactivation, password reset) are rejected.
type UsuarioService interface {
	Listar(ctx context.Context) ([]dto.UsuarioResponse, error)
	Crear(ctx context.Context, req dto.CrearUsuarioRequest) (uint, error)
	CambiarRol(ctx context.Context, actorID, userID uint, rol string) error
	ActivarDesactivar(ctx context.Context, actorID, userID uint) error
	CambiarPassword(ctx context.Context, actorID, userID uint, password string) error
}

type usuarioService struct {
	repo repository.UsuarioRepository
}

func NewUsuarioService(repo repository.UsuarioRepository) UsuarioService {
	return &usuarioService{repo: repo}
}

func (s *usuarioService) Listar(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.UsuarioResponse, 0, len(users))
	for _, u := range users {
		result = append(result, mapUsuario(u))
	}
	return result, nil
}

func (s *usuarioService) Crear(ctx context.Context, req dto.CrearUsuarioRequest) (uint, error) {
	// Explicit duplicate check so the admin gets a clear message instead of
	// a bare constraint error. Admin-only path.
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return 0, ErrEmailRegistrado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return 0, err
	}

	rol := req.Rol
	if rol == "" {
		rol = model.RolEnObra
	}

	user := &model.Usuario{
		Email:        req.Email,
		Nombre:       req.Nombre,
		Apellido:     req.Apellido,
		PasswordHash: string(hash),
		Rol:          rol,
		Activo:       true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(traducir(err), ErrDuplicado) {
			return 0, ErrEmailRegistrado
		}
		return 0, err
	}
	return user.ID, nil
}

func (s *usuarioService) CambiarRol(ctx context.Context, actorID, userID uint, rol string) error {
	if actorID == userID {
		return ErrOperacionPropia
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return traducir(err)
	}
	user.Rol = rol
	return traducir(s.repo.Update(ctx, user))
}

func (s *usuarioService) ActivarDesactivar(ctx context.Context, actorID, userID uint) error {
	if actorID == userID {
		return ErrOperacionPropia
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return traducir(err)
	}
	user.Activo = !user.Activo
	return traducir(s.repo.Update(ctx, user))
}

func (s *usuarioService) CambiarPassword(ctx context.Context, actorID, userID uint, password string) error {
	if actorID == userID {
		return ErrOperacionPropia
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return traducir(err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return traducir(s.repo.Update(ctx, user))
}

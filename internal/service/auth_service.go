package service

import (
	"context"
	"time"

	"nomina/internal/config"
	"nomina/internal/dto"
	"nomina/internal/model"
	"nomina/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	// Login verifies the credentials and opens a session. The returned
	// token goes into the session cookie; ttl is its lifetime.
	Login(ctx context.Context, req dto.LoginRequest) (token string, ttl time.Duration, resp *dto.LoginResponse, err error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo     repository.UsuarioRepository
	sessions repository.SessionStore
	cfg      *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, sessions repository.SessionStore, cfg *config.Config) AuthService {
	return &authService{repo: repo, sessions: sessions, cfg: cfg}
}

func mapUsuario(u model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:       u.ID,
		Email:    u.Email,
		Nombre:   u.Nombre,
		Apellido: u.Apellido,
		Rol:      u.Rol,
		Activo:   u.Activo,
	}
}

// Login yields the same generic error for unknown email, wrong password and
// inactive account, so callers cannot enumerate accounts.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (string, time.Duration, *dto.LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", 0, nil, ErrCredencialesInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", 0, nil, ErrCredencialesInvalidas
	}
	if !user.Activo {
		return "", 0, nil, ErrCredencialesInvalidas
	}

	ttl := time.Duration(s.cfg.SessionTTLHours) * time.Hour
	if req.Remember {
		ttl = time.Duration(s.cfg.SessionRememberDays) * 24 * time.Hour
	}

	token, err := s.sessions.Create(ctx, repository.Principal{
		UserID:   user.ID,
		Email:    user.Email,
		Nombre:   user.Nombre,
		Apellido: user.Apellido,
		Rol:      user.Rol,
	}, ttl)
	if err != nil {
		return "", 0, nil, err
	}

	return token, ttl, &dto.LoginResponse{
		Mensaje: "Sesión iniciada",
		Usuario: mapUsuario(*user),
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

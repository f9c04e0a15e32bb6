package service

import (
	"context"
	"testing"

	"nomina/internal/dto"
	"nomina/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUsuarioCrearConRolPorDefecto(t *testing.T) {
	repo := newUsuarioRepoStub()
	svc := NewUsuarioService(repo)

	id, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		Nombre:   "Marta",
		Apellido: "Ruiz",
		Email:    "marta@obra.com",
		Password: "secreto1",
	})
	require.NoError(t, err)

	stored := repo.byID[id]
	require.NotNil(t, stored)
	assert.Equal(t, model.RolEnObra, stored.Rol)
	assert.True(t, stored.Activo)
	// The password is stored hashed, never verbatim.
	assert.NotEqual(t, "secreto1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto1")))
}

func TestUsuarioCrearEmailDuplicado(t *testing.T) {
	repo := newUsuarioRepoStub()
	seedUsuario(t, repo, "marta@obra.com", "secreto1", model.RolEnObra, true)
	svc := NewUsuarioService(repo)

	_, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		Nombre:   "Marta",
		Apellido: "Ruiz",
		Email:    "marta@obra.com",
		Password: "secreto1",
	})
	assert.ErrorIs(t, err, ErrEmailRegistrado)
}

func TestUsuarioCambiarRol(t *testing.T) {
	repo := newUsuarioRepoStub()
	admin := seedUsuario(t, repo, "admin@obra.com", "secreto1", model.RolAdmin, true)
	otro := seedUsuario(t, repo, "otro@obra.com", "secreto1", model.RolEnObra, true)
	svc := NewUsuarioService(repo)
	ctx := context.Background()

	require.NoError(t, svc.CambiarRol(ctx, admin.ID, otro.ID, model.RolAdmin))
	assert.Equal(t, model.RolAdmin, repo.byID[otro.ID].Rol)

	// An admin cannot demote their own account.
	err := svc.CambiarRol(ctx, admin.ID, admin.ID, model.RolEnObra)
	assert.ErrorIs(t, err, ErrOperacionPropia)
}

func TestUsuarioActivarDesactivar(t *testing.T) {
	repo := newUsuarioRepoStub()
	admin := seedUsuario(t, repo, "admin@obra.com", "secreto1", model.RolAdmin, true)
	otro := seedUsuario(t, repo, "otro@obra.com", "secreto1", model.RolEnObra, true)
	svc := NewUsuarioService(repo)
	ctx := context.Background()

	require.NoError(t, svc.ActivarDesactivar(ctx, admin.ID, otro.ID))
	assert.False(t, repo.byID[otro.ID].Activo)

	require.NoError(t, svc.ActivarDesactivar(ctx, admin.ID, otro.ID))
	assert.True(t, repo.byID[otro.ID].Activo)

	// Self-deactivation would lock the admin out; rejected.
	err := svc.ActivarDesactivar(ctx, admin.ID, admin.ID)
	assert.ErrorIs(t, err, ErrOperacionPropia)
}

func TestUsuarioCambiarPassword(t *testing.T) {
	repo := newUsuarioRepoStub()
	admin := seedUsuario(t, repo, "admin@obra.com", "secreto1", model.RolAdmin, true)
	otro := seedUsuario(t, repo, "otro@obra.com", "secreto1", model.RolEnObra, true)
	svc := NewUsuarioService(repo)
	ctx := context.Background()

	require.NoError(t, svc.CambiarPassword(ctx, admin.ID, otro.ID, "nueva123"))
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(repo.byID[otro.ID].PasswordHash), []byte("nueva123")))

	err := svc.CambiarPassword(ctx, admin.ID, admin.ID, "nueva123")
	assert.ErrorIs(t, err, ErrOperacionPropia)
}

func TestUsuarioAccionSobreInexistente(t *testing.T) {
	repo := newUsuarioRepoStub()
	admin := seedUsuario(t, repo, "admin@obra.com", "secreto1", model.RolAdmin, true)
	svc := NewUsuarioService(repo)

	err := svc.CambiarRol(context.Background(), admin.ID, 99, model.RolAdmin)
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

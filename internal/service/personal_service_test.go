package service

import (
	"context"
	"testing"

	"nomina/internal/dto"
	"nomina/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type personalRepoStub struct {
	items     map[uint]model.Personal
	nextID    uint
	createErr error
	updateErr error
}

func newPersonalRepoStub() *personalRepoStub {
	return &personalRepoStub{items: map[uint]model.Personal{}}
}

func (r *personalRepoStub) Create(_ context.Context, p *model.Personal) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	p.ID = r.nextID
	r.items[p.ID] = *p
	return nil
}

func (r *personalRepoStub) FindByID(_ context.Context, id uint) (*model.Personal, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *personalRepoStub) List(_ context.Context) ([]model.Personal, error) {
	out := make([]model.Personal, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	return out, nil
}

func (r *personalRepoStub) Update(_ context.Context, p *model.Personal) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.items[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.items[p.ID] = *p
	return nil
}

func (r *personalRepoStub) Delete(_ context.Context, id uint) error {
	delete(r.items, id)
	return nil
}

func (r *personalRepoStub) Count(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

func strPtr(s string) *string { return &s }

func TestPersonalCrearYObtener(t *testing.T) {
	svc := NewPersonalService(newPersonalRepoStub())
	ctx := context.Background()

	id, err := svc.Crear(ctx, dto.CrearPersonalRequest{
		Nombre:   "Juan",
		Apellido: "Pérez",
		DNI:      strPtr("30123456"),
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := svc.Obtener(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Juan", got.Nombre)
	assert.Equal(t, "Pérez", got.Apellido)
	require.NotNil(t, got.DNI)
	assert.Equal(t, "30123456", *got.DNI)
	assert.Equal(t, "activo", got.Estado)
	assert.Nil(t, got.Email)
}

func TestPersonalCrearDNIDuplicado(t *testing.T) {
	repo := newPersonalRepoStub()
	repo.createErr = gorm.ErrDuplicatedKey
	svc := NewPersonalService(repo)

	_, err := svc.Crear(context.Background(), dto.CrearPersonalRequest{
		Nombre:   "Juan",
		Apellido: "Pérez",
		DNI:      strPtr("30123456"),
	})
	assert.ErrorIs(t, err, ErrDNIRegistrado)
}

func TestPersonalActualizarDNIDuplicado(t *testing.T) {
	repo := newPersonalRepoStub()
	svc := NewPersonalService(repo)
	ctx := context.Background()

	id, err := svc.Crear(ctx, dto.CrearPersonalRequest{Nombre: "Juan", Apellido: "Pérez"})
	require.NoError(t, err)

	repo.updateErr = gorm.ErrDuplicatedKey
	err = svc.Actualizar(ctx, id, dto.ActualizarPersonalRequest{DNI: strPtr("30123456")})
	assert.ErrorIs(t, err, ErrDNIRegistrado)
}

func TestPersonalObtenerInexistente(t *testing.T) {
	svc := NewPersonalService(newPersonalRepoStub())

	_, err := svc.Obtener(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestPersonalActualizarVacioNoModifica(t *testing.T) {
	svc := NewPersonalService(newPersonalRepoStub())
	ctx := context.Background()

	id, err := svc.Crear(ctx, dto.CrearPersonalRequest{
		Nombre:   "Ana",
		Apellido: "García",
		Telefono: strPtr("1144445555"),
	})
	require.NoError(t, err)

	// An empty update must leave every field untouched.
	require.NoError(t, svc.Actualizar(ctx, id, dto.ActualizarPersonalRequest{}))

	got, err := svc.Obtener(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Nombre)
	require.NotNil(t, got.Telefono)
	assert.Equal(t, "1144445555", *got.Telefono)
}

func TestPersonalActualizarMergeYLimpieza(t *testing.T) {
	svc := NewPersonalService(newPersonalRepoStub())
	ctx := context.Background()

	id, err := svc.Crear(ctx, dto.CrearPersonalRequest{
		Nombre:   "Ana",
		Apellido: "García",
		Ciudad:   strPtr("Córdoba"),
		Telefono: strPtr("1144445555"),
	})
	require.NoError(t, err)

	// nombre cambia, telefono se vacía, ciudad queda intacta
	err = svc.Actualizar(ctx, id, dto.ActualizarPersonalRequest{
		Nombre:   strPtr("Ana María"),
		Telefono: strPtr(""),
	})
	require.NoError(t, err)

	got, err := svc.Obtener(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana María", got.Nombre)
	require.NotNil(t, got.Telefono)
	assert.Equal(t, "", *got.Telefono)
	require.NotNil(t, got.Ciudad)
	assert.Equal(t, "Córdoba", *got.Ciudad)
}

func TestPersonalActualizarInexistente(t *testing.T) {
	svc := NewPersonalService(newPersonalRepoStub())

	err := svc.Actualizar(context.Background(), 42, dto.ActualizarPersonalRequest{Nombre: strPtr("X")})
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestPersonalEliminar(t *testing.T) {
	svc := NewPersonalService(newPersonalRepoStub())
	ctx := context.Background()

	id, err := svc.Crear(ctx, dto.CrearPersonalRequest{Nombre: "Juan", Apellido: "Pérez"})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(ctx, id))

	_, err = svc.Obtener(ctx, id)
	assert.ErrorIs(t, err, ErrNoEncontrado)

	// A second delete reports not found instead of succeeding silently.
	assert.ErrorIs(t, svc.Eliminar(ctx, id), ErrNoEncontrado)
}

func TestPersonalListarVacioDevuelveSliceVacio(t *testing.T) {
	svc := NewPersonalService(newPersonalRepoStub())

	got, err := svc.Listar(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

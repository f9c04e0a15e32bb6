package service

import (
	"context"
	"fmt"
	"testing"

	"nomina/internal/dto"
	"nomina/internal/model"
	"nomina/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// presentismoRepoStub enforces the (personal, obra, fecha) unique key the
// way the database index does.
type presentismoRepoStub struct {
	items      map[uint]model.Presentismo
	nextID     uint
	lastFilter repository.RegistroFilter
}

func newPresentismoRepoStub() *presentismoRepoStub {
	return &presentismoRepoStub{items: map[uint]model.Presentismo{}}
}

func clave(p model.Presentismo) string {
	return fmt.Sprintf("%d|%d|%s", p.PersonalID, p.ObraID, p.Fecha)
}

func (r *presentismoRepoStub) Create(_ context.Context, p *model.Presentismo) error {
	for _, existing := range r.items {
		if clave(existing) == clave(*p) {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	p.ID = r.nextID
	r.items[p.ID] = *p
	return nil
}

func (r *presentismoRepoStub) FindByID(_ context.Context, id uint) (*model.Presentismo, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *presentismoRepoStub) List(_ context.Context, filter repository.RegistroFilter) ([]model.Presentismo, error) {
	r.lastFilter = filter
	out := make([]model.Presentismo, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	return out, nil
}

func (r *presentismoRepoStub) Update(_ context.Context, p *model.Presentismo) error {
	if _, ok := r.items[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.items[p.ID] = *p
	return nil
}

func (r *presentismoRepoStub) Delete(_ context.Context, id uint) error {
	delete(r.items, id)
	return nil
}

func TestPresentismoCrear(t *testing.T) {
	svc := NewPresentismoService(newPresentismoRepoStub())

	id, err := svc.Crear(context.Background(), dto.CrearPresentismoRequest{
		PersonalID: 1,
		ObraID:     2,
		Fecha:      "2026-08-15",
		Tipo:       "presente",
	})
	require.NoError(t, err)
	assert.NotZero(t, id)
}

func TestPresentismoCrearDuplicadoMismoDia(t *testing.T) {
	svc := NewPresentismoService(newPresentismoRepoStub())
	ctx := context.Background()

	req := dto.CrearPresentismoRequest{
		PersonalID: 1,
		ObraID:     2,
		Fecha:      "2026-08-15",
		Tipo:       "presente",
	}
	_, err := svc.Crear(ctx, req)
	require.NoError(t, err)

	// Same worker, same site, same date — rejected even with another tipo.
	req.Tipo = "ausente"
	_, err = svc.Crear(ctx, req)
	assert.ErrorIs(t, err, ErrDuplicado)

	// A different date for the same pair is fine.
	req.Fecha = "2026-08-16"
	_, err = svc.Crear(ctx, req)
	assert.NoError(t, err)
}

func TestPresentismoListarPropagaFiltro(t *testing.T) {
	repo := newPresentismoRepoStub()
	svc := NewPresentismoService(repo)

	obraID := uint(7)
	filter := repository.RegistroFilter{
		ObraID:      &obraID,
		FechaInicio: "2026-08-01",
		FechaFin:    "2026-08-31",
	}
	_, err := svc.Listar(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, filter, repo.lastFilter)
}

func TestPresentismoActualizarSoloCategoria(t *testing.T) {
	repo := newPresentismoRepoStub()
	svc := NewPresentismoService(repo)
	ctx := context.Background()

	id, err := svc.Crear(ctx, dto.CrearPresentismoRequest{
		PersonalID: 1,
		ObraID:     2,
		Fecha:      "2026-08-15",
		Tipo:       "presente",
	})
	require.NoError(t, err)

	tipo := "ausente"
	notas := "aviso médico"
	require.NoError(t, svc.Actualizar(ctx, id, dto.ActualizarPresentismoRequest{
		Tipo:  &tipo,
		Notas: &notas,
	}))

	stored := repo.items[id]
	assert.Equal(t, "ausente", stored.Tipo)
	require.NotNil(t, stored.Notas)
	assert.Equal(t, "aviso médico", *stored.Notas)
	// key fields untouched
	assert.Equal(t, uint(1), stored.PersonalID)
	assert.Equal(t, "2026-08-15", stored.Fecha)
}

func TestPresentismoEliminarInexistente(t *testing.T) {
	svc := NewPresentismoService(newPresentismoRepoStub())

	err := svc.Eliminar(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

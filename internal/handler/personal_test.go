package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nomina/internal/dto"
	"nomina/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type personalServiceStub struct {
	crearID   uint
	crearErr  error
	obtener   *dto.PersonalResponse
	obtenErr  error
	listado   []dto.PersonalResponse
	actualErr error
	elimErr   error
	lastReq   dto.CrearPersonalRequest
}

func (s *personalServiceStub) Crear(_ context.Context, req dto.CrearPersonalRequest) (uint, error) {
	s.lastReq = req
	return s.crearID, s.crearErr
}

func (s *personalServiceStub) Obtener(_ context.Context, _ uint) (*dto.PersonalResponse, error) {
	return s.obtener, s.obtenErr
}

func (s *personalServiceStub) Listar(_ context.Context) ([]dto.PersonalResponse, error) {
	return s.listado, nil
}

func (s *personalServiceStub) Actualizar(_ context.Context, _ uint, _ dto.ActualizarPersonalRequest) error {
	return s.actualErr
}

func (s *personalServiceStub) Eliminar(_ context.Context, _ uint) error {
	return s.elimErr
}

func personalRouter(stub *personalServiceStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPersonalHandler(stub)
	r.GET("/api/personal", h.Listar)
	r.GET("/api/personal/:id", h.Obtener)
	r.POST("/api/personal", h.Crear)
	r.PUT("/api/personal/:id", h.Actualizar)
	r.DELETE("/api/personal/:id", h.Eliminar)
	return r
}

func jsonRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPersonalCrearDevuelve201ConID(t *testing.T) {
	stub := &personalServiceStub{crearID: 12}
	r := personalRouter(stub)

	w := jsonRequest(r, http.MethodPost, "/api/personal",
		`{"nombre":"Juan","apellido":"Pérez","dni":"30123456"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.CreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(12), resp.ID)
	assert.Equal(t, "Empleado creado", resp.Mensaje)
	assert.Equal(t, "Juan", stub.lastReq.Nombre)
}

func TestPersonalCrearDNIDuplicadoDevuelve409(t *testing.T) {
	r := personalRouter(&personalServiceStub{crearErr: service.ErrDNIRegistrado})

	w := jsonRequest(r, http.MethodPost, "/api/personal",
		`{"nombre":"Juan","apellido":"Pérez","dni":"30123456"}`)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"Ya existe un empleado con ese DNI"}`, w.Body.String())
}

func TestPersonalCrearSinNombreDevuelve400(t *testing.T) {
	r := personalRouter(&personalServiceStub{})

	w := jsonRequest(r, http.MethodPost, "/api/personal", `{"apellido":"Pérez"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Nombre")
}

func TestPersonalCrearJSONInvalido(t *testing.T) {
	r := personalRouter(&personalServiceStub{})

	w := jsonRequest(r, http.MethodPost, "/api/personal", `{nombre:}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "JSON inválido")
}

func TestPersonalObtenerInexistenteDevuelve404(t *testing.T) {
	r := personalRouter(&personalServiceStub{obtenErr: service.ErrNoEncontrado})

	w := jsonRequest(r, http.MethodGet, "/api/personal/99", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"No encontrado"}`, w.Body.String())
}

func TestPersonalIDNoNumericoDevuelve400(t *testing.T) {
	r := personalRouter(&personalServiceStub{})

	w := jsonRequest(r, http.MethodGet, "/api/personal/abc", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ID inválido")
}

func TestPersonalListarDevuelveArreglo(t *testing.T) {
	r := personalRouter(&personalServiceStub{listado: []dto.PersonalResponse{
		{ID: 1, Nombre: "Juan", Apellido: "Pérez", Estado: "activo"},
	}})

	w := jsonRequest(r, http.MethodGet, "/api/personal", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp []dto.PersonalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Juan", resp[0].Nombre)
}

func TestPersonalEliminarOK(t *testing.T) {
	r := personalRouter(&personalServiceStub{})

	w := jsonRequest(r, http.MethodDelete, "/api/personal/3", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"mensaje":"Eliminado"}`, w.Body.String())
}

// An unexpected store error must never leak its detail to the client.
func TestPersonalErrorInternoEsOpaco(t *testing.T) {
	r := personalRouter(&personalServiceStub{obtenErr: assert.AnError})

	w := jsonRequest(r, http.MethodGet, "/api/personal/1", "")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Error interno del servidor"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

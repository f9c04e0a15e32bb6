package handler

import (
	"net/http"
	"strconv"

	"nomina/internal/apierror"
	"nomina/internal/middleware"
	"nomina/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

// bindAndValidate binds a JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if anything fails — the
// caller must return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido"))
		return false
	}
	return runValidation(c, req)
}

// bindFormAndValidate is the form-encoded counterpart, used by the login
// and admin routes.
func bindFormAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Formulario inválido"))
		return false
	}
	return runValidation(c, req)
}

func runValidation(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		campos := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			campos[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(campos))
		return false
	}
	return true
}

// parseID extracts the :id path parameter. Writes a 400 and returns false
// on anything that is not a positive integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps service sentinels onto HTTP statuses. Unknown
// errors are store failures: the detail is logged with the request id and
// the client only sees an opaque message.
func respondServiceError(c *gin.Context, err error) {
	switch err {
	case service.ErrNoEncontrado:
		c.JSON(http.StatusNotFound, apierror.New("No encontrado"))
	case service.ErrDuplicado:
		c.JSON(http.StatusConflict, apierror.New("Ya existe un registro para esa combinación de personal, obra y fecha"))
	case service.ErrReferenciaInvalida:
		c.JSON(http.StatusBadRequest, apierror.New("Personal u obra inexistente"))
	case service.ErrCredencialesInvalidas:
		c.JSON(http.StatusUnauthorized, apierror.New("Email o contraseña incorrectos"))
	case service.ErrOperacionPropia:
		c.JSON(http.StatusBadRequest, apierror.New("No puedes aplicar esta operación sobre tu propio usuario"))
	case service.ErrEmailRegistrado:
		c.JSON(http.StatusBadRequest, apierror.New("El email ya está registrado"))
	case service.ErrDNIRegistrado:
		c.JSON(http.StatusConflict, apierror.New("Ya existe un empleado con ese DNI"))
	default:
		log.Error().
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("path", c.FullPath()).
			Err(err).
			Msg("store error")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}

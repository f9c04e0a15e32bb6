package service

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors shared by all services. Handlers map these to HTTP
// statuses; anything else is a store failure and surfaces as an opaque 500.
var (
	ErrNoEncontrado          = errors.New("no encontrado")
	ErrDuplicado             = errors.New("ya existe un registro para esa combinación")
	ErrReferenciaInvalida    = errors.New("personal u obra inexistente")
	ErrCredencialesInvalidas = errors.New("email o contraseña incorrectos")
	ErrOperacionPropia       = errors.New("operación no permitida sobre el propio usuario")
	ErrEmailRegistrado       = errors.New("el email ya está registrado")
	ErrDNIRegistrado         = errors.New("el dni ya está registrado")
)

// traducir maps store-level errors onto the service sentinels. GORM's
// TranslateError config guarantees the unique/FK sentinels are populated.
func traducir(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNoEncontrado
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicado
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrReferenciaInvalida
	default:
		return err
	}
}

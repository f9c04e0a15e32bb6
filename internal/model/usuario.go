package model

import "time"

// Roles a Usuario can hold. Exactly these two values exist.
const (
	RolAdmin  = "admin"
	RolEnObra = "en_obra"
)

// Usuario stores system users with role-based access.
// A user must be Activo to authenticate.
type Usuario struct {
	ID            uint   `gorm:"primaryKey"`
	Email         string `gorm:"size:120;uniqueIndex;not null"`
	Nombre        string `gorm:"size:120;not null"`
	Apellido      string `gorm:"size:120;not null"`
	PasswordHash  string `gorm:"size:255;not null"`
	Rol           string `gorm:"size:50;not null;default:'en_obra'"`
	Activo        bool   `gorm:"not null;default:true"`
	FechaCreacion time.Time `gorm:"autoCreateTime"`
}

func (Usuario) TableName() string { return "usuarios" }

// EsAdmin reports whether the user holds the administrator role.
func (u *Usuario) EsAdmin() bool { return u.Rol == RolAdmin }

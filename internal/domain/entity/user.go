package entity

import "time"

// Roles válidos para User.
const (
	RoleEntrepreneur = "emprendedor"
	RoleAdvisor      = "asesor"
)

// User cuenta de un emprendedor o de un asesor que revisa planes.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // emprendedor, asesor
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

type Employee struct {
	Id           uuid.UUID
	Name         string
	Email        string
	Role         string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
	IsDeleted    bool
}

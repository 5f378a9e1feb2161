package entity

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	Id        uuid.UUID
	Name      string
	TaxNumber string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

type Customer struct {
	Id            uuid.UUID
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}

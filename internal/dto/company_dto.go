package dto

import (
	"time"

	"github.com/google/uuid"
)

type SaveCompanyRequest struct {
	Id        uuid.UUID
	Name      string `json:"name" validate:"required"`
	TaxNumber string `json:"tax_number"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
}

type CompanyResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	TaxNumber string    `json:"tax_number"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type SaveCustomerRequest struct {
	Id            uuid.UUID
	Name          string `json:"name" validate:"required"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email" validate:"omitempty,email"`
	Address       string `json:"address"`
}

type CustomerResponse struct {
	Id            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
}

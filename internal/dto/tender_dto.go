package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTenderRequest struct {
	Title              string     `json:"title" validate:"required"`
	Entity             string     `json:"entity"`
	Description        string     `json:"description"`
	ReferenceNumber    string     `json:"reference_number"`
	EstimatedValue     float64    `json:"estimated_value" validate:"gte=0"`
	SubmissionDeadline *time.Time `json:"submission_deadline"`
}

type UpdateTenderRequest struct {
	Id                 uuid.UUID
	Title              string     `json:"title" validate:"required"`
	Entity             string     `json:"entity"`
	Description        string     `json:"description"`
	ReferenceNumber    string     `json:"reference_number"`
	EstimatedValue     float64    `json:"estimated_value" validate:"gte=0"`
	SubmissionDeadline *time.Time `json:"submission_deadline"`
}

type TenderResponse struct {
	Id                 uuid.UUID  `json:"id"`
	Title              string     `json:"title"`
	Entity             string     `json:"entity"`
	Description        string     `json:"description"`
	ReferenceNumber    string     `json:"reference_number"`
	EstimatedValue     float64    `json:"estimated_value"`
	Priority           string     `json:"priority"`
	SubmissionDeadline *time.Time `json:"submission_deadline"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type Tender struct {
	Id                 uuid.UUID
	Title              string
	Entity             string // issuing authority
	Description        string
	ReferenceNumber    string
	EstimatedValue     float64
	SubmissionDeadline *time.Time
	CreatedAt          time.Time
	UpdatedAt          *time.Time
	DeletedAt          *time.Time
	IsDeleted          bool
}

// TenderItem is a single line of a price study: what it costs us and what we
// offer it for.
type TenderItem struct {
	Id          uuid.UUID
	TenderId    uuid.UUID
	Description string
	Quantity    float64
	UnitCost    float64
	UnitPrice   float64
	CreatedAt   time.Time
}

// CompetitorPrice is a rival's total offer recorded against a tender.
type CompetitorPrice struct {
	Id             uuid.UUID
	TenderId       uuid.UUID
	CompetitorName string
	TotalPrice     float64
	CreatedAt      time.Time
}

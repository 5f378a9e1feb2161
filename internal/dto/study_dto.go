package dto

import (
	"time"

	"github.com/google/uuid"
)

type StudyItemRequest struct {
	Description string  `json:"description" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"gt=0"`
	UnitCost    float64 `json:"unit_cost" validate:"gte=0"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
}

// SaveStudyItemsRequest replaces the whole item list of a tender's study.
type SaveStudyItemsRequest struct {
	TenderId uuid.UUID
	Items    []StudyItemRequest `json:"items" validate:"required,dive"`
}

type StudyItemResponse struct {
	Id          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	UnitCost    float64   `json:"unit_cost"`
	UnitPrice   float64   `json:"unit_price"`
	TotalCost   float64   `json:"total_cost"`
	TotalPrice  float64   `json:"total_price"`
}

type AddCompetitorRequest struct {
	TenderId       uuid.UUID
	CompetitorName string  `json:"competitor_name" validate:"required"`
	TotalPrice     float64 `json:"total_price" validate:"gt=0"`
}

type CompetitorPriceResponse struct {
	Id             uuid.UUID `json:"id"`
	CompetitorName string    `json:"competitor_name"`
	TotalPrice     float64   `json:"total_price"`
	CreatedAt      time.Time `json:"created_at"`
}

type StudyResponse struct {
	TenderId      uuid.UUID                 `json:"tender_id"`
	Items         []StudyItemResponse       `json:"items"`
	TotalCost     float64                   `json:"total_cost"`
	TotalPrice    float64                   `json:"total_price"`
	Profit        float64                   `json:"profit"`
	MarginPercent float64                   `json:"margin_percent"`
	Competitors   []CompetitorPriceResponse `json:"competitors"`
	OurRank       int                       `json:"our_rank"` // 1-based among competitors, 0 when no offer priced
}

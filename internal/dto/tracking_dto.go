package dto

import (
	"time"

	"github.com/google/uuid"
)

type TrackedTenderResponse struct {
	TrackingId         uuid.UUID  `json:"tracking_id"`
	TenderId           uuid.UUID  `json:"tender_id"`
	Title              string     `json:"title"`
	Entity             string     `json:"entity"`
	ReferenceNumber    string     `json:"reference_number"`
	EstimatedValue     float64    `json:"estimated_value"`
	SubmissionDeadline *time.Time `json:"submission_deadline"`
	Stage              string     `json:"stage"`
	Priority           string     `json:"priority"`
	LastMovedNote      string     `json:"last_moved_note,omitempty"`
	TrackedAt          time.Time  `json:"tracked_at"`
}

// BoardResponse always carries all four stage keys, even when empty.
type BoardResponse struct {
	Pending    []TrackedTenderResponse `json:"pending"`
	InProgress []TrackedTenderResponse `json:"inProgress"`
	Review     []TrackedTenderResponse `json:"review"`
	Completed  []TrackedTenderResponse `json:"completed"`
	Total      int                     `json:"total"`
}

type MoveTenderStageRequest struct {
	TenderId uuid.UUID `json:"tender_id" validate:"required"`
	From     string    `json:"from" validate:"required"`
	To       string    `json:"to" validate:"required"`
	Note     string    `json:"note"`
}

type MoveTenderStageResponse struct {
	TrackingId uuid.UUID `json:"tracking_id"`
	Stage      string    `json:"stage"`
}

type InitializeTrackingRequest struct {
	TenderId uuid.UUID `json:"tender_id" validate:"required"`
	Stage    string    `json:"stage"`
}

type InitializeTrackingResponse struct {
	TrackingId uuid.UUID `json:"tracking_id"`
	Stage      string    `json:"stage"`
}

type RemoveDuplicatesResponse struct {
	Removed int `json:"removed"`
}

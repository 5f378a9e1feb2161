package dto

import (
	"time"

	"github.com/google/uuid"
)

type CompanyDocumentResponse struct {
	Id         uuid.UUID `json:"id"`
	CompanyId  uuid.UUID `json:"company_id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	SizeBytes  int64     `json:"size_bytes"`
	UploadedBy uuid.UUID `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

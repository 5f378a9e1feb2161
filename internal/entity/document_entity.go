package entity

import (
	"time"

	"github.com/google/uuid"
)

// CompanyDocument is a stored file attached to a company or a tender.
type CompanyDocument struct {
	Id          uuid.UUID
	CompanyId   *uuid.UUID
	TenderId    *uuid.UUID
	Name        string
	URL         string
	Path        string
	SizeBytes   int64
	ContentType string
	UploadedBy  uuid.UUID
	CreatedAt   time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}

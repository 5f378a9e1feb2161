package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyDocument struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyId   *uuid.UUID     `gorm:"type:uuid;index"`
	TenderId    *uuid.UUID     `gorm:"type:uuid;index"`
	Name        string         `gorm:"type:varchar(255);not null"`
	URL         string         `gorm:"type:text;not null"`
	Path        string         `gorm:"type:text;not null"`
	SizeBytes   int64          `gorm:"default:0"`
	ContentType string         `gorm:"type:varchar(100)"`
	UploadedBy  uuid.UUID      `gorm:"type:uuid"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (CompanyDocument) TableName() string {
	return "companydocuments"
}

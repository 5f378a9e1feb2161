package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tender struct {
	Id                 uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title              string         `gorm:"type:varchar(255);not null"`
	Entity             string         `gorm:"type:varchar(255);index"`
	Description        string         `gorm:"type:text"`
	ReferenceNumber    string         `gorm:"type:varchar(100);index"`
	EstimatedValue     float64        `gorm:"type:numeric(18,2);default:0"`
	SubmissionDeadline *time.Time     `gorm:"index"`
	CreatedAt          time.Time      `gorm:"autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime"`
	DeletedAt          gorm.DeletedAt `gorm:"index"` // soft delete stands in for the trash collection
}

func (Tender) TableName() string {
	return "tenders"
}

type TenderItem struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenderId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:text;not null"`
	Quantity    float64   `gorm:"type:numeric(18,3);default:1"`
	UnitCost    float64   `gorm:"type:numeric(18,2);default:0"`
	UnitPrice   float64   `gorm:"type:numeric(18,2);default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (TenderItem) TableName() string {
	return "tender_items"
}

type CompetitorPrice struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenderId       uuid.UUID `gorm:"type:uuid;not null;index"`
	CompetitorName string    `gorm:"type:varchar(255);not null"`
	TotalPrice     float64   `gorm:"type:numeric(18,2);not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (CompetitorPrice) TableName() string {
	return "competitor_prices"
}

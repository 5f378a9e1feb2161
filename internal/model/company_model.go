package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Company struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string         `gorm:"type:varchar(255);not null"`
	TaxNumber string         `gorm:"type:varchar(50)"`
	Phone     string         `gorm:"type:varchar(50)"`
	Email     string         `gorm:"type:varchar(255)"`
	Address   string         `gorm:"type:text"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Company) TableName() string {
	return "companies"
}

type Customer struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string         `gorm:"type:varchar(255);not null"`
	ContactPerson string         `gorm:"type:varchar(255)"`
	Phone         string         `gorm:"type:varchar(50)"`
	Email         string         `gorm:"type:varchar(255)"`
	Address       string         `gorm:"type:text"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Customer) TableName() string {
	return "customers"
}

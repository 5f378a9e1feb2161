package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string         `gorm:"type:varchar(255);not null"`
	Email        string         `gorm:"type:varchar(255);unique;not null"`
	Role         string         `gorm:"type:varchar(20);not null;default:'employee'"`
	PasswordHash string         `gorm:"type:varchar(255);not null"`
	Active       bool           `gorm:"default:true"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

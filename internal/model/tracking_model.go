package model

import (
	"time"

	"github.com/google/uuid"
)

// TrackingEntry has no unique index on tender_id on purpose: the legacy store
// could not enforce one either, and the dedup maintenance routine owns the
// invariant instead.
type TrackingEntry struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenderId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Stage         string    `gorm:"type:varchar(20);not null;index"`
	Position      int       `gorm:"default:0"`
	LastMovedNote string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime;index"`
}

func (TrackingEntry) TableName() string {
	return "tracking_entries"
}

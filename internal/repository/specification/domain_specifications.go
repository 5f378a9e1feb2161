package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByTenderID filters join records by their tender.
type ByTenderID struct {
	TenderID uuid.UUID
}

func (s ByTenderID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tender_id = ?", s.TenderID)
}

// ByStage filters tracking entries by pipeline stage.
type ByStage struct {
	Stage string
}

func (s ByStage) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("stage = ?", s.Stage)
}

// ByEmployeeID filters by owning employee.
type ByEmployeeID struct {
	EmployeeID uuid.UUID
}

func (s ByEmployeeID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("employee_id = ?", s.EmployeeID)
}

// ByDate filters snapshots by their YYYY-MM-DD date string.
type ByDate struct {
	Date string
}

func (s ByDate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date = ?", s.Date)
}

// ActiveOnly keeps rows whose status column marks them as active.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", "active")
}

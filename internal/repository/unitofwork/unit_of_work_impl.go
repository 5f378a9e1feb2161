package unitofwork

import (
	"context"
	"fmt"

	"tenderdesk-be/internal/repository/contract"
	"tenderdesk-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil when operating outside one
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) TenderRepository() contract.TenderRepository {
	return implementation.NewTenderRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TrackingEntryRepository() contract.TrackingEntryRepository {
	return implementation.NewTrackingEntryRepository(u.getDB())
}

func (u *UnitOfWorkImpl) LiveSessionRepository() contract.LiveSessionRepository {
	return implementation.NewLiveSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SnapshotRepository() contract.SnapshotRepository {
	return implementation.NewSnapshotRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EmployeeRepository() contract.EmployeeRepository {
	return implementation.NewEmployeeRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CompanyRepository() contract.CompanyRepository {
	return implementation.NewCompanyRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CustomerRepository() contract.CustomerRepository {
	return implementation.NewCustomerRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ActivityLogRepository() contract.ActivityLogRepository {
	return implementation.NewActivityLogRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CompanyDocumentRepository() contract.CompanyDocumentRepository {
	return implementation.NewCompanyDocumentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) StudyRepository() contract.StudyRepository {
	return implementation.NewStudyRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SettingsRepository() contract.SettingsRepository {
	return implementation.NewSettingsRepository(u.getDB())
}

package unitofwork

import (
	"context"

	"tenderdesk-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	TenderRepository() contract.TenderRepository
	TrackingEntryRepository() contract.TrackingEntryRepository
	LiveSessionRepository() contract.LiveSessionRepository
	SnapshotRepository() contract.SnapshotRepository

	EmployeeRepository() contract.EmployeeRepository
	CompanyRepository() contract.CompanyRepository
	CustomerRepository() contract.CustomerRepository
	ActivityLogRepository() contract.ActivityLogRepository
	CompanyDocumentRepository() contract.CompanyDocumentRepository
	StudyRepository() contract.StudyRepository
	SettingsRepository() contract.SettingsRepository
}

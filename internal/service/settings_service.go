package service

import (
	"context"
	"encoding/json"
	"time"

	"tenderdesk-be/internal/dto"
	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/repository/unitofwork"
)

// SettingsUpdatedMessage notifies the scheduler that its configuration
// changed and must be re-read.
type SettingsUpdatedMessage struct {
	UpdatedAt time.Time `json:"updated_at"`
}

type ISettingsService interface {
	Get(ctx context.Context) (*dto.SchedulerSettingsResponse, error)
	Update(ctx context.Context, req *dto.SchedulerSettingsRequest) (*dto.SchedulerSettingsResponse, error)
}

type settingsService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	defaults         entity.SchedulerSettings
}

func NewSettingsService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	defaultSnapshotTime, defaultResetTime string,
) ISettingsService {
	return &settingsService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		defaults: entity.SchedulerSettings{
			ResetTime:       defaultResetTime,
			SnapshotTime:    defaultSnapshotTime,
			EnableAutoReset: true,
			EnableSnapshot:  true,
		},
	}
}

// Get returns the stored settings, or the defaults when no row exists yet.
func (s *settingsService) Get(ctx context.Context) (*dto.SchedulerSettingsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	settings, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &s.defaults
	}
	return toSettingsResponse(settings), nil
}

func (s *settingsService) Update(ctx context.Context, req *dto.SchedulerSettingsRequest) (*dto.SchedulerSettingsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	settings := &entity.SchedulerSettings{
		ResetTime:       req.ResetTime,
		SnapshotTime:    req.SnapshotTime,
		EnableAutoReset: req.EnableAutoReset,
		EnableSnapshot:  req.EnableSnapshot,
		UpdatedAt:       time.Now(),
	}
	if err := uow.SettingsRepository().Save(ctx, settings); err != nil {
		return nil, err
	}

	// nudge the scheduler; it re-reads from the repository on receipt
	payload, err := json.Marshal(SettingsUpdatedMessage{UpdatedAt: settings.UpdatedAt})
	if err == nil {
		_ = s.publisherService.Publish(ctx, payload)
	}

	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s *entity.SchedulerSettings) *dto.SchedulerSettingsResponse {
	return &dto.SchedulerSettingsResponse{
		ResetTime:       s.ResetTime,
		SnapshotTime:    s.SnapshotTime,
		EnableAutoReset: s.EnableAutoReset,
		EnableSnapshot:  s.EnableSnapshot,
		UpdatedAt:       s.UpdatedAt,
	}
}

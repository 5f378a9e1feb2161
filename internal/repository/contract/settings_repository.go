package contract

import (
	"context"

	"tenderdesk-be/internal/entity"
)

// SettingsRepository owns the single scheduler_settings row.
type SettingsRepository interface {
	// Get returns the current settings, or nil when no row exists yet.
	Get(ctx context.Context) (*entity.SchedulerSettings, error)
	Save(ctx context.Context, settings *entity.SchedulerSettings) error
}

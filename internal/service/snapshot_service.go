package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tenderdesk-be/internal/config"
	"tenderdesk-be/internal/dto"
	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/pkg/logger"
	"tenderdesk-be/internal/pkg/mailer"
	"tenderdesk-be/internal/repository/contract"
	"tenderdesk-be/internal/repository/specification"
	"tenderdesk-be/pkg/events"
	"tenderdesk-be/pkg/lock"
	"tenderdesk-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

const (
	snapshotLockTTL    = 10 * time.Minute
	snapshotRetryDelay = 15 * time.Minute
	dedupStartDelay    = 2 * time.Second
	dedupInterval      = 30 * time.Minute
	fireDriftWarning   = 5 * time.Second
)

// SnapshotService captures one immutable time-tracking snapshot per employee
// per day. A single timer arms for the configured snapshot time; after each
// run (or failure retry) it re-arms for the next day. Constructed once and
// injected, never a package singleton.
type SnapshotService struct {
	snapshots    contract.SnapshotRepository
	sessions     contract.LiveSessionRepository
	employees    contract.EmployeeRepository
	activity     contract.ActivityLogRepository
	settingsRepo contract.SettingsRepository

	locker         lock.Locker
	pubSub         *gochannel.GoChannel
	settingsTopic  string
	emailService   mailer.IEmailService
	eventPublisher EventPublisher
	cfg            config.SnapshotConfig
	logger         logger.ILogger

	mu           sync.Mutex
	timer        *time.Timer
	retryTimer   *time.Timer
	expectedFire time.Time
	running      bool // in-process guard against overlapping runs
	destroyed    bool

	cancel context.CancelFunc
}

func NewSnapshotService(
	snapshots contract.SnapshotRepository,
	sessions contract.LiveSessionRepository,
	employees contract.EmployeeRepository,
	activity contract.ActivityLogRepository,
	settingsRepo contract.SettingsRepository,
	locker lock.Locker,
	pubSub *gochannel.GoChannel,
	settingsTopic string,
	emailService mailer.IEmailService,
	eventPublisher EventPublisher,
	cfg config.SnapshotConfig,
	log logger.ILogger,
) *SnapshotService {
	return &SnapshotService{
		snapshots:      snapshots,
		sessions:       sessions,
		employees:      employees,
		activity:       activity,
		settingsRepo:   settingsRepo,
		locker:         locker,
		pubSub:         pubSub,
		settingsTopic:  settingsTopic,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		cfg:            cfg,
		logger:         log,
	}
}

// Start arms the scheduler and begins the maintenance loops. The settings
// subscription re-arms the timer whenever the configuration row changes.
func (s *SnapshotService) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	if s.pubSub != nil {
		messages, err := s.pubSub.Subscribe(ctx, s.settingsTopic)
		if err != nil {
			cancel()
			return err
		}
		go func() {
			for msg := range messages {
				msg.Ack()
				s.logger.Info("SnapshotService", "Settings changed, re-arming scheduler", nil)
				s.arm(ctx)
			}
		}()
	}

	s.arm(ctx)
	go s.dedupLoop(ctx)

	return nil
}

// Destroy cancels all timers and loops. Safe to call more than once.
func (s *SnapshotService) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destroyed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.retryTimer != nil {
		s.retryTimer.Stop()
		s.retryTimer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// arm reads the current settings and schedules the next firing. A disabled
// scheduler stops the timer; enabling again through a settings update
// restarts it.
func (s *SnapshotService) arm(ctx context.Context) {
	settings := s.loadSettings(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if !settings.EnableSnapshot {
		s.logger.Info("SnapshotService", "Snapshot scheduler disabled by settings", nil)
		return
	}

	now := time.Now()
	fireAt, err := nextOccurrence(now, settings.SnapshotTime)
	if err != nil {
		s.logger.Error("SnapshotService", "Invalid snapshot time in settings, falling back to default", map[string]interface{}{
			"snapshot_time": settings.SnapshotTime,
			"error":         err.Error(),
		})
		fireAt, _ = nextOccurrence(now, s.cfg.DefaultSnapshotTime)
	}

	s.expectedFire = fireAt
	s.timer = time.AfterFunc(fireAt.Sub(now), func() { s.fire(ctx) })
	s.logger.Info("SnapshotService", "Scheduler armed", map[string]interface{}{
		"fire_at": fireAt.Format(time.RFC3339),
	})
}

func (s *SnapshotService) fire(ctx context.Context) {
	now := time.Now()

	s.mu.Lock()
	expected := s.expectedFire
	s.mu.Unlock()

	// Post-hoc drift check: process pauses or clock slews make AfterFunc fire
	// late, and a late snapshot can land on the wrong side of midnight.
	if drift := now.Sub(expected); drift > fireDriftWarning || drift < -fireDriftWarning {
		s.logger.Warn("SnapshotService", "Timer fired off schedule", map[string]interface{}{
			"expected": expected.Format(time.RFC3339),
			"actual":   now.Format(time.RFC3339),
			"drift":    drift.String(),
		})
	}

	_, err := s.runForDate(ctx, now, false, entity.SnapshotTypeScheduled)
	if err != nil {
		s.logger.Error("SnapshotService", "Scheduled snapshot run failed, retrying once", map[string]interface{}{
			"error":       err.Error(),
			"retry_after": snapshotRetryDelay.String(),
		})
		s.scheduleRetry(ctx)
	}

	// The next-day arm is independent of run success.
	s.arm(ctx)
}

func (s *SnapshotService) scheduleRetry(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return
	}
	if s.retryTimer != nil {
		s.retryTimer.Stop()
	}
	s.retryTimer = time.AfterFunc(snapshotRetryDelay, func() {
		if _, err := s.runForDate(ctx, time.Now(), false, entity.SnapshotTypeScheduled); err != nil {
			s.logger.Error("SnapshotService", "Snapshot retry failed, giving up until next arm", map[string]interface{}{
				"error": err.Error(),
			})
		}
	})
}

func (s *SnapshotService) dedupLoop(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(dedupStartDelay):
	}
	s.RemoveDuplicateSnapshots(ctx)

	ticker := time.NewTicker(dedupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RemoveDuplicateSnapshots(ctx)
		}
	}
}

// RunNow is the manual trigger. Force bypasses the one-per-day guard.
func (s *SnapshotService) RunNow(ctx context.Context, force bool) (*dto.RunSnapshotResponse, error) {
	return s.runForDate(ctx, time.Now(), force, entity.SnapshotTypeManual)
}

func (s *SnapshotService) runForDate(ctx context.Context, now time.Time, force bool, snapshotType string) (*dto.RunSnapshotResponse, error) {
	date := now.Format("2006-01-02")

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil, fmt.Errorf("snapshot run already in progress")
	}
	s.running = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	release, acquired := s.locker.Acquire(ctx, "snapshot:"+date, snapshotLockTTL)
	if !acquired {
		s.logger.Info("SnapshotService", "Another instance holds the snapshot lock, skipping", map[string]interface{}{"date": date})
		return &dto.RunSnapshotResponse{Date: date}, nil
	}
	defer release()

	settings := s.loadSettings(ctx)
	summary, err := s.captureAll(ctx, now, settings, force, snapshotType)
	if err != nil {
		return nil, err
	}

	s.logger.Info("SnapshotService", "Snapshot run completed", map[string]interface{}{
		"date":     date,
		"created":  summary.SnapshotsCreated,
		"absences": summary.AbsencesRecorded,
		"skipped":  summary.SkippedExisting,
		"failures": summary.Failures,
	})

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, events.New(events.TypeSnapshotRunCompleted, map[string]interface{}{
			"date":     date,
			"created":  summary.SnapshotsCreated,
			"absences": summary.AbsencesRecorded,
		}))
	}

	if s.emailService != nil && s.cfg.SummaryRecipient != "" {
		mailSummary := mailer.RunSummary{
			Date:             date,
			SnapshotsCreated: summary.SnapshotsCreated,
			AbsencesRecorded: summary.AbsencesRecorded,
			SkippedExisting:  summary.SkippedExisting,
			Failures:         summary.Failures,
		}
		if err := s.emailService.SendSnapshotSummary(s.cfg.SummaryRecipient, mailSummary); err != nil {
			s.logger.Warn("SnapshotService", "Failed to send run summary mail", map[string]interface{}{"error": err.Error()})
		}
	}

	return summary, nil
}

// captureAll walks every live session, then fills in absences for employees
// who left no trace today. Per-employee failures are logged and counted, the
// rest of the batch continues.
func (s *SnapshotService) captureAll(ctx context.Context, now time.Time, settings *entity.SchedulerSettings, force bool, snapshotType string) (*dto.RunSnapshotResponse, error) {
	date := now.Format("2006-01-02")
	summary := &dto.RunSnapshotResponse{Date: date}

	sessions, err := s.sessions.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading live sessions: %w", err)
	}

	captured := make(map[uuid.UUID]bool)

	for _, session := range sessions {
		if session.SessionStart != nil && !sameDay(*session.SessionStart, now) {
			// stale session from a previous day, not today's work
			continue
		}

		seconds, ok := elapsedSeconds(session, now, settings.ResetTime)
		if !ok {
			continue
		}

		created, err := s.writeSnapshot(ctx, &entity.Snapshot{
			Id:           uuid.New(),
			EmployeeId:   session.EmployeeId,
			EmployeeName: session.EmployeeName,
			Date:         date,
			TotalSeconds: seconds,
			Percentage:   utils.WorkdayPercentage(seconds),
			Duration:     utils.FormatHMS(seconds),
			Status:       entity.SnapshotStatusCompleted,
			SnapshotType: snapshotType,
			CreatedAt:    now,
		}, force)
		if err != nil {
			s.logger.Error("SnapshotService", "Failed to capture snapshot", map[string]interface{}{
				"employee_id": session.EmployeeId.String(),
				"error":       err.Error(),
			})
			summary.Failures++
			continue
		}
		captured[session.EmployeeId] = true
		if created {
			summary.SnapshotsCreated++
		} else {
			summary.SkippedExisting++
		}
	}

	if err := s.recordAbsences(ctx, now, summary, captured, force, snapshotType); err != nil {
		return nil, err
	}

	return summary, nil
}

func (s *SnapshotService) recordAbsences(ctx context.Context, now time.Time, summary *dto.RunSnapshotResponse, captured map[uuid.UUID]bool, force bool, snapshotType string) error {
	// Absence snapshots are skipped on the weekly holiday.
	if now.Weekday() == s.cfg.HolidayWeekday {
		s.logger.Info("SnapshotService", "Holiday, skipping absence detection", map[string]interface{}{
			"weekday": now.Weekday().String(),
		})
		return nil
	}

	date := now.Format("2006-01-02")

	allEmployees, err := s.employees.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("loading employees: %w", err)
	}

	active := s.activeEmployeeIds(ctx, now)

	for _, employee := range allEmployees {
		if !employee.Active || captured[employee.Id] || active[employee.Id] {
			continue
		}

		created, err := s.writeSnapshot(ctx, &entity.Snapshot{
			Id:           uuid.New(),
			EmployeeId:   employee.Id,
			EmployeeName: employee.Name,
			Date:         date,
			TotalSeconds: 0,
			Percentage:   0,
			Duration:     utils.FormatHMS(0),
			Status:       entity.SnapshotStatusAbsent,
			IsAbsent:     true,
			SnapshotType: snapshotType,
			CreatedAt:    now,
		}, force)
		if err != nil {
			s.logger.Error("SnapshotService", "Failed to record absence", map[string]interface{}{
				"employee_id": employee.Id.String(),
				"error":       err.Error(),
			})
			summary.Failures++
			continue
		}
		if created {
			summary.AbsencesRecorded++
		} else {
			summary.SkippedExisting++
		}
	}

	return nil
}

// activeEmployeeIds resolves who showed up today, preferring the activity
// log. If that query fails, live-session presence is the fallback signal so
// a logging outage cannot mark the whole company absent.
func (s *SnapshotService) activeEmployeeIds(ctx context.Context, now time.Time) map[uuid.UUID]bool {
	active := make(map[uuid.UUID]bool)

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	logs, err := s.activity.FindAll(ctx, specification.CreatedBetween{From: dayStart, To: dayStart.Add(24 * time.Hour)})
	if err == nil {
		for _, l := range logs {
			active[l.EmployeeId] = true
		}
		return active
	}

	s.logger.Warn("SnapshotService", "Activity query failed, falling back to session presence", map[string]interface{}{
		"error": err.Error(),
	})
	sessions, err := s.sessions.FindAll(ctx)
	if err != nil {
		return active
	}
	for _, sess := range sessions {
		if sess.SessionStart != nil && sameDay(*sess.SessionStart, now) {
			active[sess.EmployeeId] = true
		}
	}
	return active
}

// writeSnapshot applies the check-then-write duplicate guard. Returns
// (false, nil) when a snapshot for the pair already exists and force is off.
func (s *SnapshotService) writeSnapshot(ctx context.Context, snapshot *entity.Snapshot, force bool) (bool, error) {
	if !force {
		existing, err := s.snapshots.FindOne(ctx,
			specification.ByEmployeeID{EmployeeID: snapshot.EmployeeId},
			specification.ByDate{Date: snapshot.Date},
		)
		if err != nil {
			return false, err
		}
		if existing != nil {
			return false, nil
		}
	}
	if err := s.snapshots.Create(ctx, snapshot); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveDuplicateSnapshots keeps the newest snapshot per (employee, date)
// and deletes the rest. Individual delete failures are logged and skipped.
func (s *SnapshotService) RemoveDuplicateSnapshots(ctx context.Context) int {
	snapshots, err := s.snapshots.FindAll(ctx)
	if err != nil {
		s.logger.Error("SnapshotService", "Dedup sweep failed to load snapshots", map[string]interface{}{"error": err.Error()})
		return 0
	}

	type key struct {
		employee uuid.UUID
		date     string
	}

	keep := make(map[key]*entity.Snapshot)
	duplicates := make([]*entity.Snapshot, 0)
	for _, snap := range snapshots {
		k := key{employee: snap.EmployeeId, date: snap.Date}
		current, seen := keep[k]
		if !seen {
			keep[k] = snap
			continue
		}
		if snap.CreatedAt.After(current.CreatedAt) {
			duplicates = append(duplicates, current)
			keep[k] = snap
		} else {
			duplicates = append(duplicates, snap)
		}
	}

	removed := 0
	for _, dup := range duplicates {
		if err := s.snapshots.Delete(ctx, dup.Id); err != nil {
			s.logger.Warn("SnapshotService", "Failed to delete duplicate snapshot", map[string]interface{}{
				"snapshot_id": dup.Id.String(),
				"error":       err.Error(),
			})
			continue
		}
		removed++
	}

	if removed > 0 {
		s.logger.Info("SnapshotService", "Dedup sweep removed duplicates", map[string]interface{}{"removed": removed})
	}
	return removed
}

// GetSnapshots lists stored snapshots, newest first, optionally per employee.
func (s *SnapshotService) GetSnapshots(ctx context.Context, employeeId *uuid.UUID, date string) ([]*dto.SnapshotResponse, error) {
	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if employeeId != nil {
		specs = append(specs, specification.ByEmployeeID{EmployeeID: *employeeId})
	}
	if date != "" {
		specs = append(specs, specification.ByDate{Date: date})
	}

	snapshots, err := s.snapshots.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SnapshotResponse, 0, len(snapshots))
	for _, snap := range snapshots {
		result = append(result, &dto.SnapshotResponse{
			Id:           snap.Id,
			EmployeeId:   snap.EmployeeId,
			EmployeeName: snap.EmployeeName,
			Date:         snap.Date,
			TotalSeconds: snap.TotalSeconds,
			Duration:     snap.Duration,
			Percentage:   snap.Percentage,
			Type:         snap.SnapshotType,
			Status:       snap.Status,
			IsAbsent:     snap.IsAbsent,
			CreatedAt:    snap.CreatedAt,
		})
	}
	return result, nil
}

func (s *SnapshotService) loadSettings(ctx context.Context) *entity.SchedulerSettings {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Warn("SnapshotService", "Failed to read scheduler settings, using defaults", map[string]interface{}{"error": err.Error()})
	}
	if settings == nil {
		return &entity.SchedulerSettings{
			ResetTime:       s.cfg.DefaultResetTime,
			SnapshotTime:    s.cfg.DefaultSnapshotTime,
			EnableAutoReset: true,
			EnableSnapshot:  true,
		}
	}
	return settings
}

// elapsedSeconds resolves how long the employee worked today. The strategies
// run in order and the first usable answer wins:
//  1. the session's accumulated counter, when positive
//  2. wall time since a session start stamped today
//  3. the reported duration field
//  4. wall time since the most recent daily reset
func elapsedSeconds(session *entity.LiveSession, now time.Time, resetTime string) (int64, bool) {
	if session.TotalSeconds > 0 {
		return session.TotalSeconds, true
	}
	if session.SessionStart != nil && sameDay(*session.SessionStart, now) {
		return int64(now.Sub(*session.SessionStart).Seconds()), true
	}
	if session.DurationSeconds != nil && *session.DurationSeconds > 0 {
		return *session.DurationSeconds, true
	}
	anchor, err := lastResetBefore(now, resetTime)
	if err != nil {
		return 0, false
	}
	return int64(now.Sub(anchor).Seconds()), true
}

// nextOccurrence returns the next time-of-day hit for "HH:MM": today when
// still ahead, otherwise tomorrow.
func nextOccurrence(now time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	candidate := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	if !candidate.After(now) {
		candidate = candidate.Add(24 * time.Hour)
	}
	return candidate, nil
}

// lastResetBefore returns the most recent daily reset at or before now:
// today's reset when already past, otherwise yesterday's.
func lastResetBefore(now time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	anchor := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	if anchor.After(now) {
		anchor = anchor.Add(-24 * time.Hour)
	}
	return anchor, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

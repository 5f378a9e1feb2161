package service

import (
	"context"
	"testing"
	"time"

	"tenderdesk-be/internal/config"
	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/repository/specification"

	"github.com/google/uuid"
)

// --- fakes ---

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

type fakeLocker struct {
	denied bool
}

func (f *fakeLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), bool) {
	if f.denied {
		return nil, false
	}
	return func() {}, true
}

type fakeSnapshotRepo struct {
	items     []*entity.Snapshot
	createErr error
}

func matchSnapshot(snap *entity.Snapshot, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByEmployeeID:
			if snap.EmployeeId != sp.EmployeeID {
				return false
			}
		case specification.ByDate:
			if snap.Date != sp.Date {
				return false
			}
		}
	}
	return true
}

func (f *fakeSnapshotRepo) Create(ctx context.Context, snapshot *entity.Snapshot) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *snapshot
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakeSnapshotRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, snap := range f.items {
		if snap.Id == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeSnapshotRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Snapshot, error) {
	for _, snap := range f.items {
		if matchSnapshot(snap, specs) {
			return snap, nil
		}
	}
	return nil, nil
}

func (f *fakeSnapshotRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Snapshot, error) {
	result := make([]*entity.Snapshot, 0)
	for _, snap := range f.items {
		if matchSnapshot(snap, specs) {
			result = append(result, snap)
		}
	}
	return result, nil
}

func (f *fakeSnapshotRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	found, _ := f.FindAll(ctx, specs...)
	return int64(len(found)), nil
}

type fakeSessionRepo struct {
	items []*entity.LiveSession
}

func (f *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LiveSession, error) {
	if len(f.items) == 0 {
		return nil, nil
	}
	return f.items[0], nil
}

func (f *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LiveSession, error) {
	return f.items, nil
}

type fakeEmployeeRepo struct {
	items []*entity.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e *entity.Employee) error { return nil }
func (f *fakeEmployeeRepo) Update(ctx context.Context, e *entity.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id uuid.UUID) error       { return nil }
func (f *fakeEmployeeRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) FindByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Employee, error) {
	return f.items, nil
}
func (f *fakeEmployeeRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.items)), nil
}

type fakeActivityRepo struct {
	items   []*entity.ActivityLog
	findErr error
}

func (f *fakeActivityRepo) Create(ctx context.Context, l *entity.ActivityLog) error { return nil }
func (f *fakeActivityRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ActivityLog, error) {
	return nil, nil
}
func (f *fakeActivityRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityLog, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.items, nil
}
func (f *fakeActivityRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.items)), nil
}

type fakeSettingsRepo struct {
	settings *entity.SchedulerSettings
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*entity.SchedulerSettings, error) {
	return f.settings, nil
}
func (f *fakeSettingsRepo) Save(ctx context.Context, s *entity.SchedulerSettings) error {
	f.settings = s
	return nil
}

// --- helpers ---

func newTestSnapshotService(
	snapshots *fakeSnapshotRepo,
	sessions *fakeSessionRepo,
	employees *fakeEmployeeRepo,
	activity *fakeActivityRepo,
) *SnapshotService {
	return NewSnapshotService(
		snapshots,
		sessions,
		employees,
		activity,
		&fakeSettingsRepo{},
		&fakeLocker{},
		nil, // no settings subscription in unit tests
		"scheduler_settings",
		nil, // no mail
		nil, // no event bus
		config.SnapshotConfig{
			DefaultSnapshotTime: "23:55",
			DefaultResetTime:    "04:00",
			HolidayWeekday:      time.Friday,
		},
		noopLogger{},
	)
}

func employee(name string) *entity.Employee {
	return &entity.Employee{Id: uuid.New(), Name: name, Active: true}
}

// a Monday, well clear of the Friday holiday
var testNow = time.Date(2024, 3, 11, 23, 55, 0, 0, time.UTC)

// --- tests ---

func TestElapsedSecondsStrategyChain(t *testing.T) {
	now := testNow
	startToday := now.Add(-2 * time.Hour)
	startYesterday := now.Add(-26 * time.Hour)
	reported := int64(1800)

	tests := []struct {
		name    string
		session *entity.LiveSession
		want    int64
	}{
		{
			"accumulated counter wins",
			&entity.LiveSession{TotalSeconds: 3600, SessionStart: &startToday, DurationSeconds: &reported},
			3600,
		},
		{
			"session start today",
			&entity.LiveSession{SessionStart: &startToday},
			7200,
		},
		{
			"reported duration",
			&entity.LiveSession{DurationSeconds: &reported},
			1800,
		},
		{
			"reset anchor fallback",
			&entity.LiveSession{},
			int64(now.Sub(time.Date(2024, 3, 11, 4, 0, 0, 0, time.UTC)).Seconds()),
		},
		{
			"yesterday start skips to reported duration",
			&entity.LiveSession{SessionStart: &startYesterday, DurationSeconds: &reported},
			1800,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := elapsedSeconds(tt.session, now, "04:00")
			if !ok {
				t.Fatal("expected a usable elapsed value")
			}
			if got != tt.want {
				t.Errorf("elapsedSeconds() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNextOccurrence(t *testing.T) {
	now := time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC)

	later, err := nextOccurrence(now, "23:55")
	if err != nil {
		t.Fatal(err)
	}
	if later.Day() != 11 || later.Hour() != 23 || later.Minute() != 55 {
		t.Errorf("future time today should fire today, got %v", later)
	}

	tomorrow, err := nextOccurrence(now, "04:00")
	if err != nil {
		t.Fatal(err)
	}
	if tomorrow.Day() != 12 {
		t.Errorf("past time should fire tomorrow, got %v", tomorrow)
	}

	if _, err := nextOccurrence(now, "not-a-time"); err == nil {
		t.Error("expected parse error for malformed time")
	}
}

func TestLastResetBefore(t *testing.T) {
	morning := time.Date(2024, 3, 11, 2, 0, 0, 0, time.UTC)
	anchor, err := lastResetBefore(morning, "04:00")
	if err != nil {
		t.Fatal(err)
	}
	if anchor.Day() != 10 {
		t.Errorf("before today's reset the anchor is yesterday, got %v", anchor)
	}

	evening := time.Date(2024, 3, 11, 22, 0, 0, 0, time.UTC)
	anchor, err = lastResetBefore(evening, "04:00")
	if err != nil {
		t.Fatal(err)
	}
	if anchor.Day() != 11 || anchor.Hour() != 4 {
		t.Errorf("after today's reset the anchor is today, got %v", anchor)
	}
}

func TestRunCreatesSnapshotsAndAbsences(t *testing.T) {
	working := employee("Working")
	absent1 := employee("Absent One")
	absent2 := employee("Absent Two")
	absent3 := employee("Absent Three")

	snapshots := &fakeSnapshotRepo{}
	sessions := &fakeSessionRepo{items: []*entity.LiveSession{
		{Id: uuid.New(), EmployeeId: working.Id, EmployeeName: working.Name, TotalSeconds: 3600},
	}}
	employees := &fakeEmployeeRepo{items: []*entity.Employee{working, absent1, absent2, absent3}}
	activity := &fakeActivityRepo{items: []*entity.ActivityLog{
		{EmployeeId: working.Id, Action: "tender_created", CreatedAt: testNow.Add(-time.Hour)},
	}}

	svc := newTestSnapshotService(snapshots, sessions, employees, activity)

	res, err := svc.runForDate(context.Background(), testNow, false, entity.SnapshotTypeScheduled)
	if err != nil {
		t.Fatal(err)
	}

	if res.SnapshotsCreated != 1 {
		t.Errorf("SnapshotsCreated = %d, want 1", res.SnapshotsCreated)
	}
	if res.AbsencesRecorded != 3 {
		t.Errorf("AbsencesRecorded = %d, want 3", res.AbsencesRecorded)
	}
	if len(snapshots.items) != 4 {
		t.Fatalf("stored %d snapshots, want 4", len(snapshots.items))
	}

	var real *entity.Snapshot
	for _, snap := range snapshots.items {
		if snap.EmployeeId == working.Id {
			real = snap
		} else if !snap.IsAbsent {
			t.Errorf("employee %s should have an absence snapshot", snap.EmployeeName)
		}
	}
	if real == nil {
		t.Fatal("no snapshot stored for the working employee")
	}
	if real.Duration != "01:00:00" {
		t.Errorf("Duration = %q, want 01:00:00", real.Duration)
	}
	if real.Percentage != 12.5 {
		t.Errorf("Percentage = %v, want 12.5", real.Percentage)
	}
}

func TestRunSkipsStaleSessions(t *testing.T) {
	emp := employee("Stale")
	yesterdayStart := testNow.Add(-26 * time.Hour)

	snapshots := &fakeSnapshotRepo{}
	sessions := &fakeSessionRepo{items: []*entity.LiveSession{
		{Id: uuid.New(), EmployeeId: emp.Id, EmployeeName: emp.Name, SessionStart: &yesterdayStart, TotalSeconds: 5000},
	}}
	employees := &fakeEmployeeRepo{items: []*entity.Employee{emp}}
	activity := &fakeActivityRepo{}

	svc := newTestSnapshotService(snapshots, sessions, employees, activity)

	res, err := svc.runForDate(context.Background(), testNow, false, entity.SnapshotTypeScheduled)
	if err != nil {
		t.Fatal(err)
	}

	if res.SnapshotsCreated != 0 {
		t.Errorf("stale session must not produce a snapshot, created %d", res.SnapshotsCreated)
	}
	// no trace today at all, so the employee counts as absent
	if res.AbsencesRecorded != 1 {
		t.Errorf("AbsencesRecorded = %d, want 1", res.AbsencesRecorded)
	}
}

func TestRunDuplicateGuard(t *testing.T) {
	emp := employee("Dup")
	date := testNow.Format("2006-01-02")

	snapshots := &fakeSnapshotRepo{items: []*entity.Snapshot{
		{Id: uuid.New(), EmployeeId: emp.Id, Date: date, TotalSeconds: 100, CreatedAt: testNow.Add(-time.Hour)},
	}}
	sessions := &fakeSessionRepo{items: []*entity.LiveSession{
		{Id: uuid.New(), EmployeeId: emp.Id, EmployeeName: emp.Name, TotalSeconds: 3600},
	}}
	employees := &fakeEmployeeRepo{items: []*entity.Employee{emp}}
	activity := &fakeActivityRepo{items: []*entity.ActivityLog{
		{EmployeeId: emp.Id, CreatedAt: testNow.Add(-time.Hour)},
	}}

	svc := newTestSnapshotService(snapshots, sessions, employees, activity)

	res, err := svc.runForDate(context.Background(), testNow, false, entity.SnapshotTypeScheduled)
	if err != nil {
		t.Fatal(err)
	}
	if res.SnapshotsCreated != 0 || res.SkippedExisting != 1 {
		t.Errorf("guard should skip the existing pair: created=%d skipped=%d", res.SnapshotsCreated, res.SkippedExisting)
	}
	if len(snapshots.items) != 1 {
		t.Errorf("stored %d snapshots, want the original 1", len(snapshots.items))
	}

	// force bypasses the guard
	res, err = svc.runForDate(context.Background(), testNow, true, entity.SnapshotTypeManual)
	if err != nil {
		t.Fatal(err)
	}
	if res.SnapshotsCreated != 1 {
		t.Errorf("force run should write, created=%d", res.SnapshotsCreated)
	}
	if len(snapshots.items) != 2 {
		t.Errorf("stored %d snapshots after force, want 2", len(snapshots.items))
	}
}

func TestRunHolidaySkipsAbsences(t *testing.T) {
	worked := employee("Worked")
	away := employee("Away")
	friday := time.Date(2024, 3, 15, 23, 55, 0, 0, time.UTC)

	snapshots := &fakeSnapshotRepo{}
	sessions := &fakeSessionRepo{items: []*entity.LiveSession{
		{Id: uuid.New(), EmployeeId: worked.Id, EmployeeName: worked.Name, TotalSeconds: 1200},
	}}
	employees := &fakeEmployeeRepo{items: []*entity.Employee{worked, away}}
	activity := &fakeActivityRepo{}

	svc := newTestSnapshotService(snapshots, sessions, employees, activity)

	res, err := svc.runForDate(context.Background(), friday, false, entity.SnapshotTypeScheduled)
	if err != nil {
		t.Fatal(err)
	}
	if res.SnapshotsCreated != 1 {
		t.Errorf("real work still captured on the holiday, created=%d", res.SnapshotsCreated)
	}
	if res.AbsencesRecorded != 0 {
		t.Errorf("absence snapshots must be skipped on the holiday, recorded=%d", res.AbsencesRecorded)
	}
}

func TestRunActivityFallbackToSessions(t *testing.T) {
	present := employee("Present")
	away := employee("Away")
	startToday := testNow.Add(-3 * time.Hour)

	snapshots := &fakeSnapshotRepo{}
	sessions := &fakeSessionRepo{items: []*entity.LiveSession{
		{Id: uuid.New(), EmployeeId: present.Id, EmployeeName: present.Name, SessionStart: &startToday},
	}}
	employees := &fakeEmployeeRepo{items: []*entity.Employee{present, away}}
	activity := &fakeActivityRepo{findErr: context.DeadlineExceeded}

	svc := newTestSnapshotService(snapshots, sessions, employees, activity)

	res, err := svc.runForDate(context.Background(), testNow, false, entity.SnapshotTypeScheduled)
	if err != nil {
		t.Fatal(err)
	}
	if res.SnapshotsCreated != 1 {
		t.Errorf("created=%d, want 1", res.SnapshotsCreated)
	}
	if res.AbsencesRecorded != 1 {
		t.Errorf("fallback presence should leave only the idle employee absent, recorded=%d", res.AbsencesRecorded)
	}
}

func TestRunLockDenied(t *testing.T) {
	emp := employee("Locked Out")

	snapshots := &fakeSnapshotRepo{}
	sessions := &fakeSessionRepo{items: []*entity.LiveSession{
		{Id: uuid.New(), EmployeeId: emp.Id, EmployeeName: emp.Name, TotalSeconds: 900},
	}}
	svc := newTestSnapshotService(snapshots, sessions, &fakeEmployeeRepo{items: []*entity.Employee{emp}}, &fakeActivityRepo{})
	svc.locker = &fakeLocker{denied: true}

	res, err := svc.runForDate(context.Background(), testNow, false, entity.SnapshotTypeScheduled)
	if err != nil {
		t.Fatal(err)
	}
	if res.SnapshotsCreated != 0 || len(snapshots.items) != 0 {
		t.Error("a denied lock must skip the whole run")
	}
}

func TestRemoveDuplicateSnapshots(t *testing.T) {
	emp := employee("Dup")
	date := testNow.Format("2006-01-02")

	oldest := &entity.Snapshot{Id: uuid.New(), EmployeeId: emp.Id, Date: date, CreatedAt: testNow.Add(-2 * time.Hour)}
	newest := &entity.Snapshot{Id: uuid.New(), EmployeeId: emp.Id, Date: date, CreatedAt: testNow}
	otherDay := &entity.Snapshot{Id: uuid.New(), EmployeeId: emp.Id, Date: "2024-03-10", CreatedAt: testNow.Add(-26 * time.Hour)}

	snapshots := &fakeSnapshotRepo{items: []*entity.Snapshot{oldest, newest, otherDay}}
	svc := newTestSnapshotService(snapshots, &fakeSessionRepo{}, &fakeEmployeeRepo{}, &fakeActivityRepo{})

	removed := svc.RemoveDuplicateSnapshots(context.Background())
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}

	remaining := make(map[uuid.UUID]bool)
	for _, snap := range snapshots.items {
		remaining[snap.Id] = true
	}
	if !remaining[newest.Id] {
		t.Error("newest snapshot must survive the sweep")
	}
	if remaining[oldest.Id] {
		t.Error("older duplicate must be deleted")
	}
	if !remaining[otherDay.Id] {
		t.Error("cross-day snapshot is not a duplicate")
	}
}

package service

import (
	"context"
	"testing"
	"time"

	"tenderdesk-be/internal/board"
	"tenderdesk-be/internal/dto"
	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/repository/contract"
	"tenderdesk-be/internal/repository/specification"
	"tenderdesk-be/internal/repository/unitofwork"
	"tenderdesk-be/pkg/events"
	pktNats "tenderdesk-be/pkg/nats"

	"github.com/google/uuid"
)

// --- fakes ---

type fakeTrackingRepo struct {
	items     []*entity.TrackingEntry
	deleteErr map[uuid.UUID]error
}

func (f *fakeTrackingRepo) matches(entry *entity.TrackingEntry, specs []specification.Specification) bool {
	for _, spec := range specs {
		if sp, ok := spec.(specification.ByTenderID); ok && entry.TenderId != sp.TenderID {
			return false
		}
	}
	return true
}

func (f *fakeTrackingRepo) Create(ctx context.Context, entry *entity.TrackingEntry) error {
	cp := *entry
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakeTrackingRepo) Update(ctx context.Context, entry *entity.TrackingEntry) error {
	for i, e := range f.items {
		if e.Id == entry.Id {
			cp := *entry
			f.items[i] = &cp
			return nil
		}
	}
	return nil
}

func (f *fakeTrackingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err, bad := f.deleteErr[id]; bad {
		return err
	}
	for i, e := range f.items {
		if e.Id == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeTrackingRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TrackingEntry, error) {
	for _, e := range f.items {
		if f.matches(e, specs) {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeTrackingRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TrackingEntry, error) {
	result := make([]*entity.TrackingEntry, 0)
	for _, e := range f.items {
		if f.matches(e, specs) {
			result = append(result, e)
		}
	}
	return result, nil
}

func (f *fakeTrackingRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	found, _ := f.FindAll(ctx, specs...)
	return int64(len(found)), nil
}

type fakeTenderRepo struct {
	items []*entity.Tender
}

func (f *fakeTenderRepo) Create(ctx context.Context, tender *entity.Tender) error { return nil }
func (f *fakeTenderRepo) Update(ctx context.Context, tender *entity.Tender) error { return nil }
func (f *fakeTenderRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }

func (f *fakeTenderRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tender, error) {
	for _, spec := range specs {
		if sp, ok := spec.(specification.ByID); ok {
			for _, t := range f.items {
				if t.Id == sp.ID {
					return t, nil
				}
			}
			return nil, nil
		}
	}
	if len(f.items) > 0 {
		return f.items[0], nil
	}
	return nil, nil
}

func (f *fakeTenderRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tender, error) {
	for _, spec := range specs {
		if sp, ok := spec.(specification.ByIDs); ok {
			wanted := make(map[uuid.UUID]bool, len(sp.IDs))
			for _, id := range sp.IDs {
				wanted[id] = true
			}
			result := make([]*entity.Tender, 0)
			for _, t := range f.items {
				if wanted[t.Id] {
					result = append(result, t)
				}
			}
			return result, nil
		}
	}
	return f.items, nil
}

func (f *fakeTenderRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.items)), nil
}

// fakeUnitOfWork panics on repositories the tracking flow never touches.
type fakeUnitOfWork struct {
	unitofwork.UnitOfWork
	tracking *fakeTrackingRepo
	tenders  *fakeTenderRepo
}

func (f *fakeUnitOfWork) TrackingEntryRepository() contract.TrackingEntryRepository {
	return f.tracking
}

func (f *fakeUnitOfWork) TenderRepository() contract.TenderRepository {
	return f.tenders
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type capturingPublisher struct {
	events []events.Event
	err    error
}

func (p *capturingPublisher) Publish(ctx context.Context, event events.Event) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

type capturingBroadcaster struct {
	eventTypes []string
}

func (b *capturingBroadcaster) BroadcastEvent(eventType string, payload interface{}) {
	b.eventTypes = append(b.eventTypes, eventType)
}

type capturingActivity struct {
	actions []string
}

func (a *capturingActivity) Record(ctx context.Context, employeeId uuid.UUID, action, entityType string, entityId *uuid.UUID) {
	a.actions = append(a.actions, action)
}

func (a *capturingActivity) List(ctx context.Context, employeeId *uuid.UUID, limit, offset int) ([]*dto.ActivityLogResponse, error) {
	return nil, nil
}

// --- helpers ---

type trackingFixture struct {
	svc         ITrackingService
	tracking    *fakeTrackingRepo
	tenders     *fakeTenderRepo
	publisher   *capturingPublisher
	broadcaster *capturingBroadcaster
	activity    *capturingActivity
}

func newTrackingFixture() *trackingFixture {
	tracking := &fakeTrackingRepo{}
	tenders := &fakeTenderRepo{}
	publisher := &capturingPublisher{}
	broadcaster := &capturingBroadcaster{}
	activity := &capturingActivity{}

	svc := NewTrackingService(
		&fakeUowFactory{uow: &fakeUnitOfWork{tracking: tracking, tenders: tenders}},
		publisher,
		broadcaster,
		activity,
		board.DefaultThresholds(),
		noopLogger{},
	)
	return &trackingFixture{
		svc:         svc,
		tracking:    tracking,
		tenders:     tenders,
		publisher:   publisher,
		broadcaster: broadcaster,
		activity:    activity,
	}
}

func (f *trackingFixture) addTracked(title string, value float64, stage entity.Stage, createdAt time.Time) *entity.Tender {
	tender := &entity.Tender{
		Id:             uuid.New(),
		Title:          title,
		EstimatedValue: value,
		CreatedAt:      createdAt,
	}
	f.tenders.items = append(f.tenders.items, tender)
	f.tracking.items = append(f.tracking.items, &entity.TrackingEntry{
		Id:        uuid.New(),
		TenderId:  tender.Id,
		Stage:     stage,
		CreatedAt: createdAt,
	})
	return tender
}

// --- tests ---

func TestGetAllTrackedTendersGroupsBoard(t *testing.T) {
	f := newTrackingFixture()
	base := time.Now().Add(-time.Hour)
	f.addTracked("Road works", 2_000_000, entity.StagePending, base)
	f.addTracked("IT supplies", 300_000, entity.StagePending, base.Add(time.Minute))
	f.addTracked("Cleaning contract", 700_000, entity.StageReview, base)

	board, err := f.svc.GetAllTrackedTenders(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}

	if board.Total != 3 {
		t.Errorf("Total = %d, want 3", board.Total)
	}
	if len(board.Pending) != 2 || len(board.Review) != 1 {
		t.Fatalf("pending=%d review=%d, want 2 and 1", len(board.Pending), len(board.Review))
	}
	if board.InProgress == nil || board.Completed == nil {
		t.Error("empty columns must still be present")
	}
	// newest first within a column
	if board.Pending[0].Title != "IT supplies" {
		t.Errorf("Pending[0] = %q, want the newest entry first", board.Pending[0].Title)
	}
	if board.Pending[0].Priority != "low" {
		t.Errorf("300k tender priority = %q, want low", board.Pending[0].Priority)
	}
	if board.Pending[1].Priority != "high" {
		t.Errorf("2M tender priority = %q, want high", board.Pending[1].Priority)
	}
	if board.Review[0].Priority != "medium" {
		t.Errorf("700k tender priority = %q, want medium", board.Review[0].Priority)
	}
}

func TestGetAllTrackedTendersFilter(t *testing.T) {
	f := newTrackingFixture()
	base := time.Now().Add(-time.Hour)
	f.addTracked("Road works", 100, entity.StagePending, base)
	f.addTracked("Cleaning contract", 100, entity.StagePending, base)

	board, err := f.svc.GetAllTrackedTenders(context.Background(), "road")
	if err != nil {
		t.Fatal(err)
	}
	if board.Total != 1 || board.Pending[0].Title != "Road works" {
		t.Errorf("filter should keep only the matching card, got total=%d", board.Total)
	}
}

func TestGetAllTrackedTendersHidesOrphanedEntries(t *testing.T) {
	f := newTrackingFixture()
	f.addTracked("Kept", 100, entity.StagePending, time.Now())
	// entry whose tender is gone
	f.tracking.items = append(f.tracking.items, &entity.TrackingEntry{
		Id:        uuid.New(),
		TenderId:  uuid.New(),
		Stage:     entity.StagePending,
		CreatedAt: time.Now(),
	})

	board, err := f.svc.GetAllTrackedTenders(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if board.Total != 1 {
		t.Errorf("orphaned entry must be hidden, total=%d", board.Total)
	}
}

func TestMoveTenderStage(t *testing.T) {
	f := newTrackingFixture()
	tender := f.addTracked("Road works", 100, entity.StagePending, time.Now())
	employeeId := uuid.New()

	res, err := f.svc.MoveTenderStage(context.Background(), employeeId, &dto.MoveTenderStageRequest{
		TenderId: tender.Id,
		From:     "pending",
		To:       "review",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Stage != "review" {
		t.Errorf("response stage = %q, want review", res.Stage)
	}

	entry := f.tracking.items[0]
	if entry.Stage != entity.StageReview {
		t.Errorf("stored stage = %q, want review", entry.Stage)
	}
	if entry.LastMovedNote != "moved from pending to review" {
		t.Errorf("default note = %q", entry.LastMovedNote)
	}

	if len(f.publisher.events) != 1 || f.publisher.events[0].EventType() != events.TypeTenderStageMoved {
		t.Error("expected a TENDER_STAGE_MOVED event")
	}
	if len(f.broadcaster.eventTypes) != 1 || f.broadcaster.eventTypes[0] != "board_updated" {
		t.Error("expected a board_updated broadcast")
	}
	if len(f.activity.actions) != 1 || f.activity.actions[0] != "tender_stage_moved" {
		t.Error("expected a tender_stage_moved activity record")
	}

	// cache must have been invalidated: the fresh board shows the new stage
	board, err := f.svc.GetAllTrackedTenders(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if len(board.Review) != 1 {
		t.Errorf("board after move: review=%d, want 1", len(board.Review))
	}
}

func TestMoveTenderStageKeepsExplicitNote(t *testing.T) {
	f := newTrackingFixture()
	tender := f.addTracked("Road works", 100, entity.StagePending, time.Now())

	_, err := f.svc.MoveTenderStage(context.Background(), uuid.New(), &dto.MoveTenderStageRequest{
		TenderId: tender.Id,
		From:     "pending",
		To:       "completed",
		Note:     "won the award",
	})
	if err != nil {
		t.Fatal(err)
	}
	if f.tracking.items[0].LastMovedNote != "won the award" {
		t.Errorf("note = %q, want the explicit one", f.tracking.items[0].LastMovedNote)
	}
}

func TestMoveTenderStageErrors(t *testing.T) {
	f := newTrackingFixture()
	tender := f.addTracked("Road works", 100, entity.StagePending, time.Now())

	if _, err := f.svc.MoveTenderStage(context.Background(), uuid.New(), &dto.MoveTenderStageRequest{
		TenderId: tender.Id, From: "pending", To: "archived",
	}); err == nil {
		t.Error("unknown stage must be rejected")
	}

	if _, err := f.svc.MoveTenderStage(context.Background(), uuid.New(), &dto.MoveTenderStageRequest{
		TenderId: uuid.New(), From: "pending", To: "review",
	}); err == nil {
		t.Error("untracked tender must be rejected")
	}
}

// When NATS is down the container wires a disconnected publisher; moves must
// still land locally instead of panicking on the dead bus.
func TestMoveTenderStageWithDisconnectedBus(t *testing.T) {
	tracking := &fakeTrackingRepo{}
	tenders := &fakeTenderRepo{}

	var pub *pktNats.Publisher
	svc := NewTrackingService(
		&fakeUowFactory{uow: &fakeUnitOfWork{tracking: tracking, tenders: tenders}},
		pub,
		&capturingBroadcaster{},
		&capturingActivity{},
		board.DefaultThresholds(),
		noopLogger{},
	)

	tender := &entity.Tender{Id: uuid.New(), Title: "Road works"}
	tenders.items = append(tenders.items, tender)
	tracking.items = append(tracking.items, &entity.TrackingEntry{
		Id: uuid.New(), TenderId: tender.Id, Stage: entity.StagePending, CreatedAt: time.Now(),
	})

	res, err := svc.MoveTenderStage(context.Background(), uuid.New(), &dto.MoveTenderStageRequest{
		TenderId: tender.Id, From: "pending", To: "review",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Stage != "review" {
		t.Errorf("response stage = %q, want review", res.Stage)
	}
}

func TestInitializeTenderTracking(t *testing.T) {
	f := newTrackingFixture()
	tender := &entity.Tender{Id: uuid.New(), Title: "New tender"}
	f.tenders.items = append(f.tenders.items, tender)

	res, err := f.svc.InitializeTenderTracking(context.Background(), uuid.New(), &dto.InitializeTrackingRequest{
		TenderId: tender.Id,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Stage != "pending" {
		t.Errorf("default stage = %q, want pending", res.Stage)
	}
	if len(f.tracking.items) != 1 {
		t.Fatalf("stored %d entries, want 1", len(f.tracking.items))
	}
	if f.publisher.events[0].EventType() != events.TypeTenderTrackingAdded {
		t.Error("expected a TENDER_TRACKING_ADDED event")
	}

	// no idempotency: a second add duplicates
	if _, err := f.svc.InitializeTenderTracking(context.Background(), uuid.New(), &dto.InitializeTrackingRequest{
		TenderId: tender.Id,
	}); err != nil {
		t.Fatal(err)
	}
	if len(f.tracking.items) != 2 {
		t.Errorf("second add should duplicate, got %d entries", len(f.tracking.items))
	}
}

func TestInitializeTenderTrackingUnknownTender(t *testing.T) {
	f := newTrackingFixture()
	if _, err := f.svc.InitializeTenderTracking(context.Background(), uuid.New(), &dto.InitializeTrackingRequest{
		TenderId: uuid.New(),
	}); err == nil {
		t.Error("tracking a missing tender must fail")
	}
}

func TestRemoveTenderFromTracking(t *testing.T) {
	f := newTrackingFixture()
	tender := f.addTracked("Road works", 100, entity.StagePending, time.Now())
	// simulate a duplicate slipped in by a concurrent add
	f.tracking.items = append(f.tracking.items, &entity.TrackingEntry{
		Id: uuid.New(), TenderId: tender.Id, Stage: entity.StagePending, CreatedAt: time.Now(),
	})

	if err := f.svc.RemoveTenderFromTracking(context.Background(), uuid.New(), tender.Id); err != nil {
		t.Fatal(err)
	}
	if len(f.tracking.items) != 0 {
		t.Errorf("removal must take every entry, %d left", len(f.tracking.items))
	}

	if err := f.svc.RemoveTenderFromTracking(context.Background(), uuid.New(), tender.Id); err == nil {
		t.Error("removing an untracked tender must fail")
	}
}

func TestRemoveDuplicateTrackingEntries(t *testing.T) {
	f := newTrackingFixture()
	tenderId := uuid.New()
	base := time.Now().Add(-time.Hour)
	updated := base.Add(30 * time.Minute)

	oldest := &entity.TrackingEntry{Id: uuid.New(), TenderId: tenderId, CreatedAt: base}
	touched := &entity.TrackingEntry{Id: uuid.New(), TenderId: tenderId, CreatedAt: base.Add(-time.Minute), UpdatedAt: &updated}
	newer := &entity.TrackingEntry{Id: uuid.New(), TenderId: tenderId, CreatedAt: base.Add(time.Minute)}
	f.tracking.items = append(f.tracking.items, oldest, touched, newer)

	res, err := f.svc.RemoveDuplicateTrackingEntries(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Removed != 2 {
		t.Fatalf("Removed = %d, want 2", res.Removed)
	}
	// UpdatedAt beats CreatedAt as the recency signal
	if len(f.tracking.items) != 1 || f.tracking.items[0].Id != touched.Id {
		t.Error("the most recently modified entry must survive")
	}
}

func TestRemoveDuplicateTrackingEntriesSkipsFailedDeletes(t *testing.T) {
	f := newTrackingFixture()
	tenderId := uuid.New()
	base := time.Now().Add(-time.Hour)

	stuck := &entity.TrackingEntry{Id: uuid.New(), TenderId: tenderId, CreatedAt: base}
	kept := &entity.TrackingEntry{Id: uuid.New(), TenderId: tenderId, CreatedAt: base.Add(time.Minute)}
	f.tracking.items = append(f.tracking.items, stuck, kept)
	f.tracking.deleteErr = map[uuid.UUID]error{stuck.Id: context.DeadlineExceeded}

	res, err := f.svc.RemoveDuplicateTrackingEntries(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Removed != 0 {
		t.Errorf("Removed = %d, want 0 when the delete fails", res.Removed)
	}
}

package service

import (
	"context"
	"fmt"
	"time"

	"tenderdesk-be/internal/board"
	"tenderdesk-be/internal/dto"
	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/pkg/logger"
	"tenderdesk-be/internal/repository/specification"
	"tenderdesk-be/internal/repository/unitofwork"
	"tenderdesk-be/pkg/events"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const boardCacheKey = "tracking_board"

// EventPublisher abstracts the NATS publisher so tests can fake it.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// FeedBroadcaster pushes board changes to connected clients. Implemented by
// the websocket Hub.
type FeedBroadcaster interface {
	BroadcastEvent(eventType string, payload interface{})
}

type ITrackingService interface {
	GetAllTrackedTenders(ctx context.Context, filter string) (*dto.BoardResponse, error)
	MoveTenderStage(ctx context.Context, employeeId uuid.UUID, req *dto.MoveTenderStageRequest) (*dto.MoveTenderStageResponse, error)
	InitializeTenderTracking(ctx context.Context, employeeId uuid.UUID, req *dto.InitializeTrackingRequest) (*dto.InitializeTrackingResponse, error)
	RemoveTenderFromTracking(ctx context.Context, employeeId uuid.UUID, tenderId uuid.UUID) error
	RemoveDuplicateTrackingEntries(ctx context.Context) (*dto.RemoveDuplicatesResponse, error)
}

type trackingService struct {
	uowFactory      unitofwork.RepositoryFactory
	eventPublisher  EventPublisher
	broadcaster     FeedBroadcaster
	activityService IActivityService
	cache           *gocache.Cache
	thresholds      board.Thresholds
	logger          logger.ILogger
}

func NewTrackingService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher EventPublisher,
	broadcaster FeedBroadcaster,
	activityService IActivityService,
	thresholds board.Thresholds,
	log logger.ILogger,
) ITrackingService {
	return &trackingService{
		uowFactory:      uowFactory,
		eventPublisher:  eventPublisher,
		broadcaster:     broadcaster,
		activityService: activityService,
		cache:           gocache.New(30*time.Second, time.Minute),
		thresholds:      thresholds,
		logger:          log,
	}
}

// GetAllTrackedTenders returns the grouped board, newest-first per column.
// The unfiltered board is served from a short-lived cache; filters always
// run against it in memory.
func (s *trackingService) GetAllTrackedTenders(ctx context.Context, filter string) (*dto.BoardResponse, error) {
	if cached, found := s.cache.Get(boardCacheKey); found {
		if b, ok := cached.(board.Board); ok {
			return s.toBoardResponse(b.Filter(filter)), nil
		}
	}

	b, err := s.loadBoard(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(boardCacheKey, b, gocache.DefaultExpiration)

	return s.toBoardResponse(b.Filter(filter)), nil
}

func (s *trackingService) loadBoard(ctx context.Context) (board.Board, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.TrackingEntryRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return board.New(), nil
	}

	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.TenderId)
	}

	tenders, err := uow.TenderRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}
	byId := make(map[uuid.UUID]*entity.Tender, len(tenders))
	for _, t := range tenders {
		byId[t.Id] = t
	}

	cards := make([]*board.Card, 0, len(entries))
	for _, e := range entries {
		tender, ok := byId[e.TenderId]
		if !ok {
			// tracking entry survived its tender (trashed or purged); hide it
			continue
		}
		cards = append(cards, &board.Card{
			TrackingId: e.Id,
			Tender:     tender,
			Stage:      e.Stage,
			Position:   e.Position,
			Note:       e.LastMovedNote,
			CreatedAt:  e.CreatedAt.Unix(),
		})
	}

	return board.Group(cards), nil
}

// MoveTenderStage updates the entry's stage. Last write wins: no version
// check, the most recent move simply overwrites.
func (s *trackingService) MoveTenderStage(ctx context.Context, employeeId uuid.UUID, req *dto.MoveTenderStageRequest) (*dto.MoveTenderStageResponse, error) {
	to := entity.Stage(req.To)
	if !to.Valid() {
		return nil, fmt.Errorf("unknown stage: %s", req.To)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.TrackingEntryRepository().FindOne(ctx, specification.ByTenderID{TenderID: req.TenderId})
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("tender %s is not tracked", req.TenderId)
	}

	note := req.Note
	if note == "" {
		note = fmt.Sprintf("moved from %s to %s", req.From, req.To)
	}
	entry.Stage = to
	entry.LastMovedNote = note

	if err := uow.TrackingEntryRepository().Update(ctx, entry); err != nil {
		return nil, err
	}

	s.cache.Delete(boardCacheKey)
	s.activityService.Record(ctx, employeeId, "tender_stage_moved", "tender", &req.TenderId)
	s.publishEvent(ctx, events.TypeTenderStageMoved, map[string]interface{}{
		"tender_id": req.TenderId.String(),
		"from":      req.From,
		"to":        req.To,
		"user_id":   employeeId.String(),
	})
	s.broadcastBoard(ctx)

	return &dto.MoveTenderStageResponse{
		TrackingId: entry.Id,
		Stage:      string(entry.Stage),
	}, nil
}

// InitializeTenderTracking adds a tender to the board. No idempotency check
// here; concurrent adds can create duplicates that the dedup sweep reconciles.
func (s *trackingService) InitializeTenderTracking(ctx context.Context, employeeId uuid.UUID, req *dto.InitializeTrackingRequest) (*dto.InitializeTrackingResponse, error) {
	stage := entity.StagePending
	if req.Stage != "" {
		stage = entity.Stage(req.Stage)
		if !stage.Valid() {
			return nil, fmt.Errorf("unknown stage: %s", req.Stage)
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	tender, err := uow.TenderRepository().FindOne(ctx, specification.ByID{ID: req.TenderId})
	if err != nil {
		return nil, err
	}
	if tender == nil {
		return nil, fmt.Errorf("tender %s not found", req.TenderId)
	}

	entry := entity.TrackingEntry{
		Id:        uuid.New(),
		TenderId:  req.TenderId,
		Stage:     stage,
		CreatedAt: time.Now(),
	}
	if err := uow.TrackingEntryRepository().Create(ctx, &entry); err != nil {
		return nil, err
	}

	s.cache.Delete(boardCacheKey)
	s.activityService.Record(ctx, employeeId, "tender_tracking_added", "tender", &req.TenderId)
	s.publishEvent(ctx, events.TypeTenderTrackingAdded, map[string]interface{}{
		"tender_id": req.TenderId.String(),
		"title":     tender.Title,
		"stage":     string(stage),
		"user_id":   employeeId.String(),
	})
	s.broadcastBoard(ctx)

	return &dto.InitializeTrackingResponse{
		TrackingId: entry.Id,
		Stage:      string(entry.Stage),
	}, nil
}

func (s *trackingService) RemoveTenderFromTracking(ctx context.Context, employeeId uuid.UUID, tenderId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.TrackingEntryRepository().FindAll(ctx, specification.ByTenderID{TenderID: tenderId})
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("tender %s is not tracked", tenderId)
	}

	// duplicates included; removal takes the tender off the board entirely
	for _, entry := range entries {
		if err := uow.TrackingEntryRepository().Delete(ctx, entry.Id); err != nil {
			return err
		}
	}

	s.cache.Delete(boardCacheKey)
	s.activityService.Record(ctx, employeeId, "tender_tracking_removed", "tender", &tenderId)
	s.publishEvent(ctx, events.TypeTenderTrackingRemoved, map[string]interface{}{
		"tender_id": tenderId.String(),
		"user_id":   employeeId.String(),
	})
	s.broadcastBoard(ctx)

	return nil
}

// RemoveDuplicateTrackingEntries keeps the most recently modified entry per
// tender and deletes the rest. Failures on individual deletes are logged and
// skipped so one bad row cannot wedge the sweep.
func (s *trackingService) RemoveDuplicateTrackingEntries(ctx context.Context) (*dto.RemoveDuplicatesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.TrackingEntryRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	keep := make(map[uuid.UUID]*entity.TrackingEntry)
	duplicates := make([]*entity.TrackingEntry, 0)
	for _, entry := range entries {
		current, seen := keep[entry.TenderId]
		if !seen {
			keep[entry.TenderId] = entry
			continue
		}
		if lastModified(entry).After(lastModified(current)) {
			duplicates = append(duplicates, current)
			keep[entry.TenderId] = entry
		} else {
			duplicates = append(duplicates, entry)
		}
	}

	removed := 0
	for _, dup := range duplicates {
		if err := uow.TrackingEntryRepository().Delete(ctx, dup.Id); err != nil {
			s.logger.Warn("TrackingService", "Failed to delete duplicate tracking entry", map[string]interface{}{
				"entry_id": dup.Id.String(),
				"error":    err.Error(),
			})
			continue
		}
		removed++
	}

	if removed > 0 {
		s.cache.Delete(boardCacheKey)
	}

	return &dto.RemoveDuplicatesResponse{Removed: removed}, nil
}

func lastModified(e *entity.TrackingEntry) time.Time {
	if e.UpdatedAt != nil {
		return *e.UpdatedAt
	}
	return e.CreatedAt
}

func (s *trackingService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events.New(eventType, data)); err != nil {
		s.logger.Warn("TrackingService", "Failed to publish event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}

// broadcastBoard pushes the fresh grouped board to the feed. Best-effort.
func (s *trackingService) broadcastBoard(ctx context.Context) {
	if s.broadcaster == nil {
		return
	}
	b, err := s.loadBoard(ctx)
	if err != nil {
		s.logger.Warn("TrackingService", "Failed to load board for broadcast", map[string]interface{}{"error": err.Error()})
		return
	}
	s.broadcaster.BroadcastEvent("board_updated", s.toBoardResponse(b))
}

func (s *trackingService) toBoardResponse(b board.Board) *dto.BoardResponse {
	res := &dto.BoardResponse{
		Pending:    s.toColumn(b[entity.StagePending]),
		InProgress: s.toColumn(b[entity.StageInProgress]),
		Review:     s.toColumn(b[entity.StageReview]),
		Completed:  s.toColumn(b[entity.StageCompleted]),
	}
	res.Total = b.Total()
	return res
}

func (s *trackingService) toColumn(cards []*board.Card) []dto.TrackedTenderResponse {
	column := make([]dto.TrackedTenderResponse, 0, len(cards))
	for _, card := range cards {
		column = append(column, dto.TrackedTenderResponse{
			TrackingId:         card.TrackingId,
			TenderId:           card.Tender.Id,
			Title:              card.Tender.Title,
			Entity:             card.Tender.Entity,
			ReferenceNumber:    card.Tender.ReferenceNumber,
			EstimatedValue:     card.Tender.EstimatedValue,
			SubmissionDeadline: card.Tender.SubmissionDeadline,
			Stage:              string(card.Stage),
			Priority:           string(s.thresholds.Classify(card.Tender.EstimatedValue)),
			LastMovedNote:      card.Note,
			TrackedAt:          time.Unix(card.CreatedAt, 0),
		})
	}
	return column
}

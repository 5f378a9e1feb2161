package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"tenderdesk-be/internal/dto"
	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/repository/specification"
	"tenderdesk-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IStudyService interface {
	GetStudy(ctx context.Context, tenderId uuid.UUID) (*dto.StudyResponse, error)
	SaveItems(ctx context.Context, employeeId uuid.UUID, req *dto.SaveStudyItemsRequest) (*dto.StudyResponse, error)
	AddCompetitor(ctx context.Context, employeeId uuid.UUID, req *dto.AddCompetitorRequest) (*dto.CompetitorPriceResponse, error)
	DeleteCompetitor(ctx context.Context, employeeId uuid.UUID, tenderId, competitorId uuid.UUID) error
}

type studyService struct {
	uowFactory      unitofwork.RepositoryFactory
	activityService IActivityService
}

func NewStudyService(
	uowFactory unitofwork.RepositoryFactory,
	activityService IActivityService,
) IStudyService {
	return &studyService{
		uowFactory:      uowFactory,
		activityService: activityService,
	}
}

func (s *studyService) GetStudy(ctx context.Context, tenderId uuid.UUID) (*dto.StudyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tender, err := uow.TenderRepository().FindOne(ctx, specification.ByID{ID: tenderId})
	if err != nil {
		return nil, err
	}
	if tender == nil {
		return nil, fmt.Errorf("tender %s not found", tenderId)
	}

	items, err := uow.StudyRepository().FindItems(ctx, tenderId)
	if err != nil {
		return nil, err
	}
	competitors, err := uow.StudyRepository().FindCompetitors(ctx, tenderId)
	if err != nil {
		return nil, err
	}

	return buildStudyResponse(tenderId, items, competitors), nil
}

func (s *studyService) SaveItems(ctx context.Context, employeeId uuid.UUID, req *dto.SaveStudyItemsRequest) (*dto.StudyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tender, err := uow.TenderRepository().FindOne(ctx, specification.ByID{ID: req.TenderId})
	if err != nil {
		return nil, err
	}
	if tender == nil {
		return nil, fmt.Errorf("tender %s not found", req.TenderId)
	}

	items := make([]*entity.TenderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, &entity.TenderItem{
			Id:          uuid.New(),
			TenderId:    req.TenderId,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitCost:    it.UnitCost,
			UnitPrice:   it.UnitPrice,
			CreatedAt:   time.Now(),
		})
	}

	if err := uow.StudyRepository().ReplaceItems(ctx, req.TenderId, items); err != nil {
		return nil, err
	}

	competitors, err := uow.StudyRepository().FindCompetitors(ctx, req.TenderId)
	if err != nil {
		return nil, err
	}

	s.activityService.Record(ctx, employeeId, "study_items_saved", "tender", &req.TenderId)
	return buildStudyResponse(req.TenderId, items, competitors), nil
}

func (s *studyService) AddCompetitor(ctx context.Context, employeeId uuid.UUID, req *dto.AddCompetitorRequest) (*dto.CompetitorPriceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tender, err := uow.TenderRepository().FindOne(ctx, specification.ByID{ID: req.TenderId})
	if err != nil {
		return nil, err
	}
	if tender == nil {
		return nil, fmt.Errorf("tender %s not found", req.TenderId)
	}

	price := entity.CompetitorPrice{
		Id:             uuid.New(),
		TenderId:       req.TenderId,
		CompetitorName: req.CompetitorName,
		TotalPrice:     req.TotalPrice,
		CreatedAt:      time.Now(),
	}
	if err := uow.StudyRepository().AddCompetitor(ctx, &price); err != nil {
		return nil, err
	}

	s.activityService.Record(ctx, employeeId, "competitor_price_added", "tender", &req.TenderId)
	return &dto.CompetitorPriceResponse{
		Id:             price.Id,
		CompetitorName: price.CompetitorName,
		TotalPrice:     price.TotalPrice,
		CreatedAt:      price.CreatedAt,
	}, nil
}

func (s *studyService) DeleteCompetitor(ctx context.Context, employeeId uuid.UUID, tenderId, competitorId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.StudyRepository().DeleteCompetitor(ctx, competitorId); err != nil {
		return err
	}

	s.activityService.Record(ctx, employeeId, "competitor_price_removed", "tender", &tenderId)
	return nil
}

// studyTotals sums cost and offer price across items.
func studyTotals(items []*entity.TenderItem) (totalCost, totalPrice float64) {
	for _, it := range items {
		totalCost += it.Quantity * it.UnitCost
		totalPrice += it.Quantity * it.UnitPrice
	}
	return totalCost, totalPrice
}

// marginPercent is profit over offer price, rounded to two decimals.
// Zero offer price means no meaningful margin.
func marginPercent(profit, totalPrice float64) float64 {
	if totalPrice == 0 {
		return 0
	}
	return math.Round(profit/totalPrice*10000) / 100
}

// rankOffer places our total among competitor offers, 1-based. Cheapest
// wins; ties rank equal. A zero offer returns 0 (nothing priced yet).
func rankOffer(ourTotal float64, competitors []*entity.CompetitorPrice) int {
	if ourTotal == 0 {
		return 0
	}
	rank := 1
	for _, c := range competitors {
		if c.TotalPrice < ourTotal {
			rank++
		}
	}
	return rank
}

func buildStudyResponse(tenderId uuid.UUID, items []*entity.TenderItem, competitors []*entity.CompetitorPrice) *dto.StudyResponse {
	totalCost, totalPrice := studyTotals(items)
	profit := totalPrice - totalCost

	itemResponses := make([]dto.StudyItemResponse, 0, len(items))
	for _, it := range items {
		itemResponses = append(itemResponses, dto.StudyItemResponse{
			Id:          it.Id,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitCost:    it.UnitCost,
			UnitPrice:   it.UnitPrice,
			TotalCost:   it.Quantity * it.UnitCost,
			TotalPrice:  it.Quantity * it.UnitPrice,
		})
	}

	competitorResponses := make([]dto.CompetitorPriceResponse, 0, len(competitors))
	for _, c := range competitors {
		competitorResponses = append(competitorResponses, dto.CompetitorPriceResponse{
			Id:             c.Id,
			CompetitorName: c.CompetitorName,
			TotalPrice:     c.TotalPrice,
			CreatedAt:      c.CreatedAt,
		})
	}

	return &dto.StudyResponse{
		TenderId:      tenderId,
		Items:         itemResponses,
		TotalCost:     totalCost,
		TotalPrice:    totalPrice,
		Profit:        profit,
		MarginPercent: marginPercent(profit, totalPrice),
		Competitors:   competitorResponses,
		OurRank:       rankOffer(totalPrice, competitors),
	}
}

package mapper

import (
	"time"

	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/model"

	"gorm.io/gorm"
)

type TenderMapper struct{}

func NewTenderMapper() *TenderMapper {
	return &TenderMapper{}
}

func (m *TenderMapper) ToEntity(t *model.Tender) *entity.Tender {
	if t == nil {
		return nil
	}
	var deletedAt *time.Time
	if t.DeletedAt.Valid {
		d := t.DeletedAt.Time
		deletedAt = &d
	}
	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		u := t.UpdatedAt
		updatedAt = &u
	}

	return &entity.Tender{
		Id:                 t.Id,
		Title:              t.Title,
		Entity:             t.Entity,
		Description:        t.Description,
		ReferenceNumber:    t.ReferenceNumber,
		EstimatedValue:     t.EstimatedValue,
		SubmissionDeadline: t.SubmissionDeadline,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          updatedAt,
		DeletedAt:          deletedAt,
		IsDeleted:          t.DeletedAt.Valid,
	}
}

func (m *TenderMapper) ToModel(t *entity.Tender) *model.Tender {
	if t == nil {
		return nil
	}
	var deletedAt gorm.DeletedAt
	if t.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *t.DeletedAt, Valid: true}
	} else if t.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}
	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}

	return &model.Tender{
		Id:                 t.Id,
		Title:              t.Title,
		Entity:             t.Entity,
		Description:        t.Description,
		ReferenceNumber:    t.ReferenceNumber,
		EstimatedValue:     t.EstimatedValue,
		SubmissionDeadline: t.SubmissionDeadline,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          updatedAt,
		DeletedAt:          deletedAt,
	}
}

func (m *TenderMapper) ToEntities(tenders []*model.Tender) []*entity.Tender {
	entities := make([]*entity.Tender, len(tenders))
	for i, t := range tenders {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

func (m *TenderMapper) ItemToEntity(i *model.TenderItem) *entity.TenderItem {
	if i == nil {
		return nil
	}
	return &entity.TenderItem{
		Id:          i.Id,
		TenderId:    i.TenderId,
		Description: i.Description,
		Quantity:    i.Quantity,
		UnitCost:    i.UnitCost,
		UnitPrice:   i.UnitPrice,
		CreatedAt:   i.CreatedAt,
	}
}

func (m *TenderMapper) ItemToModel(i *entity.TenderItem) *model.TenderItem {
	if i == nil {
		return nil
	}
	return &model.TenderItem{
		Id:          i.Id,
		TenderId:    i.TenderId,
		Description: i.Description,
		Quantity:    i.Quantity,
		UnitCost:    i.UnitCost,
		UnitPrice:   i.UnitPrice,
		CreatedAt:   i.CreatedAt,
	}
}

func (m *TenderMapper) ItemsToEntities(items []*model.TenderItem) []*entity.TenderItem {
	entities := make([]*entity.TenderItem, len(items))
	for i, it := range items {
		entities[i] = m.ItemToEntity(it)
	}
	return entities
}

func (m *TenderMapper) CompetitorToEntity(c *model.CompetitorPrice) *entity.CompetitorPrice {
	if c == nil {
		return nil
	}
	return &entity.CompetitorPrice{
		Id:             c.Id,
		TenderId:       c.TenderId,
		CompetitorName: c.CompetitorName,
		TotalPrice:     c.TotalPrice,
		CreatedAt:      c.CreatedAt,
	}
}

func (m *TenderMapper) CompetitorToModel(c *entity.CompetitorPrice) *model.CompetitorPrice {
	if c == nil {
		return nil
	}
	return &model.CompetitorPrice{
		Id:             c.Id,
		TenderId:       c.TenderId,
		CompetitorName: c.CompetitorName,
		TotalPrice:     c.TotalPrice,
		CreatedAt:      c.CreatedAt,
	}
}

func (m *TenderMapper) CompetitorsToEntities(prices []*model.CompetitorPrice) []*entity.CompetitorPrice {
	entities := make([]*entity.CompetitorPrice, len(prices))
	for i, c := range prices {
		entities[i] = m.CompetitorToEntity(c)
	}
	return entities
}

package mapper

import (
	"time"

	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/model"

	"gorm.io/gorm"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.CompanyDocument) *entity.CompanyDocument {
	if d == nil {
		return nil
	}
	var deletedAt *time.Time
	if d.DeletedAt.Valid {
		t := d.DeletedAt.Time
		deletedAt = &t
	}
	return &entity.CompanyDocument{
		Id:          d.Id,
		CompanyId:   d.CompanyId,
		TenderId:    d.TenderId,
		Name:        d.Name,
		URL:         d.URL,
		Path:        d.Path,
		SizeBytes:   d.SizeBytes,
		ContentType: d.ContentType,
		UploadedBy:  d.UploadedBy,
		CreatedAt:   d.CreatedAt,
		DeletedAt:   deletedAt,
		IsDeleted:   d.DeletedAt.Valid,
	}
}

func (m *DocumentMapper) ToModel(d *entity.CompanyDocument) *model.CompanyDocument {
	if d == nil {
		return nil
	}
	var deletedAt gorm.DeletedAt
	if d.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *d.DeletedAt, Valid: true}
	} else if d.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}
	return &model.CompanyDocument{
		Id:          d.Id,
		CompanyId:   d.CompanyId,
		TenderId:    d.TenderId,
		Name:        d.Name,
		URL:         d.URL,
		Path:        d.Path,
		SizeBytes:   d.SizeBytes,
		ContentType: d.ContentType,
		UploadedBy:  d.UploadedBy,
		CreatedAt:   d.CreatedAt,
		DeletedAt:   deletedAt,
	}
}

func (m *DocumentMapper) ToEntities(docs []*model.CompanyDocument) []*entity.CompanyDocument {
	entities := make([]*entity.CompanyDocument, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}

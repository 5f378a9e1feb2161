package contract

import (
	"context"

	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	Update(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Company, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Company, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Customer, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Customer, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

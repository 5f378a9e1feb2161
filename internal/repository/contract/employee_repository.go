package contract

import (
	"context"

	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/repository/specification"

	"github.com/google/uuid"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Employee, error)
	// FindByEmail matches the login identifier exactly; nil when unknown.
	FindByEmail(ctx context.Context, email string) (*entity.Employee, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Employee, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

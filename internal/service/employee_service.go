package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"tenderdesk-be/internal/dto"
	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/repository/specification"
	"tenderdesk-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IEmployeeService interface {
	Register(ctx context.Context, actorId uuid.UUID, req *dto.RegisterEmployeeRequest) (*dto.EmployeeResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetAll(ctx context.Context) ([]*dto.EmployeeResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.EmployeeResponse, error)
	Update(ctx context.Context, actorId uuid.UUID, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, actorId uuid.UUID, id uuid.UUID) error
}

type employeeService struct {
	uowFactory      unitofwork.RepositoryFactory
	activityService IActivityService
}

func NewEmployeeService(
	uowFactory unitofwork.RepositoryFactory,
	activityService IActivityService,
) IEmployeeService {
	return &employeeService{
		uowFactory:      uowFactory,
		activityService: activityService,
	}
}

func (s *employeeService) Register(ctx context.Context, actorId uuid.UUID, req *dto.RegisterEmployeeRequest) (*dto.EmployeeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.EmployeeRepository().FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	employee := entity.Employee{
		Id:           uuid.New(),
		Name:         req.FullName,
		Email:        req.Email,
		Role:         req.Role,
		PasswordHash: string(hash),
		Active:       true,
		CreatedAt:    time.Now(),
	}
	if err := uow.EmployeeRepository().Create(ctx, &employee); err != nil {
		return nil, err
	}

	s.activityService.Record(ctx, actorId, "employee_registered", "employee", &employee.Id)
	return toEmployeeResponse(&employee), nil
}

func (s *employeeService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	employee, err := uow.EmployeeRepository().FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, errors.New("invalid email or password")
	}
	if !employee.Active {
		return nil, errors.New("account is disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	accessTokenExpiry := time.Hour * 24

	claims := jwt.MapClaims{
		"employee_id": employee.Id.String(),
		"role":        employee.Role,
		"exp":         time.Now().Add(accessTokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	s.activityService.Record(ctx, employee.Id, "employee_login", "employee", &employee.Id)

	return &dto.LoginResponse{
		AccessToken: signedToken,
		Employee:    *toEmployeeResponse(employee),
	}, nil
}

func (s *employeeService) GetAll(ctx context.Context) ([]*dto.EmployeeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	employees, err := uow.EmployeeRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, toEmployeeResponse(e))
	}
	return result, nil
}

func (s *employeeService) Show(ctx context.Context, id uuid.UUID) (*dto.EmployeeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	employee, err := uow.EmployeeRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fmt.Errorf("employee %s not found", id)
	}
	return toEmployeeResponse(employee), nil
}

func (s *employeeService) Update(ctx context.Context, actorId uuid.UUID, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	employee, err := uow.EmployeeRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fmt.Errorf("employee %s not found", req.Id)
	}

	employee.Name = req.FullName
	if req.Email != "" {
		employee.Email = req.Email
	}
	if req.Role != "" {
		employee.Role = req.Role
	}

	if err := uow.EmployeeRepository().Update(ctx, employee); err != nil {
		return nil, err
	}

	s.activityService.Record(ctx, actorId, "employee_updated", "employee", &employee.Id)
	return toEmployeeResponse(employee), nil
}

func (s *employeeService) Delete(ctx context.Context, actorId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	employee, err := uow.EmployeeRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if employee == nil {
		return fmt.Errorf("employee %s not found", id)
	}

	if err := uow.EmployeeRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.activityService.Record(ctx, actorId, "employee_deleted", "employee", &id)
	return nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		Id:        e.Id,
		FullName:  e.Name,
		Email:     e.Email,
		Role:      e.Role,
		CreatedAt: e.CreatedAt,
	}
}

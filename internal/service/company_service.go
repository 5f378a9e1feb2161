package service

import (
	"context"
	"fmt"
	"time"

	"tenderdesk-be/internal/dto"
	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/repository/specification"
	"tenderdesk-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICompanyService interface {
	GetAllCompanies(ctx context.Context) ([]*dto.CompanyResponse, error)
	SaveCompany(ctx context.Context, employeeId uuid.UUID, req *dto.SaveCompanyRequest) (*dto.CompanyResponse, error)
	DeleteCompany(ctx context.Context, employeeId uuid.UUID, id uuid.UUID) error

	GetAllCustomers(ctx context.Context) ([]*dto.CustomerResponse, error)
	SaveCustomer(ctx context.Context, employeeId uuid.UUID, req *dto.SaveCustomerRequest) (*dto.CustomerResponse, error)
	DeleteCustomer(ctx context.Context, employeeId uuid.UUID, id uuid.UUID) error
}

type companyService struct {
	uowFactory      unitofwork.RepositoryFactory
	activityService IActivityService
}

func NewCompanyService(
	uowFactory unitofwork.RepositoryFactory,
	activityService IActivityService,
) ICompanyService {
	return &companyService{
		uowFactory:      uowFactory,
		activityService: activityService,
	}
}

func (s *companyService) GetAllCompanies(ctx context.Context) ([]*dto.CompanyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	companies, err := uow.CompanyRepository().FindAll(ctx,
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		result = append(result, toCompanyResponse(c))
	}
	return result, nil
}

// SaveCompany upserts: a zero Id creates, a set Id updates.
func (s *companyService) SaveCompany(ctx context.Context, employeeId uuid.UUID, req *dto.SaveCompanyRequest) (*dto.CompanyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if req.Id == uuid.Nil {
		company := entity.Company{
			Id:        uuid.New(),
			Name:      req.Name,
			TaxNumber: req.TaxNumber,
			Address:   req.Address,
			Phone:     req.Phone,
			Email:     req.Email,
			CreatedAt: time.Now(),
		}
		if err := uow.CompanyRepository().Create(ctx, &company); err != nil {
			return nil, err
		}
		s.activityService.Record(ctx, employeeId, "company_created", "company", &company.Id)
		return toCompanyResponse(&company), nil
	}

	company, err := uow.CompanyRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("company %s not found", req.Id)
	}

	company.Name = req.Name
	company.TaxNumber = req.TaxNumber
	company.Address = req.Address
	company.Phone = req.Phone
	company.Email = req.Email

	if err := uow.CompanyRepository().Update(ctx, company); err != nil {
		return nil, err
	}
	s.activityService.Record(ctx, employeeId, "company_updated", "company", &company.Id)
	return toCompanyResponse(company), nil
}

func (s *companyService) DeleteCompany(ctx context.Context, employeeId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	company, err := uow.CompanyRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if company == nil {
		return fmt.Errorf("company %s not found", id)
	}

	if err := uow.CompanyRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.activityService.Record(ctx, employeeId, "company_deleted", "company", &id)
	return nil
}

func (s *companyService) GetAllCustomers(ctx context.Context) ([]*dto.CustomerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customers, err := uow.CustomerRepository().FindAll(ctx,
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		result = append(result, toCustomerResponse(c))
	}
	return result, nil
}

func (s *companyService) SaveCustomer(ctx context.Context, employeeId uuid.UUID, req *dto.SaveCustomerRequest) (*dto.CustomerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if req.Id == uuid.Nil {
		customer := entity.Customer{
			Id:            uuid.New(),
			Name:          req.Name,
			ContactPerson: req.ContactPerson,
			Phone:         req.Phone,
			Email:         req.Email,
			Address:       req.Address,
			CreatedAt:     time.Now(),
		}
		if err := uow.CustomerRepository().Create(ctx, &customer); err != nil {
			return nil, err
		}
		s.activityService.Record(ctx, employeeId, "customer_created", "customer", &customer.Id)
		return toCustomerResponse(&customer), nil
	}

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %s not found", req.Id)
	}

	customer.Name = req.Name
	customer.ContactPerson = req.ContactPerson
	customer.Phone = req.Phone
	customer.Email = req.Email
	customer.Address = req.Address

	if err := uow.CustomerRepository().Update(ctx, customer); err != nil {
		return nil, err
	}
	s.activityService.Record(ctx, employeeId, "customer_updated", "customer", &customer.Id)
	return toCustomerResponse(customer), nil
}

func (s *companyService) DeleteCustomer(ctx context.Context, employeeId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if customer == nil {
		return fmt.Errorf("customer %s not found", id)
	}

	if err := uow.CustomerRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.activityService.Record(ctx, employeeId, "customer_deleted", "customer", &id)
	return nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		Id:        c.Id,
		Name:      c.Name,
		TaxNumber: c.TaxNumber,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		Id:            c.Id,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
		CreatedAt:     c.CreatedAt,
	}
}

package controller

import (
	"tenderdesk-be/internal/dto"
	"tenderdesk-be/internal/pkg/serverutils"
	"tenderdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICompanyController interface {
	RegisterRoutes(r fiber.Router)
	GetCompanies(ctx *fiber.Ctx) error
	SaveCompany(ctx *fiber.Ctx) error
	DeleteCompany(ctx *fiber.Ctx) error
	GetCustomers(ctx *fiber.Ctx) error
	SaveCustomer(ctx *fiber.Ctx) error
	DeleteCustomer(ctx *fiber.Ctx) error
}

type companyController struct {
	companyService service.ICompanyService
}

func NewCompanyController(companyService service.ICompanyService) ICompanyController {
	return &companyController{
		companyService: companyService,
	}
}

func (c *companyController) RegisterRoutes(r fiber.Router) {
	companies := r.Group("/company/v1")
	companies.Use(serverutils.JwtMiddleware)
	companies.Get("", c.GetCompanies)
	companies.Post("", c.SaveCompany)
	companies.Put(":id", c.SaveCompany)
	companies.Delete(":id", c.DeleteCompany)

	customers := r.Group("/customer/v1")
	customers.Use(serverutils.JwtMiddleware)
	customers.Get("", c.GetCustomers)
	customers.Post("", c.SaveCustomer)
	customers.Put(":id", c.SaveCustomer)
	customers.Delete(":id", c.DeleteCustomer)
}

func (c *companyController) GetCompanies(ctx *fiber.Ctx) error {
	res, err := c.companyService.GetAllCompanies(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get companies", res))
}

// SaveCompany is an upsert: POST creates, PUT with an id updates.
func (c *companyController) SaveCompany(ctx *fiber.Ctx) error {
	employeeIdStr, _ := ctx.Locals("employee_id").(string)
	employeeId, _ := uuid.Parse(employeeIdStr)

	var req dto.SaveCompanyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if idParam := ctx.Params("id"); idParam != "" {
		id, err := uuid.Parse(idParam)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid company id")
		}
		req.Id = id
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.companyService.SaveCompany(ctx.Context(), employeeId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save company", res))
}

func (c *companyController) DeleteCompany(ctx *fiber.Ctx) error {
	employeeIdStr, _ := ctx.Locals("employee_id").(string)
	employeeId, _ := uuid.Parse(employeeIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid company id")
	}

	if err := c.companyService.DeleteCompany(ctx.Context(), employeeId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete company", nil))
}

func (c *companyController) GetCustomers(ctx *fiber.Ctx) error {
	res, err := c.companyService.GetAllCustomers(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get customers", res))
}

func (c *companyController) SaveCustomer(ctx *fiber.Ctx) error {
	employeeIdStr, _ := ctx.Locals("employee_id").(string)
	employeeId, _ := uuid.Parse(employeeIdStr)

	var req dto.SaveCustomerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if idParam := ctx.Params("id"); idParam != "" {
		id, err := uuid.Parse(idParam)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid customer id")
		}
		req.Id = id
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.companyService.SaveCustomer(ctx.Context(), employeeId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save customer", res))
}

func (c *companyController) DeleteCustomer(ctx *fiber.Ctx) error {
	employeeIdStr, _ := ctx.Locals("employee_id").(string)
	employeeId, _ := uuid.Parse(employeeIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid customer id")
	}

	if err := c.companyService.DeleteCustomer(ctx.Context(), employeeId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete customer", nil))
}

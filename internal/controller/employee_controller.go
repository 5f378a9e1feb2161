package controller

import (
	"tenderdesk-be/internal/dto"
	"tenderdesk-be/internal/pkg/serverutils"
	"tenderdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IEmployeeController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type employeeController struct {
	employeeService service.IEmployeeService
}

func NewEmployeeController(employeeService service.IEmployeeService) IEmployeeController {
	return &employeeController{
		employeeService: employeeService,
	}
}

func (c *employeeController) RegisterRoutes(r fiber.Router) {
	auth := r.Group("/auth/v1")
	auth.Post("login", c.Login)

	h := r.Group("/employee/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", serverutils.RequireRole("admin"), c.Register)
	h.Get("", c.GetAll)
	h.Get(":id", c.Show)
	h.Put(":id", serverutils.RequireRole("admin"), c.Update)
	h.Delete(":id", serverutils.RequireRole("admin"), c.Delete)
}

// Register creates an account. Only admins onboard new employees; there is
// no self-service signup.
func (c *employeeController) Register(ctx *fiber.Ctx) error {
	actorIdStr, _ := ctx.Locals("employee_id").(string)
	actorId, _ := uuid.Parse(actorIdStr)

	var req dto.RegisterEmployeeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.employeeService.Register(ctx.Context(), actorId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success register employee", res))
}

func (c *employeeController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.employeeService.Login(ctx.Context(), &req)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success login", res))
}

func (c *employeeController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.employeeService.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get employees", res))
}

func (c *employeeController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid employee id")
	}

	res, err := c.employeeService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show employee", res))
}

func (c *employeeController) Update(ctx *fiber.Ctx) error {
	actorIdStr, _ := ctx.Locals("employee_id").(string)
	actorId, _ := uuid.Parse(actorIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid employee id")
	}

	var req dto.UpdateEmployeeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.employeeService.Update(ctx.Context(), actorId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update employee", res))
}

func (c *employeeController) Delete(ctx *fiber.Ctx) error {
	actorIdStr, _ := ctx.Locals("employee_id").(string)
	actorId, _ := uuid.Parse(actorIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid employee id")
	}

	if err := c.employeeService.Delete(ctx.Context(), actorId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete employee", nil))
}

package controller

import (
	"tenderdesk-be/internal/dto"
	"tenderdesk-be/internal/pkg/serverutils"
	"tenderdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITenderController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type tenderController struct {
	tenderService service.ITenderService
}

func NewTenderController(tenderService service.ITenderService) ITenderController {
	return &tenderController{
		tenderService: tenderService,
	}
}

func (c *tenderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tender/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *tenderController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.tenderService.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get tenders", res))
}

func (c *tenderController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid tender id")
	}

	res, err := c.tenderService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show tender", res))
}

func (c *tenderController) Create(ctx *fiber.Ctx) error {
	employeeIdStr, _ := ctx.Locals("employee_id").(string)
	employeeId, _ := uuid.Parse(employeeIdStr)

	var req dto.CreateTenderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.tenderService.Create(ctx.Context(), employeeId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create tender", res))
}

func (c *tenderController) Update(ctx *fiber.Ctx) error {
	employeeIdStr, _ := ctx.Locals("employee_id").(string)
	employeeId, _ := uuid.Parse(employeeIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid tender id")
	}

	var req dto.UpdateTenderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.tenderService.Update(ctx.Context(), employeeId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update tender", res))
}

func (c *tenderController) Delete(ctx *fiber.Ctx) error {
	employeeIdStr, _ := ctx.Locals("employee_id").(string)
	employeeId, _ := uuid.Parse(employeeIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid tender id")
	}

	if err := c.tenderService.Delete(ctx.Context(), employeeId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete tender", nil))
}

package controller

import (
	"tenderdesk-be/internal/dto"
	"tenderdesk-be/internal/pkg/serverutils"
	"tenderdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IStudyController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	SaveItems(ctx *fiber.Ctx) error
	AddCompetitor(ctx *fiber.Ctx) error
	DeleteCompetitor(ctx *fiber.Ctx) error
}

// studyController exposes the price study attached to a tender: the item
// list, the derived totals and margin, and recorded competitor offers.
type studyController struct {
	studyService service.IStudyService
}

func NewStudyController(studyService service.IStudyService) IStudyController {
	return &studyController{
		studyService: studyService,
	}
}

func (c *studyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/study/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get(":tenderId", c.Show)
	h.Put(":tenderId/items", c.SaveItems)
	h.Post(":tenderId/competitors", c.AddCompetitor)
	h.Delete(":tenderId/competitors/:competitorId", c.DeleteCompetitor)
}

func (c *studyController) Show(ctx *fiber.Ctx) error {
	tenderId, err := uuid.Parse(ctx.Params("tenderId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid tender id")
	}

	res, err := c.studyService.GetStudy(ctx.Context(), tenderId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get price study", res))
}

func (c *studyController) SaveItems(ctx *fiber.Ctx) error {
	employeeIdStr, _ := ctx.Locals("employee_id").(string)
	employeeId, _ := uuid.Parse(employeeIdStr)

	tenderId, err := uuid.Parse(ctx.Params("tenderId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid tender id")
	}

	var req dto.SaveStudyItemsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.TenderId = tenderId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.studyService.SaveItems(ctx.Context(), employeeId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save study items", res))
}

func (c *studyController) AddCompetitor(ctx *fiber.Ctx) error {
	employeeIdStr, _ := ctx.Locals("employee_id").(string)
	employeeId, _ := uuid.Parse(employeeIdStr)

	tenderId, err := uuid.Parse(ctx.Params("tenderId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid tender id")
	}

	var req dto.AddCompetitorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.TenderId = tenderId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.studyService.AddCompetitor(ctx.Context(), employeeId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success add competitor price", res))
}

func (c *studyController) DeleteCompetitor(ctx *fiber.Ctx) error {
	employeeIdStr, _ := ctx.Locals("employee_id").(string)
	employeeId, _ := uuid.Parse(employeeIdStr)

	tenderId, err := uuid.Parse(ctx.Params("tenderId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid tender id")
	}
	competitorId, err := uuid.Parse(ctx.Params("competitorId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid competitor id")
	}

	if err := c.studyService.DeleteCompetitor(ctx.Context(), employeeId, tenderId, competitorId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete competitor price", nil))
}

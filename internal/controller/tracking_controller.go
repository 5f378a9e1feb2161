package controller

import (
	"tenderdesk-be/internal/dto"
	"tenderdesk-be/internal/pkg/serverutils"
	"tenderdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITrackingController interface {
	RegisterRoutes(r fiber.Router)
	GetBoard(ctx *fiber.Ctx) error
	MoveStage(ctx *fiber.Ctx) error
	Initialize(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
	RemoveDuplicates(ctx *fiber.Ctx) error
}

type trackingController struct {
	trackingService service.ITrackingService
}

func NewTrackingController(trackingService service.ITrackingService) ITrackingController {
	return &trackingController{
		trackingService: trackingService,
	}
}

func (c *trackingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tracking/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetBoard)
	h.Post("", c.Initialize)
	h.Post("move", c.MoveStage)
	h.Post("dedup", serverutils.RequireRole("admin", "manager"), c.RemoveDuplicates)
	h.Delete(":tenderId", c.Remove)
}

func (c *trackingController) GetBoard(ctx *fiber.Ctx) error {
	filter := ctx.Query("filter", "")

	res, err := c.trackingService.GetAllTrackedTenders(ctx.Context(), filter)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get tracking board", res))
}

func (c *trackingController) MoveStage(ctx *fiber.Ctx) error {
	employeeIdStr, _ := ctx.Locals("employee_id").(string)
	employeeId, _ := uuid.Parse(employeeIdStr)

	var req dto.MoveTenderStageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.trackingService.MoveTenderStage(ctx.Context(), employeeId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success move tender stage", res))
}

func (c *trackingController) Initialize(ctx *fiber.Ctx) error {
	employeeIdStr, _ := ctx.Locals("employee_id").(string)
	employeeId, _ := uuid.Parse(employeeIdStr)

	var req dto.InitializeTrackingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.trackingService.InitializeTenderTracking(ctx.Context(), employeeId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success initialize tender tracking", res))
}

func (c *trackingController) Remove(ctx *fiber.Ctx) error {
	employeeIdStr, _ := ctx.Locals("employee_id").(string)
	employeeId, _ := uuid.Parse(employeeIdStr)

	tenderId, err := uuid.Parse(ctx.Params("tenderId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid tender id")
	}

	if err := c.trackingService.RemoveTenderFromTracking(ctx.Context(), employeeId, tenderId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove tender from tracking", nil))
}

func (c *trackingController) RemoveDuplicates(ctx *fiber.Ctx) error {
	res, err := c.trackingService.RemoveDuplicateTrackingEntries(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success remove duplicate tracking entries", res))
}

package controller

import (
	"tenderdesk-be/internal/dto"
	"tenderdesk-be/internal/pkg/serverutils"
	"tenderdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISnapshotController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Run(ctx *fiber.Ctx) error
	GetSettings(ctx *fiber.Ctx) error
	UpdateSettings(ctx *fiber.Ctx) error
}

type snapshotController struct {
	snapshotService *service.SnapshotService
	settingsService service.ISettingsService
}

func NewSnapshotController(snapshotService *service.SnapshotService, settingsService service.ISettingsService) ISnapshotController {
	return &snapshotController{
		snapshotService: snapshotService,
		settingsService: settingsService,
	}
}

func (c *snapshotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/snapshot/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("run", serverutils.RequireRole("admin", "manager"), c.Run)
	h.Get("settings", c.GetSettings)
	h.Put("settings", serverutils.RequireRole("admin"), c.UpdateSettings)
}

func (c *snapshotController) GetAll(ctx *fiber.Ctx) error {
	var employeeId *uuid.UUID
	if idStr := ctx.Query("employee_id", ""); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid employee id")
		}
		employeeId = &id
	}
	date := ctx.Query("date", "")

	res, err := c.snapshotService.GetSnapshots(ctx.Context(), employeeId, date)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get snapshots", res))
}

// Run triggers a manual snapshot pass for today.
func (c *snapshotController) Run(ctx *fiber.Ctx) error {
	var req dto.RunSnapshotRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return err
		}
	}

	res, err := c.snapshotService.RunNow(ctx.Context(), req.Force)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success run snapshot", res))
}

func (c *snapshotController) GetSettings(ctx *fiber.Ctx) error {
	res, err := c.settingsService.Get(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get scheduler settings", res))
}

func (c *snapshotController) UpdateSettings(ctx *fiber.Ctx) error {
	var req dto.SchedulerSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.settingsService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update scheduler settings", res))
}

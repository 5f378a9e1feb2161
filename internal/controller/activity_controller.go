package controller

import (
	"tenderdesk-be/internal/pkg/serverutils"
	"tenderdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IActivityController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
}

type activityController struct {
	activityService service.IActivityService
}

func NewActivityController(activityService service.IActivityService) IActivityController {
	return &activityController{
		activityService: activityService,
	}
}

func (c *activityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/activity/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
}

func (c *activityController) GetAll(ctx *fiber.Ctx) error {
	var employeeId *uuid.UUID
	if idStr := ctx.Query("employee_id", ""); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid employee id")
		}
		employeeId = &id
	}

	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.activityService.List(ctx.Context(), employeeId, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get activity log", res))
}

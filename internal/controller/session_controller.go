package controller

import (
	"tenderdesk-be/internal/pkg/serverutils"
	"tenderdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	GetActive(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Get("active", c.GetActive)
}

func (c *sessionController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.sessionService.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get live sessions", res))
}

func (c *sessionController) GetActive(ctx *fiber.Ctx) error {
	res, err := c.sessionService.GetActive(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get active sessions", res))
}

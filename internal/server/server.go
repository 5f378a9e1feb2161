package server

import (
	"log"

	"tenderdesk-be/internal/bootstrap"
	"tenderdesk-be/internal/config"
	"tenderdesk-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB, document uploads
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	// uploaded documents are served straight from disk
	app.Static("/uploads", "./uploads")

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.EmployeeController.RegisterRoutes(api)

	c.TenderController.RegisterRoutes(api)
	c.TrackingController.RegisterRoutes(api)
	c.StudyController.RegisterRoutes(api)

	c.SnapshotController.RegisterRoutes(api)
	c.SessionController.RegisterRoutes(api)

	c.CompanyController.RegisterRoutes(api)
	c.DocumentController.RegisterRoutes(api)
	c.ActivityController.RegisterRoutes(api)

	c.NotificationHandler.RegisterRoutes(api)
}

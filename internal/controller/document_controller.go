package controller

import (
	"io"

	"tenderdesk-be/internal/pkg/serverutils"
	"tenderdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	ListByCompany(ctx *fiber.Ctx) error
	ListByTender(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
}

func NewDocumentController(documentService service.IDocumentService) IDocumentController {
	return &documentController{
		documentService: documentService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Upload)
	h.Get("company/:companyId", c.ListByCompany)
	h.Get("tender/:tenderId", c.ListByTender)
	h.Delete(":id", c.Delete)
}

// Upload takes a multipart form: "file" plus either "company_id" or
// "tender_id" to attach the document to.
func (c *documentController) Upload(ctx *fiber.Ctx) error {
	employeeIdStr, _ := ctx.Locals("employee_id").(string)
	employeeId, _ := uuid.Parse(employeeIdStr)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	input := &service.UploadDocumentInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}
	if v := ctx.FormValue("company_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid company id")
		}
		input.CompanyId = &id
	}
	if v := ctx.FormValue("tender_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid tender id")
		}
		input.TenderId = &id
	}

	res, err := c.documentService.Upload(ctx.Context(), employeeId, input)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success upload document", res))
}

func (c *documentController) ListByCompany(ctx *fiber.Ctx) error {
	companyId, err := uuid.Parse(ctx.Params("companyId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid company id")
	}

	res, err := c.documentService.ListByCompany(ctx.Context(), companyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get company documents", res))
}

func (c *documentController) ListByTender(ctx *fiber.Ctx) error {
	tenderId, err := uuid.Parse(ctx.Params("tenderId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid tender id")
	}

	res, err := c.documentService.ListByTender(ctx.Context(), tenderId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get tender documents", res))
}

func (c *documentController) Delete(ctx *fiber.Ctx) error {
	employeeIdStr, _ := ctx.Locals("employee_id").(string)
	employeeId, _ := uuid.Parse(employeeIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid document id")
	}

	if err := c.documentService.Delete(ctx.Context(), employeeId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete document", nil))
}

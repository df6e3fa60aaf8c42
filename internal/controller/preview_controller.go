// FILE: internal/controller/preview_controller.go
package controller

import (
	"ai-docauthor-be/internal/dto"
	"ai-docauthor-be/internal/pkg/serverutils"
	"ai-docauthor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPreviewController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type previewController struct {
	previewService service.IPreviewService
}

func NewPreviewController(previewService service.IPreviewService) IPreviewController {
	return &previewController{
		previewService: previewService,
	}
}

func (c *previewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/preview/v1")
	h.Post("", c.Create)
	h.Get(":previewId", c.Show)
}

func (c *previewController) Create(ctx *fiber.Ctx) error {
	var req dto.CreatePreviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.previewService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create preview", res))
}

func (c *previewController) Show(ctx *fiber.Ctx) error {
	res, err := c.previewService.Show(ctx.Context(), ctx.Params("previewId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get preview", res))
}

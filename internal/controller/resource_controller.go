// FILE: internal/controller/resource_controller.go
package controller

import (
	"strconv"

	"ai-docauthor-be/internal/dto"
	"ai-docauthor-be/internal/pkg/serverutils"
	"ai-docauthor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IResourceController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	UploadFile(ctx *fiber.Ctx) error
	AddURL(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type resourceController struct {
	resourceService service.IResourceService
}

func NewResourceController(resourceService service.IResourceService) IResourceController {
	return &resourceController{
		resourceService: resourceService,
	}
}

func (c *resourceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/resource/v1")
	h.Get(":docId", c.List)
	h.Post(":docId/upload", c.UploadFile)
	h.Post(":docId/url", c.AddURL)
	h.Delete(":docId/:resourceId", c.Delete)
}

func (c *resourceController) List(ctx *fiber.Ctx) error {
	docId, err := parseIdParam(ctx, "docId")
	if err != nil {
		return err
	}

	res, err := c.resourceService.List(ctx.Context(), docId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list resources", res))
}

func (c *resourceController) UploadFile(ctx *fiber.Ctx) error {
	docId, err := parseIdParam(ctx, "docId")
	if err != nil {
		return err
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.NewApiError(fiber.StatusBadRequest, "missing file upload field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	res, err := c.resourceService.UploadFile(ctx.Context(), docId, fileHeader.Filename, file)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload resource", res))
}

func (c *resourceController) AddURL(ctx *fiber.Ctx) error {
	docId, err := parseIdParam(ctx, "docId")
	if err != nil {
		return err
	}

	var req dto.AddURLResourceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.DocId = docId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.resourceService.AddURL(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add url resource", res))
}

func (c *resourceController) Delete(ctx *fiber.Ctx) error {
	docId, err := parseIdParam(ctx, "docId")
	if err != nil {
		return err
	}

	resourceId, err := strconv.Atoi(ctx.Params("resourceId"))
	if err != nil {
		return serverutils.NewApiError(fiber.StatusBadRequest, "invalid resourceId parameter")
	}

	req := dto.DeleteResourceRequest{
		DocId:      docId,
		ResourceId: resourceId,
	}

	if err := c.resourceService.Delete(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete resource", struct{}{}))
}

// FILE: internal/controller/section_controller.go
package controller

import (
	"ai-docauthor-be/internal/dto"
	"ai-docauthor-be/internal/pkg/serverutils"
	"ai-docauthor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISectionController interface {
	RegisterRoutes(r fiber.Router)
	Add(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
	Improve(ctx *fiber.Ctx) error
	GenerateAll(ctx *fiber.Ctx) error
	SelectRevision(ctx *fiber.Ctx) error
}

type sectionController struct {
	sectionService service.ISectionService
}

func NewSectionController(sectionService service.ISectionService) ISectionController {
	return &sectionController{
		sectionService: sectionService,
	}
}

func (c *sectionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/section/v1")
	h.Post(":docId", c.Add)
	h.Post(":docId/generate-all", c.GenerateAll)
	h.Put(":docId/:sectionId", c.Update)
	h.Delete(":docId/:sectionId", c.Delete)
	h.Post(":docId/:sectionId/generate", c.Generate)
	h.Post(":docId/:sectionId/improve", c.Improve)
	h.Post(":docId/:sectionId/revisions/select", c.SelectRevision)
}

func (c *sectionController) Add(ctx *fiber.Ctx) error {
	docId, err := parseIdParam(ctx, "docId")
	if err != nil {
		return err
	}

	var req dto.AddSectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.DocId = docId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sectionService.Add(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add section", res))
}

func (c *sectionController) Update(ctx *fiber.Ctx) error {
	docId, err := parseIdParam(ctx, "docId")
	if err != nil {
		return err
	}

	var req dto.UpdateSectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.DocId = docId
	req.SectionId = ctx.Params("sectionId")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sectionService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update section", res))
}

func (c *sectionController) Delete(ctx *fiber.Ctx) error {
	docId, err := parseIdParam(ctx, "docId")
	if err != nil {
		return err
	}

	req := dto.DeleteSectionRequest{
		DocId:     docId,
		SectionId: ctx.Params("sectionId"),
	}

	if err := c.sectionService.Delete(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete section", struct{}{}))
}

func (c *sectionController) Improve(ctx *fiber.Ctx) error {
	docId, err := parseIdParam(ctx, "docId")
	if err != nil {
		return err
	}

	var req dto.ImproveSectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.DocId = docId
	req.SectionId = ctx.Params("sectionId")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sectionService.Improve(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success improve section", res))
}

func (c *sectionController) Generate(ctx *fiber.Ctx) error {
	docId, err := parseIdParam(ctx, "docId")
	if err != nil {
		return err
	}

	req := dto.GenerateSectionRequest{
		DocId:     docId,
		SectionId: ctx.Params("sectionId"),
	}

	res, err := c.sectionService.Generate(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate section", res))
}

func (c *sectionController) GenerateAll(ctx *fiber.Ctx) error {
	docId, err := parseIdParam(ctx, "docId")
	if err != nil {
		return err
	}

	res, err := c.sectionService.GenerateAll(ctx.Context(), docId)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Generation run started", res))
}

func (c *sectionController) SelectRevision(ctx *fiber.Ctx) error {
	docId, err := parseIdParam(ctx, "docId")
	if err != nil {
		return err
	}

	var req dto.SelectRevisionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.DocId = docId
	req.SectionId = ctx.Params("sectionId")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sectionService.SelectRevision(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success select revision", res))
}

// FILE: internal/controller/plan_controller.go
package controller

import (
	"ai-docauthor-be/internal/dto"
	"ai-docauthor-be/internal/pkg/serverutils"
	"ai-docauthor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPlanController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Refine(ctx *fiber.Ctx) error
	Finalize(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

type planController struct {
	planService service.IPlanService
}

func NewPlanController(planService service.IPlanService) IPlanController {
	return &planController{
		planService: planService,
	}
}

func (c *planController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/plan/v1")
	h.Post(":docId/generate", c.Generate)
	h.Post(":docId/refine", c.Refine)
	h.Post(":docId/finalize", c.Finalize)
	h.Post(":docId/reset", c.Reset)
}

func (c *planController) Generate(ctx *fiber.Ctx) error {
	docId, err := parseIdParam(ctx, "docId")
	if err != nil {
		return err
	}

	res, err := c.planService.Generate(ctx.Context(), docId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate plan", res))
}

func (c *planController) Refine(ctx *fiber.Ctx) error {
	docId, err := parseIdParam(ctx, "docId")
	if err != nil {
		return err
	}

	var req dto.RefinePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.DocId = docId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.planService.Refine(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success refine plan", res))
}

func (c *planController) Finalize(ctx *fiber.Ctx) error {
	docId, err := parseIdParam(ctx, "docId")
	if err != nil {
		return err
	}

	res, err := c.planService.Finalize(ctx.Context(), docId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success finalize plan", res))
}

func (c *planController) Reset(ctx *fiber.Ctx) error {
	docId, err := parseIdParam(ctx, "docId")
	if err != nil {
		return err
	}

	res, err := c.planService.Reset(ctx.Context(), docId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success reset plan", res))
}

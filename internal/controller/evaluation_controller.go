// FILE: internal/controller/evaluation_controller.go
package controller

import (
	"ai-docauthor-be/internal/pkg/serverutils"
	"ai-docauthor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEvaluationController interface {
	RegisterRoutes(r fiber.Router)
	Evaluate(ctx *fiber.Ctx) error
	Improve(ctx *fiber.Ctx) error
}

type evaluationController struct {
	evaluationService service.IEvaluationService
}

func NewEvaluationController(evaluationService service.IEvaluationService) IEvaluationController {
	return &evaluationController{
		evaluationService: evaluationService,
	}
}

func (c *evaluationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/evaluation/v1")
	h.Post(":docId/evaluate", c.Evaluate)
	h.Post(":docId/improve-all", c.Improve)
}

func (c *evaluationController) Evaluate(ctx *fiber.Ctx) error {
	docId, err := parseIdParam(ctx, "docId")
	if err != nil {
		return err
	}

	res, err := c.evaluationService.Evaluate(ctx.Context(), docId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success evaluate document", res))
}

func (c *evaluationController) Improve(ctx *fiber.Ctx) error {
	docId, err := parseIdParam(ctx, "docId")
	if err != nil {
		return err
	}

	res, err := c.evaluationService.Improve(ctx.Context(), docId)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Improvement run started", res))
}

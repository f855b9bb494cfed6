package controller

import (
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/dto"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/pkg/serverutils"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPredictionController interface {
	RegisterRoutes(r fiber.Router)
	Predict(ctx *fiber.Ctx) error
}

type predictionController struct {
	predictionService service.IPredictionService
}

func NewPredictionController(predictionService service.IPredictionService) IPredictionController {
	return &predictionController{
		predictionService: predictionService,
	}
}

func (c *predictionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/prediction/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Predict)
}

func (c *predictionController) Predict(ctx *fiber.Ctx) error {
	var req dto.PredictionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.predictionService.Predict(ctx.Context(), &req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate prediction", res))
}

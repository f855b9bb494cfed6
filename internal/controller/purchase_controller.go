package controller

import (
	"errors"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/dto"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/pkg/serverutils"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPurchaseController interface {
	RegisterRoutes(r fiber.Router)
	Buy(ctx *fiber.Ctx) error
	MyPurchases(ctx *fiber.Ctx) error
	MySales(ctx *fiber.Ctx) error
	Wallet(ctx *fiber.Ctx) error
	Topup(ctx *fiber.Ctx) error
}

type purchaseController struct {
	purchaseService service.IPurchaseService
}

func NewPurchaseController(purchaseService service.IPurchaseService) IPurchaseController {
	return &purchaseController{
		purchaseService: purchaseService,
	}
}

func (c *purchaseController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/purchase/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("buy", c.Buy)
	h.Get("mine", c.MyPurchases)
	h.Get("sales", c.MySales)
	h.Get("wallet", c.Wallet)
	h.Post("wallet/topup", c.Topup)
}

func (c *purchaseController) Buy(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.BuyTicketRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.purchaseService.BuyTicket(ctx.Context(), userId, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTicketNotFound):
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInsufficientBalance):
			return fiber.NewError(fiber.StatusPaymentRequired, err.Error())
		case errors.Is(err, service.ErrAlreadyPurchased):
			return fiber.NewError(fiber.StatusConflict, err.Error())
		case errors.Is(err, service.ErrOwnTicket), errors.Is(err, service.ErrTicketExpired):
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		default:
			return err
		}
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success buy ticket", res))
}

func (c *purchaseController) MyPurchases(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.purchaseService.GetMyPurchases(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list purchases", res))
}

func (c *purchaseController) MySales(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.purchaseService.GetMySales(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list sales", res))
}

func (c *purchaseController) Wallet(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.purchaseService.GetWallet(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get wallet", res))
}

func (c *purchaseController) Topup(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.TopupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.purchaseService.Topup(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success top up wallet", res))
}

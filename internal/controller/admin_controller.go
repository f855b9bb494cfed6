package controller

import (
	"errors"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/dto"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/pkg/serverutils"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/service"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/admin/refund"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	DashboardStats(ctx *fiber.Ctx) error
	ListUsers(ctx *fiber.Ctx) error
	UpdateUserStatus(ctx *fiber.Ctx) error
	ProcessRefund(ctx *fiber.Ctx) error
	UpdateCaseStatus(ctx *fiber.Ctx) error
	SystemLogs(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService service.IAdminService
	caseService  service.ICaseService
}

func NewAdminController(adminService service.IAdminService, caseService service.ICaseService) IAdminController {
	return &adminController{
		adminService: adminService,
		caseService:  caseService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.AdminMiddleware)
	h.Get("dashboard", c.DashboardStats)
	h.Get("users", c.ListUsers)
	h.Patch("users/:id/status", c.UpdateUserStatus)
	h.Post("cases/:id/refund", c.ProcessRefund)
	h.Patch("cases/:id/status", c.UpdateCaseStatus)
	h.Get("logs", c.SystemLogs)
}

func (c *adminController) DashboardStats(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetDashboardStats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard stats", res))
}

func (c *adminController) ListUsers(ctx *fiber.Ctx) error {
	role := ctx.Query("role")

	res, err := c.adminService.GetAllUsers(ctx.Context(), role)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list users", res))
}

func (c *adminController) UpdateUserStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	var req dto.AdminUpdateUserStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.adminService.UpdateUserStatus(ctx.Context(), id, req)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update user status", res))
}

func (c *adminController) ProcessRefund(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid case id")
	}

	var req dto.AdminProcessRefundRequest
	if err := ctx.BodyParser(&req); err != nil && len(ctx.Body()) > 0 {
		return err
	}

	res, err := c.adminService.ProcessRefund(ctx.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, refund.ErrCaseNotFound), errors.Is(err, refund.ErrPurchaseNotFound):
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		case errors.Is(err, refund.ErrAlreadyRefunded):
			return fiber.NewError(fiber.StatusConflict, err.Error())
		case errors.Is(err, refund.ErrCaseNotRefundable):
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		default:
			return err
		}
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process refund", res))
}

func (c *adminController) UpdateCaseStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid case id")
	}

	var req dto.UpdateCaseStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.caseService.UpdateStatus(ctx.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCaseNotFound):
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidTransition), errors.Is(err, service.ErrRefundViaStatusEdit):
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		default:
			return err
		}
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update case status", res))
}

func (c *adminController) SystemLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.adminService.GetSystemLogs(ctx.Context(), level, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get system logs", res))
}

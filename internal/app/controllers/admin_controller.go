package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tunde/campusfound/internal/app/models/dto"
	"github.com/tunde/campusfound/internal/app/services"
	"github.com/tunde/campusfound/internal/middleware"
)

// AdminController handles the administrator surface: the admin dashboard,
// item verification and closing items out as returned.
type AdminController struct {
	itemService      *services.ItemService
	dashboardService *services.DashboardService
	authService      *services.AuthService
	logger           zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(itemService *services.ItemService, dashboardService *services.DashboardService, authService *services.AuthService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		itemService:      itemService,
		dashboardService: dashboardService,
		authService:      authService,
		logger:           logger,
	}
}

// Dashboard returns the administrator dashboard
// @Summary Admin dashboard
// @Description Global counts per status plus the oldest unverified reports.
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AdminDashboardResponse}
// @Router /admin/dashboard [get]
// @Security Bearer
func (c *AdminController) Dashboard(ctx *gin.Context) {
	dashboard, err := c.dashboardService.AdminDashboard(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dashboard))
}

// VerifyItem records an admin attestation on a report
// @Summary Verify an item
// @Description Marks a report as verified by the calling administrator.
// @Tags admin
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} dto.APIResponse{data=dto.ItemResponse} "Item verified"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Router /admin/items/{id}/verify [post]
// @Security Bearer
func (c *AdminController) VerifyItem(ctx *gin.Context) {
	id, ok := parseItemID(ctx)
	if !ok {
		return
	}
	adminID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	item, err := c.itemService.VerifyItem(ctx.Request.Context(), id, adminID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromItem(item)))
}

// VerifyUser confirms a user's identity
// @Summary Verify a user
// @Description Marks a user account as verified after an identity check.
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse "User verified"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/users/{id}/verify [post]
// @Security Bearer
func (c *AdminController) VerifyUser(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.authService.VerifyUser(ctx.Request.Context(), userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("User verified"))
}

// ReturnItem closes out a found item as returned to its owner
// @Summary Mark an item returned
// @Description Transitions a found item to the terminal returned status after the physical hand-over.
// @Tags admin
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} dto.APIResponse{data=dto.ItemResponse} "Item returned"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Failure 409 {object} dto.ErrorResponse "Item is not in found status"
// @Router /admin/items/{id}/return [post]
// @Security Bearer
func (c *AdminController) ReturnItem(ctx *gin.Context) {
	id, ok := parseItemID(ctx)
	if !ok {
		return
	}

	item, err := c.itemService.ReturnItem(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromItem(item)))
}

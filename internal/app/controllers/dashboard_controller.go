package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tunde/campusfound/internal/app/models/dto"
	"github.com/tunde/campusfound/internal/app/services"
	"github.com/tunde/campusfound/internal/middleware"
)

// DashboardController serves the landing page, the student dashboard and the
// my-reports summary.
type DashboardController struct {
	dashboardService *services.DashboardService
	logger           zerolog.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService, logger zerolog.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Landing returns the public landing aggregates
// @Summary Landing page data
// @Description Overall report counts plus a small random sample of items. No authentication required.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.LandingResponse}
// @Router / [get]
func (c *DashboardController) Landing(ctx *gin.Context) {
	landing, err := c.dashboardService.Landing(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(landing))
}

// Dashboard returns the authenticated student's dashboard
// @Summary Student dashboard
// @Description Per-user counts plus recently found items and the user's own recent reports.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StudentDashboardResponse}
// @Router /dashboard [get]
// @Security Bearer
func (c *DashboardController) Dashboard(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	dashboard, err := c.dashboardService.StudentDashboard(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dashboard))
}

// MyReports returns the caller's report summary
// @Summary My reports
// @Description Everything the caller has reported, with totals and a per-status breakdown.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.MyReportsResponse}
// @Router /my-reports [get]
// @Security Bearer
func (c *DashboardController) MyReports(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	reports, err := c.dashboardService.MyReports(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(reports))
}

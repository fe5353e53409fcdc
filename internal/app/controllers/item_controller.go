package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tunde/campusfound/internal/app/models"
	"github.com/tunde/campusfound/internal/app/models/dto"
	"github.com/tunde/campusfound/internal/app/repositories"
	"github.com/tunde/campusfound/internal/app/services"
	"github.com/tunde/campusfound/internal/middleware"
	"github.com/tunde/campusfound/internal/pkg/helpers"
)

// ItemController handles item reporting, listings and the claim workflow
type ItemController struct {
	itemService *services.ItemService
	logger      zerolog.Logger
}

// NewItemController creates a new ItemController
func NewItemController(itemService *services.ItemService, logger zerolog.Logger) *ItemController {
	return &ItemController{
		itemService: itemService,
		logger:      logger,
	}
}

func parseItemID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid item id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

func requireUserID(ctx *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return userID, true
}

// Report handles a new lost or found item report
// @Summary Report an item
// @Description Creates a lost or found report. Accepts multipart form data with an optional image.
// @Tags items
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Item title"
// @Param description formData string true "Item description"
// @Param category formData string true "Item category"
// @Param status formData string true "lost or found"
// @Param dateOccurred formData string true "When the item was lost or found (RFC 3339)"
// @Param image formData file false "Item photo"
// @Success 201 {object} dto.APIResponse{data=dto.ItemResponse} "Report created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Router /items [post]
// @Security Bearer
func (c *ItemController) Report(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.ReportItemRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid item report payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	// Image is optional; FormFile errors just mean none was sent
	image, _ := ctx.FormFile("image")

	item, err := c.itemService.ReportItem(ctx.Request.Context(), userID, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromItem(item)))
}

// Get returns a single item
// @Summary Get an item
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} dto.APIResponse{data=dto.ItemResponse}
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Router /items/{id} [get]
// @Security Bearer
func (c *ItemController) Get(ctx *gin.Context) {
	id, ok := parseItemID(ctx)
	if !ok {
		return
	}

	item, err := c.itemService.GetItem(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromItem(item)))
}

// listFor serves the lost and found listings, which differ only in the fixed
// status and in which filters apply.
func (c *ItemController) listFor(ctx *gin.Context, status models.ItemStatus) {
	filter := repositories.ItemFilter{
		Status:    status,
		Search:    ctx.Query("search"),
		Category:  ctx.Query("category"),
		DateRange: ctx.Query("date"),
	}
	// The claim filter only makes sense for found items
	if status == models.StatusFound {
		filter.Claim = ctx.Query("claim")
	}

	page := helpers.ParsePageParam(ctx)

	listing, err := c.itemService.ListItems(ctx.Request.Context(), filter, page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(listing))
}

// ListLost returns the lost item listing
// @Summary List lost items
// @Description Filtered, paginated listing of lost items, newest report first. Page numbers beyond the last page are clamped.
// @Tags items
// @Produce json
// @Param search query string false "Case-insensitive search across title, description, location and category"
// @Param category query string false "Exact category filter"
// @Param date query string false "today or week, on the date the item was lost"
// @Param page query int false "1-based page number"
// @Success 200 {object} dto.APIResponse{data=dto.ItemListResponse}
// @Router /items/lost [get]
// @Security Bearer
func (c *ItemController) ListLost(ctx *gin.Context) {
	c.listFor(ctx, models.StatusLost)
}

// ListFound returns the found item listing
// @Summary List found items
// @Description Filtered, paginated listing of found items. Supports the same filters as the lost listing plus a claimed/unclaimed filter.
// @Tags items
// @Produce json
// @Param search query string false "Case-insensitive search across title, description, location and category"
// @Param category query string false "Exact category filter"
// @Param date query string false "today or week, on the date the item was found"
// @Param claim query string false "claimed or unclaimed"
// @Param page query int false "1-based page number"
// @Success 200 {object} dto.APIResponse{data=dto.ItemListResponse}
// @Router /items/found [get]
// @Security Bearer
func (c *ItemController) ListFound(ctx *gin.Context) {
	c.listFor(ctx, models.StatusFound)
}

// Claim claims a found item for the caller
// @Summary Claim a found item
// @Description Claims a found item. The item must be unclaimed and not reported by the caller; under concurrent claims exactly one caller wins.
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} dto.APIResponse{data=dto.ItemResponse} "Item claimed"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Failure 409 {object} dto.ErrorResponse "Item already claimed, not claimable or reported by the caller"
// @Router /items/{id}/claim [post]
// @Security Bearer
func (c *ItemController) Claim(ctx *gin.Context) {
	id, ok := parseItemID(ctx)
	if !ok {
		return
	}
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	item, err := c.itemService.ClaimItem(ctx.Request.Context(), id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromItem(item)))
}

// ClaimConfirm returns the item for the claim confirmation page
// @Summary Preview a claim
// @Description Returns the item if the caller could claim it right now, so the client can show a confirmation page.
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} dto.APIResponse{data=dto.ItemResponse}
// @Failure 409 {object} dto.ErrorResponse "Item is not claimable by the caller"
// @Router /items/{id}/claim-confirm [get]
// @Security Bearer
func (c *ItemController) ClaimConfirm(ctx *gin.Context) {
	id, ok := parseItemID(ctx)
	if !ok {
		return
	}
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	item, err := c.itemService.GetClaimable(ctx.Request.Context(), id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromItem(item)))
}

// MarkFound flips a lost item to found
// @Summary Mark a lost item as found
// @Description Marks another user's lost item as found. The found location is optional and defaults to "Not specified".
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body dto.MarkFoundRequest false "Found location"
// @Success 200 {object} dto.APIResponse{data=dto.ItemResponse} "Item marked as found"
// @Failure 409 {object} dto.ErrorResponse "Item is not lost or belongs to the caller"
// @Router /items/{id}/mark-found [post]
// @Security Bearer
func (c *ItemController) MarkFound(ctx *gin.Context) {
	id, ok := parseItemID(ctx)
	if !ok {
		return
	}
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.MarkFoundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	item, err := c.itemService.MarkFound(ctx.Request.Context(), id, userID, req.LocationFound)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromItem(item)))
}

// FoundConfirm returns the item for the found confirmation page
// @Summary Preview a mark-as-found
// @Description Returns the item if the caller could mark it found right now, so the client can collect the found location first.
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} dto.APIResponse{data=dto.ItemResponse}
// @Failure 409 {object} dto.ErrorResponse "Item is not lost or belongs to the caller"
// @Router /items/{id}/found-confirm [get]
// @Security Bearer
func (c *ItemController) FoundConfirm(ctx *gin.Context) {
	id, ok := parseItemID(ctx)
	if !ok {
		return
	}
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	item, err := c.itemService.GetMarkableFound(ctx.Request.Context(), id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromItem(item)))
}

// FoundConfirmSubmit completes the confirmation path of mark-as-found
// @Summary Confirm a mark-as-found
// @Description Marks the item found with an explicit location. Unlike the direct path, the location is required here.
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body dto.FoundConfirmRequest true "Found location"
// @Success 200 {object} dto.APIResponse{data=dto.ItemResponse} "Item marked as found"
// @Failure 400 {object} dto.ErrorResponse "Missing found location"
// @Failure 409 {object} dto.ErrorResponse "Item is not lost or belongs to the caller"
// @Router /items/{id}/found-confirm [post]
// @Security Bearer
func (c *ItemController) FoundConfirmSubmit(ctx *gin.Context) {
	id, ok := parseItemID(ctx)
	if !ok {
		return
	}
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.FoundConfirmRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	item, err := c.itemService.MarkFoundConfirmed(ctx.Request.Context(), id, userID, req.LocationFound)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromItem(item)))
}

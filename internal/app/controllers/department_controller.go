package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tunde/campusfound/internal/app/models/dto"
	"github.com/tunde/campusfound/internal/app/services"
	"github.com/tunde/campusfound/internal/middleware"
)

// DepartmentController handles department endpoints
type DepartmentController struct {
	departmentService *services.DepartmentService
	logger            zerolog.Logger
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService *services.DepartmentService, logger zerolog.Logger) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
		logger:            logger,
	}
}

// List returns all departments
// @Summary List departments
// @Description All departments ordered by name, for the registration form.
// @Tags departments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.DepartmentResponse}
// @Router /departments [get]
func (c *DepartmentController) List(ctx *gin.Context) {
	departments, err := c.departmentService.GetDepartments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromDepartments(departments)))
}

// Create adds a new department
// @Summary Create a department
// @Description Creates a department with a 3-letter uppercase code. Admin only; the code feeds the matric number check.
// @Tags departments
// @Accept json
// @Produce json
// @Param request body dto.CreateDepartmentRequest true "Department name and code"
// @Success 201 {object} dto.APIResponse{data=dto.DepartmentResponse} "Department created"
// @Failure 409 {object} dto.ErrorResponse "Name or code already exists"
// @Router /admin/departments [post]
// @Security Bearer
func (c *DepartmentController) Create(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	department, err := c.departmentService.CreateDepartment(ctx.Request.Context(), req.Name, req.Code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromDepartment(department)))
}

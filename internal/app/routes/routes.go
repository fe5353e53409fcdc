package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/tunde/campusfound/internal/app/controllers"
	"github.com/tunde/campusfound/internal/app/models"
	"github.com/tunde/campusfound/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	itemController *controllers.ItemController,
	dashboardController *controllers.DashboardController,
	departmentController *controllers.DepartmentController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.GET("/", dashboardController.Landing)
	v1.GET("/departments", departmentController.List)

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/dashboard", dashboardController.Dashboard)
		authenticated.GET("/my-reports", dashboardController.MyReports)
		authenticated.GET("/profile", authController.Profile)
		authenticated.POST("/auth/logout-all", authController.LogoutAll)

		items := authenticated.Group("/items")
		{
			items.POST("", itemController.Report)
			items.GET("/lost", itemController.ListLost)
			items.GET("/found", itemController.ListFound)
			items.GET("/:id", itemController.Get)
			items.POST("/:id/claim", itemController.Claim)
			items.GET("/:id/claim-confirm", itemController.ClaimConfirm)
			items.POST("/:id/mark-found", itemController.MarkFound)
			items.GET("/:id/found-confirm", itemController.FoundConfirm)
			items.POST("/:id/found-confirm", itemController.FoundConfirmSubmit)
		}

		// Admin-only surface
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(string(models.UserTypeAdmin)))
		{
			admin.GET("/dashboard", adminController.Dashboard)
			admin.POST("/departments", departmentController.Create)
			admin.POST("/items/:id/verify", adminController.VerifyItem)
			admin.POST("/items/:id/return", adminController.ReturnItem)
			admin.POST("/users/:id/verify", adminController.VerifyUser)
		}
	}
}

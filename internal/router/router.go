package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"billbook/internal/domain"
	"billbook/internal/handler"
	"billbook/internal/middleware"
	"billbook/internal/service"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Party      *handler.PartyHandler
	Item       *handler.ItemHandler
	Document   *handler.DocumentHandler
	Payment    *handler.PaymentHandler
	Report     *handler.ReportHandler
	Attachment *handler.AttachmentHandler
	Health     *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(logger zerolog.Logger, allowedOrigins []string, authSvc service.AuthService, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)
	auth.POST("/register", h.Auth.Register)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))
	protected.GET("/auth/me", h.Auth.Me)

	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), h.User.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), h.User.List)
	users.GET("/:id", h.User.GetByID)

	parties := protected.Group("/parties")
	parties.POST("", h.Party.Create)
	parties.GET("", h.Party.List)
	parties.GET("/:id", h.Party.GetByID)
	parties.PUT("/:id", h.Party.Update)
	parties.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Party.Delete)
	parties.GET("/:id/statement", h.Party.Statement)

	items := protected.Group("/items")
	items.POST("", h.Item.Create)
	items.GET("", h.Item.List)
	items.GET("/:id", h.Item.GetByID)
	items.PUT("/:id", h.Item.Update)
	items.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Item.Delete)

	documents := protected.Group("/documents")
	documents.POST("/preview", h.Document.Preview)
	documents.POST("", h.Document.Create)
	documents.GET("", h.Document.List)
	documents.GET("/:id", h.Document.GetByID)
	documents.PUT("/:id", h.Document.Update)
	documents.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Document.Delete)
	documents.POST("/:id/email", h.Document.Email)
	documents.POST("/:id/attachments", h.Attachment.Upload)
	documents.GET("/:id/attachments", h.Attachment.ListByDocument)

	attachments := protected.Group("/attachments")
	attachments.GET("/:id", h.Attachment.GetByID)
	attachments.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Attachment.Delete)

	payments := protected.Group("/payments")
	payments.POST("", h.Payment.Create)
	payments.GET("", h.Payment.List)
	payments.GET("/:id", h.Payment.GetByID)
	payments.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Payment.Delete)

	reports := protected.Group("/reports")
	reports.GET("/balance-sheet", h.Report.BalanceSheet)

	return r
}

package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/speakwise/speakwise-api/internal/config"
	domainRepo "github.com/speakwise/speakwise-api/internal/domain/repository"
	"github.com/speakwise/speakwise-api/internal/presentation/http/handler"
	"github.com/speakwise/speakwise-api/internal/presentation/http/middleware"
	"github.com/speakwise/speakwise-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Course    *handler.CourseHandler
	Coupon    *handler.CouponHandler
	Checkout  *handler.CheckoutHandler
	Content   *handler.ContentHandler
	Poll      *handler.PollHandler
	Question  *handler.QuestionHandler
	Review    *handler.ReviewHandler
	Call      *handler.CallHandler
	User      *handler.UserHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerPublicRoutes(v1, h, deps)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)

		// Admin routes (permission-gated)
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(deps.JWTManager))
		admin.Use(rateLimiter.Middleware())
		registerAdminRoutes(admin, h)
	}

	return router
}

func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/otp/request", h.Auth.RequestOTP)
		auth.POST("/otp/verify", h.Auth.VerifyOTP)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}

	// Catalog and site content, with optional auth so enrollment state and
	// editor-only filters resolve when a token is present
	public := v1.Group("")
	public.Use(middleware.OptionalAuthMiddleware(deps.JWTManager))
	{
		public.GET("/courses", h.Course.Browse)
		public.GET("/courses/signed-url", h.Course.SignedAssetURL)
		public.GET("/courses/:slug", h.Course.Get)
		public.GET("/faqs", h.Content.ListFAQs)
		public.GET("/policies", h.Content.ListPolicies)
		public.GET("/policies/:slug", h.Content.GetPolicy)
		public.GET("/quests", h.Content.ListQuests)
		public.GET("/polls", h.Poll.List)
		public.GET("/polls/:id", h.Poll.Get)
		public.GET("/questions", h.Question.List)
		public.GET("/questions/:id", h.Question.Get)
		public.GET("/reviews", h.Review.List)
		public.POST("/calls", h.Call.Request)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Checkout
	idempotency := middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}
	protected.POST("/orders", middleware.IdempotencyRequired(idempotency), h.Checkout.CreateOrder)
	protected.POST("/orders/verify-payment", h.Checkout.VerifyPayment)
	protected.GET("/orders", h.Checkout.MyOrders)
	protected.GET("/orders/:id", h.Checkout.GetOrder)
	protected.GET("/enrollments", h.Checkout.MyEnrollments)
	protected.POST("/coupons/apply", h.Coupon.Apply)

	// Learning
	protected.GET("/modules/:id/video-url", h.Course.ModuleVideoURL)
	protected.POST("/reviews", h.Review.Submit)
	protected.POST("/polls/:id/vote", h.Poll.Vote)
	protected.GET("/calls/my", h.Call.My)
}

func registerAdminRoutes(admin *gin.RouterGroup, h *Handlers) {
	dashboard := admin.Group("", middleware.RequirePermission("view-dashboard"))
	{
		dashboard.GET("/dashboard", h.Dashboard.Stats)
	}

	courses := admin.Group("", middleware.RequirePermission("manage-courses"))
	{
		courses.GET("/courses", h.Course.List)
		courses.POST("/courses", h.Course.Create)
		courses.PUT("/courses/:id", h.Course.Update)
		courses.DELETE("/courses/:id", h.Course.Delete)
		courses.POST("/courses/:id/modules", h.Course.CreateModule)
		courses.PUT("/modules/:id", h.Course.UpdateModule)
		courses.DELETE("/modules/:id", h.Course.DeleteModule)
	}

	coupons := admin.Group("", middleware.RequirePermission("manage-coupons"))
	{
		coupons.GET("/coupons", h.Coupon.List)
		coupons.GET("/coupons/:id", h.Coupon.Get)
		coupons.POST("/coupons", h.Coupon.Create)
		coupons.PUT("/coupons/:id", h.Coupon.Update)
		coupons.DELETE("/coupons/:id", h.Coupon.Delete)
	}

	orders := admin.Group("", middleware.RequirePermission("manage-orders"))
	{
		orders.GET("/orders", h.Checkout.ListOrders)
	}

	content := admin.Group("", middleware.RequirePermission("manage-content"))
	{
		content.POST("/faqs", h.Content.CreateFAQ)
		content.PUT("/faqs/:id", h.Content.UpdateFAQ)
		content.DELETE("/faqs/:id", h.Content.DeleteFAQ)

		content.POST("/policies", h.Content.CreatePolicy)
		content.PUT("/policies/:id", h.Content.UpdatePolicy)
		content.DELETE("/policies/:id", h.Content.DeletePolicy)

		content.POST("/quests", h.Content.CreateQuest)
		content.PUT("/quests/:id", h.Content.UpdateQuest)
		content.DELETE("/quests/:id", h.Content.DeleteQuest)

		content.POST("/polls", h.Poll.Create)
		content.PUT("/polls/:id/status", h.Poll.SetStatus)
		content.DELETE("/polls/:id", h.Poll.Delete)

		content.POST("/questions", h.Question.Create)
		content.PUT("/questions/:id", h.Question.Update)
		content.DELETE("/questions/:id", h.Question.Delete)

		content.PUT("/reviews/:id/approve", h.Review.Approve)
		content.DELETE("/reviews/:id", h.Review.Delete)
	}

	calls := admin.Group("", middleware.RequirePermission("manage-calls"))
	{
		calls.GET("/calls", h.Call.List)
		calls.PUT("/calls/:id", h.Call.Update)
		calls.DELETE("/calls/:id", h.Call.Delete)
	}

	users := admin.Group("", middleware.RequirePermission("manage-users"))
	{
		users.GET("/users", h.User.List)
		users.GET("/users/:id", h.User.Get)
		users.PUT("/users/:id/roles", h.User.UpdateRoles)
		users.DELETE("/users/:id", h.User.Delete)
		users.GET("/roles", h.User.ListRoles)
		users.GET("/permissions", h.User.ListPermissions)
	}
}

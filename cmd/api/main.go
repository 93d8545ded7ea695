package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/speakwise/speakwise-api/internal/application/service"
	"github.com/speakwise/speakwise-api/internal/config"
	"github.com/speakwise/speakwise-api/internal/infrastructure/database"
	"github.com/speakwise/speakwise-api/internal/infrastructure/repository"
	"github.com/speakwise/speakwise-api/internal/presentation/http/handler"
	"github.com/speakwise/speakwise-api/internal/presentation/http/routes"
	"github.com/speakwise/speakwise-api/pkg/email"
	"github.com/speakwise/speakwise-api/pkg/gateway"
	"github.com/speakwise/speakwise-api/pkg/oauth"
	"github.com/speakwise/speakwise-api/pkg/otp"
	"github.com/speakwise/speakwise-api/pkg/sms"
	"github.com/speakwise/speakwise-api/pkg/storage"
	"github.com/speakwise/speakwise-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Connect to Redis (OTP store)
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	faqRepo := repository.NewFAQRepository(db)
	policyRepo := repository.NewPolicyRepository(db)
	questRepo := repository.NewQuestRepository(db)
	pollRepo := repository.NewPollRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	callRepo := repository.NewCallRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Expired idempotency keys are purged in the background
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Warning: Failed to purge expired idempotency keys: %v", err)
			}
		}
	}()

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// Initialize SMS service for OTP delivery
	smsService := sms.NewSMSService(sms.SMSConfig{
		GatewayURL: cfg.SMS.GatewayURL,
		APIKey:     cfg.SMS.APIKey,
		SenderID:   cfg.SMS.SenderID,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize OTP manager, payment gateway and asset URL signer
	otpManager := otp.NewManager(redisClient, cfg.OTP.TTL, cfg.OTP.MaxAttempts)
	razorpayClient := gateway.NewRazorpayClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	urlSigner := storage.NewURLSigner(cfg.Storage.AssetBaseURL, cfg.Storage.SigningSecret, cfg.Storage.SignedURLTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, passwordResetRepo, jwtManager, emailService, smsService, otpManager)
	courseService := service.NewCourseService(courseRepo, reviewRepo, enrollmentRepo, urlSigner)
	couponService := service.NewCouponService(couponRepo, courseRepo)
	checkoutService := service.NewCheckoutService(
		orderRepo,
		paymentRepo,
		enrollmentRepo,
		courseRepo,
		userRepo,
		couponService,
		razorpayClient,
		emailService,
		cfg.Razorpay.Currency,
	)
	contentService := service.NewContentService(faqRepo, policyRepo, questRepo)
	pollService := service.NewPollService(pollRepo)
	questionService := service.NewQuestionService(questionRepo)
	reviewService := service.NewReviewService(reviewRepo, enrollmentRepo, courseRepo)
	callService := service.NewCallService(callRepo)
	userService := service.NewUserService(userRepo, roleRepo, permissionRepo)
	dashboardService := service.NewDashboardService(analyticsRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, googleOAuthService),
		Course:    handler.NewCourseHandler(courseService),
		Coupon:    handler.NewCouponHandler(couponService),
		Checkout:  handler.NewCheckoutHandler(checkoutService),
		Content:   handler.NewContentHandler(contentService),
		Poll:      handler.NewPollHandler(pollService),
		Question:  handler.NewQuestionHandler(questionService),
		Review:    handler.NewReviewHandler(reviewService),
		Call:      handler.NewCallHandler(callService),
		User:      handler.NewUserHandler(userService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

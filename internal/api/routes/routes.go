package routes

import (
	"quickdesk-backend/internal/api/handlers"
	"quickdesk-backend/internal/api/middleware"
	"quickdesk-backend/internal/auth"
	"quickdesk-backend/internal/config"
	"quickdesk-backend/internal/notification"
	"quickdesk-backend/internal/repository"
	"quickdesk-backend/internal/security"
	"quickdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Services groups everything the HTTP layer calls into
type Services struct {
	Signup        service.SignupServiceInterface
	PasswordReset service.PasswordResetServiceInterface
	Cleanup       service.CleanupServiceInterface
	Organization  service.OrganizationServiceInterface
	Tokens        *auth.TokenIssuer
}

// NewServices wires repositories, the mail sender and the services from cfg
func NewServices(db *gorm.DB, cfg *config.Config) (*Services, error) {
	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	otpRepo := repository.NewOtpRepository(db)
	resetRepo := repository.NewPasswordResetRepository(db)
	userRepo := repository.NewUserRepository(db)
	organizationRepo := repository.NewOrganizationRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	tenantRepo := repository.NewTenantRepository(db)

	sender := notification.NewSender(cfg)
	hasher := security.NewHasher(cfg.BcryptCost)
	validator := service.NewValidator()
	settings := service.OTPSettings{TTL: cfg.OTPTTL, MaxSends: cfg.OTPMaxSends}

	return &Services{
		Signup: service.NewSignupService(
			otpRepo, userRepo, organizationRepo, tenantRepo,
			sender, hasher, tokens, validator, settings,
		),
		PasswordReset: service.NewPasswordResetService(userRepo, resetRepo, sender, hasher, validator, settings),
		Cleanup:       service.NewCleanupService(otpRepo, resetRepo),
		Organization:  service.NewOrganizationService(organizationRepo, memberRepo),
		Tokens:        tokens,
	}, nil
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, services *Services) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	healthHandler := handlers.NewHealthHandler(db)
	otpHandler := handlers.NewOTPHandler(services.Signup)
	passwordResetHandler := handlers.NewPasswordResetHandler(services.PasswordReset)
	cronHandler := handlers.NewCronHandler(services.Cleanup)
	organizationHandler := handlers.NewOrganizationHandler(services.Organization)
	authMiddleware := auth.NewAuthMiddleware(services.Tokens)

	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/send-otp", otpHandler.SendOTP)
		authGroup.POST("/resend-otp", otpHandler.ResendOTP)
		authGroup.POST("/verify-otp", otpHandler.VerifyOTP)
		authGroup.GET("/get-otp-expiration", otpHandler.GetOTPExpiration)
		authGroup.POST("/delete-expired-otp", otpHandler.DeleteExpiredOTP)

		reset := authGroup.Group("/reset-password")
		{
			reset.POST("/send-otp", passwordResetHandler.SendResetOTP)
			reset.POST("/verify", passwordResetHandler.ResetPassword)
		}
	}

	cron := api.Group("/cron", auth.RequireCronSecret(cfg.CronSecret))
	{
		cron.POST("/cleanup-otps", cronHandler.CleanupOTPs)
	}

	v1 := api.Group("/v1", authMiddleware.RequireAuth())
	{
		organizations := v1.Group("/organizations")
		{
			organizations.GET("/current", organizationHandler.GetCurrentOrganization)
		}
	}

	return router
}

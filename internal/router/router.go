package router

import (
	"vantage/config"
	"vantage/internal/handler"
	"vantage/internal/middleware"
	"vantage/internal/repository"
	"vantage/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	// Skip gin.Logger() to reduce log noise; use gin.Default() if you need request logging
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	personRepo := repository.NewPersonRepository(db)
	walletRepo := repository.NewWalletRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)
	affiliateRepo := repository.NewAffiliateRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	opportunityRepo := repository.NewOpportunityRepository(db)
	productRepo := repository.NewProductRepository(db)
	commissionRepo := repository.NewCommissionRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, db, userRepo)
	walletSvc := service.NewWalletService(db, personRepo, walletRepo, withdrawalRepo)
	affiliateSvc := service.NewAffiliateService(affiliateRepo, leadRepo)
	commissionSvc := service.NewCommissionService(db, commissionRepo, personRepo, walletSvc)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc, userRepo)
	walletHandler := handler.NewWalletHandler(walletSvc, withdrawalRepo)
	integrationHandler := handler.NewIntegrationHandler(cfg, affiliateSvc)
	ecommerceHandler := handler.NewEcommerceHandler(affiliateSvc)
	leadHandler := handler.NewLeadHandler(leadRepo)
	accountHandler := handler.NewAccountHandler(accountRepo)
	contactHandler := handler.NewContactHandler(personRepo)
	opportunityHandler := handler.NewOpportunityHandler(opportunityRepo)
	productHandler := handler.NewProductHandler(productRepo)
	commissionHandler := handler.NewCommissionHandler(commissionSvc, commissionRepo, personRepo)
	adminHandler := handler.NewAdminHandler(adminRepo, userRepo)

	authMw := middleware.AuthRequired(&cfg.JWT)
	adminMw := middleware.AdminRequired()

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/admin/login", authHandler.AdminLogin)
			authGroup.GET("/me", authMw, authHandler.Me)
		}

		wallet := api.Group("/wallet")
		wallet.Use(authMw)
		{
			wallet.GET("/me", walletHandler.GetMyWallet)
			wallet.POST("/withdrawals", walletHandler.RequestWithdrawal)
			wallet.GET("/withdrawals/me", walletHandler.MyWithdrawals)

			wallet.POST("/commission/:person_id", adminMw, walletHandler.CreditCommission)
			wallet.GET("/withdrawals", adminMw, walletHandler.ListWithdrawals)
			wallet.PUT("/withdrawals/:id", adminMw, walletHandler.UpdateWithdrawalStatus)
			wallet.GET("/:person_id/transactions", adminMw, walletHandler.ListTransactions)
		}

		integrations := api.Group("/integrations")
		{
			integrations.GET("/link", authMw, integrationHandler.GetLink)
			integrations.GET("/redirect", integrationHandler.Redirect)
		}

		// Webhooks from the e-commerce platform. Unauthenticated: the sender
		// proves nothing and the handlers treat every field as untrusted.
		ecommerce := api.Group("/ecommerce")
		{
			ecommerce.POST("/install/callback", ecommerceHandler.InstallCallback)
			ecommerce.GET("/conversion/callback", ecommerceHandler.ConversionCallback)
		}

		leads := api.Group("/leads")
		leads.Use(authMw)
		{
			leads.POST("", leadHandler.Create)
			leads.GET("", leadHandler.List)
			leads.GET("/trash", leadHandler.Trash)
			leads.GET("/:id", leadHandler.Get)
			leads.PATCH("/:id", leadHandler.Patch)
			leads.DELETE("/:id", leadHandler.Delete)
			leads.POST("/:id/restore", leadHandler.Restore)
		}

		accounts := api.Group("/accounts")
		accounts.Use(authMw)
		{
			accounts.POST("", accountHandler.Create)
			accounts.GET("", accountHandler.List)
			accounts.GET("/:id", accountHandler.Get)
			accounts.PATCH("/:id", accountHandler.Patch)
			accounts.DELETE("/:id", accountHandler.Delete)
		}

		contacts := api.Group("/contacts")
		contacts.Use(authMw)
		{
			contacts.GET("", contactHandler.List)
			contacts.GET("/:id", contactHandler.Get)
		}

		opportunities := api.Group("/opportunities")
		opportunities.Use(authMw)
		{
			opportunities.POST("", opportunityHandler.Create)
			opportunities.GET("", opportunityHandler.List)
			opportunities.GET("/:id", opportunityHandler.Get)
			opportunities.PATCH("/:id", opportunityHandler.Patch)
			opportunities.DELETE("/:id", opportunityHandler.Delete)
		}

		products := api.Group("/products")
		products.Use(authMw)
		{
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)

			products.POST("", adminMw, productHandler.Create)
			products.PATCH("/:id", adminMw, productHandler.Patch)
			products.DELETE("/:id", adminMw, productHandler.Delete)
		}

		commissions := api.Group("/commissions")
		commissions.Use(authMw)
		{
			commissions.GET("/me", commissionHandler.MyCommissions)

			commissions.POST("", adminMw, commissionHandler.Create)
			commissions.GET("", adminMw, commissionHandler.List)
			commissions.GET("/:id", adminMw, commissionHandler.Get)
			commissions.POST("/:id/pay", adminMw, commissionHandler.MarkPaid)
			commissions.POST("/:id/cancel", adminMw, commissionHandler.Cancel)
		}

		admin := api.Group("/admin")
		admin.Use(authMw, adminMw)
		{
			admin.GET("/dashboard", adminHandler.Dashboard)
			admin.GET("/users", adminHandler.ListUsers)
		}
	}

	return r
}

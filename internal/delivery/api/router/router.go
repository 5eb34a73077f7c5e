// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/config"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/api/middleware"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/api/router/handler"
	deliverymiddleware "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/middleware"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler        *handler.CartHandler
	CheckoutHandler    *handler.CheckoutHandler
	CommissionHandler  *handler.CommissionHandler
	AffiliateHandler   *handler.AffiliateHandler
	CopytradingHandler *handler.CopytradingHandler
	SiteConfigHandler  *handler.SiteConfigHandler
	TestHandler        *handler.TestHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Metrics            *metrics.Recorder `optional:"true"`
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler        *handler.CartHandler
	checkoutHandler    *handler.CheckoutHandler
	commissionHandler  *handler.CommissionHandler
	affiliateHandler   *handler.AffiliateHandler
	copytradingHandler *handler.CopytradingHandler
	siteConfigHandler  *handler.SiteConfigHandler
	testHandler        *handler.TestHandler
	authMiddleware     *middleware.AuthMiddleware
	sessionMiddleware  *deliverymiddleware.SessionMiddleware
	metrics            *metrics.Recorder
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:        params.CartHandler,
		checkoutHandler:    params.CheckoutHandler,
		commissionHandler:  params.CommissionHandler,
		affiliateHandler:   params.AffiliateHandler,
		copytradingHandler: params.CopytradingHandler,
		siteConfigHandler:  params.SiteConfigHandler,
		testHandler:        params.TestHandler,
		authMiddleware:     params.AuthMiddleware,
		sessionMiddleware:  deliverymiddleware.NewSessionMiddleware(),
		metrics:            params.Metrics,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	api := e.Group("/api")

	// Public reads
	api.GET("/site-config", r.siteConfigHandler.GetConfig)
	api.GET("/affiliates/eligibility", r.affiliateHandler.Eligibility)

	// Cart and checkout are owned by the browser session
	cartGroup := api.Group("/cart", r.sessionMiddleware.Process)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.PUT("/open", r.cartHandler.SetOpen)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:id", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	checkoutGroup := api.Group("/checkout", r.sessionMiddleware.Process)
	{
		checkoutGroup.GET("", r.checkoutHandler.GetSession)
		checkoutGroup.POST("/begin", r.checkoutHandler.Begin)
		checkoutGroup.POST("/details", r.checkoutHandler.SubmitDetails)
		checkoutGroup.POST("/back", r.checkoutHandler.Back)
		checkoutGroup.POST("/payment", r.checkoutHandler.SubmitPayment)
		checkoutGroup.POST("/cancel", r.checkoutHandler.Cancel)
	}

	// Copytrading self-service for any signed-in member
	copytradingGroup := api.Group("/copytrading", r.authMiddleware.Authenticate)
	{
		copytradingGroup.POST("/accounts", r.copytradingHandler.RegisterAccount)
		copytradingGroup.GET("/accounts/me", r.copytradingHandler.GetMyAccount)
	}

	r.registerAdminRoutes(api)
}

func (r *router) registerAdminRoutes(api *echo.Group) {
	admin := api.Group("/admin", r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))

	commissions := admin.Group("/commissions")
	{
		commissions.GET("", r.commissionHandler.ListCommissions)
		commissions.POST("", r.commissionHandler.RecordCommission)
		commissions.GET("/stats", r.commissionHandler.GetStats)
		commissions.GET("/export", r.commissionHandler.ExportCSV)
		commissions.PATCH("/:id/status", r.commissionHandler.UpdateStatus)
		commissions.POST("/bulk-status", r.commissionHandler.BulkUpdateStatus)
	}

	members := admin.Group("/members")
	{
		members.GET("", r.affiliateHandler.ListMembers)
		members.POST("", r.affiliateHandler.RegisterMember)
		members.PATCH("/:id/role", r.affiliateHandler.UpdateMemberRole)
	}

	affiliates := admin.Group("/affiliates")
	{
		affiliates.GET("", r.affiliateHandler.ListAffiliates)
		affiliates.PUT("/:id/code", r.affiliateHandler.AssignCode)
		affiliates.DELETE("/:id/code", r.affiliateHandler.RevokeCode)
		affiliates.GET("/:id/qrcode", r.affiliateHandler.QRCode)
	}

	copytrading := admin.Group("/copytrading")
	{
		copytrading.GET("/accounts", r.copytradingHandler.ListAccounts)
		copytrading.PATCH("/accounts/:userId/status", r.copytradingHandler.UpdateAccountStatus)
		copytrading.PUT("/accounts/:userId/risk", r.copytradingHandler.UpdateRiskSettings)
		copytrading.GET("/operations", r.copytradingHandler.ListOperations)
		copytrading.POST("/sync", r.copytradingHandler.Sync)
	}

	admin.PATCH("/site-config", r.siteConfigHandler.UpdateConfig)
	admin.POST("/site-config/reset", r.siteConfigHandler.ResetConfig)

	env := admin.Group("/env")
	{
		env.GET("", r.siteConfigHandler.ListEnvOverrides)
		env.PUT("/:name", r.siteConfigHandler.SetEnvOverride)
		env.DELETE("/:name", r.siteConfigHandler.DeleteEnvOverride)
	}

	admin.GET("/integrations", r.siteConfigHandler.Integrations)
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	testGroup.POST("/token", r.testHandler.IssueToken)
	testGroup.GET("/whoami", r.testHandler.WhoAmI, r.authMiddleware.Authenticate)
}

package handler

import (
	"mt5-gateway/config"
	"mt5-gateway/internal/adapter/http/middleware"
	"mt5-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	PaymentSvc     ports.PaymentService
	AccountCli     ports.AccountClient // nil = account management disabled
	Admin          config.AdminConfig
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public money-movement intents ---
	paymentHandler := NewPaymentHandler(deps.PaymentSvc)
	v1.POST("/deposits", paymentHandler.CreateDeposit)
	v1.POST("/withdrawals", paymentHandler.CreateWithdraw)

	// --- Administrative routes (shared token + IP allowlist) ---
	adminAuth := middleware.AdminAuth(deps.Admin.Token, deps.Admin.AllowIPs, deps.Logger)
	admin := v1.Group("/admin", adminAuth)

	adminHandler := NewAdminHandler(deps.PaymentSvc)
	admin.POST("/transactions/:tx_id/apply", adminHandler.ApplyTransaction)
	admin.GET("/transactions", adminHandler.ListTransactions)

	if deps.AccountCli != nil {
		accountHandler := NewAccountHandler(deps.AccountCli)
		accounts := admin.Group("/accounts")
		{
			accounts.POST("", accountHandler.CreateAccount)
			accounts.GET("/:login", accountHandler.GetAccount)
			accounts.POST("/:login/check_password", accountHandler.CheckPassword)
			accounts.POST("/:login/change_password", accountHandler.ChangePassword)
		}
	}

	return r
}

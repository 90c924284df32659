package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/obolus/obolus-backend/internal/middleware"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, rateLimiter *middleware.RateLimiter, disbursementHandler *DisbursementHandler, policyHandler *PolicyHandler) {
	// API version 1
	api := e.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Disbursement routes
	api.POST("/disbursements", disbursementHandler.Create)

	// Policy routes
	api.GET("/policies", policyHandler.List)
}

package payroll

import (
	"github.com/Yosefnago/emp-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.AuthMiddleware())
	{
		// Run dibatasi per user: perhitungan payroll mahal dan idempoten.
		payrolls.POST("/run", middleware.RateLimitByUser(2, 5), middleware.Idempotency(rdb), handler.Run)
		payrolls.GET("/stats", handler.GetStats)
		payrolls.GET("/:personalId/history", handler.GetHistory)
		payrolls.GET("/:personalId/slip", handler.DownloadSlip)
	}
}

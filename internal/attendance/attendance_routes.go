package attendance

import (
	"github.com/Yosefnago/emp-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.POST("", handler.Record)
		attendances.GET("/:personalId", handler.GetPeriod)
	}
}

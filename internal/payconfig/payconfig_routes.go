package payconfig

import (
	"github.com/Yosefnago/emp-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	configs := r.Group("/pay-configs")
	configs.Use(middleware.AuthMiddleware())
	{
		configs.POST("", handler.Create)
		configs.GET("", handler.GetAll)
		configs.GET("/:personalId", handler.GetByPersonalID)
		configs.PATCH("/:personalId", handler.Update)
		configs.DELETE("/:personalId", handler.Delete)
	}
}

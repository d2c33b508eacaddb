package employee

import (
	"github.com/Yosefnago/emp-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.POST("", handler.Create)
		employees.GET("", handler.GetAll)
		employees.GET("/:personalId", handler.GetByPersonalID)
		employees.PATCH("/:personalId", handler.Update)
	}
}

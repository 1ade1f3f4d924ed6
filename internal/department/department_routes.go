package department

import (
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	departments := r.Group("/departments")
	{
		departments.GET("", h.GetAll)
		departments.POST("", middleware.RateLimitByIP(rate.Limit(2), 5), h.Create)
	}
}

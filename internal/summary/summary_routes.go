package summary

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	summaries := r.Group("/summaries")
	{
		summaries.GET("", h.GetAll)
		summaries.POST("/refresh", h.Refresh)
	}
}

package summary

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetAll(c *gin.Context) {
	summaries, inProgress := h.service.Current(c.Request.Context())
	if summaries == nil {
		summaries = []DepartmentSummary{}
	}

	resp := SummariesResponse{
		Summaries:  summaries,
		InProgress: inProgress,
	}
	if err := h.service.LastError(); err != nil {
		resp.LastError = apperror.ToHTTP(err).Message
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Refresh(c *gin.Context) {
	summaries, err := h.service.Refresh(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	if summaries == nil {
		summaries = []DepartmentSummary{}
	}
	response.Success(c, http.StatusOK, summaries, nil)
}

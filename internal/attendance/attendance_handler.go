package attendance

import (
	"net/http"
	"strconv"

	"github.com/Yosefnago/emp-backend/internal/shared/apperror"
	"github.com/Yosefnago/emp-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Record(c *gin.Context) {
	username := c.GetString("username")

	var req RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Record(c.Request.Context(), username, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetPeriod(c *gin.Context) {
	username := c.GetString("username")
	personalID := c.Param("personalId")

	year, _ := strconv.Atoi(c.Query("year"))
	month, _ := strconv.Atoi(c.Query("month"))
	if year == 0 || month < 1 || month > 12 {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "year and month query params are required", nil)
		return
	}

	resp, err := h.service.GetPeriod(c.Request.Context(), username, personalID, year, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

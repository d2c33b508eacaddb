package payroll

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	payrollerrors "github.com/Yosefnago/emp-backend/internal/payroll/errors"
	"github.com/Yosefnago/emp-backend/internal/shared/apperror"
	"github.com/Yosefnago/emp-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Run menjalankan perhitungan gaji satu karyawan untuk satu periode.
// Dilindungi middleware idempotency: hasil sukses di-cache 24 jam per
// Idempotency-Key, lock dilepas apa pun hasilnya.
func (h *Handler) Run(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	username := c.GetString("username")

	var req RunPayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Run(c.Request.Context(), username, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetHistory(c *gin.Context) {
	username := c.GetString("username")
	personalID := c.Param("personalId")

	resp, err := h.service.GetHistory(c.Request.Context(), username, personalID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// GetStats mengembalikan ringkasan gaji satu periode milik user login.
func (h *Handler) GetStats(c *gin.Context) {
	username := c.GetString("username")

	year, _ := strconv.Atoi(c.Query("year"))
	month, _ := strconv.Atoi(c.Query("month"))
	if year == 0 || month < 1 || month > 12 {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "year and month query params are required", nil)
		return
	}

	resp, err := h.service.GetStats(c.Request.Context(), username, year, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// DownloadSlip mengirim file slip PDF dari periode yang sudah dihitung.
func (h *Handler) DownloadSlip(c *gin.Context) {
	username := c.GetString("username")
	personalID := c.Param("personalId")

	year, _ := strconv.Atoi(c.Query("year"))
	month, _ := strconv.Atoi(c.Query("month"))
	if year == 0 || month < 1 || month > 12 {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "year and month query params are required", nil)
		return
	}

	items, err := h.service.GetHistory(c.Request.Context(), username, personalID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	for _, item := range items {
		if item.SalaryYear == year && item.SalaryMonth == month {
			if item.SlipPath == "" {
				break
			}
			c.FileAttachment(item.SlipPath, "payslip.pdf")
			return
		}
	}

	h.writeServiceError(c, payrollerrors.ErrSlipNotFound)
}

package payroll_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Yosefnago/emp-backend/internal/payroll"
	payrollerrors "github.com/Yosefnago/emp-backend/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakePayrollService struct {
	runFn        func(ctx context.Context, username string, req payroll.RunPayrollRequest) (payroll.RunPayrollResponse, error)
	getHistoryFn func(ctx context.Context, username, personalID string) ([]payroll.SalaryHistoryItem, error)
	getStatsFn   func(ctx context.Context, username string, year, month int) (payroll.SalaryStatsResponse, error)
}

func (f *fakePayrollService) Run(ctx context.Context, username string, req payroll.RunPayrollRequest) (payroll.RunPayrollResponse, error) {
	if f.runFn != nil {
		return f.runFn(ctx, username, req)
	}
	return payroll.RunPayrollResponse{}, nil
}

func (f *fakePayrollService) GetHistory(ctx context.Context, username, personalID string) ([]payroll.SalaryHistoryItem, error) {
	if f.getHistoryFn != nil {
		return f.getHistoryFn(ctx, username, personalID)
	}
	return nil, nil
}

func (f *fakePayrollService) GetStats(ctx context.Context, username string, year, month int) (payroll.SalaryStatsResponse, error) {
	if f.getStatsFn != nil {
		return f.getStatsFn(ctx, username, year, month)
	}
	return payroll.SalaryStatsResponse{}, nil
}

func performRun(handler *payroll.Handler, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/payrolls/run", func(c *gin.Context) {
		c.Set("username", "yossi")
		handler.Run(c)
	})

	req := httptest.NewRequest(http.MethodPost, "/payrolls/run", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandlerRun(t *testing.T) {
	t.Run("returns computed payroll", func(t *testing.T) {
		svc := &fakePayrollService{
			runFn: func(ctx context.Context, username string, req payroll.RunPayrollRequest) (payroll.RunPayrollResponse, error) {
				assert.Equal(t, "yossi", username)
				assert.Equal(t, "123456789", req.PersonalID)
				return payroll.RunPayrollResponse{NetSalary: "1830.45", EmployerCost: "2394.35"}, nil
			},
		}
		handler := payroll.NewHandler(svc)

		rec := performRun(handler, `{"personal_id":"123456789","year":2025,"month":3}`)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var envelope struct {
			Ok   bool `json:"ok"`
			Data struct {
				NetSalary string `json:"net_salary"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.True(t, envelope.Ok)
		assert.Equal(t, "1830.45", envelope.Data.NetSalary)
	})

	t.Run("rejects invalid body", func(t *testing.T) {
		handler := payroll.NewHandler(&fakePayrollService{})

		rec := performRun(handler, `{"personal_id":"123456789","year":2025,"month":13}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("maps duplicate period to conflict", func(t *testing.T) {
		svc := &fakePayrollService{
			runFn: func(ctx context.Context, username string, req payroll.RunPayrollRequest) (payroll.RunPayrollResponse, error) {
				return payroll.RunPayrollResponse{}, payrollerrors.ErrSalaryAlreadyExists
			},
		}
		handler := payroll.NewHandler(svc)

		rec := performRun(handler, `{"personal_id":"123456789","year":2025,"month":3}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("maps missing attendance to not found", func(t *testing.T) {
		svc := &fakePayrollService{
			runFn: func(ctx context.Context, username string, req payroll.RunPayrollRequest) (payroll.RunPayrollResponse, error) {
				return payroll.RunPayrollResponse{}, payrollerrors.ErrAttendanceMissing
			},
		}
		handler := payroll.NewHandler(svc)

		rec := performRun(handler, `{"personal_id":"123456789","year":2025,"month":3}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandlerGetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newStatsRouter := func(svc payroll.Service) *gin.Engine {
		handler := payroll.NewHandler(svc)
		router := gin.New()
		router.GET("/payrolls/stats", func(c *gin.Context) {
			c.Set("username", "yossi")
			handler.GetStats(c)
		})
		return router
	}

	t.Run("returns period stats", func(t *testing.T) {
		svc := &fakePayrollService{
			getStatsFn: func(ctx context.Context, username string, year, month int) (payroll.SalaryStatsResponse, error) {
				assert.Equal(t, "yossi", username)
				assert.Equal(t, 2025, year)
				assert.Equal(t, 3, month)
				return payroll.SalaryStatsResponse{
					Year:             year,
					Month:            month,
					PayrollCount:     2,
					TotalNetSalary:   "3660.90",
					AverageNetSalary: "1830.45",
					MaxNetSalary:     "1830.45",
				}, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/payrolls/stats?year=2025&month=3", nil)
		rec := httptest.NewRecorder()
		newStatsRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "3660.90")
	})

	t.Run("rejects missing period params", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/payrolls/stats?year=2025", nil)
		rec := httptest.NewRecorder()
		newStatsRouter(&fakePayrollService{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlerGetHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakePayrollService{
		getHistoryFn: func(ctx context.Context, username, personalID string) ([]payroll.SalaryHistoryItem, error) {
			return []payroll.SalaryHistoryItem{
				{PersonalID: personalID, SalaryAmount: "1830.45", SalaryYear: 2025, SalaryMonth: 3},
			}, nil
		},
	}
	handler := payroll.NewHandler(svc)

	router := gin.New()
	router.GET("/payrolls/:personalId/history", func(c *gin.Context) {
		c.Set("username", "yossi")
		handler.GetHistory(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/payrolls/123456789/history", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "1830.45")
}

package app

import (
	"database/sql"
	"os"

	"github.com/Yosefnago/emp-backend/internal/attendance"
	"github.com/Yosefnago/emp-backend/internal/bootstrap"
	"github.com/Yosefnago/emp-backend/internal/employee"
	"github.com/Yosefnago/emp-backend/internal/messaging/kafka"
	"github.com/Yosefnago/emp-backend/internal/middleware"
	"github.com/Yosefnago/emp-backend/internal/payconfig"
	"github.com/Yosefnago/emp-backend/internal/payroll"
	"github.com/Yosefnago/emp-backend/internal/salary"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	payConfigRepo := payconfig.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Payroll core ---
	engine := payroll.NewEngine(employeeRepo, attendanceRepo, payConfigRepo)

	slipDir := os.Getenv("PAYSLIP_STORAGE_DIR")
	if slipDir == "" {
		slipDir = "./payslips"
	}
	slipRenderer := payroll.NewFileSlipRenderer(slipDir)

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo)
	attendanceService := attendance.NewService(attendanceRepo, employeeRepo)
	payConfigService := payconfig.NewService(db, payConfigRepo)
	auditLogger := bootstrap.NewStdoutAuditLogger()
	payrollService := payroll.NewServiceWithOutbox(db, engine, salaryRepo, slipRenderer, outboxRepo, auditLogger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	payConfigHandler := payconfig.NewHandler(payConfigService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RequestID())
	api.Use(middleware.RateLimitByIP(10, 20))
	{
		employee.RegisterRoutes(api, employeeHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
		payconfig.RegisterRoutes(api, payConfigHandler)
		payroll.RegisterRoutes(api, payrollHandler, rdb)
	}

	return nil
}

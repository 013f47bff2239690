package main

import (
	"fmt"
	"net/http"

	"github.com/hrcore/payroll-engine-go/internal/config"
	appHTTP "github.com/hrcore/payroll-engine-go/internal/handler/http"
	"github.com/hrcore/payroll-engine-go/internal/pkg/database"
	"github.com/hrcore/payroll-engine-go/internal/repository/postgresql"
	payrollService "github.com/hrcore/payroll-engine-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	txManager := postgresql.NewTxManager(db)
	periodRepo := postgresql.NewPeriodRepository(db)
	statusRepo := postgresql.NewStatusRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	contractRepo := postgresql.NewContractRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	payrollSvc := payrollService.NewPayrollService(
		txManager,
		periodRepo,
		statusRepo,
		deductionRepo,
		holidayRepo,
		contractRepo,
		scheduleRepo,
		attendanceRepo,
		leaveRepo,
		payrollRepo,
	)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(cfg.App.Env, payrollHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

package main

import (
	"fmt"
	"net/http"

	"github.com/sweldo-hq/sweldo-backend-go/internal/config"
	appHTTP "github.com/sweldo-hq/sweldo-backend-go/internal/handler/http"
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/cron"
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/database"
	"github.com/sweldo-hq/sweldo-backend-go/internal/repository/postgresql"
	attendanceService "github.com/sweldo-hq/sweldo-backend-go/internal/service/attendance"
	compensationService "github.com/sweldo-hq/sweldo-backend-go/internal/service/compensation"
	deductionService "github.com/sweldo-hq/sweldo-backend-go/internal/service/deduction"
	holidayService "github.com/sweldo-hq/sweldo-backend-go/internal/service/holiday"
	payrollService "github.com/sweldo-hq/sweldo-backend-go/internal/service/payroll"
	scheduleService "github.com/sweldo-hq/sweldo-backend-go/internal/service/schedule"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	employmentTypeRepo := postgresql.NewEmploymentTypeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	compensationRepo := postgresql.NewCompensationRepository(db)
	cashAdvanceRepo := postgresql.NewCashAdvanceRepository(db)
	shortRepo := postgresql.NewShortRepository(db)
	loanRepo := postgresql.NewLoanRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	employmentTypeSvc := scheduleService.NewEmploymentTypeService(db, employmentTypeRepo)
	compensationSvc := compensationService.NewCompensationService(
		db,
		compensationRepo,
		attendanceRepo,
		settingsRepo,
		employeeRepo,
		employmentTypeRepo,
		holidayRepo,
	)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, settingsRepo, compensationSvc)
	holidaySvc := holidayService.NewHolidayService(db, holidayRepo)
	deductionSvc := deductionService.NewDeductionService(db, cashAdvanceRepo, shortRepo, loanRepo)
	payrollSvc := payrollService.NewPayrollService(
		db,
		payrollRepo,
		compensationRepo,
		employeeRepo,
		cashAdvanceRepo,
		shortRepo,
		loanRepo,
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(employmentTypeSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	compensationHandler := appHTTP.NewCompensationHandler(compensationSvc)
	deductionHandler := appHTTP.NewDeductionHandler(deductionSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		cfg,
		attendanceHandler,
		scheduleHandler,
		holidayHandler,
		compensationHandler,
		deductionHandler,
		payrollHandler,
	)

	scheduler := cron.NewScheduler()
	compensationJobs := cron.NewCompensationJobs(employeeRepo, compensationSvc, db)
	compensationJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

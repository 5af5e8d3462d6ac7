package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/waspernest/pe-bms-node/internal/config"
	appHTTP "github.com/waspernest/pe-bms-node/internal/handler/http"
	"github.com/waspernest/pe-bms-node/internal/pkg/cron"
	"github.com/waspernest/pe-bms-node/internal/pkg/database"
	"github.com/waspernest/pe-bms-node/internal/pkg/holiday"
	"github.com/waspernest/pe-bms-node/internal/pkg/jwt"
	"github.com/waspernest/pe-bms-node/internal/repository/postgresql"
	attendanceService "github.com/waspernest/pe-bms-node/internal/service/attendance"
	employeeService "github.com/waspernest/pe-bms-node/internal/service/employee"
	reportService "github.com/waspernest/pe-bms-node/internal/service/report"
	scheduleService "github.com/waspernest/pe-bms-node/internal/service/schedule"
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

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	calendar := holiday.ForRegion(cfg.Attendance.HolidayRegion)

	detector := attendanceService.NewDuplicateDetector(
		attendanceService.ExactMatch{},
		attendanceService.ToleranceWindowMatch{Minutes: cfg.Attendance.DuplicateToleranceMinutes},
	)
	tracker := attendanceService.NewProgressTracker(24 * time.Hour)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, detector, tracker)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, employeeRepo)
	reportSvc := reportService.NewReportService(
		attendanceRepo,
		employeeRepo,
		scheduleSvc,
		calendar,
		cfg.Attendance.BaseDailyRate,
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(
		attendanceRepo,
		scheduleSvc,
		tracker,
		cfg.Attendance.StaleOpenDays,
	)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		employeeHandler,
		scheduleHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

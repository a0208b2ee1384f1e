package main

import (
	"fmt"
	"net/http"

	"github.com/tabelhq/timesheet-backend-go/internal/config"
	appHTTP "github.com/tabelhq/timesheet-backend-go/internal/handler/http"
	"github.com/tabelhq/timesheet-backend-go/internal/pkg/database"
	"github.com/tabelhq/timesheet-backend-go/internal/pkg/jwt"
	"github.com/tabelhq/timesheet-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/tabelhq/timesheet-backend-go/internal/service/auth"
	employeeService "github.com/tabelhq/timesheet-backend-go/internal/service/employee"
	"github.com/tabelhq/timesheet-backend-go/internal/service/master"
	reportService "github.com/tabelhq/timesheet-backend-go/internal/service/report"
	timesheetService "github.com/tabelhq/timesheet-backend-go/internal/service/timesheet"
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
	departmentRepo := postgresql.NewDepartmentRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authService := serviceAuth.NewAuthService(employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	masterService := master.NewMasterService(departmentRepo, positionRepo, assignmentRepo)
	timesheetSvc := timesheetService.NewTimesheetService(timesheetRepo, assignmentRepo)
	reportSvc := reportService.NewReportService(db, reportRepo)

	authHandler := appHTTP.NewAuthHandler(authService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	masterHandler := appHTTP.NewMasterHandler(masterService)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	exportHandler := appHTTP.NewExportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authService,
		authHandler,
		employeeHandler,
		masterHandler,
		timesheetHandler,
		reportHandler,
		exportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

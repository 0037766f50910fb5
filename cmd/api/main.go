package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/httplog/v3"
	"github.com/peopleops-dev/hr-backend-go/internal/config"
	appHTTP "github.com/peopleops-dev/hr-backend-go/internal/handler/http"
	"github.com/peopleops-dev/hr-backend-go/internal/pkg/database"
	"github.com/peopleops-dev/hr-backend-go/internal/pkg/jwt"
	"github.com/peopleops-dev/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/peopleops-dev/hr-backend-go/internal/service/attendance"
	authService "github.com/peopleops-dev/hr-backend-go/internal/service/auth"
	employeeService "github.com/peopleops-dev/hr-backend-go/internal/service/employee"
	leaveService "github.com/peopleops-dev/hr-backend-go/internal/service/leave"
	payrollService "github.com/peopleops-dev/hr-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	organizationRepo := postgresql.NewOrganizationRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	historyRepo := postgresql.NewHistoryRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, organizationRepo, jwtService, postgresql.NewTransactor(db), logger)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, historyRepo, logger)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, logger)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, logger)
	payrollSvc := payrollService.NewPayrollService(salaryRepo, employeeRepo, attendanceRepo, leaveRepo, historyRepo, logger)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtService),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
	}

	router := appHTTP.NewRouter(jwtService, logger, cfg.App.FrontendURL, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

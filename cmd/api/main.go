package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/peoplehub/hrm-backend-go/internal/config"
	appHTTP "github.com/peoplehub/hrm-backend-go/internal/handler/http"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/database"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/jwt"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/storage"
	"github.com/peoplehub/hrm-backend-go/internal/repository/postgresql"
	attendanceService "github.com/peoplehub/hrm-backend-go/internal/service/attendance"
	authService "github.com/peoplehub/hrm-backend-go/internal/service/auth"
	candidateService "github.com/peoplehub/hrm-backend-go/internal/service/candidate"
	dashboardService "github.com/peoplehub/hrm-backend-go/internal/service/dashboard"
	employeeService "github.com/peoplehub/hrm-backend-go/internal/service/employee"
	"github.com/peoplehub/hrm-backend-go/internal/service/file"
	leaveService "github.com/peoplehub/hrm-backend-go/internal/service/leave"
	notificationService "github.com/peoplehub/hrm-backend-go/internal/service/notification"
	profileService "github.com/peoplehub/hrm-backend-go/internal/service/profile"
	reportService "github.com/peoplehub/hrm-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		fmt.Println("Error initializing file storage:", err)
		return
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	candidateRepo := postgresql.NewCandidateRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	fileSvc := file.NewFileService(fileStorage)
	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, fileSvc)
	candidateSvc := candidateService.NewCandidateService(candidateRepo, employeeRepo, fileSvc)
	notificationSvc := notificationService.NewNotificationService(notificationRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, userRepo, notificationSvc, logger)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, userRepo, fileSvc, notificationSvc, logger)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, attendanceRepo, leaveRepo, candidateRepo)
	profileSvc := profileService.NewProfileService(userRepo, employeeRepo, fileSvc)
	reportSvc := reportService.NewReportService(attendanceRepo)

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		JWTService:          jwtService,
		AuthHandler:         appHTTP.NewAuthHandler(authSvc),
		EmployeeHandler:     appHTTP.NewEmployeeHandler(employeeSvc),
		CandidateHandler:    appHTTP.NewCandidateHandler(candidateSvc),
		AttendanceHandler:   appHTTP.NewAttendanceHandler(attendanceSvc),
		LeaveHandler:        appHTTP.NewLeaveHandler(leaveSvc),
		DashboardHandler:    appHTTP.NewDashboardHandler(dashboardSvc),
		NotificationHandler: appHTTP.NewNotificationHandler(notificationSvc),
		ProfileHandler:      appHTTP.NewProfileHandler(profileSvc),
		ReportHandler:       appHTTP.NewReportHandler(reportSvc),
		Env:                 cfg.App.Env,
		UploadsDir:          cfg.Storage.BasePath,
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("starting server", slog.String("addr", addr), slog.String("env", cfg.App.Env))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
	}
}

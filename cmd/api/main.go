package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/peopleworks/hrms-backend-go/internal/config"
	appHTTP "github.com/peopleworks/hrms-backend-go/internal/handler/http"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/cron"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/database"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/email"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/jwt"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/sse"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/storage"
	"github.com/peopleworks/hrms-backend-go/internal/repository/postgresql"
	analyticsService "github.com/peopleworks/hrms-backend-go/internal/service/analytics"
	attendanceService "github.com/peopleworks/hrms-backend-go/internal/service/attendance"
	serviceAuth "github.com/peopleworks/hrms-backend-go/internal/service/auth"
	contractService "github.com/peopleworks/hrms-backend-go/internal/service/contract"
	employeeService "github.com/peopleworks/hrms-backend-go/internal/service/employee"
	"github.com/peopleworks/hrms-backend-go/internal/service/file"
	leaveService "github.com/peopleworks/hrms-backend-go/internal/service/leave"
	missionService "github.com/peopleworks/hrms-backend-go/internal/service/mission"
	notificationService "github.com/peopleworks/hrms-backend-go/internal/service/notification"
	shiftService "github.com/peopleworks/hrms-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leavePolicyRepo := postgresql.NewLeavePolicyRepository(db)
	entitlementRepo := postgresql.NewLeaveEntitlementRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveDocumentRepo := postgresql.NewLeaveDocumentRepository(db)
	leaveSyncRepo := postgresql.NewLeaveSyncRepository(db)
	missionRepo := postgresql.NewMissionRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	correctionRepo := postgresql.NewCorrectionRepository(db)
	attendanceSyncRepo := postgresql.NewAttendanceSyncRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	contractRepo := postgresql.NewContractRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	analyticsRepo := postgresql.NewAnalyticsRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}
	fileService := file.NewFileService(fileStorage)

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	hub := sse.NewHub()
	notificationSvc := notificationService.NewNotificationService(db, notificationRepo, employeeRepo, hub)
	authSvc := serviceAuth.NewAuthService(db, employeeRepo, roleRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(
		db,
		employeeRepo,
		roleRepo,
		departmentRepo,
		fileService,
		notificationSvc,
	)
	leaveSvc := leaveService.NewLeaveService(
		db,
		leaveTypeRepo,
		leavePolicyRepo,
		entitlementRepo,
		leaveRequestRepo,
		leaveDocumentRepo,
		leaveSyncRepo,
		employeeRepo,
		fileService,
		notificationSvc,
	)
	missionSvc := missionService.NewMissionService(missionRepo, employeeRepo, notificationSvc)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, correctionRepo, attendanceSyncRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, assignmentRepo, employeeRepo, departmentRepo, notificationSvc)
	contractSvc := contractService.NewContractService(db, contractRepo, employeeRepo, notificationSvc, emailService)
	analyticsSvc := analyticsService.NewAnalyticsService(analyticsRepo)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(jwtService, authSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Mission:      appHTTP.NewMissionHandler(missionSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Shift:        appHTTP.NewShiftHandler(shiftSvc),
		Contract:     appHTTP.NewContractHandler(contractSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc, hub),
		Analytics:    appHTTP.NewAnalyticsHandler(analyticsSvc),
	}, cfg.App.Env)

	contractJobs := cron.NewContractJobs(contractSvc, contractRepo, emailService)
	scheduler := cron.NewScheduler()
	scheduler.AddJob("contract-expiry-sweep", 24*time.Hour, contractJobs.SweepExpiredContracts)
	scheduler.AddJob("contract-expiry-reminders", 24*time.Hour, contractJobs.SendExpiryReminders)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}

package http

import (
	"log/slog"
	"os"

	"github.com/peopleworks/hrms-backend-go/internal/handler/http/middleware"
	"github.com/peopleworks/hrms-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	Leave        LeaveHandler
	Mission      MissionHandler
	Attendance   AttendanceHandler
	Shift        ShiftHandler
	Contract     ContractHandler
	Notification NotificationHandler
	Analytics    AnalyticsHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, env string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(middleware.RequestID)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/first-time-login", h.Auth.FirstTimeLogin)
			r.Post("/register", h.Auth.Register)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", h.Employee.GetMe)
				r.Put("/me", h.Employee.UpdateProfile)
				r.Get("/my-team", h.Employee.GetMyTeam)
				r.Get("/{id}", h.Employee.GetEmployee)
				r.Post("/{id}/profile-image", h.Employee.UploadProfileImage)

				// HR Admin and above
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireElevated)
					r.Get("/", h.Employee.ListEmployees)
					r.Post("/", h.Employee.CreateEmployee)
					r.Get("/search", h.Employee.SearchEmployees)
					r.Get("/incomplete-profiles", h.Employee.GetIncompleteProfiles)
					r.Get("/hierarchy", h.Employee.GetHierarchy)
					r.Put("/{id}", h.Employee.UpdateEmployee)
					r.Post("/{id}/reassign", h.Employee.ReassignEmployee)
					r.Post("/{id}/roles", h.Employee.AssignRole)
					r.Delete("/{id}/roles", h.Employee.RemoveRole)
					r.Post("/{id}/activate", h.Employee.ActivateEmployee)
					r.Post("/{id}/deactivate", h.Employee.DeactivateEmployee)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Employee.ListDepartments)
				r.With(middleware.RequireElevated).Post("/", h.Employee.CreateDepartment)
			})

			r.Get("/roles", h.Employee.ListRoles)

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/types", h.Leave.ListLeaveTypes)
				r.Get("/policies", h.Leave.ListLeavePolicies)
				r.Get("/entitlements/my", h.Leave.GetMyEntitlements)

				r.Route("/requests", func(r chi.Router) {
					r.Post("/", h.Leave.SubmitLeaveRequest)
					r.Get("/my", h.Leave.ListMyLeaveRequests)
					r.Get("/team", h.Leave.ListTeamLeaveRequests)
					r.Get("/{id}", h.Leave.GetLeaveRequest)
					r.Post("/{id}/approve", h.Leave.ApproveLeaveRequest)
					r.Post("/{id}/deny", h.Leave.DenyLeaveRequest)
					r.With(middleware.RequireElevated).Post("/{id}/override", h.Leave.OverrideLeaveRequest)
					r.With(middleware.RequireElevated).Get("/", h.Leave.ListAllLeaveRequests)
				})

				r.Post("/flags/{employeeID}", h.Leave.FlagLeavePattern)

				// HR Admin and above
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireElevated)
					r.Post("/types", h.Leave.CreateLeaveType)
					r.Post("/policies", h.Leave.CreateLeavePolicy)
					r.Post("/entitlements", h.Leave.AssignEntitlement)
					r.Patch("/entitlements", h.Leave.AdjustEntitlement)
					r.Get("/entitlements/{employeeID}", h.Leave.GetEntitlements)
				})
			})

			r.Route("/missions", func(r chi.Router) {
				r.Get("/my", h.Mission.ListMyMissions)
				r.Get("/team", h.Mission.ListTeamMissions)
				r.Get("/{id}", h.Mission.GetMission)
				r.Post("/{id}/approve", h.Mission.ApproveMission)
				r.Post("/{id}/reject", h.Mission.RejectMission)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireElevated)
					r.Get("/", h.Mission.ListAllMissions)
					r.Post("/", h.Mission.AssignMission)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/my", h.Attendance.GetMyAttendance)
				r.Post("/corrections", h.Attendance.SubmitCorrection)
				r.Get("/corrections/my", h.Attendance.ListMyCorrections)
				r.Get("/team-summary", h.Attendance.GetTeamSummary)
				r.With(middleware.RequireSystemAdmin).Post("/sync-offline", h.Attendance.SyncOfflineAttendance)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", h.Shift.ListShifts)
				r.With(middleware.RequireSystemAdmin).Post("/", h.Shift.CreateShift)

				r.Route("/assignments", func(r chi.Router) {
					r.Get("/my", h.Shift.GetMyAssignments)
					r.With(middleware.RequireSystemAdmin).Get("/", h.Shift.ListAssignments)

					// HR Admin and above
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireElevated)
						r.Post("/employees/{employeeID}", h.Shift.AssignToEmployee)
						r.Post("/departments/{departmentID}", h.Shift.AssignToDepartment)
						r.Post("/custom", h.Shift.AssignCustom)
						r.Post("/split", h.Shift.ConfigureSplit)
						r.Post("/rotational", h.Shift.AssignRotational)
					})
				})
			})

			r.Route("/contracts", func(r chi.Router) {
				r.Get("/my", h.Contract.GetMyContract)
				r.Get("/{id}", h.Contract.GetContract)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireElevated)
					r.Post("/", h.Contract.CreateContract)
					r.Post("/{id}/renew", h.Contract.RenewContract)
					r.Get("/expiring", h.Contract.ListExpiring)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.GetInbox)
				r.Get("/unread-count", h.Notification.GetUnreadCount)
				r.Get("/stream", h.Notification.Stream)
				r.Post("/{id}/read", h.Notification.MarkAsRead)
				r.Post("/read-all", h.Notification.MarkAllAsRead)
				r.With(middleware.RequireManager).Post("/team", h.Notification.NotifyTeam)
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Use(middleware.RequireElevated)
				r.Get("/departments", h.Analytics.GetDepartmentStats)
				r.Get("/compliance", h.Analytics.GetComplianceReport)
				r.Get("/compliance/export", h.Analytics.ExportComplianceReportPDF)
				r.Get("/diversity", h.Analytics.GetDiversityReport)
			})
		})
	})
	return r
}

package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplehub/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/jwt"
)

type RouterDeps struct {
	JWTService          jwt.Service
	AuthHandler         AuthHandler
	EmployeeHandler     EmployeeHandler
	CandidateHandler    CandidateHandler
	AttendanceHandler   AttendanceHandler
	LeaveHandler        LeaveHandler
	DashboardHandler    DashboardHandler
	NotificationHandler NotificationHandler
	ProfileHandler      ProfileHandler
	ReportHandler       ReportHandler
	Env                 string
	UploadsDir          string
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrm-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", deps.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Stored files (profile pictures, resumes, leave attachments).
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(deps.UploadsDir)))
	r.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
		fileServer.ServeHTTP(w, r)
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.AuthHandler.Register)
			r.Post("/login", deps.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))
				r.Get("/me", deps.AuthHandler.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", deps.EmployeeHandler.ListEmployees)
				r.Get("/{id}", deps.EmployeeHandler.GetEmployee)
				r.Put("/{id}/picture", deps.EmployeeHandler.UploadProfilePicture)

				// Admin/HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", deps.EmployeeHandler.CreateEmployee)
					r.Put("/{id}", deps.EmployeeHandler.UpdateEmployee)
					r.Delete("/{id}", deps.EmployeeHandler.DeleteEmployee)
				})
			})

			r.Route("/candidates", func(r chi.Router) {
				r.Get("/", deps.CandidateHandler.ListCandidates)
				r.Get("/{id}", deps.CandidateHandler.GetCandidate)
				r.Get("/{id}/resume", deps.CandidateHandler.DownloadResume)

				// Admin/HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", deps.CandidateHandler.CreateCandidate)
					r.Put("/{id}", deps.CandidateHandler.UpdateCandidate)
					r.Delete("/{id}", deps.CandidateHandler.DeleteCandidate)
					r.Post("/{id}/convert", deps.CandidateHandler.ConvertCandidate)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", deps.AttendanceHandler.ListAttendance)
				r.Get("/today", deps.AttendanceHandler.TodayAttendance)
				r.Post("/", deps.AttendanceHandler.UpsertAttendance)
				r.Put("/{id}", deps.AttendanceHandler.UpdateAttendance)
				r.Delete("/{id}", deps.AttendanceHandler.DeleteAttendance)
				r.Post("/bulk-task", deps.AttendanceHandler.AssignTask)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", deps.LeaveHandler.ListLeaves)
				r.Get("/me", deps.LeaveHandler.ListMyLeaves)
				r.Post("/", deps.LeaveHandler.CreateLeave)
				r.Get("/{id}", deps.LeaveHandler.GetLeave)
				r.Put("/{id}", deps.LeaveHandler.UpdateLeave)
				r.Delete("/{id}", deps.LeaveHandler.DeleteLeave)
				r.Put("/{id}/approve", deps.LeaveHandler.ApproveLeave)
				r.Put("/{id}/reject", deps.LeaveHandler.RejectLeave)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/stats", deps.DashboardHandler.GetStats)
				r.Get("/activities", deps.DashboardHandler.GetActivities)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", deps.NotificationHandler.ListNotifications)
				r.Post("/", deps.NotificationHandler.CreateNotification)
				r.Put("/read-all", deps.NotificationHandler.MarkAllRead)
				r.Put("/{id}/read", deps.NotificationHandler.MarkRead)
				r.Delete("/{id}", deps.NotificationHandler.DeleteNotification)
			})

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", deps.ProfileHandler.GetProfile)
				r.Put("/", deps.ProfileHandler.UpdateProfile)
				r.Put("/picture", deps.ProfileHandler.UpdatePicture)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireHR)
				r.Get("/attendance", deps.ReportHandler.AttendanceReport)
			})
		})
	})

	return r
}

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

	"github.com/waspernest/pe-bms-node/internal/handler/http/middleware"
	"github.com/waspernest/pe-bms-node/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	attendanceHandler AttendanceHandler,
	employeeHandler EmployeeHandler,
	scheduleHandler ScheduleHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "pe-bms"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Device poll loop and manual entry both land here; the device
		// bridge authenticates like any other client.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.List)
				r.Post("/log", attendanceHandler.Log)
				r.Post("/import", attendanceHandler.Import)
				r.Get("/import/{jobID}/progress", attendanceHandler.ImportProgress)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Route("/{biometricID}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)
					r.Put("/schedule", employeeHandler.UpdateSchedule)
					r.Get("/resolved-schedule", scheduleHandler.Resolve)
					r.Get("/dtr", reportHandler.DTR)
					r.Get("/summary", reportHandler.Summary)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", scheduleHandler.ListGroups)
				r.Post("/", scheduleHandler.CreateGroup)
				r.Route("/{groupID}", func(r chi.Router) {
					r.Delete("/", scheduleHandler.DeleteGroup)
					r.Post("/assignments", scheduleHandler.SetAssignment)
					r.Get("/calendar", scheduleHandler.MonthView)
				})
			})
		})
	})
	return r
}

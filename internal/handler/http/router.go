package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/sweldo-hq/sweldo-backend-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	attendanceHandler AttendanceHandler,
	scheduleHandler ScheduleHandler,
	holidayHandler HolidayHandler,
	compensationHandler CompensationHandler,
	deductionHandler DeductionHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "sweldo"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/attendances", func(r chi.Router) {
			r.Post("/", attendanceHandler.Upsert)
			r.Get("/{employeeID}", attendanceHandler.List)
			r.Delete("/{id}", attendanceHandler.Delete)

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", attendanceHandler.GetSettings)
				r.Put("/", attendanceHandler.UpdateSettings)
			})
		})

		r.Route("/employment-types", func(r chi.Router) {
			r.Get("/", scheduleHandler.List)
			r.Post("/", scheduleHandler.Upsert)
			r.Get("/{name}", scheduleHandler.Get)
			r.Delete("/{id}", scheduleHandler.Delete)
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", holidayHandler.List)
			r.Post("/", holidayHandler.Create)
			r.Delete("/{id}", holidayHandler.Delete)
		})

		r.Route("/compensations", func(r chi.Router) {
			r.Get("/{employeeID}", compensationHandler.List)
			r.Post("/recompute", compensationHandler.RecomputeMonth)
			r.Post("/{employeeID}/recompute-day", compensationHandler.RecomputeDay)
			r.Patch("/manual-edit", compensationHandler.ManualEdit)
			r.Put("/manual-override", compensationHandler.SetManualOverride)
		})

		r.Route("/deductions", func(r chi.Router) {
			r.Route("/cash-advances", func(r chi.Router) {
				r.Post("/", deductionHandler.CreateCashAdvance)
				r.Get("/{employeeID}", deductionHandler.ListCashAdvances)
				r.Delete("/{id}", deductionHandler.DeleteCashAdvance)
			})
			r.Route("/shorts", func(r chi.Router) {
				r.Post("/", deductionHandler.CreateShort)
				r.Get("/{employeeID}", deductionHandler.ListShorts)
				r.Delete("/{id}", deductionHandler.DeleteShort)
			})
			r.Route("/loans", func(r chi.Router) {
				r.Post("/", deductionHandler.CreateLoan)
				r.Get("/{employeeID}", deductionHandler.ListLoans)
				r.Delete("/{id}", deductionHandler.DeleteLoan)
			})
		})

		r.Route("/payrolls", func(r chi.Router) {
			r.Post("/", payrollHandler.Generate)
			r.Get("/{id}", payrollHandler.Get)
			r.Delete("/{id}", payrollHandler.Delete)
			r.Get("/employee/{employeeID}", payrollHandler.List)
			r.Get("/employee/{employeeID}/periods", payrollHandler.GetAvailablePeriods)
		})
	})

	return r
}

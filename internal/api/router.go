package api

import (
	"log/slog"
	"net/http"
	"time"

	"maverick-bank/internal/api/handler"
	mw "maverick-bank/internal/api/middleware"
	"maverick-bank/internal/config"
	"maverick-bank/internal/domain/customer"
	"maverick-bank/internal/domain/employee"
	"maverick-bank/internal/domain/identity"

	_ "maverick-bank/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/traceid"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func SetupRouter(userService identity.UserService, customerService customer.Service, employeeService employee.Service, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(router, cfg, logger)
	setupMetricsEndpoint(router, cfg, logger)
	setupHomeRoutes(router, logger)

	router.Route("/api/v1", func(r chi.Router) {
		setupUserRoutes(r, userService, logger)
		setupCustomerRoutes(r, customerService, logger)
		setupEmployeeRoutes(r, employeeService, logger)
	})

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	setupSwaggerEndpoint(router, logger)

	return router
}

func setupMiddleware(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(mw.NewRateLimiterMiddleware(cfg.Server.RateLimit, logger).Middleware)
	router.Use(mw.MetricsMiddleware())
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	if !cfg.Metrics.Enabled {
		return
	}
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}

func setupSwaggerEndpoint(router *chi.Mux, logger *slog.Logger) {
	logger.Info("Setting up Swagger UI endpoint", "path", "/swagger/")
	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
}

func setupHomeRoutes(router *chi.Mux, logger *slog.Logger) {
	h := handler.NewHomeHandler(logger)
	router.Get("/home", h.Home)
	router.Get("/customer", h.CustomerHome)
	router.Get("/logout-success", h.LogoutSuccess)
}

func setupUserRoutes(r chi.Router, svc identity.UserService, logger *slog.Logger) {
	h := handler.NewUserHandler(svc, logger)

	r.Route("/users", func(r chi.Router) {
		r.Post("/register", h.RegisterUser)
		r.Post("/login", h.Login)
		r.Get("/getUserById/{userId}", h.GetUserByID)
		r.Put("/updateUser/{userId}", h.UpdateUser)
		r.Delete("/deleteUser/{userId}", h.DeleteUser)
	})
}

func setupCustomerRoutes(r chi.Router, svc customer.Service, logger *slog.Logger) {
	h := handler.NewCustomerHandler(svc, logger)

	r.Route("/customers", func(r chi.Router) {
		r.Post("/createCustomer", h.CreateCustomer)
		r.Get("/getCustomerById/{customerId}", h.GetCustomerByID)
		r.Get("/getAllCustomers", h.GetAllCustomers)
		r.Put("/updateCustomer/{customerId}", h.UpdateCustomer)
		r.Delete("/deleteCustomer/{customerId}", h.DeleteCustomer)
		r.Get("/getCustomerByUserId/{userId}", h.GetCustomerByUserID)
	})
}

func setupEmployeeRoutes(r chi.Router, svc employee.Service, logger *slog.Logger) {
	h := handler.NewBankEmployeeHandler(svc, logger)

	r.Route("/employees", func(r chi.Router) {
		r.Post("/createBankEmployee", h.CreateBankEmployee)
		r.Get("/getBankEmployeeById/{employeeId}", h.GetBankEmployeeByID)
		r.Get("/getAllBankEmployees", h.GetAllBankEmployees)
		r.Put("/updateBankEmployee/{employeeId}", h.UpdateBankEmployee)
		r.Delete("/deleteBankEmployee/{employeeId}", h.DeleteBankEmployee)
		r.Get("/getBankEmployeeByUserId/{userId}", h.GetBankEmployeeByUserID)
	})
}

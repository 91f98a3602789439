package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/shedledger/docs"
	"github.com/GlebRadaev/shedledger/internal/config"
	credithandlers "github.com/GlebRadaev/shedledger/internal/handlers/credit"
	employeehandlers "github.com/GlebRadaev/shedledger/internal/handlers/employees"
	fuelhandlers "github.com/GlebRadaev/shedledger/internal/handlers/fuellogs"
	wallethandlers "github.com/GlebRadaev/shedledger/internal/handlers/shedwallet"
	supplierhandlers "github.com/GlebRadaev/shedledger/internal/handlers/suppliers"
	triphandlers "github.com/GlebRadaev/shedledger/internal/handlers/vehiclelogs"
	"github.com/GlebRadaev/shedledger/internal/service"
	"github.com/GlebRadaev/shedledger/pkg/auth"
	"github.com/GlebRadaev/shedledger/pkg/utils"
)

type EmployeeHandler interface {
	CarryForward(w http.ResponseWriter, r *http.Request)
	Wallet(w http.ResponseWriter, r *http.Request)
	AdjustWallet(w http.ResponseWriter, r *http.Request)
}

type VehicleLogHandler interface {
	SaveTripSheet(w http.ResponseWriter, r *http.Request)
	ListTrips(w http.ResponseWriter, r *http.Request)
}

type FuelLogHandler interface {
	RecordPurchase(w http.ResponseWriter, r *http.Request)
	ApplyPayment(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
}

type ShedWalletHandler interface {
	PendingDetails(w http.ResponseWriter, r *http.Request)
	RecordTransaction(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
}

type CreditHandler interface {
	RecordPayment(w http.ResponseWriter, r *http.Request)
	ListPayments(w http.ResponseWriter, r *http.Request)
	DeletePayment(w http.ResponseWriter, r *http.Request)
	Account(w http.ResponseWriter, r *http.Request)
}

type SupplierHandler interface {
	RecordTransaction(w http.ResponseWriter, r *http.Request)
	Account(w http.ResponseWriter, r *http.Request)
	PendingByItem(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	EmployeeHandler   EmployeeHandler
	VehicleLogHandler VehicleLogHandler
	FuelLogHandler    FuelLogHandler
	ShedWalletHandler ShedWalletHandler
	CreditHandler     CreditHandler
	SupplierHandler   SupplierHandler

	jwt            auth.JWTServiceInterface
	rateLimit      int
	allowedOrigins []string
}

func New(s *service.Services, cfg *config.Config, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		EmployeeHandler:   employeehandlers.New(s.TripService, s.EmployeeService),
		VehicleLogHandler: triphandlers.New(s.TripService),
		FuelLogHandler:    fuelhandlers.New(s.FuelService),
		ShedWalletHandler: wallethandlers.New(s.ShedWalletService),
		CreditHandler:     credithandlers.New(s.CreditService),
		SupplierHandler:   supplierhandlers.New(s.SupplierService),
		jwt:               jwtService,
		rateLimit:         cfg.RateLimit,
		allowedOrigins:    cfg.AllowedOrigins(),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins: h.allowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Use(
			httprate.Limit(h.rateLimit, time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
					utils.RespondWithError(w, http.StatusTooManyRequests, "Too many requests")
				}),
			),
			auth.Middleware(h.jwt),
		)

		r.Route("/employees/{id}", func(r chi.Router) {
			r.Get("/carry-forward", h.EmployeeHandler.CarryForward)
			r.Get("/wallet", h.EmployeeHandler.Wallet)
			r.Post("/wallet", h.EmployeeHandler.AdjustWallet)
		})
		r.Route("/vehicle-logs", func(r chi.Router) {
			r.Post("/", h.VehicleLogHandler.SaveTripSheet)
			r.Get("/", h.VehicleLogHandler.ListTrips)
		})
		r.Route("/fuel-logs", func(r chi.Router) {
			r.Post("/", h.FuelLogHandler.RecordPurchase)
			r.Get("/pending", h.FuelLogHandler.ListPending)
			r.Put("/{id}", h.FuelLogHandler.ApplyPayment)
		})
		r.Route("/shed-wallet", func(r chi.Router) {
			r.Get("/pending-details", h.ShedWalletHandler.PendingDetails)
			r.Post("/transaction", h.ShedWalletHandler.RecordTransaction)
			r.Get("/transactions", h.ShedWalletHandler.ListTransactions)
		})
		r.Route("/credit-payments", func(r chi.Router) {
			r.Post("/", h.CreditHandler.RecordPayment)
			r.Get("/", h.CreditHandler.ListPayments)
			r.Delete("/{id}", h.CreditHandler.DeletePayment)
		})
		r.Get("/customers/{id}/credit", h.CreditHandler.Account)
		r.Route("/suppliers/{id}", func(r chi.Router) {
			r.Post("/wallet", h.SupplierHandler.RecordTransaction)
			r.Get("/wallet", h.SupplierHandler.Account)
			r.Get("/pending-items", h.SupplierHandler.PendingByItem)
		})
	})

	return r
}

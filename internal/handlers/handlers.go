package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fengzhui/fengzhui/docs"
	"github.com/fengzhui/fengzhui/internal/config"
	authhandlers "github.com/fengzhui/fengzhui/internal/handlers/auth"
	enrollmenthandlers "github.com/fengzhui/fengzhui/internal/handlers/enrollments"
	financehandlers "github.com/fengzhui/fengzhui/internal/handlers/finance"
	orderhandlers "github.com/fengzhui/fengzhui/internal/handlers/orders"
	paymenthandlers "github.com/fengzhui/fengzhui/internal/handlers/payments"
	refundhandlers "github.com/fengzhui/fengzhui/internal/handlers/refunds"
	"github.com/fengzhui/fengzhui/internal/service"
	"github.com/fengzhui/fengzhui/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type EnrollmentHandler interface {
	CreateEnrollment(w http.ResponseWriter, r *http.Request)
	GetEnrollment(w http.ResponseWriter, r *http.Request)
	CancelEnrollment(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	CancelOrder(w http.ResponseWriter, r *http.Request)
	VerifyOrder(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Prepay(w http.ResponseWriter, r *http.Request)
	Webhook(w http.ResponseWriter, r *http.Request)
	MockSuccess(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
	Sync(w http.ResponseWriter, r *http.Request)
}

type RefundHandler interface {
	Preview(w http.ResponseWriter, r *http.Request)
	CreateRefund(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type FinanceHandler interface {
	Settle(w http.ResponseWriter, r *http.Request)
	GetSettlement(w http.ResponseWriter, r *http.Request)
	GetAccount(w http.ResponseWriter, r *http.Request)
	CreateWithdrawal(w http.ResponseWriter, r *http.Request)
	ListWithdrawals(w http.ResponseWriter, r *http.Request)
	ApproveWithdrawal(w http.ResponseWriter, r *http.Request)
	CompleteWithdrawal(w http.ResponseWriter, r *http.Request)
	RejectWithdrawal(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	EnrollmentHandler EnrollmentHandler
	OrderHandler      OrderHandler
	PaymentHandler    PaymentHandler
	RefundHandler     RefundHandler
	FinanceHandler    FinanceHandler
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		EnrollmentHandler: enrollmenthandlers.New(s.EnrollmentService),
		OrderHandler:      orderhandlers.New(s.OrderService),
		PaymentHandler:    paymenthandlers.New(s.PaymentService, cfg.EnableMockPay),
		RefundHandler:     refundhandlers.New(s.RefundService),
		FinanceHandler:    financehandlers.New(s.FinanceService, s.SettlementService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		// The gateway calls back unauthenticated.
		r.Post("/payments/webhook", h.PaymentHandler.Webhook)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/enrollments", func(r chi.Router) {
				r.Post("/", h.EnrollmentHandler.CreateEnrollment)
				r.Get("/{id}", h.EnrollmentHandler.GetEnrollment)
				r.Delete("/{id}", h.EnrollmentHandler.CancelEnrollment)
			})
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.OrderHandler.CreateOrder)
				r.Get("/", h.OrderHandler.GetOrders)
				r.Post("/verify", h.OrderHandler.VerifyOrder)
				r.Get("/{id}", h.OrderHandler.GetOrder)
				r.Post("/{id}/cancel", h.OrderHandler.CancelOrder)
			})
			r.Route("/payments", func(r chi.Router) {
				r.Post("/prepay", h.PaymentHandler.Prepay)
				r.Post("/{orderID}/mock-success", h.PaymentHandler.MockSuccess)
				r.Get("/{orderID}/status", h.PaymentHandler.GetStatus)
				r.Post("/{orderID}/sync", h.PaymentHandler.Sync)
			})
			r.Route("/refunds", func(r chi.Router) {
				r.Get("/preview", h.RefundHandler.Preview)
				r.Post("/", h.RefundHandler.CreateRefund)
				r.Post("/{id}/approve", h.RefundHandler.Approve)
				r.Post("/{id}/reject", h.RefundHandler.Reject)
			})
			r.Route("/finance", func(r chi.Router) {
				r.Post("/activities/{id}/settle", h.FinanceHandler.Settle)
				r.Get("/activities/{id}/settlement", h.FinanceHandler.GetSettlement)
				r.Get("/clubs/{id}/account", h.FinanceHandler.GetAccount)
				r.Post("/clubs/{id}/withdrawals", h.FinanceHandler.CreateWithdrawal)
				r.Get("/clubs/{id}/withdrawals", h.FinanceHandler.ListWithdrawals)
				r.Post("/withdrawals/{id}/approve", h.FinanceHandler.ApproveWithdrawal)
				r.Post("/withdrawals/{id}/complete", h.FinanceHandler.CompleteWithdrawal)
				r.Post("/withdrawals/{id}/reject", h.FinanceHandler.RejectWithdrawal)
			})
		})
	})

	return r
}

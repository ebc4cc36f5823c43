package service

import (
	authhandlers "github.com/fengzhui/fengzhui/internal/handlers/auth"
	"github.com/fengzhui/fengzhui/internal/handlers/enrollments"
	"github.com/fengzhui/fengzhui/internal/handlers/finance"
	"github.com/fengzhui/fengzhui/internal/handlers/orders"
	"github.com/fengzhui/fengzhui/internal/handlers/payments"
	"github.com/fengzhui/fengzhui/internal/handlers/refunds"

	pkgauth "github.com/fengzhui/fengzhui/pkg/auth"

	"github.com/fengzhui/fengzhui/internal/config"
	"github.com/fengzhui/fengzhui/internal/gateway"
	"github.com/fengzhui/fengzhui/internal/notify"
	"github.com/fengzhui/fengzhui/internal/pg"
	"github.com/fengzhui/fengzhui/internal/repo"
	authservice "github.com/fengzhui/fengzhui/internal/service/authservice"
	enrollmentservice "github.com/fengzhui/fengzhui/internal/service/enrollmentservice"
	financeservice "github.com/fengzhui/fengzhui/internal/service/financeservice"
	orderservice "github.com/fengzhui/fengzhui/internal/service/orderservice"
	paymentservice "github.com/fengzhui/fengzhui/internal/service/paymentservice"
	refundservice "github.com/fengzhui/fengzhui/internal/service/refundservice"
	settlementservice "github.com/fengzhui/fengzhui/internal/service/settlementservice"
)

type Services struct {
	AuthService       authhandlers.Service
	EnrollmentService enrollments.Service
	OrderService      orders.Service
	PaymentService    payments.Service
	RefundService     refunds.Service
	FinanceService    finance.Service
	SettlementService finance.SettlementService
}

func New(repo *repo.Repositories, gw gateway.ClientI, txManager pg.TXManager, notifier *notify.Service, cfg *config.Config) (*Services, error) {
	brackets, err := cfg.ParseRefundBrackets()
	if err != nil {
		return nil, err
	}

	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	enrollmentService := enrollmentservice.New(repo.EnrollmentRepo, repo.ActivityRepo)
	orderService := orderservice.New(repo.OrderRepo, repo.EnrollmentRepo, repo.ActivityRepo, txManager, notifier)
	paymentService := paymentservice.New(repo.OrderRepo, repo.PaymentRepo, gw, txManager, notifier)
	refundService := refundservice.New(repo.RefundRepo, repo.OrderRepo, repo.ActivityRepo, txManager, notifier, brackets)
	settlementService := settlementservice.New(repo.SettlementRepo, repo.RefundRepo, repo.AccountRepo, repo.ActivityRepo, txManager, notifier, cfg.PlatformFeePct)
	financeService := financeservice.New(repo.AccountRepo, repo.WithdrawalRepo, repo.ClubRepo, txManager, notifier, cfg.WithdrawalMin, cfg.WithdrawalFeePct)

	return &Services{
		AuthService:       authService,
		EnrollmentService: enrollmentService,
		OrderService:      orderService,
		PaymentService:    paymentService,
		RefundService:     refundService,
		FinanceService:    financeService,
		SettlementService: settlementService,
	}, nil
}

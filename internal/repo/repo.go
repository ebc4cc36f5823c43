package repo

import (
	"github.com/fengzhui/fengzhui/internal/pg"
	accountrepo "github.com/fengzhui/fengzhui/internal/repo/account-repo"
	activityrepo "github.com/fengzhui/fengzhui/internal/repo/activity-repo"
	clubrepo "github.com/fengzhui/fengzhui/internal/repo/club-repo"
	enrollmentrepo "github.com/fengzhui/fengzhui/internal/repo/enrollment-repo"
	orderrepo "github.com/fengzhui/fengzhui/internal/repo/order-repo"
	paymentrepo "github.com/fengzhui/fengzhui/internal/repo/payment-repo"
	refundrepo "github.com/fengzhui/fengzhui/internal/repo/refund-repo"
	settlementrepo "github.com/fengzhui/fengzhui/internal/repo/settlement-repo"
	userrepo "github.com/fengzhui/fengzhui/internal/repo/user-repo"
	withdrawalrepo "github.com/fengzhui/fengzhui/internal/repo/withdrawal-repo"
)

// Repositories keeps the concrete types; one repository often backs several
// service-side interfaces (order-repo alone serves the order, payment and
// refund services).
type Repositories struct {
	UserRepo       *userrepo.Repository
	ActivityRepo   *activityrepo.Repository
	ClubRepo       *clubrepo.Repository
	EnrollmentRepo *enrollmentrepo.Repository
	OrderRepo      *orderrepo.Repository
	PaymentRepo    *paymentrepo.Repository
	RefundRepo     *refundrepo.Repository
	SettlementRepo *settlementrepo.Repository
	AccountRepo    *accountrepo.Repository
	WithdrawalRepo *withdrawalrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		ActivityRepo:   activityrepo.New(conn),
		ClubRepo:       clubrepo.New(conn),
		EnrollmentRepo: enrollmentrepo.New(conn),
		OrderRepo:      orderrepo.New(conn),
		PaymentRepo:    paymentrepo.New(conn),
		RefundRepo:     refundrepo.New(conn),
		SettlementRepo: settlementrepo.New(conn),
		AccountRepo:    accountrepo.New(conn),
		WithdrawalRepo: withdrawalrepo.New(conn),
	}
}

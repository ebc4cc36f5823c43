package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	ClubID       int       `db:"club_id"`
	CreatedAt    time.Time `db:"created_at"`
}

// Activity is read-only inside the order core; its lifecycle is owned elsewhere.
type Activity struct {
	ID        int       `db:"id"`
	ClubID    int       `db:"club_id"`
	Title     string    `db:"title"`
	Price     float64   `db:"price"`
	StartTime time.Time `db:"start_time"`
	Status    string    `db:"status"`
}

// Club is read-only inside the order core.
type Club struct {
	ID          int    `db:"id"`
	Name        string `db:"name"`
	BankName    string `db:"bank_name"`
	BankAccount string `db:"bank_account"`
	BankHolder  string `db:"bank_holder"`
}

type Enrollment struct {
	ID           int       `db:"id"`
	ActivityID   int       `db:"activity_id"`
	UserID       int       `db:"user_id"`
	ContactName  string    `db:"contact_name"`
	ContactPhone string    `db:"contact_phone"`
	Amount       float64   `db:"amount"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}

type Order struct {
	ID            int        `db:"id"`
	OrderNo       string     `db:"order_no"`
	EnrollmentID  int        `db:"enrollment_id"`
	UserID        int        `db:"user_id"`
	ActivityID    int        `db:"activity_id"`
	InsuredName   string     `db:"insured_name"`
	InsuredPhone  string     `db:"insured_phone"`
	InsuredIDCard string     `db:"insured_id_card"`
	Amount        float64    `db:"amount"`
	InsuranceFee  float64    `db:"insurance_fee"`
	TotalAmount   float64    `db:"total_amount"`
	Status        string     `db:"status"`
	VerifyCode    string     `db:"verify_code"`
	PaidAt        *time.Time `db:"paid_at"`
	CreatedAt     time.Time  `db:"created_at"`
}

type Payment struct {
	ID            int        `db:"id"`
	OrderID       int        `db:"order_id"`
	Status        string     `db:"status"`
	TransactionID string     `db:"transaction_id"`
	PrepayParams  string     `db:"prepay_params"`
	CreatedAt     time.Time  `db:"created_at"`
	ConfirmedAt   *time.Time `db:"confirmed_at"`
}

type Verification struct {
	ID         int       `db:"id"`
	OrderID    int       `db:"order_id"`
	VerifiedAt time.Time `db:"verified_at"`
	VerifiedBy int       `db:"verified_by"`
}

type Refund struct {
	ID            int       `db:"id"`
	OrderID       int       `db:"order_id"`
	Reason        string    `db:"reason"`
	ReasonDetail  string    `db:"reason_detail"`
	RefundAmount  float64   `db:"refund_amount"`
	RefundPercent int       `db:"refund_percent"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
}

type Settlement struct {
	ID           int       `db:"id"`
	ActivityID   int       `db:"activity_id"`
	ClubID       int       `db:"club_id"`
	TotalAmount  float64   `db:"total_amount"`
	PlatformFee  float64   `db:"platform_fee"`
	RefundAmount float64   `db:"refund_amount"`
	SettleAmount float64   `db:"settle_amount"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}

type ClubAccount struct {
	ID            int     `db:"id"`
	ClubID        int     `db:"club_id"`
	Balance       float64 `db:"balance"`
	FrozenBalance float64 `db:"frozen_balance"`
	TotalIncome   float64 `db:"total_income"`
	TotalWithdraw float64 `db:"total_withdraw"`
}

// Available is the portion of the balance a withdrawal may draw on.
func (a *ClubAccount) Available() float64 {
	return a.Balance - a.FrozenBalance
}

type Withdrawal struct {
	ID           int       `db:"id"`
	ClubID       int       `db:"club_id"`
	Amount       float64   `db:"amount"`
	Fee          float64   `db:"fee"`
	ActualAmount float64   `db:"actual_amount"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}

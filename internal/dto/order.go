package dto

import "time"

type CreateOrderRequestDTO struct {
	EnrollmentID  int    `json:"enrollmentId" example:"1"`
	InsuredName   string `json:"insuredName" example:"Zhang Wei"`
	InsuredPhone  string `json:"insuredPhone" example:"13800138000"`
	InsuredIDCard string `json:"insuredIdCard,omitempty" example:"110101199003070000"`
}

type OrderResponseDTO struct {
	ID           int        `json:"id" example:"1"`
	OrderNo      string     `json:"orderNo" example:"1726804800123450"`
	EnrollmentID int        `json:"enrollmentId" example:"1"`
	Amount       float64    `json:"amount" example:"200"`
	InsuranceFee float64    `json:"insuranceFee" example:"20"`
	TotalAmount  float64    `json:"totalAmount" example:"220"`
	Status       string     `json:"status" example:"PENDING"`
	VerifyCode   string     `json:"verifyCode" example:"9f2d0c3a"`
	PaidAt       *time.Time `json:"paidAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type VerifyOrderRequestDTO struct {
	Code string `json:"code" example:"9f2d0c3a"`
}

type VerifyOrderResponseDTO struct {
	OrderNo    string    `json:"orderNo" example:"1726804800123450"`
	VerifiedAt time.Time `json:"verifiedAt"`
}

package dto

import "time"

type SettlementResponseDTO struct {
	ID           int     `json:"id" example:"1"`
	ActivityID   int     `json:"activityId" example:"42"`
	TotalAmount  float64 `json:"totalAmount" example:"2200"`
	PlatformFee  float64 `json:"platformFee" example:"103"`
	RefundAmount float64 `json:"refundAmount" example:"140"`
	SettleAmount float64 `json:"settleAmount" example:"1957"`
	Status       string  `json:"status" example:"COMPLETED"`
}

type AccountResponseDTO struct {
	ClubID        int     `json:"clubId" example:"7"`
	Balance       float64 `json:"balance" example:"1957"`
	FrozenBalance float64 `json:"frozenBalance" example:"0"`
	TotalIncome   float64 `json:"totalIncome" example:"1957"`
	TotalWithdraw float64 `json:"totalWithdraw" example:"0"`
}

type CreateWithdrawalRequestDTO struct {
	Amount float64 `json:"amount" example:"500"`
}

type WithdrawalResponseDTO struct {
	ID           int       `json:"id" example:"1"`
	ClubID       int       `json:"clubId" example:"7"`
	Amount       float64   `json:"amount" example:"500"`
	Fee          float64   `json:"fee" example:"0"`
	ActualAmount float64   `json:"actualAmount" example:"500"`
	Status       string    `json:"status" example:"PENDING"`
	CreatedAt    time.Time `json:"createdAt"`
}

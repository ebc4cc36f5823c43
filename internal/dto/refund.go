package dto

type RefundPreviewResponseDTO struct {
	OrderID       int     `json:"orderId" example:"1"`
	CanRefund     bool    `json:"canRefund" example:"true"`
	Reason        string  `json:"reason,omitempty" example:""`
	RefundPercent int     `json:"refundPercent" example:"70"`
	RefundAmount  float64 `json:"refundAmount" example:"154"`
}

type CreateRefundRequestDTO struct {
	OrderID      int    `json:"orderId" example:"1"`
	Reason       string `json:"reason" example:"schedule conflict"`
	ReasonDetail string `json:"reasonDetail,omitempty"`
}

type RefundResponseDTO struct {
	ID            int     `json:"id" example:"1"`
	OrderID       int     `json:"orderId" example:"1"`
	Reason        string  `json:"reason" example:"schedule conflict"`
	RefundAmount  float64 `json:"refundAmount" example:"154"`
	RefundPercent int     `json:"refundPercent" example:"70"`
	Status        string  `json:"status" example:"PENDING"`
}

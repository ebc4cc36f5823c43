package dto

type PrepayRequestDTO struct {
	OrderID int    `json:"orderId" example:"1"`
	OpenID  string `json:"openId" example:"oX7bJ5tQq0"`
}

type PrepayResponseDTO struct {
	PrepayParams string `json:"prepayParams"`
}

type PaymentWebhookRequestDTO struct {
	OrderNo       string `json:"orderNo" example:"1726804800123450"`
	TransactionID string `json:"transactionId" example:"wx-tx-0001"`
	Status        string `json:"status" example:"SUCCESS"`
}

type PaymentStatusResponseDTO struct {
	OrderID       int    `json:"orderId" example:"1"`
	OrderStatus   string `json:"orderStatus" example:"PAID"`
	PaymentStatus string `json:"paymentStatus" example:"SUCCESS"`
	TransactionID string `json:"transactionId,omitempty" example:"wx-tx-0001"`
}

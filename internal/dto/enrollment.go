package dto

import "time"

type CreateEnrollmentRequestDTO struct {
	ActivityID   int    `json:"activityId" example:"42"`
	ContactName  string `json:"contactName" example:"Zhang Wei"`
	ContactPhone string `json:"contactPhone" example:"13800138000"`
}

type EnrollmentResponseDTO struct {
	ID           int       `json:"id" example:"1"`
	ActivityID   int       `json:"activityId" example:"42"`
	ContactName  string    `json:"contactName" example:"Zhang Wei"`
	ContactPhone string    `json:"contactPhone" example:"13800138000"`
	Amount       float64   `json:"amount" example:"200"`
	Status       string    `json:"status" example:"PENDING"`
	CreatedAt    time.Time `json:"createdAt" example:"2024-06-01T10:00:00+08:00"`
}

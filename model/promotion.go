package model

import "time"

type Promotion struct {
	DTO
	Code          string    `gorm:"unique;not null" json:"code"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	DiscountType  string    `gorm:"not null" json:"discountType"` // 'percentage','fixed'
	DiscountValue float64   `gorm:"type:decimal(10,2);not null" json:"discountValue"`
	StartDate     time.Time `gorm:"not null" json:"startDate"`
	EndDate       time.Time `gorm:"not null" json:"endDate"`
	Status        string    `gorm:"default:'active';not null" json:"status"` // 'active','inactive','expired'

	DestinationId *uint        `json:"destinationId,omitempty"`
	Destination   *Destination `gorm:"foreignKey:DestinationId" json:"destination,omitempty"`
}

type CreatePromotionInput struct {
	Code          string    `json:"code" validate:"required"`
	Name          string    `json:"name" validate:"required"`
	Description   string    `json:"description" validate:"omitempty"`
	DiscountType  string    `json:"discountType" validate:"required,oneof=percentage fixed"`
	DiscountValue float64   `json:"discountValue" validate:"required,gt=0"`
	StartDate     time.Time `json:"startDate" validate:"required"`
	EndDate       time.Time `json:"endDate" validate:"required,gtfield=StartDate"`
	DestinationId *uint     `json:"destinationId" validate:"omitempty,gt=0"`
}

package model

type Destination struct {
	DTO
	Slug        string `gorm:"unique;size:120" json:"slug"`
	Name        string `gorm:"not null" json:"name"`
	Location    string `gorm:"not null" json:"location"`
	Category    string `gorm:"index" json:"category"`
	Description string `gorm:"type:text" json:"description"`
	ImageUrl    string `json:"imageUrl"`
	BasePrice   int64  `gorm:"not null" json:"basePrice"`
	Featured    bool   `gorm:"default:false" json:"featured"`
	Active      bool   `gorm:"default:true" json:"active"`

	TicketTypes []TicketType `gorm:"foreignKey:DestinationId" json:"ticketTypes,omitempty"`
}

type TicketType struct {
	DTO
	DestinationId uint   `gorm:"not null;index" json:"destinationId"`
	Name          string `gorm:"not null" json:"name"`
	Price         int64  `gorm:"not null" json:"price"`
	Description   string `gorm:"type:text" json:"description"`
	Capacity      string `json:"capacity"` // label, e.g. "1 person"
	ValidFor      string `json:"validFor"` // e.g. "1 day"

	Destination Destination `gorm:"foreignKey:DestinationId" json:"-"`
}

type CreateDestinationInput struct {
	Name        string `json:"name" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Category    string `json:"category" validate:"omitempty"`
	Description string `json:"description" validate:"omitempty"`
	ImageUrl    string `json:"imageUrl" validate:"omitempty,url"`
	BasePrice   int64  `json:"basePrice" validate:"required,gt=0"`
	Featured    bool   `json:"featured"`
}

type EditDestinationInput struct {
	Name        *string `json:"name" validate:"omitempty"`
	Location    *string `json:"location" validate:"omitempty"`
	Category    *string `json:"category" validate:"omitempty"`
	Description *string `json:"description" validate:"omitempty"`
	ImageUrl    *string `json:"imageUrl" validate:"omitempty,url"`
	BasePrice   *int64  `json:"basePrice" validate:"omitempty,gt=0"`
	Featured    *bool   `json:"featured"`
	Active      *bool   `json:"active"`
}

type CreateTicketTypeInput struct {
	DestinationId uint   `json:"destinationId" validate:"required,gt=0"`
	Name          string `json:"name" validate:"required"`
	Price         int64  `json:"price" validate:"required,gt=0"`
	Description   string `json:"description" validate:"omitempty"`
	Capacity      string `json:"capacity" validate:"omitempty"`
	ValidFor      string `json:"validFor" validate:"omitempty"`
}

type FilterDestinationInput struct {
	Pagination
	Category string `json:"category" validate:"omitempty"`
	Search   string `json:"search" validate:"omitempty"`
	Featured *bool  `json:"featured" validate:"omitempty"`
}

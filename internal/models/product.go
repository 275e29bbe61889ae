package models

import "time"

const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

type Product struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	CategoryID uint `gorm:"not null;index" json:"categoryId"`

	Name        string  `gorm:"size:150;uniqueIndex;not null" json:"name"`
	Description string  `gorm:"size:500" json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock       int     `gorm:"default:0" json:"stock"`
	Salt        string  `gorm:"size:255" json:"salt"`
	Status      string  `gorm:"size:20;default:'active'" json:"status"`

	ImageURL   string `gorm:"size:500;not null" json:"imageUrl"`
	StorageKey string `gorm:"size:255;not null" json:"storageKey"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

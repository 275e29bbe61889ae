package models

import "time"

const (
	RetailerStatusActive   = "active"
	RetailerStatusInactive = "inactive"
)

type Retailer struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null" json:"userId"`

	ShopName          string `gorm:"size:100;not null" json:"shopName"`
	OwnerName         string `gorm:"size:100;not null" json:"ownerName"`
	Email             string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone             string `gorm:"size:20;not null" json:"phone"`
	Address           string `gorm:"size:255;not null" json:"address"`
	City              string `gorm:"size:100;not null" json:"city"`
	State             string `gorm:"size:100;not null" json:"state"`
	ZipCode           string `gorm:"size:20;not null" json:"zipCode"`
	DrugLicenseNumber string `gorm:"size:100;uniqueIndex;not null" json:"drugLicenseNumber"`
	Status            string `gorm:"size:20;default:'active'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

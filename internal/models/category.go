package models

import "time"

type Category struct {
	ID       uint  `gorm:"primaryKey" json:"id"`
	ParentID *uint `gorm:"index" json:"parentId"`

	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Slug        string `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"size:255" json:"description"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Computed per query from the flat table, never mapped by gorm.
	SubCategories []Category `gorm:"-" json:"subCategories"`
	Parent        *Category  `gorm:"-" json:"parent,omitempty"`
}

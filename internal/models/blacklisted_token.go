package models

import "time"

// BlacklistedToken marks a still-valid JWT as revoked until its natural
// expiry passes, after which the row is prunable.
type BlacklistedToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"size:500;index;not null" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

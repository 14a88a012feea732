package model

import "time"

// User is an account provisioned from an inbound phone number.
type User struct {
	ID                   uint   `gorm:"primaryKey"`
	UserName             string `gorm:"uniqueIndex;not null"`
	PhoneNumber          string `gorm:"not null"`
	PhoneNumberConfirmed bool
	Email                string
	EmailConfirmed       bool
	PasswordHash         string    `gorm:"not null"`
	SecurityStamp        string    `gorm:"not null"`
	CreatedAt            time.Time `gorm:"autoCreateTime"`

	Lists []ReminderList `gorm:"foreignKey:UserID"`
}

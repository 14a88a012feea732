package model

import "time"

// SMS is the audit record of an inbound text message.
type SMS struct {
	ID         uint      `gorm:"primaryKey"`
	NumberFrom string    `gorm:"index;not null"`
	NumberTo   string
	Message    string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// TableName keeps the audit log in its own table.
func (SMS) TableName() string {
	return "sms_messages"
}

package database

import (
	"context"
	"fmt"

	"github.com/pathakanu/foreverly/internal/model"
	"gorm.io/gorm"
)

// Messages is the append-only audit log of inbound SMS.
type Messages struct {
	db *gorm.DB
}

// NewMessages returns a message log backed by db.
func NewMessages(db *gorm.DB) *Messages {
	return &Messages{db: db}
}

// Save appends sms to the log.
func (m *Messages) Save(ctx context.Context, sms *model.SMS) error {
	if err := m.db.WithContext(ctx).Create(sms).Error; err != nil {
		return fmt.Errorf("save sms: %w", err)
	}
	return nil
}

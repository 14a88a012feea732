package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/pathakanu/foreverly/internal/model"
	"gorm.io/gorm"
)

// Lists stores reminder lists and their tasks.
type Lists struct {
	db *gorm.DB
}

// NewLists returns a list and task store backed by db.
func NewLists(db *gorm.DB) *Lists {
	return &Lists{db: db}
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// FindList loads the first list named name owned by userID, with its tasks
// in creation order. It returns ErrNotFound when the user has no such list.
func (l *Lists) FindList(ctx context.Context, userID uint, name string) (*model.ReminderList, error) {
	var list model.ReminderList
	err := l.db.WithContext(ctx).
		Preload("Tasks", orderByID).
		Where("user_id = ? AND name = ?", userID, name).
		Order("id ASC").
		First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find list %q for user %d: %w", name, userID, err)
	}
	return &list, nil
}

// SaveList inserts list and assigns its ID.
func (l *Lists) SaveList(ctx context.Context, list *model.ReminderList) error {
	if err := l.db.WithContext(ctx).Omit("Tasks").Create(list).Error; err != nil {
		return fmt.Errorf("save list %q: %w", list.Name, err)
	}
	return nil
}

// SaveTask inserts task and assigns its ID.
func (l *Lists) SaveTask(ctx context.Context, task *model.ReminderTask) error {
	if err := l.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("save task %q: %w", task.Name, err)
	}
	return nil
}

// UsersWithList returns every user owning a list named name, with that list
// and its tasks preloaded.
func (l *Lists) UsersWithList(ctx context.Context, name string) ([]model.User, error) {
	var users []model.User
	err := l.db.WithContext(ctx).
		Preload("Lists", func(db *gorm.DB) *gorm.DB {
			return db.Where("name = ?", name).Order("id ASC")
		}).
		Preload("Lists.Tasks", orderByID).
		Where("id IN (?)", l.db.Model(&model.ReminderList{}).Select("user_id").Where("name = ?", name)).
		Order("id ASC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("users with list %q: %w", name, err)
	}
	return users, nil
}

package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/pathakanu/foreverly/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Users is the user directory keyed by simplified phone number.
type Users struct {
	db *gorm.DB
}

// NewUsers returns a user directory backed by db.
func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

// FindByKey returns the user whose username equals key, or ErrNotFound.
func (u *Users) FindByKey(ctx context.Context, key string) (*model.User, error) {
	var user model.User
	err := u.db.WithContext(ctx).Where("user_name = ?", key).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", key, err)
	}
	return &user, nil
}

// Create stores user with the hash of password. Usernames are unique.
func (u *Users) Create(ctx context.Context, user *model.User, password string) error {
	var count int64
	if err := u.db.WithContext(ctx).Model(&model.User{}).Where("user_name = ?", user.UserName).Count(&count).Error; err != nil {
		return fmt.Errorf("check user %s: %w", user.UserName, err)
	}
	if count > 0 {
		return ErrUserExists
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	if err := u.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserExists
		}
		return fmt.Errorf("create user %s: %w", user.UserName, err)
	}
	return nil
}

// ChangePassword replaces the password of the user with the given id.
func (u *Users) ChangePassword(ctx context.Context, userID uint, password string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	res := u.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Update("password_hash", hash)
	if res.Error != nil {
		return fmt.Errorf("change password for user %d: %w", userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

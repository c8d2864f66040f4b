// Package adapters provides the repository implementations for the auth
// feature.
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"pawfinders_backend/internal/feature/auth/domain/entity"
	"pawfinders_backend/internal/feature/auth/usecase"
)

// userMySQL is the MySQL implementation of the UserRepository interface.
type userMySQL struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userMySQL)(nil)

// NewUserMySQL creates a new userMySQL with the given gorm connection.
func NewUserMySQL(db *gorm.DB) *userMySQL {
	return &userMySQL{db: db}
}

// Create inserts the user. The unique index on email is the sole source of
// duplicate detection; MySQL error 1062 maps to
// usecase.ErrEmailAlreadyExists.
func (r *userMySQL) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail returns the user for the given email, or
// usecase.ErrUserNotFound.
func (r *userMySQL) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID returns the user for the given ID, or usecase.ErrUserNotFound.
func (r *userMySQL) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

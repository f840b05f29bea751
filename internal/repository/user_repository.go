package repository

import (
	"context"

	"gorm.io/gorm"

	"wallfit/internal/model"
)

// UserRepository defines user and program persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindProgram(ctx context.Context, userID uint) (*model.Program, error)
	ReplaceProgram(ctx context.Context, userID uint, program *model.Program) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Preload("Program").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindProgram(ctx context.Context, userID uint) (*model.Program, error) {
	var program model.Program
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&program).Error; err != nil {
		return nil, err
	}
	return &program, nil
}

// ReplaceProgram swaps the user's program wholesale inside one transaction.
func (r *userRepository) ReplaceProgram(ctx context.Context, userID uint, program *model.Program) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.Program{}).Error; err != nil {
			return err
		}
		program.ID = 0
		program.UserID = userID
		return tx.Create(program).Error
	})
}

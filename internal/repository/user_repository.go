package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"citamed/internal/model"
)

// UserRepository defines persistence operations on usuarios.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, usuarioID uint) (*model.User, error)
	FindActiveByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUltimoLogin(ctx context.Context, usuarioID uint, at time.Time) error
	DeleteAll(ctx context.Context) error
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

func (r *userRepository) FindByID(ctx context.Context, usuarioID uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, usuarioID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindActiveByEmail looks up an active account by email. Inactive accounts
// are indistinguishable from missing ones on purpose.
func (r *userRepository) FindActiveByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("email = ? AND activo = ?", email, true).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUltimoLogin(ctx context.Context, usuarioID uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("usuario_id = ?", usuarioID).
		Update("ultimo_login", at).Error
}

func (r *userRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.User{}).Error
}

package postgres

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/soundcrate/go-music-server/internal/errors"
	"github.com/soundcrate/go-music-server/users"
)

var _ users.Repo = (*UserRepo)(nil)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(user *users.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return apperrors.Invariantf("username %q already taken", user.Username)
		}
		return apperrors.Wrapf(err, "postgres.UserRepo.Create")
	}
	return nil
}

func (r *UserRepo) GetByUsername(username string) (*users.User, error) {
	var user users.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("user %q", username)
		}
		return nil, apperrors.Wrapf(err, "postgres.UserRepo.GetByUsername")
	}
	return &user, nil
}

func (r *UserRepo) GetByID(id string) (*users.User, error) {
	var user users.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("user %q", id)
		}
		return nil, apperrors.Wrapf(err, "postgres.UserRepo.GetByID")
	}
	return &user, nil
}

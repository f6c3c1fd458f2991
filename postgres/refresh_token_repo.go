package postgres

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/soundcrate/go-music-server/internal/errors"
	"github.com/soundcrate/go-music-server/token"
)

var _ token.RefreshTokenRepo = (*RefreshTokenRepo)(nil)

type RefreshTokenRepo struct {
	db *gorm.DB
}

func NewRefreshTokenRepo(db *gorm.DB) *RefreshTokenRepo {
	return &RefreshTokenRepo{db: db}
}

func (r *RefreshTokenRepo) Add(refreshToken *token.StoredRefreshToken) error {
	err := r.db.Create(refreshToken).Error
	return apperrors.Wrapf(err, "postgres.RefreshTokenRepo.Add")
}

func (r *RefreshTokenRepo) Get(rawToken string) (*token.StoredRefreshToken, error) {
	var stored token.StoredRefreshToken
	if err := r.db.Where("token = ?", rawToken).First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("refresh token")
		}
		return nil, apperrors.Wrapf(err, "postgres.RefreshTokenRepo.Get")
	}
	return &stored, nil
}

func (r *RefreshTokenRepo) Delete(rawToken string) error {
	result := r.db.Delete(&token.StoredRefreshToken{}, "token = ?", rawToken)
	if result.Error != nil {
		return apperrors.Wrapf(result.Error, "postgres.RefreshTokenRepo.Delete")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundf("refresh token")
	}
	return nil
}

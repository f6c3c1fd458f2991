package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/soundcrate/go-music-server/albums"
	apperrors "github.com/soundcrate/go-music-server/internal/errors"
	"github.com/soundcrate/go-music-server/songs"
)

var _ albums.Repo = (*AlbumRepo)(nil)

type AlbumRepo struct {
	db *gorm.DB
}

func NewAlbumRepo(db *gorm.DB) *AlbumRepo {
	return &AlbumRepo{db: db}
}

func (r *AlbumRepo) Create(album *albums.Album) error {
	err := r.db.Create(album).Error
	return apperrors.Wrapf(err, "postgres.AlbumRepo.Create")
}

func (r *AlbumRepo) Get(id string) (*albums.Album, error) {
	var album albums.Album
	if err := r.db.Where("id = ?", id).First(&album).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("album %q", id)
		}
		return nil, apperrors.Wrapf(err, "postgres.AlbumRepo.Get")
	}
	return &album, nil
}

func (r *AlbumRepo) Update(album *albums.Album) error {
	result := r.db.Model(&albums.Album{}).Where("id = ?", album.ID).
		Updates(map[string]interface{}{"name": album.Name, "year": album.Year})
	if result.Error != nil {
		return apperrors.Wrapf(result.Error, "postgres.AlbumRepo.Update")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundf("album %q", album.ID)
	}
	return nil
}

func (r *AlbumRepo) Delete(id string) error {
	result := r.db.Delete(&albums.Album{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.Wrapf(result.Error, "postgres.AlbumRepo.Delete")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundf("album %q", id)
	}
	return nil
}

var _ songs.Repo = (*SongRepo)(nil)

type SongRepo struct {
	db *gorm.DB
}

func NewSongRepo(db *gorm.DB) *SongRepo {
	return &SongRepo{db: db}
}

func (r *SongRepo) Create(song *songs.Song) error {
	err := r.db.Create(song).Error
	return apperrors.Wrapf(err, "postgres.SongRepo.Create")
}

func (r *SongRepo) List(filter songs.Filter) ([]songs.Song, error) {
	query := r.db.Model(&songs.Song{})
	if filter.Title != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Title+"%")
	}
	if filter.Performer != "" {
		query = query.Where("performer ILIKE ?", "%"+filter.Performer+"%")
	}

	listed := make([]songs.Song, 0)
	if err := query.Order("created_at").Find(&listed).Error; err != nil {
		return nil, apperrors.Wrapf(err, "postgres.SongRepo.List")
	}
	return listed, nil
}

func (r *SongRepo) ListByAlbum(albumID string) ([]songs.Song, error) {
	listed := make([]songs.Song, 0)
	err := r.db.Where("album_id = ?", albumID).Order("created_at").Find(&listed).Error
	if err != nil {
		return nil, apperrors.Wrapf(err, "postgres.SongRepo.ListByAlbum")
	}
	return listed, nil
}

func (r *SongRepo) Get(id string) (*songs.Song, error) {
	var song songs.Song
	if err := r.db.Where("id = ?", id).First(&song).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("song %q", id)
		}
		return nil, apperrors.Wrapf(err, "postgres.SongRepo.Get")
	}
	return &song, nil
}

func (r *SongRepo) Update(song *songs.Song) error {
	result := r.db.Model(&songs.Song{}).Where("id = ?", song.ID).
		Updates(map[string]interface{}{
			"title":     song.Title,
			"year":      song.Year,
			"genre":     song.Genre,
			"performer": song.Performer,
			"duration":  song.Duration,
			"album_id":  song.AlbumID,
		})
	if result.Error != nil {
		return apperrors.Wrapf(result.Error, "postgres.SongRepo.Update")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundf("song %q", song.ID)
	}
	return nil
}

func (r *SongRepo) Delete(id string) error {
	result := r.db.Delete(&songs.Song{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.Wrapf(result.Error, "postgres.SongRepo.Delete")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundf("song %q", id)
	}
	return nil
}

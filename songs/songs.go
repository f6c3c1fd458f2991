package songs

import (
	"time"

	"github.com/google/uuid"
)

// Song is a catalog song, optionally attached to an album.
type Song struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	Title     string    `json:"title" gorm:"size:200;not null"`
	Year      int       `json:"year" gorm:"not null"`
	Genre     string    `json:"genre" gorm:"size:100;not null"`
	Performer string    `json:"performer" gorm:"size:200;not null"`
	Duration  int       `json:"duration,omitempty"`
	AlbumID   *string   `json:"albumId,omitempty" gorm:"size:64;index"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func NewID() string {
	return "song-" + uuid.NewString()
}

// Filter narrows List results. Both fields are case-insensitive substring
// matches; zero values match everything.
type Filter struct {
	Title     string
	Performer string
}

// Repo manages persistence of songs. Get, Update and Delete return
// errors.ErrNotFound-kinded errors for unknown IDs.
type Repo interface {
	Create(song *Song) error
	List(filter Filter) ([]Song, error)
	ListByAlbum(albumID string) ([]Song, error)
	Get(id string) (*Song, error)
	Update(song *Song) error
	Delete(id string) error
}

// Service implements song CRUD and filtered listing on top of a Repo.
type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// Payload carries the mutable fields of a song for create and update.
type Payload struct {
	Title     string
	Year      int
	Genre     string
	Performer string
	Duration  int
	AlbumID   *string
}

func (s *Service) Create(p Payload) (string, error) {
	song := &Song{
		ID:        NewID(),
		Title:     p.Title,
		Year:      p.Year,
		Genre:     p.Genre,
		Performer: p.Performer,
		Duration:  p.Duration,
		AlbumID:   p.AlbumID,
	}
	if err := s.repo.Create(song); err != nil {
		return "", err
	}
	return song.ID, nil
}

func (s *Service) List(filter Filter) ([]Song, error) {
	return s.repo.List(filter)
}

func (s *Service) ListByAlbum(albumID string) ([]Song, error) {
	return s.repo.ListByAlbum(albumID)
}

func (s *Service) Get(id string) (*Song, error) {
	return s.repo.Get(id)
}

func (s *Service) Update(id string, p Payload) error {
	song, err := s.repo.Get(id)
	if err != nil {
		return err
	}
	song.Title = p.Title
	song.Year = p.Year
	song.Genre = p.Genre
	song.Performer = p.Performer
	song.Duration = p.Duration
	song.AlbumID = p.AlbumID
	return s.repo.Update(song)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

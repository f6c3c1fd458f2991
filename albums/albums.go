package albums

import (
	"time"

	"github.com/google/uuid"
)

// Album is a catalog album. Its songs are a relation owned by the songs
// package, not embedded data.
type Album struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	Name      string    `json:"name" gorm:"size:200;not null"`
	Year      int       `json:"year" gorm:"not null"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func NewID() string {
	return "album-" + uuid.NewString()
}

// Repo manages persistence of albums. Get, Update and Delete return
// errors.ErrNotFound-kinded errors for unknown IDs.
type Repo interface {
	Create(album *Album) error
	Get(id string) (*Album, error)
	Update(album *Album) error
	Delete(id string) error
}

// Service implements album CRUD on top of a Repo.
type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(name string, year int) (string, error) {
	album := &Album{ID: NewID(), Name: name, Year: year}
	if err := s.repo.Create(album); err != nil {
		return "", err
	}
	return album.ID, nil
}

func (s *Service) Get(id string) (*Album, error) {
	return s.repo.Get(id)
}

func (s *Service) Update(id, name string, year int) error {
	album, err := s.repo.Get(id)
	if err != nil {
		return err
	}
	album.Name = name
	album.Year = year
	return s.repo.Update(album)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

package users

import (
	apperrors "github.com/soundcrate/go-music-server/internal/errors"
)

// Service implements registration and credential checks on top of a Repo.
type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// Register creates a new user and returns its ID. A username that is already
// taken fails with an ErrInvariant kind; the pre-check is optimistic and the
// store's uniqueness constraint backstops the race between two concurrent
// registrations.
func (s *Service) Register(username, password, fullName string) (string, error) {
	if _, err := s.repo.GetByUsername(username); err == nil {
		return "", apperrors.Invariantf("failed to create new user, username already existed")
	} else if !apperrors.Is(err, apperrors.ErrNotFound) {
		return "", apperrors.Wrapf(err, "users.Service.Register GetByUsername")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return "", apperrors.Wrapf(err, "users.Service.Register HashPassword")
	}

	user := &User{
		ID:           NewID(),
		Username:     username,
		PasswordHash: hash,
		FullName:     fullName,
	}
	if err := s.repo.Create(user); err != nil {
		return "", apperrors.Wrapf(err, "users.Service.Register Create")
	}
	return user.ID, nil
}

// VerifyCredentials checks a username/password pair and returns the user ID.
// Unknown usernames and wrong passwords both fail with the same
// ErrAuthentication kind so the response does not leak which part was wrong.
func (s *Service) VerifyCredentials(username, password string) (string, error) {
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		return "", apperrors.Authenticationf("invalid credentials")
	}
	if !CheckPasswordHash(password, user.PasswordHash) {
		return "", apperrors.Authenticationf("invalid credentials")
	}
	return user.ID, nil
}

// GetByID returns the user with the given ID.
func (s *Service) GetByID(id string) (*User, error) {
	return s.repo.GetByID(id)
}

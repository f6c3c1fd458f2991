package repofake

import (
	"sync"

	apperrors "github.com/soundcrate/go-music-server/internal/errors"
	"github.com/soundcrate/go-music-server/users"
)

var _ users.Repo = (*FakeUserRepo)(nil)

type FakeUserRepo struct {
	byID       map[string]*users.User
	byUsername map[string]string // username to user ID
	lock       sync.RWMutex
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{
		byID:       make(map[string]*users.User),
		byUsername: make(map[string]string),
	}
}

func (ur *FakeUserRepo) Create(user *users.User) error {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	if _, ok := ur.byUsername[user.Username]; ok {
		return apperrors.Invariantf("username %q already taken", user.Username)
	}
	copied := *user
	ur.byID[user.ID] = &copied
	ur.byUsername[user.Username] = user.ID
	return nil
}

func (ur *FakeUserRepo) GetByUsername(username string) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	id, ok := ur.byUsername[username]
	if !ok {
		return nil, apperrors.NotFoundf("user %q", username)
	}
	return ur.byID[id], nil
}

func (ur *FakeUserRepo) GetByID(id string) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	user, ok := ur.byID[id]
	if !ok {
		return nil, apperrors.NotFoundf("user %q", id)
	}
	return user, nil
}

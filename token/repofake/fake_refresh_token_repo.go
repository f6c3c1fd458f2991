package repofake

import (
	"sync"

	apperrors "github.com/soundcrate/go-music-server/internal/errors"
	"github.com/soundcrate/go-music-server/token"
)

var _ token.RefreshTokenRepo = (*FakeRefreshTokenRepo)(nil)

type FakeRefreshTokenRepo struct {
	tokens map[string]*token.StoredRefreshToken
	lock   sync.RWMutex
}

func NewFakeRefreshTokenRepo() *FakeRefreshTokenRepo {
	return &FakeRefreshTokenRepo{
		tokens: make(map[string]*token.StoredRefreshToken),
	}
}

func (tr *FakeRefreshTokenRepo) Add(refreshToken *token.StoredRefreshToken) error {
	tr.lock.Lock()
	defer tr.lock.Unlock()

	tr.tokens[refreshToken.Token] = refreshToken
	return nil
}

func (tr *FakeRefreshTokenRepo) Get(rawToken string) (*token.StoredRefreshToken, error) {
	tr.lock.RLock()
	defer tr.lock.RUnlock()

	stored, ok := tr.tokens[rawToken]
	if !ok {
		return nil, apperrors.NotFoundf("refresh token")
	}
	return stored, nil
}

func (tr *FakeRefreshTokenRepo) Delete(rawToken string) error {
	tr.lock.Lock()
	defer tr.lock.Unlock()

	if _, ok := tr.tokens[rawToken]; !ok {
		return apperrors.NotFoundf("refresh token")
	}
	delete(tr.tokens, rawToken)
	return nil
}

package users

// Repo manages persistence of user accounts.
//
// Create returns an errors.ErrInvariant-kinded error when the username is
// already taken (store uniqueness constraint). GetByUsername and GetByID
// return errors.ErrNotFound-kinded errors for unknown users.
type Repo interface {
	Create(user *User) error
	GetByUsername(username string) (*User, error)
	GetByID(id string) (*User, error)
}

package repo

import (
	"fmt"

	"github.com/threatintel-platform/backend/internal/models"
)

// UserRepo is the seeded credential store. It is read-only after
// construction, so no locking is needed.
type UserRepo struct {
	byName map[string]models.Credential
}

func NewUserRepo(seed []models.Credential) (*UserRepo, error) {
	r := &UserRepo{byName: make(map[string]models.Credential, len(seed))}
	for _, cred := range seed {
		if cred.Username == "" || cred.PasswordHash == "" {
			return nil, fmt.Errorf("seed user %q: username and password hash are required", cred.Username)
		}
		if _, exists := r.byName[cred.Username]; exists {
			return nil, fmt.Errorf("seed user %q: duplicate username", cred.Username)
		}
		// the username doubles as the id
		cred.ID = cred.Username
		r.byName[cred.Username] = cred
	}
	return r, nil
}

func (r *UserRepo) Find(username string) (models.Credential, bool) {
	cred, ok := r.byName[username]
	return cred, ok
}

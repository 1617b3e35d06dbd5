package radix_serv

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/rskv-p/radix/config"
)

var ErrUnknownUser = errors.New("unknown user")

// FindUser looks a user up among the configured accounts.
func FindUser(cfg *config.Config, username string) (*config.User, error) {
	for i := range cfg.Users {
		if cfg.Users[i].Username == username {
			return &cfg.Users[i], nil
		}
	}
	return nil, ErrUnknownUser
}

// CheckPassword verifies a cleartext password against the stored
// bcrypt hash.
func CheckPassword(u *config.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// HashPassword produces a bcrypt hash for storing in config.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

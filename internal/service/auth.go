package service

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/querylab/groupboard/internal/config"
	"github.com/querylab/groupboard/internal/domain"
)

var ErrWrongCredentials = errors.New("wrong credentials")

// AuthService checks submitted credentials against the one configured
// admin pair. This is a cosmetic gate for the classroom dashboard, not a
// security boundary; there are no accounts behind it.
type AuthService struct {
	conf *config.AdminConfig
}

func NewAuthService(conf *config.AdminConfig) *AuthService {
	return &AuthService{
		conf: conf,
	}
}

// Login compares id and password exactly against the configured pair. A
// configured bcrypt hash is honored when present.
func (s *AuthService) Login(id, password string) (domain.User, error) {
	if subtle.ConstantTimeCompare([]byte(id), []byte(s.conf.ID)) != 1 {
		return domain.User{}, ErrWrongCredentials
	}

	if strings.HasPrefix(s.conf.Password, "$2") {
		if err := bcrypt.CompareHashAndPassword([]byte(s.conf.Password), []byte(password)); err != nil {
			return domain.User{}, ErrWrongCredentials
		}
	} else if subtle.ConstantTimeCompare([]byte(password), []byte(s.conf.Password)) != 1 {
		return domain.User{}, ErrWrongCredentials
	}

	return domain.User{IsAdmin: true, AdminID: s.conf.ID}, nil
}

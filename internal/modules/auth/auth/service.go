package auth

import (
	"errors"

	"github.com/sman1gebog/web-core/internal/models"
	sessionpkg "github.com/sman1gebog/web-core/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// dummyHash is a valid bcrypt hash compared against when the username does
// not exist.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Login verifies the credentials and issues a session-bound token.
func (s *Service) Login(username, password, ip, ua string) (string, *models.User, error) {
	var u models.User
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Burn a comparison so unknown users take as long as wrong passwords.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", nil, errInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", nil, errInvalidCredentials
	}

	token, _, err := sessionpkg.Issue(s.db, u.ID, ip, ua, sessionpkg.DefaultTTL)
	if err != nil {
		return "", nil, err
	}
	return token, &u, nil
}

// Logout revokes the session behind the presented token.
func (s *Service) Logout(userID uint, sessionID string) error {
	err := sessionpkg.Revoke(s.db, userID, sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

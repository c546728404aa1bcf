package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/promostack/storefront-core/internal/middleware"
	"github.com/promostack/storefront-core/internal/models"
	"github.com/promostack/storefront-core/internal/pkg/apperr"
	pkgredis "github.com/promostack/storefront-core/internal/pkg/redis"
	"github.com/promostack/storefront-core/internal/pkg/session"
)

const exchangeCodeTTL = 2 * time.Minute

type Service struct {
	db *gorm.DB
	rc *pkgredis.Client
}

func NewService(db *gorm.DB, rc *pkgredis.Client) *Service {
	return &Service{db: db, rc: rc}
}

// SignUp registers a new account with a bcrypt-hashed password.
func (s *Service) SignUp(email, password, name string) (*models.UserModel, error) {
	email = normalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperr.New(apperr.Validation, "a valid email is required")
	}
	if len(password) < 8 {
		return nil, apperr.New(apperr.Validation, "password must be at least 8 characters")
	}

	var count int64
	if err := s.db.Model(&models.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "check email", err)
	}
	if count > 0 {
		return nil, apperr.New(apperr.Conflict, "email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "hash password", err)
	}

	user := &models.UserModel{
		Email:    email,
		Password: string(hash),
		Name:     strings.TrimSpace(name),
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "create user", err)
	}
	return user, nil
}

// Login verifies credentials and issues a session token. Wrong email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(email, password, ip, ua string) (string, *models.UserModel, error) {
	email = normalizeEmail(email)

	var user models.UserModel
	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Burn a comparably slow hash check so timing does not leak
			// which emails exist.
			_ = bcrypt.CompareHashAndPassword(
				[]byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"), []byte(password))
			return "", nil, apperr.New(apperr.Unauthorized, "invalid email or password")
		}
		return "", nil, apperr.Wrap(apperr.Persistence, "load user", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, apperr.New(apperr.Unauthorized, "invalid email or password")
	}

	token, _, err := session.Issue(s.db, user.ID, ip, ua, session.DefaultTTL)
	if err != nil {
		return "", nil, apperr.Wrap(apperr.Persistence, "issue session", err)
	}

	now := time.Now()
	_ = s.db.Model(&user).Updates(map[string]any{
		"last_login_time": &now,
		"last_login_ip":   ip,
	}).Error

	return token, &user, nil
}

// SignOut revokes the presented session.
func (s *Service) SignOut(userID, sessionID string) error {
	if err := session.Revoke(s.db, userID, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.NotFound, "session not found")
		}
		return apperr.Wrap(apperr.Persistence, "revoke session", err)
	}
	return nil
}

// IssueExchangeCode stores a short-lived one-time code mapped to the
// session token. Presenting the code as a `code` query parameter sets
// the session cookie and redirects into the console.
func (s *Service) IssueExchangeCode(ctx context.Context, token string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", apperr.Wrap(apperr.Persistence, "generate code", err)
	}
	code := hex.EncodeToString(buf)

	if err := s.rc.Set(ctx, middleware.ExchangeCodeKeyPrefix+code, token, exchangeCodeTTL); err != nil {
		return "", apperr.Wrap(apperr.Persistence, "store code", err)
	}
	return code, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

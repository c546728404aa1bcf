// Package settings persists runtime-tunable values in the options table with
// an in-memory cache, so authorization data can change without a redeploy.
package settings

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/promostack/storefront-core/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const adminEmailsKey = "admin_emails"

// Service manages persisted settings.
type Service struct {
	db *gorm.DB

	mu          sync.RWMutex
	adminEmails []string
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// SeedAdminEmails stores the configured allow-list when none is persisted yet.
func (s *Service) SeedAdminEmails(emails []string) error {
	normalized := NormalizeEmails(emails)
	if len(normalized) == 0 {
		return nil
	}

	var count int64
	if err := s.db.Model(&models.OptionModel{}).Where("name = ?", adminEmailsKey).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.SetAdminEmails(normalized)
}

// AdminEmails returns the persisted allow-list, loading it on first use.
func (s *Service) AdminEmails() ([]string, error) {
	s.mu.RLock()
	if s.adminEmails != nil {
		defer s.mu.RUnlock()
		return s.adminEmails, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.adminEmails != nil {
		return s.adminEmails, nil
	}

	var opt models.OptionModel
	err := s.db.Where("name = ?", adminEmailsKey).First(&opt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.adminEmails = []string{}
		return s.adminEmails, nil
	}
	if err != nil {
		return nil, err
	}

	var emails []string
	if err := json.Unmarshal([]byte(opt.Value), &emails); err != nil {
		return nil, err
	}
	s.adminEmails = NormalizeEmails(emails)
	return s.adminEmails, nil
}

// SetAdminEmails replaces the allow-list.
func (s *Service) SetAdminEmails(emails []string) error {
	normalized := NormalizeEmails(emails)
	data, err := json.Marshal(normalized)
	if err != nil {
		return err
	}

	opt := models.OptionModel{Name: adminEmailsKey, Value: string(data)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&opt).Error
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.adminEmails = normalized
	s.mu.Unlock()
	return nil
}

// IsAdminEmail reports whether email is on the allow-list.
func (s *Service) IsAdminEmail(email string) (bool, error) {
	emails, err := s.AdminEmails()
	if err != nil {
		return false, err
	}
	return ContainsEmail(emails, email), nil
}

// Invalidate clears the cache, forcing a DB reload on next read.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adminEmails = nil
}

// NormalizeEmails lowercases, trims and dedupes an email list.
func NormalizeEmails(emails []string) []string {
	seen := make(map[string]struct{}, len(emails))
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

// ContainsEmail reports whether the normalized list contains email.
func ContainsEmail(list []string, email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, e := range list {
		if e == email {
			return true
		}
	}
	return false
}

package kv

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sinha001/portfolio-server/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Stable keys shared between the stores and any external tooling that
// inspects the database. Renaming one silently orphans persisted state.
const (
	KeyPersonalInfo    = "portfolio_personal_info"
	KeyExperiences     = "portfolio_experiences"
	KeyProjects        = "portfolio_projects"
	KeySkillCategories = "portfolio_skill_categories"
	KeyEducation       = "portfolio_education"
	KeyCertifications  = "portfolio_certifications"
	KeyRepositories    = "portfolio_github_repos"
	KeyBlogPosts       = "portfolio_blog_posts"
	KeyResumeFile      = "portfolio_resume_file"
	KeyAdminUser       = "admin_user"
	KeyAnalytics       = "portfolio_analytics"
	KeyContacts        = "portfolio_contacts"
)

// Store is a thin string key-value facade over the kv_entries table.
type Store struct {
	db *gorm.DB
}

// NewStore constructs a Store.
func NewStore(gdb *gorm.DB) *Store {
	return &Store{db: gdb}
}

// Get returns the value stored under key. The second return value reports
// whether the key was present at all.
func (s *Store) Get(key string) (string, bool, error) {
	var entry db.KVEntry
	if err := s.db.Where("key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return entry.Value, true, nil
}

// Set writes value under key, inserting or updating as needed.
func (s *Store) Set(key, value string) error {
	entry := db.KVEntry{Key: key, Value: value}
	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&entry).Error; err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (s *Store) Remove(key string) error {
	if err := s.db.Unscoped().Where("key = ?", key).Delete(&db.KVEntry{}).Error; err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// SetJSON marshals v and stores it under key.
func (s *Store) SetJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return s.Set(key, string(raw))
}

// GetJSON reads key and unmarshals it into out. The boolean reports whether
// the key was present; a present but unparsable value returns an error and
// leaves out untouched.
func (s *Store) GetJSON(key string, out any) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return true, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return true, nil
}

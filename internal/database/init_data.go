package database

import (
	"fmt"

	"token-auth-backend/internal/database/models"
	"token-auth-backend/internal/logger"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// SeedResult summarises a seeding run
type SeedResult struct {
	Created   int
	Updated   int
	Unchanged int
}

func decodeUsers(b []byte) ([]UserData, error) {
	var file UsersFile
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, err
	}
	return file.Users, nil
}

// InitUsersFromYAML upserts users from a YAML file keyed by username:
// missing users are inserted, changed ones updated, identical ones left alone.
// A missing file is a no-op.
func InitUsersFromYAML(db *gorm.DB, path string) (*SeedResult, error) {
	items, err := loadFromYAMLFile[UserData](path, decodeUsers)
	if err != nil {
		return nil, fmt.Errorf("load users from YAML: %w", err)
	}

	result := &SeedResult{}
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, u := range items {
			username := normalizeUsername(u.Username)
			if username == "" {
				return fmt.Errorf("user entry without username in %s", path)
			}
			active := true
			if u.Active != nil {
				active = *u.Active
			}

			var dbUser models.User
			// Find with Limit avoids ErrRecordNotFound logs for new users
			if err := tx.Where("username = ?", username).Limit(1).Find(&dbUser).Error; err != nil {
				return fmt.Errorf("query user %s: %w", username, err)
			}

			if dbUser.ID == 0 {
				newUser := &models.User{
					Username: username,
					Email:    u.Email,
					Active:   active,
					Admin:    u.Admin,
				}
				if err := tx.Create(newUser).Error; err != nil {
					return fmt.Errorf("create user %s: %w", username, err)
				}
				result.Created++
				continue
			}

			if dbUser.Email == u.Email && dbUser.Active == active && dbUser.Admin == u.Admin {
				result.Unchanged++
				continue
			}

			updates := map[string]interface{}{
				"email":  u.Email,
				"active": active,
				"admin":  u.Admin,
			}
			if err := tx.Model(&dbUser).Updates(updates).Error; err != nil {
				return fmt.Errorf("update user %s: %w", username, err)
			}
			result.Updated++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.New().WithFields(map[string]interface{}{
		"file":      path,
		"created":   result.Created,
		"updated":   result.Updated,
		"unchanged": result.Unchanged,
	}).Info("Users seeded from YAML")
	return result, nil
}

// Package seed loads a YAML demo dataset into an empty database so a fresh
// deployment has accounts and listings to browse.
package seed

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/roost-dev/roost/internal/auth"
	"github.com/roost-dev/roost/internal/models"
)

// File is the top-level shape of a seed file
type File struct {
	Users      []SeedUser     `yaml:"users"`
	Properties []SeedProperty `yaml:"properties"`
}

// SeedUser describes one account to create
type SeedUser struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

// SeedProperty describes one listing to create. AgentEmail links it to a
// seeded agent account.
type SeedProperty struct {
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	Address     string  `yaml:"address"`
	Price       float64 `yaml:"price"`
	Type        string  `yaml:"type"`
	ImageURL    string  `yaml:"image_url"`
	Bedrooms    int     `yaml:"bedrooms"`
	Bathrooms   int     `yaml:"bathrooms"`
	AreaSqFt    float64 `yaml:"area_sq_ft"`
	AgentEmail  string  `yaml:"agent_email"`
}

// Run seeds the database from the YAML file at path. It is a no-op when
// users already exist.
func Run(db *gorm.DB, path string, log zerolog.Logger) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		log.Debug().Msg("Database already seeded")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	agents := make(map[string]string) // email -> user id

	for _, su := range f.Users {
		hash, err := auth.HashPassword(su.Password)
		if err != nil {
			return err
		}
		role := models.Role(su.Role)
		if !role.Valid() {
			role = models.RoleUser
		}
		user := models.User{
			Email:        su.Email,
			PasswordHash: hash,
			Name:         su.Name,
			Role:         role,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", su.Email, err)
		}
		agents[user.Email] = user.ID
	}

	for _, sp := range f.Properties {
		agentID, ok := agents[sp.AgentEmail]
		if !ok {
			log.Warn().Str("agent_email", sp.AgentEmail).Str("title", sp.Title).
				Msg("Skipping seed listing with unknown agent")
			continue
		}
		property := models.Property{
			Title:       sp.Title,
			Description: sp.Description,
			Address:     sp.Address,
			Price:       sp.Price,
			Type:        models.PropertyType(sp.Type),
			Status:      models.StatusAvailable,
			ImageURL:    sp.ImageURL,
			Bedrooms:    sp.Bedrooms,
			Bathrooms:   sp.Bathrooms,
			AreaSqFt:    sp.AreaSqFt,
			AgentID:     agentID,
		}
		if err := db.Create(&property).Error; err != nil {
			return fmt.Errorf("failed to seed listing %q: %w", sp.Title, err)
		}
	}

	log.Info().Int("users", len(f.Users)).Int("properties", len(f.Properties)).
		Msg("Database seeded")
	return nil
}
